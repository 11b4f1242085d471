package entity

// Inventory es el nivel de stock de un producto en una bodega.
// WarehouseID es una referencia suelta, sin integridad referencial.
type Inventory struct {
	Document
	ProductID     string `json:"product_id"`
	StockLevel    int    `json:"stock_level"`
	WarehouseID   string `json:"warehouse_id,omitempty"`
	MinStockLevel int    `json:"min_stock_level"`
	MaxStockLevel int    `json:"max_stock_level"`
	ReorderPoint  int    `json:"reorder_point"`
	BatchNumber   string `json:"batch_number,omitempty"`
}
