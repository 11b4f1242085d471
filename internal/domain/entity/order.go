package entity

import "github.com/shopspring/decimal"

// OrderItem es una línea de pedido.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Order es un pedido de cliente. Crear un pedido no ajusta inventario:
// no hay acoplamiento transaccional entre colecciones.
type Order struct {
	Document
	OrderNumber   string          `json:"order_number"`
	UserID        string          `json:"user_id"`
	Status        string          `json:"status"` // Pending, Shipped, Completed
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	Items         []OrderItem     `json:"items"`
}
