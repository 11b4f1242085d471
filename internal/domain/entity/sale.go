package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una venta. ProductID es una referencia suelta a la colección
// de productos; no se valida que el referente exista.
type Sale struct {
	Document
	ProductID       string          `json:"product_id"`
	QuantitySold    int             `json:"quantity_sold"`
	Revenue         decimal.Decimal `json:"revenue"`
	SaleDate        time.Time       `json:"sale_date"`
	Region          string          `json:"region"`
	CustomerSegment string          `json:"customer_segment"`
	Discount        decimal.Decimal `json:"discount"`
	CostOfGoodsSold decimal.Decimal `json:"cost_of_goods_sold"`
}
