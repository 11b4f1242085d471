package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production registra un lote de producción.
type Production struct {
	Document
	ProductID        string          `json:"product_id"`
	QuantityProduced int             `json:"quantity_produced"`
	ProductionDate   time.Time       `json:"production_date"`
	FactoryLocation  string          `json:"factory_location"`
	BatchNumber      string          `json:"batch_number"`
	ProductionCost   decimal.Decimal `json:"production_cost"`
	QualityStatus    string          `json:"quality_status"`
	WasteQuantity    int             `json:"waste_quantity"`
}
