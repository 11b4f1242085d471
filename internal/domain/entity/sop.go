package entity

import "time"

// SOPPlan es un plan S&OP (Sales & Operations Planning). Puede crearse a mano
// o generarse agregando ventas y producción por producto (ver SOPUseCase).
type SOPPlan struct {
	Document
	ForecastedDemand   map[string]int `json:"forecasted_demand"`   // product_id -> unidades vendidas
	ProductionCapacity map[string]int `json:"production_capacity"` // product_id -> unidades producidas
	PlannedProduction  int            `json:"planned_production"`
	PlannedInventory   int            `json:"planned_inventory"`
	Period             time.Time      `json:"period"`
	ConfidenceLevel    float64        `json:"confidence_level"`
	ActualDemand       int            `json:"actual_demand"`
	RevisionNumber     int            `json:"revision_number"`
	Notes              string         `json:"notes,omitempty"`
}
