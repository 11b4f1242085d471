package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShipmentStatusUpdate es una entrada del historial de seguimiento.
type ShipmentStatusUpdate struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// Shipment es un envío asociado a un pedido (referencia suelta por OrderID).
type Shipment struct {
	Document
	OrderID          string                 `json:"order_id"`
	Origin           string                 `json:"origin"`
	Destination      string                 `json:"destination"`
	Status           string                 `json:"status"` // Pending, In Transit, Delivered
	ExpectedDelivery time.Time              `json:"expected_delivery"`
	ActualDelivery   *time.Time             `json:"actual_delivery,omitempty"`
	TrackingNumber   string                 `json:"tracking_number"`
	Carrier          string                 `json:"carrier"`
	ShippingCost     decimal.Decimal        `json:"shipping_cost"`
	TrackingHistory  []ShipmentStatusUpdate `json:"tracking_history"`
}
