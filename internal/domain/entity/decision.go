package entity

import "time"

// Context es la foto de planeación que se somete a análisis de riesgos:
// tres listas de texto libre, sin cota de longitud.
type Context struct {
	Previsions  []string `json:"previsions"`
	Processes   []string `json:"processes"`
	Constraints []string `json:"constraints"`
}

// RiskDecision es un par riesgo/decisión sugerido por el servicio de
// razonamiento. Justification y Approved los aporta el usuario al aprobar.
type RiskDecision struct {
	Risk          string `json:"risk"`
	Decision      string `json:"decision"`
	Justification string `json:"justification,omitempty"`
	Approved      bool   `json:"approved"`
}

// DecisionContext es el registro durable de un análisis aprobado.
// Es append-only: se crea una vez y nunca se actualiza ni se borra.
type DecisionContext struct {
	Document
	UserID         string         `json:"user_id"`
	Date           time.Time      `json:"date"`
	Context        Context        `json:"context"`
	RisksDecisions []RiskDecision `json:"risks_decisions"`
}
