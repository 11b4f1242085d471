package ports

import "github.com/jhoicas/logistica-api/internal/domain/entity"

// DecisionUpdate es el sobre que reciben los suscriptores en tiempo real.
// Sin acuse, sin orden garantizado, sin replay.
type DecisionUpdate struct {
	UserID         string                `json:"user_id"`
	RisksDecisions []entity.RiskDecision `json:"risks_decisions"`
}

// Broadcaster define el puerto hacia el registro de conexiones en tiempo
// real. La entrega es best-effort: un suscriptor caído no afecta al resto.
type Broadcaster interface {
	Broadcast(msg any)
}
