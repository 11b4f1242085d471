package dto

// BestDecisionRequest entrada para pedir la mejor decisión ante un problema
// nuevo, usando el historial de contextos del usuario.
type BestDecisionRequest struct {
	Problem string `json:"problem" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
}

// BestDecisionResponse salida de best-decision; no se persiste.
type BestDecisionResponse struct {
	BestDecision string `json:"best_decision"`
}
