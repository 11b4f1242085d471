package ports

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// LLMService define el puerto de salida hacia el servicio de razonamiento.
// Cualquier adaptador (OpenRouter, mock de tests) debe implementar esta
// interfaz; la aplicación solo conoce este contrato (DIP).
// El contexto debe llevar un timeout: la llamada externa puede colgarse.
type LLMService interface {
	// AnalyzeRisks envía el contexto de planeación y devuelve la lista de
	// pares riesgo/decisión sugeridos. Errores: domain.ErrUpstreamAuth si el
	// upstream rechaza las credenciales, domain.ErrUpstream para cualquier
	// otro fallo (HTTP no-2xx, respuesta que no parsea como JSON).
	AnalyzeRisks(ctx context.Context, c entity.Context) ([]entity.RiskDecision, error)

	// BestDecision envía un problema nuevo junto con el historial serializado
	// de contextos del usuario y devuelve la decisión recomendada.
	BestDecision(ctx context.Context, problem string, history []*entity.DecisionContext) (string, error)
}
