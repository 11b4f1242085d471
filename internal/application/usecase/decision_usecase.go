package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// llmTimeout acota la llamada al servicio de razonamiento: un upstream
// colgado no debe retener el goroutine del request indefinidamente.
const llmTimeout = 30 * time.Second

// DecisionUseCase orquesta el flujo de contextos de decisión:
// Submit y BestDecision llaman al LLM sin tocar el almacén; solo el paso
// explícito de Approve persiste, dejando al humano como compuerta entre la
// sugerencia de la IA y el registro durable.
type DecisionUseCase struct {
	llm      ports.LLMService
	repo     repository.DecisionContextRepository
	notifier ports.Broadcaster
}

// NewDecisionUseCase construye el caso de uso.
func NewDecisionUseCase(llm ports.LLMService, repo repository.DecisionContextRepository, notifier ports.Broadcaster) *DecisionUseCase {
	return &DecisionUseCase{llm: llm, repo: repo, notifier: notifier}
}

// Submit envía el contexto al servicio de razonamiento y devuelve los pares
// riesgo/decisión sugeridos. En éxito publica exactamente un broadcast
// etiquetado con el user_id; en fallo no hay broadcast ni escritura.
func (uc *DecisionUseCase) Submit(ctx context.Context, userID string, c entity.Context) ([]entity.RiskDecision, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id es requerido", domain.ErrInvalidInput)
	}
	if c.Previsions == nil || c.Processes == nil || c.Constraints == nil {
		return nil, fmt.Errorf("%w: previsions, processes y constraints son requeridos", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	pairs, err := uc.llm.AnalyzeRisks(ctx, c)
	if err != nil {
		return nil, err
	}

	uc.notifier.Broadcast(ports.DecisionUpdate{UserID: userID, RisksDecisions: pairs})
	return pairs, nil
}

// Approve persiste el DecisionContext completo tal cual llega, con el
// veredicto y la justificación que el usuario puso en cada par. Sin merge ni
// dedup contra registros anteriores.
func (uc *DecisionUseCase) Approve(ctx context.Context, dc *entity.DecisionContext) (*entity.DecisionContext, error) {
	if dc.UserID == "" {
		return nil, fmt.Errorf("%w: user_id es requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	if dc.ID == "" {
		dc.Stamp(uuid.New().String(), now)
	} else if dc.CreatedAt.IsZero() {
		dc.CreatedAt = now
	}
	if dc.Date.IsZero() {
		dc.Date = now
	}
	if err := uc.repo.Create(ctx, dc); err != nil {
		return nil, err
	}
	return dc, nil
}

// ListForUser devuelve el historial de contextos del usuario.
// Un historial vacío se reporta como domain.ErrNotFound, igual que un id
// inexistente: los clientes existentes dependen de ese 404.
func (uc *DecisionUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.DecisionContext, error) {
	userID = cleanUserID(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id es requerido", domain.ErrInvalidInput)
	}
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	return list, nil
}

// BestDecision carga el historial del usuario y pide al servicio de
// razonamiento la mejor decisión para el problema dado. No persiste nada.
func (uc *DecisionUseCase) BestDecision(ctx context.Context, problem, userID string) (string, error) {
	if strings.TrimSpace(problem) == "" {
		return "", fmt.Errorf("%w: problem es requerido", domain.ErrInvalidInput)
	}
	history, err := uc.ListForUser(ctx, userID)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	return uc.llm.BestDecision(ctx, problem, history)
}

// cleanUserID quita espacios y comillas sueltas que algunos clientes
// arrastran en el path param (p. ej. `"user1"` en vez de user1).
func cleanUserID(userID string) string {
	return strings.Trim(strings.TrimSpace(userID), `"'`)
}
