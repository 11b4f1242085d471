package repository

import (
	"context"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// DecisionContextRepository define el puerto de persistencia para los
// contextos de decisión. La colección es append-only: solo insertar y listar.
type DecisionContextRepository interface {
	Create(ctx context.Context, dc *entity.DecisionContext) error
	// ListByUser devuelve todos los contextos de un usuario; slice vacío si no hay.
	ListByUser(ctx context.Context, userID string) ([]*entity.DecisionContext, error)
}
