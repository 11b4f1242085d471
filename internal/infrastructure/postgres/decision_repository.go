package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

var _ repository.DecisionContextRepository = (*DecisionContextRepo)(nil)

// DecisionContextRepo persistencia de contextos de decisión: la colección es
// append-only, así que solo expone insert y listado por usuario.
type DecisionContextRepo struct {
	pool *pgxpool.Pool
	docs *RecordStore[entity.DecisionContext, *entity.DecisionContext]
}

// NewDecisionContextRepository construye el adaptador.
func NewDecisionContextRepository(pool *pgxpool.Pool) *DecisionContextRepo {
	return &DecisionContextRepo{
		pool: pool,
		docs: NewRecordStore[entity.DecisionContext, *entity.DecisionContext](pool, TableDecisionContexts),
	}
}

// Create inserta un contexto de decisión.
func (r *DecisionContextRepo) Create(ctx context.Context, dc *entity.DecisionContext) error {
	return r.docs.Create(ctx, dc)
}

// ListByUser devuelve todos los contextos del usuario, los más recientes
// primero; slice vacío si no hay ninguno.
func (r *DecisionContextRepo) ListByUser(ctx context.Context, userID string) ([]*entity.DecisionContext, error) {
	query := fmt.Sprintf(
		`SELECT doc FROM %s WHERE doc->>'user_id' = $1 ORDER BY created_at DESC`,
		TableDecisionContexts,
	)
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list decision contexts: %w", err)
	}
	defer rows.Close()

	var list []*entity.DecisionContext
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan decision context: %w", err)
		}
		dc, err := r.docs.decode(doc)
		if err != nil {
			return nil, err
		}
		list = append(list, dc)
	}
	return list, rows.Err()
}
