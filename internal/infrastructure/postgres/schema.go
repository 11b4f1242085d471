package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Nombres de las colecciones del almacén de documentos. Las tablas se crean
// desde este conjunto fijo; nunca desde entrada del usuario.
const (
	TableSales            = "sales"
	TableProduction       = "production"
	TableSOPPlans         = "sop_plans"
	TableInventory        = "inventory"
	TableOrders           = "orders"
	TableShipments        = "shipments"
	TableDecisionContexts = "decision_contexts"
)

var documentTables = []string{
	TableSales,
	TableProduction,
	TableSOPPlans,
	TableInventory,
	TableOrders,
	TableShipments,
	TableDecisionContexts,
}

// EnsureSchema crea las tablas si no existen. Los usuarios van en una tabla
// tipada con índice único por email; cada colección de documentos es una
// tabla (id, doc jsonb) con timestamps para ordenar listados.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const usersDDL = `
		CREATE TABLE IF NOT EXISTS users (
			id            text PRIMARY KEY,
			email         text NOT NULL,
			company_name  text NOT NULL,
			password_hash text NOT NULL,
			created_at    timestamptz NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS users_email_idx ON users (email);`
	if _, err := pool.Exec(ctx, usersDDL); err != nil {
		return fmt.Errorf("crear tabla users: %w", err)
	}

	for _, table := range documentTables {
		ddl := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id         text PRIMARY KEY,
				doc        jsonb NOT NULL,
				created_at timestamptz NOT NULL,
				updated_at timestamptz
			)`, table)
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("crear tabla %s: %w", table, err)
		}
	}

	// Los contextos de decisión se consultan por usuario.
	const dcIndex = `
		CREATE INDEX IF NOT EXISTS decision_contexts_user_idx
		ON decision_contexts ((doc->>'user_id'))`
	if _, err := pool.Exec(ctx, dcIndex); err != nil {
		return fmt.Errorf("crear índice de decision_contexts: %w", err)
	}
	return nil
}
