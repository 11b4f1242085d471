package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que RecordStore implementa el puerto genérico.
var _ repository.RecordRepository[entity.Sale, *entity.Sale] = (*RecordStore[entity.Sale, *entity.Sale])(nil)

// RecordStore implementa RecordRepository sobre una tabla JSONB: el
// documento completo vive en la columna doc y los timestamps en columnas
// propias para ordenar listados. Una instancia por colección.
type RecordStore[T any, PT interface {
	repository.Record
	*T
}] struct {
	pool  *pgxpool.Pool
	table string // siempre una de las constantes Table*, nunca entrada externa
}

// NewRecordStore construye el adaptador de persistencia de una colección.
func NewRecordStore[T any, PT interface {
	repository.Record
	*T
}](pool *pgxpool.Pool, table string) *RecordStore[T, PT] {
	return &RecordStore[T, PT]{pool: pool, table: table}
}

// Create inserta el documento serializado.
func (s *RecordStore[T, PT]) Create(ctx context.Context, rec PT) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, doc, created_at) VALUES ($1, $2, $3)`, s.table)
	if _, err := s.pool.Exec(ctx, query, rec.DocumentID(), doc, rec.CreationTime()); err != nil {
		return fmt.Errorf("insert en %s: %w", s.table, err)
	}
	return nil
}

// GetByID devuelve el documento o nil, nil si no existe.
func (s *RecordStore[T, PT]) GetByID(ctx context.Context, id string) (PT, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, s.table)
	var doc []byte
	err := s.pool.QueryRow(ctx, query, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get en %s: %w", s.table, err)
	}
	return s.decode(doc)
}

// Update reemplaza el documento completo; domain.ErrNotFound si el id no existe.
func (s *RecordStore[T, PT]) Update(ctx context.Context, rec PT) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	query := fmt.Sprintf(`UPDATE %s SET doc = $2, updated_at = $3 WHERE id = $1`, s.table)
	tag, err := s.pool.Exec(ctx, query, rec.DocumentID(), doc, time.Now())
	if err != nil {
		return fmt.Errorf("update en %s: %w", s.table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el documento y lo devuelve; nil, nil si no existía.
func (s *RecordStore[T, PT]) Delete(ctx context.Context, id string) (PT, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING doc`, s.table)
	var doc []byte
	err := s.pool.QueryRow(ctx, query, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete en %s: %w", s.table, err)
	}
	return s.decode(doc)
}

// List devuelve hasta limit documentos, los más recientes primero.
func (s *RecordStore[T, PT]) List(ctx context.Context, limit int) ([]PT, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s ORDER BY created_at DESC LIMIT $1`, s.table)
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list en %s: %w", s.table, err)
	}
	defer rows.Close()

	var list []PT
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan en %s: %w", s.table, err)
		}
		rec, err := s.decode(doc)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func (s *RecordStore[T, PT]) decode(doc []byte) (PT, error) {
	rec := PT(new(T))
	if err := json.Unmarshal(doc, rec); err != nil {
		return nil, fmt.Errorf("deserializar documento de %s: %w", s.table, err)
	}
	return rec, nil
}
