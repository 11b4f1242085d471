package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// listCap es el tope fijo de los listados: sin cursor de paginación,
// máximo 100 documentos por respuesta.
const listCap = 100

// RecordUseCase es la fachada CRUD genérica del almacén de registros.
// Una instancia por colección (ventas, producción, inventario, pedidos,
// envíos, planes S&OP); cada una es independiente, sin acoplamiento
// transaccional entre colecciones.
type RecordUseCase[T any, PT interface {
	repository.Record
	*T
}] struct {
	repo repository.RecordRepository[T, PT]
}

// NewRecordUseCase construye la fachada sobre el repositorio de la colección.
func NewRecordUseCase[T any, PT interface {
	repository.Record
	*T
}](repo repository.RecordRepository[T, PT]) *RecordUseCase[T, PT] {
	return &RecordUseCase[T, PT]{repo: repo}
}

// Create asigna id, estampa la fecha de creación e inserta.
func (uc *RecordUseCase[T, PT]) Create(ctx context.Context, rec PT) (PT, error) {
	rec.Stamp(uuid.New().String(), time.Now())
	if err := uc.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetByID devuelve el documento o domain.ErrNotFound.
func (uc *RecordUseCase[T, PT]) GetByID(ctx context.Context, id string) (PT, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// Update reemplaza el cuerpo completo del documento (sin semántica de patch),
// conserva el created_at original y estampa updated_at.
func (uc *RecordUseCase[T, PT]) Update(ctx context.Context, id string, rec PT) (PT, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	rec.Stamp(id, existing.CreationTime())
	rec.Touch(time.Now())
	if err := uc.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete borra el documento y lo devuelve, o domain.ErrNotFound.
func (uc *RecordUseCase[T, PT]) Delete(ctx context.Context, id string) (PT, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrNotFound
	}
	return deleted, nil
}

// List devuelve hasta listCap documentos, los más recientes primero.
func (uc *RecordUseCase[T, PT]) List(ctx context.Context) ([]PT, error) {
	return uc.repo.List(ctx, listCap)
}
