package repository

import (
	"context"
	"time"
)

// Record es el contrato mínimo de un documento almacenable. Lo satisface
// cualquier entidad que embeba entity.Document.
type Record interface {
	DocumentID() string
	CreationTime() time.Time
	Stamp(id string, createdAt time.Time)
	Touch(now time.Time)
}

// RecordRepository es el puerto genérico de persistencia del almacén de
// registros: seis colecciones independientes comparten este contrato (DIP).
// Las lecturas devuelven nil, nil cuando el documento no existe; Update
// devuelve domain.ErrNotFound si el id no existe; Delete devuelve el
// documento borrado (nil, nil si no existía).
type RecordRepository[T any, PT interface {
	Record
	*T
}] interface {
	Create(ctx context.Context, rec PT) error
	GetByID(ctx context.Context, id string) (PT, error)
	Update(ctx context.Context, rec PT) error
	Delete(ctx context.Context, id string) (PT, error)
	List(ctx context.Context, limit int) ([]PT, error)
}
