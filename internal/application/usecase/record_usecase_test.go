package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/usecase"
	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// fakeRecordRepo repositorio en memoria para una colección; conserva el orden
// de inserción y lista los más recientes primero, como el almacén real.
type fakeRecordRepo[T any, PT interface {
	repository.Record
	*T
}] struct {
	byID  map[string]PT
	order []string
}

func newFakeRecordRepo[T any, PT interface {
	repository.Record
	*T
}]() *fakeRecordRepo[T, PT] {
	return &fakeRecordRepo[T, PT]{byID: map[string]PT{}}
}

func (f *fakeRecordRepo[T, PT]) Create(_ context.Context, rec PT) error {
	f.byID[rec.DocumentID()] = rec
	f.order = append(f.order, rec.DocumentID())
	return nil
}

func (f *fakeRecordRepo[T, PT]) GetByID(_ context.Context, id string) (PT, error) {
	return f.byID[id], nil
}

func (f *fakeRecordRepo[T, PT]) Update(_ context.Context, rec PT) error {
	if _, ok := f.byID[rec.DocumentID()]; !ok {
		return domain.ErrNotFound
	}
	f.byID[rec.DocumentID()] = rec
	return nil
}

func (f *fakeRecordRepo[T, PT]) Delete(_ context.Context, id string) (PT, error) {
	rec, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	delete(f.byID, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return rec, nil
}

func (f *fakeRecordRepo[T, PT]) List(_ context.Context, limit int) ([]PT, error) {
	var out []PT
	for i := len(f.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.byID[f.order[i]])
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func buildSalesUC() (*usecase.RecordUseCase[entity.Sale, *entity.Sale], *fakeRecordRepo[entity.Sale, *entity.Sale]) {
	repo := newFakeRecordRepo[entity.Sale, *entity.Sale]()
	return usecase.NewRecordUseCase(repo), repo
}

func TestRecordCreate_AsignaIDYFechaDeCreacion(t *testing.T) {
	uc, _ := buildSalesUC()

	out, err := uc.Create(context.Background(), &entity.Sale{ProductID: "p1", QuantitySold: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "el id lo asigna el servidor")
	assert.False(t, out.CreatedAt.IsZero())
	assert.Nil(t, out.UpdatedAt, "un documento recién creado no tiene updated_at")
}

func TestRecordGetByID_Inexistente_ErrNotFound(t *testing.T) {
	uc, _ := buildSalesUC()
	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordUpdate_ReemplazaCompletoYConservaCreatedAt(t *testing.T) {
	uc, _ := buildSalesUC()
	created, err := uc.Create(context.Background(), &entity.Sale{ProductID: "p1", QuantitySold: 3, Region: "norte"})
	require.NoError(t, err)

	// Update es reemplazo completo: los campos ausentes del body se pierden.
	updated, err := uc.Update(context.Background(), created.ID, &entity.Sale{ProductID: "p1", QuantitySold: 5})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "el created_at original se conserva")
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, 5, updated.QuantitySold)
	assert.Empty(t, updated.Region, "sin semántica de patch: el campo ausente queda vacío")
}

func TestRecordUpdate_Inexistente_ErrNotFound(t *testing.T) {
	uc, _ := buildSalesUC()
	_, err := uc.Update(context.Background(), "no-existe", &entity.Sale{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordDelete_DevuelveElDocumentoBorrado(t *testing.T) {
	uc, _ := buildSalesUC()
	created, err := uc.Create(context.Background(), &entity.Sale{ProductID: "p1"})
	require.NoError(t, err)

	deleted, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordDelete_Inexistente_ErrNotFound(t *testing.T) {
	uc, _ := buildSalesUC()
	_, err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordList_TopeDe100(t *testing.T) {
	uc, _ := buildSalesUC()
	for i := 0; i < 105; i++ {
		_, err := uc.Create(context.Background(), &entity.Sale{ProductID: "p1", SaleDate: time.Now()})
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 100, "los listados se truncan a 100 sin paginación")
}
