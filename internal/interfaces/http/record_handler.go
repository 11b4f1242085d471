package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/usecase"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// RecordHandler es el handler CRUD genérico del almacén de registros: cada
// colección (ventas, producción, inventario, pedidos, envíos, planes S&OP)
// monta una instancia con las rutas que su ciclo de vida permite.
type RecordHandler[T any, PT interface {
	repository.Record
	*T
}] struct {
	uc   *usecase.RecordUseCase[T, PT]
	name string // nombre legible del recurso para mensajes de error
}

// NewRecordHandler construye el handler de una colección.
func NewRecordHandler[T any, PT interface {
	repository.Record
	*T
}](uc *usecase.RecordUseCase[T, PT], name string) *RecordHandler[T, PT] {
	return &RecordHandler[T, PT]{uc: uc, name: name}
}

// Create inserta un documento nuevo; el id y created_at los asigna el servidor.
func (h *RecordHandler[T, PT]) Create(c *fiber.Ctx) error {
	rec := PT(new(T))
	if err := c.BodyParser(rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), rec)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve un documento o 404.
func (h *RecordHandler[T, PT]) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update reemplaza el documento completo (sin patch) o 404.
func (h *RecordHandler[T, PT]) Update(c *fiber.Ctx) error {
	rec := PT(new(T))
	if err := c.BodyParser(rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), rec)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete borra el documento y devuelve el valor borrado, o 404.
func (h *RecordHandler[T, PT]) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List devuelve hasta 100 documentos, los más recientes primero.
func (h *RecordHandler[T, PT]) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		out = []PT{}
	}
	return c.JSON(out)
}

// recordRoutes indica qué operaciones expone una colección además de
// create/read/list: no toda colección permite update o delete.
type recordRoutes struct {
	Update bool
	Delete bool
}

// mountRecordRoutes registra las rutas CRUD de una colección en el grupo.
func mountRecordRoutes[T any, PT interface {
	repository.Record
	*T
}](g fiber.Router, h *RecordHandler[T, PT], routes recordRoutes) {
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	if routes.Update {
		g.Put("/:id", h.Update)
	}
	if routes.Delete {
		g.Delete("/:id", h.Delete)
	}
}
