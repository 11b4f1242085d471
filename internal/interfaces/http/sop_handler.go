package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/usecase"
)

// SOPHandler genera planes S&OP a partir de ventas y producción.
type SOPHandler struct {
	uc *usecase.SOPUseCase
}

// NewSOPHandler construye el handler.
func NewSOPHandler(uc *usecase.SOPUseCase) *SOPHandler {
	return &SOPHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar plan S&OP
// @Description  Agrega ventas (demanda) y producción (capacidad) por producto
//               y persiste el plan resultante.
// @Tags         sop
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  entity.SOPPlan
// @Router       /api/sop/generate [post]
func (h *SOPHandler) Generate(c *fiber.Ctx) error {
	plan, err := h.uc.Generate(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}
