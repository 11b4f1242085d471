package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/application/dto"
	"github.com/jhoicas/logistica-api/internal/application/usecase"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

// DecisionHandler maneja el flujo de contextos de decisión: submit (análisis
// sin persistir), approve (persistencia explícita), historial y best-decision.
type DecisionHandler struct {
	uc *usecase.DecisionUseCase
}

// NewDecisionHandler construye el handler.
func NewDecisionHandler(uc *usecase.DecisionUseCase) *DecisionHandler {
	return &DecisionHandler{uc: uc}
}

// Submit godoc
// @Summary      Analizar contexto de planeación
// @Description  Envía previsiones, procesos y restricciones al servicio de
//               razonamiento y devuelve los pares riesgo/decisión sugeridos.
//               No escribe en el almacén; publica un broadcast a los
//               suscriptores en tiempo real.
// @Tags         decision-context
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        user_id  query  string          true  "ID del usuario que somete el contexto"
// @Param        body     body   entity.Context  true  "previsions, processes, constraints"
// @Success      200  {object}  map[string][]entity.RiskDecision
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/decision-context/submit [post]
func (h *DecisionHandler) Submit(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	var in entity.Context
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pairs, err := h.uc.Submit(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"risks_decisions": pairs})
}

// Approve godoc
// @Summary      Aprobar y persistir un contexto de decisión
// @Description  Guarda el DecisionContext completo con el veredicto del
//               usuario por cada par riesgo/decisión. Único paso que escribe.
// @Tags         decision-context
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.DecisionContext  true  "contexto de decisión completo"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/decision-context/approve [post]
func (h *DecisionHandler) Approve(c *fiber.Ctx) error {
	var in entity.DecisionContext
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	saved, err := h.uc.Approve(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "DecisionContext guardado", ID: saved.ID})
}

// ListForUser godoc
// @Summary      Historial de contextos de un usuario
// @Tags         decision-context
// @Security     Bearer
// @Produce      json
// @Param        user_id  path  string  true  "ID del usuario"
// @Success      200  {array}   entity.DecisionContext
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/decision-contexts/user/{user_id} [get]
func (h *DecisionHandler) ListForUser(c *fiber.Ctx) error {
	list, err := h.uc.ListForUser(c.Context(), c.Params("user_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// BestDecision godoc
// @Summary      Mejor decisión para un problema nuevo
// @Description  Usa el historial de contextos del usuario como base y pide al
//               servicio de razonamiento la decisión recomendada. No persiste.
// @Tags         decision-context
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BestDecisionRequest  true  "problem y user_id"
// @Success      200   {object}  dto.BestDecisionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/decision-context/best-decision [post]
func (h *DecisionHandler) BestDecision(c *fiber.Ctx) error {
	var in dto.BestDecisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	decision, err := h.uc.BestDecision(c.Context(), in.Problem, in.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BestDecisionResponse{BestDecision: decision})
}
