package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/application/usecase"
)

// LogHandler bitácora append-only: no hay PUT ni DELETE.
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler construye el handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar actividad
// @Tags         log
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLogRequest  true  "workflowId, action"
// @Success      201   {object}  dto.LogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/log [post]
func (h *LogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLogRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar actividad (más reciente primero)
// @Tags         log
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LogResponse
// @Router       /api/log [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByWorkflow GET /api/log/workflow/:workflowId
func (h *LogHandler) ListByWorkflow(c *fiber.Ctx) error {
	out, err := h.uc.ListByWorkflow(c.UserContext(), c.Params("workflowId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
