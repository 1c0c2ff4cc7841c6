package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/application/usecase"
)

// PerformanceHandler CRUD de puntajes (/api/perfoEmp). Sin chequeo de dueño.
type PerformanceHandler struct {
	uc *usecase.PerformanceUseCase
}

// NewPerformanceHandler construye el handler.
func NewPerformanceHandler(uc *usecase.PerformanceUseCase) *PerformanceHandler {
	return &PerformanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar puntaje de desempeño
// @Tags         perfoEmp
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePerformanceRequest  true  "workflowId, employeeId, score, tache, periode"
// @Success      201   {object}  dto.PerformanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/perfoEmp [post]
func (h *PerformanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePerformanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/perfoEmp
func (h *PerformanceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), readOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByWorkflow GET /api/perfoEmp/workflow/:workflowId
func (h *PerformanceHandler) ListByWorkflow(c *fiber.Ctx) error {
	out, err := h.uc.ListByWorkflow(c.UserContext(), c.Params("workflowId"), readOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/perfoEmp/:id
func (h *PerformanceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), readOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/perfoEmp/:id
func (h *PerformanceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePerformanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), actor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/perfoEmp/:id
func (h *PerformanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return deleted(c)
}
