package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/application/usecase"
)

// WorkflowHandler CRUD de workflows.
type WorkflowHandler struct {
	uc *usecase.WorkflowUseCase
}

// NewWorkflowHandler construye el handler.
func NewWorkflowHandler(uc *usecase.WorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{uc: uc}
}

// Create godoc
// @Summary      Crear workflow (el dueño es el usuario del token)
// @Tags         workflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkflowRequest  true  "nom, description, categorieId"
// @Success      201   {object}  dto.WorkflowResponse
// @Failure      400   {object}  dto.ErrorResponse  "INVALID_CATEGORIE o validación"
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/workflow [post]
func (h *WorkflowHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkflowRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los workflows
// @Tags         workflow
// @Produce      json
// @Param        expand  query  bool  false  "Expandir categorieId (default true)"
// @Success      200  {array}  dto.WorkflowResponse
// @Router       /api/workflow/all [get]
func (h *WorkflowHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext(), readOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Listar los workflows del usuario del token
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Param        expand  query  bool  false  "Expandir categorieId (default true)"
// @Success      200  {array}  dto.WorkflowResponse
// @Router       /api/workflow [get]
func (h *WorkflowHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), actor(c), readOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener workflow
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del workflow"
// @Param        expand  query  bool    false  "Expandir categorieId (default true)"
// @Success      200  {object}  dto.WorkflowResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workflow/{id} [get]
func (h *WorkflowHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), readOptions(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar workflow (dueño o ADMIN)
// @Tags         workflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del workflow"
// @Param        body  body  dto.UpdateWorkflowRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WorkflowResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/workflow/{id} [put]
func (h *WorkflowHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkflowRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), actor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar workflow (dueño o ADMIN). No borra empleados, productos ni ventas.
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del workflow"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workflow/{id} [delete]
func (h *WorkflowHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return deleted(c)
}
