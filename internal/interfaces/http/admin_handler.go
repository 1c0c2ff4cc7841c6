package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/datanova-api/internal/application/usecase"
)

// AdminHandler endpoints solo para ADMIN.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Overview godoc
// @Summary      Conteos globales (usuarios, workflows por categorie, productos, ventas...)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminOverview
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/overview [get]
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
