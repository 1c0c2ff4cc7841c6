package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/datanova-api/internal/application/analytics"
)

// InsightsHandler agregados y reporte PDF de un workflow.
type InsightsHandler struct {
	insights *analytics.InsightsUseCase
	reports  *analytics.ReportUseCase
}

// NewInsightsHandler construye el handler.
func NewInsightsHandler(insights *analytics.InsightsUseCase, reports *analytics.ReportUseCase) *InsightsHandler {
	return &InsightsHandler{insights: insights, reports: reports}
}

// Get godoc
// @Summary      Agregados del workflow con proyección de tendencia
// @Description  VENTE: totales, ventas por producto e ingreso mensual. PERFO_EMP: promedio por periode y por empleado.
// @Description  projection es null con menos de dos puntos.
// @Tags         workflow
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del workflow"
// @Param        ahead  query  int     false  "Periodos a proyectar (default 1, max 12)"
// @Success      200  {object}  dto.WorkflowInsights
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workflow/{id}/insights [get]
func (h *InsightsHandler) Get(c *fiber.Ctx) error {
	out, err := h.insights.Get(c.UserContext(), c.Params("id"), c.QueryInt("ahead", analytics.DefaultAhead))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF del workflow
// @Tags         workflow
// @Security     Bearer
// @Produce      application/pdf
// @Param        id     path   string  true   "ID del workflow"
// @Param        ahead  query  int     false  "Periodos a proyectar (default 1, max 12)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workflow/{id}/report [get]
func (h *InsightsHandler) Report(c *fiber.Ctx) error {
	doc, filename, err := h.reports.Download(c.UserContext(), c.Params("id"), c.QueryInt("ahead", analytics.DefaultAhead))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(doc)
}
