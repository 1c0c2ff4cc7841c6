package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/application/usecase"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/infrastructure/spreadsheet"
)

// ImportHandler carga masiva de empleados, productos y ventas.
type ImportHandler struct {
	uc *usecase.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *usecase.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importar filas (JSON o archivo .xlsx/.csv)
// @Description  Acepta JSON {workflowId, rows:[...]} o multipart con los campos workflowId y file.
// @Description  Cada fila se crea por separado; las fallidas se reportan en skipped y no detienen el resto.
// @Tags         import
// @Security     Bearer
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        body  body  dto.ImportRequest  false  "Filas en JSON"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employee/import [post]
// @Router       /api/product/import [post]
// @Router       /api/sale/import [post]
func (h *ImportHandler) Import(kind usecase.ImportKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		workflowID, rows, err := importRows(c)
		if err != nil {
			return respondError(c, err)
		}
		out, err := h.uc.Import(c.UserContext(), actor(c), kind, workflowID, rows)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

// importRows lee las filas del body según el Content-Type.
func importRows(c *fiber.Ctx) (string, []dto.ImportRow, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return importRowsFromFile(c)
	}
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return "", nil, fmt.Errorf("%w: cuerpo inválido", domain.ErrInvalidInput)
	}
	rows := make([]dto.ImportRow, 0, len(in.Rows))
	for i, r := range in.Rows {
		rows = append(rows, dto.NewImportRow(i+1, r))
	}
	return in.WorkflowID, rows, nil
}

func importRowsFromFile(c *fiber.Ctx) (string, []dto.ImportRow, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("%w: el campo file es obligatorio", domain.ErrInvalidInput)
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, fmt.Errorf("abrir archivo: %w", err)
	}
	defer f.Close()

	sheet, err := spreadsheet.Read(fh.Filename, f)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	rows := make([]dto.ImportRow, 0, len(sheet))
	for _, r := range sheet {
		rows = append(rows, dto.ImportRow{Number: r.Number, Cells: r.Cells})
	}
	return c.FormValue("workflowId"), rows, nil
}
