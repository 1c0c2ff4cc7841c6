package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// ImportRequest carga masiva en JSON: cada fila usa los mismos nombres de
// campo que el create correspondiente (sin workflowId).
type ImportRequest struct {
	WorkflowID string           `json:"workflowId" validate:"required"`
	Rows       []map[string]any `json:"rows"`
}

// ImportSkip fila descartada. Row es la fila de datos del origen (1 = primera
// bajo los encabezados); las filas en blanco del archivo también cuentan.
type ImportSkip struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult resumen de la carga: una fila fallida no detiene las siguientes.
type ImportResult struct {
	Created    int          `json:"created"`
	CreatedIDs []string     `json:"createdIds"`
	Skipped    []ImportSkip `json:"skipped"`
}

// ImportRow celdas de una fila con claves en minúsculas. Number es la fila
// en el origen (1 = primera de datos); 0 usa la posición dentro del lote.
type ImportRow struct {
	Number int
	Cells  map[string]string
}

// NewImportRow normaliza una fila JSON: claves en minúsculas y valores como texto.
func NewImportRow(number int, m map[string]any) ImportRow {
	cells := make(map[string]string, len(m))
	for k, v := range m {
		key := strings.ToLower(strings.TrimSpace(k))
		switch val := v.(type) {
		case nil:
			cells[key] = ""
		case string:
			cells[key] = strings.TrimSpace(val)
		case float64:
			cells[key] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			cells[key] = fmt.Sprint(val)
		}
	}
	return ImportRow{Number: number, Cells: cells}
}

// Get devuelve la celda de la columna name sin distinguir mayúsculas.
func (r ImportRow) Get(name string) string {
	return r.Cells[strings.ToLower(name)]
}
