// Package pdf dibuja el reporte de un workflow con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del workflow + categorie │ Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: totales / promedio                                │
//	│  TABLA: productos (VENTE) o empleados (PERFO_EMP)           │
//	│  SERIE: mes o periode con su valor                          │
//	│  PROYECCIÓN: pendiente + valores proyectados                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el id del workflow                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/pkg/trend"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// WorkflowReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type WorkflowReportGenerator struct {
	now func() time.Time
}

// NewWorkflowReportGenerator construye el generador.
func NewWorkflowReportGenerator() *WorkflowReportGenerator {
	return &WorkflowReportGenerator{now: time.Now}
}

// GenerateWorkflowReport genera el PDF y devuelve sus bytes.
func (g *WorkflowReportGenerator) GenerateWorkflowReport(_ context.Context, ins *dto.WorkflowInsights) ([]byte, error) {
	if ins == nil {
		return nil, fmt.Errorf("pdf: insights nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte DataNova: "+ins.Name, true).
		WithAuthor("DataNova BI", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ins, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	switch {
	case ins.Sales != nil:
		m.AddRows(salesRows(ins.Sales)...)
	case ins.Performance != nil:
		m.AddRows(performanceRows(ins.Performance)...)
	default:
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin datos: la categorie del workflow no existe.", props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(ins.WorkflowID))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(ins *dto.WorkflowInsights, at time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(ins.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Categorie: "+nonEmpty(ins.CategoryCode, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE WORKFLOW", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+at.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func salesRows(s *dto.SalesInsights) []core.Row {
	rows := []core.Row{
		sectionTitle("RESUMEN DE VENTAS"),
		row.New(7).Add(
			col.New(6).Add(text.New("Unidades vendidas: "+strconv.Itoa(s.TotalQuantity), props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New("Ingreso total: $"+money(s.TotalRevenue), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		),
		tableHeaderRow(
			headerCell{"Producto", 6, align.Left},
			headerCell{"P.Unit", 2, align.Right},
			headerCell{"Cant.", 1, align.Center},
			headerCell{"Ingreso", 3, align.Right},
		),
	}
	for _, p := range s.Products {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(nonEmpty(p.Name, p.ProductID), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New("$"+money(p.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("$"+money(p.Revenue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	rows = append(rows, seriesRows("INGRESO MENSUAL", s.Monthly, true)...)
	return append(rows, projectionRow(s.Projection, true))
}

func performanceRows(p *dto.PerformanceInsights) []core.Row {
	rows := []core.Row{
		sectionTitle("RESUMEN DE DESEMPEÑO"),
		row.New(7).Add(col.New(12).Add(
			text.New("Puntaje promedio: "+score(p.AverageScore), props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		)),
		tableHeaderRow(
			headerCell{"Matricule", 3, align.Left},
			headerCell{"Empleado", 5, align.Left},
			headerCell{"Registros", 2, align.Center},
			headerCell{"Promedio", 2, align.Right},
		),
	}
	for _, e := range p.Employees {
		rows = append(rows, row.New(7).Add(
			col.New(3).Add(text.New(nonEmpty(e.Matricule, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(nonEmpty(e.Name, e.EmployeeID), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(e.Count), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(score(e.Average), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	rows = append(rows, seriesRows("PROMEDIO POR PERIODE", p.Periods, false)...)
	return append(rows, projectionRow(p.Projection, false))
}

func seriesRows(title string, points []dto.SeriesPoint, isMoney bool) []core.Row {
	rows := []core.Row{line.NewRow(3), sectionTitle(title)}
	for _, pt := range points {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(pt.Label, props.Text{Size: 8, Left: 2})),
			col.New(6).Add(text.New(formatValue(pt.Value, isMoney), props.Text{Size: 8, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

// projectionRow: una fila con la pendiente y los valores por delante.
func projectionRow(p *trend.Projection, isMoney bool) core.Row {
	if p == nil {
		return row.New(8).Add(col.New(12).Add(
			text.New("Proyección: datos insuficientes (se necesitan al menos 2 puntos).", props.Text{
				Size: 8, Top: 3, Color: colorGray,
			}),
		))
	}
	values := make([]string, len(p.Values))
	for i, v := range p.Values {
		values[i] = fmt.Sprintf("+%d: %s", i+1, formatValue(v, isMoney))
	}
	return row.New(12).Add(col.New(12).Add(
		text.New("PROYECCIÓN", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
		text.New(fmt.Sprintf("Pendiente %.2f   |   %s", p.Slope, strings.Join(values, "   ")), props.Text{
			Size: 8, Top: 7, Color: colorGray,
		}),
	))
}

func footerRow(workflowID string) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(workflowID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Workflow "+workflowID, props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New("Generado por DataNova BI", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 14, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

type headerCell struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(cells ...headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func money(d decimal.Decimal) string {
	return formatMoney(d.StringFixed(0))
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatValue(v float64, isMoney bool) string {
	if isMoney {
		return "$" + money(decimal.NewFromFloat(v))
	}
	return score(v)
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
