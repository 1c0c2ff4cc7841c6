package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/pkg/trend"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"950":      "950",
		"25000":    "25.000",
		"1000000":  "1.000.000",
		"-1234567": "-1.234.567",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), in)
	}
}

func TestGenerateWorkflowReport_Ventas(t *testing.T) {
	ins := &dto.WorkflowInsights{
		WorkflowID: "w1", Name: "Ventas Q1", CategoryCode: "VENTE", Ahead: 2,
		Sales: &dto.SalesInsights{
			TotalQuantity: 5,
			TotalRevenue:  decimal.NewFromInt(50),
			Products: []dto.ProductSalesDTO{
				{ProductID: "p1", Name: "Widget", UnitPrice: decimal.NewFromInt(10), Quantity: 5, Revenue: decimal.NewFromInt(50)},
			},
			Monthly:    []dto.SeriesPoint{{Label: "2024-01", Value: 20}, {Label: "2024-02", Value: 30}},
			Projection: &trend.Projection{Slope: 10, Values: []float64{40, 50}},
		},
	}
	out, err := NewWorkflowReportGenerator().GenerateWorkflowReport(context.Background(), ins)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateWorkflowReport_DesempenoSinProyeccion(t *testing.T) {
	ins := &dto.WorkflowInsights{
		WorkflowID: "w2", Name: "Equipo", CategoryCode: "PERFO_EMP", Ahead: 1,
		Performance: &dto.PerformanceInsights{
			AverageScore: 70,
			Periods:      []dto.SeriesPoint{{Label: "2024-01", Value: 70}},
			Employees:    []dto.EmployeeScoreDTO{{EmployeeID: "e1", Matricule: "M1", Name: "Ana", Average: 70, Count: 1}},
		},
	}
	out, err := NewWorkflowReportGenerator().GenerateWorkflowReport(context.Background(), ins)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateWorkflowReport_SinCategorie(t *testing.T) {
	out, err := NewWorkflowReportGenerator().GenerateWorkflowReport(context.Background(), &dto.WorkflowInsights{WorkflowID: "w3", Name: "Huérfano"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = NewWorkflowReportGenerator().GenerateWorkflowReport(context.Background(), nil)
	assert.Error(t, err)
}
