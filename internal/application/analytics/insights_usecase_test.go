package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/datanova-api/internal/application/analytics"
	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/infrastructure/memory"
)

func month(m time.Month) time.Time {
	return time.Date(2024, m, 15, 10, 0, 0, 0, time.UTC)
}

func TestSummarizeSales_Widget(t *testing.T) {
	products := []*entity.Product{{ID: "p1", Name: "Widget", UnitPrice: decimal.NewFromInt(10)}}
	sales := []*entity.Sale{
		{ID: "s1", ProductID: "p1", Quantity: 3, CreatedAt: month(time.January)},
		{ID: "s2", ProductID: "p1", Quantity: 2, CreatedAt: month(time.January)},
	}

	out := analytics.SummarizeSales(products, sales, 1)
	assert.Equal(t, 5, out.TotalQuantity)
	assert.True(t, decimal.NewFromInt(50).Equal(out.TotalRevenue), out.TotalRevenue.String())
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Widget", out.Products[0].Name)
	require.Len(t, out.Monthly, 1)
	assert.Nil(t, out.Projection, "un solo mes no alcanza para proyectar")
}

func TestSummarizeSales_ProductoBorradoSinIngreso(t *testing.T) {
	sales := []*entity.Sale{{ID: "s1", ProductID: "borrado", Quantity: 4, CreatedAt: month(time.March)}}
	out := analytics.SummarizeSales(nil, sales, 1)
	assert.Equal(t, 4, out.TotalQuantity)
	assert.True(t, out.TotalRevenue.IsZero())
}

func TestSummarizeSales_ProyeccionMensual(t *testing.T) {
	products := []*entity.Product{{ID: "p1", Name: "Widget", UnitPrice: decimal.NewFromInt(10)}}
	sales := []*entity.Sale{
		{ID: "s1", ProductID: "p1", Quantity: 10, CreatedAt: month(time.January)},
		{ID: "s2", ProductID: "p1", Quantity: 20, CreatedAt: month(time.February)},
	}
	out := analytics.SummarizeSales(products, sales, 2)
	require.NotNil(t, out.Projection)
	assert.InDelta(t, 100, out.Projection.Slope, 1e-9)
	assert.InDeltaSlice(t, []float64{300, 400}, out.Projection.Values, 1e-9)
}

func TestSummarizePerformance_PorPeriodoYEmpleado(t *testing.T) {
	employees := []*entity.Employee{{ID: "e1", Matricule: "M1", Name: "Ana"}}
	records := []*entity.PerformanceRecord{
		{ID: "r1", EmployeeID: "e1", Score: 60, Period: "2024-01"},
		{ID: "r2", EmployeeID: "e1", Score: 70, Period: "2024-02"},
		{ID: "r3", Score: 80, Period: "2024-03"},
	}
	out := analytics.SummarizePerformance(employees, records, 1)
	assert.InDelta(t, 70, out.AverageScore, 1e-9)
	require.Len(t, out.Periods, 3)
	assert.Equal(t, "2024-01", out.Periods[0].Label)
	require.NotNil(t, out.Projection)
	assert.InDelta(t, 90, out.Projection.Values[0], 1e-9)

	require.Len(t, out.Employees, 1)
	assert.Equal(t, "M1", out.Employees[0].Matricule)
	assert.InDelta(t, 65, out.Employees[0].Average, 1e-9)
	assert.Equal(t, 2, out.Employees[0].Count)
}

func TestSummarizePerformance_AcotaEnCien(t *testing.T) {
	records := []*entity.PerformanceRecord{
		{ID: "r1", Score: 95, Period: "P1"},
		{ID: "r2", Score: 98, Period: "P2"},
		{ID: "r3", Score: 99, Period: "P3"},
	}
	out := analytics.SummarizePerformance(nil, records, 2)
	require.NotNil(t, out.Projection)
	assert.Equal(t, 100.0, out.Projection.Values[1])
}

func TestClampAhead(t *testing.T) {
	assert.Equal(t, analytics.DefaultAhead, analytics.ClampAhead(0))
	assert.Equal(t, 3, analytics.ClampAhead(3))
	assert.Equal(t, analytics.MaxAhead, analytics.ClampAhead(99))
}

func TestInsightsUseCase_Get(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Categories.Create(ctx, &entity.Category{ID: "c1", Code: entity.CategoryVente}))
	require.NoError(t, s.Workflows.Create(ctx, &entity.Workflow{ID: "w1", CategoryID: "c1", Name: "Ventas"}))
	require.NoError(t, s.Products.Create(ctx, &entity.Product{ID: "p1", WorkflowID: "w1", Name: "Widget", UnitPrice: decimal.NewFromInt(10)}))
	require.NoError(t, s.Sales.Create(ctx, &entity.Sale{ID: "s1", WorkflowID: "w1", ProductID: "p1", Quantity: 3, CreatedAt: month(time.May)}))
	require.NoError(t, s.Sales.Create(ctx, &entity.Sale{ID: "s2", WorkflowID: "w1", ProductID: "p1", Quantity: 2, CreatedAt: month(time.May)}))

	uc := analytics.NewInsightsUseCase(s.Workflows, s.Categories, s.Products, s.Sales, s.Employees, s.Performances)
	out, err := uc.Get(ctx, "w1", 0)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryVente, out.CategoryCode)
	assert.Nil(t, out.Performance)
	require.NotNil(t, out.Sales)
	assert.Equal(t, "50", out.Sales.TotalRevenue.String())

	_, err = uc.Get(ctx, "nada", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type fakeGenerator struct{ got *dto.WorkflowInsights }

func (g *fakeGenerator) GenerateWorkflowReport(_ context.Context, ins *dto.WorkflowInsights) ([]byte, error) {
	g.got = ins
	return []byte("%PDF-fake"), nil
}

func TestReportUseCase_Download(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Categories.Create(ctx, &entity.Category{ID: "c1", Code: entity.CategoryPerfoEmp}))
	require.NoError(t, s.Workflows.Create(ctx, &entity.Workflow{ID: "w9", CategoryID: "c1", Name: "Equipo"}))

	gen := &fakeGenerator{}
	uc := analytics.NewReportUseCase(
		analytics.NewInsightsUseCase(s.Workflows, s.Categories, s.Products, s.Sales, s.Employees, s.Performances),
		gen,
	)
	doc, name, err := uc.Download(ctx, "w9", 2)
	require.NoError(t, err)
	assert.Equal(t, "workflow-w9.pdf", name)
	assert.Equal(t, []byte("%PDF-fake"), doc)
	require.NotNil(t, gen.got.Performance)
	assert.Nil(t, gen.got.Performance.Projection)
}
