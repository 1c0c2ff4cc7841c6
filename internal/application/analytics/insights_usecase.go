// Package analytics contiene los agregados de lectura de un workflow: series,
// totales y proyección de tendencia, y el reporte PDF que los resume.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
	"github.com/jhoicas/datanova-api/pkg/trend"
)

const (
	// DefaultAhead periodos proyectados si el llamador no indica otro valor.
	DefaultAhead = 1
	// MaxAhead tope de periodos proyectados.
	MaxAhead = 12
)

// InsightsUseCase calcula los agregados de un workflow según su categorie.
type InsightsUseCase struct {
	workflows    repository.WorkflowRepository
	categories   repository.CategoryRepository
	products     repository.ProductRepository
	sales        repository.SaleRepository
	employees    repository.EmployeeRepository
	performances repository.PerformanceRepository
}

// NewInsightsUseCase construye el caso de uso.
func NewInsightsUseCase(
	workflows repository.WorkflowRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	employees repository.EmployeeRepository,
	performances repository.PerformanceRepository,
) *InsightsUseCase {
	return &InsightsUseCase{
		workflows:    workflows,
		categories:   categories,
		products:     products,
		sales:        sales,
		employees:    employees,
		performances: performances,
	}
}

// ClampAhead lleva ahead al rango [1, MaxAhead]; 0 o negativo => DefaultAhead.
func ClampAhead(ahead int) int {
	switch {
	case ahead <= 0:
		return DefaultAhead
	case ahead > MaxAhead:
		return MaxAhead
	default:
		return ahead
	}
}

// Get arma los agregados del workflow id. Un workflow cuya categorie ya no
// existe devuelve solo la cabecera.
func (uc *InsightsUseCase) Get(ctx context.Context, id string, ahead int) (*dto.WorkflowInsights, error) {
	w, err := uc.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: workflow %q", domain.ErrNotFound, id)
	}
	cat, err := uc.categories.GetByID(ctx, w.CategoryID)
	if err != nil {
		return nil, err
	}

	out := &dto.WorkflowInsights{WorkflowID: w.ID, Name: w.Name, Ahead: ClampAhead(ahead)}
	if cat == nil {
		return out, nil
	}
	out.CategoryCode = cat.Code

	switch cat.Code {
	case entity.CategoryVente:
		out.Sales, err = uc.salesInsights(ctx, w.ID, out.Ahead)
	case entity.CategoryPerfoEmp:
		out.Performance, err = uc.performanceInsights(ctx, w.ID, out.Ahead)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// salesInsights lee productos y ventas en paralelo.
func (uc *InsightsUseCase) salesInsights(ctx context.Context, workflowID string, ahead int) (*dto.SalesInsights, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type salesResult struct {
		list []*entity.Sale
		err  error
	}
	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		list, err := uc.products.ListByWorkflow(ctx, workflowID)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.sales.ListByWorkflow(ctx, workflowID)
		salesCh <- salesResult{list, err}
	}()

	products := <-productsCh
	sales := <-salesCh
	if products.err != nil {
		return nil, fmt.Errorf("insights: productos: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("insights: ventas: %w", sales.err)
	}
	return SummarizeSales(products.list, sales.list, ahead), nil
}

// SummarizeSales totales, desglose por producto y serie mensual de ingresos.
// Ingreso = Σ qte·pu con aritmética decimal; una venta cuyo producto ya no
// existe suma cantidad pero no ingreso.
func SummarizeSales(products []*entity.Product, sales []*entity.Sale, ahead int) *dto.SalesInsights {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := &dto.SalesInsights{TotalRevenue: decimal.Zero, Products: []dto.ProductSalesDTO{}, Monthly: []dto.SeriesPoint{}}
	perProduct := map[string]*dto.ProductSalesDTO{}
	monthly := map[string]decimal.Decimal{}

	for _, s := range sales {
		out.TotalQuantity += s.Quantity

		agg, ok := perProduct[s.ProductID]
		if !ok {
			agg = &dto.ProductSalesDTO{ProductID: s.ProductID, Revenue: decimal.Zero}
			if p, found := byID[s.ProductID]; found {
				agg.Name = p.Name
				agg.UnitPrice = p.UnitPrice
			}
			perProduct[s.ProductID] = agg
		}
		agg.Quantity += s.Quantity

		month := s.CreatedAt.UTC().Format("2006-01")
		revenue := decimal.Zero
		if p, found := byID[s.ProductID]; found {
			revenue = p.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
		}
		agg.Revenue = agg.Revenue.Add(revenue)
		out.TotalRevenue = out.TotalRevenue.Add(revenue)
		monthly[month] = monthly[month].Add(revenue)
	}

	for _, agg := range perProduct {
		out.Products = append(out.Products, *agg)
	}
	sort.Slice(out.Products, func(i, j int) bool {
		if !out.Products[i].Revenue.Equal(out.Products[j].Revenue) {
			return out.Products[i].Revenue.GreaterThan(out.Products[j].Revenue)
		}
		return out.Products[i].ProductID < out.Products[j].ProductID
	})

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	values := make([]float64, 0, len(months))
	for _, m := range months {
		v := monthly[m].InexactFloat64()
		out.Monthly = append(out.Monthly, dto.SeriesPoint{Label: m, Value: v})
		values = append(values, v)
	}
	if p, ok := trend.Project(values, ahead, trend.RevenueBounds); ok {
		out.Projection = &p
	}
	return out
}

// performanceInsights lee empleados y puntajes en paralelo.
func (uc *InsightsUseCase) performanceInsights(ctx context.Context, workflowID string, ahead int) (*dto.PerformanceInsights, error) {
	type employeesResult struct {
		list []*entity.Employee
		err  error
	}
	type recordsResult struct {
		list []*entity.PerformanceRecord
		err  error
	}
	employeesCh := make(chan employeesResult, 1)
	recordsCh := make(chan recordsResult, 1)

	go func() {
		list, err := uc.employees.ListByWorkflow(ctx, workflowID)
		employeesCh <- employeesResult{list, err}
	}()
	go func() {
		list, err := uc.performances.ListByWorkflow(ctx, workflowID)
		recordsCh <- recordsResult{list, err}
	}()

	employees := <-employeesCh
	records := <-recordsCh
	if employees.err != nil {
		return nil, fmt.Errorf("insights: empleados: %w", employees.err)
	}
	if records.err != nil {
		return nil, fmt.Errorf("insights: puntajes: %w", records.err)
	}
	return SummarizePerformance(employees.list, records.list, ahead), nil
}

type average struct {
	sum   float64
	count int
}

func (a average) value() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// SummarizePerformance promedio por periode (orden lexicográfico del label),
// promedio por empleado y proyección acotada a 0–100.
func SummarizePerformance(employees []*entity.Employee, records []*entity.PerformanceRecord, ahead int) *dto.PerformanceInsights {
	byID := make(map[string]*entity.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	out := &dto.PerformanceInsights{Periods: []dto.SeriesPoint{}, Employees: []dto.EmployeeScoreDTO{}}
	var overall average
	periods := map[string]*average{}
	perEmployee := map[string]*average{}

	for _, r := range records {
		overall.sum += r.Score
		overall.count++

		if periods[r.Period] == nil {
			periods[r.Period] = &average{}
		}
		periods[r.Period].sum += r.Score
		periods[r.Period].count++

		if r.EmployeeID == "" {
			continue
		}
		if perEmployee[r.EmployeeID] == nil {
			perEmployee[r.EmployeeID] = &average{}
		}
		perEmployee[r.EmployeeID].sum += r.Score
		perEmployee[r.EmployeeID].count++
	}
	out.AverageScore = overall.value()

	labels := make([]string, 0, len(periods))
	for l := range periods {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	values := make([]float64, 0, len(labels))
	for _, l := range labels {
		v := periods[l].value()
		out.Periods = append(out.Periods, dto.SeriesPoint{Label: l, Value: v})
		values = append(values, v)
	}
	if p, ok := trend.Project(values, ahead, trend.ScoreBounds); ok {
		out.Projection = &p
	}

	for id, avg := range perEmployee {
		row := dto.EmployeeScoreDTO{EmployeeID: id, Average: avg.value(), Count: avg.count}
		if e, ok := byID[id]; ok {
			row.Matricule = e.Matricule
			row.Name = e.Name
		}
		out.Employees = append(out.Employees, row)
	}
	sort.Slice(out.Employees, func(i, j int) bool {
		if out.Employees[i].Average != out.Employees[j].Average {
			return out.Employees[i].Average > out.Employees[j].Average
		}
		return out.Employees[i].EmployeeID < out.Employees[j].EmployeeID
	})
	return out
}
