package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

// AdminUseCase conteos globales para el panel de administración.
type AdminUseCase struct {
	users        repository.UserRepository
	categories   repository.CategoryRepository
	workflows    repository.WorkflowRepository
	employees    repository.EmployeeRepository
	products     repository.ProductRepository
	sales        repository.SaleRepository
	performances repository.PerformanceRepository
	logs         repository.LogRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(
	users repository.UserRepository,
	categories repository.CategoryRepository,
	workflows repository.WorkflowRepository,
	employees repository.EmployeeRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	performances repository.PerformanceRepository,
	logs repository.LogRepository,
) *AdminUseCase {
	return &AdminUseCase{
		users:        users,
		categories:   categories,
		workflows:    workflows,
		employees:    employees,
		products:     products,
		sales:        sales,
		performances: performances,
		logs:         logs,
	}
}

// Overview cuenta cada colección en paralelo; el primer error cancela el resto.
// Solo las categories se leen completas, para traducir id a código.
func (uc *AdminUseCase) Overview(ctx context.Context) (*dto.AdminOverview, error) {
	var (
		out        dto.AdminOverview
		categories []*entity.Category
		byCategory map[string]int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { out.Users, err = uc.users.Count(ctx); return })
	g.Go(func() (err error) { categories, err = uc.categories.List(ctx); return })
	g.Go(func() (err error) { out.Workflows, err = uc.workflows.Count(ctx); return })
	g.Go(func() (err error) { byCategory, err = uc.workflows.CountByCategory(ctx); return })
	g.Go(func() (err error) { out.Employees, err = uc.employees.Count(ctx); return })
	g.Go(func() (err error) { out.Products, err = uc.products.Count(ctx); return })
	g.Go(func() (err error) { out.Sales, err = uc.sales.Count(ctx); return })
	g.Go(func() (err error) { out.PerformanceRecords, err = uc.performances.Count(ctx); return })
	g.Go(func() (err error) { out.Logs, err = uc.logs.Count(ctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}

	codes := make(map[string]string, len(categories))
	for _, c := range categories {
		codes[c.ID] = c.Code
	}
	out.WorkflowsByCategorie = make(map[string]int, len(byCategory))
	for categoryID, n := range byCategory {
		code, ok := codes[categoryID]
		if !ok {
			code = "UNKNOWN"
		}
		out.WorkflowsByCategorie[code] += n
	}
	return &out, nil
}
