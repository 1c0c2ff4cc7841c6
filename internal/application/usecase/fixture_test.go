package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/application/usecase"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/infrastructure/memory"
	"github.com/jhoicas/datanova-api/pkg/logger"
)

var (
	owner    = domain.Actor{UserID: "u-owner", Role: entity.RoleUser}
	stranger = domain.Actor{UserID: "u-otro", Role: entity.RoleUser}
	admin    = domain.Actor{UserID: "u-admin", Role: entity.RoleAdmin}
)

type fixture struct {
	store        *memory.Store
	categories   *usecase.CategoryUseCase
	workflows    *usecase.WorkflowUseCase
	employees    *usecase.EmployeeUseCase
	products     *usecase.ProductUseCase
	sales        *usecase.SaleUseCase
	performances *usecase.PerformanceUseCase
	logs         *usecase.LogUseCase
	users        *usecase.UserUseCase
	imports      *usecase.ImportUseCase
	admin        *usecase.AdminUseCase
}

func newFixture() *fixture {
	s := memory.NewStore()
	v := dto.NewValidator()
	f := &fixture{
		store:        s,
		categories:   usecase.NewCategoryUseCase(s.Categories, v),
		workflows:    usecase.NewWorkflowUseCase(s.Workflows, s.Categories, v),
		employees:    usecase.NewEmployeeUseCase(s.Employees, s.Workflows, v),
		products:     usecase.NewProductUseCase(s.Products, s.Workflows, v),
		sales:        usecase.NewSaleUseCase(s.Sales, s.Products, s.Workflows, v),
		performances: usecase.NewPerformanceUseCase(s.Performances, s.Employees, s.Workflows, v),
		logs:         usecase.NewLogUseCase(s.Logs, s.Workflows, v),
		users:        usecase.NewUserUseCase(s.Users, v),
		admin: usecase.NewAdminUseCase(s.Users, s.Categories, s.Workflows, s.Employees,
			s.Products, s.Sales, s.Performances, s.Logs),
	}
	f.imports = usecase.NewImportUseCase(f.employees, f.products, f.sales, s.Workflows, s.Products, s.Logs, 100, logger.Nop())
	return f
}

// workflow crea la categoría code (si falta) y un workflow del dueño.
func (f *fixture) workflow(t *testing.T, code string) *dto.WorkflowResponse {
	t.Helper()
	ctx := context.Background()
	cat, err := f.store.Categories.GetByCode(ctx, code)
	require.NoError(t, err)
	catID := ""
	if cat == nil {
		created, err := f.categories.Create(ctx, dto.CreateCategoryRequest{Code: code})
		require.NoError(t, err)
		catID = created.ID
	} else {
		catID = cat.ID
	}
	w, err := f.workflows.Create(ctx, owner, dto.CreateWorkflowRequest{Name: "WF " + code, CategoryID: catID})
	require.NoError(t, err)
	return w
}

func (f *fixture) product(t *testing.T, workflowID, name string, pu int64) *dto.ProductResponse {
	t.Helper()
	price := decimal.NewFromInt(pu)
	p, err := f.products.Create(context.Background(), owner, dto.CreateProductRequest{WorkflowID: workflowID, Name: name, UnitPrice: &price})
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T { return &v }
