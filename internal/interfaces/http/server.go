package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/datanova-api/internal/application/analytics"
	"github.com/jhoicas/datanova-api/internal/application/auth"
	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/application/usecase"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
	"github.com/jhoicas/datanova-api/pkg/logger"
)

// Repositories puertos de salida que necesita la API (postgres o memoria).
type Repositories struct {
	Users        repository.UserRepository
	Categories   repository.CategoryRepository
	Workflows    repository.WorkflowRepository
	Employees    repository.EmployeeRepository
	Products     repository.ProductRepository
	Sales        repository.SaleRepository
	Performances repository.PerformanceRepository
	Logs         repository.LogRepository
	Denylist     repository.TokenDenylist
}

// Options parámetros de los casos de uso.
type Options struct {
	JWT           auth.JWTConfig
	ImportMaxRows int
	Reports       analytics.ReportGenerator
	Logger        *logger.Logger
}

// NewRouterDeps construye todos los casos de uso sobre repos.
func NewRouterDeps(repos Repositories, opts Options) RouterDeps {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	v := dto.NewValidator()

	employees := usecase.NewEmployeeUseCase(repos.Employees, repos.Workflows, v)
	products := usecase.NewProductUseCase(repos.Products, repos.Workflows, v)
	sales := usecase.NewSaleUseCase(repos.Sales, repos.Products, repos.Workflows, v)
	insights := analytics.NewInsightsUseCase(repos.Workflows, repos.Categories, repos.Products,
		repos.Sales, repos.Employees, repos.Performances)

	return RouterDeps{
		AuthUC:        auth.NewAuthUseCase(repos.Users, repos.Denylist, v, opts.JWT),
		UserUC:        usecase.NewUserUseCase(repos.Users, v),
		CategoryUC:    usecase.NewCategoryUseCase(repos.Categories, v),
		WorkflowUC:    usecase.NewWorkflowUseCase(repos.Workflows, repos.Categories, v),
		EmployeeUC:    employees,
		ProductUC:     products,
		SaleUC:        sales,
		PerformanceUC: usecase.NewPerformanceUseCase(repos.Performances, repos.Employees, repos.Workflows, v),
		LogUC:         usecase.NewLogUseCase(repos.Logs, repos.Workflows, v),
		ImportUC: usecase.NewImportUseCase(employees, products, sales, repos.Workflows,
			repos.Products, repos.Logs, opts.ImportMaxRows, log),
		AdminUC: usecase.NewAdminUseCase(repos.Users, repos.Categories, repos.Workflows, repos.Employees,
			repos.Products, repos.Sales, repos.Performances, repos.Logs),
		InsightsUC: insights,
		ReportUC:   analytics.NewReportUseCase(insights, opts.Reports),
	}
}

// NewApp crea la app Fiber con manejo de errores, recover y log de requests,
// y registra las rutas.
func NewApp(appName string, deps RouterDeps, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // reportes PDF
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // imports de Excel
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log.Component("http")))
	Router(app, deps)
	return app
}
