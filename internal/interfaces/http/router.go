package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/datanova-api/internal/application/analytics"
	"github.com/jhoicas/datanova-api/internal/application/auth"
	"github.com/jhoicas/datanova-api/internal/application/usecase"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CategoryUC    *usecase.CategoryUseCase
	WorkflowUC    *usecase.WorkflowUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	ProductUC     *usecase.ProductUseCase
	SaleUC        *usecase.SaleUseCase
	PerformanceUC *usecase.PerformanceUseCase
	LogUC         *usecase.LogUseCase
	ImportUC      *usecase.ImportUseCase
	AdminUC       *usecase.AdminUseCase
	InsightsUC    *analytics.InsightsUseCase
	ReportUC      *analytics.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.AuthUC)
	imports := NewImportHandler(deps.ImportUC)

	// Users: registro, login y listado son públicos.
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/user")
	users.Post("/", authHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Post("/logout", requireAuth, authHandler.Logout)
	users.Get("/", userHandler.List)
	users.Get("/:id", requireAuth, userHandler.GetByID)
	users.Put("/:id", requireAuth, userHandler.Update)
	users.Delete("/:id", requireAuth, userHandler.Delete)

	// Categories: solo PUT exige token.
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/category")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", requireAuth, categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Workflows: /all es público y va antes de /:id.
	workflowHandler := NewWorkflowHandler(deps.WorkflowUC)
	insightsHandler := NewInsightsHandler(deps.InsightsUC, deps.ReportUC)
	workflows := api.Group("/workflow")
	workflows.Get("/all", workflowHandler.ListAll)
	workflows.Post("/", requireAuth, workflowHandler.Create)
	workflows.Get("/", requireAuth, workflowHandler.ListMine)
	workflows.Get("/:id/insights", requireAuth, insightsHandler.Get)
	workflows.Get("/:id/report", requireAuth, insightsHandler.Report)
	workflows.Get("/:id", requireAuth, workflowHandler.GetByID)
	workflows.Put("/:id", requireAuth, workflowHandler.Update)
	workflows.Delete("/:id", requireAuth, workflowHandler.Delete)

	// Rutas protegidas (requieren Bearer Token)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := api.Group("/employee", requireAuth)
	employees.Post("/import", imports.Import(usecase.ImportEmployees))
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/workflow/:workflowId", employeeHandler.ListByWorkflow)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/product", requireAuth)
	products.Post("/import", imports.Import(usecase.ImportProducts))
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/workflow/:workflowId", productHandler.ListByWorkflow)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	saleHandler := NewSaleHandler(deps.SaleUC)
	sales := api.Group("/sale", requireAuth)
	sales.Post("/import", imports.Import(usecase.ImportSales))
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/workflow/:workflowId", saleHandler.ListByWorkflow)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	performanceHandler := NewPerformanceHandler(deps.PerformanceUC)
	performances := api.Group("/perfoEmp", requireAuth)
	performances.Post("/", performanceHandler.Create)
	performances.Get("/", performanceHandler.List)
	performances.Get("/workflow/:workflowId", performanceHandler.ListByWorkflow)
	performances.Get("/:id", performanceHandler.GetByID)
	performances.Put("/:id", performanceHandler.Update)
	performances.Delete("/:id", performanceHandler.Delete)

	// Log es append-only: sin PUT ni DELETE.
	logHandler := NewLogHandler(deps.LogUC)
	logs := api.Group("/log", requireAuth)
	logs.Post("/", logHandler.Create)
	logs.Get("/", logHandler.List)
	logs.Get("/workflow/:workflowId", logHandler.ListByWorkflow)

	adminHandler := NewAdminHandler(deps.AdminUC)
	api.Get("/admin/overview", requireAuth, RequireRole(entity.RoleAdmin), adminHandler.Overview)
}
