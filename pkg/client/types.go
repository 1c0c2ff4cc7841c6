package client

import "github.com/jhoicas/datanova-api/internal/application/dto"

// Tipos de la API. Son alias de los DTO del servidor para que el código fuera
// de este módulo pueda nombrarlos sin importar paquetes internal.
type (
	RegisterRequest   = dto.RegisterRequest
	UpdateUserRequest = dto.UpdateUserRequest
	UserResponse      = dto.UserResponse
	LoginRequest      = dto.LoginRequest
	LoginResponse     = dto.LoginResponse

	CreateCategoryRequest = dto.CreateCategoryRequest
	UpdateCategoryRequest = dto.UpdateCategoryRequest
	CategoryResponse      = dto.CategoryResponse

	CreateWorkflowRequest = dto.CreateWorkflowRequest
	UpdateWorkflowRequest = dto.UpdateWorkflowRequest
	WorkflowResponse      = dto.WorkflowResponse

	CreateEmployeeRequest = dto.CreateEmployeeRequest
	UpdateEmployeeRequest = dto.UpdateEmployeeRequest
	EmployeeResponse      = dto.EmployeeResponse
	EmployeeRef           = dto.EmployeeRef

	CreateProductRequest = dto.CreateProductRequest
	UpdateProductRequest = dto.UpdateProductRequest
	ProductResponse      = dto.ProductResponse
	ProductRef           = dto.ProductRef

	CreateSaleRequest = dto.CreateSaleRequest
	UpdateSaleRequest = dto.UpdateSaleRequest
	SaleResponse      = dto.SaleResponse

	CreatePerformanceRequest = dto.CreatePerformanceRequest
	UpdatePerformanceRequest = dto.UpdatePerformanceRequest
	PerformanceResponse      = dto.PerformanceResponse

	CreateLogRequest = dto.CreateLogRequest
	LogResponse      = dto.LogResponse

	ImportRequest = dto.ImportRequest
	ImportResult  = dto.ImportResult
	ImportSkip    = dto.ImportSkip

	WorkflowInsights    = dto.WorkflowInsights
	SalesInsights       = dto.SalesInsights
	PerformanceInsights = dto.PerformanceInsights
	SeriesPoint         = dto.SeriesPoint
	EmployeeScore       = dto.EmployeeScoreDTO
	ProductSales        = dto.ProductSalesDTO
	AdminOverview       = dto.AdminOverview
	ErrorResponse       = dto.ErrorResponse
	MessageResponse     = dto.MessageResponse
)
