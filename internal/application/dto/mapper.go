package dto

import (
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/pkg/ref"
)

// Conversión entidad -> respuesta. Las referencias salen planas; la expansión
// la hace el use case cuando el llamador la pide.

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Tel: u.Tel, Role: u.Role, CreatedAt: u.CreatedAt}
}

func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Code: c.Code, Description: c.Description}
}

func NewWorkflowResponse(w *entity.Workflow) WorkflowResponse {
	return WorkflowResponse{
		ID:          w.ID,
		UserID:      w.UserID,
		CategoryID:  ref.ID[CategoryResponse](w.CategoryID),
		Name:        w.Name,
		Description: w.Description,
		Active:      w.Active,
		CreatedAt:   w.CreatedAt,
	}
}

func NewEmployeeResponse(e *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		WorkflowID: e.WorkflowID,
		UserID:     e.UserID,
		Matricule:  e.Matricule,
		Name:       e.Name,
		Position:   e.Position,
		CreatedAt:  e.CreatedAt,
	}
}

func NewEmployeeRef(e *entity.Employee) EmployeeRef {
	return EmployeeRef{ID: e.ID, Matricule: e.Matricule, Name: e.Name}
}

func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		WorkflowID: p.WorkflowID,
		UserID:     p.UserID,
		Name:       p.Name,
		UnitPrice:  p.UnitPrice,
		Reference:  p.Reference,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
	}
}

func NewProductRef(p *entity.Product) ProductRef {
	return ProductRef{ID: p.ID, Name: p.Name, UnitPrice: p.UnitPrice}
}

func NewSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:         s.ID,
		WorkflowID: s.WorkflowID,
		ProductID:  ref.ID[ProductRef](s.ProductID),
		Quantity:   s.Quantity,
		SourceType: s.SourceType,
		CreatedAt:  s.CreatedAt,
	}
}

// NewPerformanceResponse deja employeeId en null si el puntaje no tiene empleado.
func NewPerformanceResponse(p *entity.PerformanceRecord) PerformanceResponse {
	out := PerformanceResponse{
		ID:         p.ID,
		WorkflowID: p.WorkflowID,
		Score:      p.Score,
		Task:       p.Task,
		Period:     p.Period,
		CreatedAt:  p.CreatedAt,
	}
	if p.EmployeeID != "" {
		out.EmployeeID = ref.ID[EmployeeRef](p.EmployeeID)
	}
	return out
}

func NewLogResponse(l *entity.Log) LogResponse {
	return LogResponse{ID: l.ID, WorkflowID: l.WorkflowID, UserID: l.UserID, Action: l.Action, CreatedAt: l.CreatedAt}
}
