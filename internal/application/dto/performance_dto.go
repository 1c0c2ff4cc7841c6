package dto

import (
	"time"

	"github.com/jhoicas/datanova-api/pkg/ref"
)

// CreatePerformanceRequest entrada para registrar un puntaje. El rango 0–100
// es el esperado pero no se valida.
type CreatePerformanceRequest struct {
	WorkflowID string   `json:"workflowId" validate:"required"`
	EmployeeID string   `json:"employeeId"`
	Score      *float64 `json:"score" validate:"required"`
	Task       string   `json:"tache"`
	Period     string   `json:"periode" validate:"required"`
}

// UpdatePerformanceRequest merge superficial.
type UpdatePerformanceRequest struct {
	EmployeeID *string  `json:"employeeId"`
	Score      *float64 `json:"score"`
	Task       *string  `json:"tache"`
	Period     *string  `json:"periode"`
}

// PerformanceResponse salida de un puntaje; employeeId se expande a {_id, matricule, nom}.
type PerformanceResponse struct {
	ID         string               `json:"_id"`
	WorkflowID string               `json:"workflowId"`
	EmployeeID ref.Ref[EmployeeRef] `json:"employeeId"`
	Score      float64              `json:"score"`
	Task       string               `json:"tache,omitempty"`
	Period     string               `json:"periode"`
	CreatedAt  time.Time            `json:"createdAt"`
}
