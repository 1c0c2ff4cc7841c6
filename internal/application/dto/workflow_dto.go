package dto

import (
	"time"

	"github.com/jhoicas/datanova-api/pkg/ref"
)

// CreateWorkflowRequest entrada para crear un workflow. Actif por defecto true.
type CreateWorkflowRequest struct {
	Name        string `json:"nom" validate:"required"`
	Description string `json:"description"`
	CategoryID  string `json:"categorieId" validate:"required"`
	Active      *bool  `json:"actif"`
}

// UpdateWorkflowRequest merge superficial. categorieId no se revalida.
type UpdateWorkflowRequest struct {
	Name        *string `json:"nom"`
	Description *string `json:"description"`
	CategoryID  *string `json:"categorieId"`
	Active      *bool   `json:"actif"`
}

// WorkflowResponse salida de un workflow.
type WorkflowResponse struct {
	ID          string                    `json:"_id"`
	UserID      string                    `json:"userId"`
	CategoryID  ref.Ref[CategoryResponse] `json:"categorieId"`
	Name        string                    `json:"nom"`
	Description string                    `json:"description,omitempty"`
	Active      bool                      `json:"actif"`
	CreatedAt   time.Time                 `json:"createdAt"`
}
