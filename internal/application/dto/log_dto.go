package dto

import "time"

// CreateLogRequest entrada para agregar una entrada de actividad.
type CreateLogRequest struct {
	WorkflowID string `json:"workflowId" validate:"required"`
	Action     string `json:"action" validate:"required"`
}

// LogResponse salida de una entrada de actividad.
type LogResponse struct {
	ID         string    `json:"_id"`
	WorkflowID string    `json:"workflowId"`
	UserID     string    `json:"userId"`
	Action     string    `json:"action"`
	CreatedAt  time.Time `json:"createdAt"`
}
