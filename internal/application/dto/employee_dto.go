package dto

import "time"

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	WorkflowID string `json:"workflowId" validate:"required"`
	Matricule  string `json:"matricule" validate:"required"`
	Name       string `json:"nom" validate:"required"`
	Position   string `json:"poste"`
}

// UpdateEmployeeRequest merge superficial; workflowId no se puede cambiar.
type UpdateEmployeeRequest struct {
	Matricule *string `json:"matricule"`
	Name      *string `json:"nom"`
	Position  *string `json:"poste"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID         string    `json:"_id"`
	WorkflowID string    `json:"workflowId"`
	UserID     string    `json:"userId"`
	Matricule  string    `json:"matricule"`
	Name       string    `json:"nom"`
	Position   string    `json:"poste,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EmployeeRef forma expandida de employeeId en los puntajes.
type EmployeeRef struct {
	ID        string `json:"_id"`
	Matricule string `json:"matricule"`
	Name      string `json:"nom"`
}

func (e EmployeeRef) RefID() string { return e.ID }
