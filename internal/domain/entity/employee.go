package entity

import "time"

// Employee pertenece a un Workflow y al usuario que lo creó.
// Matricule no es único a nivel de base de datos.
type Employee struct {
	ID         string
	WorkflowID string
	UserID     string
	Matricule  string
	Name       string
	Position   string
	CreatedAt  time.Time
}
