package entity

import "time"

// Workflow es el límite de tenencia: empleados, productos, ventas, puntajes y
// logs referencian exactamente un Workflow.
type Workflow struct {
	ID          string
	UserID      string // dueño
	CategoryID  string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
}
