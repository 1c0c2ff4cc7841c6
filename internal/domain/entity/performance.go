package entity

import "time"

// PerformanceRecord es un puntaje (0–100 esperado, no validado) para un periodo libre.
type PerformanceRecord struct {
	ID         string
	WorkflowID string
	EmployeeID string // opcional
	Score      float64
	Task       string
	Period     string
	CreatedAt  time.Time
}
