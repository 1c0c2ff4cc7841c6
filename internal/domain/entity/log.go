package entity

import "time"

// Log es una entrada de actividad append-only.
type Log struct {
	ID         string
	WorkflowID string
	UserID     string
	Action     string
	CreatedAt  time.Time
}
