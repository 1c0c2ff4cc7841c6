package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product pertenece a un Workflow VENTE y al usuario que lo creó.
type Product struct {
	ID         string
	WorkflowID string
	UserID     string
	Name       string
	UnitPrice  decimal.Decimal // pu >= 0
	Reference  string
	Active     bool
	CreatedAt  time.Time
}
