package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Actif por defecto true.
type CreateProductRequest struct {
	WorkflowID string           `json:"workflowId" validate:"required"`
	Name       string           `json:"nom" validate:"required"`
	UnitPrice  *decimal.Decimal `json:"pu" validate:"required"`
	Reference  string           `json:"reference"`
	Active     *bool            `json:"actif"`
}

// UpdateProductRequest merge superficial; workflowId no se puede cambiar.
type UpdateProductRequest struct {
	Name      *string          `json:"nom"`
	UnitPrice *decimal.Decimal `json:"pu"`
	Reference *string          `json:"reference"`
	Active    *bool            `json:"actif"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"_id"`
	WorkflowID string          `json:"workflowId"`
	UserID     string          `json:"userId"`
	Name       string          `json:"nom"`
	UnitPrice  decimal.Decimal `json:"pu"`
	Reference  string          `json:"reference,omitempty"`
	Active     bool            `json:"actif"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ProductRef forma expandida de produitId en las ventas.
type ProductRef struct {
	ID        string          `json:"_id"`
	Name      string          `json:"nom"`
	UnitPrice decimal.Decimal `json:"pu"`
}

func (p ProductRef) RefID() string { return p.ID }
