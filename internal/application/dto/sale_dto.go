package dto

import (
	"time"

	"github.com/jhoicas/datanova-api/pkg/ref"
)

// CreateSaleRequest entrada para registrar una venta. SourceType vacío => WEBFORM.
type CreateSaleRequest struct {
	WorkflowID string `json:"workflowId" validate:"required"`
	ProductID  string `json:"produitId" validate:"required"`
	Quantity   int    `json:"qte" validate:"required,gt=0"`
	SourceType string `json:"sourceType" validate:"omitempty,oneof=WEBFORM EXCEL GOOGLE"`
}

// UpdateSaleRequest merge superficial.
type UpdateSaleRequest struct {
	ProductID  *string `json:"produitId" validate:"omitempty,min=1"`
	Quantity   *int    `json:"qte" validate:"omitempty,gt=0"`
	SourceType *string `json:"sourceType" validate:"omitempty,oneof=WEBFORM EXCEL GOOGLE"`
}

// SaleResponse salida de una venta; produitId se expande a {_id, nom, pu}.
type SaleResponse struct {
	ID         string              `json:"_id"`
	WorkflowID string              `json:"workflowId"`
	ProductID  ref.Ref[ProductRef] `json:"produitId"`
	Quantity   int                 `json:"qte"`
	SourceType string              `json:"sourceType"`
	CreatedAt  time.Time           `json:"createdAt"`
}
