package repository

import (
	"context"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context) ([]*entity.Sale, error)
	ListByWorkflow(ctx context.Context, workflowID string) ([]*entity.Sale, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
