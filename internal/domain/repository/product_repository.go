package repository

import (
	"context"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs ignora los ids que no existen (productos borrados).
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	ListByWorkflow(ctx context.Context, workflowID string) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
