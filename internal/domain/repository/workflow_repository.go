package repository

import (
	"context"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
)

// WorkflowRepository define el puerto de persistencia para Workflow (DIP).
type WorkflowRepository interface {
	Create(ctx context.Context, workflow *entity.Workflow) error
	GetByID(ctx context.Context, id string) (*entity.Workflow, error)
	Update(ctx context.Context, workflow *entity.Workflow) error
	List(ctx context.Context) ([]*entity.Workflow, error)
	ListByOwner(ctx context.Context, userID string) ([]*entity.Workflow, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	// CountByCategory devuelve category_id -> cantidad de workflows.
	CountByCategory(ctx context.Context) (map[string]int, error)
}
