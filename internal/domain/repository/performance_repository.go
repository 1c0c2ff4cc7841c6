package repository

import (
	"context"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
)

// PerformanceRepository define el puerto de persistencia para PerformanceRecord (DIP).
type PerformanceRepository interface {
	Create(ctx context.Context, record *entity.PerformanceRecord) error
	GetByID(ctx context.Context, id string) (*entity.PerformanceRecord, error)
	Update(ctx context.Context, record *entity.PerformanceRecord) error
	List(ctx context.Context) ([]*entity.PerformanceRecord, error)
	ListByWorkflow(ctx context.Context, workflowID string) ([]*entity.PerformanceRecord, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
