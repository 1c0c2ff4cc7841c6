package repository

import (
	"context"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
)

// LogRepository es append-only: no hay Update ni Delete.
// Los listados vienen ordenados del más reciente al más antiguo.
type LogRepository interface {
	Create(ctx context.Context, log *entity.Log) error
	List(ctx context.Context) ([]*entity.Log, error)
	ListByWorkflow(ctx context.Context, workflowID string) ([]*entity.Log, error)
	Count(ctx context.Context) (int, error)
}
