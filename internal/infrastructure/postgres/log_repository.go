package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo bitácora append-only sobre PostgreSQL.
type LogRepo struct {
	q Querier
}

// NewLogRepository construye el adaptador.
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// Create agrega una entrada.
func (r *LogRepo) Create(ctx context.Context, l *entity.Log) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO logs (id, workflow_id, user_id, action, created_at) VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.WorkflowID, l.UserID, l.Action, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

func (r *LogRepo) list(ctx context.Context, where string, args ...any) ([]*entity.Log, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, workflow_id, user_id, action, created_at FROM logs `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	list, err := collect(rows, func(rows pgx.Rows) (*entity.Log, error) {
		var l entity.Log
		if err := rows.Scan(&l.ID, &l.WorkflowID, &l.UserID, &l.Action, &l.CreatedAt); err != nil {
			return nil, err
		}
		return &l, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan log: %w", err)
	}
	return list, nil
}

// List lista todas las entradas, más recientes primero.
func (r *LogRepo) List(ctx context.Context) ([]*entity.Log, error) {
	return r.list(ctx, "")
}

// ListByWorkflow lista las entradas de un workflow, más recientes primero.
func (r *LogRepo) ListByWorkflow(ctx context.Context, workflowID string) ([]*entity.Log, error) {
	return r.list(ctx, "WHERE workflow_id = $1", workflowID)
}

// Count devuelve la cantidad de filas de logs.
func (r *LogRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.q, "logs")
}
