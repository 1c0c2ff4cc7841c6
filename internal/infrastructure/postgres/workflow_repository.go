package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

var _ repository.WorkflowRepository = (*WorkflowRepo)(nil)

const workflowColumns = `id, user_id, category_id, name, description, active, created_at`

// WorkflowRepo implementación del puerto WorkflowRepository sobre PostgreSQL.
type WorkflowRepo struct {
	q Querier
}

// NewWorkflowRepository construye el adaptador.
func NewWorkflowRepository(q Querier) *WorkflowRepo {
	return &WorkflowRepo{q: q}
}

func scanWorkflow(row pgx.Row) (*entity.Workflow, error) {
	var w entity.Workflow
	if err := row.Scan(&w.ID, &w.UserID, &w.CategoryID, &w.Name, &w.Description, &w.Active, &w.CreatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste un workflow.
func (r *WorkflowRepo) Create(ctx context.Context, w *entity.Workflow) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO workflows (`+workflowColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.UserID, w.CategoryID, w.Name, w.Description, w.Active, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert workflow: %w", err)
	}
	return nil
}

// GetByID obtiene un workflow por ID.
func (r *WorkflowRepo) GetByID(ctx context.Context, id string) (*entity.Workflow, error) {
	w, err := scanWorkflow(r.q.QueryRow(ctx, `SELECT `+workflowColumns+` FROM workflows WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workflow: %w", err)
	}
	return w, nil
}

// Update actualiza los campos editables. El dueño no cambia.
func (r *WorkflowRepo) Update(ctx context.Context, w *entity.Workflow) error {
	_, err := r.q.Exec(ctx,
		`UPDATE workflows SET category_id = $2, name = $3, description = $4, active = $5 WHERE id = $1`,
		w.ID, w.CategoryID, w.Name, w.Description, w.Active,
	)
	if err != nil {
		return fmt.Errorf("update workflow: %w", err)
	}
	return nil
}

func (r *WorkflowRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Workflow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	list, err := collect(rows, func(rows pgx.Rows) (*entity.Workflow, error) { return scanWorkflow(rows) })
	if err != nil {
		return nil, fmt.Errorf("scan workflow: %w", err)
	}
	return list, nil
}

// List lista todos los workflows, más recientes primero.
func (r *WorkflowRepo) List(ctx context.Context) ([]*entity.Workflow, error) {
	return r.list(ctx, `SELECT `+workflowColumns+` FROM workflows ORDER BY created_at DESC`)
}

// ListByOwner lista los workflows de un usuario.
func (r *WorkflowRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Workflow, error) {
	return r.list(ctx, `SELECT `+workflowColumns+` FROM workflows WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// Delete elimina un workflow sin tocar sus filas dependientes.
func (r *WorkflowRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM workflows WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete workflow: %w", err)
	}
	return nil
}

// Count devuelve la cantidad de filas de workflows.
func (r *WorkflowRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.q, "workflows")
}

// CountByCategory agrupa los workflows por category_id.
func (r *WorkflowRepo) CountByCategory(ctx context.Context) (map[string]int, error) {
	const query = `
	SELECT category_id, count(*)
	FROM workflows
	GROUP BY category_id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("workflows.CountByCategory: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			categoryID string
			n          int
		)
		if err := rows.Scan(&categoryID, &n); err != nil {
			return nil, fmt.Errorf("workflows.CountByCategory scan: %w", err)
		}
		out[categoryID] = n
	}
	return out, rows.Err()
}
