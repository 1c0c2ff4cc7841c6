package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

var _ repository.PerformanceRepository = (*PerformanceRepo)(nil)

const performanceColumns = `id, workflow_id, employee_id, score, task, period, created_at`

// PerformanceRepo implementación del puerto PerformanceRepository sobre PostgreSQL.
type PerformanceRepo struct {
	q Querier
}

// NewPerformanceRepository construye el adaptador.
func NewPerformanceRepository(q Querier) *PerformanceRepo {
	return &PerformanceRepo{q: q}
}

func scanPerformance(row pgx.Row) (*entity.PerformanceRecord, error) {
	var (
		p          entity.PerformanceRecord
		employeeID *string
	)
	if err := row.Scan(&p.ID, &p.WorkflowID, &employeeID, &p.Score, &p.Task, &p.Period, &p.CreatedAt); err != nil {
		return nil, err
	}
	if employeeID != nil {
		p.EmployeeID = *employeeID
	}
	return &p, nil
}

// Create persiste un puntaje. EmployeeID vacío se guarda como NULL.
func (r *PerformanceRepo) Create(ctx context.Context, p *entity.PerformanceRecord) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO performance_records (`+performanceColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.WorkflowID, nullIfEmpty(p.EmployeeID), p.Score, p.Task, p.Period, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert performance record: %w", err)
	}
	return nil
}

// GetByID obtiene un puntaje por ID.
func (r *PerformanceRepo) GetByID(ctx context.Context, id string) (*entity.PerformanceRecord, error) {
	p, err := scanPerformance(r.q.QueryRow(ctx, `SELECT `+performanceColumns+` FROM performance_records WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get performance record: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables.
func (r *PerformanceRepo) Update(ctx context.Context, p *entity.PerformanceRecord) error {
	_, err := r.q.Exec(ctx,
		`UPDATE performance_records SET employee_id = $2, score = $3, task = $4, period = $5 WHERE id = $1`,
		p.ID, nullIfEmpty(p.EmployeeID), p.Score, p.Task, p.Period,
	)
	if err != nil {
		return fmt.Errorf("update performance record: %w", err)
	}
	return nil
}

func (r *PerformanceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.PerformanceRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list performance records: %w", err)
	}
	list, err := collect(rows, func(rows pgx.Rows) (*entity.PerformanceRecord, error) { return scanPerformance(rows) })
	if err != nil {
		return nil, fmt.Errorf("scan performance record: %w", err)
	}
	return list, nil
}

// List lista todos los puntajes en orden cronológico.
func (r *PerformanceRepo) List(ctx context.Context) ([]*entity.PerformanceRecord, error) {
	return r.list(ctx, `SELECT `+performanceColumns+` FROM performance_records ORDER BY created_at`)
}

// ListByWorkflow lista los puntajes de un workflow en orden cronológico.
func (r *PerformanceRepo) ListByWorkflow(ctx context.Context, workflowID string) ([]*entity.PerformanceRecord, error) {
	return r.list(ctx, `SELECT `+performanceColumns+` FROM performance_records WHERE workflow_id = $1 ORDER BY created_at`, workflowID)
}

// Delete elimina un puntaje.
func (r *PerformanceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM performance_records WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete performance record: %w", err)
	}
	return nil
}

// Count devuelve la cantidad de filas de performance_records.
func (r *PerformanceRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.q, "performance_records")
}
