package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, workflow_id, user_id, matricule, name, position, created_at`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	if err := row.Scan(&e.ID, &e.WorkflowID, &e.UserID, &e.Matricule, &e.Name, &e.Position, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO employees (`+employeeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.WorkflowID, e.UserID, e.Matricule, e.Name, e.Position, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// GetByIDs obtiene los empleados existentes entre ids.
func (r *EmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ANY($1)`, ids)
}

// Update actualiza los campos editables.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.Exec(ctx,
		`UPDATE employees SET matricule = $2, name = $3, position = $4 WHERE id = $1`,
		e.ID, e.Matricule, e.Name, e.Position,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	list, err := collect(rows, func(rows pgx.Rows) (*entity.Employee, error) { return scanEmployee(rows) })
	if err != nil {
		return nil, fmt.Errorf("scan employee: %w", err)
	}
	return list, nil
}

// List lista todos los empleados.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY created_at DESC`)
}

// ListByWorkflow lista los empleados de un workflow.
func (r *EmployeeRepo) ListByWorkflow(ctx context.Context, workflowID string) ([]*entity.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE workflow_id = $1 ORDER BY created_at DESC`, workflowID)
}

// Delete elimina un empleado; sus puntajes conservan la referencia.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// Count devuelve la cantidad de filas de employees.
func (r *EmployeeRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.q, "employees")
}
