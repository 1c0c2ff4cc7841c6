package repository

import (
	"context"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// GetByIDs ignora los ids que no existen.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	List(ctx context.Context) ([]*entity.Employee, error)
	ListByWorkflow(ctx context.Context, workflowID string) ([]*entity.Employee, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
