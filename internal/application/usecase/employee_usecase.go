package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

// EmployeeUseCase CRUD de empleados. La matricule no se valida como única.
type EmployeeUseCase struct {
	repo      repository.EmployeeRepository
	workflows repository.WorkflowRepository
	validator *dto.Validator
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, workflows repository.WorkflowRepository, v *dto.Validator) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, workflows: workflows, validator: v}
}

// Create registra un empleado a nombre del llamador.
func (uc *EmployeeUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if _, err := requireWorkflow(ctx, uc.workflows, in.WorkflowID); err != nil {
		return nil, err
	}
	e := &entity.Employee{
		ID:         uuid.New().String(),
		WorkflowID: in.WorkflowID,
		UserID:     actor.UserID,
		Matricule:  in.Matricule,
		Name:       in.Name,
		Position:   in.Position,
		CreatedAt:  now(),
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := dto.NewEmployeeResponse(e)
	return &out, nil
}

func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	return uc.respond(uc.repo.List(ctx))
}

func (uc *EmployeeUseCase) ListByWorkflow(ctx context.Context, workflowID string) ([]dto.EmployeeResponse, error) {
	return uc.respond(uc.repo.ListByWorkflow(ctx, workflowID))
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewEmployeeResponse(e)
	return &out, nil
}

// Update solo dueño o ADMIN.
func (uc *EmployeeUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(domain.ResourceEmployee, domain.ActionUpdate, e.UserID, actor); err != nil {
		return nil, err
	}
	if in.Matricule != nil {
		e.Matricule = *in.Matricule
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Position != nil {
		e.Position = *in.Position
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	out := dto.NewEmployeeResponse(e)
	return &out, nil
}

// Delete solo dueño o ADMIN. Los puntajes del empleado se conservan.
func (uc *EmployeeUseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	e, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(domain.ResourceEmployee, domain.ActionDelete, e.UserID, actor); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *EmployeeUseCase) load(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, notFound(domain.ResourceEmployee, id)
	}
	return e, nil
}

func (uc *EmployeeUseCase) respond(list []*entity.Employee, err error) ([]dto.EmployeeResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.NewEmployeeResponse(e))
	}
	return out, nil
}
