package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
	"github.com/jhoicas/datanova-api/pkg/ref"
)

// PerformanceUseCase CRUD de puntajes. Update y Delete no verifican dueño.
type PerformanceUseCase struct {
	repo      repository.PerformanceRepository
	employees repository.EmployeeRepository
	workflows repository.WorkflowRepository
	validator *dto.Validator
}

// NewPerformanceUseCase construye el caso de uso.
func NewPerformanceUseCase(repo repository.PerformanceRepository, employees repository.EmployeeRepository, workflows repository.WorkflowRepository, v *dto.Validator) *PerformanceUseCase {
	return &PerformanceUseCase{repo: repo, employees: employees, workflows: workflows, validator: v}
}

// Create registra un puntaje. El score no se acota.
func (uc *PerformanceUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreatePerformanceRequest) (*dto.PerformanceResponse, error) {
	if actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if _, err := requireWorkflow(ctx, uc.workflows, in.WorkflowID); err != nil {
		return nil, err
	}
	p := &entity.PerformanceRecord{
		ID:         uuid.New().String(),
		WorkflowID: in.WorkflowID,
		EmployeeID: in.EmployeeID,
		Score:      *in.Score,
		Task:       in.Task,
		Period:     in.Period,
		CreatedAt:  now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.NewPerformanceResponse(p)
	return &out, nil
}

func (uc *PerformanceUseCase) List(ctx context.Context, opts ReadOptions) ([]dto.PerformanceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, list, opts)
}

func (uc *PerformanceUseCase) ListByWorkflow(ctx context.Context, workflowID string, opts ReadOptions) ([]dto.PerformanceResponse, error) {
	list, err := uc.repo.ListByWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, list, opts)
}

func (uc *PerformanceUseCase) GetByID(ctx context.Context, id string, opts ReadOptions) (*dto.PerformanceResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := uc.respond(ctx, []*entity.PerformanceRecord{p}, opts)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (uc *PerformanceUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdatePerformanceRequest) (*dto.PerformanceResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(domain.ResourcePerformance, domain.ActionUpdate, "", actor); err != nil {
		return nil, err
	}
	if in.EmployeeID != nil {
		p.EmployeeID = *in.EmployeeID
	}
	if in.Score != nil {
		p.Score = *in.Score
	}
	if in.Task != nil {
		p.Task = *in.Task
	}
	if in.Period != nil {
		p.Period = *in.Period
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.NewPerformanceResponse(p)
	return &out, nil
}

func (uc *PerformanceUseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	if err := domain.Authorize(domain.ResourcePerformance, domain.ActionDelete, "", actor); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PerformanceUseCase) load(ctx context.Context, id string) (*entity.PerformanceRecord, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound(domain.ResourcePerformance, id)
	}
	return p, nil
}

// respond expande employeeId a {_id, matricule, nom}.
func (uc *PerformanceUseCase) respond(ctx context.Context, list []*entity.PerformanceRecord, opts ReadOptions) ([]dto.PerformanceResponse, error) {
	var byID map[string]*entity.Employee
	if opts.Expand {
		var ids []string
		for _, p := range list {
			if p.EmployeeID != "" {
				ids = append(ids, p.EmployeeID)
			}
		}
		if len(ids) > 0 {
			employees, err := uc.employees.GetByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			byID = make(map[string]*entity.Employee, len(employees))
			for _, e := range employees {
				byID[e.ID] = e
			}
		}
	}
	out := make([]dto.PerformanceResponse, 0, len(list))
	for _, p := range list {
		r := dto.NewPerformanceResponse(p)
		if e, ok := byID[p.EmployeeID]; ok {
			r.EmployeeID = ref.Expanded(dto.NewEmployeeRef(e))
		}
		out = append(out, r)
	}
	return out, nil
}
