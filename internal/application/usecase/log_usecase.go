package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

// LogUseCase bitácora de actividad: solo alta y lectura.
type LogUseCase struct {
	repo      repository.LogRepository
	workflows repository.WorkflowRepository
	validator *dto.Validator
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(repo repository.LogRepository, workflows repository.WorkflowRepository, v *dto.Validator) *LogUseCase {
	return &LogUseCase{repo: repo, workflows: workflows, validator: v}
}

// Create agrega una entrada a nombre del llamador.
func (uc *LogUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateLogRequest) (*dto.LogResponse, error) {
	if actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if _, err := requireWorkflow(ctx, uc.workflows, in.WorkflowID); err != nil {
		return nil, err
	}
	l := &entity.Log{
		ID:         uuid.New().String(),
		WorkflowID: in.WorkflowID,
		UserID:     actor.UserID,
		Action:     in.Action,
		CreatedAt:  now(),
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	out := dto.NewLogResponse(l)
	return &out, nil
}

// List más recientes primero.
func (uc *LogUseCase) List(ctx context.Context) ([]dto.LogResponse, error) {
	return respondLogs(uc.repo.List(ctx))
}

// ListByWorkflow más recientes primero.
func (uc *LogUseCase) ListByWorkflow(ctx context.Context, workflowID string) ([]dto.LogResponse, error) {
	return respondLogs(uc.repo.ListByWorkflow(ctx, workflowID))
}

func respondLogs(list []*entity.Log, err error) ([]dto.LogResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.LogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.NewLogResponse(l))
	}
	return out, nil
}
