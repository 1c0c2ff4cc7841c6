package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
	"github.com/jhoicas/datanova-api/pkg/ref"
)

// WorkflowUseCase CRUD de workflows, el límite de tenencia.
type WorkflowUseCase struct {
	repo       repository.WorkflowRepository
	categories repository.CategoryRepository
	validator  *dto.Validator
}

// NewWorkflowUseCase construye el caso de uso.
func NewWorkflowUseCase(repo repository.WorkflowRepository, categories repository.CategoryRepository, v *dto.Validator) *WorkflowUseCase {
	return &WorkflowUseCase{repo: repo, categories: categories, validator: v}
}

// Create valida la categorie (ErrInvalidCategory, nada se persiste) y fija el
// dueño al llamador. La consulta de la categorie y el insert no son atómicos.
func (uc *WorkflowUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateWorkflowRequest) (*dto.WorkflowResponse, error) {
	if actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	cat, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, in.CategoryID)
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	w := &entity.Workflow{
		ID:          uuid.New().String(),
		UserID:      actor.UserID,
		CategoryID:  cat.ID,
		Name:        in.Name,
		Description: in.Description,
		Active:      active,
		CreatedAt:   now(),
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	out := dto.NewWorkflowResponse(w)
	out.CategoryID = ref.Expanded(dto.NewCategoryResponse(cat))
	return &out, nil
}

// ListAll todos los workflows, de cualquier usuario.
func (uc *WorkflowUseCase) ListAll(ctx context.Context, opts ReadOptions) ([]dto.WorkflowResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, list, opts)
}

// ListMine los workflows cuyo dueño es el llamador.
func (uc *WorkflowUseCase) ListMine(ctx context.Context, actor domain.Actor, opts ReadOptions) ([]dto.WorkflowResponse, error) {
	if actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, list, opts)
}

func (uc *WorkflowUseCase) GetByID(ctx context.Context, id string, opts ReadOptions) (*dto.WorkflowResponse, error) {
	w, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := uc.respond(ctx, []*entity.Workflow{w}, opts)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// Update merge superficial; solo dueño o ADMIN.
func (uc *WorkflowUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdateWorkflowRequest) (*dto.WorkflowResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	w, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(domain.ResourceWorkflow, domain.ActionUpdate, w.UserID, actor); err != nil {
		return nil, err
	}
	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.Description != nil {
		w.Description = *in.Description
	}
	if in.CategoryID != nil {
		w.CategoryID = *in.CategoryID
	}
	if in.Active != nil {
		w.Active = *in.Active
	}
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	out := dto.NewWorkflowResponse(w)
	return &out, nil
}

// Delete solo dueño o ADMIN. Las entidades del workflow no se borran.
func (uc *WorkflowUseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	w, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(domain.ResourceWorkflow, domain.ActionDelete, w.UserID, actor); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *WorkflowUseCase) load(ctx context.Context, id string) (*entity.Workflow, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, notFound(domain.ResourceWorkflow, id)
	}
	return w, nil
}

// respond expande categorieId con una sola lectura de categorías. Una
// categorie borrada queda como id plano.
func (uc *WorkflowUseCase) respond(ctx context.Context, list []*entity.Workflow, opts ReadOptions) ([]dto.WorkflowResponse, error) {
	out := make([]dto.WorkflowResponse, 0, len(list))
	var byID map[string]*entity.Category
	if opts.Expand && len(list) > 0 {
		cats, err := uc.categories.List(ctx)
		if err != nil {
			return nil, err
		}
		byID = make(map[string]*entity.Category, len(cats))
		for _, c := range cats {
			byID[c.ID] = c
		}
	}
	for _, w := range list {
		r := dto.NewWorkflowResponse(w)
		if c, ok := byID[w.CategoryID]; ok {
			r.CategoryID = ref.Expanded(dto.NewCategoryResponse(c))
		}
		out = append(out, r)
	}
	return out, nil
}
