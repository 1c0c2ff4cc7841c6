package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías (dato de referencia, código único).
type CategoryUseCase struct {
	repo      repository.CategoryRepository
	validator *dto.Validator
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, v *dto.Validator) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, validator: v}
}

// Create crea una categoría. Código repetido => ErrDuplicate y la existente no cambia.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: code %s", domain.ErrDuplicate, in.Code)
	}
	c := &entity.Category{ID: uuid.New().String(), Code: in.Code, Description: in.Description}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCategoryResponse(c))
	}
	return out, nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound(domain.ResourceCategory, id)
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}

// Update cambia código o descripción; un código ya usado por otra categoría => ErrDuplicate.
func (uc *CategoryUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound(domain.ResourceCategory, id)
	}
	if err := domain.Authorize(domain.ResourceCategory, domain.ActionUpdate, "", actor); err != nil {
		return nil, err
	}
	if in.Code != nil && *in.Code != c.Code {
		other, err := uc.repo.GetByCode(ctx, *in.Code)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, fmt.Errorf("%w: code %s", domain.ErrDuplicate, *in.Code)
		}
		c.Code = *in.Code
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}

// Delete borra la categoría; los workflows que la referencian quedan igual.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return notFound(domain.ResourceCategory, id)
	}
	if err := domain.Authorize(domain.ResourceCategory, domain.ActionDelete, "", actor); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
