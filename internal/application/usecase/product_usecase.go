package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos de un workflow VENTE.
type ProductUseCase struct {
	repo      repository.ProductRepository
	workflows repository.WorkflowRepository
	validator *dto.Validator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, workflows repository.WorkflowRepository, v *dto.Validator) *ProductUseCase {
	return &ProductUseCase{repo: repo, workflows: workflows, validator: v}
}

func checkUnitPrice(pu decimal.Decimal) error {
	if pu.IsNegative() {
		return fmt.Errorf("%w: pu debe ser mayor o igual a 0", domain.ErrInvalidInput)
	}
	return nil
}

// Create registra un producto a nombre del llamador. Actif por defecto true.
func (uc *ProductUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if err := checkUnitPrice(*in.UnitPrice); err != nil {
		return nil, err
	}
	if _, err := requireWorkflow(ctx, uc.workflows, in.WorkflowID); err != nil {
		return nil, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	p := &entity.Product{
		ID:         uuid.New().String(),
		WorkflowID: in.WorkflowID,
		UserID:     actor.UserID,
		Name:       in.Name,
		UnitPrice:  *in.UnitPrice,
		Reference:  in.Reference,
		Active:     active,
		CreatedAt:  now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	return uc.respond(uc.repo.List(ctx))
}

func (uc *ProductUseCase) ListByWorkflow(ctx context.Context, workflowID string) ([]dto.ProductResponse, error) {
	return uc.respond(uc.repo.ListByWorkflow(ctx, workflowID))
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

// Update solo dueño o ADMIN.
func (uc *ProductUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(domain.ResourceProduct, domain.ActionUpdate, p.UserID, actor); err != nil {
		return nil, err
	}
	if in.UnitPrice != nil {
		if err := checkUnitPrice(*in.UnitPrice); err != nil {
			return nil, err
		}
		p.UnitPrice = *in.UnitPrice
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Reference != nil {
		p.Reference = *in.Reference
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

// Delete solo dueño o ADMIN. Las ventas del producto se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	p, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(domain.ResourceProduct, domain.ActionDelete, p.UserID, actor); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) load(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound(domain.ResourceProduct, id)
	}
	return p, nil
}

func (uc *ProductUseCase) respond(list []*entity.Product, err error) ([]dto.ProductResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}
