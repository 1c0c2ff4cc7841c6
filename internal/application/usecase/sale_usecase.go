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

// SaleUseCase CRUD de ventas. Update y Delete no verifican dueño
// (ver domain.Policies).
type SaleUseCase struct {
	repo      repository.SaleRepository
	products  repository.ProductRepository
	workflows repository.WorkflowRepository
	validator *dto.Validator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, products repository.ProductRepository, workflows repository.WorkflowRepository, v *dto.Validator) *SaleUseCase {
	return &SaleUseCase{repo: repo, products: products, workflows: workflows, validator: v}
}

// Create registra una venta. SourceType vacío => WEBFORM. produitId no se
// valida contra productos existentes.
func (uc *SaleUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if _, err := requireWorkflow(ctx, uc.workflows, in.WorkflowID); err != nil {
		return nil, err
	}
	source := in.SourceType
	if source == "" {
		source = entity.SaleSourceWebForm
	}
	s := &entity.Sale{
		ID:         uuid.New().String(),
		WorkflowID: in.WorkflowID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		SourceType: source,
		CreatedAt:  now(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	out := dto.NewSaleResponse(s)
	return &out, nil
}

func (uc *SaleUseCase) List(ctx context.Context, opts ReadOptions) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, list, opts)
}

func (uc *SaleUseCase) ListByWorkflow(ctx context.Context, workflowID string, opts ReadOptions) ([]dto.SaleResponse, error) {
	list, err := uc.repo.ListByWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, list, opts)
}

func (uc *SaleUseCase) GetByID(ctx context.Context, id string, opts ReadOptions) (*dto.SaleResponse, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := uc.respond(ctx, []*entity.Sale{s}, opts)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (uc *SaleUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(domain.ResourceSale, domain.ActionUpdate, "", actor); err != nil {
		return nil, err
	}
	if in.ProductID != nil {
		s.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		s.Quantity = *in.Quantity
	}
	if in.SourceType != nil {
		s.SourceType = *in.SourceType
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	out := dto.NewSaleResponse(s)
	return &out, nil
}

func (uc *SaleUseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	if err := domain.Authorize(domain.ResourceSale, domain.ActionDelete, "", actor); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *SaleUseCase) load(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, notFound(domain.ResourceSale, id)
	}
	return s, nil
}

// respond expande produitId a {_id, nom, pu}. Un producto borrado deja el id plano.
func (uc *SaleUseCase) respond(ctx context.Context, list []*entity.Sale, opts ReadOptions) ([]dto.SaleResponse, error) {
	var byID map[string]*entity.Product
	if opts.Expand && len(list) > 0 {
		ids := make([]string, 0, len(list))
		for _, s := range list {
			ids = append(ids, s.ProductID)
		}
		products, err := uc.products.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		byID = make(map[string]*entity.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		r := dto.NewSaleResponse(s)
		if p, ok := byID[s.ProductID]; ok {
			r.ProductID = ref.Expanded(dto.NewProductRef(p))
		}
		out = append(out, r)
	}
	return out, nil
}
