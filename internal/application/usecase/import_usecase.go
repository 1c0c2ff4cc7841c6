package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
	"github.com/jhoicas/datanova-api/pkg/logger"
)

// ImportKind entidad destino de una carga masiva.
type ImportKind string

const (
	ImportEmployees ImportKind = "employee"
	ImportProducts  ImportKind = "product"
	ImportSales     ImportKind = "sale"
)

var importLabels = map[ImportKind]string{
	ImportEmployees: "empleados",
	ImportProducts:  "productos",
	ImportSales:     "ventas",
}

// ImportUseCase carga filas una por una, en orden, a través del Create normal
// de cada entidad. Una fila fallida se reporta y la carga sigue.
type ImportUseCase struct {
	employees *EmployeeUseCase
	products  *ProductUseCase
	sales     *SaleUseCase
	workflows repository.WorkflowRepository
	catalog   repository.ProductRepository
	logs      repository.LogRepository
	maxRows   int
	log       *logger.Logger
}

// NewImportUseCase construye el caso de uso. maxRows <= 0 desactiva el límite.
func NewImportUseCase(
	employees *EmployeeUseCase,
	products *ProductUseCase,
	sales *SaleUseCase,
	workflows repository.WorkflowRepository,
	catalog repository.ProductRepository,
	logs repository.LogRepository,
	maxRows int,
	log *logger.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		employees: employees,
		products:  products,
		sales:     sales,
		workflows: workflows,
		catalog:   catalog,
		logs:      logs,
		maxRows:   maxRows,
		log:       log.Component("import"),
	}
}

// Import procesa rows en workflowID. El workflow inexistente o un lote por
// encima del límite fallan completos; todo lo demás se decide por fila.
func (uc *ImportUseCase) Import(ctx context.Context, actor domain.Actor, kind ImportKind, workflowID string, rows []dto.ImportRow) (*dto.ImportResult, error) {
	label, ok := importLabels[kind]
	if !ok {
		return nil, fmt.Errorf("%w: tipo de importación %q", domain.ErrInvalidInput, kind)
	}
	if actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(workflowID) == "" {
		return nil, fmt.Errorf("%w: workflowId es obligatorio", domain.ErrInvalidInput)
	}
	if uc.maxRows > 0 && len(rows) > uc.maxRows {
		return nil, fmt.Errorf("%w: máximo %d filas por importación", domain.ErrInvalidInput, uc.maxRows)
	}
	if _, err := requireWorkflow(ctx, uc.workflows, workflowID); err != nil {
		return nil, err
	}

	result := &dto.ImportResult{CreatedIDs: []string{}, Skipped: []dto.ImportSkip{}}
	resolver := &productResolver{repo: uc.catalog, workflowID: workflowID}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		number := row.Number
		if number <= 0 {
			number = i + 1
		}
		id, err := uc.importRow(ctx, actor, kind, workflowID, row, resolver)
		if err != nil {
			result.Skipped = append(result.Skipped, dto.ImportSkip{Row: number, Reason: err.Error()})
			continue
		}
		result.Created++
		result.CreatedIDs = append(result.CreatedIDs, id)
	}

	uc.summarize(ctx, actor, workflowID, label, result)
	return result, nil
}

func (uc *ImportUseCase) importRow(ctx context.Context, actor domain.Actor, kind ImportKind, workflowID string, row dto.ImportRow, resolver *productResolver) (string, error) {
	switch kind {
	case ImportEmployees:
		out, err := uc.employees.Create(ctx, actor, dto.CreateEmployeeRequest{
			WorkflowID: workflowID,
			Matricule:  row.Get("matricule"),
			Name:       row.Get("nom"),
			Position:   row.Get("poste"),
		})
		if err != nil {
			return "", err
		}
		return out.ID, nil

	case ImportProducts:
		in := dto.CreateProductRequest{
			WorkflowID: workflowID,
			Name:       row.Get("nom"),
			Reference:  row.Get("reference"),
		}
		if raw := row.Get("pu"); raw != "" {
			pu, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
			if err != nil {
				return "", fmt.Errorf("%w: pu %q no es un número", domain.ErrInvalidInput, raw)
			}
			in.UnitPrice = &pu
		}
		if raw := row.Get("actif"); raw != "" {
			active, err := strconv.ParseBool(raw)
			if err != nil {
				return "", fmt.Errorf("%w: actif %q no es booleano", domain.ErrInvalidInput, raw)
			}
			in.Active = &active
		}
		out, err := uc.products.Create(ctx, actor, in)
		if err != nil {
			return "", err
		}
		return out.ID, nil

	case ImportSales:
		in := dto.CreateSaleRequest{
			WorkflowID: workflowID,
			ProductID:  row.Get("produitId"),
			SourceType: entity.SaleSourceExcel,
		}
		if in.ProductID == "" && row.Get("produit") != "" {
			id, err := resolver.resolve(ctx, row.Get("produit"))
			if err != nil {
				return "", err
			}
			in.ProductID = id
		}
		if raw := row.Get("qte"); raw != "" {
			qte, err := strconv.Atoi(raw)
			if err != nil {
				return "", fmt.Errorf("%w: qte %q no es un entero", domain.ErrInvalidInput, raw)
			}
			in.Quantity = qte
		}
		out, err := uc.sales.Create(ctx, actor, in)
		if err != nil {
			return "", err
		}
		return out.ID, nil
	}
	return "", fmt.Errorf("%w: tipo de importación %q", domain.ErrInvalidInput, kind)
}

// summarize deja una entrada de log con el resultado. Si falla solo se reporta por zerolog.
func (uc *ImportUseCase) summarize(ctx context.Context, actor domain.Actor, workflowID, label string, result *dto.ImportResult) {
	entry := &entity.Log{
		ID:         uuid.New().String(),
		WorkflowID: workflowID,
		UserID:     actor.UserID,
		Action:     fmt.Sprintf("importación de %s: %d creados, %d omitidos", label, result.Created, len(result.Skipped)),
		CreatedAt:  now(),
	}
	if err := uc.logs.Create(ctx, entry); err != nil {
		uc.log.Warn().Err(err).Str("workflow_id", workflowID).Msg("no se pudo registrar el log de importación")
	}
	uc.log.Info().
		Str("workflow_id", workflowID).
		Str("user_id", actor.UserID).
		Str("kind", label).
		Int("created", result.Created).
		Int("skipped", len(result.Skipped)).
		Msg("importación terminada")
}

// productResolver busca productos del workflow por nombre o referencia. El
// catálogo se lee una sola vez por importación.
type productResolver struct {
	repo       repository.ProductRepository
	workflowID string
	loaded     bool
	products   []*entity.Product
}

func (r *productResolver) resolve(ctx context.Context, key string) (string, error) {
	if !r.loaded {
		list, err := r.repo.ListByWorkflow(ctx, r.workflowID)
		if err != nil {
			return "", err
		}
		r.products = list
		r.loaded = true
	}
	for _, p := range r.products {
		if p.Reference != "" && p.Reference == key {
			return p.ID, nil
		}
	}
	for _, p := range r.products {
		if strings.EqualFold(p.Name, key) {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("%w: producto %q no existe en el workflow", domain.ErrInvalidReference, key)
}
