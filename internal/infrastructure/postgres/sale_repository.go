package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, workflow_id, product_id, quantity, source_type, created_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	if err := row.Scan(&s.ID, &s.WorkflowID, &s.ProductID, &s.Quantity, &s.SourceType, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.WorkflowID, s.ProductID, s.Quantity, s.SourceType, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Update actualiza producto, cantidad y origen.
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx,
		`UPDATE sales SET product_id = $2, quantity = $3, source_type = $4 WHERE id = $1`,
		s.ID, s.ProductID, s.Quantity, s.SourceType,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	list, err := collect(rows, func(rows pgx.Rows) (*entity.Sale, error) { return scanSale(rows) })
	if err != nil {
		return nil, fmt.Errorf("scan sale: %w", err)
	}
	return list, nil
}

// List lista todas las ventas en orden cronológico.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY created_at`)
}

// ListByWorkflow lista las ventas de un workflow en orden cronológico.
func (r *SaleRepo) ListByWorkflow(ctx context.Context, workflowID string) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales WHERE workflow_id = $1 ORDER BY created_at`, workflowID)
}

// Delete elimina una venta.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// Count devuelve la cantidad de filas de sales.
func (r *SaleRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.q, "sales")
}
