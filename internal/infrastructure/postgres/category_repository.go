package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Code, &c.Description); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una categoría. Código repetido => ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx, `INSERT INTO categories (id, code, description) VALUES ($1, $2, $3)`, c.ID, c.Code, c.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) getOne(ctx context.Context, where string, arg any) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT id, code, description FROM categories WHERE `+where, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByCode obtiene una categoría por código.
func (r *CategoryRepo) GetByCode(ctx context.Context, code string) (*entity.Category, error) {
	return r.getOne(ctx, "code = $1", code)
}

// Update actualiza código y descripción.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx, `UPDATE categories SET code = $2, description = $3 WHERE id = $1`, c.ID, c.Code, c.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista las categorías por código.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, code, description FROM categories ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list, err := collect(rows, func(rows pgx.Rows) (*entity.Category, error) { return scanCategory(rows) })
	if err != nil {
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return list, nil
}

// Delete elimina una categoría. Los workflows que la referencian no se revalidan.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Count devuelve la cantidad de filas de categories.
func (r *CategoryRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.q, "categories")
}
