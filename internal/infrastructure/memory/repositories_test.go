package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/infrastructure/memory"
)

func TestUserRepo_EmailUnico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Email: "a@x.io"}))

	err := repo.Create(ctx, &entity.User{ID: "u2", Email: "a@x.io"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	got, err := repo.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestCategoryRepo_CodigoUnico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCategoryRepository()
	require.NoError(t, repo.Create(ctx, &entity.Category{ID: "c1", Code: entity.CategoryVente, Description: "orig"}))

	err := repo.Create(ctx, &entity.Category{ID: "c2", Code: entity.CategoryVente})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, _ := repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "orig", list[0].Description)
}

func TestRepos_DevuelvenCopias(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWorkflowRepository()
	w := &entity.Workflow{ID: "w1", Name: "antes"}
	require.NoError(t, repo.Create(ctx, w))

	w.Name = "mutado fuera"
	got, _ := repo.GetByID(ctx, "w1")
	assert.Equal(t, "antes", got.Name)

	got.Name = "mutado otra vez"
	again, _ := repo.GetByID(ctx, "w1")
	assert.Equal(t, "antes", again.Name)
}

func TestRepos_NoEncontradoEsNil(t *testing.T) {
	s := memory.NewStore()
	got, err := s.Products.GetByID(context.Background(), "nada")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLogRepo_MasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLogRepository()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Log{ID: "l1", WorkflowID: "w", Action: "viejo", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &entity.Log{ID: "l2", WorkflowID: "w", Action: "nuevo", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Log{ID: "l3", WorkflowID: "otro", Action: "ajeno", CreatedAt: base}))

	list, _ := repo.ListByWorkflow(ctx, "w")
	require.Len(t, list, 2)
	assert.Equal(t, "nuevo", list[0].Action)
	assert.Equal(t, "viejo", list[1].Action)
}

func TestSaleRepo_OrdenCronologico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSaleRepository()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Sale{ID: "s2", WorkflowID: "w", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Sale{ID: "s1", WorkflowID: "w", CreatedAt: base}))

	list, _ := repo.ListByWorkflow(ctx, "w")
	require.Len(t, list, 2)
	assert.Equal(t, "s1", list[0].ID)
}

func TestProductRepo_GetByIDsIgnoraFaltantes(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p1"}))

	list, err := repo.GetByIDs(ctx, []string{"p1", "p-borrado"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].ID)
}

func TestWorkflowRepo_ConteosPorCategoria(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWorkflowRepository()
	for i, cat := range []string{"c-vente", "c-vente", "c-perfo"} {
		require.NoError(t, repo.Create(ctx, &entity.Workflow{ID: string(rune('a' + i)), CategoryID: cat, CreatedAt: time.Now()}))
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	byCat, err := repo.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"c-vente": 2, "c-perfo": 1}, byCat)

	require.NoError(t, repo.Delete(ctx, "a"))
	n, _ = repo.Count(ctx)
	assert.Equal(t, 2, n)
}
