package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/application/usecase"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
)

func TestImport_FallaParcialNoAborta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w := f.workflow(t, entity.CategoryPerfoEmp)

	rows := []dto.ImportRow{
		cells("matricule", "M1", "nom", "Ana"),
		cells("matricule", "M2", "nom", ""),
		cells("matricule", "M3", "nom", "Luis", "poste", "Caja"),
	}
	res, err := f.imports.Import(ctx, owner, usecase.ImportEmployees, w.ID, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 2, res.Skipped[0].Row)
	assert.NotEmpty(t, res.Skipped[0].Reason)

	list, err := f.employees.ListByWorkflow(ctx, w.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	logs, err := f.logs.ListByWorkflow(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Action, "2 creados, 1 omitidos")
}

func TestImport_ProductosParseaPrecio(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w := f.workflow(t, entity.CategoryVente)

	rows := []dto.ImportRow{
		cells("nom", "Widget", "pu", "10,5", "reference", "W-1"),
		cells("nom", "Roto", "pu", "diez"),
		cells("nom", "Inactivo", "pu", "3", "actif", "false"),
	}
	res, err := f.imports.Import(ctx, owner, usecase.ImportProducts, w.ID, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 2, res.Skipped[0].Row)

	list, _ := f.products.ListByWorkflow(ctx, w.ID)
	byName := map[string]dto.ProductResponse{}
	for _, p := range list {
		byName[p.Name] = p
	}
	assert.Equal(t, "10.5", byName["Widget"].UnitPrice.String())
	assert.False(t, byName["Inactivo"].Active)
}

func TestImport_VentasSonExcelYResuelvenProducto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w := f.workflow(t, entity.CategoryVente)
	p := f.product(t, w.ID, "Widget", 10)

	rows := []dto.ImportRow{
		cells("produitid", p.ID, "qte", "3"),
		cells("produit", "widget", "qte", "2"),
		cells("produit", "Fantasma", "qte", "1"),
		cells("produitid", p.ID, "qte", "0"),
	}
	res, err := f.imports.Import(ctx, owner, usecase.ImportSales, w.ID, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Len(t, res.Skipped, 2)

	sales, err := f.sales.ListByWorkflow(ctx, w.ID, usecase.ReadOptions{})
	require.NoError(t, err)
	for _, s := range sales {
		assert.Equal(t, entity.SaleSourceExcel, s.SourceType)
		assert.Equal(t, p.ID, s.ProductID.ID())
	}
}

func TestImport_WorkflowInexistenteFallaCompleto(t *testing.T) {
	f := newFixture()
	_, err := f.imports.Import(context.Background(), owner, usecase.ImportEmployees, "nada", []dto.ImportRow{cells("matricule", "M1", "nom", "Ana")})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestImport_LimiteDeFilas(t *testing.T) {
	f := newFixture()
	w := f.workflow(t, entity.CategoryPerfoEmp)
	rows := make([]dto.ImportRow, 101)
	_, err := f.imports.Import(context.Background(), owner, usecase.ImportEmployees, w.ID, rows)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewImportRow_NormalizaJSON(t *testing.T) {
	row := dto.NewImportRow(4, map[string]any{"ProduitId": " p-1 ", "qte": float64(3), "pu": 4.5, "x": nil})
	assert.Equal(t, "p-1", row.Get("produitId"))
	assert.Equal(t, "3", row.Get("qte"))
	assert.Equal(t, "4.5", row.Get("PU"))
	assert.Equal(t, "", row.Get("x"))
	assert.Equal(t, 4, row.Number)
}

// cells arma una fila sin posición de origen a partir de pares columna, valor.
func cells(kv ...string) dto.ImportRow {
	row := dto.ImportRow{Cells: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		row.Cells[kv[i]] = kv[i+1]
	}
	return row
}

// Las filas leídas de un archivo traen su número; el reporte usa ese y no
// la posición dentro del lote (las filas en blanco ya fueron descartadas).
func TestImport_SkipUsaLaFilaDelArchivo(t *testing.T) {
	f := newFixture()
	w := f.workflow(t, entity.CategoryVente)

	rows := []dto.ImportRow{
		{Number: 1, Cells: map[string]string{"nom": "Widget", "pu": "10"}},
		{Number: 3, Cells: map[string]string{"nom": "Gadget", "pu": "abc"}},
	}
	res, err := f.imports.Import(context.Background(), owner, usecase.ImportProducts, w.ID, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 3, res.Skipped[0].Row)
}
