package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/datanova-api/internal/application/auth"
	"github.com/jhoicas/datanova-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/datanova-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/datanova-api/internal/interfaces/http"
	"github.com/jhoicas/datanova-api/pkg/client"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := memory.NewStore()
	deps := apphttp.NewRouterDeps(apphttp.Repositories{
		Users: s.Users, Categories: s.Categories, Workflows: s.Workflows, Employees: s.Employees,
		Products: s.Products, Sales: s.Sales, Performances: s.Performances, Logs: s.Logs,
		Denylist: memory.NewDenylist(),
	}, apphttp.Options{
		JWT:           auth.JWTConfig{Secret: "client-test-secret", ExpMinutes: 60, Issuer: "datanova-test"},
		ImportMaxRows: 50,
		Reports:       infrapdf.NewWorkflowReportGenerator(),
	})
	srv := httptest.NewServer(adaptor.FiberApp(apphttp.NewApp("datanova-test", deps, nil)))
	t.Cleanup(srv.Close)
	return srv
}

// session registra y autentica un usuario nuevo.
func session(t *testing.T, srv *httptest.Server, email, role string) *client.Client {
	t.Helper()
	ctx := context.Background()
	c := client.New(srv.URL, client.WithHTTPClient(srv.Client()))
	_, err := c.Register(ctx, client.RegisterRequest{Name: email, Email: email, Password: "secreto", Role: role})
	require.NoError(t, err)
	_, err = c.Login(ctx, email, "secreto")
	require.NoError(t, err)
	require.NotEmpty(t, c.Token())
	return c
}

func workflow(t *testing.T, c *client.Client, code string) string {
	t.Helper()
	ctx := context.Background()
	cat, err := c.Categories.Create(ctx, client.CreateCategoryRequest{Code: code})
	require.NoError(t, err)
	w, err := c.Workflows.Create(ctx, client.CreateWorkflowRequest{Name: "WF " + code, CategoryID: cat.ID})
	require.NoError(t, err)
	return w.ID
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_CRUDYReferencias(t *testing.T) {
	srv := newServer(t)
	c := session(t, srv, "ana@example.com", "")
	ctx := context.Background()
	wid := workflow(t, c, "VENTE")

	w, err := c.Workflows.Get(ctx, wid)
	require.NoError(t, err)
	cat, ok := w.CategoryID.Value()
	require.True(t, ok)
	assert.Equal(t, "VENTE", cat.Code)

	raw, err := c.Workflows.Get(ctx, wid, client.Raw())
	require.NoError(t, err)
	assert.False(t, raw.CategoryID.IsExpanded())
	assert.Equal(t, cat.ID, raw.CategoryID.ID())

	pu := decimal.NewFromFloat(12.5)
	p, err := c.Products.Create(ctx, client.CreateProductRequest{WorkflowID: wid, Name: "Widget", UnitPrice: &pu})
	require.NoError(t, err)
	assert.True(t, p.Active)

	sale, err := c.Sales.Create(ctx, client.CreateSaleRequest{WorkflowID: wid, ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "WEBFORM", sale.SourceType)

	sales, err := c.Sales.ListByWorkflow(ctx, wid)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	prod, ok := sales[0].ProductID.Value()
	require.True(t, ok)
	assert.True(t, prod.UnitPrice.Equal(pu))

	updated, err := c.Products.Update(ctx, p.ID, client.UpdateProductRequest{Name: ptr("Widget Pro")})
	require.NoError(t, err)
	assert.Equal(t, "Widget Pro", updated.Name)
	assert.True(t, updated.UnitPrice.Equal(pu))

	require.NoError(t, c.Products.Delete(ctx, p.ID))
	_, err = c.Products.Get(ctx, p.ID)
	assert.Equal(t, http.StatusNotFound, client.StatusOf(err))
}

func TestClient_ErroresTipados(t *testing.T) {
	srv := newServer(t)
	owner := session(t, srv, "owner@example.com", "")
	stranger := session(t, srv, "otro@example.com", "")
	ctx := context.Background()
	wid := workflow(t, owner, "VENTE")

	_, err := stranger.Workflows.Update(ctx, wid, client.UpdateWorkflowRequest{Name: ptr("hack")})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)

	_, err = owner.Categories.Create(ctx, client.CreateCategoryRequest{Code: "VENTE"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "DUPLICATE", apiErr.Code)

	_, err = stranger.Overview(ctx)
	assert.Equal(t, http.StatusForbidden, client.StatusOf(err))
}

func TestClient_Logout(t *testing.T) {
	srv := newServer(t)
	c := session(t, srv, "ana@example.com", "")
	ctx := context.Background()
	token := c.Token()

	require.NoError(t, c.Logout(ctx))
	assert.Empty(t, c.Token())

	revoked := client.New(srv.URL, client.WithHTTPClient(srv.Client()), client.WithToken(token))
	_, err := revoked.Workflows.List(ctx)
	assert.Equal(t, http.StatusUnauthorized, client.StatusOf(err))
}

func TestClient_CreateEach_FilaFallidaNoDetiene(t *testing.T) {
	srv := newServer(t)
	c := session(t, srv, "ana@example.com", "")
	ctx := context.Background()
	wid := workflow(t, c, "PERFO_EMP")

	res := c.CreateEmployees(ctx, []client.CreateEmployeeRequest{
		{WorkflowID: wid, Matricule: "M1", Name: "Ana"},
		{WorkflowID: wid, Name: "Sin matricule"},
		{WorkflowID: wid, Matricule: "M3", Name: "Carla"},
	})
	assert.Equal(t, 2, res.Created)
	assert.Len(t, res.CreatedIDs, 2)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 2, res.Skipped[0].Row)

	list, err := c.Employees.ListByWorkflow(ctx, wid)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestClient_CreateEach_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	res := client.CreateEach(ctx, []int{1, 2, 3}, func(context.Context, int) (string, error) {
		calls++
		cancel()
		return "id", nil
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, res.Created)
	assert.Len(t, res.Skipped, 1)
}

func TestClient_ImportServidor(t *testing.T) {
	srv := newServer(t)
	c := session(t, srv, "ana@example.com", "")
	ctx := context.Background()
	wid := workflow(t, c, "VENTE")

	res, err := c.ImportFile(ctx, client.ImportProducts, wid, "productos.csv",
		strings.NewReader("nom,pu\nWidget,10\nGadget,4.5\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)

	res, err = c.Import(ctx, client.ImportSales, wid, []map[string]any{
		{"produit": "Widget", "qte": 3},
		{"produit": "Inexistente", "qte": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	require.Len(t, res.Skipped, 1)

	// Los tipos de respuesta se nombran desde este paquete, sin importar internal/.
	var result *client.ImportResult = res
	var skip client.ImportSkip = result.Skipped[0]
	assert.Equal(t, 2, skip.Row)

	sales, err := c.Sales.ListByWorkflow(ctx, wid)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "EXCEL", sales[0].SourceType)
}

func TestClient_InsightsYReporte(t *testing.T) {
	srv := newServer(t)
	c := session(t, srv, "ana@example.com", "")
	ctx := context.Background()
	wid := workflow(t, c, "PERFO_EMP")

	for _, s := range []float64{60, 70, 80} {
		_, err := c.Performances.Create(ctx, client.CreatePerformanceRequest{WorkflowID: wid, Score: ptr(s), Period: "P" + decimal.NewFromFloat(s).String()})
		require.NoError(t, err)
	}

	ins, err := c.Insights(ctx, wid, 1)
	require.NoError(t, err)
	require.NotNil(t, ins.Performance)
	assert.InDelta(t, 70, ins.Performance.AverageScore, 1e-9)
	require.NotNil(t, ins.Performance.Projection)
	assert.InDelta(t, 90, ins.Performance.Projection.Values[0], 1e-9)

	pdf, err := c.Report(ctx, wid)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))

	_, err = c.Report(ctx, "no-existe")
	assert.Equal(t, http.StatusNotFound, client.StatusOf(err))
}
