// Package client es el acceso tipado a la API de DataNova: un recurso por
// entidad, más sesión (registro, login, logout), insights y carga masiva.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// maxBody límite de lectura de respuestas (los reportes PDF son los más grandes).
const maxBody = 16 << 20

// APIError respuesta no 2xx de la API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("datanova: HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("datanova: HTTP %d %s: %s", e.Status, e.Code, e.Message)
}

// StatusOf devuelve el status HTTP de err, o 0 si no es un *APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client cliente HTTP de la API. Es seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string

	Users        *Resource[UserResponse, RegisterRequest, UpdateUserRequest]
	Categories   *Resource[CategoryResponse, CreateCategoryRequest, UpdateCategoryRequest]
	Workflows    *Resource[WorkflowResponse, CreateWorkflowRequest, UpdateWorkflowRequest]
	Employees    *Resource[EmployeeResponse, CreateEmployeeRequest, UpdateEmployeeRequest]
	Products     *Resource[ProductResponse, CreateProductRequest, UpdateProductRequest]
	Sales        *Resource[SaleResponse, CreateSaleRequest, UpdateSaleRequest]
	Performances *Resource[PerformanceResponse, CreatePerformanceRequest, UpdatePerformanceRequest]
	Logs         *LogResource
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (timeouts, transporte de pruebas).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken arranca con un token ya emitido.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New construye el cliente contra baseURL (p.ej. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Users = &Resource[UserResponse, RegisterRequest, UpdateUserRequest]{c: c, path: "/api/user"}
	c.Categories = &Resource[CategoryResponse, CreateCategoryRequest, UpdateCategoryRequest]{c: c, path: "/api/category"}
	c.Workflows = &Resource[WorkflowResponse, CreateWorkflowRequest, UpdateWorkflowRequest]{c: c, path: "/api/workflow"}
	c.Employees = &Resource[EmployeeResponse, CreateEmployeeRequest, UpdateEmployeeRequest]{c: c, path: "/api/employee"}
	c.Products = &Resource[ProductResponse, CreateProductRequest, UpdateProductRequest]{c: c, path: "/api/product"}
	c.Sales = &Resource[SaleResponse, CreateSaleRequest, UpdateSaleRequest]{c: c, path: "/api/sale"}
	c.Performances = &Resource[PerformanceResponse, CreatePerformanceRequest, UpdatePerformanceRequest]{c: c, path: "/api/perfoEmp"}
	c.Logs = &LogResource{c: c, path: "/api/log"}
	return c
}

// Token devuelve el token de sesión actual.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ── Sesión ───────────────────────────────────────────────────────────────────

// Register crea un usuario (no inicia sesión).
func (c *Client) Register(ctx context.Context, in RegisterRequest) (*UserResponse, error) {
	return c.Users.Create(ctx, in)
}

// Login autentica y guarda el token para las siguientes llamadas.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/user/login", nil, LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	c.setToken(out.Token)
	return &out, nil
}

// Logout revoca el token en el servidor y lo olvida localmente.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/user/logout", nil, nil, nil); err != nil {
		return err
	}
	c.setToken("")
	return nil
}

// ── Consultas específicas ────────────────────────────────────────────────────

// AllWorkflows lista los workflows de todos los usuarios (ruta pública).
func (c *Client) AllWorkflows(ctx context.Context, q ...Query) ([]WorkflowResponse, error) {
	var out []WorkflowResponse
	err := c.do(ctx, http.MethodGet, "/api/workflow/all", values(q), nil, &out)
	return out, err
}

// Insights agregados y proyección del workflow; ahead <= 0 usa el valor del servidor.
func (c *Client) Insights(ctx context.Context, workflowID string, ahead int) (*WorkflowInsights, error) {
	v := url.Values{}
	if ahead > 0 {
		v.Set("ahead", fmt.Sprint(ahead))
	}
	var out WorkflowInsights
	if err := c.do(ctx, http.MethodGet, "/api/workflow/"+url.PathEscape(workflowID)+"/insights", v, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Report descarga el reporte PDF del workflow.
func (c *Client) Report(ctx context.Context, workflowID string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, "/api/workflow/"+url.PathEscape(workflowID)+"/report", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("datanova: leer reporte: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

// Overview conteos globales (solo ADMIN).
func (c *Client) Overview(ctx context.Context) (*AdminOverview, error) {
	var out AdminOverview
	if err := c.do(ctx, http.MethodGet, "/api/admin/overview", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Transporte ───────────────────────────────────────────────────────────────

// do envía in como JSON (si no es nil) y decodifica la respuesta 2xx en out.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("datanova: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	resp, err := c.send(ctx, method, path+encode(q), body, map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("datanova: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("datanova: deserializar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("datanova: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("datanova: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("datanova: %s %s: %w", method, path, err)
	}
	return resp, nil
}

func decodeError(status int, raw []byte) error {
	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && (e.Code != "" || e.Message != "") {
		return &APIError{Status: status, Code: e.Code, Message: e.Message}
	}
	return &APIError{Status: status, Message: strings.TrimSpace(string(raw))}
}

func encode(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
