package client

import (
	"context"
	"net/http"
	"net/url"
)

// Query modifica los parámetros de una lectura.
type Query func(url.Values)

// Raw pide las referencias como id plano (?expand=false).
func Raw() Query {
	return func(v url.Values) { v.Set("expand", "false") }
}

func values(q []Query) url.Values {
	v := url.Values{}
	for _, fn := range q {
		fn(v)
	}
	return v
}

// Resource CRUD de una entidad: T respuesta, C alta, U modificación parcial.
type Resource[T, C, U any] struct {
	c    *Client
	path string
}

// Create da de alta un registro.
func (r *Resource[T, C, U]) Create(ctx context.Context, in C) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get lee un registro por id.
func (r *Resource[T, C, U]) Get(ctx context.Context, id string, q ...Query) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.path+"/"+url.PathEscape(id), values(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List lista la colección. En workflows devuelve solo los del usuario autenticado.
func (r *Resource[T, C, U]) List(ctx context.Context, q ...Query) ([]T, error) {
	var out []T
	err := r.c.do(ctx, http.MethodGet, r.path, values(q), nil, &out)
	return out, err
}

// ListByWorkflow lista los registros de un workflow (empleados, productos, ventas, puntajes).
func (r *Resource[T, C, U]) ListByWorkflow(ctx context.Context, workflowID string, q ...Query) ([]T, error) {
	var out []T
	err := r.c.do(ctx, http.MethodGet, r.path+"/workflow/"+url.PathEscape(workflowID), values(q), nil, &out)
	return out, err
}

// Update aplica los campos presentes en in.
func (r *Resource[T, C, U]) Update(ctx context.Context, id string, in U) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.path+"/"+url.PathEscape(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete borra un registro.
func (r *Resource[T, C, U]) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil, nil)
}

// LogResource el log de actividad es append-only.
type LogResource struct {
	c    *Client
	path string
}

func (r *LogResource) Create(ctx context.Context, in CreateLogRequest) (*LogResponse, error) {
	var out LogResponse
	if err := r.c.do(ctx, http.MethodPost, r.path, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LogResource) List(ctx context.Context) ([]LogResponse, error) {
	var out []LogResponse
	err := r.c.do(ctx, http.MethodGet, r.path, nil, nil, &out)
	return out, err
}

func (r *LogResource) ListByWorkflow(ctx context.Context, workflowID string) ([]LogResponse, error) {
	var out []LogResponse
	err := r.c.do(ctx, http.MethodGet, r.path+"/workflow/"+url.PathEscape(workflowID), nil, nil, &out)
	return out, err
}
