package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// ImportKind colección destino de una carga masiva.
type ImportKind string

const (
	ImportEmployees ImportKind = "employee"
	ImportProducts  ImportKind = "product"
	ImportSales     ImportKind = "sale"
)

// Import envía las filas en JSON; el servidor las crea una por una.
func (c *Client) Import(ctx context.Context, kind ImportKind, workflowID string, rows []map[string]any) (*ImportResult, error) {
	var out ImportResult
	in := ImportRequest{WorkflowID: workflowID, Rows: rows}
	if err := c.do(ctx, http.MethodPost, "/api/"+string(kind)+"/import", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportFile sube un .xlsx o .csv; filename decide el formato.
func (c *Client) ImportFile(ctx context.Context, kind ImportKind, workflowID, filename string, file io.Reader) (*ImportResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("workflowId", workflowID); err != nil {
		return nil, err
	}
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, file); err != nil {
		return nil, fmt.Errorf("datanova: copiar archivo: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, http.MethodPost, "/api/"+string(kind)+"/import", &buf,
		map[string]string{"Content-Type": w.FormDataContentType()})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("datanova: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, raw)
	}
	var out ImportResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("datanova: deserializar resultado: %w", err)
	}
	return &out, nil
}

// CreateEach crea rows de a una llamando a create. Una fila fallida queda en
// Skipped (Row empieza en 1) y no detiene las siguientes; solo la cancelación
// del contexto corta el recorrido.
func CreateEach[C any](ctx context.Context, rows []C, create func(context.Context, C) (string, error)) *ImportResult {
	result := &ImportResult{CreatedIDs: []string{}, Skipped: []ImportSkip{}}
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			result.Skipped = append(result.Skipped, ImportSkip{Row: i + 1, Reason: err.Error()})
			break
		}
		id, err := create(ctx, row)
		if err != nil {
			result.Skipped = append(result.Skipped, ImportSkip{Row: i + 1, Reason: err.Error()})
			continue
		}
		result.Created++
		result.CreatedIDs = append(result.CreatedIDs, id)
	}
	return result
}

// CreateEmployees alta fila por fila desde el cliente.
func (c *Client) CreateEmployees(ctx context.Context, rows []CreateEmployeeRequest) *ImportResult {
	return CreateEach(ctx, rows, func(ctx context.Context, in CreateEmployeeRequest) (string, error) {
		out, err := c.Employees.Create(ctx, in)
		if err != nil {
			return "", err
		}
		return out.ID, nil
	})
}

// CreateProducts alta fila por fila desde el cliente.
func (c *Client) CreateProducts(ctx context.Context, rows []CreateProductRequest) *ImportResult {
	return CreateEach(ctx, rows, func(ctx context.Context, in CreateProductRequest) (string, error) {
		out, err := c.Products.Create(ctx, in)
		if err != nil {
			return "", err
		}
		return out.ID, nil
	})
}
