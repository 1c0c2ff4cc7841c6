package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

// ReadOptions controla la expansión de referencias en los listados.
type ReadOptions struct {
	Expand bool
}

// Expanded opciones por defecto de la API: referencias resueltas.
var Expanded = ReadOptions{Expand: true}

func now() time.Time {
	return time.Now().UTC()
}

// requireWorkflow carga el workflow referenciado por un create. Si no existe
// devuelve ErrInvalidReference (400), no ErrNotFound.
func requireWorkflow(ctx context.Context, repo repository.WorkflowRepository, id string) (*entity.Workflow, error) {
	w, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: workflowId %q no existe", domain.ErrInvalidReference, id)
	}
	return w, nil
}

// notFound envuelve ErrNotFound con el tipo de recurso.
func notFound(res domain.Resource, id string) error {
	return fmt.Errorf("%w: %s %q", domain.ErrNotFound, res, id)
}
