package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/datanova-api/internal/application/dto"
)

// ReportGenerator puerto de salida: dibuja el reporte de un workflow.
type ReportGenerator interface {
	GenerateWorkflowReport(ctx context.Context, insights *dto.WorkflowInsights) ([]byte, error)
}

// ReportUseCase genera el PDF con los mismos agregados de Get.
type ReportUseCase struct {
	insights  *InsightsUseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(insights *InsightsUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{insights: insights, generator: generator}
}

// Download devuelve el PDF y un nombre de archivo sugerido.
func (uc *ReportUseCase) Download(ctx context.Context, workflowID string, ahead int) ([]byte, string, error) {
	ins, err := uc.insights.Get(ctx, workflowID, ahead)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.generator.GenerateWorkflowReport(ctx, ins)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: %w", err)
	}
	return doc, fmt.Sprintf("workflow-%s.pdf", ins.WorkflowID), nil
}
