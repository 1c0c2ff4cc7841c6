package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/datanova-api/pkg/trend"
)

// SeriesPoint punto de una serie agrupada (mes "2024-03" o periodo libre).
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ProductSalesDTO ventas agregadas por producto.
type ProductSalesDTO struct {
	ProductID string          `json:"produitId"`
	Name      string          `json:"nom"`
	UnitPrice decimal.Decimal `json:"pu"`
	Quantity  int             `json:"qte"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// SalesInsights agregados de un workflow VENTE. Las ventas de productos borrados
// cuentan en cantidad pero no en ingreso.
type SalesInsights struct {
	TotalQuantity int               `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal   `json:"totalRevenue"`
	Products      []ProductSalesDTO `json:"products"`
	Monthly       []SeriesPoint     `json:"monthly"`
	Projection    *trend.Projection `json:"projection"`
}

// EmployeeScoreDTO promedio de puntajes de un empleado.
type EmployeeScoreDTO struct {
	EmployeeID string  `json:"employeeId"`
	Matricule  string  `json:"matricule,omitempty"`
	Name       string  `json:"nom,omitempty"`
	Average    float64 `json:"average"`
	Count      int     `json:"count"`
}

// PerformanceInsights agregados de un workflow PERFO_EMP.
type PerformanceInsights struct {
	AverageScore float64            `json:"averageScore"`
	Periods      []SeriesPoint      `json:"periods"`
	Employees    []EmployeeScoreDTO `json:"employees"`
	Projection   *trend.Projection  `json:"projection"`
}

// WorkflowInsights respuesta de GET /api/workflow/:id/insights.
type WorkflowInsights struct {
	WorkflowID   string               `json:"workflowId"`
	Name         string               `json:"nom"`
	CategoryCode string               `json:"categorie"`
	Ahead        int                  `json:"ahead"`
	Sales        *SalesInsights       `json:"sales,omitempty"`
	Performance  *PerformanceInsights `json:"performance,omitempty"`
}

// AdminOverview conteos globales para ADMIN.
type AdminOverview struct {
	Users                int            `json:"users"`
	Workflows            int            `json:"workflows"`
	WorkflowsByCategorie map[string]int `json:"workflowsByCategorie"`
	Employees            int            `json:"employees"`
	Products             int            `json:"products"`
	Sales                int            `json:"sales"`
	PerformanceRecords   int            `json:"performanceRecords"`
	Logs                 int            `json:"logs"`
}
