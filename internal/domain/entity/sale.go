package entity

import "time"

// Origen de una venta.
const (
	SaleSourceWebForm = "WEBFORM"
	SaleSourceExcel   = "EXCEL"
	SaleSourceGoogle  = "GOOGLE"
)

// ValidSaleSource indica si s es un origen conocido.
func ValidSaleSource(s string) bool {
	return s == SaleSourceWebForm || s == SaleSourceExcel || s == SaleSourceGoogle
}

// Sale registra qte unidades vendidas de un producto. El producto puede haber
// sido borrado después: la venta conserva el historial.
type Sale struct {
	ID         string
	WorkflowID string
	ProductID  string
	Quantity   int
	SourceType string
	CreatedAt  time.Time
}
