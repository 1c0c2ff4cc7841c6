package entity

// Códigos de categoría: determinan qué entidades expone un Workflow.
const (
	CategoryVente    = "VENTE"     // seguimiento de ventas: productos + ventas
	CategoryPerfoEmp = "PERFO_EMP" // desempeño de empleados: empleados + puntajes
)

// ValidCategoryCode indica si code es un código de categoría conocido.
func ValidCategoryCode(code string) bool {
	return code == CategoryVente || code == CategoryPerfoEmp
}

// Category es dato de referencia estático (código único).
type Category struct {
	ID          string
	Code        string
	Description string
}
