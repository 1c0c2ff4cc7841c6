package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Code        string `json:"code" validate:"required,oneof=VENTE PERFO_EMP"`
	Description string `json:"description"`
}

// UpdateCategoryRequest merge superficial.
type UpdateCategoryRequest struct {
	Code        *string `json:"code" validate:"omitempty,oneof=VENTE PERFO_EMP"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría; también es la forma expandida de categorieId.
type CategoryResponse struct {
	ID          string `json:"_id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

func (c CategoryResponse) RefID() string { return c.ID }
