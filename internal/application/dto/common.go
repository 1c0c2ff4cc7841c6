package dto

// ErrorResponse cuerpo de error HTTP. Detail solo aparece en errores internos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// MessageResponse acuse de recibo (logout, delete).
type MessageResponse struct {
	Message string `json:"message"`
}
