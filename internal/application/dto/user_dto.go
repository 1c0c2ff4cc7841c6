package dto

import "time"

// RegisterRequest entrada para registro. Role vacío => USER.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Tel      string `json:"tel"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN USER"`
}

// UpdateUserRequest merge superficial: solo se aplican los campos presentes.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,min=1"`
	Tel      *string `json:"tel"`
	Password *string `json:"password" validate:"omitempty,min=1"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN USER"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Tel       string    `json:"tel"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
