package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// ValidRole indica si r es un rol conocido.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User representa una cuenta de DataNova.
type User struct {
	ID           string
	Name         string
	Email        string // único
	Tel          string
	PasswordHash string // bcrypt, nunca se serializa
	Role         string // ADMIN, USER
	CreatedAt    time.Time
}
