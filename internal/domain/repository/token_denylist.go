package repository

import (
	"context"
	"time"
)

// TokenDenylist guarda los jti de tokens revocados por logout hasta su expiración.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
