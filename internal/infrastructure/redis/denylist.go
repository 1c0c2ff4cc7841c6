// Package redis guarda la lista de tokens revocados en Redis, con TTL igual a
// la vida restante de cada token.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/datanova-api/internal/domain/repository"
	"github.com/jhoicas/datanova-api/pkg/config"
)

var _ repository.TokenDenylist = (*Denylist)(nil)

const keyPrefix = "datanova:denylist:"

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// Denylist implementa repository.TokenDenylist sobre go-redis.
type Denylist struct {
	rdb goredis.Cmdable
}

func NewDenylist(rdb goredis.Cmdable) *Denylist {
	return &Denylist{rdb: rdb}
}

func key(jti string) string {
	return keyPrefix + jti
}

// Revoke guarda jti con expiración; tokens ya vencidos se ignoran.
func (d *Denylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := d.rdb.Set(ctx, key(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revocar token: %w", err)
	}
	return nil
}

func (d *Denylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.rdb.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("consultar token revocado: %w", err)
	}
	return n > 0, nil
}
