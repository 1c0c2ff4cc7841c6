package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/datanova-api/internal/domain/repository"
)

var _ repository.TokenDenylist = (*Denylist)(nil)

// Denylist lista de tokens revocados en proceso. Se usa cuando REDIS_ADDR no
// está configurado: los logouts no sobreviven a un reinicio.
type Denylist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewDenylist() *Denylist {
	return &Denylist{entries: make(map[string]time.Time), now: time.Now}
}

// Revoke registra jti hasta expiresAt. Un token ya vencido no se guarda.
func (d *Denylist) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	for k, exp := range d.entries {
		if !exp.After(now) {
			delete(d.entries, k)
		}
	}
	if jti == "" || !expiresAt.After(now) {
		return nil
	}
	d.entries[jti] = expiresAt
	return nil
}

func (d *Denylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	exp, ok := d.entries[jti]
	return ok && exp.After(d.now()), nil
}
