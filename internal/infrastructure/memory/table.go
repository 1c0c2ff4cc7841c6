// Package memory implementa los puertos de repositorio en memoria. Lo usan los
// tests y el modo STORAGE=memory para demos locales sin PostgreSQL.
package memory

import (
	"sort"
	"sync"
	"time"
)

// table guarda copias de los registros: nadie fuera del paquete comparte punteros con el mapa.
type table[T any] struct {
	mu      sync.RWMutex
	rows    map[string]T
	id      func(*T) string
	created func(*T) time.Time
}

func newTable[T any](id func(*T) string, created func(*T) time.Time) *table[T] {
	return &table[T]{rows: make(map[string]T), id: id, created: created}
}

func (t *table[T]) put(v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[t.id(v)] = *v
}

func (t *table[T]) get(id string) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return nil
	}
	return &v
}

// replace actualiza solo si el registro existe.
func (t *table[T]) replace(v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[t.id(v)]; ok {
		t.rows[t.id(v)] = *v
	}
}

func (t *table[T]) delete(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rows, id)
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// filter devuelve copias de los registros que cumplen keep, ordenados por
// creación (ascendente o descendente; id como desempate).
func (t *table[T]) filter(keep func(*T) bool, newestFirst bool) []*T {
	t.mu.RLock()
	out := make([]*T, 0, len(t.rows))
	for _, v := range t.rows {
		v := v
		if keep == nil || keep(&v) {
			out = append(out, &v)
		}
	}
	t.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := t.created(out[i]), t.created(out[j])
		if ci.Equal(cj) {
			return t.id(out[i]) < t.id(out[j])
		}
		if newestFirst {
			return ci.After(cj)
		}
		return ci.Before(cj)
	})
	return out
}

func sortBy[T any](list []*T, key func(*T) string) {
	sort.SliceStable(list, func(i, j int) bool { return key(list[i]) < key(list[j]) })
}
