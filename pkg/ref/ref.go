// Package ref modela los campos de referencia que en JSON viajan a veces como
// id plano ("abc") y a veces como el objeto expandido ({"_id":"abc",...}).
// La decisión se toma una sola vez al (de)serializar.
package ref

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Identifiable lo cumplen los resúmenes expandidos: deben exponer su id.
type Identifiable interface {
	RefID() string
}

// Ref es id | expandido. El valor cero es "sin referencia" y se serializa como null.
type Ref[T Identifiable] struct {
	id       string
	expanded *T
}

// ID construye una referencia plana.
func ID[T Identifiable](id string) Ref[T] {
	return Ref[T]{id: id}
}

// Expanded construye una referencia expandida.
func Expanded[T Identifiable](v T) Ref[T] {
	return Ref[T]{id: v.RefID(), expanded: &v}
}

// ID devuelve el id en ambos casos.
func (r Ref[T]) ID() string {
	return r.id
}

// IsZero indica ausencia de referencia.
func (r Ref[T]) IsZero() bool {
	return r.id == "" && r.expanded == nil
}

// IsExpanded indica si se dispone del objeto.
func (r Ref[T]) IsExpanded() bool {
	return r.expanded != nil
}

// Value devuelve el objeto expandido si existe.
func (r Ref[T]) Value() (T, bool) {
	if r.expanded == nil {
		var zero T
		return zero, false
	}
	return *r.expanded, true
}

// MarshalJSON emite el objeto si está expandido, el id si no, o null.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	switch {
	case r.expanded != nil:
		return json.Marshal(r.expanded)
	case r.id != "":
		return json.Marshal(r.id)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON acepta string, objeto o null.
func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*r = Ref[T]{}
		return nil
	case data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref[T]{id: id}
		return nil
	case data[0] == '{':
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*r = Expanded(v)
		return nil
	default:
		return fmt.Errorf("ref: se esperaba string u objeto, recibido %s", string(data))
	}
}
