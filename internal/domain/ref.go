package domain

import (
	"context"
	"encoding/json"
)

// Ref is a relationship field that is either a bare id or an already loaded
// entity. Callers resolve it through Resolve instead of switching on the
// runtime shape.
type Ref[T any] struct {
	id    string
	value *T
}

// RefID builds an unloaded reference.
func RefID[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

// RefLoaded builds a reference that already carries the entity.
func RefLoaded[T any](id string, value *T) Ref[T] {
	return Ref[T]{id: id, value: value}
}

// ID returns the referenced entity's id.
func (r Ref[T]) ID() string {
	return r.id
}

// Value returns the loaded entity, if any.
func (r Ref[T]) Value() (*T, bool) {
	return r.value, r.value != nil
}

// IsZero reports whether the reference points at nothing.
func (r Ref[T]) IsZero() bool {
	return r.id == "" && r.value == nil
}

// MarshalJSON renders the reference as its id; loaded values are never
// embedded in API payloads.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.id)
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	r.id = id
	r.value = nil
	return nil
}

// Resolve returns the loaded entity, fetching it by id when necessary.
func (r Ref[T]) Resolve(ctx context.Context, fetch func(ctx context.Context, id string) (*T, error)) (*T, error) {
	if r.value != nil {
		return r.value, nil
	}
	return fetch(ctx, r.id)
}
