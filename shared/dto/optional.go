package dto

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional distinguishes a field that was absent from a JSON payload from one
// that was explicitly set to null. Set reports presence, Valid reports non-null.
type Optional[T any] struct {
	Value T
	Set   bool
	Valid bool
}

// Some returns an Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Set: true, Valid: true}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Valid = false

		var zero T
		o.Value = zero

		return nil
	}

	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err //nolint:wrapcheck
	}

	o.Valid = true

	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}

	return json.Marshal(o.Value) //nolint:wrapcheck
}

// Present reports whether the field took part in the request.
func (o Optional[T]) Present() bool {
	return o.Set
}

// ColumnValue returns the value written to the column: nil for an explicit null.
func (o Optional[T]) ColumnValue() any {
	if !o.Valid {
		return nil
	}

	return o.Value
}

// Or returns the held value when valid, otherwise fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.Valid {
		return o.Value
	}

	return fallback
}

// Apply resolves the field against a nullable current value: nil for an
// explicit null, current when absent.
func (o Optional[T]) Apply(current *T) *T {
	switch {
	case !o.Set:
		return current
	case !o.Valid:
		return nil
	default:
		value := o.Value

		return &value
	}
}
