package store

import (
	"bytes"
	"encoding/json"
)

// Field is an optional, nullable value in a Patch. The zero value is absent.
type Field[T any] struct {
	set   bool
	value *T
}

// Value returns a present field holding v.
func Value[T any](v T) Field[T] {
	return Field[T]{set: true, value: &v}
}

// Null returns a present field that clears the target.
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// IsSet reports whether the field was supplied at all.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the field was supplied as null.
func (f Field[T]) IsNull() bool {
	return f.set && f.value == nil
}

// Ptr returns the supplied value, or nil when absent or null.
func (f Field[T]) Ptr() *T {
	return f.value
}

// UnmarshalJSON is only invoked for keys present in the document, which is
// what lets a decoded Field distinguish "absent" from "null".
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value = &v
	return nil
}
