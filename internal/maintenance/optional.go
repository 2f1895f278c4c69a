package maintenance

import "encoding/json"

// Optional is a value that may be unset. Unset values report IsZero, so
// struct fields tagged `omitzero` are left out of the encoded JSON.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// FromPtr converts a decoded pointer field: nil means unset.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}

func (o Optional[T]) IsZero() bool { return !o.Set }

func (o Optional[T]) Get() (T, bool) { return o.Value, o.Set }

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
