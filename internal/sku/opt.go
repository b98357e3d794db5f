package sku

// Opt is an optional value that stays comparable: an SKU with Opt fields
// still supports == and map keys, which pointer-based optionals would
// break. The zero value is absent.
type Opt[T comparable] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T comparable](v T) Opt[T] {
	return Opt[T]{value: v, ok: true}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Present reports whether a value is set.
func (o Opt[T]) Present() bool { return o.ok }
