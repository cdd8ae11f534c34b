// Package option provides an explicit Option[T] used for the type slots
// that the inferrer fills in on HIR nodes. A slot starts absent and is
// filled exactly once; it is never modeled as a nullable pointer.
package option

// Option represents a value that may or may not be present.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None constructs an absent slot.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// MustGet returns the value, panicking if absent. Reserved for call sites
// downstream of the checker, where an absent slot is an implementation
// bug rather than a user-facing condition.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("option: Get on an absent slot")
	}
	return o.value
}
