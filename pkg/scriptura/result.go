package scriptura

import "fmt"

// Result is the two-variant outcome of an endpoint call: Ok with a decoded
// value, or Err with a DomainError. A Result is immutable once constructed.
// Transport failures are never stored in a Result; they travel on the error
// position of the endpoint method instead.
type Result[T any] struct {
	value     T
	domainErr DomainError
	ok        bool
}

// Ok constructs a successful Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err constructs a failed Result holding a domain error.
func Err[T any](err DomainError) Result[T] {
	return Result[T]{domainErr: err}
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result holds a domain error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Value returns the contained value, or the zero value for an Err result.
// Callers must check IsOk first; see MustValue for the panicking variant.
func (r Result[T]) Value() T {
	return r.value
}

// DomainErr returns the contained domain error, or nil for an Ok result.
func (r Result[T]) DomainErr() DomainError {
	return r.domainErr
}

// MustValue returns the contained value and panics on an Err result.
// Accessing the wrong variant is a programmer error, not a recoverable path.
func (r Result[T]) MustValue() T {
	if !r.ok {
		panic(fmt.Sprintf("scriptura: MustValue called on Err result: %v", r.domainErr))
	}

	return r.value
}

// Unpack returns both variants at once: (value, nil) for Ok and
// (zero, domainErr) for Err. Convenient for callers that want a single
// assignment followed by a nil check.
func (r Result[T]) Unpack() (T, DomainError) {
	return r.value, r.domainErr
}
