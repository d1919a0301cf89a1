// Package lazyref implements deferred payload resolution. A Reference
// names a value by source and target and resolves it at most once
// through an injected Backend. Successful resolution is cached; failed
// resolution is not, so a later call may retry after the backend has
// been updated.
package lazyref

import (
	"errors"
	"fmt"
)

// ErrUnresolvedReference indicates that a backend could not locate the
// target within the source.
var ErrUnresolvedReference = errors.New("unresolved reference")

// Backend resolves a (source, target) pair to a concrete value. The
// call must be synchronous; on success it must be idempotent, returning
// the same value for the same pair.
type Backend interface {
	Resolve(source, target string) (any, error)
}

// Reference is a deferred-resolution descriptor for a payload that
// lives at Target within Source.
type Reference struct {
	Source string
	Target string

	backend  Backend
	value    any
	resolved bool
}

// New creates a Reference that resolves through the given backend.
func New(source, target string, backend Backend) *Reference {
	return &Reference{Source: source, Target: target, backend: backend}
}

// Resolve returns the referenced value, consulting the backend on first
// use. A success is memoized and the backend is never asked again. A
// failure surfaces as ErrUnresolvedReference and leaves the Reference
// unresolved, so callers may retry once the backend can serve the pair.
func (r *Reference) Resolve() (any, error) {
	if r.resolved {
		return r.value, nil
	}
	if r.backend == nil {
		return nil, fmt.Errorf("%w: %s.%s: no backend configured", ErrUnresolvedReference, r.Source, r.Target)
	}
	value, err := r.backend.Resolve(r.Source, r.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s: %v", ErrUnresolvedReference, r.Source, r.Target, err)
	}
	r.value = value
	r.resolved = true
	return r.value, nil
}

// Resolved reports whether a previous Resolve call has succeeded.
func (r *Reference) Resolved() bool {
	return r.resolved
}
