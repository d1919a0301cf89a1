// Package component defines the smallest unit stored in workgrid
// structures: a named node holding an opaque payload. The payload may
// be supplied eagerly or as a lazyref.Reference that is resolved on
// first access.
package component

import (
	"errors"
	"fmt"

	"github.com/vk/workgridgo/internal/lazyref"
)

// ErrInvalidComponent indicates an item that cannot act as a component,
// such as a nil value or one without a name.
var ErrInvalidComponent = errors.New("invalid component")

// Component is a named node. The name is its identity inside a
// container; it is not required to be unique.
type Component struct {
	Name string

	payload any
	ref     *lazyref.Reference
}

// New creates a component with an eagerly supplied payload. The payload
// may be nil for purely structural nodes.
func New(name string, payload any) (*Component, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidComponent)
	}
	return &Component{Name: name, payload: payload}, nil
}

// NewDeferred creates a component whose payload is resolved through ref
// on first access.
func NewDeferred(name string, ref *lazyref.Reference) (*Component, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidComponent)
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: %s: nil reference", ErrInvalidComponent, name)
	}
	return &Component{Name: name, ref: ref}, nil
}

// Payload returns the component's payload, resolving a deferred
// reference if one is attached. Resolution errors propagate unchanged
// from the reference.
func (c *Component) Payload() (any, error) {
	if c.ref != nil {
		return c.ref.Resolve()
	}
	return c.payload, nil
}

// Resolved reports whether Payload can return without consulting a
// resolution backend.
func (c *Component) Resolved() bool {
	return c.ref == nil || c.ref.Resolved()
}

// Deferred reports whether the component carries a lazy reference.
func (c *Component) Deferred() bool {
	return c.ref != nil
}
