// Package worker provides the composite workflow structure: a hybrid
// container paired with a topology role. Workers nest — a component's
// payload may itself be a Worker — and every structural walk (Find,
// Apply, Overview) recurses through nesting with each level ordered by
// its own role.
package worker

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vk/workgridgo/internal/component"
	"github.com/vk/workgridgo/internal/hybrid"
	"github.com/vk/workgridgo/internal/role"
)

// Worker models a pipeline, tree, graph, or cycle of components. It
// embeds its container, so positional and name-keyed access work
// directly on the Worker, while edge mutation and traversal order are
// delegated to the role.
type Worker struct {
	*hybrid.Hybrid

	name string
	role role.Role
	opts role.Options
}

// New creates a worker under the given role holding the components in
// order.
func New(name string, r role.Role, components ...*component.Component) (*Worker, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: worker name must not be empty", component.ErrInvalidComponent)
	}
	if r == nil {
		return nil, errors.New("worker requires a role")
	}
	h, err := hybrid.New(components...)
	if err != nil {
		return nil, err
	}
	return &Worker{Hybrid: h, name: name, role: r}, nil
}

// Name returns the worker's name.
func (w *Worker) Name() string {
	return w.name
}

// Role returns the active topology strategy.
func (w *Worker) Role() role.Role {
	return w.role
}

// SetTraversal sets the default traversal options used by Find, Apply,
// and Overview at this nesting level. Cycle-role workers must be given
// a positive bound here (or the walks fail with ErrMissingBound).
func (w *Worker) SetTraversal(opts role.Options) {
	w.opts = opts
}

// Validate checks the container against the role's structural
// requirements.
func (w *Worker) Validate() error {
	return w.role.Validate(w.Hybrid)
}

// AddEdge records a directed edge between two named components.
func (w *Worker) AddEdge(from, to string) error {
	return w.role.AddEdge(w.Hybrid, from, to)
}

// RemoveEdge deletes a previously recorded edge.
func (w *Worker) RemoveEdge(from, to string) error {
	return w.role.RemoveEdge(w.Hybrid, from, to)
}

// Component wraps the worker in a component so it can be nested inside
// another worker.
func (w *Worker) Component() (*component.Component, error) {
	return component.New(w.name, w)
}

// Find lazily yields every component matching pred, in traversal order,
// recursing into nested workers. A traversal that cannot be constructed
// (for example a nested cycle without a bound) surfaces as the final
// yielded error.
func (w *Worker) Find(pred func(*component.Component) bool) iter.Seq2[*component.Component, error] {
	return func(yield func(*component.Component, error) bool) {
		err := w.walk(func(path string, c *component.Component) (bool, error) {
			if pred(c) {
				if !yield(c, nil) {
					return false, errStopped
				}
			}
			return true, nil
		})
		if err != nil && !errors.Is(err, errStopped) {
			yield(nil, err)
		}
	}
}

// Apply calls fn on every component in the same order Find uses. It
// stops at the first error and reports how many components were visited
// before the failure; effects already applied are not rolled back.
func (w *Worker) Apply(fn func(*component.Component) error) (int, error) {
	visited := 0
	err := w.walk(func(path string, c *component.Component) (bool, error) {
		if err := fn(c); err != nil {
			return false, err
		}
		visited++
		return true, nil
	})
	if err != nil {
		return visited, fmt.Errorf("apply stopped after %d components: %w", visited, err)
	}
	return visited, nil
}

// errStopped signals that the consumer of a lazy walk stopped early. It
// never escapes this package.
var errStopped = errors.New("walk stopped by caller")
