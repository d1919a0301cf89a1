package role

import (
	"fmt"
	"iter"

	"github.com/vk/workgridgo/internal/component"
	"github.com/vk/workgridgo/internal/hybrid"
)

// Pipeline is the linear strategy: structure and traversal order are
// the container order, with no edges at all.
type Pipeline struct{}

// NewPipeline returns the linear role.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Kind implements Role.
func (p *Pipeline) Kind() Kind {
	return KindPipeline
}

// Validate implements Role. Any container is a valid pipeline,
// duplicate names included.
func (p *Pipeline) Validate(h *hybrid.Hybrid) error {
	if h == nil {
		return fmt.Errorf("%w: nil container", ErrInvalidStructure)
	}
	return nil
}

// AddEdge implements Role. Pipelines have purely positional structure.
func (p *Pipeline) AddEdge(h *hybrid.Hybrid, from, to string) error {
	return fmt.Errorf("%w: pipeline order is positional, cannot add edge %s -> %s", ErrUnsupportedOperation, from, to)
}

// RemoveEdge implements Role.
func (p *Pipeline) RemoveEdge(h *hybrid.Hybrid, from, to string) error {
	return fmt.Errorf("%w: pipeline order is positional, cannot remove edge %s -> %s", ErrUnsupportedOperation, from, to)
}

// Traversal implements Role. Options are ignored; the order is the
// container order.
func (p *Pipeline) Traversal(h *hybrid.Hybrid, opts Options) (iter.Seq[*component.Component], error) {
	return func(yield func(*component.Component) bool) {
		for _, c := range h.All() {
			if !yield(c) {
				return
			}
		}
	}, nil
}
