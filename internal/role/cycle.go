package role

import (
	"fmt"
	"iter"

	"github.com/vk/workgridgo/internal/component"
	"github.com/vk/workgridgo/internal/hybrid"
)

// Cycle is the strategy for graphs where at least one directed cycle is
// expected. Traversal follows outgoing edges and revisits nodes, so it
// only terminates through an explicit bound: Options.Bound caps the
// total nodes visited, and the walk also stops when it comes back to
// the start node Options.Repeats times (once by default). The repeated
// start is not emitted again on the stopping return.
type Cycle struct {
	graphEdges
}

// NewCycle returns an edgeless cycle role.
func NewCycle() *Cycle {
	return &Cycle{graphEdges: newGraphEdges()}
}

// Kind implements Role.
func (c *Cycle) Kind() Kind {
	return KindCycle
}

// Validate implements Role. Cycles in the edge set are expected, so
// only node identity and edge endpoints are checked.
func (c *Cycle) Validate(h *hybrid.Hybrid) error {
	return c.validate(h, KindCycle)
}

// AddEdge implements Role.
func (c *Cycle) AddEdge(h *hybrid.Hybrid, from, to string) error {
	return c.addEdge(h, from, to)
}

// RemoveEdge implements Role.
func (c *Cycle) RemoveEdge(h *hybrid.Hybrid, from, to string) error {
	return c.removeEdge(from, to)
}

// Traversal implements Role. Options.Bound is mandatory; without it the
// walk could never terminate.
func (c *Cycle) Traversal(h *hybrid.Hybrid, opts Options) (iter.Seq[*component.Component], error) {
	if err := c.Validate(h); err != nil {
		return nil, err
	}
	if opts.Bound <= 0 {
		return nil, fmt.Errorf("%w: cycle traversal requires a positive bound", ErrMissingBound)
	}
	start, ok, err := c.start(h, opts.Start)
	if err != nil {
		return nil, err
	}
	if !ok {
		return emptySeq, nil
	}
	repeats := opts.Repeats
	if repeats <= 0 {
		repeats = 1
	}
	return c.walk(h, start, opts.Bound, repeats), nil
}

// walk is a depth-first walk that allows revisiting. Stopping is
// anchored to the start node: returning to it counts against repeats,
// while revisits of other nodes only count against the bound.
func (c *Cycle) walk(h *hybrid.Hybrid, start string, bound, repeats int) iter.Seq[*component.Component] {
	return func(yield func(*component.Component) bool) {
		stack := []string{start}
		emitted := 0
		startSeen := 0
		for len(stack) > 0 {
			name := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if name == start {
				startSeen++
				if startSeen > repeats {
					return
				}
			}
			node, ok := h.First(name)
			if !ok {
				continue
			}
			if !yield(node) {
				return
			}
			emitted++
			if emitted >= bound {
				return
			}
			neighbors := c.adjacency[name]
			for i := len(neighbors) - 1; i >= 0; i-- {
				stack = append(stack, neighbors[i])
			}
		}
	}
}
