package role

import (
	"fmt"
	"iter"
	"slices"

	"github.com/vk/workgridgo/internal/component"
	"github.com/vk/workgridgo/internal/hybrid"
)

// graphEdges holds name-keyed directed adjacency shared by the graph
// and cycle roles. Neighbor order is edge insertion order.
type graphEdges struct {
	adjacency map[string][]string
}

func newGraphEdges() graphEdges {
	return graphEdges{adjacency: make(map[string][]string)}
}

func (g *graphEdges) addEdge(h *hybrid.Hybrid, from, to string) error {
	if err := requireNodes(h, from, to); err != nil {
		return err
	}
	if slices.Contains(g.adjacency[from], to) {
		return fmt.Errorf("%w: edge %s -> %s already recorded", ErrInvalidStructure, from, to)
	}
	g.adjacency[from] = append(g.adjacency[from], to)
	return nil
}

func (g *graphEdges) removeEdge(from, to string) error {
	neighbors := g.adjacency[from]
	i := slices.Index(neighbors, to)
	if i < 0 {
		return fmt.Errorf("%w: %s -> %s", ErrUnknownEdge, from, to)
	}
	g.adjacency[from] = slices.Delete(neighbors, i, i+1)
	return nil
}

func (g *graphEdges) validate(h *hybrid.Hybrid, kind Kind) error {
	if h == nil {
		return fmt.Errorf("%w: nil container", ErrInvalidStructure)
	}
	if err := requireUniqueNames(h, kind); err != nil {
		return err
	}
	for from, neighbors := range g.adjacency {
		if err := requireNodes(h, from); err != nil {
			return fmt.Errorf("%w: stale edge source", err)
		}
		if err := requireNodes(h, neighbors...); err != nil {
			return fmt.Errorf("%w: stale edge destination", err)
		}
	}
	return nil
}

// start resolves the traversal entry node: an explicit name must exist,
// an empty name defaults to the first container element. The boolean is
// false when the container is empty.
func (g *graphEdges) start(h *hybrid.Hybrid, name string) (string, bool, error) {
	if name != "" {
		if !h.Contains(name) {
			return "", false, fmt.Errorf("%w: start %q", ErrUnknownNode, name)
		}
		return name, true, nil
	}
	if h.Size() == 0 {
		return "", false, nil
	}
	first, err := h.At(0)
	if err != nil {
		return "", false, err
	}
	return first.Name, true, nil
}

// Graph is the arbitrary-adjacency strategy. Edges may form any
// directed shape; traversal visits each reachable node once, in
// depth-first or breadth-first order from a start node, so it stays
// finite even when edges happen to close a cycle.
type Graph struct {
	graphEdges
}

// NewGraph returns an edgeless graph role.
func NewGraph() *Graph {
	return &Graph{graphEdges: newGraphEdges()}
}

// Kind implements Role.
func (g *Graph) Kind() Kind {
	return KindGraph
}

// Validate implements Role.
func (g *Graph) Validate(h *hybrid.Hybrid) error {
	return g.validate(h, KindGraph)
}

// AddEdge implements Role.
func (g *Graph) AddEdge(h *hybrid.Hybrid, from, to string) error {
	return g.addEdge(h, from, to)
}

// RemoveEdge implements Role.
func (g *Graph) RemoveEdge(h *hybrid.Hybrid, from, to string) error {
	return g.removeEdge(from, to)
}

// Traversal implements Role. Options.Order selects depth-first
// (default) or breadth-first visiting; every reachable node is visited
// exactly once. Options.Bound, when positive, additionally caps the
// visit count.
func (g *Graph) Traversal(h *hybrid.Hybrid, opts Options) (iter.Seq[*component.Component], error) {
	if err := g.Validate(h); err != nil {
		return nil, err
	}
	start, ok, err := g.start(h, opts.Start)
	if err != nil {
		return nil, err
	}
	if !ok {
		return emptySeq, nil
	}
	if opts.Order == BreadthFirst {
		return g.breadthFirst(h, start, opts.Bound), nil
	}
	return g.depthFirst(h, start, opts.Bound), nil
}

func (g *Graph) depthFirst(h *hybrid.Hybrid, start string, bound int) iter.Seq[*component.Component] {
	return func(yield func(*component.Component) bool) {
		visited := make(map[string]bool, h.Size())
		stack := []string{start}
		emitted := 0
		for len(stack) > 0 {
			name := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[name] {
				continue
			}
			visited[name] = true
			c, ok := h.First(name)
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
			emitted++
			if bound > 0 && emitted >= bound {
				return
			}
			neighbors := g.adjacency[name]
			for i := len(neighbors) - 1; i >= 0; i-- {
				if !visited[neighbors[i]] {
					stack = append(stack, neighbors[i])
				}
			}
		}
	}
}

func (g *Graph) breadthFirst(h *hybrid.Hybrid, start string, bound int) iter.Seq[*component.Component] {
	return func(yield func(*component.Component) bool) {
		visited := map[string]bool{start: true}
		queue := []string{start}
		emitted := 0
		for len(queue) > 0 {
			name := queue[0]
			queue = queue[1:]
			c, ok := h.First(name)
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
			emitted++
			if bound > 0 && emitted >= bound {
				return
			}
			for _, neighbor := range g.adjacency[name] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
				}
			}
		}
	}
}

func emptySeq(yield func(*component.Component) bool) {}
