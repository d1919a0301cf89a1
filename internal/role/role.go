// Package role implements the topology strategies that govern workgrid
// structures. A Role decides how a container's components relate to one
// another (linear order, parent/child tree, arbitrary directed graph,
// or a graph with tolerated cycles) and produces the traversal order
// for that topology. Roles are a closed set selected through a fixed
// factory table; edges are recorded by component name inside the role,
// never as pointers into the container.
package role

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vk/workgridgo/internal/component"
	"github.com/vk/workgridgo/internal/hybrid"
)

var (
	// ErrUnsupportedOperation indicates an edge mutation on a role whose
	// structure is purely positional.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrCycle indicates an edge that would create a cycle where
	// acyclicity is required.
	ErrCycle = errors.New("edge would create a cycle")

	// ErrUnknownNode indicates an edge operation or traversal start
	// referencing a name absent from the container.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownEdge indicates removal of an edge that was never added.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrMissingBound indicates a cycle traversal requested without a
	// termination bound.
	ErrMissingBound = errors.New("missing traversal bound")

	// ErrInvalidStructure indicates a container that violates the
	// role's structural requirements.
	ErrInvalidStructure = errors.New("invalid structure")
)

// Kind names a topology strategy.
type Kind string

const (
	KindPipeline Kind = "pipeline"
	KindTree     Kind = "tree"
	KindGraph    Kind = "graph"
	KindCycle    Kind = "cycle"
)

// Order selects the visiting discipline for graph traversal.
type Order int

const (
	// DepthFirst visits along outgoing edges before siblings.
	DepthFirst Order = iota
	// BreadthFirst visits all neighbors before their successors.
	BreadthFirst
)

// Options parameterizes a traversal. Start names the entry node for
// graph and cycle roles; when empty, the first container element is
// used. Bound caps the number of nodes visited and is mandatory for
// cycle roles. Repeats is the number of times a cycle traversal may
// return to the start node before stopping; zero means once.
type Options struct {
	Start   string
	Order   Order
	Bound   int
	Repeats int
}

// Role is a topology strategy. Implementations hold edge state keyed by
// component name but never hold the container itself; the container is
// passed to each operation.
type Role interface {
	// Kind identifies the strategy.
	Kind() Kind

	// Validate checks that the container satisfies the role's
	// structural requirements.
	Validate(h *hybrid.Hybrid) error

	// AddEdge records a directed edge between two named nodes.
	AddEdge(h *hybrid.Hybrid, from, to string) error

	// RemoveEdge deletes a previously recorded edge.
	RemoveEdge(h *hybrid.Hybrid, from, to string) error

	// Traversal returns a lazy sequence of components in the role's
	// visiting order. The sequence is finite for every role except
	// cycle, which requires Options.Bound.
	Traversal(h *hybrid.Hybrid, opts Options) (iter.Seq[*component.Component], error)
}

// factories is the closed registration table for role construction.
var factories = map[Kind]func() Role{
	KindPipeline: func() Role { return NewPipeline() },
	KindTree:     func() Role { return NewTree() },
	KindGraph:    func() Role { return NewGraph() },
	KindCycle:    func() Role { return NewCycle() },
}

// New constructs a role of the given kind from the fixed factory table.
func New(kind Kind) (Role, error) {
	factory, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown role kind %q", kind)
	}
	return factory(), nil
}

// Kinds returns every registered role kind.
func Kinds() []Kind {
	return []Kind{KindPipeline, KindTree, KindGraph, KindCycle}
}

// requireUniqueNames rejects duplicate component names. Edge-bearing
// roles address nodes by name, so duplicates would make edges
// ambiguous.
func requireUniqueNames(h *hybrid.Hybrid, kind Kind) error {
	seen := make(map[string]bool, h.Size())
	for _, c := range h.All() {
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate name %q under %s role", ErrInvalidStructure, c.Name, kind)
		}
		seen[c.Name] = true
	}
	return nil
}

// requireNodes checks that every named node exists in the container.
func requireNodes(h *hybrid.Hybrid, names ...string) error {
	for _, name := range names {
		if !h.Contains(name) {
			return fmt.Errorf("%w: %q", ErrUnknownNode, name)
		}
	}
	return nil
}
