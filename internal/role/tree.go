package role

import (
	"fmt"
	"iter"
	"slices"

	"github.com/vk/workgridgo/internal/component"
	"github.com/vk/workgridgo/internal/hybrid"
)

// Tree is the hierarchical strategy: recorded parent → children edges
// form a forest over the container, and traversal is depth-first
// preorder with roots in container order and children in the order
// their edges were added.
type Tree struct {
	children map[string][]string
	parent   map[string]string
}

// NewTree returns an edgeless tree role.
func NewTree() *Tree {
	return &Tree{
		children: make(map[string][]string),
		parent:   make(map[string]string),
	}
}

// Kind implements Role.
func (t *Tree) Kind() Kind {
	return KindTree
}

// Validate implements Role. Names must be unique (edges address nodes
// by name) and every edge endpoint must still exist in the container.
func (t *Tree) Validate(h *hybrid.Hybrid) error {
	if h == nil {
		return fmt.Errorf("%w: nil container", ErrInvalidStructure)
	}
	if err := requireUniqueNames(h, KindTree); err != nil {
		return err
	}
	for parent, kids := range t.children {
		if err := requireNodes(h, parent); err != nil {
			return fmt.Errorf("%w: stale edge parent", err)
		}
		if err := requireNodes(h, kids...); err != nil {
			return fmt.Errorf("%w: stale edge child", err)
		}
	}
	return nil
}

// AddEdge implements Role. It records child under parent, rejecting
// unknown nodes, self-edges and ancestor edges (ErrCycle), and
// re-parenting a child that is already attached (ErrInvalidStructure).
func (t *Tree) AddEdge(h *hybrid.Hybrid, parent, child string) error {
	if err := requireNodes(h, parent, child); err != nil {
		return err
	}
	if parent == child {
		return fmt.Errorf("%w: self edge %s -> %s", ErrCycle, parent, child)
	}
	if t.isAncestor(child, parent) {
		return fmt.Errorf("%w: %s is an ancestor of %s", ErrCycle, child, parent)
	}
	if existing, ok := t.parent[child]; ok {
		return fmt.Errorf("%w: %s already has parent %s", ErrInvalidStructure, child, existing)
	}
	t.children[parent] = append(t.children[parent], child)
	t.parent[child] = parent
	return nil
}

// RemoveEdge implements Role.
func (t *Tree) RemoveEdge(h *hybrid.Hybrid, parent, child string) error {
	kids := t.children[parent]
	i := slices.Index(kids, child)
	if i < 0 {
		return fmt.Errorf("%w: %s -> %s", ErrUnknownEdge, parent, child)
	}
	t.children[parent] = slices.Delete(kids, i, i+1)
	delete(t.parent, child)
	return nil
}

// Traversal implements Role: depth-first preorder over the forest.
// Options are ignored; a tree's order is fully determined by its edges.
func (t *Tree) Traversal(h *hybrid.Hybrid, opts Options) (iter.Seq[*component.Component], error) {
	if err := t.Validate(h); err != nil {
		return nil, err
	}
	var roots []string
	for _, c := range h.All() {
		if _, ok := t.parent[c.Name]; !ok {
			roots = append(roots, c.Name)
		}
	}
	return func(yield func(*component.Component) bool) {
		stack := make([]string, 0, h.Size())
		for i := len(roots) - 1; i >= 0; i-- {
			stack = append(stack, roots[i])
		}
		for len(stack) > 0 {
			name := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			c, ok := h.First(name)
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
			kids := t.children[name]
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, kids[i])
			}
		}
	}, nil
}

// isAncestor reports whether node is an ancestor of other.
func (t *Tree) isAncestor(node, other string) bool {
	for current, ok := t.parent[other]; ok; current, ok = t.parent[current] {
		if current == node {
			return true
		}
	}
	return false
}
