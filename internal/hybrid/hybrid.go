// Package hybrid provides the ordered, duplicate-name-tolerant
// container underlying every workgrid structure. A Hybrid stores
// components in insertion order and keeps a derived name index so the
// same collection answers both positional (list-like) and name-keyed
// (dict-like) lookups. Duplicate names are always permitted.
package hybrid

import (
	"errors"
	"fmt"
	"iter"

	"github.com/vk/workgridgo/internal/component"
)

// ErrIndexOutOfRange indicates positional access outside [0, Size).
var ErrIndexOutOfRange = errors.New("index out of range")

// Hybrid is an ordered sequence of components plus a name → positions
// index. The sequence and the index always mutate together; callers
// never observe one without the other. Not safe for concurrent
// mutation without external locking.
type Hybrid struct {
	items []*component.Component
	index map[string][]int
}

// New creates a Hybrid holding the given components in order.
func New(items ...*component.Component) (*Hybrid, error) {
	h := &Hybrid{index: make(map[string][]int)}
	for _, c := range items {
		if err := h.Append(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Append adds c to the end of the sequence.
func (h *Hybrid) Append(c *component.Component) error {
	if err := validate(c); err != nil {
		return err
	}
	h.items = append(h.items, c)
	h.index[c.Name] = append(h.index[c.Name], len(h.items)-1)
	return nil
}

// Insert places c at the given position, shifting later components
// right. Position Size() appends.
func (h *Hybrid) Insert(pos int, c *component.Component) error {
	if err := validate(c); err != nil {
		return err
	}
	if pos < 0 || pos > len(h.items) {
		return fmt.Errorf("%w: insert at %d with size %d", ErrIndexOutOfRange, pos, len(h.items))
	}
	h.items = append(h.items[:pos], append([]*component.Component{c}, h.items[pos:]...)...)
	h.reindex()
	return nil
}

// Remove deletes every component with the given name and returns how
// many were removed. Removing an absent name is not an error.
func (h *Hybrid) Remove(name string) int {
	return h.RemoveFunc(func(c *component.Component) bool {
		return c.Name == name
	})
}

// RemoveFunc deletes every component matching pred and returns how many
// were removed.
func (h *Hybrid) RemoveFunc(pred func(*component.Component) bool) int {
	kept := h.items[:0]
	removed := 0
	for _, c := range h.items {
		if pred(c) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	h.items = kept
	if removed > 0 {
		h.reindex()
	}
	return removed
}

// Get returns all components sharing the given name, in insertion
// order. An absent name yields an empty slice, never an error.
func (h *Hybrid) Get(name string) []*component.Component {
	positions := h.index[name]
	matches := make([]*component.Component, 0, len(positions))
	for _, pos := range positions {
		matches = append(matches, h.items[pos])
	}
	return matches
}

// At returns the component at the given position.
func (h *Hybrid) At(pos int) (*component.Component, error) {
	if pos < 0 || pos >= len(h.items) {
		return nil, fmt.Errorf("%w: %d with size %d", ErrIndexOutOfRange, pos, len(h.items))
	}
	return h.items[pos], nil
}

// First returns the first component with the given name.
func (h *Hybrid) First(name string) (*component.Component, bool) {
	positions := h.index[name]
	if len(positions) == 0 {
		return nil, false
	}
	return h.items[positions[0]], true
}

// Contains reports whether any component carries the given name.
func (h *Hybrid) Contains(name string) bool {
	return len(h.index[name]) > 0
}

// Size returns the number of stored components.
func (h *Hybrid) Size() int {
	return len(h.items)
}

// Names returns the component names in insertion order, duplicates
// included.
func (h *Hybrid) Names() []string {
	names := make([]string, len(h.items))
	for i, c := range h.items {
		names[i] = c.Name
	}
	return names
}

// All iterates the components positionally, in insertion order.
func (h *Hybrid) All() iter.Seq2[int, *component.Component] {
	return func(yield func(int, *component.Component) bool) {
		for i, c := range h.items {
			if !yield(i, c) {
				return
			}
		}
	}
}

func (h *Hybrid) reindex() {
	h.index = make(map[string][]int, len(h.items))
	for i, c := range h.items {
		h.index[c.Name] = append(h.index[c.Name], i)
	}
}

func validate(c *component.Component) error {
	if c == nil {
		return fmt.Errorf("%w: nil component", component.ErrInvalidComponent)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name must not be empty", component.ErrInvalidComponent)
	}
	return nil
}
