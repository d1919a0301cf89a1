// Package catalog provides a wildcard-aware ordered registry used to
// select runtime options, most notably topology roles, by name. A
// Catalog behaves like a plain unique-key mapping for literal lookups
// and like a list-producing registry for wildcard or multi-key lookups;
// the two shapes are exposed as distinct operations (Get and Select)
// rather than one overloaded accessor.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrKeyNotFound indicates a literal single-key lookup miss.
	ErrKeyNotFound = errors.New("key not found")

	// ErrReservedKey indicates use of a wildcard name where a literal
	// key is required. Wildcard lookups are list-shaped and go through
	// Select.
	ErrReservedKey = errors.New("reserved wildcard key")
)

// Reserved wildcard keys recognized by Select.
const (
	WildcardAll     = "all"
	WildcardDefault = "default"
	WildcardNone    = "none"
)

func reserved(key string) bool {
	switch key {
	case WildcardAll, WildcardDefault, WildcardNone:
		return true
	}
	return false
}

// Catalog is an insertion-ordered key → value registry with an optional
// designated default subset. Not safe for concurrent mutation without
// external locking.
type Catalog[V any] struct {
	keys     []string
	values   map[string]V
	defaults []string
}

// New returns an empty catalog.
func New[V any]() *Catalog[V] {
	return &Catalog[V]{values: make(map[string]V)}
}

// Set stores value under key, preserving first-insertion order for
// existing keys. Wildcard names cannot be used as storage keys.
func (c *Catalog[V]) Set(key string, value V) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrKeyNotFound)
	}
	if reserved(key) {
		return fmt.Errorf("%w: %q", ErrReservedKey, key)
	}
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
	return nil
}

// Delete removes key and reports whether it was present.
func (c *Catalog[V]) Delete(key string) bool {
	if _, exists := c.values[key]; !exists {
		return false
	}
	delete(c.values, key)
	i := slices.Index(c.keys, key)
	c.keys = slices.Delete(c.keys, i, i+1)
	c.defaults = slices.DeleteFunc(c.defaults, func(d string) bool { return d == key })
	return true
}

// Get is the literal single-key lookup: exactly one value, or
// ErrKeyNotFound. Wildcard names are rejected with ErrReservedKey since
// their results are list-shaped.
func (c *Catalog[V]) Get(key string) (V, error) {
	var zero V
	if reserved(key) {
		return zero, fmt.Errorf("%w: %q takes list shape, use Select", ErrReservedKey, key)
	}
	value, ok := c.values[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return value, nil
}

// Select is the list-shaped lookup. Each key may be a literal name or
// one of the wildcards: "all" expands to every stored value in
// insertion order, "default" to the designated default subset (or
// everything when no subset is set), and "none" to nothing. Unknown
// literal keys are skipped so one stale name cannot abort strategy
// selection.
func (c *Catalog[V]) Select(keys ...string) []V {
	var out []V
	for _, key := range keys {
		switch key {
		case WildcardAll:
			for _, k := range c.keys {
				out = append(out, c.values[k])
			}
		case WildcardDefault:
			defaults := c.defaults
			if len(defaults) == 0 {
				defaults = c.keys
			}
			for _, k := range defaults {
				if v, ok := c.values[k]; ok {
					out = append(out, v)
				}
			}
		case WildcardNone:
			// contributes nothing
		default:
			if v, ok := c.values[key]; ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// SetDefaults designates the subset returned by Select("default").
// Names that never get stored simply contribute nothing at lookup time.
func (c *Catalog[V]) SetDefaults(keys ...string) {
	c.defaults = slices.Clone(keys)
}

// Defaults returns the designated default subset.
func (c *Catalog[V]) Defaults() []string {
	return slices.Clone(c.defaults)
}

// Keys returns the stored keys in insertion order.
func (c *Catalog[V]) Keys() []string {
	return slices.Clone(c.keys)
}

// Len returns the number of stored keys.
func (c *Catalog[V]) Len() int {
	return len(c.keys)
}

// Contains reports whether a literal key is stored.
func (c *Catalog[V]) Contains(key string) bool {
	_, ok := c.values[key]
	return ok
}
