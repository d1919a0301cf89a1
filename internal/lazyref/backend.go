package lazyref

import "fmt"

// MapBackend is an in-memory Backend keyed by source and target. It is
// the registry-style analogue of an import table: builders register
// concrete values under "source.target" addresses and References look
// them up on first payload access.
type MapBackend struct {
	sources map[string]map[string]any
}

// NewMapBackend returns an empty MapBackend.
func NewMapBackend() *MapBackend {
	return &MapBackend{sources: make(map[string]map[string]any)}
}

// Register stores value under the given source and target, overwriting
// any previous registration for the same pair.
func (b *MapBackend) Register(source, target string, value any) {
	targets, ok := b.sources[source]
	if !ok {
		targets = make(map[string]any)
		b.sources[source] = targets
	}
	targets[target] = value
}

// Resolve implements Backend.
func (b *MapBackend) Resolve(source, target string) (any, error) {
	targets, ok := b.sources[source]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", source)
	}
	value, ok := targets[target]
	if !ok {
		return nil, fmt.Errorf("%q has no target %q", source, target)
	}
	return value, nil
}
