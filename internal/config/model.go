package config

// Model is the unified, format-agnostic representation of a project file:
// a forest of worker definitions.
type Model struct {
	Workers []*WorkerSpec
}

// WorkerSpec is the format-agnostic representation of a `worker` block.
// Workers nest arbitrarily deep.
type WorkerSpec struct {
	Role       string
	Name       string
	Components []*ComponentSpec
	Workers    []*WorkerSpec
	Edges      []*EdgeSpec
	Traversal  *TraversalSpec
}

// ComponentSpec is the format-agnostic representation of a `component`
// block. A non-empty Ref marks the payload as deferred: it is written as
// "source.target" and resolved lazily at payload-access time. Arguments
// hold the inline payload for eager components.
type ComponentSpec struct {
	Name      string
	Ref       string
	Arguments map[string]any
}

// EdgeSpec records one directed edge between two named components of the
// owning worker.
type EdgeSpec struct {
	From string
	To   string
}

// TraversalSpec carries the per-worker traversal options. Zero values mean
// "role default".
type TraversalSpec struct {
	Start   string
	Order   string
	Bound   int
	Repeats int
}
