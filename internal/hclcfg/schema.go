package hclcfg

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all possible top-level blocks from any project file.
type fileRoot struct {
	Workers []*workerBlock `hcl:"worker,block"`
	Remain  hcl.Body       `hcl:",remain"`
}

// workerBlock represents a `worker "role" "name"` block. Worker blocks
// nest, mirroring the composite structure they describe.
type workerBlock struct {
	Role       string            `hcl:"role,label"`
	Name       string            `hcl:"name,label"`
	Components []*componentBlock `hcl:"component,block"`
	Workers    []*workerBlock    `hcl:"worker,block"`
	Edges      []*edgeBlock      `hcl:"edge,block"`
	Traversal  *traversalBlock   `hcl:"traversal,block"`
}

// componentArgs holds the free-form attribute body of an `arguments` block.
type componentArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// componentBlock represents a `component "name"` block. A `ref` attribute
// of the form "source.target" defers the payload; an `arguments` block
// carries it inline.
type componentBlock struct {
	Name      string         `hcl:"name,label"`
	Ref       string         `hcl:"ref,optional"`
	Arguments *componentArgs `hcl:"arguments,block"`
}

// edgeBlock represents an `edge` block between two named components.
type edgeBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// traversalBlock represents a `traversal` block with per-worker options.
type traversalBlock struct {
	Start   string `hcl:"start,optional"`
	Order   string `hcl:"order,optional"`
	Bound   int    `hcl:"bound,optional"`
	Repeats int    `hcl:"repeats,optional"`
}
