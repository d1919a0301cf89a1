package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/workgridgo/internal/config"
	"github.com/vk/workgridgo/internal/ctxlog"
	"github.com/vk/workgridgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL project loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers .hcl files under the given paths, parses them, and merges
// every worker block into a single config.Model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{}

	var files []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		for _, f := range found {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, w := range root.Workers {
			spec, err := l.translateWorker(w)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Workers = append(model.Workers, spec)
		}
	}

	logger.Debug("HCL loading complete.", "workers", len(model.Workers))
	return model, nil
}

// translateWorker converts the HCL-specific worker schema into the agnostic
// model, recursing into nested worker blocks.
func (l *Loader) translateWorker(w *workerBlock) (*config.WorkerSpec, error) {
	spec := &config.WorkerSpec{
		Role: w.Role,
		Name: w.Name,
	}

	for _, c := range w.Components {
		translated, err := l.translateComponent(c, w.Name)
		if err != nil {
			return nil, err
		}
		spec.Components = append(spec.Components, translated)
	}

	for _, nested := range w.Workers {
		translated, err := l.translateWorker(nested)
		if err != nil {
			return nil, err
		}
		spec.Workers = append(spec.Workers, translated)
	}

	for _, e := range w.Edges {
		spec.Edges = append(spec.Edges, &config.EdgeSpec{From: e.From, To: e.To})
	}

	if w.Traversal != nil {
		spec.Traversal = &config.TraversalSpec{
			Start:   w.Traversal.Start,
			Order:   w.Traversal.Order,
			Bound:   w.Traversal.Bound,
			Repeats: w.Traversal.Repeats,
		}
	}

	return spec, nil
}

// translateComponent evaluates the inline argument attributes of a
// component block into native Go values.
func (l *Loader) translateComponent(c *componentBlock, workerName string) (*config.ComponentSpec, error) {
	spec := &config.ComponentSpec{
		Name: c.Name,
		Ref:  c.Ref,
	}

	if c.Arguments == nil {
		return spec, nil
	}

	attrs, diags := c.Arguments.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid arguments for component '%s' in worker '%s': %w", c.Name, workerName, diags)
	}

	args := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("cannot evaluate argument '%s' of component '%s': %w", name, c.Name, diags)
		}
		goVal, err := fromCtyValue(val)
		if err != nil {
			return nil, fmt.Errorf("cannot convert argument '%s' of component '%s': %w", name, c.Name, err)
		}
		args[name] = goVal
	}
	if len(args) > 0 {
		spec.Arguments = args
	}

	return spec, nil
}
