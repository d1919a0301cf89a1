package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/workgridgo/internal/catalog"
	"github.com/vk/workgridgo/internal/component"
	"github.com/vk/workgridgo/internal/config"
	"github.com/vk/workgridgo/internal/ctxlog"
	"github.com/vk/workgridgo/internal/lazyref"
	"github.com/vk/workgridgo/internal/role"
	"github.com/vk/workgridgo/internal/settings"
	"github.com/vk/workgridgo/internal/worker"
)

// defaultRootName names the synthetic root worker unless the project
// settings override it.
const defaultRootName = "project"

// Builder turns a config.Model into a root worker. Settings contribute
// role overrides per worker name, the lazy-reference table, and traversal
// defaults.
type Builder struct {
	roles   *catalog.Catalog[func() role.Role]
	backend lazyref.Backend
	cfg     *settings.Settings
}

// New constructs a Builder around the given settings. The reference table
// under the "references" section seeds the lazy payload backend; the
// "catalog.defaults" list, when present, narrows the role catalog's
// default selection.
func New(cfg *settings.Settings) (*Builder, error) {
	roles := catalog.New[func() role.Role]()
	for _, kind := range role.Kinds() {
		k := kind
		if err := roles.Set(string(k), func() role.Role {
			r, _ := role.New(k)
			return r
		}); err != nil {
			return nil, fmt.Errorf("failed to register role %q: %w", k, err)
		}
	}

	backend := lazyref.NewMapBackend()
	if cfg != nil {
		if defaults := cfg.Strings("catalog.defaults"); len(defaults) > 0 {
			roles.SetDefaults(defaults...)
		}
		for source, targets := range cfg.Section("references") {
			entries, ok := targets.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("reference source %q is not a table", source)
			}
			for target, value := range entries {
				backend.Register(source, target, value)
			}
		}
	}

	return &Builder{roles: roles, backend: backend, cfg: cfg}, nil
}

// Backend exposes the lazy-reference backend so callers can register
// payloads programmatically before or after building.
func (b *Builder) Backend() lazyref.Backend {
	return b.backend
}

// Build assembles the whole model into a single pipeline-role root worker
// whose elements are the model's top-level workers.
func (b *Builder) Build(ctx context.Context, model *config.Model) (*worker.Worker, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building worker structure.", "top_level_workers", len(model.Workers))

	rootName := defaultRootName
	if b.cfg != nil && b.cfg.Has("project.name") {
		rootName = b.cfg.String("project.name")
	}

	root, err := worker.New(rootName, role.NewPipeline())
	if err != nil {
		return nil, fmt.Errorf("failed to create root worker: %w", err)
	}

	for _, spec := range model.Workers {
		w, err := b.buildWorker(ctx, spec)
		if err != nil {
			return nil, err
		}
		c, err := w.Component()
		if err != nil {
			return nil, fmt.Errorf("failed to wrap worker %q: %w", spec.Name, err)
		}
		if err := root.Append(c); err != nil {
			return nil, fmt.Errorf("failed to append worker %q: %w", spec.Name, err)
		}
	}

	logger.Debug("Worker structure built.", "root", rootName)
	return root, nil
}

// buildWorker assembles one worker spec, recursing into nested workers.
func (b *Builder) buildWorker(ctx context.Context, spec *config.WorkerSpec) (*worker.Worker, error) {
	r, err := b.roleFor(spec)
	if err != nil {
		return nil, err
	}

	var components []*component.Component
	for _, cs := range spec.Components {
		c, err := b.buildComponent(cs)
		if err != nil {
			return nil, fmt.Errorf("in worker %q: %w", spec.Name, err)
		}
		components = append(components, c)
	}

	for _, nested := range spec.Workers {
		nw, err := b.buildWorker(ctx, nested)
		if err != nil {
			return nil, err
		}
		c, err := nw.Component()
		if err != nil {
			return nil, fmt.Errorf("failed to wrap worker %q: %w", nested.Name, err)
		}
		components = append(components, c)
	}

	w, err := worker.New(spec.Name, r, components...)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker %q: %w", spec.Name, err)
	}

	for _, e := range spec.Edges {
		if err := w.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("invalid edge %s->%s in worker %q: %w", e.From, e.To, spec.Name, err)
		}
	}

	opts, err := b.traversalOptions(spec)
	if err != nil {
		return nil, err
	}
	w.SetTraversal(opts)

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("worker %q failed validation: %w", spec.Name, err)
	}
	return w, nil
}

// roleFor resolves a worker's role kind, letting settings override the
// project file per worker name, and instantiates it through the catalog.
func (b *Builder) roleFor(spec *config.WorkerSpec) (role.Role, error) {
	kind := spec.Role
	if b.cfg != nil {
		if override := b.cfg.String("roles." + spec.Name); override != "" {
			kind = override
		}
	}

	factory, err := b.roles.Get(kind)
	if err != nil {
		return nil, fmt.Errorf("worker %q: unknown role %q: %w", spec.Name, kind, err)
	}
	return factory(), nil
}

// buildComponent creates a plain or deferred component from its spec.
func (b *Builder) buildComponent(cs *config.ComponentSpec) (*component.Component, error) {
	if cs.Ref == "" {
		var payload any
		if cs.Arguments != nil {
			payload = cs.Arguments
		}
		return component.New(cs.Name, payload)
	}

	source, target, ok := strings.Cut(cs.Ref, ".")
	if !ok || source == "" || target == "" {
		return nil, fmt.Errorf("component %q has malformed ref %q, want \"source.target\"", cs.Name, cs.Ref)
	}
	return component.NewDeferred(cs.Name, lazyref.New(source, target, b.backend))
}

// traversalOptions merges the spec's traversal block with settings-level
// defaults.
func (b *Builder) traversalOptions(spec *config.WorkerSpec) (role.Options, error) {
	var opts role.Options
	if b.cfg != nil {
		opts.Bound = b.cfg.Int("traversal.bound")
		opts.Repeats = b.cfg.Int("traversal.repeats")
	}

	t := spec.Traversal
	if t == nil {
		return opts, nil
	}

	opts.Start = t.Start
	if t.Bound > 0 {
		opts.Bound = t.Bound
	}
	if t.Repeats > 0 {
		opts.Repeats = t.Repeats
	}

	switch strings.ToLower(t.Order) {
	case "", "depth", "depth_first":
		opts.Order = role.DepthFirst
	case "breadth", "breadth_first":
		opts.Order = role.BreadthFirst
	default:
		return opts, fmt.Errorf("worker %q: unknown traversal order %q", spec.Name, t.Order)
	}
	return opts, nil
}
