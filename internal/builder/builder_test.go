package builder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/workgridgo/internal/catalog"
	"github.com/vk/workgridgo/internal/component"
	"github.com/vk/workgridgo/internal/config"
	"github.com/vk/workgridgo/internal/role"
	"github.com/vk/workgridgo/internal/settings"
)

func loadSettings(t *testing.T, yaml string) *settings.Settings {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(yaml), 0o644))
	s, err := settings.Load(context.Background(), dir)
	require.NoError(t, err)
	return s
}

func overviewNames(t *testing.T, b *Builder, model *config.Model) []string {
	t.Helper()
	root, err := b.Build(context.Background(), model)
	require.NoError(t, err)
	overview, err := root.Overview()
	require.NoError(t, err)
	return overview.Names()
}

func TestBuildPipeline(t *testing.T) {
	b, err := New(nil)
	require.NoError(t, err)

	model := &config.Model{Workers: []*config.WorkerSpec{{
		Role: "pipeline",
		Name: "flow",
		Components: []*config.ComponentSpec{
			{Name: "a", Arguments: map[string]any{"pages": 3}},
			{Name: "b"},
		},
	}}}

	root, err := b.Build(context.Background(), model)
	require.NoError(t, err)
	assert.Equal(t, "project", root.Name())

	overview, err := root.Overview()
	require.NoError(t, err)
	assert.Equal(t, []string{"flow", "a", "b"}, overview.Names())

	// Inline arguments become the component payload.
	var payload any
	_, err = root.Apply(func(c *component.Component) error {
		if c.Name == "a" {
			p, err := c.Payload()
			require.NoError(t, err)
			payload = p
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"pages": 3}, payload)
}

func TestBuildNestedWorkers(t *testing.T) {
	b, err := New(nil)
	require.NoError(t, err)

	model := &config.Model{Workers: []*config.WorkerSpec{{
		Role:       "pipeline",
		Name:       "outer",
		Components: []*config.ComponentSpec{{Name: "before"}},
		Workers: []*config.WorkerSpec{{
			Role:       "pipeline",
			Name:       "inner",
			Components: []*config.ComponentSpec{{Name: "deep"}},
		}},
	}}}

	assert.Equal(t, []string{"outer", "before", "inner", "deep"}, overviewNames(t, b, model))
}

func TestBuildTreeWithEdges(t *testing.T) {
	b, err := New(nil)
	require.NoError(t, err)

	model := &config.Model{Workers: []*config.WorkerSpec{{
		Role: "tree",
		Name: "review",
		Components: []*config.ComponentSpec{
			{Name: "root"}, {Name: "left"}, {Name: "right"},
		},
		Edges: []*config.EdgeSpec{
			{From: "root", To: "left"},
			{From: "root", To: "right"},
		},
	}}}

	assert.Equal(t, []string{"review", "root", "left", "right"}, overviewNames(t, b, model))
}

func TestBuildDeferredComponents(t *testing.T) {
	cfg := loadSettings(t, `
references:
  tools:
    scaler: 7
`)
	b, err := New(cfg)
	require.NoError(t, err)

	model := &config.Model{Workers: []*config.WorkerSpec{{
		Role:       "pipeline",
		Name:       "flow",
		Components: []*config.ComponentSpec{{Name: "lazy", Ref: "tools.scaler"}},
	}}}

	root, err := b.Build(context.Background(), model)
	require.NoError(t, err)

	var lazy *component.Component
	_, err = root.Apply(func(c *component.Component) error {
		if c.Name == "lazy" {
			lazy = c
		}
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, lazy)

	// Building does not resolve; the first payload access does.
	assert.False(t, lazy.Resolved())
	payload, err := lazy.Payload()
	require.NoError(t, err)
	assert.Equal(t, 7, payload)
	assert.True(t, lazy.Resolved())
}

func TestBuildRoleOverrideFromSettings(t *testing.T) {
	cfg := loadSettings(t, "roles:\n  flow: tree\n")
	b, err := New(cfg)
	require.NoError(t, err)

	model := &config.Model{Workers: []*config.WorkerSpec{{
		Role: "pipeline",
		Name: "flow",
		// Duplicate names pass pipeline validation but not tree's.
		Components: []*config.ComponentSpec{{Name: "dup"}, {Name: "dup"}},
	}}}

	_, err = b.Build(context.Background(), model)
	assert.ErrorIs(t, err, role.ErrInvalidStructure)
}

func TestBuildTraversalDefaults(t *testing.T) {
	cfg := loadSettings(t, "traversal:\n  bound: 6\n")
	b, err := New(cfg)
	require.NoError(t, err)

	model := &config.Model{Workers: []*config.WorkerSpec{{
		Role: "cycle",
		Name: "ring",
		Components: []*config.ComponentSpec{
			{Name: "a"}, {Name: "b"},
		},
		Edges: []*config.EdgeSpec{
			{From: "a", To: "b"},
			{From: "b", To: "a"},
		},
		Traversal: &config.TraversalSpec{Start: "a"},
	}}}

	// Without the settings default the cycle traversal would fail with a
	// missing bound.
	assert.Equal(t, []string{"ring", "a", "b"}, overviewNames(t, b, model))
}

func TestBuildErrors(t *testing.T) {
	b, err := New(nil)
	require.NoError(t, err)

	t.Run("unknown role", func(t *testing.T) {
		model := &config.Model{Workers: []*config.WorkerSpec{{Role: "mesh", Name: "w"}}}
		_, err := b.Build(context.Background(), model)
		assert.ErrorIs(t, err, catalog.ErrKeyNotFound)
	})

	t.Run("malformed ref", func(t *testing.T) {
		model := &config.Model{Workers: []*config.WorkerSpec{{
			Role:       "pipeline",
			Name:       "w",
			Components: []*config.ComponentSpec{{Name: "c", Ref: "noseparator"}},
		}}}
		_, err := b.Build(context.Background(), model)
		assert.ErrorContains(t, err, "malformed ref")
	})

	t.Run("edge to unknown node", func(t *testing.T) {
		model := &config.Model{Workers: []*config.WorkerSpec{{
			Role:       "graph",
			Name:       "w",
			Components: []*config.ComponentSpec{{Name: "a"}},
			Edges:      []*config.EdgeSpec{{From: "a", To: "ghost"}},
		}}}
		_, err := b.Build(context.Background(), model)
		assert.ErrorIs(t, err, role.ErrUnknownNode)
	})

	t.Run("unknown traversal order", func(t *testing.T) {
		model := &config.Model{Workers: []*config.WorkerSpec{{
			Role:       "pipeline",
			Name:       "w",
			Traversal:  &config.TraversalSpec{Order: "sideways"},
			Components: []*config.ComponentSpec{{Name: "a"}},
		}}}
		_, err := b.Build(context.Background(), model)
		assert.ErrorContains(t, err, "unknown traversal order")
	})
}
