package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.yaml", `
roles:
  review: tree
traversal:
  bound: 50
`)

	s, err := Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "tree", s.String("roles.review"))
	assert.Equal(t, 50, s.Int("traversal.bound"))
	assert.True(t, s.Has("roles.review"))
	assert.False(t, s.Has("roles.ghost"))
}

func TestLoadMergesFormatsInOrder(t *testing.T) {
	yamlDir := t.TempDir()
	jsonDir := t.TempDir()
	writeFile(t, yamlDir, "base.yaml", "traversal:\n  bound: 10\n  order: depth\n")
	writeFile(t, jsonDir, "override.json", `{"traversal": {"bound": 99}}`)

	s, err := Load(context.Background(), yamlDir, jsonDir)
	require.NoError(t, err)

	// Later paths win key-by-key; untouched keys survive.
	assert.Equal(t, 99, s.Int("traversal.bound"))
	assert.Equal(t, "depth", s.String("traversal.order"))
}

func TestEnvironmentOverridesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.yaml", "roles:\n  review: tree\n")
	t.Setenv("WORKGRID_ROLES_REVIEW", "graph")

	s, err := Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "graph", s.String("roles.review"))
}

func TestSection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.yaml", `
references:
  tools:
    scaler: 7
`)

	s, err := Load(context.Background(), dir)
	require.NoError(t, err)

	section := s.Section("references")
	require.Contains(t, section, "tools")
	assert.Empty(t, s.Section("missing"))
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.yaml", `
traversal:
  start: draft
  bound: "25"
`)

	s, err := Load(context.Background(), dir)
	require.NoError(t, err)

	var opts struct {
		Start string `koanf:"start"`
		Bound int    `koanf:"bound"`
	}
	require.NoError(t, s.Decode("traversal", &opts))
	assert.Equal(t, "draft", opts.Start)
	// Weak typing binds the quoted number.
	assert.Equal(t, 25, opts.Bound)
}

func TestLoadWithoutSources(t *testing.T) {
	s, err := Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, s.String("anything"))
}
