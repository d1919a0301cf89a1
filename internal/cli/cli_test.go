package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional project path", func(t *testing.T) {
		cfg, exit, err := Parse([]string{"project.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "project.hcl", cfg.ProjectPath)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("project flag wins over positional", func(t *testing.T) {
		cfg, _, err := Parse([]string{"--project", "a.hcl", "b.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "a.hcl", cfg.ProjectPath)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-p", "short.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "short.hcl", cfg.ProjectPath)
	})

	t.Run("settings path", func(t *testing.T) {
		cfg, _, err := Parse([]string{"--settings", "conf/", "p.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "conf/", cfg.SettingsPath)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("invalid log format", func(t *testing.T) {
		_, _, err := Parse([]string{"--log-format", "xml", "p.hcl"}, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := Parse([]string{"--log-level", "loud", "p.hcl"}, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("log values are lowercased", func(t *testing.T) {
		cfg, _, err := Parse([]string{"--log-level", "DEBUG", "--log-format", "TEXT", "p.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})
}
