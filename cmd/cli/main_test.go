package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_PrintsOverview(t *testing.T) {
	t.Parallel()

	path := writeProject(t, `
worker "pipeline" "flow" {
  component "a" {}
  component "b" {}
}
`)
	out := &bytes.Buffer{}

	err := run(out, []string{"--log-level", "error", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), "project")
	require.Contains(t, out.String(), "flow")
	require.Contains(t, out.String(), "a")
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	// A syntax error that is guaranteed to fail during the loading phase.
	path := writeProject(t, `
worker "pipeline" "flow" {
  component "a" {
// Missing closing brace here
`)
	out := &bytes.Buffer{}

	err := run(out, []string{"--log-level", "error", path})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
