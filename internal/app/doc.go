// Package app wires the application together: it owns the logger, loads
// settings and the project model, builds the root worker, and renders the
// structure overview.
package app
