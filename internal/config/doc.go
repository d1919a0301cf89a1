// Package config defines the format-agnostic configuration model for a
// declarative project file, along with the Loader interface that
// format-specific packages implement.
//
// The config.Model is the single source of truth for the builder package.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
