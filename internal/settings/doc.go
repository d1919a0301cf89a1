// Package settings loads layered application settings from YAML and JSON
// files plus WORKGRID_-prefixed environment variables. Values are addressed
// by dot-delimited section keys and can be bound onto structs.
package settings
