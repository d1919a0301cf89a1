// Package hclcfg implements the config.Loader interface for HCL project
// files. Worker, component, edge and traversal blocks are decoded with
// gohcl struct tags and translated into the format-agnostic config model.
package hclcfg
