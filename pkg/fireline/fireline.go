// Package fireline exposes build-level metadata about the module.
package fireline

// Version is the semantic version of the fireline tool.
const Version = "0.1.0"
