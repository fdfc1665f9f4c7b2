// Package types defines the report document model, the reference table
// shape, user accounts, and standard error values for the fireline
// record store.
package types
