// Package types defines the trace record and export record entities,
// the run configuration, and standard error values for the tracemap tool.
package types
