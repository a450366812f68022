// Package tio implements the serialization and printing collaborators
// of the array engine: raw binary and delimited-text reading/writing,
// and configurable, truncated rendering of expressions. Formatting is
// driven by an explicit FormatOptions value, never by process-wide
// state.
//
// The public facade for this package is github.com/nd-ml/nd/tio.
package tio
