//go:build !windows

package shytrace

// DefaultNewline is the platform line terminator.
const DefaultNewline = "\n"
