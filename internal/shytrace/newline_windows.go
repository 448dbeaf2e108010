package shytrace

// DefaultNewline is the platform line terminator.
const DefaultNewline = "\r\n"
