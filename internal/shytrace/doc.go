// Package shytrace renders "shy" stack traces: the folder prefix shared by
// every source file reference in a trace is stripped from each frame line so
// the trace stays readable without exposing machine-local absolute paths.
//
// The recognised frame form is the .NET one:
//
//	at App.Program.Main() in C:\Projects\App\Program.cs:line 5
//
// Lines that do not carry a file reference are passed through verbatim.
package shytrace
