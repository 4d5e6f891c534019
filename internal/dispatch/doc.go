// Package dispatch selects exactly one find-commit mode from parsed arguments and runs it.
//
// Dispatch holds no process state: callers pass an Arguments value and receive an
// Outcome or a typed error, leaving all rendering to the caller.
package dispatch
