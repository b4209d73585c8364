// Package history persists a log of successful lookups backed by SQLite.
//
// It is an audit trail for the CLI, not a response cache: nothing is ever
// served back from it. Writes take an advisory file lock so concurrent
// invocations do not interleave.
package history
