// Package oplog records scaffolding operations in an append-only text file,
// one "[timestamp] message" line per entry. Writing to the log never fails
// from the caller's point of view: append errors are reported to a diagnostic
// writer and dropped.
package oplog
