// Package jsondb provides a generic, concurrent-safe, JSON-file-backed data store.
//
// # Overview
//
// The package centers around [Table], a generic container that keeps every row
// of one entity type in memory and mirrors the collection to a single JSON
// array file. The file is read once at startup and rewritten in full after
// every mutation. This trades write amplification for a file that is trivially
// inspectable and editable by hand, which is acceptable for data sets of
// thousands of rows, not millions.
//
// # Concurrency: Pessimistic Locking
//
// Table uses pessimistic locking: every mutation holds the write lock for the
// entire operation, covering ID assignment, validation, the in-memory update,
// and the file rewrite. Concurrent writers therefore serialize and two calls
// can never observe the same unassigned ID or interleave their file writes.
// Reads take the read lock and return clones, so callers never alias internal
// state.
//
// # File Format
//
// The file is a single JSON array, indented with two spaces and terminated by
// a newline:
//
//	[
//	  {
//	    "id": 1,
//	    "title": "Dune"
//	  }
//	]
//
// Rows keep their file order in memory and new rows are appended, so iteration
// order is insertion order; the table never sorts. Rewrites go to a temporary
// file in the same directory followed by an atomic rename, so a crash
// mid-write leaves the previous file intact.
package jsondb
