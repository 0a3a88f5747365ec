// Package repository provides the generic staged-write repository
// abstraction over Bun: per-entity CRUD and query primitives, plus the
// unit of work that aggregates the catalog repositories under one commit
// boundary.
package repository
