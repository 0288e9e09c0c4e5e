// Package store implements the ordered store backing every spec
// accumulator and decorated object: a key-unique mapping from configuration
// key to value with tap, merge, ingestion, and snapshot operations.
//
// "Ordered" refers to key uniqueness with last-writer-wins overwrite
// semantics, not insertion order; snapshots iterate keys in sorted order so
// serialized output is deterministic.
//
// Deep merging (sequence concatenation, mapping recursion) is delegated to
// the external merge collaborator. Nested values participate in recursive
// operations by implementing the capability interfaces in capability.go,
// never through runtime structural inspection.
package store
