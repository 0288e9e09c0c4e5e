// Package chain implements the spec accumulator and the descriptor
// synthesizer: the fluent surface that collects a member specification
// into an ordered store, and the one-shot Build step that turns the
// accumulated spec into live members on a target object.
//
// A Chain is consumed exactly once. Configuration calls chain on the
// accumulator; Build materializes every configured name (conflict
// resolution, default get/set wiring backed by the parent's store, factory
// expansion, then validation or encasing, binding, return transform, and
// initial-value seeding), installs value or accessor descriptors onto the
// decoration target, records each installation in the decoration
// registry, and finally clears the spec and releases the parent link so
// the instance cannot install anything again.
package chain
