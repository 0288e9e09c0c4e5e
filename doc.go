// Package fluent synthesizes chainable member APIs on plain objects from
// declarative specifications.
//
// A specification is accumulated on a chain: each configured name becomes
// a member whose reads and writes are backed by the owning object's
// ordered store, optionally validated against a type descriptor, encased
// against panics, bound to a fixed receiver, or rewritten through a
// return transform. Building the chain installs the members, records them
// in a decoration registry, and consumes the chain.
//
// The root package is a thin facade over the subpackages: it publishes a
// process-wide configuration and registry snapshot and hands out chains
// and objects wired to them. Libraries that need isolated behavior use
// chain.New and registry.New directly.
package fluent
