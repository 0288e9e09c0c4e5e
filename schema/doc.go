// Package schema is the validator-construction collaborator: it turns type
// descriptors into validating call/set wrappers for synthesized members.
//
// A Type is a kind plus, for object kinds, traversable nested field types.
// Descriptors can be built programmatically, resolved from loose values
// with Of, or ingested from declarative YAML or CUE schema documents.
//
// Failure policy lives here, not in the builder core: Wrap routes outcomes
// to the configured onValid/onInvalid callbacks and the core never observes
// a validation failure.
package schema
