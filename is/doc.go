// Package is provides the capability-check predicates used throughout the
// builder core for branching decisions.
//
// Every predicate is a total, side-effect-free boolean query: it accepts any
// value (including nil) and never panics. The core depends on these rather
// than on ad hoc type switches so that classification rules live in exactly
// one place.
package is
