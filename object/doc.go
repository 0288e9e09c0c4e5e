// Package object models the decoration target: a run-time property map a
// spec accumulator installs synthesized members into.
//
// Members are described by Descriptor, a sealed variant that is either a
// single callable value or a paired get/set accessor, never both. The
// synthesizer installs through the Target interface, so any type exposing
// an explicit property map can be decorated; Object is the map-backed
// implementation used everywhere in this module.
package object
