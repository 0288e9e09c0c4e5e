// Package registry is the decoration registry: per-target bookkeeping of
// which member names were installed by descriptor synthesis and by which
// spec. Records make externally-injected members enumerable, distinguish
// them from a target's original members, and support later undecoration.
package registry
