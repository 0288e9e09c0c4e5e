package registry

import (
	"github.com/google/uuid"

	"github.com/roach88/fluent/object"
)

// MetaKey is the metadata-store key decoration records are mirrored under,
// so a target's own metadata distinguishes injected members from originals.
const MetaKey = "decorated"

// Record is one synthesized-member installation on a target.
type Record struct {
	// ID is a unique handle for the installation.
	ID string
	// Key is the installed member name (post camel-casing, including
	// aliases and shorthand names).
	Key string
	// Construct is the primary name of the spec that installed the
	// member, distinguishing re-decorations of the same key.
	Construct string
}

// Registry tracks which member names were synthesized onto which targets.
// Records are append-only during synthesis; Undecorate is the only removal
// path. Not safe for concurrent use.
type Registry struct {
	records map[object.Host][]Record
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{records: make(map[object.Host][]Record)}
}

// Default is the registry used by chains that were not given their own.
var Default = New()

// Track appends a record for key on target and mirrors it into the
// target's metadata store under MetaKey.
func (r *Registry) Track(target object.Host, key, construct string) Record {
	rec := Record{
		ID:        uuid.NewString(),
		Key:       key,
		Construct: construct,
	}
	r.records[target] = append(r.records[target], rec)

	meta := target.Meta()
	cur, _ := meta.Get(MetaKey)
	list, _ := cur.([]Record)
	meta.Set(MetaKey, append(list, rec))

	return rec
}

// For returns a snapshot of the records for target, in installation order.
func (r *Registry) For(target object.Host) []Record {
	recs := r.records[target]
	out := make([]Record, len(recs))
	copy(out, recs)
	return out
}

// Decorated reports whether key on target was installed by synthesis.
func (r *Registry) Decorated(target object.Host, key string) bool {
	for _, rec := range r.records[target] {
		if rec.Key == key {
			return true
		}
	}
	return false
}

// Undecorate removes a synthesized member and its records from target.
// Members the registry never tracked are left alone.
func (r *Registry) Undecorate(target object.Host, key string) bool {
	recs := r.records[target]
	kept := recs[:0]
	found := false
	for _, rec := range recs {
		if rec.Key == key {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return false
	}
	r.records[target] = kept

	meta := target.Meta()
	if cur, ok := meta.Get(MetaKey); ok {
		if list, ok := cur.([]Record); ok {
			mkept := list[:0]
			for _, rec := range list {
				if rec.Key != key {
					mkept = append(mkept, rec)
				}
			}
			meta.Set(MetaKey, mkept)
		}
	}

	target.Delete(key)
	return true
}
