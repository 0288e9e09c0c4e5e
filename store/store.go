package store

import (
	"sort"

	"dario.cat/mergo"

	"github.com/roach88/fluent/is"
)

// bookkeepingKeys are internal wiring entries that must never leak into
// recursive snapshots of nested composables.
var bookkeepingKeys = map[string]struct{}{
	"parent":     {},
	"store":      {},
	"shorthands": {},
	"decorated":  {},
	"inspect":    {},
}

// MergeFunc merges src into dst and returns the result. It is handed to
// Tap callbacks so they can combine the current value with replacement
// config without reimplementing merge semantics.
type MergeFunc func(dst, src map[string]any) map[string]any

// Shorthand is a single-argument setter bound to one store key.
type Shorthand func(value any)

// Store is a key-unique mapping from configuration key to value.
//
// Insertion order is irrelevant: at most one value exists per key and later
// writes overwrite earlier ones. Snapshots iterate keys in sorted order so
// serialized output is deterministic.
//
// A Store is not safe for concurrent use; ownership follows the accumulator
// that created it.
type Store struct {
	entries    map[string]any
	shorthands map[string]Shorthand
}

// New creates an empty store.
func New() *Store {
	return &Store{
		entries:    make(map[string]any),
		shorthands: make(map[string]Shorthand),
	}
}

// Get returns the value stored under key, and whether it was present.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(key string, value any) *Store {
	s.entries[key] = value
	return s
}

// Delete removes key and reports whether it was present.
func (s *Store) Delete(key string) bool {
	_, ok := s.entries[key]
	delete(s.entries, key)
	return ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// SortedKeys returns all keys in sorted order for deterministic iteration.
func (s *Store) SortedKeys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tap reads the current value under key, passes it together with the deep
// merge helper to fn, and writes fn's result back under the same key.
func (s *Store) Tap(key string, fn func(cur any, merge MergeFunc) any) *Store {
	cur, _ := s.entries[key]
	return s.Set(key, fn(cur, DeepMerge))
}

// Extend registers a same-named shorthand setter for each name. The
// shorthand writes its argument under that name, so callers can hand out
// single-argument setters without exposing the store itself.
func (s *Store) Extend(names ...string) *Store {
	for _, name := range names {
		name := name
		s.shorthands[name] = func(value any) {
			s.Set(name, value)
		}
	}
	return s
}

// Shorthand returns the registered setter for name, if any.
func (s *Store) Shorthand(name string) (Shorthand, bool) {
	fn, ok := s.shorthands[name]
	return fn, ok
}

// RegisterShorthand records an externally built setter under name. The
// synthesizer uses this to expose setters for accessor members it installs.
func (s *Store) RegisterShorthand(name string, fn Shorthand) *Store {
	s.shorthands[name] = fn
	return s
}

// Clear empties the store and its shorthand table. Values implementing
// Clearable are cleared first so nested composables release their own
// state recursively.
func (s *Store) Clear() *Store {
	for _, v := range s.entries {
		if c, ok := v.(Clearable); ok {
			c.ClearAll()
		}
	}
	s.entries = make(map[string]any)
	s.shorthands = make(map[string]Shorthand)
	return s
}

// Entries returns a snapshot of the store.
//
// With includeNested, values implementing Composable are replaced by their
// own recursive snapshot under the same key, and bookkeeping keys (parent,
// store, shorthands, decorated, inspect) are skipped at every level.
func (s *Store) Entries(includeNested bool) map[string]any {
	out := make(map[string]any, len(s.entries))
	for k, v := range s.entries {
		if includeNested {
			if _, skip := bookkeepingKeys[k]; skip {
				continue
			}
			if c, ok := v.(Composable); ok {
				out[k] = c.ComposedStore().Entries(true)
				continue
			}
		}
		out[k] = v
	}
	return out
}

// Merge deep-merges src into the current entries: sequences concatenate,
// mappings recurse, scalars overwrite. When cb is non-nil the merged result
// is handed to cb instead of being applied to the store.
func (s *Store) Merge(src map[string]any, cb func(merged map[string]any)) *Store {
	merged := DeepMerge(s.Entries(false), src)
	if cb != nil {
		cb(merged)
		return s
	}
	for k, v := range merged {
		s.entries[k] = v
	}
	return s
}

// From applies each key of src through the most specific channel available:
// a same-named nested Mergeable delegates via merge, a registered shorthand
// is invoked with the value, and anything else is a plain Set.
func (s *Store) From(src map[string]any) *Store {
	for _, k := range sortedKeysOf(src) {
		v := src[k]
		if cur, ok := s.entries[k]; ok {
			if m, ok := cur.(Mergeable); ok {
				if sub, ok := v.(map[string]any); ok {
					m.MergeConfig(sub)
					continue
				}
			}
		}
		if fn, ok := s.shorthands[k]; ok {
			fn(v)
			continue
		}
		s.Set(k, v)
	}
	return s
}

// Clean returns a copy of m without entries whose value is nil, an empty
// sequence, or an empty mapping. Empty strings and zero scalars survive.
func Clean(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if is.Nil(v) {
			continue
		}
		if (is.Array(v) || is.Map(v)) && is.Empty(v) {
			continue
		}
		out[k] = v
	}
	return out
}

// DeepMerge merges src into a copy of dst with sequence-concatenation and
// mapping-recursion semantics. Neither argument is mutated: nested maps and
// sequences are cloned on both sides before merging, so the result shares
// no structure with the inputs.
func DeepMerge(dst, src map[string]any) map[string]any {
	out := deepCopyMap(dst)
	// mergo recurses maps in place and, with WithAppendSlice, concatenates
	// slices. WithOverride makes scalar conflicts last-writer-wins.
	if err := mergo.Merge(&out, deepCopyMap(src), mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		// Merge over map[string]any cannot fail structurally; keep the
		// destination copy rather than dropping data.
		return out
	}
	return out
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}

func sortedKeysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
