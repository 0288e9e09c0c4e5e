package chain

import (
	"sort"

	"github.com/roach88/fluent/schema"
)

// SchemaMetaKey is the parent metadata key schema entries are recorded
// under, so the set of schema-built members stays enumerable.
const SchemaMetaKey = "schema"

// Schema builds one typed member per entry. Each key gets its own builder
// on the grandparent scope (falling back to the parent at the root), with
// this chain's OnValid/OnInvalid/Define/GetSet configuration propagated;
// the entry's value resolves into a type descriptor, with nested mappings
// becoming traversable validators. Every entry is recorded on the parent's
// metadata store and materialized immediately.
func (c *Chain) Schema(defs map[string]any) *Chain {
	if c.parent == nil {
		return c
	}
	scope := c.parent
	if gp := c.parent.Parent(); gp != nil {
		scope = gp
	}

	keys := make([]string, 0, len(defs))
	for k := range defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		t, err := schema.Of(defs[key])
		if err != nil {
			c.fail(&ConfigError{
				Code:    ErrCodeBadSchemaType,
				Message: err.Error(),
				Name:    key,
			})
			continue
		}

		sub := New(scope, WithConfig(c.cfg), WithRegistry(c.reg))
		for _, k := range []string{KeyOnValid, KeyOnInvalid, KeyDefine, KeyGetSet} {
			if v, ok := c.spec.Get(k); ok {
				sub.spec.Set(k, v)
			}
		}
		sub.Name(key).Type(t)

		meta := c.parent.Meta()
		cur, _ := meta.Get(SchemaMetaKey)
		entries, _ := cur.(map[string]*schema.Type)
		if entries == nil {
			entries = make(map[string]*schema.Type)
		}
		entries[key] = t
		meta.Set(SchemaMetaKey, entries)

		if _, err := sub.Build(); err != nil {
			if cerr, ok := err.(*ConfigError); ok && c.err == nil {
				c.err = cerr
			}
		}
	}
	return c
}
