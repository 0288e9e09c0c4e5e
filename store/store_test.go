package store

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOverwrites(t *testing.T) {
	s := New()
	s.Set("name", "first").Set("name", "second")

	v, ok := s.Get("name")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, s.Len())
}

func TestGetMissing(t *testing.T) {
	s := New()
	v, ok := s.Get("absent")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestSortedKeys(t *testing.T) {
	s := New()
	s.Set("zebra", 1).Set("apple", 2).Set("mango", 3)
	assert.Equal(t, []string{"apple", "mango", "zebra"}, s.SortedKeys())
}

func TestTapMergesCurrentValue(t *testing.T) {
	s := New()
	s.Set("cfg", map[string]any{"a": []any{"x"}, "keep": true})

	s.Tap("cfg", func(cur any, merge MergeFunc) any {
		return merge(cur.(map[string]any), map[string]any{"a": []any{"y"}})
	})

	v, _ := s.Get("cfg")
	m := v.(map[string]any)
	assert.Equal(t, []any{"x", "y"}, m["a"])
	assert.Equal(t, true, m["keep"])
}

func TestTapMissingKeyReceivesNil(t *testing.T) {
	s := New()
	s.Tap("fresh", func(cur any, _ MergeFunc) any {
		assert.Nil(t, cur)
		return "seeded"
	})

	v, _ := s.Get("fresh")
	assert.Equal(t, "seeded", v)
}

func TestExtendInstallsShorthands(t *testing.T) {
	s := New()
	s.Extend("color", "size")

	set, ok := s.Shorthand("color")
	require.True(t, ok)
	set("red")

	v, _ := s.Get("color")
	assert.Equal(t, "red", v)

	_, ok = s.Shorthand("shape")
	assert.False(t, ok)
}

func TestMergeAppliesDeepMerge(t *testing.T) {
	s := New()
	s.Set("tags", []any{"a"})
	s.Set("n", 1)

	s.Merge(map[string]any{"tags": []any{"b"}, "n": 2}, nil)

	tags, _ := s.Get("tags")
	assert.Equal(t, []any{"a", "b"}, tags)
	n, _ := s.Get("n")
	assert.Equal(t, 2, n)
}

func TestMergeWithCallbackDoesNotApply(t *testing.T) {
	s := New()
	s.Set("n", 1)

	var seen map[string]any
	s.Merge(map[string]any{"n": 2}, func(merged map[string]any) {
		seen = merged
	})

	require.NotNil(t, seen)
	assert.Equal(t, 2, seen["n"])
	n, _ := s.Get("n")
	assert.Equal(t, 1, n, "store must stay unchanged when cb is given")
}

func TestMergeWithCallbackLeavesNestedMapsUntouched(t *testing.T) {
	s := New()
	s.Set("cfg", map[string]any{"a": 1})

	var seen map[string]any
	s.Merge(map[string]any{"cfg": map[string]any{"b": 2}}, func(merged map[string]any) {
		seen = merged
	})

	require.NotNil(t, seen)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, seen["cfg"])

	cfg, _ := s.Get("cfg")
	assert.Equal(t, map[string]any{"a": 1}, cfg, "nested entries stay unchanged when cb is given")
}

// mergeableChild records delegated config for assertions.
type mergeableChild struct {
	got map[string]any
}

func (m *mergeableChild) MergeConfig(src map[string]any) { m.got = src }

func TestFromDispatch(t *testing.T) {
	s := New()
	child := &mergeableChild{}
	s.Set("nested", child)
	s.Extend("color")

	s.From(map[string]any{
		"nested": map[string]any{"depth": 2},
		"color":  "blue",
		"plain":  42,
	})

	assert.Equal(t, map[string]any{"depth": 2}, child.got)

	color, _ := s.Get("color")
	assert.Equal(t, "blue", color)

	plain, _ := s.Get("plain")
	assert.Equal(t, 42, plain)

	// The nested entry itself must not be replaced by the raw map.
	nested, _ := s.Get("nested")
	assert.Same(t, child, nested)
}

// composableChild exposes a nested store for snapshot inlining.
type composableChild struct {
	s *Store
}

func (c *composableChild) ComposedStore() *Store { return c.s }

func TestEntriesInlinesNestedComposables(t *testing.T) {
	inner := New()
	inner.Set("depth", 2)
	inner.Set("parent", "bookkeeping-should-vanish")
	inner.Set("shorthands", "also-bookkeeping")

	s := New()
	s.Set("top", 1)
	s.Set("child", &composableChild{s: inner})

	flat := s.Entries(false)
	_, isChild := flat["child"].(*composableChild)
	assert.True(t, isChild, "shallow snapshot keeps the raw value")

	deep := s.Entries(true)
	assert.Equal(t, 1, deep["top"])
	assert.Equal(t, map[string]any{"depth": 2}, deep["child"])
}

// clearableChild observes recursive clearing.
type clearableChild struct {
	cleared bool
}

func (c *clearableChild) ClearAll() { c.cleared = true }

func TestClearRecursesIntoChildren(t *testing.T) {
	child := &clearableChild{}
	s := New()
	s.Set("child", child)
	s.Extend("color")

	s.Clear()

	assert.True(t, child.cleared)
	assert.Equal(t, 0, s.Len())
	_, ok := s.Shorthand("color")
	assert.False(t, ok)
}

func TestClean(t *testing.T) {
	in := map[string]any{
		"nil":      nil,
		"emptyArr": []any{},
		"emptyMap": map[string]any{},
		"emptyStr": "",
		"zero":     0,
		"keep":     "v",
	}

	out := Clean(in)

	assert.Equal(t, map[string]any{
		"emptyStr": "",
		"zero":     0,
		"keep":     "v",
	}, out)
}

func TestDeepMergeDoesNotMutateArguments(t *testing.T) {
	dst := map[string]any{"a": []any{"x"}}
	src := map[string]any{"a": []any{"y"}}

	out := DeepMerge(dst, src)

	assert.Equal(t, []any{"x", "y"}, out["a"])
	assert.Equal(t, []any{"x"}, dst["a"])
	assert.Equal(t, []any{"y"}, src["a"])
}

func TestDeepMergeDoesNotMutateNestedMaps(t *testing.T) {
	dst := map[string]any{"cfg": map[string]any{"a": 1}}
	src := map[string]any{"cfg": map[string]any{"b": 2}}

	out := DeepMerge(dst, src)

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, out["cfg"])
	assert.Equal(t, map[string]any{"a": 1}, dst["cfg"], "dst nested map untouched")
	assert.Equal(t, map[string]any{"b": 2}, src["cfg"], "src nested map untouched")

	// The result owns its structure: mutating it reaches neither input.
	out["cfg"].(map[string]any)["c"] = 3
	assert.Equal(t, map[string]any{"a": 1}, dst["cfg"])
	assert.Equal(t, map[string]any{"b": 2}, src["cfg"])
}

func TestEntriesGolden(t *testing.T) {
	s := New()
	s.Set("name", "color")
	s.Set("default", 42)
	s.Set("alias", []any{"a", "b"})

	data, err := json.MarshalIndent(s.Entries(false), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "store_entries", append(data, '\n'))
}
