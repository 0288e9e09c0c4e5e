package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fluent/config"
	"github.com/roach88/fluent/object"
	"github.com/roach88/fluent/registry"
	"github.com/roach88/fluent/schema"
)

func TestDecorateInstallsOnGrandparent(t *testing.T) {
	root := object.New(nil)
	parent := object.New(root)
	r := registry.New()

	_, err := New(parent, WithRegistry(r)).Name("greet").Decorate(nil).Build()
	require.NoError(t, err)

	_, ok := root.Descriptor("greet")
	assert.True(t, ok, "member lands on the decoration target")
	_, ok = parent.Descriptor("greet")
	assert.False(t, ok, "owning parent stays untouched")

	assert.True(t, r.Decorated(root, "greet"))
}

func TestDecoratedMethodReturnsDecoratedObject(t *testing.T) {
	root := object.New(nil)
	parent := object.New(root)

	_, err := New(parent).Name("greet").Decorate(root).Build()
	require.NoError(t, err)

	got, err := root.Call("greet")
	require.NoError(t, err)
	assert.Same(t, root, got, "falsy underlying result yields the decorated object")

	// Default wiring still writes through to the owning parent's store.
	_, err = root.Call("greet", "hello")
	require.NoError(t, err)
	v, ok := parent.ConfigStore().Get("greet")
	require.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestDecoratedMethodKeepsTruthyResult(t *testing.T) {
	root := object.New(nil)
	parent := object.New(root)

	_, err := New(parent).Name("answer").Decorate(root).
		OnCall(func(any, ...any) any { return 42 }).
		Build()
	require.NoError(t, err)

	got, err := root.Call("answer")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestDecorateWithoutTargetLenient(t *testing.T) {
	parent := object.New(nil) // no grandparent to fall back to

	host, err := New(parent).Name("x").Decorate(nil).Build()
	require.NoError(t, err, "lenient mode treats misuse as a no-op")
	assert.Same(t, parent, host)

	_, ok := parent.Descriptor("x")
	assert.True(t, ok, "members still install on the parent")
}

func TestDecorateWithoutTargetStrict(t *testing.T) {
	parent := object.New(nil)

	c := New(parent, WithConfig(config.New(config.WithStrict())))
	_, err := c.Name("x").Decorate(nil).Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, &ConfigError{Code: ErrCodeNoDecorationTarget})
}

func TestSchemaBuildsTypedMembers(t *testing.T) {
	root := object.New(nil)
	parent := object.New(root)

	New(parent).Schema(map[string]any{
		"a": schema.Number(),
		"b": schema.StringT(),
	})

	// Builders land on the grandparent scope.
	_, ok := root.Descriptor("a")
	assert.True(t, ok)
	_, ok = root.Descriptor("b")
	assert.True(t, ok)

	// Each key records a schema entry on the parent's metadata store.
	cur, ok := parent.Meta().Get(SchemaMetaKey)
	require.True(t, ok)
	entries := cur.(map[string]*schema.Type)
	assert.Equal(t, schema.KindNumber, entries["a"].Kind)
	assert.Equal(t, schema.KindString, entries["b"].Kind)
}

func TestSchemaMembersValidate(t *testing.T) {
	root := object.New(nil)
	parent := object.New(root)
	var invalid any

	New(parent).
		OnInvalid(func(v any) { invalid = v }).
		Schema(map[string]any{"a": schema.Number()})

	_, err := root.Call("a", 5)
	require.NoError(t, err)
	v, ok := root.ConfigStore().Get("a")
	require.True(t, ok)
	assert.Equal(t, 5, v)

	_, err = root.Call("a", "five")
	require.NoError(t, err)
	assert.Equal(t, "five", invalid)
	v, _ = root.ConfigStore().Get("a")
	assert.Equal(t, 5, v)
}

func TestSchemaNestedTypesAreTraversable(t *testing.T) {
	root := object.New(nil)
	parent := object.New(root)

	New(parent).Schema(map[string]any{
		"owner": map[string]any{"id": "int"},
	})

	_, err := root.Call("owner", map[string]any{"id": 7})
	require.NoError(t, err)
	v, ok := root.ConfigStore().Get("owner")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"id": 7}, v)

	_, err = root.Call("owner", map[string]any{"id": "x"})
	require.NoError(t, err)
	v, _ = root.ConfigStore().Get("owner")
	assert.Equal(t, map[string]any{"id": 7}, v, "invalid nested write skipped")
}

func TestSchemaAtRootFallsBackToParent(t *testing.T) {
	parent := object.New(nil)

	New(parent).Schema(map[string]any{"a": schema.Bool()})

	_, ok := parent.Descriptor("a")
	assert.True(t, ok)
}

func TestSchemaBadTypeStrict(t *testing.T) {
	parent := object.New(nil)
	c := New(parent, WithConfig(config.New(config.WithStrict())))

	_, err := c.Schema(map[string]any{"a": 99}).Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, &ConfigError{Code: ErrCodeBadSchemaType})
}

func TestSchemaFromYAMLDocument(t *testing.T) {
	types, err := schema.FromYAML([]byte("count: int\ntitle: string\n"))
	require.NoError(t, err)

	defs := make(map[string]any, len(types))
	for k, v := range types {
		defs[k] = v
	}

	parent := object.New(nil)
	New(parent).Schema(defs)

	_, ok := parent.Descriptor("count")
	assert.True(t, ok)
	_, ok = parent.Descriptor("title")
	assert.True(t, ok)
}

func TestFactoryAppendsNamesMidBuild(t *testing.T) {
	parent := object.New(nil)
	added := false

	_, err := New(parent).Name("first").Factory(func(name string, c *Chain) {
		if !added {
			added = true
			c.Name("second")
		}
	}).Build()
	require.NoError(t, err)

	_, ok := parent.Descriptor("first")
	assert.True(t, ok)
	_, ok = parent.Descriptor("second")
	assert.True(t, ok, "factory-appended names are synthesized in the same pass")
}

func TestBuildClearsSpecStore(t *testing.T) {
	parent := object.New(nil)
	c := New(parent).Name("x").Initial(1).Alias("y")

	_, err := c.Build()
	require.NoError(t, err)

	assert.Equal(t, 0, c.spec.Len())
	assert.Nil(t, c.Parent())
}

func TestSeededHandlersDoNotLeakToNextName(t *testing.T) {
	parent := object.New(nil)
	require.NoError(t, parent.Define("old", object.ValueDescriptor{
		Value:        func(args ...any) any { return "old" },
		Enumerable:   true,
		Configurable: true,
	}))

	_, err := New(parent).Name("old", "fresh").Build()
	require.NoError(t, err)

	// The name without a pre-existing member gets its own store wiring,
	// not the previous name's captured method.
	_, err = parent.Call("fresh", 5)
	require.NoError(t, err)
	v, ok := parent.ConfigStore().Get("fresh")
	require.True(t, ok)
	assert.Equal(t, 5, v)

	got, err := parent.Call("old")
	require.NoError(t, err)
	assert.Equal(t, "old", got, "the pre-existing member keeps its captured behavior")
}

func TestNameMapHandlersSurviveCamelCase(t *testing.T) {
	parent := object.New(nil)

	_, err := New(parent).NameMap(map[string]any{
		"say-hi": func(args ...any) any { return "hi!" },
	}).CamelCase().Build()
	require.NoError(t, err)

	got, err := parent.Call("sayHi")
	require.NoError(t, err)
	assert.Equal(t, "hi!", got)
}

func TestBuildWithSubstitutesReturnValue(t *testing.T) {
	parent := object.New(nil)

	host, err := New(parent).Name("x").BuildWith("done")
	require.NoError(t, err)
	require.Same(t, parent, host)

	got, err := parent.Call("x", 1)
	require.NoError(t, err)
	assert.Equal(t, "done", got)
	v, _ := parent.ConfigStore().Get("x")
	assert.Equal(t, 1, v, "store wiring still applies under the substituted return")
}

func TestBuildWithKeepsExplicitReturns(t *testing.T) {
	parent := object.New(nil)

	_, err := New(parent).Name("x").Chainable("keep").BuildWith("ignored")
	require.NoError(t, err)

	got, err := parent.Call("x")
	require.NoError(t, err)
	assert.Equal(t, "keep", got)
}

func TestDefineWinsOverGetSet(t *testing.T) {
	parent := object.New(nil)

	_, err := New(parent).Name("x").Define(true).GetSet(true).Build()
	require.NoError(t, err)

	d, ok := parent.Descriptor("x")
	require.True(t, ok)
	_, isValue := d.(object.ValueDescriptor)
	assert.True(t, isValue, "direct-value mode wins over getter/setter mode")
}
