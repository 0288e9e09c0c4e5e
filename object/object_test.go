package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorSealed(t *testing.T) {
	// Compile-time check: both shapes implement Descriptor.
	var _ Descriptor = ValueDescriptor{}
	var _ Descriptor = AccessorDescriptor{}
}

func TestDefineAndCall(t *testing.T) {
	o := New(nil)

	err := o.Define("double", ValueDescriptor{
		Value:        func(args ...any) any { return args[0].(int) * 2 },
		Enumerable:   true,
		Configurable: true,
	})
	require.NoError(t, err)

	got, err := o.Call("double", 21)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestDefineNonConfigurableRejectsRedefinition(t *testing.T) {
	o := New(nil)
	require.NoError(t, o.Define("locked", ValueDescriptor{
		Value:        func(...any) any { return "v1" },
		Configurable: false,
	}))

	err := o.Define("locked", ValueDescriptor{
		Value:        func(...any) any { return "v2" },
		Configurable: true,
	})
	assert.ErrorIs(t, err, ErrNotConfigurable)

	got, err := o.Call("locked")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)
}

func TestAccessorMember(t *testing.T) {
	o := New(nil)
	var held any
	require.NoError(t, o.Define("color", AccessorDescriptor{
		Get:          func() any { return held },
		Set:          func(v any) { held = v },
		Configurable: true,
	}))

	require.NoError(t, o.SetMember("color", "red"))

	got, err := o.GetMember("color")
	require.NoError(t, err)
	assert.Equal(t, "red", got)

	// Accessor call convention: one arg writes, zero args reads.
	_, err = o.Call("color", "blue")
	require.NoError(t, err)
	got, err = o.Call("color")
	require.NoError(t, err)
	assert.Equal(t, "blue", got)

	_, err = o.Call("color", 1, 2)
	assert.ErrorIs(t, err, ErrNotCallable)
}

func TestValueMemberNotAssignable(t *testing.T) {
	o := New(nil)
	require.NoError(t, o.Define("fn", ValueDescriptor{
		Value: func(...any) any { return nil },
	}))

	assert.ErrorIs(t, o.SetMember("fn", 1), ErrNotAssignable)
}

func TestMissingMember(t *testing.T) {
	o := New(nil)

	_, err := o.Call("ghost")
	assert.ErrorIs(t, err, ErrNoMember)
	_, err = o.GetMember("ghost")
	assert.ErrorIs(t, err, ErrNoMember)
	assert.ErrorIs(t, o.SetMember("ghost", 1), ErrNoMember)
}

func TestNamesSortedAndDelete(t *testing.T) {
	o := New(nil)
	require.NoError(t, o.Define("b", ValueDescriptor{Value: func(...any) any { return nil }}))
	require.NoError(t, o.Define("a", ValueDescriptor{Value: func(...any) any { return nil }}))

	assert.Equal(t, []string{"a", "b"}, o.Names())

	assert.True(t, o.Delete("a"))
	assert.False(t, o.Delete("a"))
	assert.Equal(t, []string{"b"}, o.Names())
}

func TestParentChain(t *testing.T) {
	root := New(nil)
	child := New(root)

	assert.Nil(t, root.Parent())
	require.NotNil(t, child.Parent())
	assert.Same(t, root, child.Parent().(*Object))
}

func TestMetaLazilyAttached(t *testing.T) {
	o := New(nil)
	assert.False(t, o.HasMeta())

	o.Meta().Set("decorated", []any{"x"})
	assert.True(t, o.HasMeta())

	v, ok := o.Meta().Get("decorated")
	require.True(t, ok)
	assert.Equal(t, []any{"x"}, v)
}

func TestMergeAttributesPrefersAccessorShape(t *testing.T) {
	prev := ValueDescriptor{Value: func(...any) any { return nil }, Enumerable: true, Configurable: true}
	next := AccessorDescriptor{Get: func() any { return 1 }, Set: func(any) {}}

	merged := MergeAttributes(prev, next)

	a, ok := merged.(AccessorDescriptor)
	require.True(t, ok, "accessor pair wins over lingering value attribute")
	assert.True(t, a.IsEnumerable())
	assert.True(t, a.IsConfigurable())
	assert.NotNil(t, a.Get)
	assert.NotNil(t, a.Set)
}
