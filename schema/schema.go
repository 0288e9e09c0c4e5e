package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/fluent/is"
)

// Kind enumerates the value classes a Type can require.
type Kind int

const (
	// KindAny accepts every value, including nil.
	KindAny Kind = iota
	// KindString accepts strings.
	KindString
	// KindNumber accepts any integer or floating-point value.
	KindNumber
	// KindInt accepts integer values only.
	KindInt
	// KindFloat accepts floating-point values only.
	KindFloat
	// KindBool accepts booleans.
	KindBool
	// KindArray accepts slices and arrays.
	KindArray
	// KindObject accepts mappings; with Fields set it validates them
	// recursively (a traversable validator).
	KindObject
	// KindFunc accepts callables.
	KindFunc
)

// String returns the kind name used in schema documents.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunc:
		return "func"
	default:
		return "any"
	}
}

// Type is a validator descriptor: a kind plus, for object kinds, an
// optional set of traversable nested field types, or a custom predicate.
type Type struct {
	Kind Kind

	// Fields holds nested field validators for KindObject. Declared
	// fields must be present and valid; undeclared fields pass through.
	Fields map[string]*Type

	// Check is an optional custom predicate. When set it replaces the
	// kind test entirely.
	Check func(v any) bool

	// name labels custom predicates in diagnostics.
	name string
}

// String describes the type for diagnostics.
func (t *Type) String() string {
	if t == nil {
		return "any"
	}
	if t.Check != nil {
		if t.name != "" {
			return t.name
		}
		return "predicate"
	}
	if t.Kind == KindObject && len(t.Fields) > 0 {
		keys := make([]string, 0, len(t.Fields))
		for k := range t.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "object{" + strings.Join(keys, ",") + "}"
	}
	return t.Kind.String()
}

// Constructors for the closed set of kinds.

// Any returns a validator accepting every value.
func Any() *Type { return &Type{Kind: KindAny} }

// StringT returns a string validator. The T suffix keeps call sites like
// schema.StringT() from reading as a string conversion.
func StringT() *Type { return &Type{Kind: KindString} }

// Number returns a validator accepting any numeric value.
func Number() *Type { return &Type{Kind: KindNumber} }

// Int returns an integer validator.
func Int() *Type { return &Type{Kind: KindInt} }

// Float returns a floating-point validator.
func Float() *Type { return &Type{Kind: KindFloat} }

// Bool returns a boolean validator.
func Bool() *Type { return &Type{Kind: KindBool} }

// Array returns a sequence validator.
func Array() *Type { return &Type{Kind: KindArray} }

// Object returns a mapping validator. With fields, declared entries are
// validated recursively.
func Object(fields map[string]*Type) *Type {
	return &Type{Kind: KindObject, Fields: fields}
}

// Func returns a callable validator.
func Func() *Type { return &Type{Kind: KindFunc} }

// Predicate returns a validator backed by a custom check.
func Predicate(name string, check func(v any) bool) *Type {
	return &Type{Check: check, name: name}
}

// Of resolves an arbitrary descriptor value into a Type:
// an existing *Type passes through, a Kind wraps, a kind-name string
// parses, a mapping becomes a traversable object type, and a func(any)
// bool becomes a predicate.
func Of(v any) (*Type, error) {
	switch tv := v.(type) {
	case nil:
		return Any(), nil
	case *Type:
		return tv, nil
	case Kind:
		return &Type{Kind: tv}, nil
	case string:
		return parseKindName(tv)
	case map[string]any:
		fields := make(map[string]*Type, len(tv))
		for k, fv := range tv {
			ft, err := Of(fv)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			fields[k] = ft
		}
		return Object(fields), nil
	case func(any) bool:
		return Predicate("predicate", tv), nil
	default:
		return nil, fmt.Errorf("schema: cannot derive a type from %T", v)
	}
}

func parseKindName(s string) (*Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "":
		return Any(), nil
	case "string":
		return StringT(), nil
	case "number":
		return Number(), nil
	case "int", "integer":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool", "boolean":
		return Bool(), nil
	case "array", "list":
		return Array(), nil
	case "object", "map", "struct":
		return Object(nil), nil
	case "func", "function":
		return Func(), nil
	default:
		return nil, fmt.Errorf("schema: unknown type name %q", s)
	}
}

// Validate reports whether v satisfies t. It is total: any value,
// including nil, yields a boolean and never a panic.
func Validate(t *Type, v any) bool {
	if t == nil {
		return true
	}
	if t.Check != nil {
		return t.Check(v)
	}
	switch t.Kind {
	case KindAny:
		return true
	case KindString:
		return is.String(v)
	case KindNumber:
		return is.Number(v)
	case KindInt:
		return is.Int(v)
	case KindFloat:
		return is.Float(v)
	case KindBool:
		return is.Bool(v)
	case KindArray:
		return is.Array(v)
	case KindFunc:
		return is.Func(v)
	case KindObject:
		m, ok := v.(map[string]any)
		if !ok {
			return is.Map(v) && len(t.Fields) == 0
		}
		for name, ft := range t.Fields {
			fv, present := m[name]
			if !present || !Validate(ft, fv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
