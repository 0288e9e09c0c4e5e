package schema

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// FromCUE compiles a CUE struct schema and maps each field's kind to a
// type descriptor. Struct fields recurse into traversable object types:
//
//	count: int
//	owner: {
//		name: string
//		age:  number
//	}
//
// Uses the CUE SDK's Go API directly (not a CLI subprocess).
func FromCUE(src string) (map[string]*Type, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("schema: failed to compile CUE: %w", err)
	}
	return typesFromCUE(v)
}

func typesFromCUE(v cue.Value) (map[string]*Type, error) {
	iter, err := v.Fields(cue.Optional(true))
	if err != nil {
		return nil, fmt.Errorf("schema: failed to iterate CUE fields: %w", err)
	}

	types := make(map[string]*Type)
	for iter.Next() {
		name := iter.Label()
		t, err := typeFromCUEValue(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("schema: field %q: %w", name, err)
		}
		types[name] = t
	}
	return types, nil
}

// typeFromCUEValue converts a CUE value's incomplete kind to a Type.
func typeFromCUEValue(v cue.Value) (*Type, error) {
	switch v.IncompleteKind() {
	case cue.StringKind:
		return StringT(), nil
	case cue.IntKind:
		return Int(), nil
	case cue.FloatKind:
		return Float(), nil
	case cue.NumberKind:
		return Number(), nil
	case cue.BoolKind:
		return Bool(), nil
	case cue.ListKind:
		return Array(), nil
	case cue.StructKind:
		fields, err := typesFromCUE(v)
		if err != nil {
			return nil, err
		}
		return Object(fields), nil
	case cue.TopKind:
		return Any(), nil
	default:
		return nil, fmt.Errorf("unsupported CUE kind: %v", v.IncompleteKind())
	}
}
