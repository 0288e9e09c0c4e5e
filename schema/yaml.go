package schema

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a schema document mapping member names to type
// descriptors. Values are kind names ("string", "number", ...) or nested
// mappings, which become traversable object types:
//
//	count: int
//	owner:
//	  name: string
//	  age: number
func FromYAML(data []byte) (map[string]*Type, error) {
	var raw map[string]any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("schema: failed to parse YAML: %w", err)
	}

	types := make(map[string]*Type, len(raw))
	for name, v := range raw {
		t, err := Of(normalizeYAML(v))
		if err != nil {
			return nil, fmt.Errorf("schema: entry %q: %w", name, err)
		}
		types[name] = t
	}
	return types, nil
}

// LoadYAML reads and parses a schema document from disk.
func LoadYAML(path string) (map[string]*Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: failed to read schema file: %w", err)
	}
	return FromYAML(data)
}

// normalizeYAML converts yaml.v3's map[string]interface{} nesting into the
// map[string]any shape Of expects. yaml.v3 already produces string keys for
// mappings with string keys; map[any]any appears only for exotic key types.
func normalizeYAML(v any) any {
	switch m := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(m))
		for k, mv := range m {
			out[k] = normalizeYAML(mv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, mv := range m {
			out[fmt.Sprintf("%v", k)] = normalizeYAML(mv)
		}
		return out
	default:
		return v
	}
}
