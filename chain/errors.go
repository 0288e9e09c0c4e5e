package chain

import "fmt"

// ConfigError represents configuration misuse detected while accumulating
// or materializing a spec.
//
// Under config.Lenient misuse is logged and swallowed; under config.Strict
// the first misuse is recorded on the chain and returned from Build.
type ConfigError struct {
	// Code identifies the misuse category.
	Code ConfigErrorCode

	// Message is a human-readable description.
	Message string

	// Name identifies the affected member name, when one is known.
	Name string
}

// ConfigErrorCode categorizes configuration misuse.
type ConfigErrorCode string

const (
	// ErrCodeNoDecorationTarget indicates Decorate was called with no
	// resolvable target (nil argument and no grandparent scope).
	ErrCodeNoDecorationTarget ConfigErrorCode = "NO_DECORATION_TARGET"

	// ErrCodeBadSchemaType indicates a schema entry's value could not be
	// resolved into a type descriptor.
	ErrCodeBadSchemaType ConfigErrorCode = "BAD_SCHEMA_TYPE"

	// ErrCodeBadHandler indicates a handler value had an unusable shape.
	ErrCodeBadHandler ConfigErrorCode = "BAD_HANDLER"
)

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (name=%s)", e.Code, e.Message, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is supports errors.Is matching on the code alone.
func (e *ConfigError) Is(target error) bool {
	other, ok := target.(*ConfigError)
	return ok && other.Code == e.Code
}
