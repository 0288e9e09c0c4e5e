package strcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser capitalizes the first letter of a token. cases.Title is
// locale-sensitive; Und keeps the conversion language-neutral.
var titleCaser = cases.Title(language.Und)

// isDelimiter reports whether r separates tokens in a raw member name.
func isDelimiter(r rune) bool {
	return r == '-' || r == '_' || r == ' ' || r == '.'
}

// split breaks a raw name into tokens on hyphen, underscore, space, and dot.
// Empty tokens (doubled delimiters, leading/trailing) are dropped.
func split(s string) []string {
	return strings.FieldsFunc(s, isDelimiter)
}

// Camel converts a hyphenated, underscored, spaced, or dotted name to
// camel form: "bg-color" -> "bgColor", "set stock" -> "setStock".
// A name with no delimiters only has its first rune lowered, so an
// already-camel name passes through unchanged.
func Camel(s string) string {
	tokens := split(s)
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(lowerFirst(tokens[0]))
	for _, tok := range tokens[1:] {
		b.WriteString(titleCaser.String(tok))
	}
	return b.String()
}

// Pascal converts a name to upper camel form: "bg-color" -> "BgColor".
func Pascal(s string) string {
	tokens := split(s)
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(upperFirst(tok))
	}
	return b.String()
}

// GetterName returns the conventional standalone getter name for a member:
// "color" -> "getColor".
func GetterName(name string) string {
	return "get" + Pascal(name)
}

// SetterName returns the conventional standalone setter name for a member:
// "color" -> "setColor".
func SetterName(name string) string {
	return "set" + Pascal(name)
}

// lowerFirst lowers the first rune of s, preserving the rest.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// upperFirst raises the first rune of s, preserving the rest. Unlike the
// title caser this keeps interior capitals ("myURL" -> "MyURL"), which
// matters for single-token names.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
