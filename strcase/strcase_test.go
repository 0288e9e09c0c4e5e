package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bg-color", "bgColor"},
		{"set stock", "setStock"},
		{"snake_case_name", "snakeCaseName"},
		{"dotted.name", "dottedName"},
		{"alreadyCamel", "alreadyCamel"},
		{"Single", "single"},
		{"a--b", "aB"},
		{"", ""},
		{"-", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Camel(tt.in), "Camel(%q)", tt.in)
	}
}

func TestPascal(t *testing.T) {
	assert.Equal(t, "BgColor", Pascal("bg-color"))
	assert.Equal(t, "MyURL", Pascal("myURL"))
	assert.Equal(t, "", Pascal(""))
}

func TestShorthandNames(t *testing.T) {
	assert.Equal(t, "getColor", GetterName("color"))
	assert.Equal(t, "setColor", SetterName("color"))
	assert.Equal(t, "getBgColor", GetterName("bg-color"))
	assert.Equal(t, "setBgColor", SetterName("bg-color"))
}
