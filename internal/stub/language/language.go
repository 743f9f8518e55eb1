// Package language holds the per-target-language knowledge of the stub
// generator: naming conventions, type spellings, reserved words and the
// bundled template sets.
package language

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Language describes one supported target language: how identifiers are
// formatted, how the abstract stub variable types spell in declarations,
// and which identifiers must be escaped because the language reserves them.
type Language struct {
	Name           string         `yaml:"name"`
	VariableFormat VariableFormat `yaml:"variable_format"`

	// AllowUppercaseVars controls what happens to all-uppercase identifiers.
	// Unset means allowed: they bypass the naming convention untouched.
	AllowUppercaseVars *bool `yaml:"allow_uppercase_vars"`

	SourceFileExt string     `yaml:"source_file_ext"`
	TypeTokens    TypeTokens `yaml:"type_tokens"`
	Keywords      []string   `yaml:"keywords"`
	Aliases       []string   `yaml:"aliases"`
}

// TypeTokens maps the abstract stub variable types to their spelling in the
// target language. What a spelling means is up to the language's templates:
// a declaration type for VB or Go, a conversion function for Python, a
// parsing method for Ruby.
type TypeTokens struct {
	Int    string `yaml:"int"`
	Float  string `yaml:"float"`
	Long   string `yaml:"long"`
	Bool   string `yaml:"bool"`
	Word   string `yaml:"word"`
	String string `yaml:"string"`
}

// TransformVariableName adapts a declared variable name to the language's
// naming convention. All-uppercase identifiers are treated as constants and
// bypass the convention, unless the language disallows uppercase variables,
// in which case they are lowercased verbatim. Reserved words are escaped
// last, after any conversion, so a name that converts into a keyword is
// still caught.
func (l *Language) TransformVariableName(name string) string {
	converted := name

	switch {
	case !isUppercaseString(name):
		converted = l.VariableFormat.Convert(name)
	case l.AllowUppercaseVars != nil && !*l.AllowUppercaseVars:
		converted = strings.ToLower(name)
	}

	return l.EscapeKeywords(converted)
}

// EscapeKeywords prefixes an identifier with an underscore when the
// language reserves it.
func (l *Language) EscapeKeywords(name string) string {
	if slices.Contains(l.Keywords, name) {
		return "_" + name
	}

	return name
}

// isUppercaseString reports whether every rune is uppercase. Digits and
// underscores are not uppercase, so mixed identifiers like N1 go through
// the normal conversion.
func isUppercaseString(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}

	return true
}

// variableFormatsByName maps the spellings used in stub_config.yaml.
var variableFormatsByName = map[string]VariableFormat{
	"snake_case":  SnakeCase,
	"camel_case":  CamelCase,
	"pascal_case": PascalCase,
}

// UnmarshalYAML decodes a VariableFormat from its snake_case spelling.
func (f *VariableFormat) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	format, ok := variableFormatsByName[raw]
	if !ok {
		return fmt.Errorf("unknown variable_format %q", raw)
	}

	*f = format

	return nil
}
