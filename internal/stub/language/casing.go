package language

import (
	"regexp"
	"strings"
)

// VariableFormat is the identifier convention of a target language.
type VariableFormat int

const (
	SnakeCase VariableFormat = iota
	CamelCase
	PascalCase
)

func (f VariableFormat) String() string {
	switch f {
	case SnakeCase:
		return "snake_case"
	case CamelCase:
		return "camel_case"
	case PascalCase:
		return "pascal_case"
	}

	return "unknown"
}

var (
	snakeWordBreak  = regexp.MustCompile(`([a-z])([A-Z])`)
	pascalWordBreak = regexp.MustCompile(`([A-Z]*)([A-Z][a-z])`)
	pascalWordEnd   = regexp.MustCompile(`([A-Z])([A-Z]*)$`)
)

// Convert reformats an identifier according to the convention. Word
// segmentation comes from the existing capitalization boundaries, so the
// conversion is stable: converting an already-converted name is a no-op.
func (f VariableFormat) Convert(name string) string {
	switch f {
	case SnakeCase:
		return convertToSnakeCase(name)
	case CamelCase:
		return convertToCamelCase(name)
	case PascalCase:
		return convertToPascalCase(name)
	}

	panic("unknown variable format")
}

func convertToSnakeCase(name string) string {
	broken := snakeWordBreak.ReplaceAllString(name, "${1}_${2}")

	return strings.ToLower(broken)
}

func convertToCamelCase(name string) string {
	if name == "" {
		return ""
	}

	return strings.ToLower(name[:1]) + pascalize(name[1:])
}

func convertToPascalCase(name string) string {
	if name == "" {
		return ""
	}

	return strings.ToUpper(name[:1]) + pascalize(name[1:])
}

// pascalize normalizes everything after the first character: an uppercase
// run followed by a new word is lowered so only the word's first letter
// keeps its case, and a trailing uppercase run keeps just its first letter.
// "TTPServer" becomes "ttpServer" and "arseHTTP" becomes "arseHttp".
func pascalize(tail string) string {
	broken := pascalWordBreak.ReplaceAllStringFunc(tail, func(match string) string {
		head := match[:len(match)-2]

		return strings.ToLower(head) + match[len(match)-2:]
	})

	return pascalWordEnd.ReplaceAllStringFunc(broken, func(match string) string {
		return match[:1] + strings.ToLower(match[1:])
	})
}
