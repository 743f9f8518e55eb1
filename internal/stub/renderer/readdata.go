package renderer

import (
	"github.com/pacer/stubgen/internal/stub/language"
	"github.com/pacer/stubgen/internal/stub/parser"
)

// ReadData is the per-variable record handed to the read and loopline
// templates: the convention-adjusted name next to the language's concrete
// spelling of the declared type.
type ReadData struct {
	// Name is the variable name after the language's identifier
	// transformation.
	Name string

	// Type is the abstract DSL type ("int", "word", ...), for templates
	// that branch on it.
	Type string

	// Token is the language's spelling for the type, resolved from the
	// configuration's type_tokens table.
	Token string

	// MaxLength is the declared capacity of word(n) and string(n)
	// variables, zero otherwise.
	MaxLength int

	// Comment is the description collected from the stub's INPUT section,
	// when one was given for this variable.
	Comment string
}

// resolveVariables runs every declared variable through the identifier
// transformation and the type-token table. INPUT comments are matched by
// the declared name, before any transformation.
func (r *Renderer) resolveVariables(variables []parser.Var) []ReadData {
	data := make([]ReadData, 0, len(variables))

	for _, v := range variables {
		data = append(data, ReadData{
			Name:      r.lang.TransformVariableName(v.Name),
			Type:      v.Type.String(),
			Token:     typeToken(r.lang.TypeTokens, v.Type),
			MaxLength: v.MaxLength,
			Comment:   r.comments[v.Name],
		})
	}

	return data
}

// typeToken resolves the language spelling for an abstract variable type.
func typeToken(tokens language.TypeTokens, t parser.VarType) string {
	switch t {
	case parser.TypeInt:
		return tokens.Int
	case parser.TypeFloat:
		return tokens.Float
	case parser.TypeLong:
		return tokens.Long
	case parser.TypeBool:
		return tokens.Bool
	case parser.TypeWord:
		return tokens.Word
	case parser.TypeString:
		return tokens.String
	}

	panic("unknown variable type")
}
