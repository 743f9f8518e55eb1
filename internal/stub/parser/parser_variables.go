package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pacer/stubgen/internal/stub/lexer"
)

// varTypePattern matches the parameterized types: word(n) and string(n)
// declare a capacity alongside the type. The pattern is anchored so trailing
// garbage is rejected rather than silently dropped.
var varTypePattern = regexp.MustCompile(`^(word|string)\((\d+)\)$`)

// parseVariableList consumes name:type declarations until the end of the
// line. Any word without a colon stops the parse; a line may validly declare
// no variables at all.
func (p *Parser) parseVariableList() ([]Var, *ParseError) {
	var variables []Var

	for {
		token := p.peek()
		if token == nil {
			return variables, nil
		}

		p.nextToken()

		switch {
		case token.ID == lexer.Newline:
			return variables, nil
		case token.ID == lexer.Empty:
			continue
		case strings.Contains(token.Value, ":"):
			variable, err := parseVariable(token)
			if err != nil {
				return nil, err
			}

			variables = append(variables, variable)
		default:
			return nil, NewParseError(
				ErrUnexpectedToken,
				token,
				fmt.Errorf("expected a name:type declaration, got %q", token.Value),
			)
		}
	}
}

// parseVariable splits a name:type token into a Var.
func parseVariable(token *lexer.Token) (Var, *ParseError) {
	name, typeSpec, _ := strings.Cut(token.Value, ":")

	if varType, ok := scalarTypesByName[typeSpec]; ok {
		return Var{Name: name, Type: varType}, nil
	}

	captures := varTypePattern.FindStringSubmatch(typeSpec)
	if captures == nil {
		return Var{}, NewParseError(
			ErrUnknownType,
			token,
			fmt.Errorf("unknown variable type in %q", token.Value),
		)
	}

	maxLength, err := strconv.Atoi(captures[2])
	if err != nil {
		return Var{}, NewParseError(
			ErrUnknownType,
			token,
			fmt.Errorf("invalid capacity in %q: %w", token.Value, err),
		)
	}

	varType := TypeWord
	if captures[1] == "string" {
		varType = TypeString
	}

	return Var{Name: name, Type: varType, MaxLength: maxLength}, nil
}
