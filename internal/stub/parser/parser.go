package parser

import (
	"fmt"

	"github.com/pacer/stubgen/internal/stub/lexer"
)

// ---------------------
// Stub Parser interface
// ---------------------

// ParseError describes the first malformed construct found in a token
// stream. Token points at the offending token; it is nil when the stream
// ended where more input was required.
type ParseError struct {
	Kind  ErrKind
	Err   error
	Token *lexer.Token
}

func (e *ParseError) Error() string {
	if e.Token == nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("line %d: %s", e.Token.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Line returns the 1-based source line of the offending token, or 0 when
// the error happened at end of input.
func (e *ParseError) Line() int {
	if e.Token == nil {
		return 0
	}

	return e.Token.Line
}

// NewParseError builds a ParseError of the given kind. token may be nil
// when the stream ended where more input was expected.
func NewParseError(kind ErrKind, token *lexer.Token, err error) *ParseError {
	fresh := &ParseError{
		Kind:  kind,
		Err:   err,
		Token: token,
	}

	return fresh
}

type Parser struct {
	stub   *Stub
	tokens []lexer.Token
	index  int
	size   int
}

// Reset prepares the parser for a fresh token stream.
func (p *Parser) Reset(tokens []lexer.Token) {
	p.stub = &Stub{}
	p.tokens = tokens
	p.index = 0
	p.size = len(tokens)
}

// Parse builds a Stub from the token stream produced by lexer.Tokenize.
// Parsing is fail-fast: the first malformed construct stops the parse and
// comes back as a ParseError. The returned Stub is never nil; on error it
// holds whatever was parsed before the failure.
func Parse(tokens []lexer.Token) (*Stub, *ParseError) {
	parser := Parser{}
	parser.Reset(tokens)

	return parser.parse()
}

func (p *Parser) parse() (*Stub, *ParseError) {
	for {
		token := p.peek()
		if token == nil {
			break
		}

		if token.ID == lexer.Newline || token.ID == lexer.Empty {
			p.nextToken()
			continue
		}

		handler := commandHandlers[token.Value]
		if handler == nil {
			return p.stub, NewParseError(
				ErrUnknownKeyword,
				token,
				fmt.Errorf("unknown stub command %q", token.Value),
			)
		}

		p.nextToken() // skip the keyword itself

		if err := handler(p, token); err != nil {
			return p.stub, err
		}
	}

	return p.stub, nil
}
