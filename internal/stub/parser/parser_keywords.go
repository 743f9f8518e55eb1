package parser

import (
	"errors"
	"fmt"

	"github.com/pacer/stubgen/internal/stub/lexer"
)

// commandHandler parses one stub command. It is invoked with the cursor
// positioned right after the command's keyword token and records its result
// on the parser's Stub.
type commandHandler func(p *Parser, keywordToken *lexer.Token) *ParseError

// commandHandlers maps DSL keywords to their parse handlers.
// Initialized in init() to avoid initialization cycle.
var commandHandlers map[string]commandHandler

func init() {
	commandHandlers = map[string]commandHandler{
		KeywordRead:      (*Parser).parseReadCommand,
		KeywordWrite:     (*Parser).parseWriteCommand,
		KeywordLoop:      (*Parser).parseLoopCommand,
		KeywordLoopLine:  (*Parser).parseLoopLineCommand,
		KeywordOutput:    (*Parser).parseOutputCommand,
		KeywordInput:     (*Parser).parseInputCommand,
		KeywordStatement: (*Parser).parseStatementCommand,
	}
}

// parseReadCommand handles the "read" keyword.
func (p *Parser) parseReadCommand(keywordToken *lexer.Token) *ParseError {
	cmd, err := p.parseRead()
	if err != nil {
		return err
	}

	p.stub.Commands = append(p.stub.Commands, cmd)

	return nil
}

// parseWriteCommand handles the "write" keyword.
func (p *Parser) parseWriteCommand(keywordToken *lexer.Token) *ParseError {
	p.stub.Commands = append(p.stub.Commands, p.parseWrite())

	return nil
}

// parseLoopCommand handles the "loop" keyword: a count followed by a single
// read or write body command.
func (p *Parser) parseLoopCommand(keywordToken *lexer.Token) *ParseError {
	count, err := p.parseValueToken(ErrMissingLoopCount, "loop count")
	if err != nil {
		return err
	}

	command, err := p.parseLoopBody()
	if err != nil {
		return err
	}

	p.stub.Commands = append(p.stub.Commands, &LoopCmd{
		Count:   count,
		Command: command,
	})

	return nil
}

// parseLoopLineCommand handles the "loopline" keyword: an object to iterate
// over followed by the variable declarations read on each turn.
func (p *Parser) parseLoopLineCommand(keywordToken *lexer.Token) *ParseError {
	object, err := p.parseValueToken(ErrMissingLoopLineObject, "loopline object")
	if err != nil {
		return err
	}

	variables, err := p.parseVariableList()
	if err != nil {
		return err
	}

	p.stub.Commands = append(p.stub.Commands, &LoopLineCmd{
		Object:    object,
		Variables: variables,
	})

	return nil
}

// parseOutputCommand handles the "OUTPUT" keyword. The text block starts
// right after the keyword, so a comment placed on the following line keeps
// its leading line break.
func (p *Parser) parseOutputCommand(keywordToken *lexer.Token) *ParseError {
	p.stub.OutputComment = p.parseTextBlock()

	return nil
}

// parseInputCommand handles the "INPUT" keyword. The rest of the keyword's
// line is ignored; the following lines describe variables until a blank
// line.
func (p *Parser) parseInputCommand(keywordToken *lexer.Token) *ParseError {
	p.skipToNextLine()
	p.stub.InputComments = append(p.stub.InputComments, p.parseInputComments()...)

	return nil
}

// parseStatementCommand handles the "STATEMENT" keyword. The rest of the
// keyword's line is ignored; the statement text is the block that follows.
func (p *Parser) parseStatementCommand(keywordToken *lexer.Token) *ParseError {
	p.skipToNextLine()
	p.stub.Statement = p.parseTextBlock()

	return nil
}

// parseRead builds a ReadCmd from the declarations on the current line.
// Shared between the top-level handler and loop bodies.
func (p *Parser) parseRead() (Cmd, *ParseError) {
	variables, err := p.parseVariableList()
	if err != nil {
		return nil, err
	}

	return &ReadCmd{Variables: variables}, nil
}

// parseWrite builds a WriteCmd from the text block that follows. Shared
// between the top-level handler and loop bodies.
func (p *Parser) parseWrite() Cmd {
	return &WriteCmd{Message: p.parseTextBlock()}
}

// parseLoopBody parses the single command a loop repeats. Only read and
// write may appear there. Line breaks between the loop count and the body
// keyword are tolerated, so the body may sit on its own line.
func (p *Parser) parseLoopBody() (Cmd, *ParseError) {
	for p.accept(lexer.Empty) || p.accept(lexer.Newline) {
		p.nextToken()
	}

	token := p.peek()
	if token == nil {
		return nil, NewParseError(
			ErrMissingLoopBody,
			nil,
			errors.New("stream ended before the loop body"),
		)
	}

	p.nextToken() // skip the body keyword

	switch token.Value {
	case KeywordRead:
		return p.parseRead()
	case KeywordWrite:
		return p.parseWrite(), nil
	}

	return nil, NewParseError(
		ErrMissingLoopBody,
		token,
		fmt.Errorf("loop body must start with %q or %q, got %q", KeywordRead, KeywordWrite, token.Value),
	)
}

// parseValueToken consumes the next word on the current line. Reaching a
// newline or the end of input first is reported with 'kind'.
func (p *Parser) parseValueToken(kind ErrKind, what string) (string, *ParseError) {
	for p.accept(lexer.Empty) {
		p.nextToken()
	}

	token := p.peek()
	if token == nil || token.ID == lexer.Newline {
		return "", NewParseError(kind, token, errors.New("missing "+what))
	}

	p.nextToken()

	return token.Value, nil
}
