package parser

import (
	"strings"

	"github.com/pacer/stubgen/internal/stub/lexer"
)

// peek returns the current token without consuming it, or nil at the end of
// the stream. The pointer aliases the parser's token slice, so it stays
// valid after the cursor moves on.
func (p Parser) peek() *lexer.Token {
	if p.index >= p.size {
		return nil
	}

	return &p.tokens[p.index]
}

// nextToken advances the cursor by one token.
func (p *Parser) nextToken() {
	p.index++
}

// accept reports whether the current token has the given kind.
func (p Parser) accept(kind lexer.Kind) bool {
	if p.index >= p.size {
		return false
	}

	return p.tokens[p.index].ID == kind
}

// expect consumes the current token if it has the given kind.
func (p *Parser) expect(kind lexer.Kind) bool {
	if p.accept(kind) {
		p.nextToken()
		return true
	}

	return false
}

// skipToNextLine advances the cursor past the next newline token.
func (p *Parser) skipToNextLine() {
	for p.peek() != nil {
		if p.expect(lexer.Newline) {
			return
		}

		p.nextToken()
	}
}

// parseTextBlock consumes tokens up to a blank line or the end of input and
// joins the words with single spaces. A lone newline does not end the block:
// the word after it starts a new line inside the text, carrying a literal
// "\n" prefix instead of the joining space.
func (p *Parser) parseTextBlock() string {
	var parts []string

	for {
		token := p.peek()
		if token == nil {
			break
		}

		p.nextToken()

		switch token.ID {
		case lexer.Empty:
			continue
		case lexer.Word:
			parts = append(parts, token.Value)
			continue
		}

		// Newline. A second one right behind it closes the block; anything
		// else continues it on a fresh line.
		next := p.nextNonEmpty()
		if next == nil || next.ID == lexer.Newline {
			break
		}

		parts = append(parts, "\n"+next.Value)
	}

	return strings.Join(parts, " ")
}

// nextNonEmpty consumes tokens until one that is not empty, returning it,
// or nil at the end of input.
func (p *Parser) nextNonEmpty() *lexer.Token {
	for {
		token := p.peek()
		if token == nil {
			return nil
		}

		p.nextToken()

		if token.ID != lexer.Empty {
			return token
		}
	}
}

// parseInputComments collects variable descriptions until a blank line.
// Only lines led by a word ending in ":" count as descriptions; any other
// line is skipped whole.
func (p *Parser) parseInputComments() []InputComment {
	var comments []InputComment

	for {
		token := p.peek()
		if token == nil {
			return comments
		}

		p.nextToken()

		if token.ID == lexer.Newline {
			return comments
		}

		if token.ID == lexer.Empty {
			continue
		}

		variable, found := strings.CutSuffix(token.Value, ":")
		if !found {
			p.skipToNextLine()
			continue
		}

		comments = append(comments, InputComment{
			Variable: variable,
			Comment:  p.readToEndOfLine(),
		})
	}
}

// readToEndOfLine joins the words remaining on the current line, consuming
// the terminating newline.
func (p *Parser) readToEndOfLine() string {
	var words []string

	for {
		token := p.peek()
		if token == nil {
			break
		}

		p.nextToken()

		if token.ID == lexer.Newline {
			break
		}

		if token.ID == lexer.Empty {
			continue
		}

		words = append(words, token.Value)
	}

	return strings.Join(words, " ")
}
