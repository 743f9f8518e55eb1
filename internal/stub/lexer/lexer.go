package lexer

import "strings"

// ----------------------
// Lexer Types definition
// ----------------------

type Kind int

// Token is a single unit of a stub definition. The lexer does not classify
// keywords; every non-sentinel word comes out as a plain 'Word' token and the
// parser decides what it means from context.
type Token struct {
	ID    Kind
	Value string
	Line  int
}

// Tokenize splits the stub definition 'source' into a flat token stream.
// Every literal newline is promoted to a standalone 'Newline' token so the
// parser can detect line boundaries and blank lines without re-scanning the
// source; a blank line always comes out as two consecutive 'Newline' tokens.
// Splitting on single spaces preserves empty fields as 'Empty' tokens, which
// the parser skips at every dispatch point.
func Tokenize(source []byte) []Token {
	if len(source) == 0 {
		return nil
	}

	normalized := strings.ReplaceAll(string(source), "\n", " \n ")
	normalized = strings.ReplaceAll(normalized, "\n  \n", "\n \n")

	fields := strings.Split(normalized, " ")
	tokens := make([]Token, 0, len(fields))

	line := 1
	for _, field := range fields {
		token := Token{ID: Word, Value: field, Line: line}

		switch field {
		case "\n":
			token.ID = Newline
			line++
		case "":
			token.ID = Empty
		}

		tokens = append(tokens, token)
	}

	return tokens
}
