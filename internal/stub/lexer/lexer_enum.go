package lexer

// ----------------
// Lexer Token Kind
// ----------------

const (
	// Word is any run of non-space characters: a keyword, a variable
	// declaration or free text. Classification happens in the parser.
	Word Kind = iota

	// Newline marks the end of a source line.
	Newline

	// Empty is the artifact of splitting consecutive spaces. It carries no
	// content and is skipped wherever the parser dispatches on tokens.
	Empty
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Newline:
		return "Newline"
	case Empty:
		return "Empty"
	}

	return "Unknown"
}
