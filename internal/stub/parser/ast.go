package parser

// -------------------
// Stub AST definition
// -------------------

// Stub is the parsed form of one stub definition: the ordered generator
// commands plus the surrounding problem metadata sections.
type Stub struct {
	Commands      []Cmd
	InputComments []InputComment
	OutputComment string
	Statement     string
}

// Cmd is a single generator command. The concrete commands are *ReadCmd,
// *WriteCmd, *LoopCmd and *LoopLineCmd.
type Cmd interface {
	Kind() CmdKind
}

type CmdKind int

type VarType int

// ReadCmd reads one input line into the listed variables.
type ReadCmd struct {
	Variables []Var
}

// WriteCmd emits a literal message on standard output. Message may span
// several lines; embedded line breaks are kept as literal newlines.
type WriteCmd struct {
	Message string
}

// LoopCmd repeats its single body command Count times. Count is kept
// verbatim: it may be a numeric literal or the name of a variable read
// earlier in the stub.
type LoopCmd struct {
	Count   string
	Command Cmd
}

// LoopLineCmd reads variables repeatedly from a single input line,
// iterating Object times.
type LoopLineCmd struct {
	Object    string
	Variables []Var
}

func (c *ReadCmd) Kind() CmdKind     { return KindRead }
func (c *WriteCmd) Kind() CmdKind    { return KindWrite }
func (c *LoopCmd) Kind() CmdKind     { return KindLoop }
func (c *LoopLineCmd) Kind() CmdKind { return KindLoopLine }

// Var is one input variable declared by a read or loopline command.
// MaxLength is only meaningful for TypeWord and TypeString and stays zero
// for every other type.
type Var struct {
	Name      string
	Type      VarType
	MaxLength int
}

// InputComment is a free-form description of one input variable, collected
// from an INPUT section. Variable holds the name as declared in the stub,
// before any naming-convention transformation.
type InputComment struct {
	Variable string
	Comment  string
}
