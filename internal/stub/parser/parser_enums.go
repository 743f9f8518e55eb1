package parser

// -------------
// Command Kinds
// -------------

const (
	KindRead CmdKind = iota
	KindWrite
	KindLoop
	KindLoopLine
)

// String returns the DSL keyword for the command kind. The renderer relies
// on this doubling as the base name of the command's template file.
func (k CmdKind) String() string {
	switch k {
	case KindRead:
		return KeywordRead
	case KindWrite:
		return KeywordWrite
	case KindLoop:
		return KeywordLoop
	case KindLoopLine:
		return KeywordLoopLine
	}

	panic("unknown command kind")
}

// --------------
// Variable Types
// --------------

const (
	TypeInt VarType = iota
	TypeFloat
	TypeLong
	TypeBool
	TypeWord
	TypeString
)

// String returns the DSL spelling of the variable type.
func (t VarType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeLong:
		return "long"
	case TypeBool:
		return "bool"
	case TypeWord:
		return "word"
	case TypeString:
		return "string"
	}

	panic("unknown variable type")
}

// scalarTypesByName maps the unparameterized type spellings to their
// VarType. The word(n) and string(n) forms carry a capacity and are matched
// separately.
var scalarTypesByName = map[string]VarType{
	"int":   TypeInt,
	"float": TypeFloat,
	"long":  TypeLong,
	"bool":  TypeBool,
}

// ------------
// DSL Keywords
// ------------

const (
	KeywordRead      = "read"
	KeywordWrite     = "write"
	KeywordLoop      = "loop"
	KeywordLoopLine  = "loopline"
	KeywordOutput    = "OUTPUT"
	KeywordInput     = "INPUT"
	KeywordStatement = "STATEMENT"
)

// -----------------
// Parse Error Kinds
// -----------------

type ErrKind int

const (
	ErrUnknownKeyword ErrKind = iota
	ErrUnknownType
	ErrMissingLoopCount
	ErrMissingLoopBody
	ErrMissingLoopLineObject
	ErrUnexpectedToken
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnknownKeyword:
		return "unknown keyword"
	case ErrUnknownType:
		return "unknown type"
	case ErrMissingLoopCount:
		return "missing loop count"
	case ErrMissingLoopBody:
		return "missing loop body"
	case ErrMissingLoopLineObject:
		return "missing loopline object"
	case ErrUnexpectedToken:
		return "unexpected token"
	}

	return "unknown error"
}
