package pyscan

// Kind classifies a lexical token.
type Kind int

const (
	// Name is an identifier or keyword.
	Name Kind = iota
	// Number is a numeric literal.
	Number
	// String is a string literal, including any prefix letters and both
	// delimiters. Triple-quoted strings may span lines.
	String
	// Op is an operator or punctuation token. Multi-character operators
	// are emitted as a single token.
	Op
	// Comment runs from a hash mark to the end of the physical line.
	Comment
	// NL ends a physical line that does not end a statement: a blank
	// line, a comment-only line, or a line inside brackets.
	NL
	// Newline ends a logical line.
	Newline
	// Indent opens a suite; Dedent closes one.
	Indent
	Dedent
)

func (k Kind) String() string {
	switch k {
	case Name:
		return "name"
	case Number:
		return "number"
	case String:
		return "string"
	case Op:
		return "op"
	case Comment:
		return "comment"
	case NL:
		return "nl"
	case Newline:
		return "newline"
	case Indent:
		return "indent"
	case Dedent:
		return "dedent"
	}
	return "unknown"
}

// Pos is a token position. Row is 1-based relative to the first scanned
// line; Col is a 0-based byte offset.
type Pos struct {
	Row int
	Col int
}

// Token is one lexical token with its source span.
type Token struct {
	Kind  Kind
	Value string
	Start Pos
	End   Pos
}
