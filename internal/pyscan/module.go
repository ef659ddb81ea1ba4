package pyscan

import (
	"github.com/dshills/docshift/pkg/types"
)

type stmtKind int

const (
	stmtOther stmtKind = iota
	stmtDef
	stmtClass
	stmtAssign
	stmtString
)

// statement is one logical statement with its nested suite. Start is the
// 0-based line of the first token; End is 0-based exclusive and, for
// string statements, ends at the last string literal rather than the
// physical line.
type statement struct {
	kind   stmtKind
	start  int
	end    int
	header []Token
	suite  []*statement
}

// buildTree groups a token scan into nested statements using the indent
// and dedent tokens. Comments and non-logical newlines are dropped.
func buildTree(tokens []Token) []*statement {
	var root []*statement
	stack := []*[]*statement{&root}
	var last *statement
	var cur []Token

	for i := range tokens {
		tok := tokens[i]
		switch tok.Kind {
		case Comment, NL:
		case Indent:
			if last != nil {
				stack = append(stack, &last.suite)
			} else {
				// An indented first statement has no parent;
				// collect its suite into a discarded slice.
				stack = append(stack, &[]*statement{})
			}
			last = nil
		case Dedent:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case Newline:
			if len(cur) > 0 {
				st := classify(cur)
				top := stack[len(stack)-1]
				*top = append(*top, st)
				last = st
				cur = nil
			}
		default:
			cur = append(cur, tok)
		}
	}
	return root
}

func classify(toks []Token) *statement {
	st := &statement{
		kind:  stmtOther,
		start: toks[0].Start.Row - 1,
		end:   toks[len(toks)-1].End.Row,
	}

	first := toks[0]
	if first.Kind == Name {
		switch {
		case first.Value == "def",
			first.Value == "async" && len(toks) > 1 && toks[1].Value == "def":
			st.kind = stmtDef
			st.header = toks
			return st
		case first.Value == "class":
			st.kind = stmtClass
			st.header = toks
			return st
		}
	}

	allString := true
	for _, t := range toks {
		if t.Kind != String {
			allString = false
			break
		}
	}
	if allString {
		st.kind = stmtString
		return st
	}

	// A plain assignment has "=" at bracket depth zero with no earlier
	// ":" there. Annotated assignments and compound statement headers
	// both hit the colon first and are excluded.
	depth := 0
	for _, t := range toks {
		if t.Kind != Op {
			continue
		}
		switch t.Value {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case ":":
			if depth == 0 {
				return st
			}
		case "=":
			if depth == 0 {
				st.kind = stmtAssign
				return st
			}
		}
	}
	return st
}

// Locator finds every docstring in a Python module: the module docstring,
// def and class docstrings, and string literals documenting a preceding
// assignment.
type Locator struct {
	lines    []string
	captures []types.RawCapture
}

// NewLocator builds a locator over source lines without trailing newlines.
func NewLocator(lines []string) *Locator {
	return &Locator{lines: lines}
}

// Locate returns the docstring captures in source order. Line ranges are
// 0-based and end-exclusive, covering exactly the string literal.
func (l *Locator) Locate() []types.RawCapture {
	l.captures = nil
	tokens := Tokenize(l.lines)
	tree := buildTree(tokens)

	stream := NewStream(tokens)
	if start, end, ok := l.findDocstring(stream, 0); ok {
		l.capture(start, end, nil, nil, "", "")
	}
	l.walk(tree)
	return l.captures
}

func (l *Locator) capture(start, end int, args, keywords []string, vararg, kwarg string) {
	l.captures = append(l.captures, types.RawCapture{
		StartLine: start,
		EndLine:   end,
		Lines:     l.lines[start:end],
		Args:      args,
		Keywords:  keywords,
		VarArg:    vararg,
		KwArg:     kwarg,
	})
}

func (l *Locator) walk(suite []*statement) {
	for i, st := range suite {
		switch st.kind {
		case stmtDef:
			if start, end, ok := l.parseDefinition(st.start); ok {
				sig := parseSignature(st.header)
				l.capture(start, end, sig.args, sig.keywords, sig.vararg, sig.kwarg)
			}
			l.walk(st.suite)
		case stmtClass:
			if start, end, ok := l.parseDefinition(st.start); ok {
				l.capture(start, end, nil, nil, "", "")
			}
			l.walk(st.suite)
		case stmtAssign:
			if i+1 < len(suite) && suite[i+1].kind == stmtString {
				s := suite[i+1]
				l.capture(s.start, s.end, nil, nil, "", "")
			}
		default:
			l.walk(st.suite)
		}
	}
}

// parseDefinition rescans from the def or class line, steps over the
// header to its logical newline, and expects an indented suite whose
// first statement may be the docstring.
func (l *Locator) parseDefinition(start int) (int, int, bool) {
	stream := NewStream(Tokenize(l.lines[start:]))
	stream.SkipUntilValue("def", "class")
	for stream.Current() != nil {
		if stream.Current().Kind == Newline {
			stream.Next()
			stream.Skip(Comment, NL, Newline)
			cur := stream.Current()
			if cur == nil || cur.Kind != Indent {
				return 0, 0, false
			}
			stream.Next()
			return l.findDocstring(stream, start)
		}
		stream.Next()
	}
	return 0, 0, false
}

// findDocstring reports the 0-based exclusive line span of a string
// literal at the stream position. Rows in the stream are relative to
// start.
func (l *Locator) findDocstring(stream *Stream, start int) (int, int, bool) {
	stream.Skip(Comment, NL, Newline)
	cur := stream.Current()
	if cur == nil || cur.Kind != String {
		return 0, 0, false
	}
	offset := start - 1
	return cur.Start.Row + offset, cur.End.Row + offset + 1, true
}
