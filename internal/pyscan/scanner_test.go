package pyscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeSimpleStatement(t *testing.T) {
	toks := Tokenize([]string{"x = 1"})
	require.Len(t, toks, 4)
	assert.Equal(t, []Kind{Name, Op, Number, Newline}, kinds(toks))
	assert.Equal(t, "x", toks[0].Value)
	assert.Equal(t, "=", toks[1].Value)
	assert.Equal(t, "1", toks[2].Value)
	assert.Equal(t, Pos{Row: 1, Col: 0}, toks[0].Start)
	assert.Equal(t, Pos{Row: 1, Col: 1}, toks[0].End)
}

func TestTokenizeIndentAndDedent(t *testing.T) {
	toks := Tokenize([]string{
		"def func():",
		"    return 1",
		"x = 2",
	})
	var got []Kind
	for _, tok := range toks {
		if tok.Kind == Indent || tok.Kind == Dedent {
			got = append(got, tok.Kind)
		}
	}
	assert.Equal(t, []Kind{Indent, Dedent}, got)
}

func TestTokenizeBlankAndCommentLines(t *testing.T) {
	toks := Tokenize([]string{
		"# leading comment",
		"",
		"x = 1",
	})
	assert.Equal(t, []Kind{Comment, NL, NL, Name, Op, Number, Newline}, kinds(toks))
	assert.Equal(t, "# leading comment", toks[0].Value)
}

func TestTokenizeTrailingComment(t *testing.T) {
	toks := Tokenize([]string{"x = 1  # tail"})
	assert.Equal(t, []Kind{Name, Op, Number, Comment, Newline}, kinds(toks))
	assert.Equal(t, "# tail", toks[3].Value)
}

func TestTokenizeTripleQuotedString(t *testing.T) {
	toks := Tokenize([]string{
		`"""First line.`,
		"",
		`Last line."""`,
	})
	require.Len(t, toks, 2)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, Pos{Row: 1, Col: 0}, toks[0].Start)
	assert.Equal(t, 3, toks[0].End.Row)
	assert.Equal(t, Newline, toks[1].Kind)
}

func TestTokenizeStringPrefix(t *testing.T) {
	toks := Tokenize([]string{`x = rb'\d+'`})
	require.Len(t, toks, 4)
	assert.Equal(t, String, toks[2].Kind)
	assert.Equal(t, `rb'\d+'`, toks[2].Value)
}

func TestTokenizeEscapedQuote(t *testing.T) {
	toks := Tokenize([]string{`s = 'it\'s fine'`})
	require.Len(t, toks, 4)
	assert.Equal(t, String, toks[2].Kind)
	assert.Equal(t, `'it\'s fine'`, toks[2].Value)
}

func TestTokenizeBracketsSuppressNewline(t *testing.T) {
	toks := Tokenize([]string{
		"x = [1,",
		"     2]",
	})
	var newlines, nls int
	for _, tok := range toks {
		switch tok.Kind {
		case Newline:
			newlines++
		case NL:
			nls++
		}
	}
	assert.Equal(t, 1, newlines)
	assert.Equal(t, 1, nls)
}

func TestTokenizeBackslashContinuation(t *testing.T) {
	toks := Tokenize([]string{
		`x = 1 + \`,
		"    2",
	})
	var newlines int
	for _, tok := range toks {
		if tok.Kind == Newline {
			newlines++
		}
	}
	assert.Equal(t, 1, newlines)
}

func TestTokenizeMultiCharOperators(t *testing.T) {
	toks := Tokenize([]string{"x **= y // z != w"})
	var ops []string
	for _, tok := range toks {
		if tok.Kind == Op {
			ops = append(ops, tok.Value)
		}
	}
	assert.Equal(t, []string{"**=", "//", "!="}, ops)
}

func TestTokenizeArrowAnnotation(t *testing.T) {
	toks := Tokenize([]string{"def f(x) -> int:"})
	var ops []string
	for _, tok := range toks {
		if tok.Kind == Op {
			ops = append(ops, tok.Value)
		}
	}
	assert.Equal(t, []string{"(", ")", "->", ":"}, ops)
}

func TestTokenizeInconsistentDedentEndsScan(t *testing.T) {
	toks := Tokenize([]string{
		"def f():",
		"    x = 1",
		"  y = 2",
	})
	// The scan ends at the bad dedent. Everything before it is intact
	// and the open indent is closed out.
	var names []string
	for _, tok := range toks {
		if tok.Kind == Name {
			names = append(names, tok.Value)
		}
	}
	assert.Equal(t, []string{"def", "f", "x"}, names)
	assert.Equal(t, Dedent, toks[len(toks)-1].Kind)
}

func TestTokenizeUnterminatedStringEndsScan(t *testing.T) {
	toks := Tokenize([]string{"x = 'oops"})
	assert.Equal(t, []Kind{Name, Op}, kinds(toks))
}

func TestTokenizeNumberForms(t *testing.T) {
	toks := Tokenize([]string{"a = 0x1f + 1_000 + 1.5e-3 + .25"})
	var nums []string
	for _, tok := range toks {
		if tok.Kind == Number {
			nums = append(nums, tok.Value)
		}
	}
	assert.Equal(t, []string{"0x1f", "1_000", "1.5e-3", ".25"}, nums)
}

func TestStreamSkipAndSkipUntil(t *testing.T) {
	stream := NewStream(Tokenize([]string{
		"# comment",
		"@decorate",
		"def func():",
	}))
	stream.SkipUntilValue("def", "class")
	require.NotNil(t, stream.Current())
	assert.Equal(t, "def", stream.Current().Value)

	stream = NewStream(Tokenize([]string{"", "x = 1"}))
	stream.Skip(Comment, NL, Newline)
	require.NotNil(t, stream.Current())
	assert.Equal(t, "x", stream.Current().Value)
}

func TestStreamExhaustion(t *testing.T) {
	stream := NewStream(nil)
	assert.Nil(t, stream.Current())
	assert.Nil(t, stream.Next())
	stream.SkipUntilValue("def")
	assert.Nil(t, stream.Current())
}
