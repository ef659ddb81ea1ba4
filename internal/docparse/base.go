package docparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/docshift/internal/lineutil"
	"github.com/dshills/docshift/pkg/types"
)

// startQuoteRe matches an opening string delimiter, optionally prefixed by
// string-kind letters, e.g. `r"""` or `'''`.
var startQuoteRe = regexp.MustCompile(`(\s*)([urbURB]*)("""|'''|"|')`)

// directiveRe matches a reST directive header such as ".. note::".
var directiveRe = regexp.MustCompile(`^\.\. ([^\s:]+)\s*::`)

// directives maps recognized directive names (including aliases) to the
// element kind they produce.
var directives = map[string]types.ElementKind{
	"note":      types.ElemNote,
	"warning":   types.ElemWarning,
	"warn":      types.ElemWarning,
	"see":       types.ElemSeeAlso,
	"seealso":   types.ElemSeeAlso,
	"reference": types.ElemReference,
	"ref":       types.ElemReference,
	"todo":      types.ElemTodo,
	"example":   types.ElemExample,
	"examples":  types.ElemExample,
}

// Parser breaks the lines of one docstring into style-agnostic elements.
// The grammar-specific token recognizer is installed by the style
// constructors (NewRest, NewEpytext); the zero grammar recognizes only reST
// directives and treats everything else as raw text.
type Parser struct {
	doc      *types.Docstring
	cursor   *LineCursor
	keywords map[string]bool

	// indent is the section indent in columns; it is re-derived from the
	// first non-blank content line before token parsing starts.
	indent    int
	rawIndent string
	quotes    string

	startToken string
	trailing   []string

	// parseToken attempts to recognize a token at the current line. It
	// returns ErrNotParsable when the line matches no token grammar.
	parseToken func() error
	// fields dispatches a matched field header to its handler, keyed by the
	// lowercased field name. Populated by the style constructors.
	fields map[string]func(fieldMatch)
}

// NewBase creates a parser that recognizes directives only. keywords lists
// the keyword-parameter names of the owning declaration; fields whose bare
// name appears in it are marked optional.
func NewBase(lines []string, keywords []string) (*Parser, error) {
	p := &Parser{keywords: make(map[string]bool, len(keywords))}
	for _, k := range keywords {
		p.keywords[k] = true
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no lines", types.ErrMalformedDocstring)
	}
	stripped, err := p.stripStart(lines)
	if err != nil {
		return nil, err
	}
	stripped = p.stripEnd(stripped)
	p.cursor = NewLineCursor(stripped)
	p.parseToken = p.parseBaseToken
	return p, nil
}

// RawIndent returns the whitespace that preceded the opening delimiter.
// Writers reuse it as the section indent of the replacement docstring.
func (p *Parser) RawIndent() string {
	return p.rawIndent
}

// Quotes returns the quote delimiter token, without string-kind prefixes.
func (p *Parser) Quotes() string {
	return p.quotes
}

// stripStart locates the opening delimiter on the first line, records the
// section indent and delimiter token, and removes the delimiter from the
// working lines.
func (p *Parser) stripStart(lines []string) ([]string, error) {
	m := startQuoteRe.FindStringSubmatchIndex(lines[0])
	if m == nil {
		return nil, fmt.Errorf("%w: %q", types.ErrMalformedDocstring, lines[0])
	}
	p.rawIndent = lines[0][m[2]:m[3]]
	p.indent = len(p.rawIndent)
	p.quotes = lines[0][m[6]:m[7]]
	p.startToken = lines[0][m[4]:m[5]] + p.quotes
	out := make([]string, len(lines))
	copy(out, lines)
	out[0] = p.rawIndent + lines[0][m[1]:]
	return out, nil
}

// stripEnd scans backward for the closing delimiter. Content before it on
// the same line stays in the body; content after it is saved and re-emitted
// as a trailing raw element. If removing the delimiter leaves the line
// blank, the line is dropped entirely.
func (p *Parser) stripEnd(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	lineNum := len(out) - 1
	for lineNum >= 0 {
		line := lineutil.RStrip(out[lineNum])
		if idx := strings.Index(line, p.quotes); idx >= 0 {
			before := line[:idx]
			out[lineNum] = before
			if lineutil.IsBlank(before) {
				out = append(out[:lineNum], out[lineNum+1:]...)
				lineNum--
			}
			after := lineutil.LStrip(line[idx+len(p.quotes):])
			if after != "" {
				p.trailing = append(p.trailing, after)
			}
			break
		}
		lineNum--
	}
	lineNum++
	if lineNum < len(out) {
		p.trailing = append(p.trailing, out[lineNum:]...)
		out = out[:lineNum]
	}
	return out
}

// currentLine returns the current line stripped of the section indent. An
// all-whitespace line becomes empty; a line not carrying the section indent
// is returned unchanged.
func (p *Parser) currentLine() string {
	line := p.cursor.Peek()
	if line != "" && lineutil.IsBlank(line) {
		return ""
	}
	if lineutil.IsIndented(line, p.indent, false) {
		return lineutil.RStrip(lineutil.Dedent(line, p.indent))
	}
	return line
}

// isTokenIndent reports whether the current line sits exactly at the token
// indent. Only such lines may start a new token.
func (p *Parser) isTokenIndent() bool {
	return lineutil.IsIndented(p.cursor.Peek(), p.indent, true)
}

// Parse walks every line, recognizing tokens where possible and demoting
// everything else to raw elements, and returns the completed docstring.
func (p *Parser) Parse() *types.Docstring {
	p.doc = types.NewDocstring()
	p.doc.AddElement(types.Element{Kind: types.ElemStartQuote, Body: []string{p.startToken}})

	// Re-emit leading blank lines; the first non-blank line sets the token
	// indent for the rest of the document.
	for p.cursor.HasNext() {
		if p.currentLine() != "" {
			p.indent = lineutil.Indent(p.cursor.Peek())
			break
		}
		p.doc.AddElement(types.RawElement(p.currentLine()))
		_, _ = p.cursor.Next()
	}

	for p.cursor.HasNext() {
		if p.isTokenIndent() {
			if err := p.parseToken(); err != nil {
				p.doc.AddElement(types.RawElement(p.currentLine()))
				_, _ = p.cursor.Next()
			}
		} else {
			p.doc.AddElement(types.RawElement(p.currentLine()))
			_, _ = p.cursor.Next()
		}
	}

	p.doc.AddElement(types.Element{Kind: types.ElemEndQuote, Body: []string{p.quotes}})
	if len(p.trailing) > 0 {
		p.doc.AddElement(types.Element{Kind: types.ElemRaw, Body: p.trailing})
	}
	return p.doc
}

// parseBody collects a token's description body: every following line that
// is blank or indented at least bodyIndent columns past the token indent.
// The cursor is rewound past trailing blank lines at the first line that
// ends the body. Collected lines are dedented by their common minimum so
// relative indentation is preserved on a zero baseline.
func (p *Parser) parseBody(bodyIndent, startPos int) []string {
	emptyLines := 0
	var body []string
	cur := p.currentLine()
	first := ""
	if startPos < len(cur) {
		first = lineutil.LStrip(cur[startPos:])
	}
	_, _ = p.cursor.Next()
	for p.cursor.HasNext() {
		line := p.currentLine()
		switch {
		case line == "":
			emptyLines++
		case lineutil.IsIndented(line, bodyIndent, false):
			for range emptyLines {
				body = append(body, "")
			}
			emptyLines = 0
			body = append(body, line)
		default:
			p.cursor.Seek(p.cursor.Pos() - emptyLines)
			emptyLines = -1
		}
		if emptyLines < 0 {
			break
		}
		_, _ = p.cursor.Next()
	}
	body = lineutil.DedentByMinimum(body)
	if first != "" {
		body = append([]string{first}, body...)
	}
	return body
}

// parseDirective collects a directive body and records the element.
func (p *Parser) parseDirective(kind types.ElementKind, headerEnd int) {
	body := p.parseBody(1, headerEnd)
	p.doc.AddElement(types.Element{Kind: kind, Body: body})
}

// parseBaseToken recognizes reST directive headers only.
func (p *Parser) parseBaseToken() error {
	line := p.currentLine()
	if m := directiveRe.FindStringSubmatchIndex(line); m != nil {
		if kind, ok := directives[line[m[2]:m[3]]]; ok {
			p.parseDirective(kind, m[1])
			return nil
		}
	}
	return types.ErrNotParsable
}

// isKeyword reports whether the bare field name (variadic markers stripped)
// is a keyword parameter of the owning declaration.
func (p *Parser) isKeyword(name string) bool {
	return p.keywords[strings.TrimLeft(name, "*")]
}
