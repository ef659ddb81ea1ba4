package pyscan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const tabSize = 8

// Tokenize performs a lexical scan of Python source lines. Lines carry no
// trailing newline characters and rows are 1-based relative to lines[0],
// so the same scanner works on a whole module or on a fragment starting at
// a definition.
//
// Scans are lenient: an inconsistent dedent, an unterminated string, or a
// stray character does not produce an error. The token stream simply ends
// at that point and callers see a truncated scan.
func Tokenize(lines []string) []Token {
	s := &scanner{lines: lines, indents: []int{0}}
	s.run()
	return s.tokens
}

type scanner struct {
	lines   []string
	tokens  []Token
	indents []int
	depth   int
	stopped bool
}

func (s *scanner) emit(kind Kind, value string, start, end Pos) {
	s.tokens = append(s.tokens, Token{Kind: kind, Value: value, Start: start, End: end})
}

func (s *scanner) run() {
	row := 0
	for row < len(s.lines) && !s.stopped {
		if s.depth == 0 {
			var ok bool
			row, ok = s.scanIndent(row)
			if !ok {
				continue
			}
		}
		row = s.scanLogical(row, s.indentWidth(s.lines[row]))
	}
	end := Pos{Row: len(s.lines) + 1, Col: 0}
	for len(s.indents) > 1 {
		s.indents = s.indents[:len(s.indents)-1]
		s.emit(Dedent, "", end, end)
	}
}

// indentWidth returns the byte offset of the first non-whitespace
// character.
func (s *scanner) indentWidth(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return len(line)
}

// indentColumns expands tabs to the next multiple of tabSize.
func indentColumns(indent string) int {
	col := 0
	for i := 0; i < len(indent); i++ {
		if indent[i] == '\t' {
			col = col/tabSize*tabSize + tabSize
		} else {
			col++
		}
	}
	return col
}

// scanIndent handles the start of a logical line at bracket depth zero.
// Blank and comment-only lines are consumed here and do not affect the
// indent stack. The bool result reports whether row now begins a logical
// line that scanLogical should process.
func (s *scanner) scanIndent(row int) (int, bool) {
	line := s.lines[row]
	width := s.indentWidth(line)
	rest := line[width:]

	if rest == "" || strings.HasPrefix(rest, "#") {
		if rest != "" {
			s.emit(Comment, rest,
				Pos{Row: row + 1, Col: width},
				Pos{Row: row + 1, Col: len(line)})
		}
		eol := Pos{Row: row + 1, Col: len(line)}
		s.emit(NL, "", eol, eol)
		return row + 1, false
	}

	cols := indentColumns(line[:width])
	top := s.indents[len(s.indents)-1]
	start := Pos{Row: row + 1, Col: 0}
	if cols > top {
		s.indents = append(s.indents, cols)
		s.emit(Indent, line[:width], start, Pos{Row: row + 1, Col: width})
		return row, true
	}
	for cols < s.indents[len(s.indents)-1] {
		s.indents = s.indents[:len(s.indents)-1]
		s.emit(Dedent, "", start, start)
	}
	if cols != s.indents[len(s.indents)-1] {
		s.stopped = true
		return row, false
	}
	return row, true
}

// scanLogical scans one logical line, which may span physical lines via
// brackets, backslash continuations, or triple-quoted strings. It returns
// the row following the logical line.
func (s *scanner) scanLogical(row, col int) int {
	for {
		line := s.lines[row]
		for col < len(line) {
			c := line[col]
			switch {
			case c == ' ' || c == '\t':
				col++
			case c == '#':
				s.emit(Comment, line[col:],
					Pos{Row: row + 1, Col: col},
					Pos{Row: row + 1, Col: len(line)})
				col = len(line)
			case c == '\\' && col == len(line)-1:
				// Explicit continuation joins the next physical
				// line with no token.
				if row+1 >= len(s.lines) {
					s.stopped = true
					return row + 1
				}
				row++
				line = s.lines[row]
				col = 0
			case isIdentStart(line[col:]):
				var ok bool
				row, col, ok = s.scanNameOrString(row, col)
				if !ok {
					return row + 1
				}
				line = s.lines[row]
			case c == '"' || c == '\'':
				var ok bool
				row, col, ok = s.scanString(row, col, col)
				if !ok {
					return row + 1
				}
				line = s.lines[row]
			case c >= '0' && c <= '9' || c == '.' && col+1 < len(line) && line[col+1] >= '0' && line[col+1] <= '9':
				col = s.scanNumber(row, col)
			default:
				var ok bool
				col, ok = s.scanOp(row, col)
				if !ok {
					s.stopped = true
					return row + 1
				}
			}
		}

		eol := Pos{Row: row + 1, Col: len(line)}
		if s.depth > 0 {
			s.emit(NL, "", eol, eol)
			if row+1 >= len(s.lines) {
				return row + 1
			}
			row++
			col = 0
			continue
		}
		s.emit(Newline, "", eol, eol)
		return row + 1
	}
}

func isIdentStart(rest string) bool {
	r, _ := utf8.DecodeRuneInString(rest)
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanNameOrString scans an identifier, emitting a string token instead
// when the identifier is a string prefix directly followed by a quote.
func (s *scanner) scanNameOrString(row, col int) (int, int, bool) {
	line := s.lines[row]
	end := col
	for end < len(line) {
		r, size := utf8.DecodeRuneInString(line[end:])
		if !isIdentRune(r) {
			break
		}
		end += size
	}
	name := line[col:end]
	if end < len(line) && (line[end] == '"' || line[end] == '\'') && isStringPrefix(name) {
		return s.scanString(row, col, end)
	}
	s.emit(Name, name,
		Pos{Row: row + 1, Col: col},
		Pos{Row: row + 1, Col: end})
	return row, end, true
}

func isStringPrefix(name string) bool {
	if len(name) > 3 {
		return false
	}
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		default:
			return false
		}
	}
	return true
}

// scanString scans a string literal whose prefix starts at start and whose
// opening quote is at quote. Triple-quoted strings may cross physical
// lines. The bool result is false when the literal is unterminated, which
// ends the scan.
func (s *scanner) scanString(row, start, quote int) (int, int, bool) {
	line := s.lines[row]
	q := line[quote]
	delim := string(q)
	col := quote + 1
	if strings.HasPrefix(line[quote:], delim+delim+delim) {
		delim = strings.Repeat(delim, 3)
		col = quote + 3
	}
	triple := len(delim) == 3
	startPos := Pos{Row: row + 1, Col: start}
	var text strings.Builder
	text.WriteString(line[start:col])

	for {
		for col < len(line) {
			if line[col] == '\\' && col+1 < len(line) {
				text.WriteString(line[col : col+2])
				col += 2
				continue
			}
			if strings.HasPrefix(line[col:], delim) {
				col += len(delim)
				text.WriteString(delim)
				s.emit(String, text.String(), startPos, Pos{Row: row + 1, Col: col})
				return row, col, true
			}
			text.WriteByte(line[col])
			col++
		}
		if !triple {
			// A single-quoted literal crosses a line end only via a
			// trailing backslash continuation.
			if len(line) == 0 || line[len(line)-1] != '\\' {
				s.stopped = true
				return row, col, false
			}
		}
		if row+1 >= len(s.lines) {
			s.stopped = true
			return row, col, false
		}
		row++
		line = s.lines[row]
		col = 0
		text.WriteString("\n")
	}
}

func (s *scanner) scanNumber(row, col int) int {
	line := s.lines[row]
	end := col
	for end < len(line) {
		c := line[end]
		switch {
		case c >= '0' && c <= '9', c == '.', c == '_',
			c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			end++
		case (c == '+' || c == '-') && end > col &&
			(line[end-1] == 'e' || line[end-1] == 'E') &&
			end+1 < len(line) && line[end+1] >= '0' && line[end+1] <= '9':
			end++
		default:
			goto done
		}
	}
done:
	s.emit(Number, line[col:end],
		Pos{Row: row + 1, Col: col},
		Pos{Row: row + 1, Col: end})
	return end
}

var multiOps = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"**", "//", ">>", "<<", "<=", ">=", "==", "!=", "->",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", ":=", "@=",
}

func (s *scanner) scanOp(row, col int) (int, bool) {
	line := s.lines[row]
	value := ""
	for _, op := range multiOps {
		if strings.HasPrefix(line[col:], op) {
			value = op
			break
		}
	}
	if value == "" {
		c := line[col]
		if !strings.ContainsRune("+-*/%@<>=&|^~(){}[],:.;!?$`", rune(c)) {
			return col, false
		}
		value = string(c)
	}
	switch value {
	case "(", "[", "{":
		s.depth++
	case ")", "]", "}":
		if s.depth > 0 {
			s.depth--
		}
	}
	s.emit(Op, value,
		Pos{Row: row + 1, Col: col},
		Pos{Row: row + 1, Col: col + len(value)})
	return col + len(value), true
}
