package docwrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/docshift/internal/config"
	"github.com/dshills/docshift/internal/lineutil"
	"github.com/dshills/docshift/pkg/types"
)

var (
	quoteRe    = regexp.MustCompile(`"""|'''|"|'`)
	backTickRe = regexp.MustCompile("([^\\s`]*)`([^\\s`]+)`")
	markupRe   = regexp.MustCompile(`([IBMC])\{([^}]*)\}`)
)

// Writer renders a Docstring into replacement text lines. The style-specific
// behavior is held in function fields installed by New, so dispatch is by
// table lookup over a closed set of styles.
type Writer struct {
	doc           *types.Docstring
	cfg           config.Output
	sectionIndent string
	vararg        string
	kwarg         string

	output          []string
	elementsWritten int
	quotes          string
	currentElement  int

	indentUnit string
	usingTabs  bool
	maxLength  int

	writeDirective  func(e types.Element)
	writeArgs       func()
	writeAttributes func()
	writeRaises     func()
	writeReturns    func()
	writeRaw        func(lines []string)

	// Shared by the section-header styles, which differ in header and
	// per-field layout.
	sectionHeader func(header string)
	styleVar      func(f *types.Field, useOptional bool)
}

// New creates a writer for the given output style. indent is the original
// section indent of the docstring being replaced; vararg and kwarg name the
// variadic parameters of the owning declaration, if any.
func New(style types.OutputStyle, doc *types.Docstring, indent string, cfg config.Output, vararg, kwarg string) (*Writer, error) {
	w := &Writer{
		doc:           doc,
		cfg:           cfg,
		sectionIndent: indent,
		vararg:        vararg,
		kwarg:         kwarg,
		indentUnit:    cfg.StandardIndent,
		usingTabs:     strings.Contains(cfg.StandardIndent, "\t"),
	}
	w.maxLength = w.calculateMaxLineLength(cfg.MaxLineLength)

	switch style {
	case types.OutputRest:
		w.initRestLike(restTokens)
	case types.OutputEpytext:
		w.initRestLike(epytextTokens)
	case types.OutputGoogle:
		w.initGoogle()
	case types.OutputNumpy:
		w.initNumpy()
	default:
		return nil, fmt.Errorf("%w: output style %q", types.ErrUnsupportedStyle, style)
	}
	return w, nil
}

// Write renders every element of the docstring in document order and
// returns the replacement lines.
func (w *Writer) Write() ([]string, error) {
	w.output = nil
	w.elementsWritten = 0
	for i, e := range w.doc.Elements {
		w.currentElement = i
		switch {
		case e.Kind == types.ElemStartQuote || e.Kind == types.ElemEndQuote:
			w.writeQuotes(e.Kind, e.Body[0])
		case e.Kind.IsDirective():
			w.writeDirective(e)
		case e.Kind == types.ElemArgs:
			w.writeArgs()
		case e.Kind == types.ElemAttributes:
			w.writeAttributes()
		case e.Kind == types.ElemRaises:
			w.writeRaises()
		case e.Kind == types.ElemReturn:
			w.writeReturns()
		case e.Kind == types.ElemRaw:
			w.writeRaw(e.Body)
		default:
			return nil, fmt.Errorf("%w: %q", types.ErrInvalidElement, e.Kind)
		}
	}
	return w.output, nil
}

// calculateMaxLineLength shrinks the configured maximum by the width of the
// section indent, counting tab expansion when the indent unit uses tabs.
func (w *Writer) calculateMaxLineLength(maxLength int) int {
	prefix := len(w.sectionIndent)
	if w.usingTabs {
		prefix *= w.cfg.TabLength
	}
	return maxLength - prefix
}

func (w *Writer) isLongerThanMax(line string, indent int) bool {
	return indent*len(w.cfg.StandardIndent)+len(line) > w.maxLength
}

// writeLine emits one line at the given indent level. Blank lines are
// suppressed directly after the opening quotes and after another blank line
// unless forced. With appendPrev the line is glued onto the previous output
// line instead.
func (w *Writer) writeLine(line string, indent int, appendPrev, force bool) {
	prefix := w.sectionIndent + strings.Repeat(w.indentUnit, indent)
	if line == "" || lineutil.IsBlank(line) {
		afterQuote := w.elementsWritten == 1
		afterBlank := len(w.output) > 0 && w.output[len(w.output)-1] == ""
		if !force && (afterQuote || afterBlank) {
			return
		}
		line = ""
		prefix = ""
	}
	line = lineutil.RStrip(line)
	if appendPrev {
		last := len(w.output) - 1
		w.output[last] = lineutil.RStrip(w.output[last]) + line
	} else {
		w.output = append(w.output, prefix+line)
	}
	w.elementsWritten++
}

// writeRawLines writes raw lines, gluing the first content line onto the
// opening quotes when the first_line option is set.
func (w *Writer) writeRawLines(lines []string) {
	for _, line := range lines {
		appendPrev := w.elementsWritten == 1 && w.cfg.FirstLine
		w.writeLine(w.convertMarkup(line, false), 0, appendPrev, false)
	}
}

// writeDesc writes a description block, optionally led by a header. A
// header that fits within the line limit is joined onto the first
// description line; one that does not gets its own line with the
// description reformatted below it.
func (w *Writer) writeDesc(desc []string, header string, indent int, hanging bool) {
	conv := make([]string, len(desc))
	for i, line := range desc {
		conv[i] = w.convertMarkup(line, false)
	}
	var out []string
	switch {
	case header != "" && w.isLongerThanMax(header, indent):
		w.writeLine(header, indent, false, false)
		next := indent
		if hanging {
			next++
		}
		out = w.reformatLines(conv, next, false)
	case header != "":
		out = w.reformatLines(append([]string{header}, conv...), indent, hanging)
	default:
		out = w.reformatLines(conv, indent, hanging)
	}
	for _, line := range out {
		w.writeLine(line, 0, false, false)
	}
}

// reformatLines indents lines and, when realign is enabled, joins the lines
// up to the first blank or explicitly indented line into one paragraph and
// re-wraps it at the maximum width. With hanging set, lines after the first
// are indented one extra level.
func (w *Writer) reformatLines(lines []string, indent int, hanging bool) []string {
	wrapLength := w.maxLength
	// Tabs count as one character in the line strings, so the wrap width
	// must shrink by their expanded width instead.
	if w.usingTabs {
		hang := 0
		if hanging {
			hang = 1
		}
		wrapLength = w.maxLength - (indent+hang)*w.cfg.TabLength
	}

	replaceTo := 0
	var newLines []string
	initialIndent := indent
	realigning := w.cfg.Realign
	for i, line := range lines {
		if i == 1 && hanging {
			indent++
		}
		if line == "" || lineutil.IsIndented(line, 1, false) {
			realigning = false
		}
		if !realigning {
			newLines = append(newLines, strings.Repeat(w.indentUnit, indent)+line)
		} else {
			replaceTo = i + 1
		}
	}
	if replaceTo > 0 {
		joined := strings.Join(lines[:replaceTo], " ")
		subsequent := initialIndent
		if hanging {
			subsequent = indent
		}
		realigned := wrapText(joined, wrapLength,
			strings.Repeat(w.indentUnit, initialIndent),
			strings.Repeat(w.indentUnit, subsequent))
		newLines = append(realigned, newLines...)
	}
	return newLines
}

// wrapText greedily wraps text at width, prefixing the first line with
// initialIndent and later lines with subsequentIndent. Words longer than
// the available width are broken.
func wrapText(text string, width int, initialIndent, subsequentIndent string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	indent := initialIndent
	cur := ""
	flush := func() {
		if cur != "" {
			lines = append(lines, indent+cur)
			indent = subsequentIndent
			cur = ""
		}
	}
	for _, word := range words {
		for word != "" {
			avail := width - len(indent)
			if avail < 1 {
				avail = 1
			}
			if cur == "" {
				if len(word) <= avail {
					cur = word
					word = ""
				} else {
					cur = word[:avail]
					word = word[avail:]
					flush()
				}
				continue
			}
			if len(cur)+1+len(word) <= avail {
				cur += " " + word
				word = ""
				continue
			}
			flush()
		}
	}
	flush()
	return lines
}

// writeQuotes writes an opening or closing delimiter, substituting the
// configured replacement quote style if one is set. A closing quote written
// while the output is still a single line is glued on, producing a
// one-line docstring.
func (w *Writer) writeQuotes(kind types.ElementKind, quotes string) {
	if w.cfg.ReplaceQuotes != "" {
		quotes = quoteRe.ReplaceAllString(quotes, w.cfg.ReplaceQuotes)
	}
	w.quotes = quotes
	oneLine := kind == types.ElemEndQuote && len(w.output) == 1
	w.writeLine(quotes, 0, oneLine, false)
}

// removeBackTicks strips back-tick pairs from type text according to the
// remove_type_back_ticks mode. In strip-except-directives mode a back-tick
// run preceded by a colon, as in sphinx roles like :py:class:`Name`, is
// left alone; strip-all removes the role prefix as well.
func (w *Writer) removeBackTicks(text string) string {
	if text == "" || w.cfg.RemoveTypeBackTicks == config.BackTicksOff {
		return text
	}
	return backTickRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := backTickRe.FindStringSubmatch(m)
		prefix, inner := sub[1], sub[2]
		if w.cfg.RemoveTypeBackTicks == config.BackTicksAll {
			return inner
		}
		if strings.HasSuffix(prefix, ":") {
			return m
		}
		return prefix + inner
	})
}

// convertMarkup translates bracketed inline markup (I{..}, B{..}, M{..},
// C{..}) to reST equivalents when convert_markup is enabled. In types-only
// mode, code markers inside type annotations are dropped entirely.
func (w *Writer) convertMarkup(text string, inType bool) string {
	if text == "" || w.cfg.ConvertMarkup == config.MarkupOff {
		return text
	}
	return markupRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := markupRe.FindStringSubmatch(m)
		switch sub[1] {
		case "I":
			return "*" + sub[2] + "*"
		case "B":
			return "**" + sub[2] + "**"
		case "M":
			return ":math:`" + sub[2] + "`"
		case "C":
			if !inType || w.cfg.ConvertMarkup != config.MarkupTypesOnly {
				return "``" + sub[2] + "``"
			}
		}
		return sub[2]
	})
}

// typeText applies both type-text transforms to a type annotation.
func (w *Writer) typeText(kind string) string {
	return w.convertMarkup(w.removeBackTicks(kind), true)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
