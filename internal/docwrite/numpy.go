package docwrite

import (
	"strings"

	"github.com/dshills/docshift/pkg/types"
)

var numpyDirectiveTitles = map[types.ElementKind]string{
	types.ElemExample:   "Examples",
	types.ElemNote:      "Notes",
	types.ElemSeeAlso:   "See Also",
	types.ElemWarning:   "Warnings",
	types.ElemReference: "References",
	types.ElemTodo:      "Todo",
}

func (w *Writer) initNumpy() {
	w.sectionHeader = w.numpySectionHeader
	w.styleVar = w.numpyVar
	w.writeDirective = w.numpyDirective
	w.writeArgs = func() { w.googleArgs("Parameters", "Keyword Arguments") }
	w.writeAttributes = w.googleAttributes
	w.writeRaises = w.numpyRaises
	w.writeReturns = w.numpyReturns
	w.writeRaw = w.numpyRaw
}

// numpySectionHeader writes an underlined section title.
func (w *Writer) numpySectionHeader(header string) {
	w.googleHeaderGap()
	w.writeLine(header, 0, false, false)
	w.writeLine(strings.Repeat("-", len(header)), 0, false, false)
}

func (w *Writer) numpyDirective(e types.Element) {
	w.numpySectionHeader(numpyDirectiveTitles[e.Kind])
	for _, line := range e.Body {
		w.writeLine(line, 0, false, false)
	}
}

func (w *Writer) numpyVar(f *types.Field, useOptional bool) {
	name := w.variadicName(f)
	optional := ""
	if useOptional && w.cfg.UseOptional && f.Optional {
		optional = "optional"
	}
	kind := ""
	if w.cfg.UseTypes {
		kind = f.Kind
	}
	kind = joinNonEmpty(", ", w.typeText(kind), optional)
	if kind != "" {
		kind = " : " + kind
	}

	w.writeLine(name+kind, 0, false, false)
	if len(f.Desc) > 0 {
		w.writeDesc(f.Desc, "", 1, false)
	}
}

func (w *Writer) numpyRaises() {
	w.numpySectionHeader("Raises")
	for _, f := range w.doc.Raises {
		if kind := w.typeText(f.Kind); kind != "" {
			w.writeLine(kind, 0, false, false)
		}
		if len(f.Desc) > 0 {
			w.writeDesc(f.Desc, "", 1, false)
		}
	}
}

func (w *Writer) numpyReturns() {
	w.numpySectionHeader("Returns")
	kind := w.typeText(w.doc.Return.Kind)
	// The return type line is mandatory in this layout.
	if kind == "" {
		kind = "unknown"
	}
	w.writeLine(kind, 0, false, false)
	if len(w.doc.Return.Desc) > 0 {
		w.writeDesc(w.doc.Return.Desc, "", 1, false)
	}
}

// previousElement returns the nearest preceding element that is not a raw
// element of blank lines.
func (w *Writer) previousElement() *types.Element {
	var el *types.Element
	for prev := w.currentElement - 1; prev >= 0; prev-- {
		el = &w.doc.Elements[prev]
		if el.Kind != types.ElemRaw {
			break
		}
		hasText := false
		for _, line := range el.Body {
			if strings.TrimSpace(line) != "" {
				hasText = true
				break
			}
		}
		if hasText {
			break
		}
	}
	return el
}

// numpyRaw writes raw lines, first padding with blank lines when the text
// follows a section. Sections in this layout are not indented, so two
// blanks are needed to end one.
func (w *Writer) numpyRaw(lines []string) {
	hasText := false
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			hasText = true
			break
		}
	}
	prev := w.previousElement()
	if hasText && prev != nil && (prev.Kind.IsDirective() || prev.Kind.IsSection()) {
		w.writeLine("", 0, false, false)
		w.writeLine("", 0, false, true)
	}
	for _, line := range lines {
		appendPrev := w.elementsWritten == 1 && w.cfg.FirstLine
		w.writeLine(line, 0, appendPrev, false)
	}
}
