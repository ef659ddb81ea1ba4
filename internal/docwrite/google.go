package docwrite

import (
	"strings"

	"github.com/dshills/docshift/pkg/types"
)

var googleDirectiveTitles = map[types.ElementKind]string{
	types.ElemExample:   "Example",
	types.ElemNote:      "Note",
	types.ElemSeeAlso:   "See Also",
	types.ElemWarning:   "Warning",
	types.ElemReference: "References",
	types.ElemTodo:      "Todo",
}

func (w *Writer) initGoogle() {
	w.sectionHeader = w.googleSectionHeader
	w.styleVar = w.googleVar
	w.writeDirective = w.googleDirective
	w.writeArgs = func() { w.googleArgs("Args", "Keyword Args") }
	w.writeAttributes = w.googleAttributes
	w.writeRaises = w.googleRaises
	w.writeReturns = w.googleReturns
	w.writeRaw = w.writeRawLines
}

// googleHeaderGap writes the blank line that separates a section from what
// precedes it, except directly under the opening quotes.
func (w *Writer) googleHeaderGap() {
	isFirstSection := len(w.output) == 1 && strings.HasSuffix(w.output[0], w.quotes)
	if !isFirstSection && w.output[len(w.output)-1] != "" {
		w.writeLine("", 0, false, false)
	}
}

func (w *Writer) googleSectionHeader(header string) {
	w.googleHeaderGap()
	w.writeLine(header+":", 0, false, false)
}

func (w *Writer) googleDirective(e types.Element) {
	w.googleSectionHeader(googleDirectiveTitles[e.Kind])
	for _, line := range e.Body {
		w.writeLine(line, 1, false, false)
	}
}

func (w *Writer) googleArgs(argsHeader, keywordsHeader string) {
	var args, keywords []*types.Field
	for _, arg := range w.doc.Args.Fields() {
		if w.cfg.SeparateKeywords && arg.Optional {
			keywords = append(keywords, arg)
		} else {
			args = append(args, arg)
		}
	}
	if len(args) > 0 {
		w.sectionHeader(argsHeader)
		for _, arg := range args {
			w.styleVar(arg, true)
		}
	}
	if len(keywords) > 0 {
		w.sectionHeader(keywordsHeader)
		for _, keyword := range keywords {
			w.styleVar(keyword, false)
		}
	}
}

// variadicName prefixes the star markers back onto variadic parameter
// names.
func (w *Writer) variadicName(f *types.Field) string {
	name := f.Name
	if name == w.vararg {
		name = "*" + name
	}
	if f.Name == w.kwarg {
		name = "**" + name
	}
	return name
}

func (w *Writer) googleVar(f *types.Field, useOptional bool) {
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
		kind = " (" + kind + ")"
	}

	header := name + kind
	if len(f.Desc) > 0 {
		w.writeDesc(f.Desc, header+":", 1, true)
	} else {
		w.writeLine(header, 1, false, false)
	}
}

func (w *Writer) googleAttributes() {
	w.sectionHeader("Attributes")
	for _, attr := range w.doc.Attributes.Fields() {
		w.styleVar(attr, false)
	}
}

func (w *Writer) googleRaises() {
	w.sectionHeader("Raises")
	for _, f := range w.doc.Raises {
		kind := w.typeText(f.Kind)
		if len(f.Desc) > 0 {
			header := ""
			if kind != "" {
				header = kind + ":"
			}
			w.writeDesc(f.Desc, header, 1, true)
		} else {
			w.writeLine(kind, 1, false, false)
		}
	}
}

func (w *Writer) googleReturns() {
	w.sectionHeader("Returns")
	kind := w.typeText(w.doc.Return.Kind)
	if len(w.doc.Return.Desc) > 0 {
		header := ""
		if kind != "" {
			header = kind + ":"
		}
		w.writeDesc(w.doc.Return.Desc, header, 1, false)
	} else {
		w.writeLine(kind, 1, false, false)
	}
}
