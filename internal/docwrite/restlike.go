package docwrite

import (
	"fmt"

	"github.com/dshills/docshift/pkg/types"
)

// styleTokens parameterizes the two field-token renderers, which differ
// only in their header syntax.
type styleTokens struct {
	directive string
	varToken  string
	field     string
	attrType  string
}

var restTokens = styleTokens{
	directive: ".. %s::",
	varToken:  ":%s %s:",
	field:     ":%s:",
	attrType:  "vartype",
}

var epytextTokens = styleTokens{
	directive: "@%s:",
	varToken:  "@%s %s:",
	field:     "@%s:",
	attrType:  "type",
}

func (w *Writer) initRestLike(tok styleTokens) {
	w.writeDirective = func(e types.Element) { w.restDirective(tok, e) }
	w.writeArgs = func() { w.restArgs(tok) }
	w.writeAttributes = func() { w.restAttributes(tok) }
	w.writeRaises = func() { w.restRaises(tok) }
	w.writeReturns = func() { w.restReturns(tok) }
	w.writeRaw = w.writeRawLines
}

func (w *Writer) restDirective(tok styleTokens, e types.Element) {
	header := fmt.Sprintf(tok.directive, e.Kind)
	for i, line := range e.Body {
		if i == 0 {
			w.writeDesc([]string{line}, header, 0, true)
		} else {
			w.writeLine(line, 1, false, false)
		}
	}
}

// restVar writes one field, then a separate type line when the field
// carries a type or an optional marker.
func (w *Writer) restVar(tok styleTokens, f *types.Field, field string, typeField string, useOptional bool) {
	optional := ""
	if useOptional && w.cfg.UseOptional && f.Optional {
		optional = "optional"
	}
	kind := ""
	if w.cfg.UseTypes {
		kind = f.Kind
	}
	kind = joinNonEmpty(", ", w.typeText(kind), optional)

	w.writeDesc(f.Desc, fmt.Sprintf(tok.varToken, field, f.Name), 0, true)
	if kind != "" {
		w.writeDesc([]string{kind}, fmt.Sprintf(tok.varToken, typeField, f.Name), 0, true)
	}
}

func (w *Writer) restArgs(tok styleTokens) {
	var args, keywords []*types.Field
	for _, arg := range w.doc.Args.Fields() {
		if w.cfg.SeparateKeywords && arg.Optional {
			keywords = append(keywords, arg)
		} else {
			args = append(args, arg)
		}
	}
	for _, arg := range args {
		w.restVar(tok, arg, "param", "type", true)
	}
	for _, keyword := range keywords {
		w.restVar(tok, keyword, "keyword", "type", false)
	}
}

func (w *Writer) restAttributes(tok styleTokens) {
	for _, attr := range w.doc.Attributes.Fields() {
		w.restVar(tok, attr, "var", tok.attrType, false)
	}
}

func (w *Writer) restRaises(tok styleTokens) {
	for _, f := range w.doc.Raises {
		kind := w.typeText(f.Kind)
		w.writeDesc(f.Desc, fmt.Sprintf(tok.varToken, "raises", kind), 0, true)
	}
}

func (w *Writer) restReturns(tok styleTokens) {
	kind := w.typeText(w.doc.Return.Kind)
	if len(w.doc.Return.Desc) > 0 {
		w.writeDesc(w.doc.Return.Desc, fmt.Sprintf(tok.field, "returns"), 0, true)
	}
	if kind != "" {
		w.writeDesc([]string{kind}, fmt.Sprintf(tok.field, "rtype"), 0, true)
	}
}
