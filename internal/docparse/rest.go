package docparse

import (
	"regexp"
	"strings"

	"github.com/dshills/docshift/internal/lineutil"
	"github.com/dshills/docshift/pkg/types"
)

// restFieldRe matches a colon field header such as ":param name type:",
// ":type name:" or ":returns:".
var restFieldRe = regexp.MustCompile(`^:\s*([^\s:]+)\s*([^\s:]*)\s*([^\s:]*)\s*:`)

var (
	restArgFields    = []string{"param", "parameter", "arg", "argument", "key", "keyword", "kwarg", "kwparam"}
	restTypeFields   = []string{"type", "vartype"}
	restRaisesFields = []string{"raise", "raises", "except", "exception"}
	restReturnFields = []string{"return", "returns", "rtype", "returntype"}
	restVarFields    = []string{"var", "variable", "ivar", "ivariable", "cvar", "cvariable"}
	restGroupFields  = []string{
		"parameters", "keywords", "attributes", "exceptions", "raises",
		"variables", "ivariables", "cvariables", "example", "examples",
	}
)

// Field-name sets keyed by how many words the header carries. A field name
// is only recognized at the arity its grammar allows, so ":param a b c:" is
// valid while ":returns a b:" is not.
var (
	restTriple = setOf(restArgFields, restVarFields)
	restDouble = setOf(restArgFields, restTypeFields, restRaisesFields, restVarFields)
	restSingle = setOf(restGroupFields, restReturnFields)
)

func setOf(groups ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, group := range groups {
		for _, name := range group {
			set[name] = true
		}
	}
	return set
}

// fieldMatch carries the decomposed pieces of a matched field header. field
// is the lowercased field name; end is the byte offset just past the header,
// where the inline description begins.
type fieldMatch struct {
	field string
	g2    string
	g3    string
	end   int
}

func matchRest(line string) (fieldMatch, bool) {
	m := restFieldRe.FindStringSubmatchIndex(line)
	if m == nil {
		return fieldMatch{}, false
	}
	fm := fieldMatch{
		field: strings.ToLower(line[m[2]:m[3]]),
		g2:    line[m[4]:m[5]],
		g3:    line[m[6]:m[7]],
		end:   m[1],
	}
	var ok bool
	switch {
	case fm.g2 != "" && fm.g3 != "":
		ok = restTriple[fm.field]
	case fm.g2 != "":
		ok = restDouble[fm.field]
	default:
		ok = restSingle[fm.field]
	}
	return fm, ok
}

// MatchRest reports whether line starts a recognized colon field header.
func MatchRest(line string) bool {
	_, ok := matchRest(line)
	return ok
}

// NewRest creates a parser for the colon-field grammar.
func NewRest(lines, keywords []string) (*Parser, error) {
	p, err := NewBase(lines, keywords)
	if err != nil {
		return nil, err
	}
	p.fields = map[string]func(fieldMatch){}
	fill(p.fields, restGroupFields, p.parseRestGroup)
	fill(p.fields, restTypeFields, p.parseRestType)
	fill(p.fields, restReturnFields, p.parseRestReturn)
	fill(p.fields, restVarFields, p.parseRestVar)
	fill(p.fields, restRaisesFields, p.parseRestRaise)
	fill(p.fields, restArgFields, p.parseRestArg)
	p.parseToken = p.parseRestToken
	return p, nil
}

// fill maps every name in fields to fn. Later fills overwrite earlier ones,
// so "raises" dispatches to the raises handler even though it also names a
// consolidated group.
func fill(m map[string]func(fieldMatch), fields []string, fn func(fieldMatch)) {
	for _, f := range fields {
		m[f] = fn
	}
}

func (p *Parser) parseRestToken() error {
	if fm, ok := matchRest(p.currentLine()); ok {
		p.fields[fm.field](fm)
		return nil
	}
	return p.parseBaseToken()
}

func (p *Parser) parseRestArg(m fieldMatch) {
	kind := ""
	arg := m.g2
	if m.g3 != "" {
		kind = m.g2
		arg = m.g3
	}
	desc := p.parseBody(1, m.end)
	p.doc.AddArg(arg, kind, desc, p.isKeyword(arg))
}

// parseRestType records a type annotation. A "vartype" field always targets
// an attribute; a "type" field targets whichever table already knows the
// name, defaulting to the args table.
func (p *Parser) parseRestType(m fieldMatch) {
	arg := strings.TrimLeft(m.g2, "*")
	kind := strings.Join(p.parseBody(1, m.end), " ")
	isAttribute := p.doc.Attributes.Has(arg) && !p.doc.Args.Has(arg)
	if m.field == "vartype" || isAttribute {
		p.doc.AddAttributeType(arg, kind)
	} else {
		p.doc.AddArgType(arg, kind)
	}
}

func (p *Parser) parseRestReturn(m fieldMatch) {
	body := p.parseBody(1, m.end)
	if m.field == "rtype" || m.field == "returntype" {
		p.doc.AddReturnType(strings.Join(body, " "))
	} else {
		p.doc.AddReturn("", body)
	}
}

func (p *Parser) parseRestVar(m fieldMatch) {
	kind := ""
	name := m.g2
	if m.g3 != "" {
		kind = m.g2
		name = m.g3
	}
	desc := p.parseBody(1, m.end)
	p.doc.AddAttribute(name, kind, desc)
}

func (p *Parser) parseRestRaise(m fieldMatch) {
	// A bare ":raises:" header is the consolidated group form.
	if m.g2 == "" {
		p.parseRestGroup(m)
		return
	}
	desc := p.parseBody(1, m.end)
	p.doc.AddRaises(m.g2, desc)
}

// parseRestGroup parses an epydoc consolidated field: a group header whose
// indented sub-lines each name one field, with an optional type after a
// colon.
func (p *Parser) parseRestGroup(m fieldMatch) {
	if m.field == "example" || m.field == "examples" {
		body := p.parseBody(1, m.end)
		p.doc.AddElement(types.Element{Kind: types.ElemExample, Body: body})
		return
	}
	_, _ = p.cursor.Next()
	for p.cursor.HasNext() && lineutil.IsIndented(p.currentLine(), 1, false) {
		line := p.currentLine()
		indent := lineutil.Indent(line)
		name := line
		kind := ""
		if idx := strings.Index(line, ":"); idx >= 0 {
			name = line[:idx]
			kind = strings.TrimSpace(line[idx+1:])
		}
		name = strings.TrimSpace(name)
		body := p.parseBody(indent+1, len(line))
		switch m.field {
		case "attributes", "variables", "ivariables", "cvariables":
			p.doc.AddAttribute(name, kind, body)
		case "exceptions", "raises":
			p.doc.AddRaises(name, body)
		default:
			p.doc.AddArg(name, kind, body, p.isKeyword(name))
		}
	}
}
