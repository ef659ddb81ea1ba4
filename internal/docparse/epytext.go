package docparse

import (
	"regexp"
	"strings"

	"github.com/dshills/docshift/pkg/types"
)

// epyFieldRe matches an at-sign field header such as "@param name:" or
// "@returns:".
var epyFieldRe = regexp.MustCompile(`^@([^\s:]+)\s*([^\s:]*)\s*:`)

// The at-sign grammar has no consolidated groups, so only return fields are
// valid in the single-word form. The two-word form shares the colon
// grammar's field names.
var epySingle = setOf(restReturnFields)

// MatchEpytext reports whether line starts a recognized at-sign field
// header or directive.
func MatchEpytext(line string) bool {
	m := epyFieldRe.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	if m[2] != "" {
		return restDouble[m[1]]
	}
	if epySingle[m[1]] {
		return true
	}
	_, ok := directives[m[1]]
	return ok
}

// NewEpytext creates a parser for the at-sign grammar. It shares the colon
// grammar's handlers except that argument and variable fields never carry a
// type word.
func NewEpytext(lines, keywords []string) (*Parser, error) {
	p, err := NewBase(lines, keywords)
	if err != nil {
		return nil, err
	}
	p.fields = map[string]func(fieldMatch){}
	fill(p.fields, restTypeFields, p.parseRestType)
	fill(p.fields, restReturnFields, p.parseRestReturn)
	fill(p.fields, restVarFields, p.parseEpyVar)
	fill(p.fields, restRaisesFields, p.parseRestRaise)
	fill(p.fields, restArgFields, p.parseEpyArg)
	p.parseToken = p.parseEpyToken
	return p, nil
}

func (p *Parser) parseEpyToken() error {
	line := p.currentLine()
	m := epyFieldRe.FindStringSubmatchIndex(line)
	if m == nil {
		return types.ErrNotParsable
	}
	raw := line[m[2]:m[3]]
	fm := fieldMatch{
		field: strings.ToLower(raw),
		g2:    line[m[4]:m[5]],
		end:   m[1],
	}
	var ok bool
	if fm.g2 != "" {
		ok = restDouble[fm.field]
	} else {
		ok = epySingle[fm.field]
	}
	if ok {
		p.fields[fm.field](fm)
		return nil
	}
	if kind, isDirective := directives[raw]; isDirective {
		p.parseDirective(kind, m[1])
		return nil
	}
	return types.ErrNotParsable
}

func (p *Parser) parseEpyArg(m fieldMatch) {
	desc := p.parseBody(1, m.end)
	p.doc.AddArg(m.g2, "", desc, p.isKeyword(m.g2))
}

func (p *Parser) parseEpyVar(m fieldMatch) {
	desc := p.parseBody(1, m.end)
	p.doc.AddAttribute(m.g2, "", desc)
}
