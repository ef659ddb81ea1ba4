package types

// RawCapture is one docstring located in a source file, together with the
// parameter shape of the declaration it documents. Captures are produced by
// the locator, consumed exactly once by a parser, and never shared.
type RawCapture struct {
	// StartLine is the 0-based index of the first physical line of the
	// string literal. EndLine is exclusive and covers every physical line
	// the literal spans, including the closing delimiter's line.
	StartLine int
	EndLine   int

	// Lines holds the raw text of lines [StartLine, EndLine).
	Lines []string

	// Args are positional parameter names: those declared before any
	// default-valued parameter. Keywords are default-valued and
	// keyword-only names.
	Args     []string
	Keywords []string

	// VarArg and KwArg are the variadic-positional and variadic-keyword
	// names, if present ("" otherwise).
	VarArg string
	KwArg  string
}

// KeywordNames returns the names treated as keyword parameters when parsing
// this capture's fields, including the variadic-keyword name.
func (c RawCapture) KeywordNames() []string {
	names := make([]string, 0, len(c.Keywords)+1)
	names = append(names, c.Keywords...)
	if c.KwArg != "" {
		names = append(names, c.KwArg)
	}
	return names
}
