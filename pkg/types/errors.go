package types

import "errors"

// Errors for the docstring conversion pipeline. Each sentinel maps to one
// recovery granularity: ErrNotParsable is recovered per line inside a
// parser, ErrMalformedDocstring per capture, ErrUnsupportedStyle per file
// (before any mutation), and ErrInvalidElement is a contract violation that
// is never recovered.
var (
	// ErrExhausted is returned by a line cursor when next is called with no
	// lines remaining.
	ErrExhausted = errors.New("line cursor exhausted")

	// ErrNotParsable marks a line that does not match any token grammar at
	// the current parse position. Parsers demote such lines to raw elements;
	// the error never escapes a parser.
	ErrNotParsable = errors.New("line is not a recognizable token")

	// ErrMalformedDocstring is returned when a capture's text contains no
	// recognizable opening string delimiter.
	ErrMalformedDocstring = errors.New("docstring has no opening quote delimiter")

	// ErrUnsupportedStyle is returned when a requested input or output style
	// name has no registered grammar or renderer.
	ErrUnsupportedStyle = errors.New("unsupported docstring style")

	// ErrInvalidElement is returned by a writer that encounters an element
	// kind it does not know how to render.
	ErrInvalidElement = errors.New("invalid docstring element")
)
