// Package docparse parses raw docstring captures into the style-agnostic
// document model defined in pkg/types.
//
// Two field grammars are supported: the colon-field grammar used by reST
// and epydoc (":param name: desc") and the at-sign grammar used by epytext
// ("@param name: desc"). Both share a common base that strips the quote
// delimiters, tracks the section indent, collects hanging field bodies, and
// recognizes reST directives such as ".. note::".
//
// # Basic Usage
//
//	p, err := docparse.New(capture.Lines, types.InputGuess, capture.KeywordNames())
//	if err != nil {
//	    return err
//	}
//	doc := p.Parse()
//
// # Style Detection
//
// With types.InputGuess the lines are scanned in order and the first
// grammar whose match predicate accepts a line is selected; the colon
// grammar takes precedence when both would match. If no line matches any
// grammar, the base parser is used: directives are still recognized and
// every other line passes through as raw text.
//
// # Error Handling
//
// Constructors return an error wrapping types.ErrMalformedDocstring when
// the first line carries no opening quote delimiter. Parse itself never
// fails; unrecognizable lines become raw elements so no content is lost.
package docparse
