package docparse

import (
	"fmt"
	"strings"

	"github.com/dshills/docshift/pkg/types"
)

type constructor func(lines, keywords []string) (*Parser, error)

// grammars lists the detectable grammars in precedence order. When a line
// satisfies both match predicates the colon grammar wins.
var grammars = []struct {
	style types.InputStyle
	match func(string) bool
	build constructor
}{
	{types.InputRest, MatchRest, NewRest},
	{types.InputEpytext, MatchEpytext, NewEpytext},
}

// New creates a parser for the given input style. InputGuess (or an empty
// style) detects the grammar from the lines themselves, falling back to the
// directive-only base grammar when nothing matches.
func New(lines []string, style types.InputStyle, keywords []string) (*Parser, error) {
	switch style {
	case types.InputRest:
		return NewRest(lines, keywords)
	case types.InputEpytext:
		return NewEpytext(lines, keywords)
	case types.InputGuess, "":
		build := NewBase
		if detected, ok := DetectStyle(lines); ok {
			for _, g := range grammars {
				if g.style == detected {
					build = g.build
				}
			}
		}
		return build(lines, keywords)
	}
	return nil, fmt.Errorf("%w: input style %q", types.ErrUnsupportedStyle, style)
}

// DetectStyle scans the lines in order and returns the style of the first
// grammar whose match predicate accepts a line. ok is false when no grammar
// matches any line.
func DetectStyle(lines []string) (types.InputStyle, bool) {
	for _, raw := range lines {
		line := strings.ToLower(strings.TrimSpace(raw))
		for _, g := range grammars {
			if g.match(line) {
				return g.style, true
			}
		}
	}
	return "", false
}
