// Package lineutil provides small helpers for querying and reshaping the
// indentation of text lines. Both the docstring parsers and writers build on
// these primitives.
package lineutil

import (
	"strings"
	"unicode"
)

// Indent returns the length of the leading whitespace of line. A line that
// is entirely whitespace reports its full length.
func Indent(line string) int {
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return len(line)
}

// IsIndented reports whether line is indented by at least indent columns.
// With exact set, the character at column indent must itself be non-space,
// so the line is indented by exactly that amount.
func IsIndented(line string, indent int, exact bool) bool {
	for i, r := range line {
		if i >= indent {
			if exact {
				return !unicode.IsSpace(r)
			}
			return true
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return false
}

// Dedent removes indent leading characters from line.
func Dedent(line string, indent int) string {
	if indent >= len(line) {
		return ""
	}
	return line[indent:]
}

// DedentByMinimum dedents a group of lines by the smallest indent found
// among the non-empty lines, preserving relative indentation.
func DedentByMinimum(lines []string) []string {
	dedentLen := 0
	first := true
	for _, line := range lines {
		if line == "" {
			continue
		}
		if n := Indent(line); first || n < dedentLen {
			dedentLen = n
			first = false
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Dedent(line, dedentLen)
	}
	return out
}

// RStrip trims trailing whitespace.
func RStrip(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// LStrip trims leading whitespace.
func LStrip(line string) string {
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}

// IsBlank reports whether line is empty or entirely whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
