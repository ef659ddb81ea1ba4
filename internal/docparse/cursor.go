package docparse

import (
	"github.com/dshills/docshift/pkg/types"
)

// LineCursor is a repositionable, peekable iterator over a fixed sequence of
// text lines. Next fails when the cursor is exhausted; Peek never fails and
// clamps to the final line instead, a contract the body-collection loops
// rely on when looking one line ahead before deciding to stop.
type LineCursor struct {
	lines []string
	pos   int
}

// NewLineCursor creates a cursor positioned at the first line.
func NewLineCursor(lines []string) *LineCursor {
	return &LineCursor{lines: lines}
}

// HasNext reports whether any lines remain.
func (c *LineCursor) HasNext() bool {
	return c.pos < len(c.lines)
}

// Pos returns the current position.
func (c *LineCursor) Pos() int {
	return c.pos
}

// Seek repositions the cursor. Positions outside [0, len] are clamped.
func (c *LineCursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.lines) {
		pos = len(c.lines)
	}
	c.pos = pos
}

// Next returns the current line and advances. Returns ErrExhausted when no
// lines remain.
func (c *LineCursor) Next() (string, error) {
	if !c.HasNext() {
		return "", types.ErrExhausted
	}
	line := c.lines[c.pos]
	c.pos++
	return line, nil
}

// NextN returns up to n lines starting at the current position and advances
// past them. Returns ErrExhausted when no lines remain; n < 1 returns an
// empty slice without advancing.
func (c *LineCursor) NextN(n int) ([]string, error) {
	if !c.HasNext() {
		return nil, types.ErrExhausted
	}
	if n < 1 {
		return []string{}, nil
	}
	end := c.pos + n
	if end > len(c.lines) {
		end = len(c.lines)
	}
	lines := c.lines[c.pos:end]
	c.pos = end
	return lines, nil
}

// Peek returns the current line without advancing. Past the end it returns
// the final line.
func (c *LineCursor) Peek() string {
	return c.PeekAt(c.pos)
}

// PeekAt returns the line at start without advancing, clamping start to the
// last available line.
func (c *LineCursor) PeekAt(start int) string {
	if len(c.lines) == 0 {
		return ""
	}
	if start > len(c.lines)-1 {
		start = len(c.lines) - 1
	}
	if start < 0 {
		start = 0
	}
	return c.lines[start]
}

// PeekN returns up to n lines starting at the current position (clamped to
// the last line) without advancing. n < 1 returns an empty slice.
func (c *LineCursor) PeekN(n int) []string {
	if n < 1 {
		return []string{}
	}
	start := c.pos
	if start > len(c.lines)-1 {
		start = len(c.lines) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + n
	if end > len(c.lines) {
		end = len(c.lines)
	}
	return c.lines[start:end]
}
