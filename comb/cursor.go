package comb

import (
	"fmt"

	"github.com/npillmayer/pagerange"
)

// Cursor is an immutable view on the unconsumed part of an input string.
type Cursor struct {
	src string
	pos int
}

// NewCursor creates a cursor at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{src: input}
}

// Rest returns the unconsumed suffix of the input.
func (c Cursor) Rest() string {
	return c.src[c.pos:]
}

// Pos returns the byte offset of the cursor within the input.
func (c Cursor) Pos() int {
	return c.pos
}

// AtEnd is true if no input is left.
func (c Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}

// Advance returns a new cursor, n bytes behind c. It will not move beyond
// the end of the input.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 {
		panic(fmt.Sprintf("cursor cannot move backwards by %d", -n))
	}
	c.pos += n
	if c.pos > len(c.src) {
		c.pos = len(c.src)
	}
	return c
}

// Span returns the span of input between c and a later cursor to.
func (c Cursor) Span(to Cursor) pagerange.Span {
	return pagerange.Span{uint64(c.pos), uint64(to.pos)}
}

func (c Cursor) String() string {
	return fmt.Sprintf("@%d%q", c.pos, c.Rest())
}
