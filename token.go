package pagerange

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners for range expressions
// define their own constants.
type TokType int

// Tokens represent input tokens of a range expression, as produced by a
// diagnostic scanner.
//
// An example would be a token for a page number:
//
//    TokType = NUM      // identifier for this kind of tokens
//    Lexeme  = "12"     // lexeme how it appeared in the input
//    Value   = 12       // may be set by the scanner, may be nil
//    Span    = 4…6      // occured from position 4 in the input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Parsers use spans
// to tell where in a range expression something has been recognized or where
// recognition stopped. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
