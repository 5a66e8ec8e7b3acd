package rangelang

import (
	"fmt"

	"github.com/npillmayer/pagerange"
	"github.com/npillmayer/pagerange/comb"
)

// DefaultRange is the range expression selecting every page.
const DefaultRange = ".."

// SyntaxError is returned for range expressions which are not recognized as
// a whole.
type SyntaxError struct {
	Input string
	Span  pagerange.Span // unconsumed part of the input
}

func (e *SyntaxError) Error() string {
	if e.Span.From() == 0 {
		return fmt.Sprintf("not a valid range expression: %q", e.Input)
	}
	return fmt.Sprintf("not a valid range expression: %q, unexpected %q at position %d",
		e.Input, e.Input[e.Span.From():e.Span.To()], e.Span.From())
}

// Parse parses a range expression. It returns the ranges in the order they
// appear in the input, or a *SyntaxError if the input is not recognized as
// a whole.
func Parse(input string) (pagerange.RangeList, error) {
	in := comb.NewCursor(input)
	end := in.Advance(len(input))
	r, ok := RangeListParser(in)
	if !ok {
		tracer().Debugf("range expression %q rejected", input)
		return nil, &SyntaxError{Input: input, Span: in.Span(end)}
	}
	if !r.Rest.AtEnd() {
		tracer().Debugf("range expression %q rejected at %s", input, r.Rest)
		return nil, &SyntaxError{Input: input, Span: r.Rest.Span(end)}
	}
	tracer().Debugf("range expression %q => %s", input, r.Value)
	return r.Value, nil
}

// ParseRangeList parses a range expression. It returns false if the input
// is not recognized as a whole.
func ParseRangeList(input string) (pagerange.RangeList, bool) {
	rl, err := Parse(input)
	return rl, err == nil
}
