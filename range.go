package pagerange

import (
	"strconv"
	"strings"

	"github.com/cnf/structhash"
)

// --- Bounds ----------------------------------------------------------------

// Bound is an optional page number, used as the left or right end of a range.
// The zero value is an open bound.
type Bound struct {
	n      int
	closed bool
}

// Open is an open bound: "from the first page" if used as a left bound,
// "to the last page" if used as a right bound.
var Open = Bound{}

// At returns a closed bound at page n.
func At(n int) Bound {
	return Bound{n: n, closed: true}
}

// IsOpen is true for open bounds.
func (b Bound) IsOpen() bool {
	return !b.closed
}

// Value returns the page number of a closed bound and 0 for an open one.
func (b Bound) Value() int {
	return b.n
}

// Or returns the bound's page number, or dflt if b is open.
func (b Bound) Or(dflt int) int {
	if b.closed {
		return b.n
	}
	return dflt
}

func (b Bound) String() string {
	if !b.closed {
		return ""
	}
	return strconv.Itoa(b.n)
}

// --- Ranges ----------------------------------------------------------------

// Shape classifies ranges by which of their bounds are present.
type Shape int8

// Range shapes. A range with both bounds present is either degenerate
// (a single page) or closed.
const (
	Unbounded   Shape = iota // ..
	Degenerate               // 5
	LeftClosed               // 5..
	RightClosed              // ..5
	Closed                   // 3..5
)

func (s Shape) String() string {
	switch s {
	case Unbounded:
		return "unbounded"
	case Degenerate:
		return "degenerate"
	case LeftClosed:
		return "left-closed"
	case RightClosed:
		return "right-closed"
	case Closed:
		return "closed"
	}
	return "<unknown shape>"
}

// Range is an interval of page numbers, possibly open at either end.
// Both bounds open denotes the whole document.
type Range struct {
	Left, Right Bound
}

// Pages returns a closed range from page l to page r.
func Pages(l, r int) Range {
	return Range{Left: At(l), Right: At(r)}
}

// Page returns a degenerate range for page n.
func Page(n int) Range {
	return Range{Left: At(n), Right: At(n)}
}

// All is the unbounded range, matching every page.
var All = Range{}

// Shape returns the shape of a range.
//
// A range from n to n counts as degenerate, regardless of whether it has been
// written as "n" or as "n..n".
func (r Range) Shape() Shape {
	switch {
	case r.Left.IsOpen() && r.Right.IsOpen():
		return Unbounded
	case r.Right.IsOpen():
		return LeftClosed
	case r.Left.IsOpen():
		return RightClosed
	case r.Left.n == r.Right.n:
		return Degenerate
	}
	return Closed
}

// String renders a range in range expression syntax.
func (r Range) String() string {
	if r.Shape() == Degenerate {
		return r.Left.String()
	}
	return r.Left.String() + ".." + r.Right.String()
}

// --- Range lists -----------------------------------------------------------

// RangeList is a sequence of ranges, in the order they occured in a range
// expression. Range lists produced by parsers are never empty.
type RangeList []Range

// String renders a range list in canonical range expression syntax.
func (rl RangeList) String() string {
	parts := make([]string, len(rl))
	for i, r := range rl {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

type fingerprintRange struct {
	Left      int
	Right     int
	LeftOpen  bool
	RightOpen bool
}

type fingerprintList struct {
	Ranges []fingerprintRange
}

// Fingerprint returns a hash string of a range list's content. Range lists
// with equal ranges in equal order have equal fingerprints, independent of
// the whitespace or trailing commas of the expression they were parsed from.
func (rl RangeList) Fingerprint() (string, error) {
	fp := fingerprintList{Ranges: make([]fingerprintRange, len(rl))}
	for i, r := range rl {
		fp.Ranges[i] = fingerprintRange{
			Left:      r.Left.n,
			Right:     r.Right.n,
			LeftOpen:  r.Left.IsOpen(),
			RightOpen: r.Right.IsOpen(),
		}
	}
	return structhash.Hash(fp, 1)
}
