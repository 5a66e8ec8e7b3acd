package rangelang

import (
	"errors"
	"strconv"
	"unicode"

	"github.com/npillmayer/pagerange/comb"
)

// --- Token parsers ---------------------------------------------------------

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Int matches a run of ASCII digits and yields its value. Digit runs too
// large for an int yield the largest int, to be clamped on resolution.
func Int(in comb.Cursor) (comb.Result[int], bool) {
	r, ok := comb.RuneRun(isASCIIDigit, 1)(in)
	if !ok {
		return comb.Result[int]{}, false
	}
	return comb.Result[int]{Value: pageNumber(r.Value), Rest: r.Rest}, true
}

// pageNumber converts a run of ASCII digits, saturating at the largest int.
func pageNumber(digits string) int {
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		tracer().Debugf("page number %q too large, using %d", digits, n)
	}
	return n
}

// Spaces matches zero or more whitespace characters. It never fails.
var Spaces = comb.RuneRun(unicode.IsSpace, 0)

// CommaToken matches a single ','.
var CommaToken = comb.Text(",")

// RangeToken matches '..'.
var RangeToken = comb.Text("..")
