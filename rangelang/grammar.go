package rangelang

import (
	"github.com/npillmayer/pagerange"
	"github.com/npillmayer/pagerange/comb"
)

// --- Grammar ---------------------------------------------------------------

// Range     ::=  int                          // degenerate:   5
// Range     ::=  int spaces '..'              // left-closed:  5..
// Range     ::=  int spaces '..' spaces int   // closed:       3..5
// Range     ::=  '..'                         // unbounded:    ..
// Range     ::=  '..' spaces int              // right-closed: ..5
//
// RangeList ::=  spaces Range (spaces ',' spaces Range)* spaces [',' spaces]
//
// Range is not expressed as an ordered choice of the five alternatives, but
// as a decision tree on the presence of the leading int and of '..'.
// This keeps ".." from being mistaken for anything but the unbounded range
// and "5.." from being cut short to page 5.
//
// Separators are consumed together with the range following them. A comma
// without a following range is thus left over for the optional trailing comma,
// while an empty clause as in "1,,2" leaves unconsumed input.

var intParser comb.Parser[int] = Int

var dotsAhead = comb.Right(Spaces, RangeToken)

var intAhead = comb.Right(Spaces, intParser)

// RangeParser recognizes a single range.
func RangeParser(in comb.Cursor) (comb.Result[pagerange.Range], bool) {
	var r pagerange.Range
	cur := in
	left, hasLeft := Int(cur)
	if hasLeft {
		r.Left = pagerange.At(left.Value)
		cur = left.Rest
	}
	var dots comb.Result[string]
	var hasDots bool
	if hasLeft {
		dots, hasDots = dotsAhead(cur)
	} else {
		dots, hasDots = RangeToken(cur)
	}
	if !hasDots {
		if !hasLeft {
			return comb.Result[pagerange.Range]{}, false // neither int nor '..'
		}
		r.Right = r.Left // degenerate
		return comb.Result[pagerange.Range]{Value: r, Rest: cur}, true
	}
	cur = dots.Rest
	if right, hasRight := intAhead(cur); hasRight {
		r.Right = pagerange.At(right.Value)
		cur = right.Rest
	}
	return comb.Result[pagerange.Range]{Value: r, Rest: cur}, true
}

var rangeParser comb.Parser[pagerange.Range] = RangeParser

var separator = comb.Join(Spaces, CommaToken, Spaces)

// next recognizes a separating comma together with the range following it.
var next = comb.Right(separator, rangeParser)

var trailer = comb.Then(
	Spaces,
	comb.Optional(comb.Then(CommaToken, Spaces)),
)

// RangeListParser recognizes a list of ranges. It does not check for end of
// input; a partial match leaves a non-empty rest.
var RangeListParser = comb.Map(
	comb.Left(
		comb.Then(
			comb.Right(Spaces, rangeParser),
			comb.Repeat(next),
		),
		trailer,
	),
	func(p comb.Pair[pagerange.Range, []pagerange.Range]) pagerange.RangeList {
		rl := make(pagerange.RangeList, 0, len(p.Second)+1)
		rl = append(rl, p.First)
		return append(rl, p.Second...)
	},
)
