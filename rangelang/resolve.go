package rangelang

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pagerange"
)

// ErrInvalidPageCount is returned when ranges are resolved against a page
// count less than 1.
var ErrInvalidPageCount = errors.New("page count must be positive")

// Resolve computes the set of pages selected by a list of ranges, for a
// document of pageCount pages. Open left bounds default to page 1, open
// right bounds to pageCount.
//
// Bounds outside of 1…pageCount are clamped, and a note is sent to reporter.
// reporter may be nil, in which case notes are traced. A range with its left
// bound beyond its right bound selects nothing.
func Resolve(ranges pagerange.RangeList, pageCount int, reporter pagerange.Reporter) (*pagerange.PageSet, error) {
	if pageCount < 1 {
		return nil, fmt.Errorf("cannot resolve ranges %s: %w (have %d)", ranges, ErrInvalidPageCount, pageCount)
	}
	if reporter == nil {
		reporter = pagerange.TraceReporter{}
	}
	pages := pagerange.NewPageSet()
	for _, r := range ranges {
		left := r.Left.Or(1)
		right := r.Right.Or(pageCount)
		if left < 1 {
			reporter.Report(pagerange.Note{Kind: pagerange.NoteBelowFirstPage, Range: r, Clamped: 1})
			left = 1
		}
		if right > pageCount {
			reporter.Report(pagerange.Note{Kind: pagerange.NoteBeyondLastPage, Range: r, Clamped: pageCount})
			right = pageCount
		}
		pages.AddRange(left, right)
	}
	return pages, nil
}

// ResolvePageSet is Resolve with notes going to the tracer.
func ResolvePageSet(ranges pagerange.RangeList, pageCount int) (*pagerange.PageSet, error) {
	return Resolve(ranges, pageCount, nil)
}

// Fallback parses a range expression. If the expression is not valid,
// Fallback substitutes the unbounded range and returns the syntax error
// alongside, for display purposes.
func Fallback(input string) (pagerange.RangeList, error) {
	ranges, synerr := Parse(input)
	if synerr != nil {
		tracer().Infof("%v, selecting all pages", synerr)
		return pagerange.RangeList{pagerange.All}, synerr
	}
	return ranges, nil
}

// Select parses a range expression and resolves it for a document of
// pageCount pages. If the expression is not valid, Select falls back to
// the unbounded range (see Fallback); the syntax error is returned as well,
// together with a complete page set.
//
// Select returns the effective range list, i.e. the parsed one or the
// fallback. The only hard error is an invalid page count, in which case the
// page set is nil.
func Select(input string, pageCount int, reporter pagerange.Reporter) (*pagerange.PageSet, pagerange.RangeList, error) {
	ranges, synerr := Fallback(input)
	pages, err := Resolve(ranges, pageCount, reporter)
	if err != nil {
		return nil, ranges, err
	}
	return pages, ranges, synerr
}
