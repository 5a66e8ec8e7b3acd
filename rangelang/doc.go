/*
Package rangelang provides a parser for page range expressions and resolves
parsed ranges to sets of page numbers.

Range expressions are comma-separated lists of ranges:

    5        page 5
    3..5     pages 3 to 5
    5..      page 5 to the last page
    ..5      first page to page 5
    ..       every page

Whitespace is allowed around ranges and commas, and a single trailing comma is
tolerated. An expression is either recognized as a whole or rejected.
Callers typically substitute the unbounded range for rejected expressions,
see Select.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rangelang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagerange.lang'
func tracer() tracing.Trace {
	return tracing.Select("pagerange.lang")
}
