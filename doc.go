/*
Package pagerange is a toolbox for page selections.

Users type page selections as short, comma-separated range expressions
such as

    1,3..5,..,10..

Package structure is as follows:

■ comb: Package comb implements a small set of generic parser combinators,
operating on immutable input cursors.

■ rangelang: Package rangelang implements the grammar for range expressions on
top of comb, and resolves parsed ranges against the page count of a document.

■ scanner: Package scanner provides a tokenizer interface and a lexmachine
adapter, used for diagnostic token views of range expressions.

The base package contains data types which are used throughout all the other packages:
ranges, range lists, page sets and notes on clamped ranges.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pagerange

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagerange'.
func tracer() tracing.Trace {
	return tracing.Select("pagerange")
}
