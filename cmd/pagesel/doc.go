/*
Package main provides an interactive command line tool (pagesel)
for page range expressions. Users enter range expressions like "1,3..5,10.."
and pagesel prints the pages selected for a document of a given page count.
pagesel serves as a sandbox to try out range expressions, and to inspect how
they are tokenized and parsed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagerange.cli'
func tracer() tracing.Trace {
	return tracing.Select("pagerange.cli")
}
