/*
Package comb implements generic parser combinators.

A parser is a function from an input cursor to either a match or a failure.
A match carries a value and the cursor behind the recognized input. Cursors are
immutable values, so a failed parser never has side effects: callers simply keep
on using the cursor they passed in.

    digits := comb.RuneRun(unicode.IsDigit, 1)
    list := comb.Join(digits, comb.Text(","), digits)
    r, ok := list(comb.NewCursor("12,34"))   // r.Value = ["12" "," "34"], ok = true

Combinators are Optional, Or (ordered choice), Join (sequence) and Repeat
(zero-or-more). Or commits to the first alternative which succeeds, so grammars
must place more specific alternatives before more general ones.

A parser handed to Repeat must not be able to succeed without consuming input.
Repeat stops as soon as a repetition does not advance the cursor, but the
grammar will most probably not be what its author intended.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package comb

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagerange.comb'
func tracer() tracing.Trace {
	return tracing.Select("pagerange.comb")
}
