package comb

import (
	"strings"
	"unicode/utf8"
)

// Text matches a literal string.
func Text(lit string) Parser[string] {
	return func(in Cursor) (Result[string], bool) {
		if lit == "" || !strings.HasPrefix(in.Rest(), lit) {
			return fail[string]()
		}
		return succeed(lit, in.Advance(len(lit)))
	}
}

// RuneRun matches a run of at least min runes, each satisfying pred. The
// value is the text of the run. With min = 0, RuneRun never fails and must
// therefore not be handed to Repeat.
func RuneRun(pred func(rune) bool, min int) Parser[string] {
	return func(in Cursor) (Result[string], bool) {
		rest := in.Rest()
		n, cnt := 0, 0
		for n < len(rest) {
			r, sz := utf8.DecodeRuneInString(rest[n:])
			if !pred(r) {
				break
			}
			n += sz
			cnt++
		}
		if cnt < min {
			return fail[string]()
		}
		return succeed(rest[:n], in.Advance(n))
	}
}

// EOF matches the end of the input, without consuming anything.
func EOF() Parser[struct{}] {
	return func(in Cursor) (Result[struct{}], bool) {
		if !in.AtEnd() {
			return fail[struct{}]()
		}
		return succeed(struct{}{}, in)
	}
}
