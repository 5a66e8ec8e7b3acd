package comb

import (
	"strconv"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var digits = RuneRun(unicode.IsDigit, 1)

var number = Map(digits, func(s string) int {
	n, _ := strconv.Atoi(s)
	return n
})

func TestCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange.comb")
	defer teardown()
	//
	c := NewCursor("1..5")
	d := c.Advance(1)
	if c.Rest() != "1..5" || d.Rest() != "..5" {
		t.Errorf("expected cursors to be independent, have %s and %s", c, d)
	}
	if d.Advance(10).Rest() != "" || !d.Advance(10).AtEnd() {
		t.Errorf("expected cursor to stop at end of input")
	}
	if s := c.Span(d.Advance(2)); s.From() != 0 || s.To() != 3 {
		t.Errorf("expected span (0…3), have %s", s)
	}
}

func TestText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange.comb")
	defer teardown()
	//
	r, ok := Text("..").Parse("..5")
	if !ok || r.Value != ".." || r.Rest.Rest() != "5" {
		t.Errorf("expected '..' to match, have %v, %v", r, ok)
	}
	if _, ok = Text("..").Parse(".5"); ok {
		t.Errorf("expected '..' not to match '.5'")
	}
	if _, ok = Text("").Parse("abc"); ok {
		t.Errorf("expected empty literal never to match")
	}
}

func TestRuneRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange.comb")
	defer teardown()
	//
	r, ok := digits.Parse("123abc")
	if !ok || r.Value != "123" || r.Rest.Pos() != 3 {
		t.Errorf("expected digit run '123', have %q", r.Value)
	}
	if _, ok = digits.Parse("abc"); ok {
		t.Errorf("expected digit run to require at least one digit")
	}
	blanks := RuneRun(unicode.IsSpace, 0)
	r, ok = blanks.Parse("x")
	if !ok || r.Value != "" || r.Rest.Pos() != 0 {
		t.Errorf("expected empty blank run to succeed without consuming input")
	}
	r, ok = blanks.Parse(" \t x")
	if !ok || r.Rest.Rest() != "x" {
		t.Errorf("expected unicode blanks to be consumed, rest is %q", r.Rest.Rest())
	}
}

func TestOptional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange.comb")
	defer teardown()
	//
	opt := Optional(number)
	r, ok := opt.Parse("42,")
	if !ok || !r.Value.Ok || r.Value.Value != 42 || r.Rest.Rest() != "," {
		t.Errorf("expected optional number 42, have %+v", r.Value)
	}
	r, ok = opt.Parse("..")
	if !ok || r.Value.Ok || r.Rest.Pos() != 0 {
		t.Errorf("expected absent value and unconsumed input, have %+v at %s", r.Value, r.Rest)
	}
}

func TestOrIsOrderedChoice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange.comb")
	defer teardown()
	//
	short := Or(Text("."), Text(".."))
	r, ok := short.Parse("..")
	if !ok || r.Value != "." {
		t.Errorf("expected first alternative to win, have %q", r.Value)
	}
	long := Or(Text(".."), Text("."))
	r, ok = long.Parse("..")
	if !ok || r.Value != ".." {
		t.Errorf("expected '..', have %q", r.Value)
	}
	if _, ok = long.Parse(","); ok {
		t.Errorf("expected Or to fail if all alternatives fail")
	}
}

func TestJoin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange.comb")
	defer teardown()
	//
	seq := Join(digits, Text(".."), digits)
	r, ok := seq.Parse("3..5,")
	if !ok || len(r.Value) != 3 || r.Value[2] != "5" || r.Rest.Rest() != "," {
		t.Errorf("expected [3 .. 5], have %v", r.Value)
	}
	in := NewCursor("3..x")
	if _, ok = seq(in); ok {
		t.Errorf("expected sequence to fail on '3..x'")
	}
	if in.Rest() != "3..x" {
		t.Errorf("expected failed sequence to leave input untouched")
	}
	mixed := Join(Erase(number), Erase(Text("..")), Erase(number))
	m, ok := mixed.Parse("3..5")
	if !ok || m.Value[0].(int) != 3 || m.Value[2].(int) != 5 {
		t.Errorf("expected [3 .. 5] from erased parsers, have %v", m.Value)
	}
}

func TestThen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange.comb")
	defer teardown()
	//
	r, ok := Then(number, Text("..")).Parse("7..")
	if !ok || r.Value.First != 7 || r.Value.Second != ".." {
		t.Errorf("expected pair (7, ..), have %+v", r.Value)
	}
	l, ok := Left(number, Text(",")).Parse("7,")
	if !ok || l.Value != 7 || !l.Rest.AtEnd() {
		t.Errorf("expected 7, have %v", l.Value)
	}
	rr, ok := Right(Text(","), number).Parse(",8")
	if !ok || rr.Value != 8 {
		t.Errorf("expected 8, have %v", rr.Value)
	}
	if _, ok = Right(Text(","), number).Parse(",x"); ok {
		t.Errorf("expected ',x' to fail")
	}
}

func TestRepeat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange.comb")
	defer teardown()
	//
	item := Left(number, Text(","))
	r, ok := Repeat(item).Parse("1,22,333,x")
	if !ok || len(r.Value) != 3 || r.Value[1] != 22 || r.Rest.Rest() != "x" {
		t.Errorf("expected [1 22 333] with rest 'x', have %v with rest %q", r.Value, r.Rest.Rest())
	}
	r, ok = Repeat(item).Parse("x")
	if !ok || len(r.Value) != 0 || r.Rest.Pos() != 0 {
		t.Errorf("expected zero repetitions to succeed")
	}
	// parser matching empty input must not loop forever
	e, ok := Repeat(RuneRun(unicode.IsSpace, 0)).Parse("abc")
	if !ok || len(e.Value) != 0 {
		t.Errorf("expected repeat of empty match to stop, have %d values", len(e.Value))
	}
}

func TestEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange.comb")
	defer teardown()
	//
	if _, ok := Left(digits, EOF()).Parse("12"); !ok {
		t.Errorf("expected '12' to be followed by end of input")
	}
	if _, ok := Left(digits, EOF()).Parse("12 "); ok {
		t.Errorf("expected '12 ' not to be at end of input")
	}
}
