package pagerange

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange")
	defer teardown()
	//
	var b Bound
	if !b.IsOpen() || b.Or(7) != 7 {
		t.Errorf("expected zero bound to be open")
	}
	b = At(0)
	if b.IsOpen() || b.Or(7) != 0 {
		t.Errorf("expected bound at page 0 to be closed")
	}
}

func TestRangeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange")
	defer teardown()
	//
	rl := RangeList{Page(1), Pages(3, 5), {Left: At(10)}, {Right: At(2)}, All, Pages(4, 4)}
	if s := rl.String(); s != "1,3..5,10..,..2,..,4" {
		t.Errorf("unexpected range list string %q", s)
	}
	shapes := []Shape{Degenerate, Closed, LeftClosed, RightClosed, Unbounded, Degenerate}
	for i, r := range rl {
		if r.Shape() != shapes[i] {
			t.Errorf("expected %s to be %s, is %s", r, shapes[i], r.Shape())
		}
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange")
	defer teardown()
	//
	fp1, err := RangeList{Page(1), Pages(3, 5)}.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	fp2, _ := RangeList{Page(1), Pages(3, 5)}.Fingerprint()
	fp3, _ := RangeList{Page(1), {Left: At(3)}}.Fingerprint()
	fp4, _ := RangeList{Page(0)}.Fingerprint()
	fp5, _ := RangeList{All}.Fingerprint()
	if fp1 != fp2 {
		t.Errorf("expected equal range lists to have equal fingerprints")
	}
	if fp1 == fp3 || fp4 == fp5 {
		t.Errorf("expected different range lists to have different fingerprints")
	}
}

func TestPageSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange")
	defer teardown()
	//
	ps := NewPageSet(8, 3, 5).AddRange(4, 6).Add(3)
	if ps.Len() != 5 {
		t.Errorf("expected 5 pages, have %d", ps.Len())
	}
	pages := ps.Pages()
	for i := 1; i < len(pages); i++ {
		if pages[i-1] >= pages[i] {
			t.Errorf("expected ascending pages, have %v", pages)
		}
	}
	if ps.String() != "{3 4 5 6 8}" {
		t.Errorf("unexpected page set string %s", ps)
	}
	if !ps.Contains(6) || ps.Contains(7) {
		t.Errorf("unexpected membership in %s", ps)
	}
	if NewPageSet().AddRange(5, 3).Len() != 0 {
		t.Errorf("expected reversed range to add nothing")
	}
	if !ps.Equals(NewPageSet(3, 4, 5, 6, 8)) || ps.Equals(NewPageSet(3, 4, 5, 6, 7)) {
		t.Errorf("page set equality broken")
	}
}

func TestPageSetMaxInt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange")
	defer teardown()
	//
	ps := NewPageSet().AddRange(math.MaxInt-2, math.MaxInt)
	if ps.Len() != 3 || !ps.Contains(math.MaxInt) {
		t.Errorf("expected 3 pages up to MaxInt, have %s", ps)
	}
	if NewPageSet().AddRange(math.MaxInt, math.MaxInt).Len() != 1 {
		t.Errorf("expected single page MaxInt")
	}
}

func TestNotes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange")
	defer teardown()
	//
	nc := &NoteCollector{}
	var r Reporter = nc
	r.Report(Note{Kind: NoteBelowFirstPage, Range: Pages(0, 3), Clamped: 1})
	TraceReporter{}.Report(Note{Kind: NoteBeyondLastPage, Range: Pages(1, 30), Clamped: 10})
	if nc.Count(NoteBelowFirstPage) != 1 || nc.Count(NoteBeyondLastPage) != 0 {
		t.Errorf("unexpected notes %v", nc.Notes)
	}
	t.Logf("note: %s", nc.Notes[0])
}
