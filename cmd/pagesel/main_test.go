package main

import (
	"testing"

	"github.com/npillmayer/pagerange"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSelectionFallsBackToAllPages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagerange.cli")
	defer teardown()
	//
	intp := &Intp{
		pageCount: 4,
		cache:     make(map[selectionKey]*pagerange.PageSet),
	}
	if err := intp.printSelection("3;"); err != nil {
		t.Fatalf("expected invalid expression to fall back, have %v", err)
	}
	fp, err := pagerange.RangeList{pagerange.All}.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	pages, ok := intp.cache[selectionKey{fingerprint: fp, pageCount: 4}]
	if !ok {
		t.Fatalf("expected fallback selection to be cached")
	}
	if !pages.Equals(pagerange.NewPageSet(1, 2, 3, 4)) {
		t.Errorf("expected every page to be selected, have %s", pages)
	}
}
