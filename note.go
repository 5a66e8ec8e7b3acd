package pagerange

import "fmt"

// NoteKind categorizes notes on range resolution.
type NoteKind int8

// Kinds of notes. Notes are never errors: the offending bound has been clamped
// and resolution continued.
const (
	NoteBelowFirstPage NoteKind = iota + 1 // left bound < 1, clamped to 1
	NoteBeyondLastPage                     // right bound > page count, clamped to page count
)

func (k NoteKind) String() string {
	switch k {
	case NoteBelowFirstPage:
		return "page range should be greater than 0"
	case NoteBeyondLastPage:
		return "page range should be less than or equal to document page count"
	}
	return "<unknown note>"
}

// Note reports a clamped bound of a range.
type Note struct {
	Kind    NoteKind
	Range   Range // the range as given
	Clamped int   // value the bound has been clamped to
}

func (n Note) String() string {
	return fmt.Sprintf("%s: range %s clamped to %d", n.Kind, n.Range, n.Clamped)
}

// Reporter receives notes on range resolution.
type Reporter interface {
	Report(Note)
}

// TraceReporter reports notes to the tracer with key 'pagerange'.
type TraceReporter struct{}

// Report is part of interface Reporter.
func (TraceReporter) Report(n Note) {
	tracer().Infof("%s", n)
}

var _ Reporter = TraceReporter{}

// NoteCollector collects notes for later inspection.
type NoteCollector struct {
	Notes []Note
}

// Report is part of interface Reporter.
func (nc *NoteCollector) Report(n Note) {
	nc.Notes = append(nc.Notes, n)
}

// Count returns the number of notes of kind k.
func (nc *NoteCollector) Count(k NoteKind) int {
	cnt := 0
	for _, n := range nc.Notes {
		if n.Kind == k {
			cnt++
		}
	}
	return cnt
}

var _ Reporter = (*NoteCollector)(nil)
