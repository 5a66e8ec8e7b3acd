package pagerange

import (
	"bytes"
	"strconv"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// PageSet is a set of page numbers. Iteration over a page set is in
// ascending order of page numbers. The zero value is not usable, create
// page sets with NewPageSet.
type PageSet struct {
	pages *treeset.Set
}

// NewPageSet creates a page set, optionally pre-filled with pages.
func NewPageSet(pages ...int) *PageSet {
	ps := &PageSet{pages: treeset.NewWith(utils.IntComparator)}
	ps.Add(pages...)
	return ps
}

// Add adds pages to the set. Pages already contained are ignored.
func (ps *PageSet) Add(pages ...int) *PageSet {
	for _, p := range pages {
		ps.pages.Add(p)
	}
	return ps
}

// AddRange adds all pages from l to r, inclusive. Nothing is added for l > r.
func (ps *PageSet) AddRange(l, r int) *PageSet {
	if l > r {
		return ps
	}
	for i := l; ; i++ { // r may be math.MaxInt, so stop before i overflows
		ps.pages.Add(i)
		if i == r {
			break
		}
	}
	return ps
}

// Contains is true if page p is a member of the set.
func (ps *PageSet) Contains(p int) bool {
	if ps == nil {
		return false
	}
	return ps.pages.Contains(p)
}

// Len returns the number of pages in the set.
func (ps *PageSet) Len() int {
	if ps == nil {
		return 0
	}
	return ps.pages.Size()
}

// Pages returns the members of the set in ascending order.
func (ps *PageSet) Pages() []int {
	if ps == nil {
		return nil
	}
	pages := make([]int, 0, ps.pages.Size())
	it := ps.pages.Iterator()
	for it.Next() {
		pages = append(pages, it.Value().(int))
	}
	return pages
}

// Each calls f for every page in ascending order.
func (ps *PageSet) Each(f func(p int)) {
	if ps == nil {
		return
	}
	ps.pages.Each(func(_ int, v interface{}) {
		f(v.(int))
	})
}

// Equals is true if both sets contain the same pages.
func (ps *PageSet) Equals(other *PageSet) bool {
	if ps.Len() != other.Len() {
		return false
	}
	eq := true
	ps.Each(func(p int) {
		eq = eq && other.Contains(p)
	})
	return eq
}

// String returns the set as a list of pages, e.g. "{1 3 4 5}".
func (ps *PageSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	ps.Each(func(p int) {
		if !first {
			b.WriteString(" ")
		}
		first = false
		b.WriteString(strconv.Itoa(p))
	})
	b.WriteString("}")
	return b.String()
}
