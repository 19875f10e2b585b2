// Package interval maps sets of half-open ranges through pipelines of
// piecewise translations, as in the seed almanac puzzle.
package interval

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
)

var (
	ErrEmptyRange = errors.New("interval: empty range")
	ErrUnderflow  = errors.New("interval: range exceeds uint64 bounds")
	ErrOverlap    = errors.New("interval: overlapping map entries")
)

// A Range is the half-open interval [Start, End).
type Range struct {
	Start, End uint64
}

// NewRange returns [start, start+length).
func NewRange(start, length uint64) (Range, error) {
	if length == 0 {
		return Range{}, fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, start, start)
	}
	if start > math.MaxUint64-length {
		return Range{}, fmt.Errorf("%w: %d+%d", ErrUnderflow, start, length)
	}
	return Range{start, start + length}, nil
}

// Len returns the number of integers in r.
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether r contains no integers.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains reports whether v lies in r.
func (r Range) Contains(v uint64) bool { return r.Start <= v && v < r.End }

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// An Entry translates its Source range so that Source.Start lands on Dest.
type Entry struct {
	Source Range
	Dest   uint64
}

// NewEntry builds an entry from an almanac line's three numbers.
func NewEntry(dest, src, length uint64) (Entry, error) {
	source, err := NewRange(src, length)
	if err != nil {
		return Entry{}, err
	}
	if _, err := NewRange(dest, length); err != nil {
		return Entry{}, err
	}
	return Entry{Source: source, Dest: dest}, nil
}

func (e Entry) translate(v uint64) uint64 {
	return v - e.Source.Start + e.Dest
}

// A Map is a set of entries with pairwise disjoint sources, named by the
// kind of value it reads and the kind it produces. Values outside every
// entry map to themselves.
type Map struct {
	From, To string
	entries  []Entry // sorted by Source.Start
}

// NewMap validates entries and returns the map.
func NewMap(from, to string, entries []Entry) (*Map, error) {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(a.Source.Start, b.Source.Start)
	})
	for i, e := range sorted {
		if e.Source.Empty() {
			return nil, fmt.Errorf("%s-to-%s: %w: source %s", from, to, ErrEmptyRange, e.Source)
		}
		if e.Dest > math.MaxUint64-e.Source.Len() {
			return nil, fmt.Errorf("%s-to-%s: %w: destination %d+%d", from, to, ErrUnderflow, e.Dest, e.Source.Len())
		}
		if i > 0 && sorted[i-1].Source.End > e.Source.Start {
			return nil, fmt.Errorf("%s-to-%s: %w: %s and %s", from, to, ErrOverlap, sorted[i-1].Source, e.Source)
		}
	}
	return &Map{From: from, To: to, entries: sorted}, nil
}

// Entries returns the map's entries ordered by source start.
func (m *Map) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Lookup maps a single value.
func (m *Map) Lookup(v uint64) uint64 {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Source.End > v
	})
	if i < len(m.entries) && m.entries[i].Source.Contains(v) {
		return m.entries[i].translate(v)
	}
	return v
}

// Apply maps r, appending the images to dst. Each entry overlapping r
// contributes the translated overlap; the uncovered pieces of r are
// appended unchanged. The pieces are not coalesced.
func (m *Map) Apply(dst []Range, r Range) []Range {
	if r.Empty() {
		return dst
	}
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Source.End > r.Start
	})
	cur := r.Start
	for ; i < len(m.entries) && m.entries[i].Source.Start < r.End; i++ {
		e := m.entries[i]
		lo := max(cur, e.Source.Start)
		hi := min(r.End, e.Source.End)
		if cur < lo {
			dst = append(dst, Range{cur, lo})
		}
		dst = append(dst, Range{e.translate(lo), e.translate(hi)})
		cur = hi
	}
	if cur < r.End {
		dst = append(dst, Range{cur, r.End})
	}
	return dst
}

// ApplyAll maps every range in rs.
func (m *Map) ApplyAll(rs []Range) []Range {
	var out []Range
	for _, r := range rs {
		out = m.Apply(out, r)
	}
	return out
}

func (m *Map) String() string {
	return fmt.Sprintf("%s-to-%s (%d entries)", m.From, m.To, len(m.entries))
}

// A Pipeline is a sequence of maps applied left to right.
type Pipeline []*Map

// Apply runs rs through every map in p.
func (p Pipeline) Apply(rs []Range) []Range {
	for _, m := range p {
		rs = m.ApplyAll(rs)
	}
	return rs
}

// Lookup runs a single value through every map in p.
func (p Pipeline) Lookup(v uint64) uint64 {
	for _, m := range p {
		v = m.Lookup(v)
	}
	return v
}

// Convert returns the chain of maps leading from kind from to kind to,
// choosing at each step the map that reads the current kind.
func (p Pipeline) Convert(from, to string) (Pipeline, error) {
	byFrom := make(map[string]*Map, len(p))
	for _, m := range p {
		if _, ok := byFrom[m.From]; ok {
			return nil, fmt.Errorf("more than one map reads %q", m.From)
		}
		byFrom[m.From] = m
	}
	var chain Pipeline
	seen := map[string]bool{from: true}
	for kind := from; kind != to; {
		m, ok := byFrom[kind]
		if !ok {
			return nil, fmt.Errorf("no map from %q (converting %s to %s)", kind, from, to)
		}
		chain = append(chain, m)
		kind = m.To
		if seen[kind] {
			return nil, fmt.Errorf("maps loop back to %q", kind)
		}
		seen[kind] = true
	}
	return chain, nil
}

// Measure returns the total length of rs.
func Measure(rs []Range) uint64 {
	var n uint64
	for _, r := range rs {
		n += r.Len()
	}
	return n
}

// Min returns the smallest start among the non-empty ranges in rs.
func Min(rs []Range) (uint64, bool) {
	var (
		lowest uint64
		found  bool
	)
	for _, r := range rs {
		if r.Empty() {
			continue
		}
		if !found || r.Start < lowest {
			lowest = r.Start
			found = true
		}
	}
	return lowest, found
}

// Coalesce returns rs sorted with overlapping and adjacent ranges merged.
func Coalesce(rs []Range) []Range {
	sorted := slices.Clone(rs)
	slices.SortFunc(sorted, func(a, b Range) int {
		return cmp.Compare(a.Start, b.Start)
	})
	var out []Range
	for _, r := range sorted {
		if r.Empty() {
			continue
		}
		if n := len(out); n > 0 && out[n-1].End >= r.Start {
			out[n-1].End = max(out[n-1].End, r.End)
			continue
		}
		out = append(out, r)
	}
	return out
}
