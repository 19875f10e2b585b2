package interval

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func mustEntry(dest, src, length uint64) Entry {
	e, err := NewEntry(dest, src, length)
	if err != nil {
		panic(err)
	}
	return e
}

func seedToSoil(t *testing.T) *Map {
	t.Helper()
	m, err := NewMap("seed", "soil", []Entry{mustEntry(52, 50, 48), mustEntry(50, 98, 2)})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMapApply(t *testing.T) {
	m := seedToSoil(t)
	for _, tt := range []struct {
		in   Range
		want []Range
	}{
		{Range{79, 80}, []Range{{81, 82}}},
		{Range{98, 100}, []Range{{50, 52}}},
		{Range{79, 93}, []Range{{81, 95}}},
		{Range{10, 20}, []Range{{10, 20}}},
		{Range{40, 60}, []Range{{40, 50}, {52, 62}}},
		{Range{97, 99}, []Range{{99, 100}, {50, 51}}},
		{Range{45, 105}, []Range{{45, 50}, {52, 100}, {50, 52}, {100, 105}}},
		{Range{100, 101}, []Range{{100, 101}}},
	} {
		got := m.Apply(nil, tt.in)
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("Apply(%s): got %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestMapLookup(t *testing.T) {
	m := seedToSoil(t)
	for _, tt := range []struct {
		in, want uint64
	}{
		{0, 0}, {49, 49}, {50, 52}, {97, 99}, {98, 50}, {99, 51}, {100, 100},
	} {
		if got := m.Lookup(tt.in); got != tt.want {
			t.Errorf("Lookup(%d): got %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewMapErrors(t *testing.T) {
	for _, tt := range []struct {
		entries []Entry
		want    error
	}{
		{[]Entry{mustEntry(0, 10, 5), mustEntry(100, 14, 3)}, ErrOverlap},
		{[]Entry{mustEntry(0, 10, 5), mustEntry(100, 10, 1)}, ErrOverlap},
		{[]Entry{{Source: Range{5, 5}, Dest: 1}}, ErrEmptyRange},
		{[]Entry{{Source: Range{0, 10}, Dest: math.MaxUint64 - 3}}, ErrUnderflow},
	} {
		_, err := NewMap("a", "b", tt.entries)
		if !errors.Is(err, tt.want) {
			t.Errorf("NewMap(%v): got error %v; want %v", tt.entries, err, tt.want)
		}
	}
	if _, err := NewEntry(0, 1, 0); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("NewEntry with zero length: got %v; want %v", err, ErrEmptyRange)
	}
	if _, err := NewEntry(0, math.MaxUint64, 2); !errors.Is(err, ErrUnderflow) {
		t.Errorf("NewEntry past the end: got %v; want %v", err, ErrUnderflow)
	}
}

func TestSample(t *testing.T) {
	for _, tt := range []struct {
		mode SeedMode
		want uint64
	}{
		{SeedSingletons, 35},
		{SeedPairs, 46},
	} {
		a, err := ParseAlmanac(strings.NewReader(sample), tt.mode)
		if err != nil {
			t.Fatal(err)
		}
		got, err := a.Lowest("location")
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: got lowest location %d; want %d", tt.mode, got, tt.want)
		}
	}
}

func TestSampleSingletonsMatchLookup(t *testing.T) {
	a, err := ParseAlmanac(strings.NewReader(sample), SeedSingletons)
	if err != nil {
		t.Fatal(err)
	}
	chain, err := a.Maps.Convert("seed", "location")
	if err != nil {
		t.Fatal(err)
	}
	want := []uint64{82, 43, 86, 35}
	for i, seed := range a.Seeds {
		if got := chain.Lookup(seed.Start); got != want[i] {
			t.Errorf("seed %d: got location %d; want %d", seed.Start, got, want[i])
		}
		rs := chain.Apply([]Range{seed})
		if diff := pretty.Diff(rs, []Range{{want[i], want[i] + 1}}); len(diff) > 0 {
			t.Errorf("seed %d: got ranges %v", seed.Start, rs)
		}
	}
}

func TestConvertOrder(t *testing.T) {
	b, _ := NewMap("b", "c", []Entry{mustEntry(0, 10, 10)})
	a, _ := NewMap("a", "b", []Entry{mustEntry(10, 0, 10)})
	p := Pipeline{b, a}
	chain, err := p.Convert("a", "c")
	if err != nil {
		t.Fatal(err)
	}
	if len(chain) != 2 || chain[0] != a || chain[1] != b {
		t.Fatalf("Convert(a, c): got %v", chain)
	}
	if got := chain.Lookup(3); got != 3 {
		t.Errorf("Lookup(3): got %d; want 3", got)
	}
	if _, err := p.Convert("a", "z"); err == nil {
		t.Error("Convert(a, z): got nil error")
	}
	loop, _ := NewMap("c", "a", nil)
	if _, err := append(p, loop).Convert("a", "z"); err == nil {
		t.Error("Convert through a loop: got nil error")
	}
}

func TestParseAlmanacErrors(t *testing.T) {
	for _, tt := range []struct {
		in   string
		mode SeedMode
	}{
		{"", SeedSingletons},
		{"seed: 1 2\n", SeedSingletons},
		{"seeds: 1 x\n", SeedSingletons},
		{"seeds: 1 2 3\n", SeedPairs},
		{"seeds: 1 0\n", SeedPairs},
		{"seeds: 1\n1 2 3\n", SeedSingletons},
		{"seeds: 1\nseed-soil map:\n", SeedSingletons},
		{"seeds: 1\nseed-to-soil map:\n1 2\n", SeedSingletons},
		{"seeds: 1\nseed-to-soil map:\n1 2 0\n", SeedSingletons},
		{"seeds: 1\nseed-to-soil map:\n0 10 5\n50 12 5\n", SeedSingletons},
	} {
		if _, err := ParseAlmanac(strings.NewReader(tt.in), tt.mode); err == nil {
			t.Errorf("ParseAlmanac(%q, %s): got nil error", tt.in, tt.mode)
		}
	}
}

func randMap(r *rand.Rand, from, to string) *Map {
	var entries []Entry
	start := uint64(r.Intn(10))
	for start < 150 {
		length := uint64(r.Intn(20) + 1)
		if r.Intn(2) == 0 {
			entries = append(entries, mustEntry(uint64(r.Intn(200)), start, length))
		}
		start += length + uint64(r.Intn(5))
	}
	m, err := NewMap(from, to, entries)
	if err != nil {
		panic(err)
	}
	return m
}

func randRanges(r *rand.Rand) []Range {
	rs := make([]Range, r.Intn(5)+1)
	for i := range rs {
		start := uint64(r.Intn(180))
		rs[i] = Range{start, start + uint64(r.Intn(30)+1)}
	}
	return rs
}

// pointCounts returns how many times each value is covered by rs.
func pointCounts(rs []Range) map[uint64]int {
	counts := make(map[uint64]int)
	for _, r := range rs {
		for v := r.Start; v < r.End; v++ {
			counts[v]++
		}
	}
	return counts
}

func TestApplyMatchesLookup(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		p := Pipeline{randMap(r, "a", "b"), randMap(r, "b", "c"), randMap(r, "c", "d")}
		in := randRanges(r)
		cur := in
		for _, m := range p {
			next := m.ApplyAll(cur)
			if Measure(next) != Measure(cur) {
				t.Fatalf("%s changed measure from %d to %d", m, Measure(cur), Measure(next))
			}
			for _, out := range next {
				if out.Empty() {
					t.Fatalf("%s emitted empty range", m)
				}
			}
			cur = next
		}
		want := make(map[uint64]int)
		for _, rg := range in {
			for v := rg.Start; v < rg.End; v++ {
				want[p.Lookup(v)]++
			}
		}
		if diff := pretty.Diff(pointCounts(p.Apply(in)), want); len(diff) > 0 {
			t.Fatalf("Apply(%v) disagrees with Lookup:\n%s", in, strings.Join(diff, "\n"))
		}
	}
}

func TestApplyRespectsEntryBoundaries(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 300; i++ {
		m := randMap(r, "a", "b")
		in := randRanges(r)[0]
		// Apply emits pieces in source order, so the source piece behind
		// each output can be recovered by walking in from its start.
		src := in.Start
		for _, out := range m.Apply(nil, in) {
			piece := Range{src, src + out.Len()}
			src = piece.End
			if got := m.Lookup(piece.Start); got != out.Start {
				t.Fatalf("Apply(%s): piece %s maps to %d, not %s", in, piece, got, out)
			}
			var covering int
			for _, e := range m.entries {
				switch {
				case e.Source.Start <= piece.Start && piece.End <= e.Source.End:
					covering++
				case e.Source.Start < piece.End && piece.Start < e.Source.End:
					t.Fatalf("Apply(%s): piece %s straddles entry %s", in, piece, e.Source)
				}
			}
			if covering > 1 {
				t.Fatalf("Apply(%s): piece %s lies in %d entries", in, piece, covering)
			}
		}
		if src != in.End {
			t.Fatalf("Apply(%s): pieces end at %d", in, src)
		}
	}
}

func TestCoalesce(t *testing.T) {
	in := []Range{{10, 20}, {0, 5}, {5, 7}, {15, 25}, {30, 31}, {3, 3}}
	got := Coalesce(in)
	want := []Range{{0, 7}, {10, 25}, {30, 31}}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("Coalesce(%v): got %v; want %v", in, got, want)
	}
	if lo, _ := Min(in); lo != 0 {
		t.Errorf("Min: got %d; want 0", lo)
	}
	if _, ok := Min(nil); ok {
		t.Error("Min(nil) reported a value")
	}
}
