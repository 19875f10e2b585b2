package interval

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SeedMode selects how the numbers on the seeds line are read.
type SeedMode int

const (
	// SeedSingletons reads each number n as the range [n, n+1).
	SeedSingletons SeedMode = iota
	// SeedPairs reads consecutive numbers (start, length) as one range.
	SeedPairs
)

func (m SeedMode) String() string {
	switch m {
	case SeedSingletons:
		return "singletons"
	case SeedPairs:
		return "pairs"
	}
	return fmt.Sprintf("SeedMode(%d)", int(m))
}

// An Almanac is a set of seed ranges and the maps that convert them.
type Almanac struct {
	Seeds []Range
	Maps  Pipeline
}

// ParseAlmanac reads a seeds line followed by map blocks of the form
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
func ParseAlmanac(r io.Reader, mode SeedMode) (*Almanac, error) {
	var (
		a       Almanac
		seeded  bool
		from    string
		to      string
		entries []Entry
		inMap   bool
	)
	flush := func() error {
		if !inMap {
			return nil
		}
		m, err := NewMap(from, to, entries)
		if err != nil {
			return err
		}
		a.Maps = append(a.Maps, m)
		entries = nil
		inMap = false
		return nil
	}

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case !seeded:
			seeds, err := parseSeeds(line, mode)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			a.Seeds = seeds
			seeded = true
		case strings.HasSuffix(line, "map:"):
			if err := flush(); err != nil {
				return nil, err
			}
			name := strings.TrimSpace(strings.TrimSuffix(line, "map:"))
			var ok bool
			from, to, ok = strings.Cut(name, "-to-")
			if !ok || from == "" || to == "" {
				return nil, fmt.Errorf("line %d: bad map header %q", lineno, line)
			}
			inMap = true
		default:
			if !inMap {
				return nil, fmt.Errorf("line %d: entry %q outside of a map", lineno, line)
			}
			nums, err := parseNums(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			if len(nums) != 3 {
				return nil, fmt.Errorf("line %d: map entry needs 3 numbers; got %d", lineno, len(nums))
			}
			e, err := NewEntry(nums[0], nums[1], nums[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !seeded {
		return nil, errors.New("missing seeds line")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return &a, nil
}

func parseSeeds(line string, mode SeedMode) ([]Range, error) {
	rest, ok := strings.CutPrefix(line, "seeds:")
	if !ok {
		return nil, fmt.Errorf("bad seeds line %q", line)
	}
	nums, err := parseNums(rest)
	if err != nil {
		return nil, err
	}
	var seeds []Range
	switch mode {
	case SeedSingletons:
		for _, n := range nums {
			r, err := NewRange(n, 1)
			if err != nil {
				return nil, err
			}
			seeds = append(seeds, r)
		}
	case SeedPairs:
		if len(nums)%2 != 0 {
			return nil, fmt.Errorf("odd number of seed values (%d) in pairs mode", len(nums))
		}
		for i := 0; i < len(nums); i += 2 {
			r, err := NewRange(nums[i], nums[i+1])
			if err != nil {
				return nil, err
			}
			seeds = append(seeds, r)
		}
	default:
		panic("bad seed mode")
	}
	return seeds, nil
}

func parseNums(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	nums := make([]uint64, len(fields))
	for i, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

// Convert runs the seeds through the maps leading from "seed" to kind.
func (a *Almanac) Convert(kind string) ([]Range, error) {
	chain, err := a.Maps.Convert("seed", kind)
	if err != nil {
		return nil, err
	}
	return chain.Apply(a.Seeds), nil
}

// Lowest returns the smallest value of kind reachable from any seed.
func (a *Almanac) Lowest(kind string) (uint64, error) {
	rs, err := a.Convert(kind)
	if err != nil {
		return 0, err
	}
	n, ok := Min(rs)
	if !ok {
		return 0, errors.New("no seeds")
	}
	return n, nil
}
