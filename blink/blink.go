// Package blink counts the stones produced by repeatedly blinking at a
// row of engraved stones. Each blink rewrites every stone:
//
//   - 0 becomes 1;
//   - a number with an even count of digits splits into its two halves;
//   - anything else is multiplied by 2024.
//
// Stones never influence each other, so the count for a stone after n
// blinks depends only on its number and n and can be memoized.
package blink

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// ErrOverflow is returned when a stone number or a count
// no longer fits in a uint64.
var ErrOverflow = errors.New("blink: uint64 overflow")

// Step blinks once at stone v. It returns the first successor and,
// if v split, the second.
func Step(v uint64) (a, b uint64, split bool, err error) {
	if v == 0 {
		return 1, 0, false, nil
	}
	if n := numDigits(v); n%2 == 0 {
		hi, lo := splitDigits(v, n/2)
		return hi, lo, true, nil
	}
	hi, lo := bits.Mul64(v, 2024)
	if hi != 0 {
		return 0, 0, false, fmt.Errorf("%w: %d * 2024", ErrOverflow, v)
	}
	return lo, 0, false, nil
}

type key struct {
	stone  uint64
	blinks int
}

// A Counter memoizes stone counts across calls. The zero Counter is
// ready to use. A Counter must not be used concurrently.
type Counter struct {
	cache map[key]uint64
}

// Count returns the number of stones that v becomes after n blinks.
func (c *Counter) Count(v uint64, n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("negative blink count %d", n)
	}
	return c.count(v, n)
}

func (c *Counter) count(v uint64, n int) (uint64, error) {
	if n == 0 {
		return 1, nil
	}
	k := key{v, n}
	if total, ok := c.cache[k]; ok {
		return total, nil
	}
	a, b, split, err := Step(v)
	if err != nil {
		return 0, err
	}
	total, err := c.count(a, n-1)
	if err != nil {
		return 0, err
	}
	if split {
		nb, err := c.count(b, n-1)
		if err != nil {
			return 0, err
		}
		var carry uint64
		total, carry = bits.Add64(total, nb, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: stone %d after %d blinks", ErrOverflow, v, n)
		}
	}
	if c.cache == nil {
		c.cache = make(map[key]uint64)
	}
	c.cache[k] = total
	return total, nil
}

// CountAll returns the total number of stones after n blinks
// starting from stones.
func (c *Counter) CountAll(stones []uint64, n int) (uint64, error) {
	var total uint64
	for _, v := range stones {
		m, err := c.Count(v, n)
		if err != nil {
			return 0, err
		}
		var carry uint64
		total, carry = bits.Add64(total, m, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: total after %d blinks", ErrOverflow, n)
		}
	}
	return total, nil
}

// Len returns the number of memoized (stone, blinks) entries.
func (c *Counter) Len() int { return len(c.cache) }

// Reset drops every memoized entry.
func (c *Counter) Reset() { c.cache = nil }

// Count is CountAll with a fresh Counter.
func Count(stones []uint64, n int) (uint64, error) {
	var c Counter
	return c.CountAll(stones, n)
}

// Simulate blinks n times, materializing every stone.
// The row grows exponentially; use it only for small n.
func Simulate(stones []uint64, n int) ([]uint64, error) {
	row := append([]uint64(nil), stones...)
	for i := 0; i < n; i++ {
		next := make([]uint64, 0, 2*len(row))
		for _, v := range row {
			a, b, split, err := Step(v)
			if err != nil {
				return nil, err
			}
			next = append(next, a)
			if split {
				next = append(next, b)
			}
		}
		row = next
	}
	return row, nil
}

// ParseStones parses a line of space-separated stone numbers.
func ParseStones(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.New("no stones")
	}
	stones := make([]uint64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad stone %q: %s", field, err)
		}
		stones[i] = v
	}
	return stones, nil
}
