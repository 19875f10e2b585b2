package packet

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Pair is two packets read from consecutive lines.
type Pair struct {
	Left, Right Packet
}

// InOrder reports whether the pair is in the right order:
// the left packet orders strictly before the right one.
func (p Pair) InOrder() bool {
	return Less(p.Left, p.Right)
}

// ParsePairs reads blocks of two packet lines separated by blank lines.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var (
		pairs   []Pair
		pending []Packet
	)
	err := forLines(r, func(lineno int, line string) error {
		if line == "" {
			if len(pending) != 0 {
				return fmt.Errorf("line %d: pair has only one packet", lineno)
			}
			return nil
		}
		p, err := Parse(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		pending = append(pending, p)
		if len(pending) == 2 {
			pairs = append(pairs, Pair{pending[0], pending[1]})
			pending = pending[:0]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(pending) != 0 {
		return nil, fmt.Errorf("unpaired packet %s at end of input", pending[0])
	}
	return pairs, nil
}

// ParseList reads one packet per non-blank line.
func ParseList(r io.Reader) ([]Packet, error) {
	var ps []Packet
	err := forLines(r, func(lineno int, line string) error {
		if line == "" {
			return nil
		}
		p, err := Parse(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		ps = append(ps, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ps, nil
}

// Flatten returns the packets of pairs in input order.
func Flatten(pairs []Pair) []Packet {
	ps := make([]Packet, 0, 2*len(pairs))
	for _, p := range pairs {
		ps = append(ps, p.Left, p.Right)
	}
	return ps
}

func forLines(r io.Reader, fn func(lineno int, line string) error) error {
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		if err := fn(lineno, strings.TrimSpace(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}
