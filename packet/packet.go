// Package packet implements the nested list packets of the distress
// signal puzzle: a parser, a canonical printer, and the total order used
// to decide whether a pair of packets is in the right order.
package packet

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// A Packet is either an integer or a list of packets.
// The zero Packet is the integer 0.
type Packet struct {
	IsList bool
	Int    uint32
	List   []Packet
}

// Int returns an integer packet.
func Int(n uint32) Packet {
	return Packet{Int: n}
}

// List returns a list packet holding elems.
func List(elems ...Packet) Packet {
	return Packet{IsList: true, List: elems}
}

// Divider returns the divider packet [[n]].
func Divider(n uint32) Packet {
	return List(List(Int(n)))
}

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("packet syntax error")

type parseState int

const (
	stateValue parseState = iota // a packet is required
	stateOpen                    // just after '[': a packet or ']'
	stateClosed                  // just after a packet: ',' or ']'
)

// Parse parses a single packet. The whole of s must be consumed.
func Parse(s string) (Packet, error) {
	var (
		stack [][]Packet // open lists, innermost last
		root  Packet
		done  bool
		state = stateValue
	)
	emit := func(p Packet) {
		if len(stack) == 0 {
			root = p
			done = true
		} else {
			top := len(stack) - 1
			stack[top] = append(stack[top], p)
		}
		state = stateClosed
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if done {
			return Packet{}, fmt.Errorf("%w: trailing %q at pos %d", ErrSyntax, c, i)
		}
		switch {
		case c == '[':
			if state == stateClosed {
				return Packet{}, fmt.Errorf("%w: unexpected '[' at pos %d", ErrSyntax, i)
			}
			stack = append(stack, []Packet{})
			state = stateOpen
		case c == ']':
			if len(stack) == 0 || state == stateValue {
				return Packet{}, fmt.Errorf("%w: unexpected ']' at pos %d", ErrSyntax, i)
			}
			elems := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			emit(List(elems...))
		case c == ',':
			if len(stack) == 0 || state != stateClosed {
				return Packet{}, fmt.Errorf("%w: unexpected ',' at pos %d", ErrSyntax, i)
			}
			state = stateValue
		case c >= '0' && c <= '9':
			if state == stateClosed {
				return Packet{}, fmt.Errorf("%w: unexpected digit at pos %d", ErrSyntax, i)
			}
			j := i + 1
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			n, err := strconv.ParseUint(s[i:j], 10, 32)
			if err != nil {
				return Packet{}, fmt.Errorf("%w: bad integer %q at pos %d: %s", ErrSyntax, s[i:j], i, err)
			}
			emit(Int(uint32(n)))
			i = j - 1
		default:
			return Packet{}, fmt.Errorf("%w: unexpected %q at pos %d", ErrSyntax, c, i)
		}
	}
	if len(stack) > 0 {
		return Packet{}, fmt.Errorf("%w: %d unclosed '['", ErrSyntax, len(stack))
	}
	if !done {
		return Packet{}, fmt.Errorf("%w: empty packet", ErrSyntax)
	}
	return root, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Packet {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String prints p in the canonical form accepted by Parse.
func (p Packet) String() string {
	var b strings.Builder
	p.write(&b)
	return b.String()
}

func (p Packet) write(b *strings.Builder) {
	if !p.IsList {
		b.WriteString(strconv.FormatUint(uint64(p.Int), 10))
		return
	}
	b.WriteByte('[')
	for i, e := range p.List {
		if i > 0 {
			b.WriteByte(',')
		}
		e.write(b)
	}
	b.WriteByte(']')
}

// Compare returns -1 if a orders before b, +1 if a orders after b,
// and 0 otherwise. An integer compared with a list is first wrapped in a
// single-element list, so Compare(Int(1), List(Int(1))) == 0
// even though the two packets are not Equal.
func Compare(a, b Packet) int {
	switch {
	case !a.IsList && !b.IsList:
		switch {
		case a.Int < b.Int:
			return -1
		case a.Int > b.Int:
			return 1
		}
		return 0
	case !a.IsList:
		return compareLists([]Packet{a}, b.List)
	case !b.IsList:
		return compareLists(a.List, []Packet{b})
	}
	return compareLists(a.List, b.List)
}

func compareLists(a, b []Packet) int {
	for i := 0; i < max(len(a), len(b)); i++ {
		if i >= len(a) {
			return -1
		}
		if i >= len(b) {
			return 1
		}
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether a orders strictly before b.
func Less(a, b Packet) bool {
	return Compare(a, b) < 0
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Packet) bool {
	if a.IsList != b.IsList {
		return false
	}
	if !a.IsList {
		return a.Int == b.Int
	}
	return slices.EqualFunc(a.List, b.List, Equal)
}

// Sort returns a copy of ps stably sorted by Compare.
func Sort(ps []Packet) []Packet {
	sorted := slices.Clone(ps)
	slices.SortStableFunc(sorted, Compare)
	return sorted
}

// Index returns the 1-based position of the first packet in ps
// structurally equal to p, or 0 if there is none.
func Index(ps []Packet, p Packet) int {
	for i, q := range ps {
		if Equal(p, q) {
			return i + 1
		}
	}
	return 0
}

// DecoderKey sorts ps together with the dividers [[2]] and [[6]]
// and returns the product of the dividers' 1-based positions.
func DecoderKey(ps []Packet) int {
	d2, d6 := Divider(2), Divider(6)
	all := make([]Packet, 0, len(ps)+2)
	all = append(all, ps...)
	all = append(all, d2, d6)
	sorted := Sort(all)
	i, j := Index(sorted, d2), Index(sorted, d6)
	if i == 0 || j == 0 {
		panic("divider packet lost while sorting")
	}
	return i * j
}
