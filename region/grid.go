package region

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrRagged is returned for grids whose rows differ in length.
var ErrRagged = errors.New("region: rows have unequal lengths")

// A Point is a cell position; X is the column and Y the row.
type Point struct {
	X, Y int
}

func (p Point) add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

var (
	north = Point{0, -1}
	south = Point{0, 1}
	west  = Point{-1, 0}
	east  = Point{1, 0}

	dirs = [4]Point{north, east, south, west}

	// corners pairs each vertical direction with each horizontal one.
	corners = [4][2]Point{
		{north, east},
		{north, west},
		{south, east},
		{south, west},
	}
)

// A Grid is a rectangle of labeled cells.
type Grid struct {
	w, h   int
	labels []rune // row-major
}

// NewGrid builds a grid from its rows. All rows must have the same
// number of characters.
func NewGrid(rows []string) (*Grid, error) {
	g := &Grid{h: len(rows)}
	for y, row := range rows {
		rs := []rune(row)
		if y == 0 {
			g.w = len(rs)
		} else if len(rs) != g.w {
			return nil, fmt.Errorf("%w: row %d has %d cells; row 0 has %d", ErrRagged, y, len(rs), g.w)
		}
		g.labels = append(g.labels, rs...)
	}
	return g, nil
}

// ParseGrid reads one row per line. Trailing blank lines are ignored.
func ParseGrid(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return NewGrid(rows)
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

func (g *Grid) inBounds(p Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

func (g *Grid) index(p Point) int { return p.Y*g.w + p.X }

// At returns the label at p, or false if p is outside the grid.
func (g *Grid) At(p Point) (rune, bool) {
	if !g.inBounds(p) {
		return 0, false
	}
	return g.labels[g.index(p)], true
}

func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		b.WriteString(string(g.labels[y*g.w : (y+1)*g.w]))
		b.WriteByte('\n')
	}
	return b.String()
}
