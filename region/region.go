// Package region splits a grid of labeled cells into regions of
// 4-connected cells sharing a label and measures each region's area,
// perimeter and number of straight sides.
package region

import (
	"cmp"
	"fmt"
	"slices"
)

// A Region is a maximal 4-connected set of cells with the same label.
// Two disjoint regions may share a label.
type Region struct {
	Label rune

	id    int
	ids   []int // region id of every grid cell, shared by all regions of a grid
	grid  *Grid
	cells []Point // row-major
}

// Segment partitions g into regions. Regions are returned in the
// row-major order of their first cell.
func Segment(g *Grid) []*Region {
	ids := make([]int, len(g.labels))
	for i := range ids {
		ids[i] = -1
	}
	var (
		regions []*Region
		stack   []Point
	)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			start := Point{x, y}
			if ids[g.index(start)] >= 0 {
				continue
			}
			r := &Region{
				Label: g.labels[g.index(start)],
				id:    len(regions),
				ids:   ids,
				grid:  g,
			}
			ids[g.index(start)] = r.id
			stack = append(stack[:0], start)
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				r.cells = append(r.cells, p)
				for _, d := range dirs {
					q := p.add(d)
					if !g.inBounds(q) {
						continue
					}
					i := g.index(q)
					if ids[i] < 0 && g.labels[i] == r.Label {
						ids[i] = r.id
						stack = append(stack, q)
					}
				}
			}
			slices.SortFunc(r.cells, func(a, b Point) int {
				if c := cmp.Compare(a.Y, b.Y); c != 0 {
					return c
				}
				return cmp.Compare(a.X, b.X)
			})
			regions = append(regions, r)
		}
	}
	for i, id := range ids {
		if id < 0 {
			panic(fmt.Sprintf("cell %d not assigned to a region", i))
		}
	}
	return regions
}

// Contains reports whether p is a cell of r.
func (r *Region) Contains(p Point) bool {
	return r.grid.inBounds(p) && r.ids[r.grid.index(p)] == r.id
}

// Cells returns r's cells in row-major order.
func (r *Region) Cells() []Point {
	return slices.Clone(r.cells)
}

// Area returns the number of cells in r.
func (r *Region) Area() int { return len(r.cells) }

// Perimeter returns the number of unit edges between a cell of r and
// a cell outside r or outside the grid.
func (r *Region) Perimeter() int {
	var n int
	for _, p := range r.cells {
		for _, d := range dirs {
			if !r.Contains(p.add(d)) {
				n++
			}
		}
	}
	return n
}

// Sides returns the number of maximal straight segments of r's
// boundary, including the boundaries of any holes. It counts corners,
// which are as many as sides: a cell has a convex corner where neither
// neighbor toward it is in r, and a concave one where both are but the
// diagonal cell between them is not.
func (r *Region) Sides() int {
	var n int
	for _, p := range r.cells {
		for _, c := range corners {
			v, h := r.Contains(p.add(c[0])), r.Contains(p.add(c[1]))
			switch {
			case !v && !h:
				n++
			case v && h && !r.Contains(p.add(c[0]).add(c[1])):
				n++
			}
		}
	}
	return n
}

func (r *Region) String() string {
	return fmt.Sprintf("%c region at %v (area %d)", r.Label, r.cells[0], len(r.cells))
}

// Cost returns the sum of area×perimeter over regions.
func Cost(regions []*Region) int {
	var total int
	for _, r := range regions {
		total += r.Area() * r.Perimeter()
	}
	return total
}

// BulkCost returns the sum of area×sides over regions.
func BulkCost(regions []*Region) int {
	var total int
	for _, r := range regions {
		total += r.Area() * r.Sides()
	}
	return total
}
