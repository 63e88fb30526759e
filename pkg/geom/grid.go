package geom

import (
	"fmt"
	"iter"
)

// Winding selects the vertex order Grid emits for each cell.
type Winding int

const (
	// CounterClockwise emits (r,c),(r,c+1),(r+1,c) and
	// (r,c+1),(r+1,c+1),(r+1,c).
	CounterClockwise Winding = iota
	// Clockwise emits the same two triangles with the order reversed.
	Clockwise
)

// Grid describes how a row-major grid of points is stitched into
// triangles. Point (r, c) lives at index r*Cols + c.
//
// Every cell between rows r, r+1 and columns c, c+1 becomes two triangles
// sharing the (r,c+1)-(r+1,c) diagonal. Without wrapping, the last row and
// column start no cells; with wrapping they connect back to row or
// column 0.
type Grid struct {
	Rows, Cols int
	WrapRows   bool
	WrapCols   bool
	Winding    Winding
}

func (g Grid) cellRows() int {
	if g.WrapRows {
		return max(g.Rows, 0)
	}
	return max(g.Rows-1, 0)
}

func (g Grid) cellCols() int {
	if g.WrapCols {
		return max(g.Cols, 0)
	}
	return max(g.Cols-1, 0)
}

// Len returns the number of points the grid expects.
func (g Grid) Len() int {
	return max(g.Rows, 0) * max(g.Cols, 0)
}

// TriangleCount returns how many triangles Stitch emits.
func (g Grid) TriangleCount() int {
	return 2 * g.cellRows() * g.cellCols()
}

// Triangles iterates over the index triples of every triangle, cell by
// cell in row-major order.
func (g Grid) Triangles() iter.Seq[[3]int] {
	return func(yield func([3]int) bool) {
		for r := range g.cellRows() {
			r1 := (r + 1) % g.Rows
			for c := range g.cellCols() {
				c1 := (c + 1) % g.Cols
				a := r*g.Cols + c
				b := r*g.Cols + c1
				d := r1*g.Cols + c
				e := r1*g.Cols + c1

				first, second := [3]int{a, b, d}, [3]int{b, e, d}
				if g.Winding == Clockwise {
					first, second = [3]int{a, d, b}, [3]int{b, d, e}
				}
				if !yield(first) || !yield(second) {
					return
				}
			}
		}
	}
}

// Stitch appends the triangles of points, laid out as g, to out.
func (g Grid) Stitch(points *PointBuffer, out *TriangleList) error {
	if points.Len() != g.Len() {
		return fmt.Errorf("stitch %dx%d grid: have %d points, want %d", g.Rows, g.Cols, points.Len(), g.Len())
	}
	g.stitch(points, out)
	return nil
}

func (g Grid) stitch(points *PointBuffer, out *TriangleList) {
	for tri := range g.Triangles() {
		out.AppendTriangle(points.Point(tri[0]), points.Point(tri[1]), points.Point(tri[2]))
	}
}
