package render

import (
	"github.com/taigrr/prism/pkg/math3d"
)

// Rasterizer turns lines and triangles in canvas space into pixels and
// hands them to a Plotter. Depth testing is the plotter's job.
type Rasterizer struct {
	target                 Plotter
	Stats                  DrawStats // Counters for debugging/benchmarking
	DisableBackfaceCulling bool      // If true, fill both sides of triangles
}

// DrawStats counts the primitives a rasterizer has processed.
type DrawStats struct {
	LinesDrawn      int // Line segments rasterized
	TrianglesTested int // Triangles submitted
	TrianglesCulled int // Triangles dropped as back-facing
	TrianglesDrawn  int // Triangles filled
}

// NewRasterizer creates a rasterizer that plots into target.
func NewRasterizer(target Plotter) *Rasterizer {
	return &Rasterizer{target: target}
}

// ResetStats resets the draw statistics (call once per frame).
func (r *Rasterizer) ResetStats() {
	r.Stats = DrawStats{}
}

// DrawLine rasterizes the segment from (x0, y0, z0) to (x1, y1, z1) with
// Bresenham's algorithm. x and y are truncated to integers; depth is
// interpolated linearly along the major axis. Both endpoints are plotted.
func (r *Rasterizer) DrawLine(x0, y0, z0, x1, y1, z1 float64, c Color) {
	r.Stats.LinesDrawn++
	r.line(int(x0), int(y0), z0, int(x1), int(y1), z1, c)
}

func (r *Rasterizer) line(x0, y0 int, z0 float64, x1, y1 int, z1 float64, c Color) {
	// Always walk left to right; the depth travels with its endpoint.
	if x0 > x1 {
		x0, y0, z0, x1, y1, z1 = x1, y1, z1, x0, y0, z0
	}

	x, y, z := x0, y0, z0
	dx := x1 - x0
	dy := y1 - y0
	a := 2 * dy
	b := -2 * dx

	switch {
	case dx >= abs(dy) && dy > 0: // octant 1
		dz := (z1 - z0) / float64(dx+1)
		d := a + b/2
		for x < x1 {
			r.target.Plot(x, y, z, c)
			if d > 0 {
				y++
				d += b
			}
			x++
			z += dz
			d += a
		}
	case dx >= abs(dy): // octant 8
		dz := (z1 - z0) / float64(dx+1)
		d := a - b/2
		for x < x1 {
			r.target.Plot(x, y, z, c)
			if d < 0 {
				y--
				d -= b
			}
			x++
			z += dz
			d += a
		}
	case dy > 0: // octant 2
		dz := (z1 - z0) / float64(dy+1)
		d := a/2 + b
		for y < y1 {
			r.target.Plot(x, y, z, c)
			if d < 0 {
				x++
				d += a
			}
			y++
			z += dz
			d += b
		}
	default: // octant 7
		dz := (z1 - z0) / float64(-dy+1)
		d := a/2 - b
		for y > y1 {
			r.target.Plot(x, y, z, c)
			if d > 0 {
				x++
				d += a
			}
			y--
			z += dz
			d -= b
		}
	}
	r.target.Plot(x1, y1, z, c)
}

// DrawTriangle fills the triangle p0, p1, p2 with a flat color using a
// scanline walk from its lowest to its highest vertex. Back-facing
// triangles are skipped unless DisableBackfaceCulling is set. It reports
// whether the triangle was filled.
func (r *Rasterizer) DrawTriangle(p0, p1, p2 math3d.Vec3, c Color) bool {
	r.Stats.TrianglesTested++
	if !r.DisableBackfaceCulling && !IsFrontFacing(p0, p1, p2) {
		r.Stats.TrianglesCulled++
		return false
	}
	r.Stats.TrianglesDrawn++

	bot, mid, top := orderVertices(p0, p1, p2)
	r.scanline(bot, mid, top, c)
	return true
}

// below orders vertices by y, breaking ties by x.
func below(p, q math3d.Vec3) bool {
	return p.Y < q.Y || (p.Y == q.Y && p.X < q.X)
}

// orderVertices returns the vertices as bottom, middle, top.
func orderVertices(p0, p1, p2 math3d.Vec3) (bot, mid, top math3d.Vec3) {
	if below(p1, p0) {
		p0, p1 = p1, p0
	}
	if below(p2, p1) {
		p1, p2 = p2, p1
	}
	if below(p1, p0) {
		p0, p1 = p1, p0
	}
	return p0, p1, p2
}

func (r *Rasterizer) scanline(bot, mid, top math3d.Vec3, c Color) {
	yb, ym, yt := int(bot.Y), int(mid.Y), int(top.Y)

	// Long edge bottom to top, then the two short edges through mid.
	longRows := float64(yt - yb + 1)
	lowRows := float64(ym - yb + 1)
	highRows := float64(yt - ym + 1)

	dx0 := (top.X - bot.X) / longRows
	dz0 := (top.Z - bot.Z) / longRows
	dx1 := (mid.X - bot.X) / lowRows
	dz1 := (mid.Z - bot.Z) / lowRows
	dx2 := (top.X - mid.X) / highRows
	dz2 := (top.Z - mid.Z) / highRows

	x0, z0 := bot.X, bot.Z
	x1, z1 := bot.X, bot.Z

	y := yb
	for ; y < ym; y++ {
		r.span(x0, z0, x1, z1, y, c)
		x0 += dx0
		z0 += dz0
		x1 += dx1
		z1 += dz1
	}

	x1, z1 = mid.X, mid.Z
	for ; y <= yt; y++ {
		r.span(x0, z0, x1, z1, y, c)
		x0 += dx0
		z0 += dz0
		x1 += dx2
		z1 += dz2
	}
}

// span fills row y between the two edge crossings, inclusive.
func (r *Rasterizer) span(xa, za, xb, zb float64, y int, c Color) {
	left, right := int(xa), int(xb)
	if left > right {
		left, right = right, left
		za, zb = zb, za
	}
	dz := (zb - za) / float64(right-left+1)
	z := za
	for x := left; x <= right; x++ {
		r.target.Plot(x, y, z, c)
		z += dz
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
