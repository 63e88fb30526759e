package geom

import (
	"math"

	"github.com/taigrr/prism/pkg/math3d"
)

// AppendBox adds the 12 triangles of a rectangular prism to tl. (x, y, z)
// is the upper-left-front corner; the prism extends width along +x,
// height along -y and depth along -z. Every face is wound
// counterclockwise when seen from outside the box.
func AppendBox(tl *TriangleList, x, y, z, width, height, depth float64) {
	tx := x + width
	ty := y - height
	tz := z - depth

	v := math3d.V3
	faces := [6][2][3]math3d.Vec3{
		// front
		{
			{v(x, y, z), v(x, ty, z), v(tx, y, z)},
			{v(x, ty, z), v(tx, ty, z), v(tx, y, z)},
		},
		// back
		{
			{v(tx, y, tz), v(x, ty, tz), v(x, y, tz)},
			{v(tx, y, tz), v(tx, ty, tz), v(x, ty, tz)},
		},
		// top
		{
			{v(x, y, tz), v(x, y, z), v(tx, y, tz)},
			{v(x, y, z), v(tx, y, z), v(tx, y, tz)},
		},
		// bottom
		{
			{v(tx, ty, tz), v(x, ty, z), v(x, ty, tz)},
			{v(tx, ty, tz), v(tx, ty, z), v(x, ty, z)},
		},
		// left
		{
			{v(x, y, tz), v(x, ty, tz), v(x, y, z)},
			{v(x, ty, tz), v(x, ty, z), v(x, y, z)},
		},
		// right
		{
			{v(tx, y, z), v(tx, ty, tz), v(tx, y, tz)},
			{v(tx, y, z), v(tx, ty, z), v(tx, ty, tz)},
		},
	}

	for _, face := range faces {
		for _, tri := range face {
			tl.AppendTriangle(tri[0], tri[1], tri[2])
		}
	}
}

// SphereGrid is the stitch policy for GenerateSphere output.
func SphereGrid(step int) Grid {
	return Grid{Rows: step + 1, Cols: step + 1, Winding: CounterClockwise}
}

// TorusGrid is the stitch policy for GenerateTorus output. The torus
// parametrization sweeps the opposite way round from the sphere's, so the
// same cell split needs the reverse winding to face outward.
func TorusGrid(step int) Grid {
	return Grid{Rows: step + 1, Cols: step + 1, Winding: Clockwise}
}

// GenerateSphere samples a sphere of radius r around (cx, cy, cz). Row i
// rotates a semicircle by p = 2πi/step about the x axis; column j walks
// the semicircle by t = πj/step. Both sweeps include their endpoint, so
// the buffer holds (step+1)² points. A step below 1 yields an empty
// buffer.
func GenerateSphere(cx, cy, cz, r float64, step int) *PointBuffer {
	if step < 1 {
		return &PointBuffer{}
	}
	buf := NewPointBuffer((step + 1) * (step + 1))
	for i := 0; i <= step; i++ {
		p := float64(i) / float64(step) * 2 * math.Pi
		for j := 0; j <= step; j++ {
			t := float64(j) / float64(step) * math.Pi
			buf.Append(
				cx+r*math.Cos(t),
				cy+r*math.Sin(t)*math.Cos(p),
				cz+r*math.Sin(t)*math.Sin(p),
			)
		}
	}
	return buf
}

// AppendSphere tessellates a sphere into tl. It adds 2·step² triangles;
// the ones touching the poles have zero area.
func AppendSphere(tl *TriangleList, cx, cy, cz, r float64, step int) {
	if step < 1 {
		return
	}
	SphereGrid(step).stitch(GenerateSphere(cx, cy, cz, r, step), tl)
}

// GenerateTorus samples a torus around (cx, cy, cz) whose tube has radius
// r1 and whose tube center runs on a circle of radius r2 in the xz plane.
// Row i is the tube angle p = 2πi/step, column j the cross-section angle
// t = 2πj/step, both including the endpoint.
func GenerateTorus(cx, cy, cz, r1, r2 float64, step int) *PointBuffer {
	if step < 1 {
		return &PointBuffer{}
	}
	buf := NewPointBuffer((step + 1) * (step + 1))
	for i := 0; i <= step; i++ {
		p := float64(i) / float64(step) * 2 * math.Pi
		for j := 0; j <= step; j++ {
			t := float64(j) / float64(step) * 2 * math.Pi
			ring := r1*math.Cos(t) + r2
			buf.Append(
				cx+math.Cos(p)*ring,
				cy+r1*math.Sin(t),
				cz-math.Sin(p)*ring,
			)
		}
	}
	return buf
}

// AppendTorus tessellates a torus into tl, adding 2·step² triangles.
func AppendTorus(tl *TriangleList, cx, cy, cz, r1, r2 float64, step int) {
	if step < 1 {
		return
	}
	TorusGrid(step).stitch(GenerateTorus(cx, cy, cz, r1, r2, step), tl)
}

// AppendCircle adds a closed polygon of step edges approximating the
// circle of radius r around (cx, cy) at depth cz. The first edge starts at
// (cx+r, cy) and the last one ends there.
func AppendCircle(el *EdgeList, cx, cy, cz, r float64, step int) {
	x0, y0 := cx+r, cy
	for i := 1; i <= step; i++ {
		t := float64(i) / float64(step)
		x1 := r*math.Cos(2*math.Pi*t) + cx
		y1 := r*math.Sin(2*math.Pi*t) + cy
		el.AppendEdge(x0, y0, cz, x1, y1, cz)
		x0, y0 = x1, y1
	}
}
