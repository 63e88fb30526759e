package geom

import (
	"math"
	"testing"

	"github.com/taigrr/prism/pkg/math3d"
)

func normal(tri [3]math3d.Vec3) math3d.Vec3 {
	return tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
}

func centroid(tri [3]math3d.Vec3) math3d.Vec3 {
	return tri[0].Add(tri[1]).Add(tri[2]).Scale(1.0 / 3)
}

func TestAppendBox(t *testing.T) {
	tl := NewTriangleList()
	AppendBox(tl, 0, 0, 0, 10, 10, 10)

	if tl.Len() != 12 {
		t.Fatalf("box has %d triangles, want 12", tl.Len())
	}

	center := math3d.V3(5, -5, -5)
	for i := range tl.Len() {
		tri := tl.Triangle(i)
		n := normal(tri)
		if n.Len() == 0 {
			t.Errorf("triangle %d is degenerate", i)
			continue
		}
		if out := centroid(tri).Sub(center); n.Dot(out) <= 0 {
			t.Errorf("triangle %d normal %v points into the box", i, n)
		}
	}

	bounds := tl.Points().Bounds()
	want := NewAABB(math3d.V3(0, -10, -10), math3d.V3(10, 0, 0))
	if bounds != want {
		t.Errorf("box bounds = %v, want %v", bounds, want)
	}
}

func TestGenerateSphere(t *testing.T) {
	const step = 8
	center := math3d.V3(100, 50, -20)
	buf := GenerateSphere(center.X, center.Y, center.Z, 25, step)

	if buf.Len() != (step+1)*(step+1) {
		t.Fatalf("sphere has %d points, want %d", buf.Len(), (step+1)*(step+1))
	}
	for i, p := range buf.All() {
		if d := p.Vec3().Sub(center).Len(); math.Abs(d-25) > 1e-9 {
			t.Fatalf("point %d is %v from center, want 25", i, d)
		}
	}
}

func TestAppendSphereFacesOutward(t *testing.T) {
	const step = 10
	center := math3d.V3(0, 0, 0)
	tl := NewTriangleList()
	AppendSphere(tl, center.X, center.Y, center.Z, 50, step)

	if tl.Len() != 2*step*step {
		t.Fatalf("sphere has %d triangles, want %d", tl.Len(), 2*step*step)
	}

	degenerate := 0
	for i := range tl.Len() {
		tri := tl.Triangle(i)
		n := normal(tri)
		if n.Len() < 1e-9 {
			degenerate++
			continue
		}
		if n.Dot(centroid(tri).Sub(center)) <= 0 {
			t.Errorf("triangle %d faces inward", i)
		}
	}
	// One triangle per cell touches each pole and collapses.
	if degenerate != 2*step {
		t.Errorf("found %d degenerate pole triangles, want %d", degenerate, 2*step)
	}
}

func TestAppendTorusFacesOutward(t *testing.T) {
	const (
		step = 12
		r1   = 10.0
		r2   = 40.0
	)
	tl := NewTriangleList()
	AppendTorus(tl, 0, 0, 0, r1, r2, step)

	if tl.Len() != 2*step*step {
		t.Fatalf("torus has %d triangles, want %d", tl.Len(), 2*step*step)
	}

	for i := range tl.Len() {
		tri := tl.Triangle(i)
		c := centroid(tri)
		// Nearest point on the tube's center circle.
		ring := math3d.V3(c.X, 0, c.Z).Normalize().Scale(r2)
		if n := normal(tri); n.Dot(c.Sub(ring)) <= 0 {
			t.Errorf("triangle %d faces into the tube", i)
		}
	}
}

func TestGenerateTorusRadii(t *testing.T) {
	buf := GenerateTorus(0, 0, 0, 5, 20, 6)
	for i, p := range buf.All() {
		v := p.Vec3()
		ring := math.Hypot(v.X, v.Z) - 20
		if d := math.Hypot(ring, v.Y); math.Abs(d-5) > 1e-9 {
			t.Fatalf("point %d is %v from the tube center, want 5", i, d)
		}
	}
}

func TestZeroStepShapes(t *testing.T) {
	if n := GenerateSphere(0, 0, 0, 1, 0).Len(); n != 0 {
		t.Errorf("GenerateSphere(step=0) has %d points, want 0", n)
	}
	if n := GenerateTorus(0, 0, 0, 1, 2, 0).Len(); n != 0 {
		t.Errorf("GenerateTorus(step=0) has %d points, want 0", n)
	}

	tl := NewTriangleList()
	AppendSphere(tl, 0, 0, 0, 1, 0)
	AppendTorus(tl, 0, 0, 0, 1, 2, -3)
	if tl.Len() != 0 {
		t.Errorf("zero-step shapes appended %d triangles, want 0", tl.Len())
	}
}

func TestAppendCircle(t *testing.T) {
	el := NewEdgeList()
	AppendCircle(el, 0, 0, 7, 5, 4)

	if el.Len() != 4 {
		t.Fatalf("circle has %d edges, want 4", el.Len())
	}

	want := []math3d.Vec3{
		math3d.V3(5, 0, 7),
		math3d.V3(0, 5, 7),
		math3d.V3(-5, 0, 7),
		math3d.V3(0, -5, 7),
	}
	for i := range el.Len() {
		a, b := el.Edge(i)
		if !a.ApproxEqual(want[i], 1e-9) {
			t.Errorf("edge %d starts at %v, want %v", i, a, want[i])
		}
		if next := want[(i+1)%4]; !b.ApproxEqual(next, 1e-9) {
			t.Errorf("edge %d ends at %v, want %v", i, b, next)
		}
	}

	// Consecutive edges share endpoints and the loop closes.
	_, last := el.Edge(3)
	first, _ := el.Edge(0)
	if !last.ApproxEqual(first, 1e-9) {
		t.Errorf("circle does not close: last end %v, first start %v", last, first)
	}
}
