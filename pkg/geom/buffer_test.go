package geom

import (
	"errors"
	"testing"

	"github.com/taigrr/prism/pkg/math3d"
)

func TestPointBufferGrowth(t *testing.T) {
	var b PointBuffer
	if b.Len() != 0 || b.Cap() != 0 {
		t.Fatalf("zero buffer: len=%d cap=%d, want 0, 0", b.Len(), b.Cap())
	}

	for i := range 250 {
		b.Append(float64(i), float64(-i), float64(2*i))
		if b.Len() > b.Cap() {
			t.Fatalf("after %d appends len %d exceeds cap %d", i+1, b.Len(), b.Cap())
		}
	}

	if b.Len() != 250 {
		t.Errorf("Len() = %d, want 250", b.Len())
	}
	if b.Cap() != 300 {
		t.Errorf("Cap() = %d, want 300 (grown in chunks of %d)", b.Cap(), growChunk)
	}

	// Growth keeps every point at its index.
	for i, p := range b.All() {
		want := math3d.V4(float64(i), float64(-i), float64(2*i), 1)
		if p != want {
			t.Fatalf("point %d = %v, want %v", i, p, want)
		}
	}
}

func TestPointBufferPresized(t *testing.T) {
	b := NewPointBuffer(4)
	for range 4 {
		b.Append(1, 2, 3)
	}
	if b.Cap() != 4 {
		t.Errorf("Cap() = %d before overflow, want 4", b.Cap())
	}
	b.Append(4, 5, 6)
	if b.Cap() != 4+growChunk {
		t.Errorf("Cap() = %d after overflow, want %d", b.Cap(), 4+growChunk)
	}
	if got := b.Point(4); got != math3d.V3(4, 5, 6) {
		t.Errorf("Point(4) = %v, want (4, 5, 6)", got)
	}
}

func TestPointBufferAtOutOfRange(t *testing.T) {
	b := NewPointBuffer(10)
	b.Append(0, 0, 0)

	defer func() {
		if recover() == nil {
			t.Error("At(1) on a one-point buffer should panic")
		}
	}()
	_ = b.At(1)
}

func TestPointBufferReset(t *testing.T) {
	b := NewPointBuffer(0)
	b.Append(1, 1, 1)
	b.Append(2, 2, 2)
	capBefore := b.Cap()

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", b.Len())
	}
	if b.Cap() != capBefore {
		t.Errorf("Cap() after Reset = %d, want %d", b.Cap(), capBefore)
	}
}

func TestPointBufferTransform(t *testing.T) {
	b := NewPointBuffer(0)
	b.Append(1, 0, 0)
	b.Append(0, 2, 0)

	b.Transform(math3d.Translate(math3d.V3(10, 20, 30)))

	if got := b.At(0); got != math3d.V4(11, 20, 30, 1) {
		t.Errorf("point 0 = %v, want (11, 20, 30, 1)", got)
	}
	if got := b.At(1); got != math3d.V4(10, 22, 30, 1) {
		t.Errorf("point 1 = %v, want (10, 22, 30, 1)", got)
	}
}

func TestPointBufferBounds(t *testing.T) {
	b := NewPointBuffer(0)
	if got := b.Bounds(); got != (AABB{}) {
		t.Errorf("empty Bounds() = %v, want zero box", got)
	}

	b.Append(1, -2, 3)
	b.Append(-4, 5, 0)
	b.Append(2, 2, -6)

	want := NewAABB(math3d.V3(-4, -2, -6), math3d.V3(2, 5, 3))
	if got := b.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestEdgeListPairs(t *testing.T) {
	el := NewEdgeList()
	el.AppendEdge(0, 0, 0, 5, 5, 5)
	el.AppendEdge(1, 2, 3, 4, 5, 6)

	if el.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", el.Len())
	}
	a, b := el.Edge(1)
	if a != math3d.V3(1, 2, 3) || b != math3d.V3(4, 5, 6) {
		t.Errorf("Edge(1) = %v, %v, want (1,2,3), (4,5,6)", a, b)
	}

	n := 0
	for range el.Edges() {
		n++
	}
	if n != 2 {
		t.Errorf("Edges() yielded %d edges, want 2", n)
	}
}

func TestEdgesFromOddLength(t *testing.T) {
	buf := NewPointBuffer(0)
	for i := range 5 {
		buf.Append(float64(i), 0, 0)
	}

	el := EdgesFrom(buf)
	if el.Len() != 2 {
		t.Errorf("Len() = %d for 5 points, want 2 (trailing point ignored)", el.Len())
	}
}

func TestTrianglesFrom(t *testing.T) {
	tests := []struct {
		name    string
		points  int
		wantErr bool
		wantLen int
	}{
		{"empty", 0, false, 0},
		{"one triangle", 3, false, 1},
		{"two triangles", 6, false, 2},
		{"four points", 4, true, 0},
		{"eight points", 8, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := NewPointBuffer(0)
			for i := range tc.points {
				buf.Append(float64(i), 0, 0)
			}

			tl, err := TrianglesFrom(buf)
			if tc.wantErr {
				if !errors.Is(err, ErrTriangleCount) {
					t.Errorf("TrianglesFrom(%d points) error = %v, want ErrTriangleCount", tc.points, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("TrianglesFrom(%d points) unexpected error: %v", tc.points, err)
			}
			if tl.Len() != tc.wantLen {
				t.Errorf("Len() = %d, want %d", tl.Len(), tc.wantLen)
			}
		})
	}
}

func TestTriangleListKeepsOrder(t *testing.T) {
	tl := NewTriangleList()
	p0, p1, p2 := math3d.V3(0, 0, 0), math3d.V3(0, 10, 0), math3d.V3(10, 0, 0)
	tl.AppendTriangle(p0, p1, p2)

	got := tl.Triangle(0)
	if got != [3]math3d.Vec3{p0, p1, p2} {
		t.Errorf("Triangle(0) = %v, want vertices in the order appended", got)
	}
	if tl.Points().Len() != 3 {
		t.Errorf("underlying buffer holds %d points, want 3", tl.Points().Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tl := NewTriangleList()
	tl.AppendTriangle(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))

	c := tl.Clone()
	c.Transform(math3d.Translate(math3d.V3(5, 5, 5)))

	if got := tl.Triangle(0)[0]; got != math3d.V3(0, 0, 0) {
		t.Errorf("original moved to %v after transforming the clone", got)
	}
	if got := c.Triangle(0)[0]; got != math3d.V3(5, 5, 5) {
		t.Errorf("clone vertex = %v, want (5, 5, 5)", got)
	}
}

func TestConcat(t *testing.T) {
	a := NewEdgeList()
	a.AppendEdge(0, 0, 0, 1, 1, 1)
	b := NewEdgeList()
	b.AppendEdge(2, 2, 2, 3, 3, 3)
	b.Points().Append(9, 9, 9) // unpaired, dropped

	a.Concat(b)
	if a.Len() != 2 || a.Points().Len() != 4 {
		t.Fatalf("concatenated list has %d edges, %d points; want 2, 4", a.Len(), a.Points().Len())
	}
	if s, e := a.Edge(1); s != math3d.V3(2, 2, 2) || e != math3d.V3(3, 3, 3) {
		t.Errorf("edge 1 = %v-%v", s, e)
	}

	tl := NewTriangleList()
	other := NewTriangleList()
	AppendBox(other, 0, 0, 0, 1, 1, 1)
	tl.Concat(other)
	tl.Concat(other)
	if tl.Len() != 24 {
		t.Errorf("Len() = %d, want 24", tl.Len())
	}
}

func TestZeroValueLists(t *testing.T) {
	var el EdgeList
	if el.Len() != 0 {
		t.Errorf("zero EdgeList Len() = %d, want 0", el.Len())
	}
	el.AppendEdge(0, 0, 0, 1, 1, 1)
	if el.Len() != 1 {
		t.Errorf("EdgeList Len() = %d, want 1", el.Len())
	}

	var tl TriangleList
	if tl.Len() != 0 {
		t.Errorf("zero TriangleList Len() = %d, want 0", tl.Len())
	}
	tl.AppendTriangle(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))
	if tl.Len() != 1 || tl.Points().Len() != 3 {
		t.Errorf("TriangleList Len() = %d with %d points, want 1 with 3", tl.Len(), tl.Points().Len())
	}

	var other TriangleList
	tl.Concat(&other)
	other.Concat(&tl)
	if other.Len() != 1 {
		t.Errorf("Concat into zero list: Len() = %d, want 1", other.Len())
	}
}
