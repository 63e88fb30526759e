// Package geom builds the point buffers prism rasterizes: a growable
// sequence of homogeneous points, the edge and triangle views over it,
// and the parametric shape generators that fill them.
package geom

import (
	"errors"
	"fmt"
	"iter"

	"github.com/taigrr/prism/pkg/math3d"
)

// growChunk is how many slots a full buffer gains on append.
const growChunk = 100

var (
	// ErrTriangleCount is returned when a raw buffer is viewed as a
	// triangle list but its length is not a multiple of 3.
	ErrTriangleCount = errors.New("point count is not a multiple of 3")
)

// PointBuffer is an ordered, growable sequence of homogeneous points
// (W = 1). Its logical length is tracked separately from the allocated
// capacity. The zero value is an empty buffer ready for use.
//
// A PointBuffer carries no semantic tag; read it through an EdgeList or a
// TriangleList.
type PointBuffer struct {
	points []math3d.Vec4 // len(points) is the capacity
	n      int
}

// NewPointBuffer creates an empty buffer with room for capacity points.
func NewPointBuffer(capacity int) *PointBuffer {
	return &PointBuffer{points: make([]math3d.Vec4, max(capacity, 0))}
}

// Append adds the point (x, y, z, 1), growing the buffer if it is full.
func (b *PointBuffer) Append(x, y, z float64) {
	if b.n == len(b.points) {
		b.grow()
	}
	b.points[b.n] = math3d.Point(x, y, z)
	b.n++
}

// AppendPoint adds p with W = 1.
func (b *PointBuffer) AppendPoint(p math3d.Vec3) {
	b.Append(p.X, p.Y, p.Z)
}

// grow adds growChunk slots, keeping existing points at their indices.
func (b *PointBuffer) grow() {
	next := make([]math3d.Vec4, len(b.points)+growChunk)
	copy(next, b.points[:b.n])
	b.points = next
}

// Len returns the number of points appended so far.
func (b *PointBuffer) Len() int {
	return b.n
}

// Cap returns the number of slots allocated.
func (b *PointBuffer) Cap() int {
	return len(b.points)
}

// At returns point i. It panics if i is outside [0, Len()).
func (b *PointBuffer) At(i int) math3d.Vec4 {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("geom: point index %d out of range [0, %d)", i, b.n))
	}
	return b.points[i]
}

// Point returns point i without its W component.
func (b *PointBuffer) Point(i int) math3d.Vec3 {
	return b.At(i).Vec3()
}

// All iterates over the points in order.
func (b *PointBuffer) All() iter.Seq2[int, math3d.Vec4] {
	return func(yield func(int, math3d.Vec4) bool) {
		for i := range b.n {
			if !yield(i, b.points[i]) {
				return
			}
		}
	}
}

// Reset sets the logical length to zero, keeping the allocation.
func (b *PointBuffer) Reset() {
	b.n = 0
}

// Clone returns an independent copy of the buffer.
func (b *PointBuffer) Clone() *PointBuffer {
	c := &PointBuffer{points: make([]math3d.Vec4, len(b.points)), n: b.n}
	copy(c.points, b.points[:b.n])
	return c
}

// Concat appends every point of o.
func (b *PointBuffer) Concat(o *PointBuffer) {
	for i := range o.n {
		b.AppendPoint(o.points[i].Vec3())
	}
}

// Transform replaces every point p with m·p. W is forced back to 1 so the
// buffer stays a set of points even under a matrix with a projective row.
func (b *PointBuffer) Transform(m math3d.Mat4) {
	for i := range b.n {
		p := m.MulVec4(b.points[i])
		if p.W != 0 && p.W != 1 {
			p = math3d.V4(p.X/p.W, p.Y/p.W, p.Z/p.W, 1)
		}
		p.W = 1
		b.points[i] = p
	}
}

// Bounds returns the axis-aligned box around every point. An empty buffer
// yields the zero box.
func (b *PointBuffer) Bounds() AABB {
	if b.n == 0 {
		return AABB{}
	}
	box := AABB{Min: b.points[0].Vec3(), Max: b.points[0].Vec3()}
	for _, p := range b.points[1:b.n] {
		box = box.Extend(p.Vec3())
	}
	return box
}

// EdgeList reads a point buffer two points at a time: each consecutive
// pair is one line segment. The zero value is an empty list.
type EdgeList struct {
	buf *PointBuffer
}

// NewEdgeList creates an empty edge list.
func NewEdgeList() *EdgeList {
	return &EdgeList{buf: &PointBuffer{}}
}

// EdgesFrom views buf as an edge list. A trailing unpaired point is
// ignored.
func EdgesFrom(buf *PointBuffer) *EdgeList {
	return &EdgeList{buf: buf}
}

// AppendEdge adds the segment (x0, y0, z0)-(x1, y1, z1).
func (l *EdgeList) AppendEdge(x0, y0, z0, x1, y1, z1 float64) {
	l.points().Append(x0, y0, z0)
	l.points().Append(x1, y1, z1)
}

// Len returns the number of complete edges.
func (l *EdgeList) Len() int {
	return l.points().Len() / 2
}

// Edge returns the endpoints of edge i.
func (l *EdgeList) Edge(i int) (a, b math3d.Vec3) {
	return l.points().Point(2 * i), l.points().Point(2*i + 1)
}

// Edges iterates over the complete edges.
func (l *EdgeList) Edges() iter.Seq2[math3d.Vec3, math3d.Vec3] {
	return func(yield func(math3d.Vec3, math3d.Vec3) bool) {
		for i := range l.Len() {
			if !yield(l.Edge(i)) {
				return
			}
		}
	}
}

// Points returns the underlying buffer.
func (l *EdgeList) Points() *PointBuffer {
	return l.points()
}

func (l *EdgeList) points() *PointBuffer {
	if l.buf == nil {
		l.buf = &PointBuffer{}
	}
	return l.buf
}

// Transform applies m to every endpoint.
func (l *EdgeList) Transform(m math3d.Mat4) {
	l.points().Transform(m)
}

// Clone returns an independent copy of the list.
func (l *EdgeList) Clone() *EdgeList {
	return &EdgeList{buf: l.points().Clone()}
}

// Concat appends every edge of o. A trailing unpaired point in o is
// dropped.
func (l *EdgeList) Concat(o *EdgeList) {
	for a, b := range o.Edges() {
		l.AppendEdge(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
}

// TriangleList reads a point buffer three points at a time: each
// consecutive triple is one triangle, counterclockwise when it faces the
// viewer. The zero value is an empty list.
type TriangleList struct {
	buf *PointBuffer
}

// NewTriangleList creates an empty triangle list.
func NewTriangleList() *TriangleList {
	return &TriangleList{buf: &PointBuffer{}}
}

// TrianglesFrom views buf as a triangle list. It fails with
// ErrTriangleCount if the length of buf is not a multiple of 3.
func TrianglesFrom(buf *PointBuffer) (*TriangleList, error) {
	if buf.Len()%3 != 0 {
		return nil, fmt.Errorf("triangle list of %d points: %w", buf.Len(), ErrTriangleCount)
	}
	return &TriangleList{buf: buf}, nil
}

// AppendTriangle adds the triangle p0, p1, p2. The points are stored in
// the order given; callers supply counterclockwise winding for
// front-facing triangles.
func (l *TriangleList) AppendTriangle(p0, p1, p2 math3d.Vec3) {
	l.points().AppendPoint(p0)
	l.points().AppendPoint(p1)
	l.points().AppendPoint(p2)
}

// Len returns the number of triangles.
func (l *TriangleList) Len() int {
	return l.points().Len() / 3
}

// Triangle returns the vertices of triangle i.
func (l *TriangleList) Triangle(i int) [3]math3d.Vec3 {
	return [3]math3d.Vec3{
		l.points().Point(3 * i),
		l.points().Point(3*i + 1),
		l.points().Point(3*i + 2),
	}
}

// Triangles iterates over the triangles in order.
func (l *TriangleList) Triangles() iter.Seq[[3]math3d.Vec3] {
	return func(yield func([3]math3d.Vec3) bool) {
		for i := range l.Len() {
			if !yield(l.Triangle(i)) {
				return
			}
		}
	}
}

// Points returns the underlying buffer.
func (l *TriangleList) Points() *PointBuffer {
	return l.points()
}

func (l *TriangleList) points() *PointBuffer {
	if l.buf == nil {
		l.buf = &PointBuffer{}
	}
	return l.buf
}

// Transform applies m to every vertex.
func (l *TriangleList) Transform(m math3d.Mat4) {
	l.points().Transform(m)
}

// Clone returns an independent copy of the list.
func (l *TriangleList) Clone() *TriangleList {
	return &TriangleList{buf: l.points().Clone()}
}

// Concat appends every triangle of o.
func (l *TriangleList) Concat(o *TriangleList) {
	l.points().Concat(o.points())
}
