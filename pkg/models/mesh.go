// Package models loads and saves triangle meshes so external models can
// be drawn alongside prism's generated shapes.
package models

import (
	"github.com/taigrr/prism/pkg/geom"
	"github.com/taigrr/prism/pkg/math3d"
)

// Mesh is an indexed triangle mesh. Faces wind counter-clockwise when
// seen from outside, the same convention the rasterizer culls with.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    [][3]int // Indices into Vertices

	// Bounding box (calculated on load)
	Bounds geom.AABB
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([][3]int, 0),
	}
}

// MeshFromTriangles builds a mesh from a triangle list, merging points
// that share exact coordinates.
func MeshFromTriangles(name string, tl *geom.TriangleList) *Mesh {
	m := NewMesh(name)
	index := make(map[math3d.Vec3]int)
	for tri := range tl.Triangles() {
		var f [3]int
		for k, p := range tri {
			i, ok := index[p]
			if !ok {
				i = len(m.Vertices)
				index[p] = i
				m.Vertices = append(m.Vertices, p)
			}
			f[k] = i
		}
		m.Faces = append(m.Faces, f)
	}
	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = geom.AABB{}
		return
	}

	b := geom.NewAABB(m.Vertices[0], m.Vertices[0])
	for _, v := range m.Vertices[1:] {
		b = b.Extend(v)
	}
	m.Bounds = b
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.Bounds.Center()
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.Bounds.Size()
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Normalize moves the mesh so its bounding box is centered on the origin
// and its largest dimension equals size.
func (m *Mesh) Normalize(size float64) {
	ext := m.Size()
	largest := max(ext.X, ext.Y, ext.Z)
	if largest == 0 {
		return
	}
	m.Transform(math3d.ScaleUniform(size / largest).
		Mul(math3d.Translate(m.Center().Scale(-1))))
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:     m.Name,
		Vertices: make([]math3d.Vec3, len(m.Vertices)),
		Faces:    make([][3]int, len(m.Faces)),
		Bounds:   m.Bounds,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// AppendTo appends every face to tl, transformed by mat.
func (m *Mesh) AppendTo(tl *geom.TriangleList, mat math3d.Mat4) {
	for _, f := range m.Faces {
		tl.AppendTriangle(
			mat.MulVec3(m.Vertices[f[0]]),
			mat.MulVec3(m.Vertices[f[1]]),
			mat.MulVec3(m.Vertices[f[2]]),
		)
	}
}
