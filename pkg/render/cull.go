package render

import "github.com/taigrr/prism/pkg/math3d"

// IsFrontFacing reports whether the triangle p0, p1, p2 faces the viewer,
// who looks down the depth axis from +z. That holds when the vertices run
// counter-clockwise on screen, i.e. the z component of
// (p1-p0) x (p2-p0) is positive. Edge-on and degenerate triangles are
// not front-facing.
func IsFrontFacing(p0, p1, p2 math3d.Vec3) bool {
	return Normal(p0, p1, p2).Z > 0
}

// Normal returns the unnormalized face normal (p1-p0) x (p2-p0).
func Normal(p0, p1, p2 math3d.Vec3) math3d.Vec3 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}
