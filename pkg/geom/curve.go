package geom

import (
	"fmt"
	"strings"

	"github.com/taigrr/prism/pkg/math3d"
)

// CurveFamily selects the blending matrix used to turn four control values
// into cubic coefficients.
type CurveFamily int

const (
	// Hermite curves take two endpoints followed by the tangent (rate of
	// change) at each endpoint: P0, P1, R0, R1.
	Hermite CurveFamily = iota
	// Bezier curves take four control points P0..P3; the curve passes
	// through P0 and P3.
	Bezier
)

var (
	hermiteBasis = math3d.FromRows(
		[4]float64{2, -2, 1, 1},
		[4]float64{-3, 3, -2, -1},
		[4]float64{0, 0, 1, 0},
		[4]float64{1, 0, 0, 0},
	)
	bezierBasis = math3d.FromRows(
		[4]float64{-1, 3, -3, 1},
		[4]float64{3, -6, 3, 0},
		[4]float64{-3, 3, 0, 0},
		[4]float64{1, 0, 0, 0},
	)
)

// String returns the lowercase family name.
func (f CurveFamily) String() string {
	switch f {
	case Hermite:
		return "hermite"
	case Bezier:
		return "bezier"
	default:
		return fmt.Sprintf("CurveFamily(%d)", int(f))
	}
}

// ParseCurveFamily maps "hermite" or "bezier" (any case) to a family.
func ParseCurveFamily(s string) (CurveFamily, error) {
	switch strings.ToLower(s) {
	case "hermite":
		return Hermite, nil
	case "bezier":
		return Bezier, nil
	default:
		return 0, fmt.Errorf("unknown curve family %q", s)
	}
}

// Basis returns the family's blending matrix.
func (f CurveFamily) Basis() math3d.Mat4 {
	if f == Hermite {
		return hermiteBasis
	}
	return bezierBasis
}

// CurveCoefficients returns a, b, c, d such that
// value(t) = a·t³ + b·t² + c·t + d for one axis of the curve.
func CurveCoefficients(v0, v1, v2, v3 float64, family CurveFamily) [4]float64 {
	return family.Basis().MulVec4(math3d.V4(v0, v1, v2, v3)).Components()
}

// EvalCubic evaluates the cubic with the given coefficients at t.
func EvalCubic(coefs [4]float64, t float64) float64 {
	return ((coefs[0]*t+coefs[1])*t+coefs[2])*t + coefs[3]
}

// AppendCurve adds step edges approximating a cubic curve in the z = 0
// plane. The four (x, y) pairs are the control values for family. The
// curve is sampled at t = i/step for i = 1..step, each edge running from
// the previous sample to the new one, starting from (x0, y0).
func AppendCurve(el *EdgeList, x0, y0, x1, y1, x2, y2, x3, y3 float64, step int, family CurveFamily) {
	xc := CurveCoefficients(x0, x1, x2, x3, family)
	yc := CurveCoefficients(y0, y1, y2, y3, family)

	px, py := x0, y0
	for i := 1; i <= step; i++ {
		t := float64(i) / float64(step)
		x := EvalCubic(xc, t)
		y := EvalCubic(yc, t)
		el.AppendEdge(px, py, 0, x, y, 0)
		px, py = x, y
	}
}
