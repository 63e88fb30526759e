package math3d

import (
	"math"
	"testing"
)

func TestFromRows(t *testing.T) {
	m := FromRows(
		[4]float64{1, 2, 3, 4},
		[4]float64{5, 6, 7, 8},
		[4]float64{9, 10, 11, 12},
		[4]float64{13, 14, 15, 16},
	)

	tests := []struct {
		row, col int
		want     float64
	}{
		{0, 0, 1},
		{0, 3, 4},
		{1, 2, 7},
		{3, 0, 13},
		{3, 3, 16},
	}
	for _, tc := range tests {
		if got := m.Get(tc.row, tc.col); got != tc.want {
			t.Errorf("Get(%d, %d) = %v, want %v", tc.row, tc.col, got, tc.want)
		}
	}

	// Row-major input times a vector gives the row dot products.
	got := m.MulVec4(V4(1, 0, 0, 1))
	want := V4(1+4, 5+8, 9+12, 13+16)
	if got != want {
		t.Errorf("MulVec4 = %v, want %v", got, want)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(RotateZ(0.3))
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestTranslatePoint(t *testing.T) {
	got := Translate(V3(10, -5, 2)).MulVec4(Point(1, 1, 1))
	want := V4(11, -4, 3, 1)
	if got != want {
		t.Errorf("translated point = %v, want %v", got, want)
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	got := RotateZ(math.Pi / 2).MulVec3(V3(1, 0, 0))
	if !got.ApproxEqual(V3(0, 1, 0), 1e-9) {
		t.Errorf("RotateZ(pi/2) * x = %v, want (0, 1, 0)", got)
	}
}

func TestRotateAboutKeepsPivot(t *testing.T) {
	pivot := V3(5, 5, 5)
	m := RotateAbout(pivot, RotateY(1.1).Mul(RotateX(0.4)))
	if got := m.MulVec3(pivot); !got.ApproxEqual(pivot, 1e-9) {
		t.Errorf("pivot moved to %v", got)
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	m := RotateX(0.2).Mul(Translate(V3(3, 4, 5)))
	if got := m.Transpose().Transpose(); got != m {
		t.Errorf("double transpose = %v, want %v", got, m)
	}
}

func TestCrossOrientation(t *testing.T) {
	x, y := V3(1, 0, 0), V3(0, 1, 0)
	if got := x.Cross(y); got != V3(0, 0, 1) {
		t.Errorf("x × y = %v, want (0, 0, 1)", got)
	}
	if got := y.Cross(x); got != V3(0, 0, -1) {
		t.Errorf("y × x = %v, want (0, 0, -1)", got)
	}
}
