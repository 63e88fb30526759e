package render

import (
	"math"
	"testing"

	"github.com/taigrr/prism/pkg/math3d"
)

func TestViewIdentity(t *testing.T) {
	v := NewView(math3d.V3(50, 50, 0))
	p := math3d.V3(12, -3, 8)
	if got := v.Matrix().MulVec3(p); !got.ApproxEqual(p, 1e-9) {
		t.Errorf("unrotated view moved %v to %v", p, got)
	}
}

func TestViewKeepsPivot(t *testing.T) {
	pivot := math3d.V3(40, 30, -10)
	v := NewView(pivot)
	v.SetRotation(0.7, -1.3, 2.1)
	v.SetZoom(2.5)

	if got := v.Matrix().MulVec3(pivot); !got.ApproxEqual(pivot, 1e-9) {
		t.Errorf("pivot moved to %v", got)
	}
}

func TestViewRotateInvalidatesCache(t *testing.T) {
	v := NewView(math3d.Zero3())
	before := v.Matrix()
	v.Rotate(0, 0, math.Pi/2)
	after := v.Matrix()
	if before == after {
		t.Fatal("matrix unchanged after Rotate")
	}

	got := after.MulVec3(math3d.V3(1, 0, 0))
	if !got.ApproxEqual(math3d.V3(0, 1, 0), 1e-9) {
		t.Errorf("quarter roll maps +x to %v, want +y", got)
	}
}

func TestViewZoomAndPan(t *testing.T) {
	v := NewView(math3d.Zero3())
	v.SetZoom(2)
	v.SetZoom(-1) // ignored
	v.SetPan(math3d.V3(5, 0, 0))

	got := v.Matrix().MulVec3(math3d.V3(1, 1, 1))
	if !got.ApproxEqual(math3d.V3(7, 2, 2), 1e-9) {
		t.Errorf("zoomed point = %v, want (7, 2, 2)", got)
	}
}
