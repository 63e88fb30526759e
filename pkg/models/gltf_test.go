package models

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/taigrr/prism/pkg/geom"
	"github.com/taigrr/prism/pkg/math3d"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Fatal("NewGLTFLoader returned nil")
	}
	if loader.FlipWinding {
		t.Error("FlipWinding should default to false")
	}
}

func TestSaveGLBRoundTrip(t *testing.T) {
	tl := geom.NewTriangleList()
	geom.AppendBox(tl, 0, 0, 0, 4, 2, 6)

	path := filepath.Join(t.TempDir(), "box.glb")
	if err := SaveGLB(path, tl); err != nil {
		t.Fatalf("SaveGLB: %v", err)
	}

	mesh, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	if mesh.VertexCount() != 8 {
		t.Errorf("VertexCount = %d, want 8 shared corners", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 12 {
		t.Fatalf("TriangleCount = %d, want 12", mesh.TriangleCount())
	}

	// Integer coordinates survive float32 exactly, winding included.
	out := geom.NewTriangleList()
	mesh.AppendTo(out, math3d.Identity())
	for i := range tl.Len() {
		if got, want := out.Triangle(i), tl.Triangle(i); got != want {
			t.Errorf("triangle %d = %v, want %v", i, got, want)
		}
	}

	want := geom.NewAABB(math3d.V3(0, -2, -6), math3d.V3(4, 0, 0))
	if mesh.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", mesh.Bounds, want)
	}
}

func TestLoaderFlipWinding(t *testing.T) {
	tl := geom.NewTriangleList()
	tl.AppendTriangle(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))

	path := filepath.Join(t.TempDir(), "tri.glb")
	if err := SaveGLB(path, tl); err != nil {
		t.Fatalf("SaveGLB: %v", err)
	}

	loader := NewGLTFLoader()
	loader.FlipWinding = true
	mesh, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := mesh.Faces[0]; got != [3]int{0, 2, 1} {
		t.Errorf("flipped face = %v, want [0 2 1]", got)
	}
}

func TestSaveGLBEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.glb")
	err := SaveGLB(path, geom.NewTriangleList())
	if !errors.Is(err, ErrNoTriangles) {
		t.Errorf("err = %v, want ErrNoTriangles", err)
	}
}
