package scene

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/taigrr/prism/pkg/geom"
	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/models"
	"github.com/taigrr/prism/pkg/render"
)

// Item is one built shape: its geometry and, if the scene gave one, its
// color.
type Item struct {
	Name      string
	Edges     *geom.EdgeList
	Triangles *geom.TriangleList
	Color     *render.Color // nil draws triangles from the palette, edges white
}

// Model is a built scene, ready to render any number of times.
type Model struct {
	Width      int
	Height     int
	Background render.Color
	Palette    string
	Seed       uint64
	Cull       bool
	Items      []Item
}

// Build generates the geometry of every shape. Model files are loaded
// relative to the scene file.
func (s *Scene) Build() (*Model, error) {
	bg, err := parseColor(s.Background)
	if err != nil {
		return nil, err
	}
	m := &Model{
		Width:      s.Width,
		Height:     s.Height,
		Background: bg,
		Palette:    s.Palette,
		Seed:       s.Seed,
		Cull:       s.CullEnabled(),
	}

	var errs []error
	for i, sh := range s.Shapes {
		item, err := s.buildShape(sh)
		if err != nil {
			errs = append(errs, fmt.Errorf("shape %d (%s): %w", i, sh.Label(), err))
			continue
		}
		m.Items = append(m.Items, item)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Scene) buildShape(sh Shape) (Item, error) {
	if err := sh.Validate(); err != nil {
		return Item{}, err
	}

	item := Item{Name: sh.Label()}
	if sh.Color != "" {
		c, err := parseColor(sh.Color)
		if err != nil {
			return Item{}, err
		}
		item.Color = &c
	}

	step := sh.Step
	if step == 0 {
		step = s.Step
	}
	at, _ := vec3("at", sh.At, 0)
	pt := func(i int) math3d.Vec3 {
		p, _ := vec3("point", sh.Points[i], 0)
		return p
	}

	switch strings.ToLower(sh.Kind) {
	case KindBox:
		item.Triangles = geom.NewTriangleList()
		geom.AppendBox(item.Triangles, at.X, at.Y, at.Z, sh.Size[0], sh.Size[1], sh.Size[2])
	case KindSphere:
		item.Triangles = geom.NewTriangleList()
		geom.AppendSphere(item.Triangles, at.X, at.Y, at.Z, sh.Radius, step)
	case KindTorus:
		item.Triangles = geom.NewTriangleList()
		geom.AppendTorus(item.Triangles, at.X, at.Y, at.Z, sh.Tube, sh.Radius, step)
	case KindTriangle:
		item.Triangles = geom.NewTriangleList()
		item.Triangles.AppendTriangle(pt(0), pt(1), pt(2))
	case KindCircle:
		item.Edges = geom.NewEdgeList()
		geom.AppendCircle(item.Edges, at.X, at.Y, at.Z, sh.Radius, step)
	case KindBezier, KindHermite:
		family, err := geom.ParseCurveFamily(sh.Kind)
		if err != nil {
			return Item{}, err
		}
		item.Edges = geom.NewEdgeList()
		p0, p1, p2, p3 := pt(0), pt(1), pt(2), pt(3)
		geom.AppendCurve(item.Edges, p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y, step, family)
	case KindLine:
		item.Edges = geom.NewEdgeList()
		a, b := pt(0), pt(1)
		item.Edges.AppendEdge(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	case KindModel:
		mesh, err := models.LoadGLB(s.resolve(sh.Path))
		if err != nil {
			return Item{}, err
		}
		if sh.Fit > 0 {
			mesh.Normalize(sh.Fit)
		} else {
			mesh.Transform(math3d.Translate(mesh.Center().Scale(-1)))
		}
		item.Triangles = geom.NewTriangleList()
		mesh.AppendTo(item.Triangles, math3d.Translate(at))
	}

	if sh.Transform != nil {
		m := sh.Transform.Matrix(item.bounds().Center())
		if item.Triangles != nil {
			item.Triangles.Transform(m)
		}
		if item.Edges != nil {
			item.Edges.Transform(m)
		}
	}
	return item, nil
}

func (s *Scene) resolve(path string) string {
	if filepath.IsAbs(path) || s.dir == "" {
		return path
	}
	return filepath.Join(s.dir, path)
}

// Matrix returns the transform as a matrix, scaling and rotating about
// pivot.
func (t *Transform) Matrix(pivot math3d.Vec3) math3d.Mat4 {
	move, _ := vec3("translate", t.Translate, 0)
	rot, _ := vec3("rotate", t.Rotate, 0)
	var scale math3d.Vec3
	if len(t.Scale) == 1 {
		scale = math3d.V3(t.Scale[0], t.Scale[0], t.Scale[0])
	} else {
		scale, _ = vec3("scale", t.Scale, 1)
	}

	local := math3d.RotateZ(radians(rot.Z)).
		Mul(math3d.RotateY(radians(rot.Y))).
		Mul(math3d.RotateX(radians(rot.X))).
		Mul(math3d.Scale(scale))
	return math3d.Translate(move).Mul(math3d.RotateAbout(pivot, local))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// bounds returns the box around all of the item's points.
func (it Item) bounds() geom.AABB {
	var (
		b  geom.AABB
		ok bool
	)
	for _, buf := range it.buffers() {
		if buf.Len() == 0 {
			continue
		}
		if !ok {
			b, ok = buf.Bounds(), true
			continue
		}
		b = b.Union(buf.Bounds())
	}
	return b
}

func (it Item) buffers() []*geom.PointBuffer {
	var bufs []*geom.PointBuffer
	if it.Triangles != nil {
		bufs = append(bufs, it.Triangles.Points())
	}
	if it.Edges != nil {
		bufs = append(bufs, it.Edges.Points())
	}
	return bufs
}

// vec3 reads 2 or 3 numbers; missing components are fill. An empty list
// is all fill.
func vec3(name string, v []float64, fill float64) (math3d.Vec3, error) {
	switch len(v) {
	case 0:
		return math3d.V3(fill, fill, fill), nil
	case 2:
		return math3d.V3(v[0], v[1], fill), nil
	case 3:
		return math3d.V3(v[0], v[1], v[2]), nil
	}
	return math3d.Vec3{}, fmt.Errorf("%s: want 2 or 3 numbers, got %d: %w", name, len(v), ErrInvalidScene)
}
