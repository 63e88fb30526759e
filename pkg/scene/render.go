package scene

import (
	"errors"
	"fmt"

	"github.com/taigrr/prism/pkg/geom"
	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/render"
)

// Colors returns a fresh palette source. Every render starts a new one so
// the same scene always gets the same colors.
func (m *Model) Colors() render.ColorSource {
	if m.Palette == PaletteHue {
		return render.NewHueSource(float64(m.Seed % 360))
	}
	return render.NewRandomSource(m.Seed)
}

// Bounds returns the box around every shape in the scene.
func (m *Model) Bounds() geom.AABB {
	var (
		b  geom.AABB
		ok bool
	)
	for _, it := range m.Items {
		if len(it.buffers()) == 0 {
			continue
		}
		ib := it.bounds()
		if !ok {
			b, ok = ib, true
			continue
		}
		b = b.Union(ib)
	}
	return b
}

// Pivot is the point views of the scene rotate about: the middle of the
// canvas, at the depth of the scene's center.
func (m *Model) Pivot() math3d.Vec3 {
	return math3d.V3(float64(m.Width)/2, float64(m.Height)/2, m.Bounds().Center().Z)
}

// Fit maps scene coordinates onto a width x height canvas, keeping the
// aspect ratio. It is the identity when the sizes match.
func (m *Model) Fit(width, height int) math3d.Mat4 {
	page := geom.NewAABB(math3d.Zero3(), math3d.V3(float64(m.Width), float64(m.Height), 0))
	return page.FitTransform(float64(width), float64(height), 0)
}

// Triangles returns every triangle in the scene in one list.
func (m *Model) Triangles() *geom.TriangleList {
	tl := geom.NewTriangleList()
	for _, it := range m.Items {
		if it.Triangles != nil {
			tl.Concat(it.Triangles)
		}
	}
	return tl
}

// Render clears cv to the background and draws every shape transformed
// by view. Draw errors of individual shapes are collected; the other
// shapes are still drawn.
func (m *Model) Render(cv *render.Canvas, view math3d.Mat4) (render.DrawStats, error) {
	cv.Clear(m.Background)
	r := render.NewRasterizer(cv)
	r.DisableBackfaceCulling = !m.Cull
	palette := m.Colors()

	var errs []error
	for _, it := range m.Items {
		if it.Triangles != nil && it.Triangles.Len() > 0 {
			tl := it.Triangles.Clone()
			tl.Transform(view)
			var colors render.ColorSource = palette
			if it.Color != nil {
				colors = render.Solid(*it.Color)
			}
			if err := r.DrawTriangles(tl, colors); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", it.Name, err))
			}
		}
		if it.Edges != nil && it.Edges.Len() > 0 {
			el := it.Edges.Clone()
			el.Transform(view)
			c := render.ColorWhite
			if it.Color != nil {
				c = *it.Color
			}
			if err := r.DrawEdges(el, c); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", it.Name, err))
			}
		}
	}

	render.Logger().Debug("scene: rendered",
		"shapes", len(m.Items),
		"lines", r.Stats.LinesDrawn,
		"triangles", r.Stats.TrianglesDrawn,
		"culled", r.Stats.TrianglesCulled,
	)
	return r.Stats, errors.Join(errs...)
}
