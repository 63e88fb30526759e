package render

import (
	"errors"
	"fmt"

	"github.com/taigrr/prism/pkg/geom"
)

// ErrTooFewPoints is returned when a buffer holds fewer points than one
// primitive needs. Nothing is drawn.
var ErrTooFewPoints = errors.New("too few points")

// DrawEdges draws every edge in el. A trailing unpaired point is ignored.
func (r *Rasterizer) DrawEdges(el *geom.EdgeList, c Color) error {
	n := el.Points().Len()
	if n < 2 {
		err := fmt.Errorf("draw edges: %d points, need 2: %w", n, ErrTooFewPoints)
		Logger().Warn("render: edges skipped", "points", n, "err", err)
		return err
	}

	before := r.Stats.LinesDrawn
	for a, b := range el.Edges() {
		r.DrawLine(a.X, a.Y, a.Z, b.X, b.Y, b.Z, c)
	}
	Logger().Debug("render: edges drawn", "lines", r.Stats.LinesDrawn-before)
	return nil
}

// DrawTriangles fills every triangle in tl, taking one color per triangle
// from colors in list order. Colors are consumed for culled triangles too,
// so a triangle keeps its color as the view changes. A nil colors draws
// everything white.
func (r *Rasterizer) DrawTriangles(tl *geom.TriangleList, colors ColorSource) error {
	n := tl.Points().Len()
	if n < 3 {
		err := fmt.Errorf("draw triangles: %d points, need 3: %w", n, ErrTooFewPoints)
		Logger().Warn("render: triangles skipped", "points", n, "err", err)
		return err
	}
	if n%3 != 0 {
		err := fmt.Errorf("draw triangles: %d points: %w", n, geom.ErrTriangleCount)
		Logger().Warn("render: triangles skipped", "points", n, "err", err)
		return err
	}
	if colors == nil {
		colors = Solid(ColorWhite)
	}

	before := r.Stats
	for tri := range tl.Triangles() {
		r.DrawTriangle(tri[0], tri[1], tri[2], colors.Next())
	}
	Logger().Debug("render: triangles drawn",
		"tested", r.Stats.TrianglesTested-before.TrianglesTested,
		"culled", r.Stats.TrianglesCulled-before.TrianglesCulled,
		"drawn", r.Stats.TrianglesDrawn-before.TrianglesDrawn,
	)
	return nil
}

// DrawEdgeBuffer draws buf as an edge list: points 2i and 2i+1 form
// edge i.
func (r *Rasterizer) DrawEdgeBuffer(buf *geom.PointBuffer, c Color) error {
	return r.DrawEdges(geom.EdgesFrom(buf), c)
}

// DrawTriangleBuffer draws buf as a triangle list. A buffer whose length
// is not a multiple of 3 is rejected whole.
func (r *Rasterizer) DrawTriangleBuffer(buf *geom.PointBuffer, colors ColorSource) error {
	tl, err := geom.TrianglesFrom(buf)
	if err != nil {
		Logger().Warn("render: triangles skipped", "points", buf.Len(), "err", err)
		return fmt.Errorf("draw triangles: %w", err)
	}
	return r.DrawTriangles(tl, colors)
}
