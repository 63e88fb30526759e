package render

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/taigrr/prism/pkg/geom"
)

func TestDrawEdges(t *testing.T) {
	tests := []struct {
		name      string
		points    int
		wantLines int
		wantErr   error
	}{
		{"empty", 0, 0, ErrTooFewPoints},
		{"one point", 1, 0, ErrTooFewPoints},
		{"one edge", 2, 1, nil},
		{"trailing point ignored", 3, 1, nil},
		{"three edges", 6, 3, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := geom.NewPointBuffer(0)
			for i := range tc.points {
				buf.Append(float64(i*3), float64(i), 0)
			}

			r, rec := createTestRasterizer()
			err := r.DrawEdgeBuffer(buf, ColorWhite)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if r.Stats.LinesDrawn != tc.wantLines {
				t.Errorf("LinesDrawn = %d, want %d", r.Stats.LinesDrawn, tc.wantLines)
			}
			if tc.wantLines == 0 && len(rec.plots) != 0 {
				t.Errorf("rejected call plotted %d pixels", len(rec.plots))
			}
		})
	}
}

func TestDrawTriangleBufferRejectsPartialTriangle(t *testing.T) {
	tests := []struct {
		name    string
		points  int
		wantErr error
	}{
		{"empty", 0, ErrTooFewPoints},
		{"two points", 2, geom.ErrTriangleCount},
		{"four points", 4, geom.ErrTriangleCount},
		{"eight points", 8, geom.ErrTriangleCount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := geom.NewPointBuffer(0)
			for i := range tc.points {
				buf.Append(float64(i%3)*10, float64(i/3)*10+float64(i%2)*10, 0)
			}

			r, rec := createTestRasterizer()
			err := r.DrawTriangleBuffer(buf, Solid(ColorRed))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if len(rec.plots) != 0 || r.Stats.TrianglesTested != 0 {
				t.Errorf("rejected buffer drew %d pixels, tested %d triangles", len(rec.plots), r.Stats.TrianglesTested)
			}
		})
	}
}

func TestDrawTrianglesColorPerTriangle(t *testing.T) {
	tl := geom.NewTriangleList()
	geom.AppendBox(tl, 10, 30, 0, 20, 20, 20)

	r, _ := createTestRasterizer()
	colors := &countingSource{}
	if err := r.DrawTriangles(tl, colors); err != nil {
		t.Fatalf("DrawTriangles: %v", err)
	}
	// One color per triangle, culled or not.
	if colors.n != 12 {
		t.Errorf("colors drawn = %d, want 12", colors.n)
	}
}

type countingSource struct{ n int }

func (s *countingSource) Next() Color {
	s.n++
	return ColorWhite
}

func TestDrawLogsRejectedCalls(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	r, _ := createTestRasterizer()
	_ = r.DrawEdgeBuffer(geom.NewPointBuffer(0), ColorWhite)

	if !strings.Contains(buf.String(), "edges skipped") {
		t.Errorf("log output %q does not mention skipped edges", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	// The default logger discards everything.
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}
