package render

import "math"

// Far is the depth of an empty pixel. Larger depth is nearer the viewer,
// so anything drawn beats Far.
const Far = -math.MaxFloat64

// DepthBuffer records the nearest depth written to each pixel, row-major
// with row 0 at the top like Framebuffer.
type DepthBuffer struct {
	Width  int
	Height int
	depth  []float64
}

// NewDepthBuffer creates a cleared depth buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{
		Width:  width,
		Height: height,
		depth:  make([]float64, width*height),
	}
	d.Clear()
	return d
}

// Clear resets every pixel to Far.
func (d *DepthBuffer) Clear() {
	// Use copy-doubling for faster clearing
	n := len(d.depth)
	if n == 0 {
		return
	}
	d.depth[0] = Far
	for i := 1; i < n; i *= 2 {
		copy(d.depth[i:], d.depth[:i])
	}
}

// At returns the depth at (x, y), or Far when out of bounds.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return Far
	}
	return d.depth[y*d.Width+x]
}

// Set stores z at (x, y). Out-of-bounds writes are ignored.
func (d *DepthBuffer) Set(x, y int, z float64) {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return
	}
	d.depth[y*d.Width+x] = z
}
