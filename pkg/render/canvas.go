package render

import "math"

// Plotter receives the pixels produced by the rasterizer. Coordinates are
// canvas coordinates with the origin at the bottom-left.
type Plotter interface {
	Plot(x, y int, z float64, c Color)
}

// Canvas is a depth-tested drawing surface over a Framebuffer. Its origin
// is the bottom-left corner with y growing upward; it flips rows when
// writing to the framebuffer.
type Canvas struct {
	fb    *Framebuffer
	depth *DepthBuffer
}

// NewCanvas creates a canvas backed by a new framebuffer.
func NewCanvas(width, height int) *Canvas {
	return NewCanvasFor(NewFramebuffer(width, height))
}

// NewCanvasFor creates a canvas that draws into fb.
func NewCanvasFor(fb *Framebuffer) *Canvas {
	return &Canvas{
		fb:    fb,
		depth: NewDepthBuffer(fb.Width, fb.Height),
	}
}

// Width returns the canvas width in pixels.
func (cv *Canvas) Width() int { return cv.fb.Width }

// Height returns the canvas height in pixels.
func (cv *Canvas) Height() int { return cv.fb.Height }

// Framebuffer returns the framebuffer the canvas draws into.
func (cv *Canvas) Framebuffer() *Framebuffer { return cv.fb }

// Clear fills the framebuffer with bg and resets the depth buffer.
func (cv *Canvas) Clear(bg Color) {
	cv.fb.Clear(bg)
	cv.depth.Clear()
}

// Resize reallocates the canvas for new dimensions. Contents are lost.
func (cv *Canvas) Resize(width, height int) {
	if width == cv.fb.Width && height == cv.fb.Height {
		return
	}
	*cv.fb = *NewFramebuffer(width, height)
	cv.depth = NewDepthBuffer(width, height)
}

// Plot writes c at (x, y) when z is nearer than or as near as what is
// already there. Pixels outside the canvas and NaN depths are dropped.
func (cv *Canvas) Plot(x, y int, z float64, c Color) {
	row := cv.fb.Height - 1 - y
	if x < 0 || x >= cv.fb.Width || row < 0 || row >= cv.fb.Height {
		return
	}
	if math.IsNaN(z) || z < cv.depth.At(x, row) {
		return
	}
	cv.depth.Set(x, row, z)
	cv.fb.Pixels[row*cv.fb.Width+x] = c
}

// ColorAt returns the color at canvas coordinates (x, y).
func (cv *Canvas) ColorAt(x, y int) Color {
	return cv.fb.GetPixel(x, cv.fb.Height-1-y)
}

// DepthAt returns the depth at canvas coordinates (x, y).
func (cv *Canvas) DepthAt(x, y int) float64 {
	return cv.depth.At(x, cv.fb.Height-1-y)
}
