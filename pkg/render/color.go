package render

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorGray    = color.RGBA{128, 128, 128, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// ColorSource hands out one flat color per triangle.
type ColorSource interface {
	Next() Color
}

// Solid is a ColorSource that always returns the same color.
type Solid Color

// Next returns the solid color.
func (s Solid) Next() Color {
	return Color(s)
}

// Bright channel range used by the generated palettes: every channel
// lands in [brightBase, 255].
const (
	brightBase = 200
	brightSpan = 256 - brightBase
)

// RandomSource generates light colors from a seeded PCG stream, so the
// same seed always colors a scene the same way.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a RandomSource for seed.
func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns a color with every channel in [200, 255].
func (s *RandomSource) Next() Color {
	return RGB(
		uint8(brightBase+s.rng.IntN(brightSpan)),
		uint8(brightBase+s.rng.IntN(brightSpan)),
		uint8(brightBase+s.rng.IntN(brightSpan)),
	)
}

// goldenAngle spreads successive hues as far apart as possible.
const goldenAngle = 137.50776405003785

// HueSource walks the hue wheel by the golden angle, producing pastel
// colors that stay distinguishable between neighbouring triangles.
type HueSource struct {
	hue        float64
	Saturation float64
	Value      float64
}

// NewHueSource creates a HueSource starting at hue degrees. The default
// saturation and value keep every channel at 204 or above.
func NewHueSource(hue float64) *HueSource {
	return &HueSource{hue: math.Mod(hue, 360), Saturation: 0.2, Value: 1}
}

// Next returns the color for the current hue and advances it.
func (s *HueSource) Next() Color {
	c := colorful.Hsv(s.hue, s.Saturation, s.Value)
	s.hue = math.Mod(s.hue+goldenAngle, 360)
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}
