// Package scene describes what prism draws: a YAML document listing the
// canvas and the shapes on it, decoded, validated and built into point
// buffers ready for the rasterizer.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/prism/pkg/render"
)

// Defaults for fields a scene file leaves out.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultStep   = 20
	DefaultSeed   = 1
)

var (
	// ErrInvalidScene is wrapped by every validation failure.
	ErrInvalidScene = errors.New("invalid scene")
	// ErrUnknownKind is returned for a shape kind prism cannot build.
	ErrUnknownKind = errors.New("unknown shape kind")
)

// Shape kinds.
const (
	KindBox      = "box"
	KindSphere   = "sphere"
	KindTorus    = "torus"
	KindCircle   = "circle"
	KindBezier   = "bezier"
	KindHermite  = "hermite"
	KindLine     = "line"
	KindTriangle = "triangle"
	KindModel    = "model"
)

// Palettes for shapes without their own color.
const (
	PaletteRandom = "random"
	PaletteHue    = "hue"
)

// Scene is the decoded form of a scene file. Coordinates are canvas
// pixels with the origin at the bottom-left and +z toward the viewer.
type Scene struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Background string  `yaml:"background"` // "#rrggbb"
	Palette    string  `yaml:"palette"`    // random or hue
	Seed       uint64  `yaml:"seed"`
	Cull       *bool   `yaml:"cull"` // backface culling, on unless false
	Step       int     `yaml:"step"` // default tessellation step
	Shapes     []Shape `yaml:"shapes"`

	dir string // directory model paths are relative to
}

// Shape is one entry of a scene's shape list. Which fields apply depends
// on Kind:
//
//	box       at (front top-left corner), size (width, height, depth)
//	sphere    at (center), radius, step
//	torus     at (center), radius (ring), tube (cross-section), step
//	circle    at (center), radius, step
//	bezier    points: 4 control points, step
//	hermite   points: p0, p1, tangent0, tangent1, step
//	line      points: 2 endpoints
//	triangle  points: 3 vertices, counter-clockwise to face the viewer
//	model     path (.glb/.gltf), fit (largest dimension), at (center)
type Shape struct {
	Kind      string      `yaml:"kind"`
	Name      string      `yaml:"name"`
	At        []float64   `yaml:"at"`
	Size      []float64   `yaml:"size"`
	Radius    float64     `yaml:"radius"`
	Tube      float64     `yaml:"tube"`
	Points    [][]float64 `yaml:"points"`
	Step      int         `yaml:"step"`
	Path      string      `yaml:"path"`
	Fit       float64     `yaml:"fit"`
	Color     string      `yaml:"color"` // "#rrggbb"
	Transform *Transform  `yaml:"transform"`
}

// Transform is applied to a shape after it is built. Scale and rotation
// act about the center of the shape's bounding box; translation follows.
type Transform struct {
	Translate []float64 `yaml:"translate"`
	Rotate    []float64 `yaml:"rotate"` // degrees about x, y, z
	Scale     []float64 `yaml:"scale"`  // one uniform factor or x, y, z
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Decode reads a scene from r, fills in defaults and validates it.
// Unknown fields are rejected.
func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidScene)
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) applyDefaults() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Background == "" {
		s.Background = "#000000"
	}
	if s.Palette == "" {
		s.Palette = PaletteRandom
	}
	if s.Seed == 0 {
		s.Seed = DefaultSeed
	}
	if s.Step == 0 {
		s.Step = DefaultStep
	}
}

// CullEnabled reports whether back-facing triangles are skipped.
func (s *Scene) CullEnabled() bool {
	return s.Cull == nil || *s.Cull
}

// Validate checks the scene and every shape, reporting all problems at
// once.
func (s *Scene) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidScene))
	}

	if s.Width < 1 || s.Height < 1 {
		invalid("canvas %dx%d must be at least 1x1", s.Width, s.Height)
	}
	if s.Step < 1 {
		invalid("step %d must be positive", s.Step)
	}
	if _, err := parseColor(s.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if s.Palette != PaletteRandom && s.Palette != PaletteHue {
		invalid("palette %q must be %q or %q", s.Palette, PaletteRandom, PaletteHue)
	}
	for i, sh := range s.Shapes {
		if err := sh.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("shape %d (%s): %w", i, sh.Label(), err))
		}
	}
	return errors.Join(errs...)
}

// Label returns the shape's name, or its kind when unnamed.
func (sh Shape) Label() string {
	if sh.Name != "" {
		return sh.Name
	}
	return sh.Kind
}

// Validate checks that the shape has what its kind needs.
func (sh Shape) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidScene))
	}

	if _, err := vec3("at", sh.At, 0); err != nil {
		errs = append(errs, err)
	}
	if sh.Step < 0 {
		invalid("step %d must not be negative", sh.Step)
	}
	if sh.Color != "" {
		if _, err := parseColor(sh.Color); err != nil {
			errs = append(errs, fmt.Errorf("color: %w", err))
		}
	}
	if sh.Transform != nil {
		if _, err := vec3("translate", sh.Transform.Translate, 0); err != nil {
			errs = append(errs, err)
		}
		if _, err := vec3("rotate", sh.Transform.Rotate, 0); err != nil {
			errs = append(errs, err)
		}
		if len(sh.Transform.Scale) != 1 {
			if _, err := vec3("scale", sh.Transform.Scale, 1); err != nil {
				errs = append(errs, err)
			}
		}
	}

	points := func(n int) {
		if len(sh.Points) != n {
			invalid("%s needs %d points, got %d", sh.Kind, n, len(sh.Points))
			return
		}
		for i, p := range sh.Points {
			if _, err := vec3(fmt.Sprintf("point %d", i), p, 0); err != nil || len(p) == 0 {
				invalid("point %d must have 2 or 3 coordinates", i)
			}
		}
	}
	positive := func(name string, v float64) {
		if v <= 0 {
			invalid("%s %v must be positive", name, v)
		}
	}

	switch strings.ToLower(sh.Kind) {
	case KindBox:
		size, err := vec3("size", sh.Size, 0)
		if err != nil || len(sh.Size) != 3 {
			invalid("box size must be width, height, depth")
		} else if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			invalid("box size %v must be positive", sh.Size)
		}
	case KindSphere, KindCircle:
		positive("radius", sh.Radius)
	case KindTorus:
		positive("radius", sh.Radius)
		positive("tube", sh.Tube)
	case KindBezier, KindHermite:
		points(4)
	case KindLine:
		points(2)
	case KindTriangle:
		points(3)
	case KindModel:
		if sh.Path == "" {
			invalid("model needs a path")
		}
		if sh.Fit < 0 {
			invalid("fit %v must not be negative", sh.Fit)
		}
	case "":
		invalid("missing kind")
	default:
		errs = append(errs, fmt.Errorf("%q: %w", sh.Kind, ErrUnknownKind))
	}
	return errors.Join(errs...)
}

// parseColor parses "#rrggbb" (or "#rgb") into an opaque color.
func parseColor(s string) (render.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return render.Color{}, fmt.Errorf("%q is not a hex color: %w", s, ErrInvalidScene)
	}
	r, g, b := c.RGB255()
	return render.RGB(r, g, b), nil
}
