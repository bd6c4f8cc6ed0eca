package shape

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Jurkyy/spinny-cube/internal/config"
)

// Point is a sample on a solid's surface plus the glyph it is drawn with.
type Point struct {
	Pos   mgl64.Vec3
	Glyph rune
}

func pt(x, y, z float64, glyph rune) Point {
	return Point{Pos: mgl64.Vec3{x, y, z}, Glyph: glyph}
}

// Shape produces a finite point sequence. Points appends to dst and returns
// the extended slice so callers can reuse one buffer across frames.
type Shape interface {
	Name() string
	Points(dst []Point) []Point
}

// Animated is a Shape with per-frame state.
type Animated interface {
	Shape
	Update(dt float64)
}

// Update advances s by dt if it is animated and does nothing otherwise.
func Update(s Shape, dt float64) {
	if a, ok := s.(Animated); ok {
		a.Update(dt)
	}
}

// arange returns start, start+step, ... for values strictly below stop.
func arange(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

var constructors = map[string]func(spec config.ShapeSpec, density float64) Shape{
	"cube": func(s config.ShapeSpec, d float64) Shape {
		return &Cube{Width: s.Width, Density: d}
	},
	"sphere": func(s config.ShapeSpec, d float64) Shape {
		return &Sphere{Radius: s.Radius, Density: d}
	},
	"hexprism": func(s config.ShapeSpec, d float64) Shape {
		return &HexagonalPrism{Radius: s.Radius, Height: s.Height, Density: d}
	},
	"torus": func(s config.ShapeSpec, _ float64) Shape {
		return NewTwistedTorus(s.MajorRadius, s.MinorRadius)
	},
}

// New builds the shape described by spec.
func New(spec config.ShapeSpec, density float64) (Shape, error) {
	ctor, ok := constructors[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownShape, spec.Kind, Kinds())
	}
	return ctor(spec, density), nil
}

// NewAll builds every shape in specs, in order.
func NewAll(specs []config.ShapeSpec, density float64) ([]Shape, error) {
	shapes := make([]Shape, 0, len(specs))
	for _, spec := range specs {
		s, err := New(spec, density)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func Kinds() []string {
	kinds := make([]string, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
