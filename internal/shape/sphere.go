package shape

import "math"

// Sphere samples a sphere of the given radius in spherical coordinates.
type Sphere struct {
	Radius  float64
	Density float64
}

func (s *Sphere) Name() string { return "sphere" }

func (s *Sphere) Points(dst []Point) []Point {
	step := s.Density / 2
	thetas := arange(0, 2*math.Pi, step)
	for _, phi := range arange(0, math.Pi, step) {
		sp, cp := math.Sincos(phi)
		for _, theta := range thetas {
			st, ct := math.Sincos(theta)
			dst = append(dst, pt(s.Radius*sp*ct, s.Radius*sp*st, s.Radius*cp, 'o'))
		}
	}
	return dst
}
