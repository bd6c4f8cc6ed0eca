package shape

import "math"

var sqrt3 = math.Sqrt(3)

// HexagonalPrism is a regular hexagonal prism along the z axis. Radius is the
// center-to-vertex distance of the hexagon.
type HexagonalPrism struct {
	Radius  float64
	Height  float64
	Density float64
}

func (h *HexagonalPrism) Name() string { return "hexprism" }

// vertices returns the six hexagon corners at 60 degree spacing.
func (h *HexagonalPrism) vertices() [6][2]float64 {
	var v [6][2]float64
	for i := range v {
		s, c := math.Sincos(float64(i) * math.Pi / 3)
		v[i] = [2]float64{h.Radius * c, h.Radius * s}
	}
	return v
}

func (h *HexagonalPrism) Points(dst []Point) []Point {
	top, bottom := h.Height/2, -h.Height/2
	heights := arange(bottom, top, h.Density)
	ts := arange(0, 1, h.Density)
	verts := h.vertices()

	for i := range verts {
		x1, y1 := verts[i][0], verts[i][1]
		x2, y2 := verts[(i+1)%6][0], verts[(i+1)%6][1]

		for _, z := range heights {
			dst = append(dst, pt(x1, y1, z, '|'))
		}

		for _, t := range ts {
			x, y := x1+(x2-x1)*t, y1+(y2-y1)*t
			dst = append(dst, pt(x, y, top, '-'), pt(x, y, bottom, '-'))
		}

		// The disk goes after the first edge's rims and before any side fill.
		// Repeating it for the other edges could never win a depth tie.
		if i == 0 {
			dst = h.caps(dst, top, bottom)
		}

		for _, z := range heights {
			for _, t := range ts {
				dst = append(dst, pt(x1+(x2-x1)*t, y1+(y2-y1)*t, z, '#'))
			}
		}
	}

	return dst
}

// caps fills the top and bottom hexagons on a polar grid whose angular step
// count grows with the ring radius.
func (h *HexagonalPrism) caps(dst []Point, top, bottom float64) []Point {
	for _, r := range arange(0, h.Radius, h.Density) {
		steps := int(math.Ceil(2 * math.Pi * r / h.Density))
		for step := 0; step < steps; step++ {
			s, c := math.Sincos(2 * math.Pi * float64(step) / float64(steps))
			x, y := r*c, r*s
			if InHexagon(x, y, h.Radius) {
				dst = append(dst, pt(x, y, top, '.'), pt(x, y, bottom, '.'))
			}
		}
	}
	return dst
}

// InHexagon reports whether (x, y) lies inside or on the regular hexagon of
// the given circumradius with vertices on the x axis.
func InHexagon(x, y, radius float64) bool {
	x, y = math.Abs(x), math.Abs(y)
	return y <= sqrt3*radius/2 && y <= sqrt3*(radius-x)
}
