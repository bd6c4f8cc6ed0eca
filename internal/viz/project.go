package viz

import "math"

// Projector maps camera-space points to screen cells.
type Projector struct {
	Width, Height int
	// Distance is added to z before the perspective divide.
	Distance float64
	// K scales projected coordinates; x is stretched twice as much as y to
	// compensate for tall terminal cells.
	K float64
	// XOffset shifts the image left by 2*XOffset columns.
	XOffset float64
}

// Project returns the screen cell of (x, y, z) and its inverse depth. ok is false when
// the point sits on or behind the camera plane; such points are skipped rather
// than clamped.
func (p Projector) Project(x, y, z float64) (xp, yp int, ooz float64, ok bool) {
	depth := z + p.Distance
	if depth <= 0 {
		return 0, 0, 0, false
	}
	ooz = 1 / depth
	if math.IsInf(ooz, 0) || math.IsNaN(ooz) {
		return 0, 0, 0, false
	}
	fx := float64(p.Width/2) - 2*p.XOffset + p.K*ooz*x*2
	fy := float64(p.Height/2) + p.K*ooz*y
	if !inIntRange(fx) || !inIntRange(fy) {
		return 0, 0, 0, false
	}
	return int(fx), int(fy), ooz, true
}

// inIntRange guards the float to int conversion, which is implementation
// defined outside the int32 range.
func inIntRange(f float64) bool {
	return f > math.MinInt32 && f < math.MaxInt32
}
