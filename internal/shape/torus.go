package shape

import "math"

// torusGlyphs is indexed by [v step mod 3][u step mod 2].
var torusGlyphs = [3][2]rune{
	{'.', '|'},
	{'○', '&'},
	{'-', '#'},
}

// TwistedTorus is a torus in the xy plane whose points are rotated about z by
// an angle proportional to their position along the major circle.
type TwistedTorus struct {
	MajorRadius float64
	MinorRadius float64
	TwistFactor float64
	Time        float64
}

func NewTwistedTorus(major, minor float64) *TwistedTorus {
	return &TwistedTorus{MajorRadius: major, MinorRadius: minor, TwistFactor: 2}
}

func (t *TwistedTorus) Name() string { return "torus" }

// Update accumulates animation time and recomputes the twist factor.
func (t *TwistedTorus) Update(dt float64) {
	t.Time += dt
	t.TwistFactor = TwistFactorAt(t.Time)
}

// TwistFactorAt is the twist factor after an accumulated time.
func TwistFactorAt(time float64) float64 {
	return 2 + math.Sin(0.5*time)
}

func (t *TwistedTorus) Points(dst []Point) []Point {
	uSteps := int(t.MajorRadius * 15)
	vSteps := int(t.MinorRadius * 15)

	for us := 0; us < uSteps; us++ {
		u := 2 * math.Pi * float64(us) / float64(uSteps)
		su, cu := math.Sincos(u)
		st, ct := math.Sincos(t.TwistFactor * u)

		for vs := 0; vs < vSteps; vs++ {
			v := 2 * math.Pi * float64(vs) / float64(vSteps)
			sv, cv := math.Sincos(v)

			ring := t.MajorRadius + t.MinorRadius*cv
			x, y, z := ring*cu, ring*su, t.MinorRadius*sv

			dst = append(dst, pt(x*ct-y*st, x*st+y*ct, z, torusGlyphs[vs%3][us%2]))
		}
	}
	return dst
}
