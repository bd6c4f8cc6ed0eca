package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Angles is the accumulated rotation state in radians.
type Angles struct {
	A, B, C float64
}

// Advance returns the angles moved by one frame's deltas.
func (r Angles) Advance(d Angles) Angles {
	return Angles{A: r.A + d.A, B: r.B + d.B, C: r.C + d.C}
}

// Basis holds the sines and cosines of a set of Angles so a whole frame can
// be rotated without recomputing them per point.
type Basis struct {
	sa, ca float64
	sb, cb float64
	sc, cc float64
}

func (r Angles) Basis() Basis {
	var b Basis
	b.sa, b.ca = math.Sincos(r.A)
	b.sb, b.cb = math.Sincos(r.B)
	b.sc, b.cc = math.Sincos(r.C)
	return b
}

func (b Basis) X(i, j, k float64) float64 {
	return j*b.sa*b.sb*b.cc - k*b.ca*b.sb*b.cc + j*b.ca*b.sc + k*b.sa*b.sc + i*b.cb*b.cc
}

func (b Basis) Y(i, j, k float64) float64 {
	return j*b.ca*b.cc + k*b.sa*b.cc - j*b.sa*b.sb*b.sc + k*b.ca*b.sb*b.sc - i*b.cb*b.sc
}

func (b Basis) Z(i, j, k float64) float64 {
	return k*b.ca*b.cb - j*b.sa*b.cb + i*b.sb
}

// Apply rotates v.
func (b Basis) Apply(v mgl64.Vec3) mgl64.Vec3 {
	i, j, k := v.Elem()
	return mgl64.Vec3{b.X(i, j, k), b.Y(i, j, k), b.Z(i, j, k)}
}

// RotateX returns the rotated x coordinate of (i, j, k).
func RotateX(i, j, k float64, r Angles) float64 { return r.Basis().X(i, j, k) }

// RotateY returns the rotated y coordinate of (i, j, k).
func RotateY(i, j, k float64, r Angles) float64 { return r.Basis().Y(i, j, k) }

// RotateZ returns the rotated z coordinate of (i, j, k).
func RotateZ(i, j, k float64, r Angles) float64 { return r.Basis().Z(i, j, k) }

// Rotate applies the closed-form rotation to v.
func (r Angles) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	i, j, k := v.Elem()
	return mgl64.Vec3{RotateX(i, j, k, r), RotateY(i, j, k, r), RotateZ(i, j, k, r)}
}
