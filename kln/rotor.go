// Copyright 2025 go-klein Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kln

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/ajroetker/go-klein/kln/kernel"
	"github.com/ajroetker/go-klein/kln/simd"
)

// Rotor is a rotation about an axis through the origin, the even element
// cos(θ/2) + sin(θ/2) (x e23 + y e31 + z e12) stored in P1. A rotor is
// normalized when r ~r = 1.
//
// Rotors act on planes, lines and points through the sandwich r x ~r.
type Rotor struct {
	P1 simd.Vec4
}

// NewRotor returns the rotation by angRad radians about the axis (x, y, z)
// through the origin. The axis need not be normalized but must be nonzero.
//
// Example:
//
//	r := kln.NewRotor(math.Pi/2, 0, 0, 1)
//	p := r.ApplyPoint(kln.NewPoint(1, 0, 0)) // (0, -1, 0)
func NewRotor(angRad, x, y, z float32) Rotor {
	norm := math32.Sqrt(x*x + y*y + z*z)
	half := 0.5 * angRad
	s := math32.Sin(half) / norm
	return Rotor{P1: simd.Set(math32.Cos(half), x*s, y*s, z*s)}
}

// IdentityRotor returns the rotor 1.
func IdentityRotor() Rotor {
	return Rotor{P1: simd.Set(1, 0, 0, 0)}
}

// EulerAngles holds yaw, pitch and roll in radians. The rotor they describe
// is the product
//
//	NewRotor(Roll, 1, 0, 0).Mul(NewRotor(Pitch, 0, 1, 0)).Mul(NewRotor(Yaw, 0, 0, 1))
//
// so the yaw rotor acts first.
type EulerAngles struct {
	Yaw, Pitch, Roll float32
}

// gimbalLockThreshold is the value of sin(pitch)/2 above which the yaw and
// roll axes are treated as aligned.
const gimbalLockThreshold = 0.4999

// RotorFromEuler returns the normalized rotor for ea.
func RotorFromEuler(ea EulerAngles) Rotor {
	cy, sy := math32.Cos(0.5*ea.Yaw), math32.Sin(0.5*ea.Yaw)
	cp, sp := math32.Cos(0.5*ea.Pitch), math32.Sin(0.5*ea.Pitch)
	cr, sr := math32.Cos(0.5*ea.Roll), math32.Sin(0.5*ea.Roll)
	r := Rotor{P1: simd.Set(
		cr*cp*cy+sr*sp*sy,
		sr*cp*cy-cr*sp*sy,
		cr*sp*cy+sr*cp*sy,
		cr*cp*sy-sr*sp*cy,
	)}
	r.Normalize()
	return r
}

// EulerAngles returns the yaw, pitch and roll of a normalized rotor. Near
// pitch = ±π/2 the decomposition is not unique; there roll is reported as 0
// and the whole rotation about the vertical is folded into yaw.
func (r Rotor) EulerAngles() EulerAngles {
	w, x, y, z := r.P1[0], r.P1[1], r.P1[2], r.P1[3]
	test := w*y - x*z
	if test > gimbalLockThreshold {
		return EulerAngles{Yaw: -2 * math32.Atan2(x, w), Pitch: math32.Pi / 2}
	}
	if test < -gimbalLockThreshold {
		return EulerAngles{Yaw: 2 * math32.Atan2(x, w), Pitch: -math32.Pi / 2}
	}
	var ea EulerAngles
	ea.Roll = math32.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	sinp := 2 * test
	if math32.Abs(sinp) >= 1 {
		ea.Pitch = math32.Copysign(math32.Pi/2, sinp)
	} else {
		ea.Pitch = math32.Asin(sinp)
	}
	ea.Yaw = math32.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return ea
}

// Scalar returns the scalar coefficient.
func (r Rotor) Scalar() float32 { return r.P1[0] }

// E23 returns the e23 coefficient.
func (r Rotor) E23() float32 { return r.P1[1] }

// E32 returns the e32 coefficient, -e23.
func (r Rotor) E32() float32 { return -r.P1[1] }

// E31 returns the e31 coefficient.
func (r Rotor) E31() float32 { return r.P1[2] }

// E13 returns the e13 coefficient, -e31.
func (r Rotor) E13() float32 { return -r.P1[2] }

// E12 returns the e12 coefficient.
func (r Rotor) E12() float32 { return r.P1[3] }

// E21 returns the e21 coefficient, -e12.
func (r Rotor) E21() float32 { return -r.P1[3] }

// Entity returns r as a generic entity.
func (r Rotor) Entity() Entity { return NewEntity(MaskP1, r.P1) }

// Motor returns r as a motor with no translation.
func (r Rotor) Motor() Motor { return Motor{P1: r.P1} }

// Normalize scales r in place so that r ~r = 1.
func (r *Rotor) Normalize() {
	r.P1 = r.P1.Mul(simd.RSqrtNR1(simd.DpBc(r.P1, r.P1)))
}

// Normalized returns a normalized copy of r.
func (r Rotor) Normalized() Rotor {
	r.Normalize()
	return r
}

// Invert replaces r with ~r / (r ~r).
func (r *Rotor) Invert() {
	r.P1 = kernel.Reverse1(r.P1).Mul(simd.RcpNR1(simd.DpBc(r.P1, r.P1)))
}

// Inverse returns the inverse of r.
func (r Rotor) Inverse() Rotor {
	r.Invert()
	return r
}

// Constrain negates r in place if its scalar part is negative. r and -r
// perform the same rotation; the constrained one takes the shorter arc when
// interpolated.
func (r *Rotor) Constrain() {
	if math.Signbit(float64(r.P1[0])) {
		r.P1 = r.P1.Neg()
	}
}

// Constrained returns a constrained copy of r.
func (r Rotor) Constrained() Rotor {
	r.Constrain()
	return r
}

// ApproxEqual reports whether each coefficient is within eps of o's.
func (r Rotor) ApproxEqual(o Rotor, eps float32) bool {
	return simd.ApproxEqual(r.P1, o.P1, eps)
}

// Add returns r + o.
func (r Rotor) Add(o Rotor) Rotor { return Rotor{P1: r.P1.Add(o.P1)} }

// Sub returns r - o.
func (r Rotor) Sub(o Rotor) Rotor { return Rotor{P1: r.P1.Sub(o.P1)} }

// Scale returns r * s.
func (r Rotor) Scale(s float32) Rotor { return Rotor{P1: r.P1.Scale(s)} }

// Shrink returns r / s.
func (r Rotor) Shrink(s float32) Rotor { return Rotor{P1: r.P1.Scale(1 / s)} }

// Neg returns -r.
func (r Rotor) Neg() Rotor { return Rotor{P1: r.P1.Neg()} }

// Reverse returns ~r, the inverse rotation for a normalized rotor.
func (r Rotor) Reverse() Rotor { return Rotor{P1: kernel.Reverse1(r.P1)} }

// Mul returns r s: rotate by s, then by r.
func (r Rotor) Mul(s Rotor) Rotor {
	return Rotor{P1: kernel.Gp11(r.P1, s.P1)}
}

// Div returns r s⁻¹.
func (r Rotor) Div(s Rotor) Rotor {
	return r.Mul(s.Inverse())
}

// MulTranslator returns r t: translate by t, then rotate by r.
func (r Rotor) MulTranslator(t Translator) Motor {
	return Motor{P1: r.P1, P2: kernel.Gp12(r.P1, t.P2)}
}

// MulMotor returns r m.
func (r Rotor) MulMotor(m Motor) Motor {
	return Motor{P1: kernel.Gp11(r.P1, m.P1), P2: kernel.Gp12(r.P1, m.P2)}
}

// ApplyPlane returns r p ~r.
func (r Rotor) ApplyPlane(p Plane) Plane {
	m := kernel.Sw012(false, r.P1, simd.Vec4{})
	return Plane{P0: m.Apply(p.P0)}
}

// ApplyPlanes rotates every plane of src into dst. The rotation-dependent
// terms are computed once per call. dst and src may be the same slice; any
// other overlap is not supported. It panics if dst is shorter than src.
func (r Rotor) ApplyPlanes(dst, src []Plane) {
	m := kernel.Sw012(false, r.P1, simd.Vec4{})
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P0 = m.Apply(src[i].P0)
	}
}

// ApplyLine returns r l ~r.
func (r Rotor) ApplyLine(l Line) Line {
	m := kernel.SwMM(false, r.P1, simd.Vec4{})
	p1, p2 := m.Apply(l.P1, l.P2)
	return Line{P1: p1, P2: p2}
}

// ApplyLines rotates every line of src into dst, with the same aliasing
// rules as ApplyPlanes.
func (r Rotor) ApplyLines(dst, src []Line) {
	m := kernel.SwMM(false, r.P1, simd.Vec4{})
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P1, dst[i].P2 = m.Apply(src[i].P1, src[i].P2)
	}
}

// ApplyBranch returns r b ~r.
func (r Rotor) ApplyBranch(b Branch) Branch {
	m := kernel.SwMM(false, r.P1, simd.Vec4{})
	return Branch{P1: m.Real.Apply(b.P1)}
}

// ApplyPoint returns r a ~r.
func (r Rotor) ApplyPoint(a Point) Point {
	m := kernel.Sw312(false, r.P1, simd.Vec4{})
	return Point{P3: m.Apply(a.P3)}
}

// ApplyPoints rotates every point of src into dst, with the same aliasing
// rules as ApplyPlanes.
func (r Rotor) ApplyPoints(dst, src []Point) {
	m := kernel.Sw312(false, r.P1, simd.Vec4{})
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P3 = m.Apply(src[i].P3)
	}
}

// ApplyDirection returns r d ~r.
func (r Rotor) ApplyDirection(d Direction) Direction {
	m := kernel.Sw312(false, r.P1, simd.Vec4{})
	return Direction{P3: m.Apply(d.P3)}
}

// ApplyDirections rotates every direction of src into dst, with the same
// aliasing rules as ApplyPlanes.
func (r Rotor) ApplyDirections(dst, src []Direction) {
	m := kernel.Sw312(false, r.P1, simd.Vec4{})
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P3 = m.Apply(src[i].P3)
	}
}
