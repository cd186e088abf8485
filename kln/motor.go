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

	"github.com/ajroetker/go-klein/kln/kernel"
	"github.com/ajroetker/go-klein/kln/simd"
)

// Motor is a rigid motion, the even element
//
//	a + b e23 + c e31 + d e12 + e e01 + f e02 + g e03 + h e0123
//
// stored as P1 = (a, b, c, d) and P2 = (h, e, f, g). Every rigid motion is a
// screw: a rotation about a line combined with a translation along it. A
// motor is normalized when m ~m = 1.
type Motor struct {
	P1, P2 simd.Vec4
}

// NewMotor returns the motor with the given coefficients, in the order
// scalar, e23, e31, e12, e01, e02, e03, e0123.
func NewMotor(a, b, c, d, e, f, g, h float32) Motor {
	return Motor{P1: simd.Set(a, b, c, d), P2: simd.Set(h, e, f, g)}
}

// IdentityMotor returns the motor 1.
func IdentityMotor() Motor {
	return Motor{P1: simd.Set(1, 0, 0, 0)}
}

// MotorFromAxis returns the screw motion that rotates by angRad radians
// about l while translating by d along it. l need not be normalized.
func MotorFromAxis(angRad, d float32, l Line) Motor {
	l.Normalize()
	p1, p2 := kernel.GpDL(0.5*angRad, 0.5*d, l.P1, l.P2)
	return Line{P1: p1, P2: p2}.Exp()
}

// MotorFrom returns r t: translate by t, then rotate by r.
func MotorFrom(r Rotor, t Translator) Motor {
	return r.MulTranslator(t)
}

// Scalar returns the scalar coefficient.
func (m Motor) Scalar() float32 { return m.P1[0] }

// E23 returns the e23 coefficient.
func (m Motor) E23() float32 { return m.P1[1] }

// E31 returns the e31 coefficient.
func (m Motor) E31() float32 { return m.P1[2] }

// E12 returns the e12 coefficient.
func (m Motor) E12() float32 { return m.P1[3] }

// E01 returns the e01 coefficient.
func (m Motor) E01() float32 { return m.P2[1] }

// E02 returns the e02 coefficient.
func (m Motor) E02() float32 { return m.P2[2] }

// E03 returns the e03 coefficient.
func (m Motor) E03() float32 { return m.P2[3] }

// E0123 returns the pseudoscalar coefficient.
func (m Motor) E0123() float32 { return m.P2[0] }

// Entity returns m as a generic entity.
func (m Motor) Entity() Entity { return NewEntity(MaskP1|MaskP2, m.P1, m.P2) }

// Rotor returns the Euclidean part of m.
func (m Motor) Rotor() Rotor { return Rotor{P1: m.P1} }

// Normalize scales m in place so that m ~m = 1. This takes a dual-number
// square root: with m ~m = α + β e0123 the motor is multiplied by
// 1/√α - β/(2α√α) e0123.
func (m *Motor) Normalize() {
	alpha := simd.Dp(m.P1, m.P1).First()
	s := simd.RSqrt1(alpha)
	t := -simd.Dp(m.P1.Flip(0b1110), m.P2).First() * simd.Rcp1(alpha) * s
	m.P1, m.P2 = kernel.GpDL(s, t, m.P1, m.P2)
}

// Normalized returns a normalized copy of m.
func (m Motor) Normalized() Motor {
	m.Normalize()
	return m
}

// Invert replaces m with its inverse ~m / (m ~m).
func (m *Motor) Invert() {
	alpha := simd.Dp(m.P1, m.P1).First()
	beta := 2 * simd.Dp(m.P1.Flip(0b1110), m.P2).First()
	inv := simd.Rcp1(alpha)
	m.P1, m.P2 = kernel.GpDL(inv, -beta*inv*inv, kernel.Reverse1(m.P1), kernel.Reverse2(m.P2))
}

// Inverse returns the inverse of m.
func (m Motor) Inverse() Motor {
	m.Invert()
	return m
}

// Constrain negates m in place if its scalar part is negative.
func (m *Motor) Constrain() {
	if math.Signbit(float64(m.P1[0])) {
		m.P1, m.P2 = m.P1.Neg(), m.P2.Neg()
	}
}

// Constrained returns a constrained copy of m.
func (m Motor) Constrained() Motor {
	m.Constrain()
	return m
}

// ApproxEqual reports whether each coefficient is within eps of o's.
func (m Motor) ApproxEqual(o Motor, eps float32) bool {
	return simd.ApproxEqual(m.P1, o.P1, eps) && simd.ApproxEqual(m.P2, o.P2, eps)
}

// Add returns m + o.
func (m Motor) Add(o Motor) Motor { return Motor{P1: m.P1.Add(o.P1), P2: m.P2.Add(o.P2)} }

// Sub returns m - o.
func (m Motor) Sub(o Motor) Motor { return Motor{P1: m.P1.Sub(o.P1), P2: m.P2.Sub(o.P2)} }

// Scale returns m * s.
func (m Motor) Scale(s float32) Motor { return Motor{P1: m.P1.Scale(s), P2: m.P2.Scale(s)} }

// Shrink returns m / s.
func (m Motor) Shrink(s float32) Motor { return m.Scale(1 / s) }

// Neg returns -m.
func (m Motor) Neg() Motor { return Motor{P1: m.P1.Neg(), P2: m.P2.Neg()} }

// Reverse returns ~m, the inverse motion for a normalized motor.
func (m Motor) Reverse() Motor {
	return Motor{P1: kernel.Reverse1(m.P1), P2: kernel.Reverse2(m.P2)}
}

// Mul returns m n: apply n, then m.
func (m Motor) Mul(n Motor) Motor {
	return Motor{
		P1: kernel.Gp11(m.P1, n.P1),
		P2: kernel.Gp12(m.P1, n.P2).Add(kernel.Gp21(m.P2, n.P1)),
	}
}

// Div returns m n⁻¹.
func (m Motor) Div(n Motor) Motor {
	return m.Mul(n.Inverse())
}

// MulRotor returns m r.
func (m Motor) MulRotor(r Rotor) Motor {
	return Motor{P1: kernel.Gp11(m.P1, r.P1), P2: kernel.Gp21(m.P2, r.P1)}
}

// MulTranslator returns m t.
func (m Motor) MulTranslator(t Translator) Motor {
	return Motor{P1: m.P1, P2: m.P2.Add(kernel.Gp12(m.P1, t.P2))}
}

// ApplyPlane returns m p ~m.
func (m Motor) ApplyPlane(p Plane) Plane {
	w := kernel.Sw012(true, m.P1, m.P2)
	return Plane{P0: w.Apply(p.P0)}
}

// ApplyPlanes moves every plane of src into dst. The motion-dependent terms
// are computed once per call. dst and src may be the same slice; any other
// overlap is not supported. It panics if dst is shorter than src.
func (m Motor) ApplyPlanes(dst, src []Plane) {
	w := kernel.Sw012(true, m.P1, m.P2)
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P0 = w.Apply(src[i].P0)
	}
}

// ApplyLine returns m l ~m.
func (m Motor) ApplyLine(l Line) Line {
	w := kernel.SwMM(true, m.P1, m.P2)
	p1, p2 := w.Apply(l.P1, l.P2)
	return Line{P1: p1, P2: p2}
}

// ApplyLines moves every line of src into dst, with the same aliasing rules
// as ApplyPlanes.
func (m Motor) ApplyLines(dst, src []Line) {
	w := kernel.SwMM(true, m.P1, m.P2)
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P1, dst[i].P2 = w.Apply(src[i].P1, src[i].P2)
	}
}

// ApplyPoint returns m a ~m.
func (m Motor) ApplyPoint(a Point) Point {
	w := kernel.Sw312(true, m.P1, m.P2)
	return Point{P3: w.Apply(a.P3)}
}

// ApplyPoints moves every point of src into dst, with the same aliasing
// rules as ApplyPlanes.
func (m Motor) ApplyPoints(dst, src []Point) {
	w := kernel.Sw312(true, m.P1, m.P2)
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P3 = w.Apply(src[i].P3)
	}
}

// ApplyOrigin returns the image of the origin, m e123 ~m. Only the weight
// column of the point sandwich is needed.
func (m Motor) ApplyOrigin() Point {
	a0, a1, a2, a3 := m.P1[0], m.P1[1], m.P1[2], m.P1[3]
	b0, b1, b2, b3 := m.P2[0], m.P2[1], m.P2[2], m.P2[3]
	return Point{P3: simd.Set(
		a0*a0+a1*a1+a2*a2+a3*a3,
		2*(a2*b3-a0*b1-a1*b0-a3*b2),
		2*(a3*b1-a0*b2-a1*b3-a2*b0),
		2*(a1*b2-a0*b3-a2*b1-a3*b0),
	)}
}

// ApplyDirection returns m d ~m. Directions are unaffected by the
// translational part.
func (m Motor) ApplyDirection(d Direction) Direction {
	w := kernel.Sw312(false, m.P1, m.P2)
	return Direction{P3: w.Apply(d.P3)}
}

// ApplyDirections moves every direction of src into dst, with the same
// aliasing rules as ApplyPlanes.
func (m Motor) ApplyDirections(dst, src []Direction) {
	w := kernel.Sw312(false, m.P1, m.P2)
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P3 = w.Apply(src[i].P3)
	}
}
