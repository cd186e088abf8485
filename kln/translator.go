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
	"github.com/chewxy/math32"

	"github.com/ajroetker/go-klein/kln/kernel"
	"github.com/ajroetker/go-klein/kln/simd"
)

// Translator is the motor 1 + t01 e01 + t02 e02 + t03 e03, a pure
// translation. Only the ideal bivector is stored, in lanes 1 to 3 of P2;
// lane 0 is always zero and the scalar 1 is implicit. Translators are
// always normalized.
type Translator struct {
	P2 simd.Vec4
}

// NewTranslator returns the translation by delta along the direction
// (x, y, z). The direction need not be normalized but must be nonzero.
func NewTranslator(delta, x, y, z float32) Translator {
	s := -0.5 * delta / math32.Sqrt(x*x+y*y+z*z)
	return Translator{P2: simd.Set(0, x*s, y*s, z*s)}
}

// E01 returns the e01 coefficient.
func (t Translator) E01() float32 { return t.P2[1] }

// E10 returns the e10 coefficient, -e01.
func (t Translator) E10() float32 { return -t.P2[1] }

// E02 returns the e02 coefficient.
func (t Translator) E02() float32 { return t.P2[2] }

// E20 returns the e20 coefficient, -e02.
func (t Translator) E20() float32 { return -t.P2[2] }

// E03 returns the e03 coefficient.
func (t Translator) E03() float32 { return t.P2[3] }

// E30 returns the e30 coefficient, -e03.
func (t Translator) E30() float32 { return -t.P2[3] }

// Entity returns t as a generic entity, including the implicit scalar.
func (t Translator) Entity() Entity {
	return NewEntity(MaskP1|MaskP2, simd.Set(1, 0, 0, 0), t.P2)
}

// Motor returns t as a motor.
func (t Translator) Motor() Motor {
	return Motor{P1: simd.Set(1, 0, 0, 0), P2: t.P2}
}

// Invert replaces t with the opposite translation.
func (t *Translator) Invert() {
	t.P2 = kernel.Reverse2(t.P2)
}

// Inverse returns the opposite translation.
func (t Translator) Inverse() Translator {
	t.Invert()
	return t
}

// ApproxEqual reports whether each coefficient is within eps of o's.
func (t Translator) ApproxEqual(o Translator, eps float32) bool {
	return simd.ApproxEqual(t.P2, o.P2, eps)
}

// Mul returns t s. Translations commute and compose additively.
func (t Translator) Mul(s Translator) Translator {
	return Translator{P2: t.P2.Add(s.P2)}
}

// Div returns t s⁻¹.
func (t Translator) Div(s Translator) Translator {
	return Translator{P2: t.P2.Sub(s.P2)}
}

// MulRotor returns t r: rotate by r, then translate by t.
func (t Translator) MulRotor(r Rotor) Motor {
	return Motor{P1: r.P1, P2: kernel.Gp21(t.P2, r.P1)}
}

// MulMotor returns t m.
func (t Translator) MulMotor(m Motor) Motor {
	return Motor{P1: m.P1, P2: m.P2.Add(kernel.Gp21(t.P2, m.P1))}
}

// ApplyPlane returns t p ~t.
func (t Translator) ApplyPlane(p Plane) Plane {
	m := kernel.Sw02(t.P2)
	return Plane{P0: m.Apply(p.P0)}
}

// ApplyPlanes translates every plane of src into dst. dst and src may be
// the same slice; any other overlap is not supported. It panics if dst is
// shorter than src.
func (t Translator) ApplyPlanes(dst, src []Plane) {
	m := kernel.Sw02(t.P2)
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P0 = m.Apply(src[i].P0)
	}
}

// ApplyLine returns t l ~t. Only the ideal part of l changes.
func (t Translator) ApplyLine(l Line) Line {
	m := kernel.SwL2(t.P2)
	p1, p2 := m.Apply(l.P1, l.P2)
	return Line{P1: p1, P2: p2}
}

// ApplyLines translates every line of src into dst, with the same aliasing
// rules as ApplyPlanes.
func (t Translator) ApplyLines(dst, src []Line) {
	m := kernel.SwL2(t.P2)
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P1, dst[i].P2 = m.Apply(src[i].P1, src[i].P2)
	}
}

// ApplyPoint returns t a ~t.
func (t Translator) ApplyPoint(a Point) Point {
	m := kernel.Sw32(t.P2)
	return Point{P3: m.Apply(a.P3)}
}

// ApplyPoints translates every point of src into dst, with the same
// aliasing rules as ApplyPlanes.
func (t Translator) ApplyPoints(dst, src []Point) {
	m := kernel.Sw32(t.P2)
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P3 = m.Apply(src[i].P3)
	}
}
