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

package kernel

import "github.com/ajroetker/go-klein/kln/simd"

// Mat4 is a linear map on a single partition, stored as four columns. Column
// k is the image of input lane k. The sandwich kernels below return the
// transform-dependent part of a conjugation as a Mat4 so that applying the
// same transform to many elements costs four broadcast multiply-adds each.
type Mat4 [4]simd.Vec4

// Apply returns the image of x.
func (m *Mat4) Apply(x simd.Vec4) simd.Vec4 {
	out := m[0].Mul(x.Broadcast(0))
	out = out.Add(m[1].Mul(x.Broadcast(1)))
	out = out.Add(m[2].Mul(x.Broadcast(2)))
	return out.Add(m[3].Mul(x.Broadcast(3)))
}

// LineMat is the prepared form of a conjugation acting on lines. The
// Euclidean partition never picks up ideal terms, so the map is block
// triangular:
//
//	p1' = Real * p1
//	p2' = Ideal * p2 + Cross * p1
type LineMat struct {
	Real, Ideal, Cross Mat4
}

// Apply returns the image of the line (p1, p2).
func (m *LineMat) Apply(p1, p2 simd.Vec4) (simd.Vec4, simd.Vec4) {
	return m.Real.Apply(p1), m.Ideal.Apply(p2).Add(m.Cross.Apply(p1))
}

// Sw00 prepares the reflection p x p of planes through the plane p0.
func Sw00(p0 simd.Vec4) (m Mat4) {
	a0, a1, a2, a3 := p0[0], p0[1], p0[2], p0[3]
	m[0] = simd.Vec4{-(a1*a1 + a2*a2 + a3*a3), 0, 0, 0}
	m[1] = simd.Vec4{2 * a0 * a1, a1*a1 - a2*a2 - a3*a3, 2 * a1 * a2, 2 * a1 * a3}
	m[2] = simd.Vec4{2 * a0 * a2, 2 * a1 * a2, a2*a2 - a1*a1 - a3*a3, 2 * a2 * a3}
	m[3] = simd.Vec4{2 * a0 * a3, 2 * a1 * a3, 2 * a2 * a3, a3*a3 - a1*a1 - a2*a2}
	return
}

// Sw10 prepares the reflection p x p of lines through the plane p0.
func Sw10(p0 simd.Vec4) (m LineMat) {
	a0, a1, a2, a3 := p0[0], p0[1], p0[2], p0[3]
	m.Real[0] = simd.Vec4{a1*a1 + a2*a2 + a3*a3, 0, 0, 0}
	m.Real[1] = simd.Vec4{0, a1*a1 - a2*a2 - a3*a3, 2 * a1 * a2, 2 * a1 * a3}
	m.Real[2] = simd.Vec4{0, 2 * a1 * a2, a2*a2 - a1*a1 - a3*a3, 2 * a2 * a3}
	m.Real[3] = simd.Vec4{0, 2 * a1 * a3, 2 * a2 * a3, a3*a3 - a1*a1 - a2*a2}
	m.Ideal[0] = simd.Vec4{-(a1*a1 + a2*a2 + a3*a3), 0, 0, 0}
	m.Ideal[1] = simd.Vec4{0, a2*a2 - a1*a1 + a3*a3, -2 * a1 * a2, -2 * a1 * a3}
	m.Ideal[2] = simd.Vec4{0, -2 * a1 * a2, a1*a1 - a2*a2 + a3*a3, -2 * a2 * a3}
	m.Ideal[3] = simd.Vec4{0, -2 * a1 * a3, -2 * a2 * a3, a1*a1 + a2*a2 - a3*a3}
	m.Cross[1] = simd.Vec4{0, 0, 2 * a0 * a3, -2 * a0 * a2}
	m.Cross[2] = simd.Vec4{0, -2 * a0 * a3, 0, 2 * a0 * a1}
	m.Cross[3] = simd.Vec4{0, 2 * a0 * a2, -2 * a0 * a1, 0}
	return
}

// Sw30 prepares the reflection p x p of points through the plane p0.
func Sw30(p0 simd.Vec4) (m Mat4) {
	a0, a1, a2, a3 := p0[0], p0[1], p0[2], p0[3]
	m[0] = simd.Vec4{a1*a1 + a2*a2 + a3*a3, -2 * a0 * a1, -2 * a0 * a2, -2 * a0 * a3}
	m[1] = simd.Vec4{0, a2*a2 - a1*a1 + a3*a3, -2 * a1 * a2, -2 * a1 * a3}
	m[2] = simd.Vec4{0, -2 * a1 * a2, a1*a1 - a2*a2 + a3*a3, -2 * a2 * a3}
	m[3] = simd.Vec4{0, -2 * a1 * a3, -2 * a2 * a3, a1*a1 + a2*a2 - a3*a3}
	return
}

// Sw012 prepares the conjugation g x ~g of planes by a rotor (p1) or,
// when translate is set, by a motor (p1, p2).
func Sw012(translate bool, p1, p2 simd.Vec4) (m Mat4) {
	a0, a1, a2, a3 := p1[0], p1[1], p1[2], p1[3]
	m[0] = simd.Vec4{a0*a0 + a1*a1 + a2*a2 + a3*a3, 0, 0, 0}
	m[1] = simd.Vec4{0, a0*a0 + a1*a1 - a2*a2 - a3*a3, 2 * (a1*a2 - a0*a3), 2 * (a0*a2 + a1*a3)}
	m[2] = simd.Vec4{0, 2 * (a0*a3 + a1*a2), a0*a0 - a1*a1 + a2*a2 - a3*a3, 2 * (a2*a3 - a0*a1)}
	m[3] = simd.Vec4{0, 2 * (a1*a3 - a0*a2), 2 * (a0*a1 + a2*a3), a0*a0 - a1*a1 - a2*a2 + a3*a3}
	if translate {
		b0, b1, b2, b3 := p2[0], p2[1], p2[2], p2[3]
		m[1] = m[1].Add(simd.Vec4{2 * (a0*b1 + a1*b0 + a2*b3 - a3*b2), 0, 0, 0})
		m[2] = m[2].Add(simd.Vec4{2 * (a0*b2 - a1*b3 + a2*b0 + a3*b1), 0, 0, 0})
		m[3] = m[3].Add(simd.Vec4{2 * (a0*b3 + a1*b2 - a2*b1 + a3*b0), 0, 0, 0})
	}
	return
}

// Sw312 prepares the conjugation g x ~g of points and directions by a
// rotor (p1) or, when translate is set, by a motor (p1, p2).
func Sw312(translate bool, p1, p2 simd.Vec4) (m Mat4) {
	a0, a1, a2, a3 := p1[0], p1[1], p1[2], p1[3]
	m[0] = simd.Vec4{a0*a0 + a1*a1 + a2*a2 + a3*a3, 0, 0, 0}
	m[1] = simd.Vec4{0, a0*a0 + a1*a1 - a2*a2 - a3*a3, 2 * (a1*a2 - a0*a3), 2 * (a0*a2 + a1*a3)}
	m[2] = simd.Vec4{0, 2 * (a0*a3 + a1*a2), a0*a0 - a1*a1 + a2*a2 - a3*a3, 2 * (a2*a3 - a0*a1)}
	m[3] = simd.Vec4{0, 2 * (a1*a3 - a0*a2), 2 * (a0*a1 + a2*a3), a0*a0 - a1*a1 - a2*a2 + a3*a3}
	if translate {
		b0, b1, b2, b3 := p2[0], p2[1], p2[2], p2[3]
		m[0] = m[0].Add(simd.Vec4{0, 2 * (a2*b3 - a0*b1 - a1*b0 - a3*b2), 2 * (a3*b1 - a0*b2 - a1*b3 - a2*b0), 2 * (a1*b2 - a0*b3 - a2*b1 - a3*b0)})
	}
	return
}

// SwMM prepares the conjugation g x ~g of lines by a rotor (p1) or,
// when translate is set, by a motor (p1, p2).
func SwMM(translate bool, p1, p2 simd.Vec4) (m LineMat) {
	a0, a1, a2, a3 := p1[0], p1[1], p1[2], p1[3]
	m.Real[0] = simd.Vec4{a0*a0 + a1*a1 + a2*a2 + a3*a3, 0, 0, 0}
	m.Real[1] = simd.Vec4{0, a0*a0 + a1*a1 - a2*a2 - a3*a3, 2 * (a1*a2 - a0*a3), 2 * (a0*a2 + a1*a3)}
	m.Real[2] = simd.Vec4{0, 2 * (a0*a3 + a1*a2), a0*a0 - a1*a1 + a2*a2 - a3*a3, 2 * (a2*a3 - a0*a1)}
	m.Real[3] = simd.Vec4{0, 2 * (a1*a3 - a0*a2), 2 * (a0*a1 + a2*a3), a0*a0 - a1*a1 - a2*a2 + a3*a3}
	m.Ideal[0] = simd.Vec4{a0*a0 + a1*a1 + a2*a2 + a3*a3, 0, 0, 0}
	m.Ideal[1] = simd.Vec4{0, a0*a0 + a1*a1 - a2*a2 - a3*a3, 2 * (a1*a2 - a0*a3), 2 * (a0*a2 + a1*a3)}
	m.Ideal[2] = simd.Vec4{0, 2 * (a0*a3 + a1*a2), a0*a0 - a1*a1 + a2*a2 - a3*a3, 2 * (a2*a3 - a0*a1)}
	m.Ideal[3] = simd.Vec4{0, 2 * (a1*a3 - a0*a2), 2 * (a0*a1 + a2*a3), a0*a0 - a1*a1 - a2*a2 + a3*a3}
	if translate {
		b0, b1, b2, b3 := p2[0], p2[1], p2[2], p2[3]
		m.Cross[0] = m.Cross[0].Add(simd.Vec4{2 * (a0*b0 - a1*b1 - a2*b2 - a3*b3), 0, 0, 0})
		m.Cross[1] = m.Cross[1].Add(simd.Vec4{0, 2 * (a1*b1 - a0*b0 - a2*b2 - a3*b3), 2 * (a1*b2 - a0*b3 + a2*b1 + a3*b0), 2 * (a0*b2 + a1*b3 - a2*b0 + a3*b1)})
		m.Cross[2] = m.Cross[2].Add(simd.Vec4{0, 2 * (a0*b3 + a1*b2 + a2*b1 - a3*b0), 2 * (a2*b2 - a0*b0 - a1*b1 - a3*b3), 2 * (a1*b0 - a0*b1 + a2*b3 + a3*b2)})
		m.Cross[3] = m.Cross[3].Add(simd.Vec4{0, 2 * (a1*b3 - a0*b2 + a2*b0 + a3*b1), 2 * (a0*b1 - a1*b0 + a2*b3 + a3*b2), 2 * (a3*b3 - a0*b0 - a1*b1 - a2*b2)})
	}
	return
}

// Sw02 prepares the conjugation of planes by the translator 1 + p2.
func Sw02(p2 simd.Vec4) (m Mat4) {
	b1, b2, b3 := p2[1], p2[2], p2[3]
	m[0] = simd.Vec4{1, 0, 0, 0}
	m[1] = simd.Vec4{2 * b1, 1, 0, 0}
	m[2] = simd.Vec4{2 * b2, 0, 1, 0}
	m[3] = simd.Vec4{2 * b3, 0, 0, 1}
	return
}

// Sw32 prepares the conjugation of points by the translator 1 + p2.
func Sw32(p2 simd.Vec4) (m Mat4) {
	b1, b2, b3 := p2[1], p2[2], p2[3]
	m[0] = simd.Vec4{1, -2 * b1, -2 * b2, -2 * b3}
	m[1] = simd.Vec4{0, 1, 0, 0}
	m[2] = simd.Vec4{0, 0, 1, 0}
	m[3] = simd.Vec4{0, 0, 0, 1}
	return
}

// SwL2 prepares the conjugation of lines by the translator 1 + p2.
func SwL2(p2 simd.Vec4) (m LineMat) {
	b1, b2, b3 := p2[1], p2[2], p2[3]
	m.Real[0] = simd.Vec4{1, 0, 0, 0}
	m.Real[1] = simd.Vec4{0, 1, 0, 0}
	m.Real[2] = simd.Vec4{0, 0, 1, 0}
	m.Real[3] = simd.Vec4{0, 0, 0, 1}
	m.Ideal[0] = simd.Vec4{1, 0, 0, 0}
	m.Ideal[1] = simd.Vec4{0, 1, 0, 0}
	m.Ideal[2] = simd.Vec4{0, 0, 1, 0}
	m.Ideal[3] = simd.Vec4{0, 0, 0, 1}
	m.Cross[1] = simd.Vec4{0, 0, -2 * b3, 2 * b2}
	m.Cross[2] = simd.Vec4{0, 2 * b3, 0, -2 * b1}
	m.Cross[3] = simd.Vec4{0, -2 * b2, 2 * b1, 0}
	return
}
