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

// Plane is the grade-1 element d e0 + a e1 + b e2 + c e3, the set of points
// satisfying ax + by + cz + d = 0. It is stored in P0 as (d, a, b, c). A plane
// is normalized when a² + b² + c² = 1; its d coefficient is then the signed
// distance from the origin.
type Plane struct {
	P0 simd.Vec4
}

// NewPlane returns the plane ax + by + cz + d = 0.
//
// Example:
//
//	// The plane z = 2.
//	p := kln.NewPlane(0, 0, 1, -2)
func NewPlane(a, b, c, d float32) Plane {
	return Plane{P0: simd.Set(d, a, b, c)}
}

// X returns the e1 coefficient.
func (p Plane) X() float32 { return p.P0[1] }

// Y returns the e2 coefficient.
func (p Plane) Y() float32 { return p.P0[2] }

// Z returns the e3 coefficient.
func (p Plane) Z() float32 { return p.P0[3] }

// D returns the e0 coefficient.
func (p Plane) D() float32 { return p.P0[0] }

// E0 returns the e0 coefficient.
func (p Plane) E0() float32 { return p.P0[0] }

// E1 returns the e1 coefficient.
func (p Plane) E1() float32 { return p.P0[1] }

// E2 returns the e2 coefficient.
func (p Plane) E2() float32 { return p.P0[2] }

// E3 returns the e3 coefficient.
func (p Plane) E3() float32 { return p.P0[3] }

// Entity returns p as a generic entity.
func (p Plane) Entity() Entity { return NewEntity(MaskP0, p.P0) }

// Norm returns the Euclidean norm sqrt(a² + b² + c²).
func (p Plane) Norm() float32 {
	return math32.Sqrt(simd.HiDp(p.P0, p.P0).First())
}

// Normalize scales p in place so that a² + b² + c² = 1. It uses the fast
// reciprocal square root, so the result is accurate to a few ulp.
func (p *Plane) Normalize() {
	p.P0 = p.P0.Mul(simd.RSqrtNR1(simd.HiDpBc(p.P0, p.P0)))
}

// Normalized returns a normalized copy of p.
func (p Plane) Normalized() Plane {
	p.Normalize()
	return p
}

// Invert replaces p with its inverse p / (a² + b² + c²).
func (p *Plane) Invert() {
	p.P0 = p.P0.Mul(simd.RcpNR1(simd.HiDpBc(p.P0, p.P0)))
}

// Inverse returns the inverse of p.
func (p Plane) Inverse() Plane {
	p.Invert()
	return p
}

// ApproxEqual reports whether each coefficient is within eps of o's.
func (p Plane) ApproxEqual(o Plane, eps float32) bool {
	return simd.ApproxEqual(p.P0, o.P0, eps)
}

// Add returns p + o.
func (p Plane) Add(o Plane) Plane { return Plane{P0: p.P0.Add(o.P0)} }

// Sub returns p - o.
func (p Plane) Sub(o Plane) Plane { return Plane{P0: p.P0.Sub(o.P0)} }

// Scale returns p * s.
func (p Plane) Scale(s float32) Plane { return Plane{P0: p.P0.Scale(s)} }

// Shrink returns p / s.
func (p Plane) Shrink(s float32) Plane { return Plane{P0: p.P0.Scale(1 / s)} }

// Neg returns -p. The plane is the same set of points with the opposite
// orientation.
func (p Plane) Neg() Plane { return Plane{P0: p.P0.Neg()} }

// Dual returns the Poincaré dual of p, a point.
func (p Plane) Dual() Point { return Point{P3: p.P0} }

// ReflectPlane reflects q through p, computing the sandwich p q p.
func (p Plane) ReflectPlane(q Plane) Plane {
	m := kernel.Sw00(p.P0)
	return Plane{P0: m.Apply(q.P0)}
}

// ReflectPlanes reflects every plane of src through p into dst. dst and src
// may be the same slice; any other overlap is not supported. It panics if
// dst is shorter than src.
func (p Plane) ReflectPlanes(dst, src []Plane) {
	m := kernel.Sw00(p.P0)
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P0 = m.Apply(src[i].P0)
	}
}

// ReflectLine reflects l through p, computing the sandwich p l p.
func (p Plane) ReflectLine(l Line) Line {
	m := kernel.Sw10(p.P0)
	p1, p2 := m.Apply(l.P1, l.P2)
	return Line{P1: p1, P2: p2}
}

// ReflectLines reflects every line of src through p into dst, with the same
// aliasing rules as ReflectPlanes.
func (p Plane) ReflectLines(dst, src []Line) {
	m := kernel.Sw10(p.P0)
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P1, dst[i].P2 = m.Apply(src[i].P1, src[i].P2)
	}
}

// ReflectPoint reflects a through p, computing the sandwich p a p.
func (p Plane) ReflectPoint(a Point) Point {
	m := kernel.Sw30(p.P0)
	return Point{P3: m.Apply(a.P3)}
}

// ReflectPoints reflects every point of src through p into dst, with the
// same aliasing rules as ReflectPlanes.
func (p Plane) ReflectPoints(dst, src []Point) {
	m := kernel.Sw30(p.P0)
	dst = dst[:len(src)]
	for i := range src {
		dst[i].P3 = m.Apply(src[i].P3)
	}
}

// Meet returns the line where p and q intersect, p ^ q.
func (p Plane) Meet(q Plane) Line {
	p1, p2 := kernel.Ext00(p.P0, q.P0)
	return Line{P1: p1, P2: p2}
}

// MeetLine returns the point where l pierces p, p ^ l.
func (p Plane) MeetLine(l Line) Point {
	_, p3 := kernel.Ext01(p.P0, l.P1)
	return Point{P3: p3.Add(kernel.Ext02(p.P0, l.P2))}
}

// MeetBranch returns the point where the line through the origin b pierces p.
func (p Plane) MeetBranch(b Branch) Point {
	_, p3 := kernel.Ext01(p.P0, b.P1)
	return Point{P3: p3}
}

// MeetIdealLine returns the ideal point p ^ l.
func (p Plane) MeetIdealLine(l IdealLine) Point {
	return Point{P3: kernel.Ext02(p.P0, l.P2)}
}

// MeetPoint returns p ^ a, a pure pseudoscalar proportional to the signed
// distance between a and p.
func (p Plane) MeetPoint(a Point) Dual {
	return Dual{Q: kernel.Ext03(p.P0, a.P3)[0]}
}

// JoinPoint returns p & a = !(!p ^ !a), a scalar.
func (p Plane) JoinPoint(a Point) Dual {
	return Dual{P: kernel.Ext30(p.P0, a.P3)[0]}
}

// Mul returns the geometric product p q, the motor that reflects through q
// and then through p.
func (p Plane) Mul(q Plane) Motor {
	p1, p2 := kernel.Gp00(p.P0, q.P0)
	return Motor{P1: p1, P2: p2}
}

// Div returns p q⁻¹.
func (p Plane) Div(q Plane) Motor {
	return p.Mul(q.Inverse())
}

// Dot returns p | q. For normalized planes this is the cosine of the angle
// between them.
func (p Plane) Dot(q Plane) float32 {
	return kernel.Dot00(p.P0, q.P0)[0]
}

// DotLine returns p | l, the plane through l orthogonal to p.
func (p Plane) DotLine(l Line) Plane {
	p0 := kernel.Dot01(p.P0, l.P1)
	q0, _ := kernel.Dot02(p.P0, l.P2)
	return Plane{P0: p0.Add(q0)}
}

// DotPoint returns p | a, the line through a orthogonal to p.
func (p Plane) DotPoint(a Point) Line {
	p1, p2 := kernel.Dot03(p.P0, a.P3)
	return Line{P1: p1, P2: p2}
}
