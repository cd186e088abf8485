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
	"github.com/ajroetker/go-klein/kln/kernel"
	"github.com/ajroetker/go-klein/kln/simd"
)

// Point is the trivector w e123 + x e032 + y e013 + z e021, stored in P3 as
// (w, x, y, z). A point is normalized when w = 1. A point with w = 0 lies at
// infinity and is better represented by Direction.
type Point struct {
	P3 simd.Vec4
}

// NewPoint returns the normalized point (x, y, z).
func NewPoint(x, y, z float32) Point {
	return Point{P3: simd.Set(1, x, y, z)}
}

// Origin returns the point (0, 0, 0), the trivector e123.
func Origin() Point {
	return Point{P3: simd.Set(1, 0, 0, 0)}
}

// X returns the e032 coefficient.
func (a Point) X() float32 { return a.P3[1] }

// Y returns the e013 coefficient.
func (a Point) Y() float32 { return a.P3[2] }

// Z returns the e021 coefficient.
func (a Point) Z() float32 { return a.P3[3] }

// W returns the e123 coefficient.
func (a Point) W() float32 { return a.P3[0] }

// E032 returns the e032 coefficient.
func (a Point) E032() float32 { return a.P3[1] }

// E013 returns the e013 coefficient.
func (a Point) E013() float32 { return a.P3[2] }

// E021 returns the e021 coefficient.
func (a Point) E021() float32 { return a.P3[3] }

// E123 returns the e123 coefficient.
func (a Point) E123() float32 { return a.P3[0] }

// Entity returns a as a generic entity.
func (a Point) Entity() Entity { return NewEntity(MaskP3, a.P3) }

// Normalize divides a in place by its weight so that w = 1.
func (a *Point) Normalize() {
	a.P3 = a.P3.Mul(simd.RcpNR1(a.P3.Broadcast(0)))
}

// Normalized returns a normalized copy of a.
func (a Point) Normalized() Point {
	a.Normalize()
	return a
}

// Invert replaces a with its inverse -a / w². Since e123² = -1 and every
// other product of two point blades cancels, a a = -w².
func (a *Point) Invert() {
	inv := simd.RcpNR1(a.P3.Broadcast(0))
	a.P3 = a.P3.Mul(inv).Mul(inv).Neg()
}

// Inverse returns the inverse of a.
func (a Point) Inverse() Point {
	a.Invert()
	return a
}

// ApproxEqual reports whether each coefficient is within eps of o's.
func (a Point) ApproxEqual(o Point, eps float32) bool {
	return simd.ApproxEqual(a.P3, o.P3, eps)
}

// Add returns a + o. The weights add too, so the sum of two normalized
// points is twice their midpoint.
func (a Point) Add(o Point) Point { return Point{P3: a.P3.Add(o.P3)} }

// Sub returns a - o. For normalized points this is the direction from o
// to a.
func (a Point) Sub(o Point) Point { return Point{P3: a.P3.Sub(o.P3)} }

// Scale returns a * s.
func (a Point) Scale(s float32) Point { return Point{P3: a.P3.Scale(s)} }

// Shrink returns a / s.
func (a Point) Shrink(s float32) Point { return Point{P3: a.P3.Scale(1 / s)} }

// Neg returns -a.
func (a Point) Neg() Point { return Point{P3: a.P3.Neg()} }

// Reverse returns ~a, which is -a for a trivector.
func (a Point) Reverse() Point { return a.Neg() }

// Dual returns the Poincaré dual of a, a plane.
func (a Point) Dual() Plane { return Plane{P0: a.P3} }

// Direction returns the ideal part of a as a direction.
func (a Point) Direction() Direction { return Direction{P3: a.P3.Keep(0b1110)} }

// Join returns the line through a and b, a & b, oriented from a to b.
//
// Example:
//
//	l := kln.NewPoint(0, 0, 0).Join(kln.NewPoint(0, 0, 1)) // e12, the z axis
func (a Point) Join(b Point) Line {
	p1, p2 := kernel.Ext00(a.P3, b.P3)
	return Line{P1: p2, P2: p1}
}

// JoinLine returns the plane containing a and l, a & l.
func (a Point) JoinLine(l Line) Plane {
	_, p3 := kernel.Ext01(a.P3, l.P2)
	return Plane{P0: p3.Add(kernel.Ext02(a.P3, l.P1))}
}

// JoinPlane returns a & p, a scalar.
func (a Point) JoinPlane(p Plane) Dual {
	return Dual{P: kernel.Ext03(a.P3, p.P0)[0]}
}

// MeetPlane returns a ^ p, a pure pseudoscalar.
func (a Point) MeetPlane(p Plane) Dual {
	return Dual{Q: kernel.Ext30(a.P3, p.P0)[0]}
}

// Dot returns a | b = -wa wb.
func (a Point) Dot(b Point) float32 {
	return kernel.Dot33(a.P3, b.P3)[0]
}

// DotPlane returns a | p, the line through a orthogonal to p.
func (a Point) DotPlane(p Plane) Line {
	p1, p2 := kernel.Dot30(a.P3, p.P0)
	return Line{P1: p1, P2: p2}
}

// DotLine returns a | l, the plane through a orthogonal to l.
func (a Point) DotLine(l Line) Plane {
	p0, _ := kernel.Dot31(a.P3, l.P1)
	return Plane{P0: p0.Add(kernel.Dot32(a.P3, l.P2))}
}

// Mul returns the geometric product a b.
func (a Point) Mul(b Point) Motor {
	p1, p2 := kernel.Gp33(a.P3, b.P3)
	return Motor{P1: p1, P2: p2}
}

// Div returns a b⁻¹. For normalized points this translates by twice the
// offset from b to a, so its square root moves b onto a.
func (a Point) Div(b Point) Translator {
	m := a.Mul(b.Inverse())
	return Translator{P2: m.P2.Keep(0b1110)}
}

// Direction is a point at infinity, x e032 + y e013 + z e021 with zero
// weight, stored in P3 as (0, x, y, z). Translations leave it unchanged.
type Direction struct {
	P3 simd.Vec4
}

// NewDirection returns the direction (x, y, z).
func NewDirection(x, y, z float32) Direction {
	return Direction{P3: simd.Set(0, x, y, z)}
}

// X returns the e032 coefficient.
func (d Direction) X() float32 { return d.P3[1] }

// Y returns the e013 coefficient.
func (d Direction) Y() float32 { return d.P3[2] }

// Z returns the e021 coefficient.
func (d Direction) Z() float32 { return d.P3[3] }

// Entity returns d as a generic entity.
func (d Direction) Entity() Entity { return NewEntity(MaskP3, d.P3) }

// Point returns d as a point at infinity.
func (d Direction) Point() Point { return Point{P3: d.P3} }

// Normalize scales d in place to unit length.
func (d *Direction) Normalize() {
	d.P3 = d.P3.Mul(simd.RSqrtNR1(simd.HiDpBc(d.P3, d.P3)))
}

// Normalized returns a unit length copy of d.
func (d Direction) Normalized() Direction {
	d.Normalize()
	return d
}

// ApproxEqual reports whether each coefficient is within eps of o's.
func (d Direction) ApproxEqual(o Direction, eps float32) bool {
	return simd.ApproxEqual(d.P3, o.P3, eps)
}

// Add returns d + o.
func (d Direction) Add(o Direction) Direction { return Direction{P3: d.P3.Add(o.P3)} }

// Sub returns d - o.
func (d Direction) Sub(o Direction) Direction { return Direction{P3: d.P3.Sub(o.P3)} }

// Scale returns d * s.
func (d Direction) Scale(s float32) Direction { return Direction{P3: d.P3.Scale(s)} }

// Shrink returns d / s.
func (d Direction) Shrink(s float32) Direction { return Direction{P3: d.P3.Scale(1 / s)} }

// Neg returns -d.
func (d Direction) Neg() Direction { return Direction{P3: d.P3.Neg()} }
