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

// Line is a bivector a e01 + b e02 + c e03 + d e23 + e e31 + f e12. The
// Euclidean part (d, e, f) lives in lanes 1..3 of P1 and the ideal part
// (a, b, c) in lanes 1..3 of P2; lane 0 of both partitions is zero.
//
// A line through the origin has no ideal part (see Branch) and a line at
// infinity has no Euclidean part (see IdealLine). A line is normalized when
// its square is -1, that is d² + e² + f² = 1 and ad + be + cf = 0.
type Line struct {
	P1, P2 simd.Vec4
}

// NewLine returns a e01 + b e02 + c e03 + d e23 + e e31 + f e12. The six
// arguments are the Plücker coordinates of the line: (d, e, f) is its
// direction and (a, b, c) its moment.
func NewLine(a, b, c, d, e, f float32) Line {
	return Line{P1: simd.Set(0, d, e, f), P2: simd.Set(0, a, b, c)}
}

// E01 returns the e01 coefficient.
func (l Line) E01() float32 { return l.P2[1] }

// E10 returns the e10 coefficient, -e01.
func (l Line) E10() float32 { return -l.P2[1] }

// E02 returns the e02 coefficient.
func (l Line) E02() float32 { return l.P2[2] }

// E20 returns the e20 coefficient, -e02.
func (l Line) E20() float32 { return -l.P2[2] }

// E03 returns the e03 coefficient.
func (l Line) E03() float32 { return l.P2[3] }

// E30 returns the e30 coefficient, -e03.
func (l Line) E30() float32 { return -l.P2[3] }

// E12 returns the e12 coefficient.
func (l Line) E12() float32 { return l.P1[3] }

// E21 returns the e21 coefficient, -e12.
func (l Line) E21() float32 { return -l.P1[3] }

// E31 returns the e31 coefficient.
func (l Line) E31() float32 { return l.P1[2] }

// E13 returns the e13 coefficient, -e31.
func (l Line) E13() float32 { return -l.P1[2] }

// E23 returns the e23 coefficient.
func (l Line) E23() float32 { return l.P1[1] }

// E32 returns the e32 coefficient, -e23.
func (l Line) E32() float32 { return -l.P1[1] }

// Entity returns l as a generic entity.
func (l Line) Entity() Entity { return NewEntity(MaskP1|MaskP2, l.P1, l.P2) }

// Branch returns the Euclidean part of l.
func (l Line) Branch() Branch { return Branch{P1: l.P1} }

// IdealLine returns the ideal part of l.
func (l Line) IdealLine() IdealLine { return IdealLine{P2: l.P2} }

// SquaredNorm returns d² + e² + f².
func (l Line) SquaredNorm() float32 {
	return simd.HiDp(l.P1, l.P1).First()
}

// Norm returns sqrt(d² + e² + f²).
func (l Line) Norm() float32 {
	return math32.Sqrt(l.SquaredNorm())
}

// Normalize scales l in place so that l ~l = 1. The squared norm
// l ~l = α + β e0123 is a dual number, and l is multiplied by its inverse
// square root
//
//	s + t e0123 = 1/sqrt(α) - β / (2 α sqrt(α)) e0123
//
// which also removes the component of the moment along the direction.
func (l *Line) Normalize() {
	b2 := simd.HiDp(l.P1, l.P1).First()
	s := simd.RSqrt1(b2)
	bc := simd.HiDp(l.P1, l.P2).First()
	t := bc * simd.Rcp1(b2) * s
	l.P1, l.P2 = kernel.GpDL(s, t, l.P1, l.P2)
}

// Normalized returns a normalized copy of l.
func (l Line) Normalized() Line {
	l.Normalize()
	return l
}

// Invert replaces l with its inverse ~l (l ~l)⁻¹.
func (l *Line) Invert() {
	b2 := simd.HiDp(l.P1, l.P1).First()
	inv := simd.Rcp1(b2)
	bc := simd.HiDp(l.P1, l.P2).First()
	l.P1, l.P2 = kernel.GpDL(inv, 2*bc*inv*inv, l.P1.Neg(), l.P2.Neg())
}

// Inverse returns the inverse of l.
func (l Line) Inverse() Line {
	l.Invert()
	return l
}

// ApproxEqual reports whether each coefficient is within eps of o's.
func (l Line) ApproxEqual(o Line, eps float32) bool {
	return simd.ApproxEqual(l.P1, o.P1, eps) && simd.ApproxEqual(l.P2, o.P2, eps)
}

// Add returns l + o.
func (l Line) Add(o Line) Line { return Line{P1: l.P1.Add(o.P1), P2: l.P2.Add(o.P2)} }

// Sub returns l - o.
func (l Line) Sub(o Line) Line { return Line{P1: l.P1.Sub(o.P1), P2: l.P2.Sub(o.P2)} }

// Scale returns l * s.
func (l Line) Scale(s float32) Line { return Line{P1: l.P1.Scale(s), P2: l.P2.Scale(s)} }

// Shrink returns l / s.
func (l Line) Shrink(s float32) Line { return l.Scale(1 / s) }

// Neg returns -l, the same line with the opposite orientation.
func (l Line) Neg() Line { return Line{P1: l.P1.Neg(), P2: l.P2.Neg()} }

// Reverse returns ~l, which is -l for a bivector.
func (l Line) Reverse() Line { return l.Neg() }

// Dual returns the Poincaré dual of l, which swaps the Euclidean and ideal
// parts.
func (l Line) Dual() Line { return Line{P1: l.P2, P2: l.P1} }

// MeetPlane returns the point where l pierces p, l ^ p.
func (l Line) MeetPlane(p Plane) Point {
	_, p3 := kernel.Ext10(l.P1, p.P0)
	return Point{P3: p3.Add(kernel.Ext20(l.P2, p.P0))}
}

// MeetLine returns l ^ k. The pseudoscalar coefficient is zero exactly when
// the lines intersect or are parallel.
func (l Line) MeetLine(k Line) Dual {
	q := kernel.Ext12(l.P1, k.P2).Add(kernel.Ext21(l.P2, k.P1))
	return Dual{Q: q[0]}
}

// JoinPoint returns the plane containing l and a, l & a.
func (l Line) JoinPoint(a Point) Plane {
	_, p3 := kernel.Ext10(l.P2, a.P3)
	return Plane{P0: p3.Add(kernel.Ext20(l.P1, a.P3))}
}

// Dot returns l | k. For normalized lines through a common point this is
// minus the cosine of the angle between them.
func (l Line) Dot(k Line) float32 {
	return kernel.Dot11(l.P1, k.P1)[0]
}

// DotPlane returns l | p, the plane through l orthogonal to p.
func (l Line) DotPlane(p Plane) Plane {
	p0 := kernel.Dot10(l.P1, p.P0)
	q0, _ := kernel.Dot20(l.P2, p.P0)
	return Plane{P0: p0.Add(q0)}
}

// DotPoint returns l | a, the plane through a orthogonal to l.
func (l Line) DotPoint(a Point) Plane {
	p0, _ := kernel.Dot13(l.P1, a.P3)
	return Plane{P0: p0.Add(kernel.Dot23(l.P2, a.P3))}
}

// Mul returns the geometric product l k.
func (l Line) Mul(k Line) Motor {
	p1 := kernel.Gp11(l.P1, k.P1)
	p2 := kernel.Gp12(l.P1, k.P2).Add(kernel.Gp21(l.P2, k.P1))
	return Motor{P1: p1, P2: p2}
}

// Div returns l k⁻¹.
func (l Line) Div(k Line) Motor {
	return l.Mul(k.Inverse())
}

// Branch is a line through the origin: x e23 + y e31 + z e12, stored in
// lanes 1..3 of P1. Its exponential is a rotor.
type Branch struct {
	P1 simd.Vec4
}

// NewBranch returns the line through the origin with direction (x, y, z).
func NewBranch(x, y, z float32) Branch {
	return Branch{P1: simd.Set(0, x, y, z)}
}

// X returns the e23 coefficient.
func (b Branch) X() float32 { return b.P1[1] }

// Y returns the e31 coefficient.
func (b Branch) Y() float32 { return b.P1[2] }

// Z returns the e12 coefficient.
func (b Branch) Z() float32 { return b.P1[3] }

// E23 returns the e23 coefficient.
func (b Branch) E23() float32 { return b.P1[1] }

// E32 returns the e32 coefficient, -e23.
func (b Branch) E32() float32 { return -b.P1[1] }

// E31 returns the e31 coefficient.
func (b Branch) E31() float32 { return b.P1[2] }

// E13 returns the e13 coefficient, -e31.
func (b Branch) E13() float32 { return -b.P1[2] }

// E12 returns the e12 coefficient.
func (b Branch) E12() float32 { return b.P1[3] }

// E21 returns the e21 coefficient, -e12.
func (b Branch) E21() float32 { return -b.P1[3] }

// Entity returns b as a generic entity.
func (b Branch) Entity() Entity { return NewEntity(MaskP1, b.P1) }

// Line returns b as a general line.
func (b Branch) Line() Line { return Line{P1: b.P1} }

// SquaredNorm returns x² + y² + z².
func (b Branch) SquaredNorm() float32 { return simd.HiDp(b.P1, b.P1).First() }

// Norm returns sqrt(x² + y² + z²).
func (b Branch) Norm() float32 { return math32.Sqrt(b.SquaredNorm()) }

// Normalize scales b in place to unit norm.
func (b *Branch) Normalize() {
	b.P1 = b.P1.Mul(simd.RSqrtNR1(simd.HiDpBc(b.P1, b.P1)))
}

// Normalized returns a normalized copy of b.
func (b Branch) Normalized() Branch {
	b.Normalize()
	return b
}

// Invert replaces b with its inverse -b / (x² + y² + z²).
func (b *Branch) Invert() {
	b.P1 = b.P1.Mul(simd.RcpNR1(simd.HiDpBc(b.P1, b.P1))).Neg()
}

// Inverse returns the inverse of b.
func (b Branch) Inverse() Branch {
	b.Invert()
	return b
}

// ApproxEqual reports whether each coefficient is within eps of o's.
func (b Branch) ApproxEqual(o Branch, eps float32) bool {
	return simd.ApproxEqual(b.P1, o.P1, eps)
}

// Add returns b + o.
func (b Branch) Add(o Branch) Branch { return Branch{P1: b.P1.Add(o.P1)} }

// Sub returns b - o.
func (b Branch) Sub(o Branch) Branch { return Branch{P1: b.P1.Sub(o.P1)} }

// Scale returns b * s.
func (b Branch) Scale(s float32) Branch { return Branch{P1: b.P1.Scale(s)} }

// Shrink returns b / s.
func (b Branch) Shrink(s float32) Branch { return Branch{P1: b.P1.Scale(1 / s)} }

// Neg returns -b.
func (b Branch) Neg() Branch { return Branch{P1: b.P1.Neg()} }

// Reverse returns ~b = -b.
func (b Branch) Reverse() Branch { return b.Neg() }

// Mul returns the geometric product b c, a rotor (up to scale).
func (b Branch) Mul(c Branch) Rotor {
	return Rotor{P1: kernel.Gp11(b.P1, c.P1)}
}

// IdealLine is a line at infinity: a e01 + b e02 + c e03, stored in lanes
// 1..3 of P2. Its exponential is a translator.
type IdealLine struct {
	P2 simd.Vec4
}

// NewIdealLine returns a e01 + b e02 + c e03.
func NewIdealLine(a, b, c float32) IdealLine {
	return IdealLine{P2: simd.Set(0, a, b, c)}
}

// E01 returns the e01 coefficient.
func (l IdealLine) E01() float32 { return l.P2[1] }

// E02 returns the e02 coefficient.
func (l IdealLine) E02() float32 { return l.P2[2] }

// E03 returns the e03 coefficient.
func (l IdealLine) E03() float32 { return l.P2[3] }

// Entity returns l as a generic entity.
func (l IdealLine) Entity() Entity { return NewEntity(MaskP2, l.P2) }

// Line returns l as a general line.
func (l IdealLine) Line() Line { return Line{P2: l.P2} }

// SquaredIdealNorm returns a² + b² + c².
func (l IdealLine) SquaredIdealNorm() float32 { return simd.HiDp(l.P2, l.P2).First() }

// IdealNorm returns sqrt(a² + b² + c²). The Euclidean norm of an ideal line
// is always zero.
func (l IdealLine) IdealNorm() float32 { return math32.Sqrt(l.SquaredIdealNorm()) }

// ApproxEqual reports whether each coefficient is within eps of o's.
func (l IdealLine) ApproxEqual(o IdealLine, eps float32) bool {
	return simd.ApproxEqual(l.P2, o.P2, eps)
}

// Add returns l + o.
func (l IdealLine) Add(o IdealLine) IdealLine { return IdealLine{P2: l.P2.Add(o.P2)} }

// Sub returns l - o.
func (l IdealLine) Sub(o IdealLine) IdealLine { return IdealLine{P2: l.P2.Sub(o.P2)} }

// Scale returns l * s.
func (l IdealLine) Scale(s float32) IdealLine { return IdealLine{P2: l.P2.Scale(s)} }

// Shrink returns l / s.
func (l IdealLine) Shrink(s float32) IdealLine { return IdealLine{P2: l.P2.Scale(1 / s)} }

// Neg returns -l.
func (l IdealLine) Neg() IdealLine { return IdealLine{P2: l.P2.Neg()} }

// Reverse returns ~l = -l.
func (l IdealLine) Reverse() IdealLine { return l.Neg() }
