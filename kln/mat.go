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

import "github.com/ajroetker/go-klein/kln/simd"

// Mat4x4 is a column-major 4x4 matrix acting on column vectors in
// (x, y, z, w) order: Cols[j][i] is the entry in row i, column j.
type Mat4x4 struct {
	Cols [4]simd.Vec4
}

// Mat3x4 is an affine transform stored like Mat4x4. Lane 3 of each column
// holds the implicit last row (0, 0, 0, 1).
type Mat3x4 struct {
	Cols [4]simd.Vec4
}

// Apply returns M xyzw.
func (m *Mat4x4) Apply(xyzw simd.Vec4) simd.Vec4 {
	return applyCols(&m.Cols, xyzw)
}

// ApplyPoint returns the image of a.
func (m *Mat4x4) ApplyPoint(a Point) Point {
	return Point{P3: fromXYZW(m.Apply(toXYZW(a.P3)))}
}

// Apply returns M xyzw. The w lane passes through unchanged.
func (m *Mat3x4) Apply(xyzw simd.Vec4) simd.Vec4 {
	return applyCols(&m.Cols, xyzw).WithLane(3, xyzw[3])
}

// ApplyPoint returns the image of a.
func (m *Mat3x4) ApplyPoint(a Point) Point {
	return Point{P3: fromXYZW(m.Apply(toXYZW(a.P3)))}
}

func applyCols(cols *[4]simd.Vec4, x simd.Vec4) simd.Vec4 {
	out := cols[0].Mul(x.Broadcast(0))
	out = out.Add(cols[1].Mul(x.Broadcast(1)))
	out = out.Add(cols[2].Mul(x.Broadcast(2)))
	return out.Add(cols[3].Mul(x.Broadcast(3)))
}

// toXYZW reorders a P3 partition (w, x, y, z) to (x, y, z, w).
func toXYZW(p3 simd.Vec4) simd.Vec4 { return p3.Swizzle(1, 2, 3, 0) }

// fromXYZW is the inverse of toXYZW.
func fromXYZW(v simd.Vec4) simd.Vec4 { return v.Swizzle(3, 0, 1, 2) }

// mat4x4From builds the column-major matrix of the point sandwich by the
// rotor p1 or, when translate is set, the motor (p1, p2). With normalized
// set the diagonal uses the unit-quaternion form and the homogeneous entry
// is 1; otherwise that entry is |p1|².
func mat4x4From(p1, p2 simd.Vec4, translate, normalized bool) (cols [4]simd.Vec4) {
	a0, a1, a2, a3 := p1[0], p1[1], p1[2], p1[3]
	var xx, yy, zz, ww float32
	if normalized {
		xx = 1 - 2*(a2*a2+a3*a3)
		yy = 1 - 2*(a1*a1+a3*a3)
		zz = 1 - 2*(a1*a1+a2*a2)
		ww = 1
	} else {
		s0, s1, s2, s3 := a0*a0, a1*a1, a2*a2, a3*a3
		xx = s0 + s1 - s2 - s3
		yy = s0 - s1 + s2 - s3
		zz = s0 - s1 - s2 + s3
		ww = s0 + s1 + s2 + s3
	}
	cols[0] = simd.Set(xx, 2*(a1*a2-a0*a3), 2*(a0*a2+a1*a3), 0)
	cols[1] = simd.Set(2*(a0*a3+a1*a2), yy, 2*(a2*a3-a0*a1), 0)
	cols[2] = simd.Set(2*(a1*a3-a0*a2), 2*(a0*a1+a2*a3), zz, 0)
	cols[3] = simd.Set(0, 0, 0, ww)
	if translate {
		b0, b1, b2, b3 := p2[0], p2[1], p2[2], p2[3]
		cols[3] = simd.Set(
			2*(a2*b3-a0*b1-a1*b0-a3*b2),
			2*(a3*b1-a0*b2-a1*b3-a2*b0),
			2*(a1*b2-a0*b3-a2*b1-a3*b0),
			ww,
		)
	}
	return
}

// Mat3x4 returns the affine matrix of a normalized rotor.
func (r Rotor) Mat3x4() Mat3x4 {
	return Mat3x4{Cols: mat4x4From(r.P1, simd.Vec4{}, false, true)}
}

// Mat4x4 returns the homogeneous matrix of a normalized rotor.
func (r Rotor) Mat4x4() Mat4x4 {
	return Mat4x4{Cols: mat4x4From(r.P1, simd.Vec4{}, false, false)}
}

// Mat3x4 returns the affine matrix of a normalized motor.
func (m Motor) Mat3x4() Mat3x4 {
	return Mat3x4{Cols: mat4x4From(m.P1, m.P2, true, true)}
}

// Mat4x4 returns the homogeneous matrix of a normalized motor.
func (m Motor) Mat4x4() Mat4x4 {
	return Mat4x4{Cols: mat4x4From(m.P1, m.P2, true, false)}
}
