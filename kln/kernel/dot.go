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

// Dot00 computes the symmetric inner product of a P0 (plane) partition with a P0 (plane) partition.
// Used for plane | plane, the cosine of the angle between unit planes.
//
//	p1.1   = a1 b1 + a2 b2 + a3 b3
//	p1.e23 = 0
//	p1.e31 = 0
//	p1.e12 = 0
func Dot00(a, b simd.Vec4) (p1 simd.Vec4) {
	p1 = a.Broadcast(1).Mul(b.Swizzle(1, 1, 2, 3)).Keep(0b0001)
	p1 = p1.Add(a.Broadcast(2).Mul(b.Swizzle(2, 1, 2, 3)).Keep(0b0001))
	p1 = p1.Add(a.Broadcast(3).Mul(b.Swizzle(3, 1, 2, 3)).Keep(0b0001))
	return
}

// Dot01 computes the symmetric inner product of a P0 (plane) partition with a P1 (scalar, e23, e31, e12) partition.
//
//	p0.e0 = a0 b0
//	p0.e1 = a1 b0 - a2 b3 + a3 b2
//	p0.e2 = a1 b3 + a2 b0 - a3 b1
//	p0.e3 = -a1 b2 + a2 b1 + a3 b0
func Dot01(a, b simd.Vec4) (p0 simd.Vec4) {
	p0 = a.Mul(b.Broadcast(0))
	p0 = p0.Add(a.Swizzle(0, 1, 3, 2).Mul(b.Broadcast(1)).Flip(0b0100).Keep(0b1100))
	p0 = p0.Add(a.Swizzle(0, 3, 2, 1).Mul(b.Broadcast(2)).Flip(0b1000).Keep(0b1010))
	p0 = p0.Add(a.Swizzle(0, 2, 1, 3).Mul(b.Broadcast(3)).Flip(0b0010).Keep(0b0110))
	return
}

// Dot02 computes the symmetric inner product of a P0 (plane) partition with a P2 (e0123, e01, e02, e03) partition.
//
//	p0.e0 = -a1 b1 - a2 b2 - a3 b3
//	p0.e1 = 0
//	p0.e2 = 0
//	p0.e3 = 0
//	p3.e123 = 0
//	p3.e032 = a1 b0
//	p3.e013 = a2 b0
//	p3.e021 = a3 b0
func Dot02(a, b simd.Vec4) (p0, p3 simd.Vec4) {
	p0 = a.Broadcast(1).Mul(b.Swizzle(1, 1, 2, 3)).Flip(0b0001).Keep(0b0001)
	p0 = p0.Add(a.Broadcast(2).Mul(b.Swizzle(2, 1, 2, 3)).Flip(0b0001).Keep(0b0001))
	p0 = p0.Add(a.Broadcast(3).Mul(b.Swizzle(3, 1, 2, 3)).Flip(0b0001).Keep(0b0001))
	p3 = a.Mul(b.Broadcast(0)).Keep(0b1110)
	return
}

// Dot03 computes the symmetric inner product of a P0 (plane) partition with a P3 (point) partition.
// Used for plane | point, the line through the point orthogonal to the plane.
//
//	p1.1   = 0
//	p1.e23 = a1 b0
//	p1.e31 = a2 b0
//	p1.e12 = a3 b0
//	p2.e0123 = 0
//	p2.e01   = -a2 b3 + a3 b2
//	p2.e02   = a1 b3 - a3 b1
//	p2.e03   = -a1 b2 + a2 b1
func Dot03(a, b simd.Vec4) (p1, p2 simd.Vec4) {
	p1 = a.Mul(b.Broadcast(0)).Keep(0b1110)
	p2 = a.Broadcast(1).Mul(b.Swizzle(0, 1, 3, 2)).Flip(0b1000).Keep(0b1100)
	p2 = p2.Add(a.Broadcast(2).Mul(b.Swizzle(0, 3, 2, 1)).Flip(0b0010).Keep(0b1010))
	p2 = p2.Add(a.Broadcast(3).Mul(b.Swizzle(0, 2, 1, 3)).Flip(0b0100).Keep(0b0110))
	return
}

// Dot10 computes the symmetric inner product of a P1 (scalar, e23, e31, e12) partition with a P0 (plane) partition.
//
//	p0.e0 = a0 b0
//	p0.e1 = a0 b1 - a2 b3 + a3 b2
//	p0.e2 = a0 b2 + a1 b3 - a3 b1
//	p0.e3 = a0 b3 - a1 b2 + a2 b1
func Dot10(a, b simd.Vec4) (p0 simd.Vec4) {
	p0 = a.Broadcast(0).Mul(b)
	p0 = p0.Add(a.Broadcast(1).Mul(b.Swizzle(0, 1, 3, 2)).Flip(0b1000).Keep(0b1100))
	p0 = p0.Add(a.Broadcast(2).Mul(b.Swizzle(0, 3, 2, 1)).Flip(0b0010).Keep(0b1010))
	p0 = p0.Add(a.Broadcast(3).Mul(b.Swizzle(0, 2, 1, 3)).Flip(0b0100).Keep(0b0110))
	return
}

// Dot11 computes the symmetric inner product of a P1 (scalar, e23, e31, e12) partition with a P1 (scalar, e23, e31, e12) partition.
// Used for line | line.
//
//	p1.1   = a0 b0 - a1 b1 - a2 b2 - a3 b3
//	p1.e23 = a0 b1 + a1 b0
//	p1.e31 = a0 b2 + a2 b0
//	p1.e12 = a0 b3 + a3 b0
func Dot11(a, b simd.Vec4) (p1 simd.Vec4) {
	p1 = a.Broadcast(0).Mul(b)
	p1 = p1.Add(a.Broadcast(1).Mul(b.Swizzle(1, 0, 2, 3)).Flip(0b0001).Keep(0b0011))
	p1 = p1.Add(a.Broadcast(2).Mul(b.Swizzle(2, 1, 0, 3)).Flip(0b0001).Keep(0b0101))
	p1 = p1.Add(a.Broadcast(3).Mul(b.Swizzle(3, 1, 2, 0)).Flip(0b0001).Keep(0b1001))
	return
}

// Dot12 computes the symmetric inner product of a P1 (scalar, e23, e31, e12) partition with a P2 (e0123, e01, e02, e03) partition.
//
//	p2.e0123 = a0 b0
//	p2.e01   = a0 b1 - a1 b0
//	p2.e02   = a0 b2 - a2 b0
//	p2.e03   = a0 b3 - a3 b0
func Dot12(a, b simd.Vec4) (p2 simd.Vec4) {
	p2 = a.Broadcast(0).Mul(b)
	p2 = p2.Add(a.Broadcast(1).Mul(b.Swizzle(0, 0, 2, 3)).Flip(0b0010).Keep(0b0010))
	p2 = p2.Add(a.Broadcast(2).Mul(b.Swizzle(0, 1, 0, 3)).Flip(0b0100).Keep(0b0100))
	p2 = p2.Add(a.Broadcast(3).Mul(b.Swizzle(0, 1, 2, 0)).Flip(0b1000).Keep(0b1000))
	return
}

// Dot13 computes the symmetric inner product of a P1 (scalar, e23, e31, e12) partition with a P3 (point) partition.
//
//	p0.e0 = a1 b1 + a2 b2 + a3 b3
//	p0.e1 = -a1 b0
//	p0.e2 = -a2 b0
//	p0.e3 = -a3 b0
//	p3.e123 = a0 b0
//	p3.e032 = a0 b1
//	p3.e013 = a0 b2
//	p3.e021 = a0 b3
func Dot13(a, b simd.Vec4) (p0, p3 simd.Vec4) {
	p0 = a.Broadcast(1).Mul(b.Swizzle(1, 0, 2, 3)).Flip(0b0010).Keep(0b0011)
	p0 = p0.Add(a.Broadcast(2).Mul(b.Swizzle(2, 1, 0, 3)).Flip(0b0100).Keep(0b0101))
	p0 = p0.Add(a.Broadcast(3).Mul(b.Swizzle(3, 1, 2, 0)).Flip(0b1000).Keep(0b1001))
	p3 = a.Broadcast(0).Mul(b)
	return
}

// Dot20 computes the symmetric inner product of a P2 (e0123, e01, e02, e03) partition with a P0 (plane) partition.
//
//	p0.e0 = a1 b1 + a2 b2 + a3 b3
//	p0.e1 = 0
//	p0.e2 = 0
//	p0.e3 = 0
//	p3.e123 = 0
//	p3.e032 = -a0 b1
//	p3.e013 = -a0 b2
//	p3.e021 = -a0 b3
func Dot20(a, b simd.Vec4) (p0, p3 simd.Vec4) {
	p0 = a.Broadcast(1).Mul(b.Swizzle(1, 1, 2, 3)).Keep(0b0001)
	p0 = p0.Add(a.Broadcast(2).Mul(b.Swizzle(2, 1, 2, 3)).Keep(0b0001))
	p0 = p0.Add(a.Broadcast(3).Mul(b.Swizzle(3, 1, 2, 3)).Keep(0b0001))
	p3 = a.Broadcast(0).Mul(b).Flip(0b1110).Keep(0b1110)
	return
}

// Dot21 computes the symmetric inner product of a P2 (e0123, e01, e02, e03) partition with a P1 (scalar, e23, e31, e12) partition.
//
//	p2.e0123 = a0 b0
//	p2.e01   = -a0 b1 + a1 b0
//	p2.e02   = -a0 b2 + a2 b0
//	p2.e03   = -a0 b3 + a3 b0
func Dot21(a, b simd.Vec4) (p2 simd.Vec4) {
	p2 = a.Broadcast(0).Mul(b).Flip(0b1110)
	p2 = p2.Add(a.Broadcast(1).Mul(b.Swizzle(0, 0, 2, 3)).Keep(0b0010))
	p2 = p2.Add(a.Broadcast(2).Mul(b.Swizzle(0, 1, 0, 3)).Keep(0b0100))
	p2 = p2.Add(a.Broadcast(3).Mul(b.Swizzle(0, 1, 2, 0)).Keep(0b1000))
	return
}

// Dot23 computes the symmetric inner product of a P2 (e0123, e01, e02, e03) partition with a P3 (point) partition.
//
//	p0.e0 = -a0 b0
//	p0.e1 = 0
//	p0.e2 = 0
//	p0.e3 = 0
func Dot23(a, b simd.Vec4) (p0 simd.Vec4) {
	p0 = a.Broadcast(0).Mul(b).Flip(0b0001).Keep(0b0001)
	return
}

// Dot30 computes the symmetric inner product of a P3 (point) partition with a P0 (plane) partition.
// Used for point | plane.
//
//	p1.1   = 0
//	p1.e23 = a0 b1
//	p1.e31 = a0 b2
//	p1.e12 = a0 b3
//	p2.e0123 = 0
//	p2.e01   = a2 b3 - a3 b2
//	p2.e02   = -a1 b3 + a3 b1
//	p2.e03   = a1 b2 - a2 b1
func Dot30(a, b simd.Vec4) (p1, p2 simd.Vec4) {
	p1 = a.Broadcast(0).Mul(b).Keep(0b1110)
	p2 = a.Broadcast(1).Mul(b.Swizzle(0, 1, 3, 2)).Flip(0b0100).Keep(0b1100)
	p2 = p2.Add(a.Broadcast(2).Mul(b.Swizzle(0, 3, 2, 1)).Flip(0b1000).Keep(0b1010))
	p2 = p2.Add(a.Broadcast(3).Mul(b.Swizzle(0, 2, 1, 3)).Flip(0b0010).Keep(0b0110))
	return
}

// Dot31 computes the symmetric inner product of a P3 (point) partition with a P1 (scalar, e23, e31, e12) partition.
//
//	p0.e0 = a1 b1 + a2 b2 + a3 b3
//	p0.e1 = -a0 b1
//	p0.e2 = -a0 b2
//	p0.e3 = -a0 b3
//	p3.e123 = a0 b0
//	p3.e032 = a1 b0
//	p3.e013 = a2 b0
//	p3.e021 = a3 b0
func Dot31(a, b simd.Vec4) (p0, p3 simd.Vec4) {
	p0 = a.Swizzle(1, 0, 2, 3).Mul(b.Broadcast(1)).Flip(0b0010).Keep(0b0011)
	p0 = p0.Add(a.Swizzle(2, 1, 0, 3).Mul(b.Broadcast(2)).Flip(0b0100).Keep(0b0101))
	p0 = p0.Add(a.Swizzle(3, 1, 2, 0).Mul(b.Broadcast(3)).Flip(0b1000).Keep(0b1001))
	p3 = a.Mul(b.Broadcast(0))
	return
}

// Dot32 computes the symmetric inner product of a P3 (point) partition with a P2 (e0123, e01, e02, e03) partition.
//
//	p0.e0 = a0 b0
//	p0.e1 = 0
//	p0.e2 = 0
//	p0.e3 = 0
func Dot32(a, b simd.Vec4) (p0 simd.Vec4) {
	p0 = a.Broadcast(0).Mul(b).Keep(0b0001)
	return
}

// Dot33 computes the symmetric inner product of a P3 (point) partition with a P3 (point) partition.
// Used for point | point.
//
//	p1.1   = -a0 b0
//	p1.e23 = 0
//	p1.e31 = 0
//	p1.e12 = 0
func Dot33(a, b simd.Vec4) (p1 simd.Vec4) {
	p1 = a.Broadcast(0).Mul(b).Flip(0b0001).Keep(0b0001)
	return
}
