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

// Ext00 computes the exterior product of a P0 (plane) partition with a P0 (plane) partition.
// Used for plane ^ plane, the meet of two planes.
//
//	p1.1   = 0
//	p1.e23 = a2 b3 - a3 b2
//	p1.e31 = -a1 b3 + a3 b1
//	p1.e12 = a1 b2 - a2 b1
//	p2.e0123 = 0
//	p2.e01   = a0 b1 - a1 b0
//	p2.e02   = a0 b2 - a2 b0
//	p2.e03   = a0 b3 - a3 b0
func Ext00(a, b simd.Vec4) (p1, p2 simd.Vec4) {
	p1 = a.Broadcast(1).Mul(b.Swizzle(0, 1, 3, 2)).Flip(0b0100).Keep(0b1100)
	p1 = p1.Add(a.Broadcast(2).Mul(b.Swizzle(0, 3, 2, 1)).Flip(0b1000).Keep(0b1010))
	p1 = p1.Add(a.Broadcast(3).Mul(b.Swizzle(0, 2, 1, 3)).Flip(0b0010).Keep(0b0110))
	p2 = a.Broadcast(0).Mul(b).Keep(0b1110)
	p2 = p2.Add(a.Broadcast(1).Mul(b.Swizzle(0, 0, 2, 3)).Flip(0b0010).Keep(0b0010))
	p2 = p2.Add(a.Broadcast(2).Mul(b.Swizzle(0, 1, 0, 3)).Flip(0b0100).Keep(0b0100))
	p2 = p2.Add(a.Broadcast(3).Mul(b.Swizzle(0, 1, 2, 0)).Flip(0b1000).Keep(0b1000))
	return
}

// Ext01 computes the exterior product of a P0 (plane) partition with a P1 (scalar, e23, e31, e12) partition.
// Used for plane ^ branch.
//
//	p0.e0 = a0 b0
//	p0.e1 = a1 b0
//	p0.e2 = a2 b0
//	p0.e3 = a3 b0
//	p3.e123 = a1 b1 + a2 b2 + a3 b3
//	p3.e032 = -a0 b1
//	p3.e013 = -a0 b2
//	p3.e021 = -a0 b3
func Ext01(a, b simd.Vec4) (p0, p3 simd.Vec4) {
	p0 = a.Mul(b.Broadcast(0))
	p3 = a.Swizzle(1, 0, 2, 3).Mul(b.Broadcast(1)).Flip(0b0010).Keep(0b0011)
	p3 = p3.Add(a.Swizzle(2, 1, 0, 3).Mul(b.Broadcast(2)).Flip(0b0100).Keep(0b0101))
	p3 = p3.Add(a.Swizzle(3, 1, 2, 0).Mul(b.Broadcast(3)).Flip(0b1000).Keep(0b1001))
	return
}

// Ext02 computes the exterior product of a P0 (plane) partition with a P2 (e0123, e01, e02, e03) partition.
// Used for plane ^ ideal line.
//
//	p3.e123 = 0
//	p3.e032 = a2 b3 - a3 b2
//	p3.e013 = -a1 b3 + a3 b1
//	p3.e021 = a1 b2 - a2 b1
func Ext02(a, b simd.Vec4) (p3 simd.Vec4) {
	p3 = a.Broadcast(1).Mul(b.Swizzle(0, 1, 3, 2)).Flip(0b0100).Keep(0b1100)
	p3 = p3.Add(a.Broadcast(2).Mul(b.Swizzle(0, 3, 2, 1)).Flip(0b1000).Keep(0b1010))
	p3 = p3.Add(a.Broadcast(3).Mul(b.Swizzle(0, 2, 1, 3)).Flip(0b0010).Keep(0b0110))
	return
}

// Ext03 computes the exterior product of a P0 (plane) partition with a P3 (point) partition.
// Used for plane ^ point.
//
//	p2.e0123 = a0 b0 + a1 b1 + a2 b2 + a3 b3
//	p2.e01   = 0
//	p2.e02   = 0
//	p2.e03   = 0
func Ext03(a, b simd.Vec4) (p2 simd.Vec4) {
	p2 = a.Broadcast(0).Mul(b).Keep(0b0001)
	p2 = p2.Add(a.Broadcast(1).Mul(b.Swizzle(1, 1, 2, 3)).Keep(0b0001))
	p2 = p2.Add(a.Broadcast(2).Mul(b.Swizzle(2, 1, 2, 3)).Keep(0b0001))
	p2 = p2.Add(a.Broadcast(3).Mul(b.Swizzle(3, 1, 2, 3)).Keep(0b0001))
	return
}

// Ext10 computes the exterior product of a P1 (scalar, e23, e31, e12) partition with a P0 (plane) partition.
// Used for branch ^ plane.
//
//	p0.e0 = a0 b0
//	p0.e1 = a0 b1
//	p0.e2 = a0 b2
//	p0.e3 = a0 b3
//	p3.e123 = a1 b1 + a2 b2 + a3 b3
//	p3.e032 = -a1 b0
//	p3.e013 = -a2 b0
//	p3.e021 = -a3 b0
func Ext10(a, b simd.Vec4) (p0, p3 simd.Vec4) {
	p0 = a.Broadcast(0).Mul(b)
	p3 = a.Broadcast(1).Mul(b.Swizzle(1, 0, 2, 3)).Flip(0b0010).Keep(0b0011)
	p3 = p3.Add(a.Broadcast(2).Mul(b.Swizzle(2, 1, 0, 3)).Flip(0b0100).Keep(0b0101))
	p3 = p3.Add(a.Broadcast(3).Mul(b.Swizzle(3, 1, 2, 0)).Flip(0b1000).Keep(0b1001))
	return
}

// Ext11 computes the exterior product of a P1 (scalar, e23, e31, e12) partition with a P1 (scalar, e23, e31, e12) partition.
//
//	p1.1   = a0 b0
//	p1.e23 = a0 b1 + a1 b0
//	p1.e31 = a0 b2 + a2 b0
//	p1.e12 = a0 b3 + a3 b0
func Ext11(a, b simd.Vec4) (p1 simd.Vec4) {
	p1 = a.Broadcast(0).Mul(b)
	p1 = p1.Add(a.Broadcast(1).Mul(b.Swizzle(0, 0, 2, 3)).Keep(0b0010))
	p1 = p1.Add(a.Broadcast(2).Mul(b.Swizzle(0, 1, 0, 3)).Keep(0b0100))
	p1 = p1.Add(a.Broadcast(3).Mul(b.Swizzle(0, 1, 2, 0)).Keep(0b1000))
	return
}

// Ext12 computes the exterior product of a P1 (scalar, e23, e31, e12) partition with a P2 (e0123, e01, e02, e03) partition.
//
//	p2.e0123 = a0 b0 + a1 b1 + a2 b2 + a3 b3
//	p2.e01   = a0 b1
//	p2.e02   = a0 b2
//	p2.e03   = a0 b3
func Ext12(a, b simd.Vec4) (p2 simd.Vec4) {
	p2 = a.Broadcast(0).Mul(b)
	p2 = p2.Add(a.Broadcast(1).Mul(b.Swizzle(1, 1, 2, 3)).Keep(0b0001))
	p2 = p2.Add(a.Broadcast(2).Mul(b.Swizzle(2, 1, 2, 3)).Keep(0b0001))
	p2 = p2.Add(a.Broadcast(3).Mul(b.Swizzle(3, 1, 2, 3)).Keep(0b0001))
	return
}

// Ext13 computes the exterior product of a P1 (scalar, e23, e31, e12) partition with a P3 (point) partition.
//
//	p3.e123 = a0 b0
//	p3.e032 = a0 b1
//	p3.e013 = a0 b2
//	p3.e021 = a0 b3
func Ext13(a, b simd.Vec4) (p3 simd.Vec4) {
	p3 = a.Broadcast(0).Mul(b)
	return
}

// Ext20 computes the exterior product of a P2 (e0123, e01, e02, e03) partition with a P0 (plane) partition.
// Used for ideal line ^ plane.
//
//	p3.e123 = 0
//	p3.e032 = -a2 b3 + a3 b2
//	p3.e013 = a1 b3 - a3 b1
//	p3.e021 = -a1 b2 + a2 b1
func Ext20(a, b simd.Vec4) (p3 simd.Vec4) {
	p3 = a.Broadcast(1).Mul(b.Swizzle(0, 1, 3, 2)).Flip(0b1000).Keep(0b1100)
	p3 = p3.Add(a.Broadcast(2).Mul(b.Swizzle(0, 3, 2, 1)).Flip(0b0010).Keep(0b1010))
	p3 = p3.Add(a.Broadcast(3).Mul(b.Swizzle(0, 2, 1, 3)).Flip(0b0100).Keep(0b0110))
	return
}

// Ext21 computes the exterior product of a P2 (e0123, e01, e02, e03) partition with a P1 (scalar, e23, e31, e12) partition.
//
//	p2.e0123 = a0 b0 + a1 b1 + a2 b2 + a3 b3
//	p2.e01   = a1 b0
//	p2.e02   = a2 b0
//	p2.e03   = a3 b0
func Ext21(a, b simd.Vec4) (p2 simd.Vec4) {
	p2 = a.Mul(b.Broadcast(0))
	p2 = p2.Add(a.Swizzle(1, 1, 2, 3).Mul(b.Broadcast(1)).Keep(0b0001))
	p2 = p2.Add(a.Swizzle(2, 1, 2, 3).Mul(b.Broadcast(2)).Keep(0b0001))
	p2 = p2.Add(a.Swizzle(3, 1, 2, 3).Mul(b.Broadcast(3)).Keep(0b0001))
	return
}

// Ext30 computes the exterior product of a P3 (point) partition with a P0 (plane) partition.
// Used for point ^ plane.
//
//	p2.e0123 = -a0 b0 - a1 b1 - a2 b2 - a3 b3
//	p2.e01   = 0
//	p2.e02   = 0
//	p2.e03   = 0
func Ext30(a, b simd.Vec4) (p2 simd.Vec4) {
	p2 = a.Broadcast(0).Mul(b).Flip(0b0001).Keep(0b0001)
	p2 = p2.Add(a.Broadcast(1).Mul(b.Swizzle(1, 1, 2, 3)).Flip(0b0001).Keep(0b0001))
	p2 = p2.Add(a.Broadcast(2).Mul(b.Swizzle(2, 1, 2, 3)).Flip(0b0001).Keep(0b0001))
	p2 = p2.Add(a.Broadcast(3).Mul(b.Swizzle(3, 1, 2, 3)).Flip(0b0001).Keep(0b0001))
	return
}

// Ext31 computes the exterior product of a P3 (point) partition with a P1 (scalar, e23, e31, e12) partition.
//
//	p3.e123 = a0 b0
//	p3.e032 = a1 b0
//	p3.e013 = a2 b0
//	p3.e021 = a3 b0
func Ext31(a, b simd.Vec4) (p3 simd.Vec4) {
	p3 = a.Mul(b.Broadcast(0))
	return
}
