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

// The presence tables give, for each pair of input partitions (row i for the
// left operand, column j for the right), the bitmask of output partitions
// the corresponding kernel can write. Bit k set means partition Pk. A zero
// entry means the product of the two partitions vanishes identically and no
// kernel exists for the pair.

// GpOut is the presence table of the geometric product kernels.
var GpOut = [4][4]uint8{
	{0b0110, 0b1001, 0b1001, 0b0110},
	{0b1001, 0b0010, 0b0100, 0b1001},
	{0b1001, 0b0100, 0b0000, 0b1001},
	{0b0110, 0b1001, 0b1001, 0b0110},
}

// ExtOut is the presence table of the exterior product kernels.
var ExtOut = [4][4]uint8{
	{0b0110, 0b1001, 0b1000, 0b0100},
	{0b1001, 0b0010, 0b0100, 0b1000},
	{0b1000, 0b0100, 0b0000, 0b0000},
	{0b0100, 0b1000, 0b0000, 0b0000},
}

// DotOut is the presence table of the symmetric inner product kernels.
var DotOut = [4][4]uint8{
	{0b0010, 0b0001, 0b1001, 0b0110},
	{0b0001, 0b0010, 0b0100, 0b1001},
	{0b1001, 0b0100, 0b0000, 0b0001},
	{0b0110, 0b1001, 0b0001, 0b0010},
}

// ProductMask returns the partition mask of a product whose operands carry
// the partitions in ma and mb, using one of the presence tables above.
func ProductMask(table *[4][4]uint8, ma, mb uint8) uint8 {
	var out uint8
	for i := range 4 {
		if ma&(1<<i) == 0 {
			continue
		}
		for j := range 4 {
			if mb&(1<<j) != 0 {
				out |= table[i][j]
			}
		}
	}
	return out
}

// GpDL multiplies the even element (p1, p2) by the dual number u + v e0123.
// Dual numbers commute with every even element, so the product is the same
// from either side:
//
//	p1' = u p1
//	p2' = u p2 + v (p1[0], -p1[1], -p1[2], -p1[3])
//
// since e0123 maps 1, e23, e31, e12 to e0123, -e01, -e02, -e03.
func GpDL(u, v float32, p1, p2 simd.Vec4) (simd.Vec4, simd.Vec4) {
	return p1.Scale(u), p2.Scale(u).Add(p1.Flip(0b1110).Scale(v))
}

// Reverse1 reverses a P1 partition: the bivector lanes change sign.
func Reverse1(p1 simd.Vec4) simd.Vec4 {
	return p1.Flip(0b1110)
}

// Reverse2 reverses a P2 partition: the ideal bivector lanes change sign and
// the pseudoscalar is unchanged.
func Reverse2(p2 simd.Vec4) simd.Vec4 {
	return p2.Flip(0b1110)
}

// Reverse3 reverses a P3 partition: every trivector changes sign.
func Reverse3(p3 simd.Vec4) simd.Vec4 {
	return p3.Neg()
}
