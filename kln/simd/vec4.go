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

package simd

import "math"

// Vec4 is one partition: four float32 lanes holding the coefficients of four
// basis blades. It plays the role of a 128-bit SIMD register and every
// operation on it is a pure function of its operands.
//
// Lane masks used by Flip and Keep name lane i by bit i, so 0b0001 is lane 0
// and 0b1000 is lane 3.
type Vec4 [4]float32

const signBit = 0x80000000

// Set returns the vector (l0, l1, l2, l3).
func Set(l0, l1, l2, l3 float32) Vec4 {
	return Vec4{l0, l1, l2, l3}
}

// Splat returns a vector with x in every lane.
func Splat(x float32) Vec4 {
	return Vec4{x, x, x, x}
}

// Load reads four lanes from s. It panics if len(s) < 4.
func Load(s []float32) Vec4 {
	_ = s[3]
	return Vec4{s[0], s[1], s[2], s[3]}
}

// Store writes the four lanes of v to s. It panics if len(s) < 4.
func (v Vec4) Store(s []float32) {
	_ = s[3]
	s[0], s[1], s[2], s[3] = v[0], v[1], v[2], v[3]
}

// Add returns v + o lane-wise.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub returns v - o lane-wise.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// Mul returns v * o lane-wise.
func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

// Div returns v / o lane-wise with IEEE semantics for zero divisors.
func (v Vec4) Div(o Vec4) Vec4 {
	return Vec4{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]}
}

// Scale multiplies every lane by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Neg flips the sign bit of every lane.
func (v Vec4) Neg() Vec4 {
	return v.Flip(0b1111)
}

// Flip flips the sign bit of the lanes selected by mask. This is the
// equivalent of XOR-ing with a sign mask: zeros become negative zeros and
// NaNs keep their payload.
func (v Vec4) Flip(mask uint8) Vec4 {
	for i := range 4 {
		if mask&(1<<i) != 0 {
			v[i] = math.Float32frombits(math.Float32bits(v[i]) ^ signBit)
		}
	}
	return v
}

// Keep zeroes every lane not selected by mask.
func (v Vec4) Keep(mask uint8) Vec4 {
	for i := range 4 {
		if mask&(1<<i) == 0 {
			v[i] = 0
		}
	}
	return v
}

// Swizzle returns (v[i0], v[i1], v[i2], v[i3]). Indices may repeat; lanes
// whose index is repeated are typically masked afterwards with Keep.
func (v Vec4) Swizzle(i0, i1, i2, i3 int) Vec4 {
	return Vec4{v[i0], v[i1], v[i2], v[i3]}
}

// Broadcast copies lane i into every lane.
func (v Vec4) Broadcast(i int) Vec4 {
	return Splat(v[i])
}

// First returns lane 0.
func (v Vec4) First() float32 {
	return v[0]
}

// WithLane returns v with lane i replaced by x.
func (v Vec4) WithLane(i int, x float32) Vec4 {
	v[i] = x
	return v
}

// HiDp returns the dot product of lanes 1..3 of a and b in lane 0. Lanes
// 1..3 of the result are zero.
func HiDp(a, b Vec4) Vec4 {
	return Vec4{a[1]*b[1] + a[2]*b[2] + a[3]*b[3], 0, 0, 0}
}

// HiDpBc is HiDp with the result broadcast to every lane.
func HiDpBc(a, b Vec4) Vec4 {
	return Splat(a[1]*b[1] + a[2]*b[2] + a[3]*b[3])
}

// Dp returns the full four-lane dot product of a and b in lane 0. Lanes
// 1..3 of the result are zero.
func Dp(a, b Vec4) Vec4 {
	return Vec4{a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3], 0, 0, 0}
}

// DpBc is Dp with the result broadcast to every lane.
func DpBc(a, b Vec4) Vec4 {
	return Splat(a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3])
}

// ApproxEqual reports whether every lane of a differs from the
// corresponding lane of b by strictly less than eps. An eps of 0 never
// reports true; use == for exact comparison.
func ApproxEqual(a, b Vec4, eps float32) bool {
	for i := range 4 {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if !(d < eps) {
			return false
		}
	}
	return true
}
