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

// estimateBits is the number of low mantissa bits dropped to model the
// 12-bit hardware estimate returned by RCPPS/RSQRTPS and FRECPE/FRSQRTE.
const estimateBits = 11

func estimate(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1<<estimateBits - 1))
}

func rcpNR1(a float32) float32 {
	// x1 = x0 (2 - a x0)
	x0 := estimate(1 / a)
	return x0 * (2 - a*x0)
}

func rsqrtNR1(a float32) float32 {
	// x1 = x0 (1.5 - 0.5 a x0^2)
	x0 := estimate(float32(1 / math.Sqrt(float64(a))))
	return x0 * (1.5 - 0.5*a*x0*x0)
}

// RcpNR1 returns a fast approximation of 1/v in every lane: a 12-bit
// reciprocal estimate refined by exactly one Newton-Raphson step. The result
// is never exact; relative error stays within a few ulp for normal inputs.
// Zero lanes produce NaN as on hardware, where the refinement step computes
// Inf * (2 - 0 * Inf).
func RcpNR1(v Vec4) Vec4 {
	return Vec4{rcpNR1(v[0]), rcpNR1(v[1]), rcpNR1(v[2]), rcpNR1(v[3])}
}

// RSqrtNR1 returns a fast approximation of 1/sqrt(v) in every lane using
// the same estimate-and-refine scheme as RcpNR1.
func RSqrtNR1(v Vec4) Vec4 {
	return Vec4{rsqrtNR1(v[0]), rsqrtNR1(v[1]), rsqrtNR1(v[2]), rsqrtNR1(v[3])}
}

// SqrtNR1 returns a fast approximation of sqrt(v) computed as v * RSqrtNR1(v).
// Zero lanes produce NaN.
func SqrtNR1(v Vec4) Vec4 {
	return v.Mul(RSqrtNR1(v))
}

// Rcp1 is the scalar form of RcpNR1.
func Rcp1(a float32) float32 {
	return rcpNR1(a)
}

// RSqrt1 is the scalar form of RSqrtNR1.
func RSqrt1(a float32) float32 {
	return rsqrtNR1(a)
}
