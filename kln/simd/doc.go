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

// Package simd provides the 4-lane float32 vector that every partition of a
// multivector is stored in, with the handful of operations the geometric
// algebra kernels need: lane arithmetic, sign flips and lane selection by
// bitmask, swizzles, dot products and reciprocal estimates.
//
// Vec4 is a plain array so that it stays portable and comparable; the
// compiler keeps it in registers on amd64 and arm64. The reciprocal and
// reciprocal square root functions reproduce a 12-bit hardware estimate
// refined by one Newton-Raphson step, so results match on every platform.
//
// # Runtime detection
//
// CurrentLevel reports the instruction set detected with golang.org/x/sys/cpu.
// Setting KLN_NO_SIMD=1 forces LevelScalar, which callers such as
// contrib/soa use to select their portable paths:
//
//	if simd.Accelerated() {
//		// batch path
//	}
package simd
