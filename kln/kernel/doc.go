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

// Package kernel holds the bilinear operators of 3D projective geometric
// algebra, one function per pair of partitions:
//
//	P0 = (e0, e1, e2, e3)         planes
//	P1 = (1, e23, e31, e12)       rotors, Euclidean lines
//	P2 = (e0123, e01, e02, e03)   ideal lines, translators
//	P3 = (e123, e032, e013, e021) points
//
// GpIJ, ExtIJ and DotIJ take partition i of the left operand and partition
// j of the right one and return the partitions of the geometric, exterior
// and inner product that can be nonzero. GpOut, ExtOut and DotOut record
// those output partitions, so a caller holding a runtime mask can combine
// them with ProductMask.
//
// The Sw* functions prepare sandwich products g x ~g (or p x p for
// reflections) as matrices, so that transforming many elements by the same
// g costs a few broadcast multiply-adds each.
//
// Kernels are written in terms of Broadcast, Swizzle, Flip and Keep so each
// maps onto shuffles and sign-mask xors of a 128-bit register.
package kernel
