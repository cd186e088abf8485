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

// Package kln implements 3D projective geometric algebra, PGA(3,0,1), for
// rigid-body geometry: planes, lines, points, rotations, translations and
// screw motions as elements of one algebra.
//
// Every multivector is split into four partitions of four float32 lanes
// (see package kernel). Entity carries any subset of partitions behind a
// runtime mask and supports the full set of products. The named types
// Plane, Line, Branch, IdealLine, Point, Direction, Rotor, Translator, Motor
// and Dual store only the partitions they need and expose the operations
// that keep their kind:
//
//	a := kln.NewPoint(1, 0, 0)
//	r := kln.NewRotor(math.Pi/2, 0, 0, 1)
//	t := kln.NewTranslator(2, 0, 1, 0)
//	m := t.MulRotor(r)           // rotate, then translate
//	b := m.ApplyPoint(a)         // (0, 1, 0)
//	l := kln.Origin().Join(b)    // line through the origin and b
//
// # Conventions
//
// Planes are a e1 + b e2 + c e3 + d e0, the set ax + by + cz + d = 0. Points
// are normalized when the e123 coefficient is 1. The meet of two elements
// is the exterior product (^ in the literature), the join is the
// regressive product (&), and the inner product is Dot (|). Transforms act
// by conjugation g x ~g; products compose right to left, so m.Mul(n)
// applies n first.
//
// Normalization and inversion use reciprocal estimates refined by one
// Newton-Raphson step, accurate to about 1e-6 relative. Functions that
// document a normalized input do not check it.
//
// Batch methods such as Motor.ApplyPoints prepare the transform once and
// accept dst == src for in-place updates.
package kln
