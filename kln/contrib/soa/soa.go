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

package soa

import (
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-klein/kln"
	"github.com/ajroetker/go-klein/kln/simd"
)

// Points holds homogeneous points x e032 + y e013 + z e021 + w e123 as
// parallel slices of equal length.
type Points struct {
	X, Y, Z, W []float32
}

// NewPoints allocates n points, all zero.
func NewPoints(n int) Points {
	buf := make([]float32, 4*n)
	return Points{X: buf[:n:n], Y: buf[n : 2*n : 2*n], Z: buf[2*n : 3*n : 3*n], W: buf[3*n:]}
}

// PointsOf copies src into a new Points.
func PointsOf(src []kln.Point) Points {
	p := NewPoints(len(src))
	for i, a := range src {
		p.Set(i, a)
	}
	return p
}

// Len returns the number of points.
func (p Points) Len() int { return len(p.X) }

// At returns point i.
func (p Points) At(i int) kln.Point {
	return kln.Point{P3: simd.Set(p.W[i], p.X[i], p.Y[i], p.Z[i])}
}

// Set stores a at index i.
func (p Points) Set(i int, a kln.Point) {
	p.W[i], p.X[i], p.Y[i], p.Z[i] = a.P3[0], a.P3[1], a.P3[2], a.P3[3]
}

// Slice returns the points in [start, end).
func (p Points) Slice(start, end int) Points {
	return Points{X: p.X[start:end], Y: p.Y[start:end], Z: p.Z[start:end], W: p.W[start:end]}
}

// Normalize divides every point by its weight, leaving W = 1. Points at
// infinity have no finite normalization and produce Inf or NaN.
func (p Points) Normalize() {
	vek32.Div_Inplace(p.X, p.W)
	vek32.Div_Inplace(p.Y, p.W)
	vek32.Div_Inplace(p.Z, p.W)
	BaseFill(p.W, 1)
}

// Planes holds planes a e1 + b e2 + c e3 + d e0, the plane
// a x + b y + c z + d = 0, as parallel slices of equal length.
type Planes struct {
	A, B, C, D []float32
}

// NewPlanes allocates n planes, all zero.
func NewPlanes(n int) Planes {
	buf := make([]float32, 4*n)
	return Planes{A: buf[:n:n], B: buf[n : 2*n : 2*n], C: buf[2*n : 3*n : 3*n], D: buf[3*n:]}
}

// PlanesOf copies src into a new Planes.
func PlanesOf(src []kln.Plane) Planes {
	p := NewPlanes(len(src))
	for i, q := range src {
		p.Set(i, q)
	}
	return p
}

// Len returns the number of planes.
func (p Planes) Len() int { return len(p.A) }

// At returns plane i.
func (p Planes) At(i int) kln.Plane {
	return kln.Plane{P0: simd.Set(p.D[i], p.A[i], p.B[i], p.C[i])}
}

// Set stores q at index i.
func (p Planes) Set(i int, q kln.Plane) {
	p.D[i], p.A[i], p.B[i], p.C[i] = q.P0[0], q.P0[1], q.P0[2], q.P0[3]
}

// Slice returns the planes in [start, end).
func (p Planes) Slice(start, end int) Planes {
	return Planes{A: p.A[start:end], B: p.B[start:end], C: p.C[start:end], D: p.D[start:end]}
}

// Normalize scales every plane to a unit normal.
func (p Planes) Normalize() {
	norm := vek32.Mul(p.A, p.A)
	vek32.Add_Inplace(norm, vek32.Mul(p.B, p.B))
	vek32.Add_Inplace(norm, vek32.Mul(p.C, p.C))
	vek32.Sqrt_Inplace(norm)
	vek32.Div_Inplace(p.A, norm)
	vek32.Div_Inplace(p.B, norm)
	vek32.Div_Inplace(p.C, norm)
	vek32.Div_Inplace(p.D, norm)
}
