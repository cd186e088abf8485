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
	"github.com/ajroetker/go-klein/kln"
	"github.com/ajroetker/go-klein/kln/kernel"
	"github.com/ajroetker/go-klein/kln/simd"
)

func flatten(m *kernel.Mat4) (f [16]float32) {
	for j := range 4 {
		for i := range 4 {
			f[4*j+i] = m[j][i]
		}
	}
	return
}

// PointMatrix returns the column-major matrix m applies to points, in
// (w, x, y, z) lane order.
func PointMatrix(m kln.Motor) [16]float32 {
	mat := kernel.Sw312(true, m.P1, m.P2)
	return flatten(&mat)
}

// PlaneMatrix returns the column-major matrix m applies to planes, in
// (d, a, b, c) lane order.
func PlaneMatrix(m kln.Motor) [16]float32 {
	mat := kernel.Sw012(true, m.P1, m.P2)
	return flatten(&mat)
}

// TransformPoints writes m applied to each point of src into dst. dst may
// be src. It panics if dst is shorter than src.
func TransformPoints(m kln.Motor, dst, src Points) {
	(*Pool)(nil).TransformPoints(m, dst, src)
}

// TransformPlanes writes m applied to each plane of src into dst. dst may
// be src. It panics if dst is shorter than src.
func TransformPlanes(m kln.Motor, dst, src Planes) {
	(*Pool)(nil).TransformPlanes(m, dst, src)
}

// SquaredDistances writes the squared Euclidean distance between a[i] and
// b[i] into dst[i]. Both sets must be normalized.
func SquaredDistances(dst []float32, a, b Points) {
	n := a.Len()
	_ = dst[:n]
	_ = b.X[:n]
	if !simd.Accelerated() {
		for i := range n {
			dx, dy, dz := a.X[i]-b.X[i], a.Y[i]-b.Y[i], a.Z[i]-b.Z[i]
			dst[i] = dx*dx + dy*dy + dz*dz
		}
		return
	}
	BaseSquaredDistances(a.X, a.Y, a.Z, b.X, b.Y, b.Z, dst[:n])
}

// PlaneDistances writes each point of a joined with p into dst: the signed
// distance for a normalized plane and normalized points.
func PlaneDistances(dst []float32, p kln.Plane, a Points) {
	n := a.Len()
	_ = dst[:n]
	if !simd.Accelerated() {
		for i := range n {
			dst[i] = a.At(i).JoinPlane(p).P
		}
		return
	}
	BasePlaneDistances(p.X(), p.Y(), p.Z(), p.D(), a.X, a.Y, a.Z, a.W, dst[:n])
}

func transformPointsScalar(m kln.Motor, dst, src Points) {
	for i := range src.Len() {
		dst.Set(i, m.ApplyPoint(src.At(i)))
	}
}

func transformPlanesScalar(m kln.Motor, dst, src Planes) {
	for i := range src.Len() {
		dst.Set(i, m.ApplyPlane(src.At(i)))
	}
}
