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

import "github.com/ajroetker/go-highway/hwy"

// The matrices below are column-major with m[4*j+i] the entry in row i,
// column j, matching kernel.Mat4. Rows and columns are indexed in partition
// lane order: (w, x, y, z) for points and (d, a, b, c) for planes.

// mat4Row returns c0 v0 + c1 v1 + c2 v2 + c3 v3.
func mat4Row[T hwy.Floats](c0, c1, c2, c3, v0, v1, v2, v3 hwy.Vec[T]) hwy.Vec[T] {
	r := hwy.Mul(v0, c0)
	r = hwy.FMA(v1, c1, r)
	r = hwy.FMA(v2, c2, r)
	return hwy.FMA(v3, c3, r)
}

// BaseTransformPoints applies m to the points (srcX, srcY, srcZ, srcW) and
// writes the result to dst. Source and destination may be the same slices.
func BaseTransformPoints[T hwy.Floats](m *[16]T, srcX, srcY, srcZ, srcW, dstX, dstY, dstZ, dstW []T) {
	size := min(len(srcX), len(srcY), len(srcZ), len(srcW), len(dstX), len(dstY), len(dstZ), len(dstW))
	var c [16]hwy.Vec[T]
	for i := range m {
		c[i] = hwy.Set(m[i])
	}

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			w := hwy.Load(srcW[offset:])
			x := hwy.Load(srcX[offset:])
			y := hwy.Load(srcY[offset:])
			z := hwy.Load(srcZ[offset:])
			hwy.Store(mat4Row(c[0], c[4], c[8], c[12], w, x, y, z), dstW[offset:])
			hwy.Store(mat4Row(c[1], c[5], c[9], c[13], w, x, y, z), dstX[offset:])
			hwy.Store(mat4Row(c[2], c[6], c[10], c[14], w, x, y, z), dstY[offset:])
			hwy.Store(mat4Row(c[3], c[7], c[11], c[15], w, x, y, z), dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			w := hwy.MaskLoad(mask, srcW[offset:])
			x := hwy.MaskLoad(mask, srcX[offset:])
			y := hwy.MaskLoad(mask, srcY[offset:])
			z := hwy.MaskLoad(mask, srcZ[offset:])
			hwy.MaskStore(mask, mat4Row(c[0], c[4], c[8], c[12], w, x, y, z), dstW[offset:])
			hwy.MaskStore(mask, mat4Row(c[1], c[5], c[9], c[13], w, x, y, z), dstX[offset:])
			hwy.MaskStore(mask, mat4Row(c[2], c[6], c[10], c[14], w, x, y, z), dstY[offset:])
			hwy.MaskStore(mask, mat4Row(c[3], c[7], c[11], c[15], w, x, y, z), dstZ[offset:])
		},
	)
}

// BaseTransformPlanes applies m to the planes (srcA, srcB, srcC, srcD) and
// writes the result to dst. Source and destination may be the same slices.
func BaseTransformPlanes[T hwy.Floats](m *[16]T, srcA, srcB, srcC, srcD, dstA, dstB, dstC, dstD []T) {
	size := min(len(srcA), len(srcB), len(srcC), len(srcD), len(dstA), len(dstB), len(dstC), len(dstD))
	var c [16]hwy.Vec[T]
	for i := range m {
		c[i] = hwy.Set(m[i])
	}

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			d := hwy.Load(srcD[offset:])
			a := hwy.Load(srcA[offset:])
			b := hwy.Load(srcB[offset:])
			cc := hwy.Load(srcC[offset:])
			hwy.Store(mat4Row(c[0], c[4], c[8], c[12], d, a, b, cc), dstD[offset:])
			hwy.Store(mat4Row(c[1], c[5], c[9], c[13], d, a, b, cc), dstA[offset:])
			hwy.Store(mat4Row(c[2], c[6], c[10], c[14], d, a, b, cc), dstB[offset:])
			hwy.Store(mat4Row(c[3], c[7], c[11], c[15], d, a, b, cc), dstC[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			d := hwy.MaskLoad(mask, srcD[offset:])
			a := hwy.MaskLoad(mask, srcA[offset:])
			b := hwy.MaskLoad(mask, srcB[offset:])
			cc := hwy.MaskLoad(mask, srcC[offset:])
			hwy.MaskStore(mask, mat4Row(c[0], c[4], c[8], c[12], d, a, b, cc), dstD[offset:])
			hwy.MaskStore(mask, mat4Row(c[1], c[5], c[9], c[13], d, a, b, cc), dstA[offset:])
			hwy.MaskStore(mask, mat4Row(c[2], c[6], c[10], c[14], d, a, b, cc), dstB[offset:])
			hwy.MaskStore(mask, mat4Row(c[3], c[7], c[11], c[15], d, a, b, cc), dstC[offset:])
		},
	)
}

// BaseSquaredDistances writes |a_i - b_i|² to dst for normalized points
// given by their Euclidean coordinates.
func BaseSquaredDistances[T hwy.Floats](ax, ay, az, bx, by, bz, dst []T) {
	size := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz), len(dst))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			dx := hwy.Sub(hwy.Load(ax[offset:]), hwy.Load(bx[offset:]))
			dy := hwy.Sub(hwy.Load(ay[offset:]), hwy.Load(by[offset:]))
			dz := hwy.Sub(hwy.Load(az[offset:]), hwy.Load(bz[offset:]))
			r := hwy.Mul(dx, dx)
			r = hwy.FMA(dy, dy, r)
			r = hwy.FMA(dz, dz, r)
			hwy.Store(r, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			dx := hwy.Sub(hwy.MaskLoad(mask, ax[offset:]), hwy.MaskLoad(mask, bx[offset:]))
			dy := hwy.Sub(hwy.MaskLoad(mask, ay[offset:]), hwy.MaskLoad(mask, by[offset:]))
			dz := hwy.Sub(hwy.MaskLoad(mask, az[offset:]), hwy.MaskLoad(mask, bz[offset:]))
			r := hwy.Mul(dx, dx)
			r = hwy.FMA(dy, dy, r)
			r = hwy.FMA(dz, dz, r)
			hwy.MaskStore(mask, r, dst[offset:])
		},
	)
}

// BasePlaneDistances writes a x + b y + c z + d w to dst for each point.
// For a unit plane and normalized points this is the signed distance.
func BasePlaneDistances[T hwy.Floats](a, b, c, d T, x, y, z, w, dst []T) {
	size := min(len(x), len(y), len(z), len(w), len(dst))
	va, vb, vc, vd := hwy.Set(a), hwy.Set(b), hwy.Set(c), hwy.Set(d)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			r := mat4Row(va, vb, vc, vd,
				hwy.Load(x[offset:]), hwy.Load(y[offset:]), hwy.Load(z[offset:]), hwy.Load(w[offset:]))
			hwy.Store(r, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			r := mat4Row(va, vb, vc, vd,
				hwy.MaskLoad(mask, x[offset:]), hwy.MaskLoad(mask, y[offset:]),
				hwy.MaskLoad(mask, z[offset:]), hwy.MaskLoad(mask, w[offset:]))
			hwy.MaskStore(mask, r, dst[offset:])
		},
	)
}

// BaseFill sets every element of dst to value.
func BaseFill[T hwy.Floats](dst []T, value T) {
	v := hwy.Set(value)
	hwy.ProcessWithTail[T](len(dst),
		func(offset int) {
			hwy.Store(v, dst[offset:])
		},
		func(offset, count int) {
			hwy.MaskStore(hwy.TailMask[T](count), v, dst[offset:])
		},
	)
}
