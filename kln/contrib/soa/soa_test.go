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

package soa_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-klein/kln"
	"github.com/ajroetker/go-klein/kln/contrib/soa"
)

const eps = 1e-4

func randCloud(r *rand.Rand, n int) []kln.Point {
	pts := make([]kln.Point, n)
	for i := range pts {
		pts[i] = kln.NewPoint(float32(r.NormFloat64()), float32(r.NormFloat64()), float32(r.NormFloat64()))
	}
	return pts
}

func randMotor(r *rand.Rand) kln.Motor {
	rot := kln.NewRotor(float32(r.Float64()*6-3), float32(r.NormFloat64()), float32(r.NormFloat64()), 1)
	tr := kln.NewTranslator(float32(r.Float64()*4), 1, float32(r.NormFloat64()), float32(r.NormFloat64()))
	return rot.MulTranslator(tr)
}

func TestPointsRoundTrip(t *testing.T) {
	src := []kln.Point{kln.NewPoint(1, 2, 3), kln.Origin(), kln.NewDirection(0, 1, 0).Point()}
	pts := soa.PointsOf(src)
	require.Equal(t, len(src), pts.Len())
	for i, a := range src {
		assert.Equal(t, a, pts.At(i))
	}
	assert.Equal(t, []float32{1, 0, 0}, pts.X)
	assert.Equal(t, []float32{1, 1, 0}, pts.W)
}

func TestPointsNormalize(t *testing.T) {
	pts := soa.PointsOf([]kln.Point{kln.NewPoint(1, 2, 3).Scale(2), kln.NewPoint(-1, 0, 4).Scale(-0.5)})
	pts.Normalize()
	assert.InDeltaSlice(t, []float32{1, -1}, pts.X, eps)
	assert.InDeltaSlice(t, []float32{2, 0}, pts.Y, eps)
	assert.InDeltaSlice(t, []float32{3, 4}, pts.Z, eps)
	assert.Equal(t, []float32{1, 1}, pts.W)
}

func TestPlanesNormalize(t *testing.T) {
	planes := soa.PlanesOf([]kln.Plane{kln.NewPlane(0, 3, 4, 10), kln.NewPlane(2, 0, 0, -2)})
	planes.Normalize()
	for i := range planes.Len() {
		assert.InDelta(t, 1, planes.At(i).Norm(), eps)
	}
	assert.InDeltaSlice(t, []float32{2, -1}, planes.D, eps)
}

func TestTransformPoints(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, 3, 4, 7, 16, 33, 1000} {
		m := randMotor(r)
		src := randCloud(r, n)
		pts := soa.PointsOf(src)
		out := soa.NewPoints(n)
		soa.TransformPoints(m, out, pts)
		for i, a := range src {
			want := m.ApplyPoint(a)
			assert.True(t, want.ApproxEqual(out.At(i), eps), "n=%d i=%d: want %v got %v", n, i, want, out.At(i))
		}

		soa.TransformPoints(m, pts, pts)
		assert.Equal(t, out, pts, "in place, n=%d", n)
	}
}

func TestTransformPlanes(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{1, 5, 64, 129} {
		m := randMotor(r)
		src := make([]kln.Plane, n)
		for i := range src {
			src[i] = kln.NewPlane(float32(r.NormFloat64()), float32(r.NormFloat64()),
				float32(r.NormFloat64()), float32(r.NormFloat64()))
		}
		planes := soa.PlanesOf(src)
		soa.TransformPlanes(m, planes, planes)
		for i, p := range src {
			want := m.ApplyPlane(p)
			assert.True(t, want.ApproxEqual(planes.At(i), eps), "n=%d i=%d", n, i)
		}
	}
}

func TestTransformShortDst(t *testing.T) {
	m := kln.IdentityMotor()
	assert.Panics(t, func() { soa.TransformPoints(m, soa.NewPoints(2), soa.NewPoints(3)) })
	assert.Panics(t, func() { soa.TransformPlanes(m, soa.NewPlanes(1), soa.NewPlanes(3)) })
}

func TestDistances(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	a, b := randCloud(r, 37), randCloud(r, 37)
	pa, pb := soa.PointsOf(a), soa.PointsOf(b)

	dist := make([]float32, len(a))
	soa.SquaredDistances(dist, pa, pb)
	for i := range a {
		d := a[i].Sub(b[i])
		assert.InDelta(t, d.X()*d.X()+d.Y()*d.Y()+d.Z()*d.Z(), dist[i], eps)
	}

	p := kln.NewPlane(1, 2, 2, -3).Normalized()
	soa.PlaneDistances(dist, p, pa)
	for i, x := range a {
		want := (x.X() + 2*x.Y() + 2*x.Z() - 3) / 3
		assert.InDelta(t, want, dist[i], eps)
	}
}

func TestPoolMatchesSequential(t *testing.T) {
	pool := soa.NewPool(4)
	defer pool.Close()
	require.Equal(t, 4, pool.Workers())

	r := rand.New(rand.NewPCG(7, 8))
	m := randMotor(r)
	pts := soa.PointsOf(randCloud(r, 20001))
	want := soa.NewPoints(pts.Len())
	soa.TransformPoints(m, want, pts)

	got := soa.NewPoints(pts.Len())
	pool.TransformPoints(m, got, pts)
	assert.Equal(t, want, got)

	planes := soa.NewPlanes(9000)
	for i := range planes.Len() {
		planes.Set(i, kln.NewPlane(1, float32(i), 0, -1))
	}
	wantPlanes := soa.NewPlanes(planes.Len())
	soa.TransformPlanes(m, wantPlanes, planes)
	pool.TransformPlanes(m, planes, planes)
	assert.Equal(t, wantPlanes, planes)

	pool.Close()
	pool.TransformPoints(m, got, pts)
	assert.Equal(t, want, got, "closed pool runs sequentially")
}

func TestNilPool(t *testing.T) {
	var pool *soa.Pool
	assert.Equal(t, 1, pool.Workers())
	pool.Close()
	pts := soa.PointsOf([]kln.Point{kln.NewPoint(1, 0, 0)})
	pool.TransformPoints(kln.NewTranslator(1, 0, 0, 1).Motor(), pts, pts)
	assert.Equal(t, kln.NewPoint(1, 0, 1), pts.At(0))
}

func BenchmarkTransformPoints(b *testing.B) {
	r := rand.New(rand.NewPCG(9, 10))
	m := randMotor(r)
	pts := soa.PointsOf(randCloud(r, 4096))
	for b.Loop() {
		soa.TransformPoints(m, pts, pts)
	}
}

func BenchmarkTransformPointsAoS(b *testing.B) {
	r := rand.New(rand.NewPCG(9, 10))
	m := randMotor(r)
	pts := randCloud(r, 4096)
	for b.Loop() {
		m.ApplyPoints(pts, pts)
	}
}

func BenchmarkPoolTransformPoints(b *testing.B) {
	pool := soa.NewPool(0)
	defer pool.Close()
	r := rand.New(rand.NewPCG(9, 10))
	m := randMotor(r)
	pts := soa.PointsOf(randCloud(r, 1<<16))
	for b.Loop() {
		pool.TransformPoints(m, pts, pts)
	}
}
