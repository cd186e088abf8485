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

package kernel_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-klein/kln/internal/ref"
	"github.com/ajroetker/go-klein/kln/kernel"
	"github.com/ajroetker/go-klein/kln/simd"
	"github.com/ajroetker/go-klein/kln/sym"
)

type symOp func(a, b sym.MV) sym.MV

var (
	gp  symOp = sym.MV.Mul
	ext symOp = sym.MV.Ext
	dot symOp = sym.MV.Dot
)

var pairKernels = []struct {
	name string
	op   symOp
	i, j int
	fn   func(a, b simd.Vec4) [4]simd.Vec4
}{
	{"Gp00", gp, 0, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1], o[2] = kernel.Gp00(a, b); return }},
	{"Gp01", gp, 0, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Gp01(a, b); return }},
	{"Gp02", gp, 0, 2, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Gp02(a, b); return }},
	{"Gp03", gp, 0, 3, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1], o[2] = kernel.Gp03(a, b); return }},
	{"Gp10", gp, 1, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Gp10(a, b); return }},
	{"Gp11", gp, 1, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1] = kernel.Gp11(a, b); return }},
	{"Gp12", gp, 1, 2, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[2] = kernel.Gp12(a, b); return }},
	{"Gp13", gp, 1, 3, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Gp13(a, b); return }},
	{"Gp20", gp, 2, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Gp20(a, b); return }},
	{"Gp21", gp, 2, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[2] = kernel.Gp21(a, b); return }},
	{"Gp23", gp, 2, 3, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Gp23(a, b); return }},
	{"Gp30", gp, 3, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1], o[2] = kernel.Gp30(a, b); return }},
	{"Gp31", gp, 3, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Gp31(a, b); return }},
	{"Gp32", gp, 3, 2, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Gp32(a, b); return }},
	{"Gp33", gp, 3, 3, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1], o[2] = kernel.Gp33(a, b); return }},
	{"Ext00", ext, 0, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1], o[2] = kernel.Ext00(a, b); return }},
	{"Ext01", ext, 0, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Ext01(a, b); return }},
	{"Ext02", ext, 0, 2, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[3] = kernel.Ext02(a, b); return }},
	{"Ext03", ext, 0, 3, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[2] = kernel.Ext03(a, b); return }},
	{"Ext10", ext, 1, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Ext10(a, b); return }},
	{"Ext11", ext, 1, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1] = kernel.Ext11(a, b); return }},
	{"Ext12", ext, 1, 2, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[2] = kernel.Ext12(a, b); return }},
	{"Ext13", ext, 1, 3, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[3] = kernel.Ext13(a, b); return }},
	{"Ext20", ext, 2, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[3] = kernel.Ext20(a, b); return }},
	{"Ext21", ext, 2, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[2] = kernel.Ext21(a, b); return }},
	{"Ext30", ext, 3, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[2] = kernel.Ext30(a, b); return }},
	{"Ext31", ext, 3, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[3] = kernel.Ext31(a, b); return }},
	{"Dot00", dot, 0, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1] = kernel.Dot00(a, b); return }},
	{"Dot01", dot, 0, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0] = kernel.Dot01(a, b); return }},
	{"Dot02", dot, 0, 2, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Dot02(a, b); return }},
	{"Dot03", dot, 0, 3, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1], o[2] = kernel.Dot03(a, b); return }},
	{"Dot10", dot, 1, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0] = kernel.Dot10(a, b); return }},
	{"Dot11", dot, 1, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1] = kernel.Dot11(a, b); return }},
	{"Dot12", dot, 1, 2, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[2] = kernel.Dot12(a, b); return }},
	{"Dot13", dot, 1, 3, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Dot13(a, b); return }},
	{"Dot20", dot, 2, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Dot20(a, b); return }},
	{"Dot21", dot, 2, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[2] = kernel.Dot21(a, b); return }},
	{"Dot23", dot, 2, 3, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0] = kernel.Dot23(a, b); return }},
	{"Dot30", dot, 3, 0, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1], o[2] = kernel.Dot30(a, b); return }},
	{"Dot31", dot, 3, 1, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0], o[3] = kernel.Dot31(a, b); return }},
	{"Dot32", dot, 3, 2, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[0] = kernel.Dot32(a, b); return }},
	{"Dot33", dot, 3, 3, func(a, b simd.Vec4) (o [4]simd.Vec4) { o[1] = kernel.Dot33(a, b); return }},
}

const tol = 1e-4

func randVec(r *rand.Rand) simd.Vec4 {
	var v simd.Vec4
	for i := range v {
		v[i] = float32(r.IntN(9) - 4)
	}
	return v
}

func approxParts(t *testing.T, want, got [4]simd.Vec4, mask uint8, msg string) {
	t.Helper()
	for k := range 4 {
		if mask&(1<<k) == 0 {
			continue
		}
		assert.True(t, simd.ApproxEqual(want[k], got[k], tol), "%s P%d: got %v, want %v", msg, k, got[k], want[k])
	}
}

// reference evaluates op on partition i of a and partition j of b.
func reference(t *testing.T, op symOp, i int, a simd.Vec4, j int, b simd.Vec4) (uint8, [4]simd.Vec4) {
	t.Helper()
	var pa, pb [4]simd.Vec4
	pa[i], pb[j] = a, b
	mask, parts, err := ref.FromMV(op(ref.ToMV(1<<i, &pa), ref.ToMV(1<<j, &pb)))
	require.NoError(t, err)
	return mask, parts
}

func TestPairKernels(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	tables := map[string]*[4][4]uint8{"Gp": &kernel.GpOut, "Ext": &kernel.ExtOut, "Dot": &kernel.DotOut}
	for _, k := range pairKernels {
		t.Run(k.name, func(t *testing.T) {
			out := tables[k.name[:len(k.name)-2]][k.i][k.j]
			for range 20 {
				a, b := randVec(r), randVec(r)
				mask, want := reference(t, k.op, k.i, a, k.j, b)
				assert.Zero(t, mask&^out, "reference produced partitions %04b outside %04b", mask, out)
				approxParts(t, want, k.fn(a, b), out, k.name)
			}
		})
	}
}

func TestAbsentPairsVanish(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	tables := []struct {
		op    symOp
		table *[4][4]uint8
	}{{gp, &kernel.GpOut}, {ext, &kernel.ExtOut}, {dot, &kernel.DotOut}}
	for _, tt := range tables {
		for i := range 4 {
			for j := range 4 {
				if tt.table[i][j] != 0 {
					continue
				}
				mask, _ := reference(t, tt.op, i, randVec(r), j, randVec(r))
				assert.Zero(t, mask, "pair (%d,%d) should vanish", i, j)
			}
		}
	}
}

func TestProductMask(t *testing.T) {
	// plane ^ plane is a line.
	assert.Equal(t, uint8(0b0110), kernel.ProductMask(&kernel.ExtOut, 0b0001, 0b0001))
	// motor * point is a point plus a plane term.
	assert.Equal(t, uint8(0b1001), kernel.ProductMask(&kernel.GpOut, 0b0110, 0b1000))
	// ideal line * ideal line vanishes.
	assert.Equal(t, uint8(0), kernel.ProductMask(&kernel.GpOut, 0b0100, 0b0100))
	assert.Equal(t, uint8(0), kernel.ProductMask(&kernel.GpOut, 0, 0b1111))
}

func TestGpDL(t *testing.T) {
	p1 := simd.Set(1, 2, 3, 4)
	p2 := simd.Set(5, 6, 7, 8)
	var parts [4]simd.Vec4
	parts[1], parts[2] = p1, p2
	d := [4]simd.Vec4{1: simd.Set(2, 0, 0, 0), 2: simd.Set(3, 0, 0, 0)}
	_, want, err := ref.FromMV(ref.ToMV(0b0110, &d).Mul(ref.ToMV(0b0110, &parts)))
	require.NoError(t, err)
	g1, g2 := kernel.GpDL(2, 3, p1, p2)
	approxParts(t, want, [4]simd.Vec4{1: g1, 2: g2}, 0b0110, "GpDL")
}

func TestReverse(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	var parts [4]simd.Vec4
	for k := range parts {
		parts[k] = randVec(r)
	}
	_, want, err := ref.FromMV(ref.ToMV(0b1111, &parts).Reverse())
	require.NoError(t, err)
	got := [4]simd.Vec4{parts[0], kernel.Reverse1(parts[1]), kernel.Reverse2(parts[2]), kernel.Reverse3(parts[3])}
	approxParts(t, want, got, 0b1111, "Reverse")
}

func conj(t *testing.T, g, x sym.MV, reflect bool) [4]simd.Vec4 {
	t.Helper()
	rhs := g.Reverse()
	if reflect {
		rhs = g
	}
	_, parts, err := ref.FromMV(g.Mul(x).Mul(rhs))
	require.NoError(t, err)
	return parts
}

func TestSandwich(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 42))
	for range 20 {
		a, b, x, y := randVec(r), randVec(r), randVec(r), randVec(r)
		one := func(k int, v simd.Vec4) sym.MV {
			var p [4]simd.Vec4
			p[k] = v
			return ref.ToMV(1<<k, &p)
		}
		line := [4]simd.Vec4{1: x, 2: y}
		lineMV := ref.ToMV(0b0110, &line)

		plane := one(0, a)
		m := kernel.Sw00(a)
		approxParts(t, conj(t, plane, one(0, x), true), [4]simd.Vec4{0: m.Apply(x)}, 0b0001, "Sw00")
		m = kernel.Sw30(a)
		approxParts(t, conj(t, plane, one(3, x), true), [4]simd.Vec4{3: m.Apply(x)}, 0b1000, "Sw30")
		lm := kernel.Sw10(a)
		g1, g2 := lm.Apply(x, y)
		approxParts(t, conj(t, plane, lineMV, true), [4]simd.Vec4{1: g1, 2: g2}, 0b0110, "Sw10")

		for _, translate := range []bool{false, true} {
			gparts := [4]simd.Vec4{1: a}
			gmask := uint8(0b0010)
			if translate {
				gparts[2], gmask = b, 0b0110
			}
			g := ref.ToMV(gmask, &gparts)
			m = kernel.Sw012(translate, a, b)
			approxParts(t, conj(t, g, one(0, x), false), [4]simd.Vec4{0: m.Apply(x)}, 0b0001, "Sw012")
			m = kernel.Sw312(translate, a, b)
			approxParts(t, conj(t, g, one(3, x), false), [4]simd.Vec4{3: m.Apply(x)}, 0b1000, "Sw312")
			lm = kernel.SwMM(translate, a, b)
			g1, g2 = lm.Apply(x, y)
			approxParts(t, conj(t, g, lineMV, false), [4]simd.Vec4{1: g1, 2: g2}, 0b0110, "SwMM")
		}

		tv := b.WithLane(0, 0)
		tp := [4]simd.Vec4{1: simd.Set(1, 0, 0, 0), 2: tv}
		tr := ref.ToMV(0b0110, &tp)
		m = kernel.Sw02(tv)
		approxParts(t, conj(t, tr, one(0, x), false), [4]simd.Vec4{0: m.Apply(x)}, 0b0001, "Sw02")
		m = kernel.Sw32(tv)
		approxParts(t, conj(t, tr, one(3, x), false), [4]simd.Vec4{3: m.Apply(x)}, 0b1000, "Sw32")
		lm = kernel.SwL2(tv)
		g1, g2 = lm.Apply(x, y)
		approxParts(t, conj(t, tr, lineMV, false), [4]simd.Vec4{1: g1, 2: g2}, 0b0110, "SwL2")
	}
}

func BenchmarkGp11(b *testing.B) {
	x, y := simd.Set(1, 2, 3, 4), simd.Set(5, 6, 7, 8)
	for b.Loop() {
		x = kernel.Gp11(x, y)
	}
	_ = x
}

func BenchmarkSw312Apply(b *testing.B) {
	m := kernel.Sw312(true, simd.Set(1, 2, 3, 4), simd.Set(5, 6, 7, 8))
	p := simd.Set(1, 0, 0, 0)
	for b.Loop() {
		p = m.Apply(p)
	}
	_ = p
}
