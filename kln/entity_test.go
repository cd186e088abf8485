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

package kln_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-klein/kln"
	"github.com/ajroetker/go-klein/kln/simd"
	"github.com/ajroetker/go-klein/kln/sym"
)

func TestNewEntity(t *testing.T) {
	a, b := simd.Set(1, 2, 3, 4), simd.Set(5, 6, 7, 8)
	e := kln.NewEntity(kln.MaskP1|kln.MaskP3, a, b)
	assert.Equal(t, 2, e.Len())
	assert.True(t, e.Has(1))
	assert.False(t, e.Has(2))
	assert.Equal(t, a, e.Part(1))
	assert.Equal(t, b, e.Part(3))
	assert.Equal(t, simd.Vec4{}, e.Part(0))
	assert.Equal(t, []simd.Vec4{a, b}, e.Parts())
	assert.Equal(t, "P1(1 2 3 4) P3(5 6 7 8)", e.String())
	assert.Equal(t, "0", kln.Entity{}.String())

	assert.Panics(t, func() { kln.NewEntity(kln.MaskP0|kln.MaskP1, a) })
}

func randEntity(mask uint8, vec func() simd.Vec4) kln.Entity {
	var parts []simd.Vec4
	for k := range 4 {
		if mask&(1<<k) != 0 {
			parts = append(parts, vec())
		}
	}
	return kln.NewEntity(mask, parts...)
}

func TestEntityProductsMatchReference(t *testing.T) {
	r := newRand(1)
	vec := func() simd.Vec4 { return randIntVec(r) }
	ops := []struct {
		name string
		got  func(a, b kln.Entity) kln.Entity
		want func(a, b sym.MV) (sym.MV, error)
	}{
		{"Mul", kln.Entity.Mul, func(a, b sym.MV) (sym.MV, error) { return a.Mul(b), nil }},
		{"Ext", kln.Entity.Ext, func(a, b sym.MV) (sym.MV, error) { return a.Ext(b), nil }},
		{"Dot", kln.Entity.Dot, func(a, b sym.MV) (sym.MV, error) { return a.Dot(b), nil }},
		{"Reg", kln.Entity.Reg, sym.MV.Reg},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for ma := uint8(1); ma < 16; ma++ {
				for mb := uint8(1); mb < 16; mb++ {
					a, b := randEntity(ma, vec), randEntity(mb, vec)
					w, err := op.want(toRef(a), toRef(b))
					require.NoError(t, err)
					want := fromRef(t, w)
					got := op.got(a, b)
					assert.Zero(t, want.Mask()&^got.Mask(), "%04b x %04b: result mask %04b misses %04b",
						ma, mb, got.Mask(), want.Mask())
					assert.True(t, want.ApproxEqual(got, eps), "%04b x %04b:\n got %v\nwant %v", ma, mb, got, want)
				}
			}
		})
	}
}

func TestEntityUnary(t *testing.T) {
	r := newRand(2)
	e := randEntity(0b1111, func() simd.Vec4 { return randIntVec(r) })
	assert.True(t, fromRef(t, toRef(e).Reverse()).ApproxEqual(e.Reverse(), 1e-6))

	d, err := toRef(e).Dual()
	require.NoError(t, err)
	assert.True(t, fromRef(t, d).ApproxEqual(e.Dual(), 1e-6))

	for mask := uint8(1); mask < 16; mask++ {
		x := randEntity(mask, func() simd.Vec4 { return randIntVec(r) })
		assert.True(t, x.Dual().Dual().Equal(x), "!!x for mask %04b", mask)
	}
}

func TestEntityArithmetic(t *testing.T) {
	p := kln.NewEntity(kln.MaskP0, simd.Set(1, 2, 3, 4))
	q := kln.NewEntity(kln.MaskP3, simd.Set(1, 0, 0, 0))
	sum := p.Add(q)
	assert.Equal(t, kln.MaskP0|kln.MaskP3, sum.Mask())
	assert.Equal(t, simd.Set(-1, 0, 0, 0), p.Sub(q).Part(3))
	assert.Equal(t, simd.Set(2, 4, 6, 8), p.Scale(2).Part(0))
	assert.Equal(t, simd.Set(0.5, 1, 1.5, 2), p.Shrink(2).Part(0))
	assert.Equal(t, simd.Set(-1, -2, -3, -4), p.Neg().Part(0))
	assert.True(t, p.Equal(p))
	assert.False(t, p.Equal(sum))
	assert.True(t, p.ApproxEqual(sum.Sub(q), 1e-6), "absent partitions compare as zero")
	assert.False(t, p.ApproxEqual(p, 0), "tolerance is exclusive")
}

func TestEntityConversions(t *testing.T) {
	m := kln.NewMotor(1, 2, 3, 4, 5, 6, 7, 8)
	e := m.Entity()
	assert.Equal(t, m, e.AsMotor())
	assert.Equal(t, kln.Rotor{P1: m.P1}, e.AsRotor())
	assert.Equal(t, kln.NewLine(5, 6, 7, 2, 3, 4), e.AsLine())
	assert.Equal(t, kln.NewBranch(2, 3, 4), e.AsBranch())
	assert.Equal(t, kln.NewIdealLine(5, 6, 7), e.AsIdealLine())
	assert.Equal(t, kln.Dual{P: 1, Q: 8}, e.AsDual())
	assert.Equal(t, kln.NewPoint(1, 2, 3), kln.NewPoint(1, 2, 3).Entity().AsPoint())
	assert.Equal(t, kln.NewPlane(1, 2, 3, 4), kln.NewPlane(1, 2, 3, 4).Entity().AsPlane())
}

func BenchmarkEntityMulMotors(b *testing.B) {
	m := kln.NewMotor(1, 2, 3, 4, 5, 6, 7, 8).Entity()
	n := kln.NewMotor(8, 7, 6, 5, 4, 3, 2, 1).Entity()
	for b.Loop() {
		m = m.Mul(n)
	}
	_ = m
}

func BenchmarkMotorMul(b *testing.B) {
	m := kln.NewMotor(1, 2, 3, 4, 5, 6, 7, 8)
	n := kln.NewMotor(8, 7, 6, 5, 4, 3, 2, 1)
	for b.Loop() {
		m = m.Mul(n)
	}
	_ = m
}
