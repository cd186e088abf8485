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

package sym

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgebraMul(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs uint32
		want     int
	}{
		{"e1 e2", 0b0010, 0b0100, +(0b0110 + 1)},
		{"e2 e1", 0b0100, 0b0010, -(0b0110 + 1)},
		{"e1 e1", 0b0010, 0b0010, +1},
		{"e0 e0", 0b0001, 0b0001, 0},
		{"e12 e12", 0b0110, 0b0110, -1},
		{"e0 e123", 0b0001, 0b1110, +(0b1111 + 1)},
		{"e123 e0", 0b1110, 0b0001, -(0b1111 + 1)},
		{"scalar", 0, 0b1010, +(0b1010 + 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PGA3.Mul(tt.lhs, tt.rhs))
		})
	}
}

func TestAlgebraNegativeMetric(t *testing.T) {
	alg := Algebra{P: 1, Q: 1}
	assert.Equal(t, 1, alg.Mul(0b01, 0b01), "e0 squares to +1")
	assert.Equal(t, -1, alg.Mul(0b10, 0b10), "e1 squares to -1")
	assert.Equal(t, -1, alg.Metric(1))
	assert.Equal(t, 0, PGA3.Metric(0), "e0 is null")
}

func TestAlgebraExtDot(t *testing.T) {
	assert.Equal(t, 0, PGA3.Ext(0b0010, 0b0010))
	assert.Equal(t, -(0b0110 + 1), PGA3.Ext(0b0100, 0b0010))
	assert.Equal(t, +(0b1111 + 1), PGA3.Ext(0b0001, 0b1110))

	// e1 | e12 = e2, grade 1 = |1 - 2|.
	assert.Equal(t, +(0b0100 + 1), PGA3.Dot(0b0010, 0b0110))
	// e1 e23 = e123 has grade 3, not 1.
	assert.Equal(t, 0, PGA3.Dot(0b0010, 0b1100))
	// Anything involving e0 twice vanishes.
	assert.Equal(t, 0, PGA3.Dot(0b0001, 0b0011))
}

func TestDualInvolution(t *testing.T) {
	for b := range uint32(16) {
		d, err := PGA3.Dual(b)
		require.NoError(t, err)
		db, n1, ok := Unpack(d)
		require.True(t, ok)
		assert.Equal(t, 4-Grade(b), Grade(db), "dual of %s", BladeName(b))
		dd, err := PGA3.Dual(db)
		require.NoError(t, err)
		back, n2, _ := Unpack(dd)
		assert.Equal(t, b, back)
		assert.Equal(t, n1, n2, "!!%s must be +%s", BladeName(b), BladeName(b))
	}
}

func TestUnsupportedSignature(t *testing.T) {
	alg := Algebra{P: 3}
	_, err := alg.Dual(1)
	assert.ErrorIs(t, err, ErrUnsupportedSignature)
	_, err = alg.Reg(1, 2)
	assert.ErrorIs(t, err, ErrUnsupportedSignature)
	_, err = Parse("e0 & e1", alg)
	assert.ErrorIs(t, err, ErrUnsupportedSignature)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, PGA3.Validate())
	assert.Error(t, Algebra{}.Validate())
	assert.Error(t, Algebra{P: 11}.Validate())
	assert.Error(t, Algebra{P: -1, R: 2}.Validate())
}

func TestBladeName(t *testing.T) {
	assert.Equal(t, "", BladeName(0))
	assert.Equal(t, "e0", BladeName(1))
	assert.Equal(t, "e23", BladeName(0b1100))
	assert.Equal(t, "e0123", BladeName(0b1111))
}

func TestPoly(t *testing.T) {
	a, b, c := Var("a"), Var("b"), Var("c")
	assert.True(t, Const(0).IsZero())
	assert.True(t, a.Sub(a).IsZero())
	assert.Equal(t, "0", Poly{}.String())

	p := Const(1).Add(a.Scale(2)).Sub(b.Mul(c))
	assert.Equal(t, "1 + 2*a - b*c", p.String())
	assert.Equal(t, "-a", a.Neg().String())
	assert.Equal(t, "a*a*b", a.Mul(b).Mul(a).String())
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, Mon{"b"}.Mul(Mon{"a", "a"}).Powers())
	assert.Empty(t, Mon{}.Powers())
	assert.Equal(t, a.Mul(b).String(), b.Mul(a).String())

	v, err := p.Eval(map[string]float64{"a": 3, "b": 2, "c": 5})
	require.NoError(t, err)
	assert.Equal(t, -3.0, v)
	_, err = p.Eval(map[string]float64{"a": 3})
	assert.Error(t, err)

	k, ok := Const(4).Constant()
	assert.True(t, ok)
	assert.Equal(t, 4.0, k)
	_, ok = a.Constant()
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 3 * 2", "7"},
		{"e123 & (e123 + e032)", "1 e23"},
		{"e1 * e1", "1"},
		{"e0 e0", "0"},
		{"e2 e1", "-1 e12"},
		{"e032", "-1 e023"},
		{"2e3", "2 e3"},
		{"1 - 2 - 3", "-4"},
		{"-e1 ^ e2", "-1 e12"},
		{"e1 ^ e2 + e3", "1 e3 + 1 e12"},
		{"~(1 + e12 + e123)", "1 - 1 e12 - 1 e123"},
		{"e1 | e12", "1 e2"},
		{"(a e1 + b e2) * (c e1 + d e2)", "(a*c + b*d) + (a*d - b*c) e12"},
		{"x - x", "0"},
		{"0.5 * 4", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			v, err := Parse(tt.src, PGA3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind ErrorKind
	}{
		{"e11", DuplicateIndex},
		{"e4", IndexOutOfRange},
		{"(1 + 2", MissingParen},
		{"1 +", UnexpectedToken},
		{"1 )", UnexpectedToken},
		{"1 $ 2", UnexpectedToken},
		{"* 2", UnexpectedUnary},
		{"1 + + 2", UnexpectedUnary},
		{"123456789012345678901234567890123", NumberOverflow},
		{"1.2.3", InvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Parse(tt.src, PGA3)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind, pe.Error())
		})
	}
}

func TestNumberAtLimit(t *testing.T) {
	v, err := Parse("12345678901234567890123456789012", PGA3)
	require.NoError(t, err)
	c, ok := v.Coef(0).Constant()
	require.True(t, ok)
	assert.InDelta(t, 1.2345678901234568e31, c, 1e16)
}

func TestFormatBreakLines(t *testing.T) {
	v, err := Parse("1 - e12 + e123", PGA3)
	require.NoError(t, err)
	assert.Equal(t, "1\n- 1 e12\n+ 1 e123", v.Format(true))
}

func randomMV(r *rand.Rand) MV {
	m := PGA3.Zero()
	for b := range uint32(16) {
		if r.IntN(3) > 0 {
			m = m.Add(PGA3.Blade(b, Const(float64(r.IntN(7)-3))))
		}
	}
	return m
}

func TestProductIdentities(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		x, y, z := randomMV(r), randomMV(r), randomMV(r)
		assert.Equal(t, x.Mul(y).Mul(z).String(), x.Mul(y.Mul(z)).String(), "associativity")
		assert.Equal(t, x.Ext(y).Ext(z).String(), x.Ext(y.Ext(z)).String(), "ext associativity")
		assert.Equal(t, x.Mul(y).Reverse().String(), y.Reverse().Mul(x.Reverse()).String(), "reverse")

		dx, err := x.Dual()
		require.NoError(t, err)
		ddx, err := dx.Dual()
		require.NoError(t, err)
		assert.Equal(t, x.String(), ddx.String(), "dual involution")

		reg, err := x.Reg(y)
		require.NoError(t, err)
		dy, err := y.Dual()
		require.NoError(t, err)
		want, err := dx.Ext(dy).Dual()
		require.NoError(t, err)
		assert.Equal(t, want.String(), reg.String(), "regressive product")
	}
}

func TestGrade(t *testing.T) {
	v, err := Parse("1 + e1 + e12 + 2 e23 + e123", PGA3)
	require.NoError(t, err)
	assert.Equal(t, "1 e12 + 2 e23", v.Grade(2).String())
	assert.True(t, v.Grade(4).IsZero())
	assert.Equal(t, []uint32{0, 0b0010, 0b0110, 0b1100, 0b1110}, v.Blades())
}
