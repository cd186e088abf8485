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
	"slices"
	"strings"

	"github.com/samber/lo"
)

// MV is a multivector over an Algebra with polynomial coefficients, stored
// sparsely by blade. Zero coefficients are never stored.
type MV struct {
	alg   Algebra
	terms map[uint32]Poly
}

// Zero returns the zero multivector.
func (a Algebra) Zero() MV { return MV{alg: a} }

// Scalar returns the constant multivector c.
func (a Algebra) Scalar(c float64) MV { return a.Blade(0, Const(c)) }

// Var returns the scalar variable name.
func (a Algebra) Var(name string) MV { return a.Blade(0, Var(name)) }

// Blade returns coef times the basis blade.
func (a Algebra) Blade(blade uint32, coef Poly) MV {
	return a.prune(map[uint32]Poly{blade: coef})
}

func (a Algebra) prune(terms map[uint32]Poly) MV {
	return MV{alg: a, terms: lo.PickBy(terms, func(_ uint32, p Poly) bool { return !p.IsZero() })}
}

// Algebra returns the algebra m belongs to.
func (m MV) Algebra() Algebra { return m.alg }

// IsZero reports whether m is zero.
func (m MV) IsZero() bool { return len(m.terms) == 0 }

// Coef returns the coefficient of blade.
func (m MV) Coef(blade uint32) Poly { return m.terms[blade] }

// Blades returns the blades with nonzero coefficients by grade, then
// bitmask.
func (m MV) Blades() []uint32 {
	blades := lo.Keys(m.terms)
	slices.SortFunc(blades, func(a, b uint32) int {
		if ga, gb := Grade(a), Grade(b); ga != gb {
			return ga - gb
		}
		return int(a) - int(b)
	})
	return blades
}

// Add returns m + o.
func (m MV) Add(o MV) MV {
	out := make(map[uint32]Poly, len(m.terms)+len(o.terms))
	for _, b := range m.Blades() {
		out[b] = m.terms[b]
	}
	for _, b := range o.Blades() {
		out[b] = out[b].Add(o.terms[b])
	}
	return m.alg.prune(out)
}

// Neg returns -m.
func (m MV) Neg() MV {
	return MV{alg: m.alg, terms: lo.MapValues(m.terms, func(p Poly, _ uint32) Poly { return p.Neg() })}
}

// Sub returns m - o.
func (m MV) Sub(o MV) MV { return m.Add(o.Neg()) }

func (m MV) product(o MV, op func(lhs, rhs uint32) int) MV {
	out := make(map[uint32]Poly)
	for _, lb := range m.Blades() {
		for _, rb := range o.Blades() {
			blade, neg, ok := Unpack(op(lb, rb))
			if !ok {
				continue
			}
			p := m.terms[lb].Mul(o.terms[rb])
			if neg {
				p = p.Neg()
			}
			out[blade] = out[blade].Add(p)
		}
	}
	return m.alg.prune(out)
}

// Mul returns the geometric product m o.
func (m MV) Mul(o MV) MV { return m.product(o, m.alg.Mul) }

// Ext returns the exterior product m ^ o.
func (m MV) Ext(o MV) MV { return m.product(o, m.alg.Ext) }

// Dot returns the symmetric inner product m | o.
func (m MV) Dot(o MV) MV { return m.product(o, m.alg.Dot) }

// Reg returns the regressive product m & o. It fails with
// ErrUnsupportedSignature outside PGA(3,0,1).
func (m MV) Reg(o MV) (MV, error) {
	if m.alg != PGA3 {
		return MV{}, ErrUnsupportedSignature
	}
	return m.product(o, func(lhs, rhs uint32) int {
		idx, _ := m.alg.Reg(lhs, rhs)
		return idx
	}), nil
}

// Dual returns the Poincaré dual !m. It fails with ErrUnsupportedSignature
// outside PGA(3,0,1).
func (m MV) Dual() (MV, error) {
	out := make(map[uint32]Poly, len(m.terms))
	for _, b := range m.Blades() {
		idx, err := m.alg.Dual(b)
		if err != nil {
			return MV{}, err
		}
		blade, neg, _ := Unpack(idx)
		p := m.terms[b]
		if neg {
			p = p.Neg()
		}
		out[blade] = p
	}
	return m.alg.prune(out), nil
}

// Reverse returns ~m, which negates grades 2 and 3 (mod 4).
func (m MV) Reverse() MV {
	return MV{alg: m.alg, terms: lo.MapValues(m.terms, func(p Poly, b uint32) Poly {
		if g := Grade(b); g%4 == 2 || g%4 == 3 {
			return p.Neg()
		}
		return p
	})}
}

// Grade returns the grade-k part of m.
func (m MV) Grade(k int) MV {
	return MV{alg: m.alg, terms: lo.PickBy(m.terms, func(b uint32, _ Poly) bool { return Grade(b) == k })}
}

// String formats m on one line.
func (m MV) String() string { return m.Format(false) }

// Format writes the terms of m in blade order as "coef blade", such as
// "1 + 2 e01 - a e123". A coefficient with several terms is parenthesized.
// With breakLines set each term after the first starts a new line. Zero
// prints as "0".
func (m MV) Format(breakLines bool) string {
	if m.IsZero() {
		return "0"
	}
	sep := " "
	if breakLines {
		sep = "\n"
	}
	var sb strings.Builder
	for i, b := range m.Blades() {
		p := m.terms[b]
		coef := p.String()
		neg := false
		if p.Len() > 1 {
			coef = "(" + coef + ")"
		} else if strings.HasPrefix(coef, "-") {
			coef, neg = coef[1:], true
		}
		switch {
		case i == 0 && neg:
			sb.WriteByte('-')
		case i > 0 && neg:
			sb.WriteString(sep + "- ")
		case i > 0:
			sb.WriteString(sep + "+ ")
		}
		sb.WriteString(coef)
		if b != 0 {
			sb.WriteString(" " + BladeName(b))
		}
	}
	return sb.String()
}
