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
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Mon is a monomial: a product of variables, sorted by name with repeats
// for powers. The empty Mon is 1.
type Mon []string

// Key returns the canonical spelling of m, such as "a*b*b". Powers are
// spelled as repeats since ^ is the exterior product in expressions.
func (m Mon) Key() string { return strings.Join(m, "*") }

// Powers returns m as a map from variable to exponent.
func (m Mon) Powers() map[string]int { return lo.CountValues(m) }

// Degree returns the total degree of m.
func (m Mon) Degree() int { return len(m) }

// Mul returns m o.
func (m Mon) Mul(o Mon) Mon {
	out := make(Mon, 0, len(m)+len(o))
	out = append(append(out, m...), o...)
	slices.Sort(out)
	return out
}

type polyTerm struct {
	mon  Mon
	coef float64
}

// Poly is a polynomial with float64 coefficients. Terms with a zero
// coefficient are never stored, so a Poly is zero exactly when it has no
// terms. The zero value is the zero polynomial.
type Poly struct {
	terms map[string]polyTerm
}

// Const returns the constant polynomial c.
func Const(c float64) Poly {
	return prune(map[string]polyTerm{"": {coef: c}})
}

// Var returns the polynomial consisting of the variable name.
func Var(name string) Poly {
	return Poly{terms: map[string]polyTerm{name: {mon: Mon{name}, coef: 1}}}
}

func prune(terms map[string]polyTerm) Poly {
	return Poly{terms: lo.PickBy(terms, func(_ string, t polyTerm) bool { return t.coef != 0 })}
}

// keys returns the monomial keys of p by degree, then spelling.
func (p Poly) keys() []string {
	keys := lo.Keys(p.terms)
	slices.SortFunc(keys, func(a, b string) int {
		if da, db := p.terms[a].mon.Degree(), p.terms[b].mon.Degree(); da != db {
			return da - db
		}
		return strings.Compare(a, b)
	})
	return keys
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of terms.
func (p Poly) Len() int { return len(p.terms) }

// Constant returns the value of p and true if p has no variables.
func (p Poly) Constant() (float64, bool) {
	switch len(p.terms) {
	case 0:
		return 0, true
	case 1:
		t, ok := p.terms[""]
		return t.coef, ok
	}
	return 0, false
}

// Add returns p + o.
func (p Poly) Add(o Poly) Poly {
	out := make(map[string]polyTerm, len(p.terms)+len(o.terms))
	for _, k := range p.keys() {
		out[k] = p.terms[k]
	}
	for _, k := range o.keys() {
		t := o.terms[k]
		if cur, ok := out[k]; ok {
			t.coef += cur.coef
		}
		out[k] = t
	}
	return prune(out)
}

// Neg returns -p.
func (p Poly) Neg() Poly { return p.Scale(-1) }

// Sub returns p - o.
func (p Poly) Sub(o Poly) Poly { return p.Add(o.Neg()) }

// Scale returns c p.
func (p Poly) Scale(c float64) Poly {
	return prune(lo.MapValues(p.terms, func(t polyTerm, _ string) polyTerm {
		return polyTerm{mon: t.mon, coef: c * t.coef}
	}))
}

// Mul returns p o.
func (p Poly) Mul(o Poly) Poly {
	out := make(map[string]polyTerm)
	for _, pk := range p.keys() {
		pt := p.terms[pk]
		for _, qk := range o.keys() {
			ot := o.terms[qk]
			mon := pt.mon.Mul(ot.mon)
			key := mon.Key()
			t := out[key]
			t.mon = mon
			t.coef += pt.coef * ot.coef
			out[key] = t
		}
	}
	return prune(out)
}

// Eval returns the value of p with each variable replaced by vars[name].
func (p Poly) Eval(vars map[string]float64) (float64, error) {
	sum := 0.0
	for _, k := range p.keys() {
		t := p.terms[k]
		v := t.coef
		for _, name := range t.mon {
			x, ok := vars[name]
			if !ok {
				return 0, fmt.Errorf("sym: unbound variable %q", name)
			}
			v *= x
		}
		sum += v
	}
	return sum, nil
}

func formatCoef(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// format writes one term with a non-negative leading coefficient and reports
// whether the coefficient was negative.
func (t polyTerm) format() (string, bool) {
	c, neg := t.coef, t.coef < 0
	if neg {
		c = -c
	}
	switch {
	case len(t.mon) == 0:
		return formatCoef(c), neg
	case c == 1:
		return t.mon.Key(), neg
	}
	return formatCoef(c) + "*" + t.mon.Key(), neg
}

// String returns p with terms ordered by degree, such as "1 + 2*a - b*c".
// The zero polynomial prints as "0".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, k := range p.keys() {
		s, neg := p.terms[k].format()
		switch {
		case i == 0 && neg:
			sb.WriteByte('-')
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(s)
	}
	return sb.String()
}
