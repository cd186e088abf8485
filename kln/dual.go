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

package kln

import (
	"github.com/chewxy/math32"

	"github.com/ajroetker/go-klein/kln/simd"
)

// Dual is the dual number P + Q e0123. Joins and meets that produce a
// scalar or a pseudoscalar return one, as does the product of two dual
// numbers. Since e0123² = 0, Dual multiplication is the algebra of dual
// numbers.
type Dual struct {
	P, Q float32
}

// NewDual returns p + q e0123.
func NewDual(p, q float32) Dual { return Dual{P: p, Q: q} }

// Scalar returns the scalar coefficient.
func (d Dual) Scalar() float32 { return d.P }

// E0123 returns the pseudoscalar coefficient.
func (d Dual) E0123() float32 { return d.Q }

// Entity returns d as a generic entity.
func (d Dual) Entity() Entity {
	return NewEntity(MaskP1|MaskP2, simd.Set(d.P, 0, 0, 0), simd.Set(d.Q, 0, 0, 0))
}

// Add returns d + o.
func (d Dual) Add(o Dual) Dual { return Dual{P: d.P + o.P, Q: d.Q + o.Q} }

// Sub returns d - o.
func (d Dual) Sub(o Dual) Dual { return Dual{P: d.P - o.P, Q: d.Q - o.Q} }

// Scale returns d * s.
func (d Dual) Scale(s float32) Dual { return Dual{P: d.P * s, Q: d.Q * s} }

// Mul returns d o = dP oP + (dP oQ + dQ oP) e0123.
func (d Dual) Mul(o Dual) Dual {
	return Dual{P: d.P * o.P, Q: d.P*o.Q + d.Q*o.P}
}

// ApproxEqual reports whether both coefficients are within eps of o's.
func (d Dual) ApproxEqual(o Dual, eps float32) bool {
	return math32.Abs(d.P-o.P) <= eps && math32.Abs(d.Q-o.Q) <= eps
}
