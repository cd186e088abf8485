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
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrUnsupportedSignature is returned by operations that are only defined
// for PGA(3,0,1).
var ErrUnsupportedSignature = errors.New("sym: operation requires signature (3,0,1)")

// maxDim bounds the number of generators so that every blade prints as one
// digit per generator.
const maxDim = 10

// Algebra is a real Clifford algebra with P generators squaring to +1, Q
// squaring to -1 and R squaring to 0. Generators are numbered from 0: the
// null ones first, then the positive, then the negative ones. Blades are
// bitmasks over the generators, so bit i set means e_i is a factor.
type Algebra struct {
	P, Q, R int
}

// PGA3 is 3D projective geometric algebra: e0 is null, e1 to e3 square to 1.
var PGA3 = Algebra{P: 3, Q: 0, R: 1}

// Validate reports whether the signature is usable.
func (a Algebra) Validate() error {
	if a.P < 0 || a.Q < 0 || a.R < 0 {
		return fmt.Errorf("sym: negative signature (%d,%d,%d)", a.P, a.Q, a.R)
	}
	if d := a.Dim(); d == 0 || d > maxDim {
		return fmt.Errorf("sym: dimension %d out of range [1, %d]", d, maxDim)
	}
	return nil
}

// Dim returns the number of generators.
func (a Algebra) Dim() int { return a.P + a.Q + a.R }

// Size returns the number of basis blades, 2^Dim.
func (a Algebra) Size() int { return 1 << a.Dim() }

// String returns the signature as "(p,q,r)".
func (a Algebra) String() string { return fmt.Sprintf("(%d,%d,%d)", a.P, a.Q, a.R) }

// Metric returns the square of generator i.
func (a Algebra) Metric(i int) int {
	switch {
	case i < a.R:
		return 0
	case i < a.R+a.P:
		return 1
	default:
		return -1
	}
}

// Grade returns the number of generators in blade.
func Grade(blade uint32) int { return bits.OnesCount32(blade) }

// BladeName returns blade written with its generator digits in ascending
// order, such as "e023". The scalar blade has the empty name.
func BladeName(blade uint32) string {
	if blade == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('e')
	for i := 0; blade != 0; i++ {
		if blade&1 != 0 {
			sb.WriteByte(byte('0' + i))
		}
		blade >>= 1
	}
	return sb.String()
}

// swaps counts the transpositions needed to sort the generators of lhs
// followed by those of rhs.
func swaps(lhs, rhs uint32) int {
	n := 0
	for l := lhs >> 1; l != 0; l >>= 1 {
		n += bits.OnesCount32(l & rhs)
	}
	return n
}

// signed packs a blade and a sign into a 1-based index: +(blade+1) or
// -(blade+1).
func signed(blade uint32, neg bool) int {
	if neg {
		return -int(blade + 1)
	}
	return int(blade + 1)
}

// Unpack splits a signed 1-based index into its blade and sign. It returns
// ok = false for 0.
func Unpack(idx int) (blade uint32, neg, ok bool) {
	switch {
	case idx > 0:
		return uint32(idx - 1), false, true
	case idx < 0:
		return uint32(-idx - 1), true, true
	}
	return 0, false, false
}

// Mul returns the geometric product of two blades as a signed 1-based index,
// or 0 when a shared null generator annihilates it.
func (a Algebra) Mul(lhs, rhs uint32) int {
	neg := swaps(lhs, rhs)&1 == 1
	common := lhs & rhs
	for i := 0; common != 0; i++ {
		if common&1 != 0 {
			switch a.Metric(i) {
			case 0:
				return 0
			case -1:
				neg = !neg
			}
		}
		common >>= 1
	}
	return signed(lhs^rhs, neg)
}

// Ext returns the exterior product of two blades as a signed 1-based index,
// or 0 when they share a generator.
func (a Algebra) Ext(lhs, rhs uint32) int {
	if lhs&rhs != 0 {
		return 0
	}
	return signed(lhs|rhs, swaps(lhs, rhs)&1 == 1)
}

// Dot returns the symmetric inner product of two blades: the geometric
// product when its grade is the difference of the operand grades, else 0.
func (a Algebra) Dot(lhs, rhs uint32) int {
	g := a.Mul(lhs, rhs)
	blade, _, ok := Unpack(g)
	if !ok {
		return 0
	}
	d := Grade(lhs) - Grade(rhs)
	if d < 0 {
		d = -d
	}
	if Grade(blade) != d {
		return 0
	}
	return g
}

// pga3Dual is the Poincaré dual of each PGA(3,0,1) blade as a signed 1-based
// index. It pairs e1 with e032, e2 with e013, e3 with e021, e23 with e01,
// e31 with e02, e12 with e03 and each blade with its complement, so that
// applying it twice is the identity.
var pga3Dual = [16]int{
	0b0000: +(0b1111 + 1),
	0b0001: +(0b1110 + 1),
	0b0010: -(0b1101 + 1),
	0b0011: +(0b1100 + 1),
	0b0100: +(0b1011 + 1),
	0b0101: -(0b1010 + 1),
	0b0110: +(0b1001 + 1),
	0b0111: -(0b1000 + 1),
	0b1000: -(0b0111 + 1),
	0b1001: +(0b0110 + 1),
	0b1010: -(0b0101 + 1),
	0b1011: +(0b0100 + 1),
	0b1100: +(0b0011 + 1),
	0b1101: -(0b0010 + 1),
	0b1110: +(0b0001 + 1),
	0b1111: +(0b0000 + 1),
}

// Dual returns the Poincaré dual of blade as a signed 1-based index.
func (a Algebra) Dual(blade uint32) (int, error) {
	if a != PGA3 {
		return 0, ErrUnsupportedSignature
	}
	if blade >= 16 {
		return 0, fmt.Errorf("sym: blade %b out of range", blade)
	}
	return pga3Dual[blade], nil
}

// Reg returns the regressive product J(J(lhs) ^ J(rhs)) of two blades as a
// signed 1-based index.
func (a Algebra) Reg(lhs, rhs uint32) (int, error) {
	dl, err := a.Dual(lhs)
	if err != nil {
		return 0, err
	}
	dr, err := a.Dual(rhs)
	if err != nil {
		return 0, err
	}
	bl, nl, _ := Unpack(dl)
	br, nr, _ := Unpack(dr)
	w, nw, ok := Unpack(a.Ext(bl, br))
	if !ok {
		return 0, nil
	}
	d, err := a.Dual(w)
	if err != nil {
		return 0, err
	}
	b, nd, _ := Unpack(d)
	return signed(b, nl != nr != nw != nd), nil
}
