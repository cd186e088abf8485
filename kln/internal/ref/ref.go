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

// Package ref converts between packed partitions and symbolic multivectors
// so that kernels can be checked against the generic blade algebra.
package ref

import (
	"fmt"

	"github.com/ajroetker/go-klein/kln/simd"
	"github.com/ajroetker/go-klein/kln/sym"
)

// Lane is the basis element stored in one partition lane: a canonical blade
// and the sign relating the lane's blade to it, as with e31 = -e13.
type Lane struct {
	Blade uint32
	Sign  float64
}

// Lanes lists the basis element of every lane of P0 to P3.
var Lanes = [4][4]Lane{
	{{0b0001, 1}, {0b0010, 1}, {0b0100, 1}, {0b1000, 1}},   // e0 e1 e2 e3
	{{0b0000, 1}, {0b1100, 1}, {0b1010, -1}, {0b0110, 1}},  // 1 e23 e31 e12
	{{0b1111, 1}, {0b0011, 1}, {0b0101, 1}, {0b1001, 1}},   // e0123 e01 e02 e03
	{{0b1110, 1}, {0b1101, -1}, {0b1011, 1}, {0b0111, -1}}, // e123 e032 e013 e021
}

var laneOf = func() map[uint32][2]int {
	m := make(map[uint32][2]int, 16)
	for k, part := range Lanes {
		for i, l := range part {
			m[l.Blade] = [2]int{k, i}
		}
	}
	return m
}()

// ToMV returns the multivector whose partition k is parts[k] for every bit
// k set in mask.
func ToMV(mask uint8, parts *[4]simd.Vec4) sym.MV {
	m := sym.PGA3.Zero()
	for k := range 4 {
		if mask&(1<<k) == 0 {
			continue
		}
		for i, l := range Lanes[k] {
			m = m.Add(sym.PGA3.Blade(l.Blade, sym.Const(l.Sign*float64(parts[k][i]))))
		}
	}
	return m
}

// FromMV packs a multivector with constant coefficients into partitions
// and returns the mask of partitions with a nonzero lane.
func FromMV(m sym.MV) (mask uint8, parts [4]simd.Vec4, err error) {
	for _, b := range m.Blades() {
		c, ok := m.Coef(b).Constant()
		if !ok {
			return 0, parts, fmt.Errorf("ref: blade %s has a symbolic coefficient", sym.BladeName(b))
		}
		at := laneOf[b]
		parts[at[0]][at[1]] = float32(Lanes[at[0]][at[1]].Sign * c)
		mask |= 1 << at[0]
	}
	return mask, parts, nil
}
