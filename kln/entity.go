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
	"fmt"
	"math/bits"

	"github.com/ajroetker/go-klein/kln/kernel"
	"github.com/ajroetker/go-klein/kln/simd"
)

// Partition masks. Bit k of a mask says that partition Pk is present.
const (
	MaskP0 uint8 = 1 << iota // e0, e1, e2, e3
	MaskP1                   // 1, e23, e31, e12
	MaskP2                   // e0123, e01, e02, e03
	MaskP3                   // e123, e032, e013, e021
)

// Entity is a multivector stored as the subset of partitions named by its
// mask. Exactly popcount(mask) partitions are stored, contiguously and in
// increasing partition order, so a point carries one partition and a motor
// carries two.
//
// The mask is a runtime value: Go has no way to specialize a type on a
// constant mask, so products select kernels with a switch over the present
// partition pairs instead of at compile time.
//
// Entity is a value type. Every operation returns a new Entity; nothing is
// shared between values.
type Entity struct {
	mask  uint8
	parts [4]simd.Vec4
}

// NewEntity builds an entity from its mask and its partitions listed in
// increasing partition order. It panics if the number of partitions does not
// match the mask.
//
// Example:
//
//	// 1 + 2e12 + 3e01
//	e := kln.NewEntity(kln.MaskP1|kln.MaskP2,
//		simd.Set(1, 0, 0, 2),
//		simd.Set(0, 3, 0, 0))
func NewEntity(mask uint8, parts ...simd.Vec4) Entity {
	mask &= 0b1111
	if n := bits.OnesCount8(mask); n != len(parts) {
		panic(fmt.Sprintf("kln: mask %04b needs %d partitions, got %d", mask, n, len(parts)))
	}
	e := Entity{mask: mask}
	copy(e.parts[:], parts)
	return e
}

// fromDense packs the partitions of dense named by mask.
func fromDense(mask uint8, dense *[4]simd.Vec4) Entity {
	e := Entity{mask: mask}
	n := 0
	for k := range 4 {
		if mask&(1<<k) != 0 {
			e.parts[n] = dense[k]
			n++
		}
	}
	return e
}

// dense unpacks the entity into a four-partition array with zeros for the
// absent partitions.
func (e Entity) dense() (out [4]simd.Vec4) {
	n := 0
	for k := range 4 {
		if e.mask&(1<<k) != 0 {
			out[k] = e.parts[n]
			n++
		}
	}
	return
}

// Mask returns the partition mask.
func (e Entity) Mask() uint8 {
	return e.mask
}

// Len returns the number of stored partitions.
func (e Entity) Len() int {
	return bits.OnesCount8(e.mask)
}

// Has reports whether partition k is present.
func (e Entity) Has(k int) bool {
	return e.mask&(1<<k) != 0
}

// Part returns partition k, or zero if it is absent.
func (e Entity) Part(k int) simd.Vec4 {
	if !e.Has(k) {
		return simd.Vec4{}
	}
	return e.parts[bits.OnesCount8(e.mask&(1<<k-1))]
}

// Parts returns the stored partitions in increasing partition order.
func (e Entity) Parts() []simd.Vec4 {
	return append([]simd.Vec4(nil), e.parts[:e.Len()]...)
}

// Add returns e + o. The result carries the union of both masks.
func (e Entity) Add(o Entity) Entity {
	a, b := e.dense(), o.dense()
	for k := range 4 {
		a[k] = a[k].Add(b[k])
	}
	return fromDense(e.mask|o.mask, &a)
}

// Sub returns e - o. Partitions present only in o are negated.
func (e Entity) Sub(o Entity) Entity {
	a, b := e.dense(), o.dense()
	for k := range 4 {
		a[k] = a[k].Sub(b[k])
	}
	return fromDense(e.mask|o.mask, &a)
}

// Scale multiplies every coefficient by s.
func (e Entity) Scale(s float32) Entity {
	for i := range e.Len() {
		e.parts[i] = e.parts[i].Scale(s)
	}
	return e
}

// Shrink divides every coefficient by s.
func (e Entity) Shrink(s float32) Entity {
	return e.Scale(1 / s)
}

// Neg negates every coefficient.
func (e Entity) Neg() Entity {
	for i := range e.Len() {
		e.parts[i] = e.parts[i].Neg()
	}
	return e
}

// Reverse returns the reversion ~e: grade 2 and grade 3 blades change sign.
func (e Entity) Reverse() Entity {
	d := e.dense()
	d[1] = kernel.Reverse1(d[1])
	d[2] = kernel.Reverse2(d[2])
	d[3] = kernel.Reverse3(d[3])
	return fromDense(e.mask, &d)
}

// Dual returns the Poincaré dual !e. It swaps P0 with P3 and P1 with P2
// lane for lane and performs no arithmetic:
//
//	e0 <-> e123    e1 <-> e032    e2 <-> e013    e3 <-> e021
//	1  <-> e0123   e23 <-> e01    e31 <-> e02    e12 <-> e03
func (e Entity) Dual() Entity {
	d := e.dense()
	d[0], d[3] = d[3], d[0]
	d[1], d[2] = d[2], d[1]
	mask := e.mask&0b1000>>3 | e.mask&0b0100>>1 | e.mask&0b0010<<1 | e.mask&0b0001<<3
	return fromDense(mask, &d)
}

type pairFunc func(i, j int, a, b simd.Vec4, acc *[4]simd.Vec4)

func (e Entity) product(o Entity, table *[4][4]uint8, pair pairFunc) Entity {
	mask := kernel.ProductMask(table, e.mask, o.mask)
	var acc [4]simd.Vec4
	ia := 0
	for i := range 4 {
		if !e.Has(i) {
			continue
		}
		jb := 0
		for j := range 4 {
			if !o.Has(j) {
				continue
			}
			pair(i, j, e.parts[ia], o.parts[jb], &acc)
			jb++
		}
		ia++
	}
	return fromDense(mask, &acc)
}

// Mul returns the geometric product e * o. Only the kernels for partition
// pairs present in both operands run, so the cost is proportional to
// e.Len() * o.Len().
func (e Entity) Mul(o Entity) Entity {
	return e.product(o, &kernel.GpOut, gpPair)
}

// Ext returns the exterior (wedge) product e ^ o, the meet of the two
// elements.
func (e Entity) Ext(o Entity) Entity {
	return e.product(o, &kernel.ExtOut, extPair)
}

// Dot returns the symmetric inner product e | o: the part of the geometric
// product of blades of grades r and s that has grade |r - s|.
func (e Entity) Dot(o Entity) Entity {
	return e.product(o, &kernel.DotOut, dotPair)
}

// Reg returns the regressive product e & o = !(!e ^ !o), the join of the
// two elements.
func (e Entity) Reg(o Entity) Entity {
	return e.Dual().Ext(o.Dual()).Dual()
}

// Equal reports whether both entities have the same mask and identical
// coefficients.
func (e Entity) Equal(o Entity) bool {
	return e.mask == o.mask && e.parts == o.parts
}

// ApproxEqual reports whether every coefficient of e is within eps of the
// matching coefficient of o. Absent partitions compare as zero, so entities
// with different masks can still be approximately equal.
func (e Entity) ApproxEqual(o Entity, eps float32) bool {
	a, b := e.dense(), o.dense()
	for k := range 4 {
		if !simd.ApproxEqual(a[k], b[k], eps) {
			return false
		}
	}
	return true
}

// String formats the present partitions, e.g. "P1(1 0 0 0) P2(0 0 0 1)".
func (e Entity) String() string {
	s := ""
	d := e.dense()
	for k := range 4 {
		if !e.Has(k) {
			continue
		}
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("P%d(%g %g %g %g)", k, d[k][0], d[k][1], d[k][2], d[k][3])
	}
	if s == "" {
		return "0"
	}
	return s
}

// AsPlane returns the P0 partition as a plane.
func (e Entity) AsPlane() Plane { return Plane{P0: e.Part(0)} }

// AsLine returns the bivector lanes of P1 and P2 as a line. The scalar and
// pseudoscalar lanes are dropped.
func (e Entity) AsLine() Line {
	return Line{P1: e.Part(1).Keep(0b1110), P2: e.Part(2).Keep(0b1110)}
}

// AsBranch returns the Euclidean bivector lanes of P1.
func (e Entity) AsBranch() Branch { return Branch{P1: e.Part(1).Keep(0b1110)} }

// AsIdealLine returns the ideal bivector lanes of P2.
func (e Entity) AsIdealLine() IdealLine { return IdealLine{P2: e.Part(2).Keep(0b1110)} }

// AsPoint returns the P3 partition as a point.
func (e Entity) AsPoint() Point { return Point{P3: e.Part(3)} }

// AsRotor returns the P1 partition as a rotor.
func (e Entity) AsRotor() Rotor { return Rotor{P1: e.Part(1)} }

// AsTranslator returns the ideal bivector lanes of P2 as a translator. The
// scalar part of e is assumed to be 1.
func (e Entity) AsTranslator() Translator { return Translator{P2: e.Part(2).Keep(0b1110)} }

// AsMotor returns the P1 and P2 partitions as a motor.
func (e Entity) AsMotor() Motor { return Motor{P1: e.Part(1), P2: e.Part(2)} }

// AsDual returns the scalar and pseudoscalar coefficients.
func (e Entity) AsDual() Dual { return Dual{P: e.Part(1)[0], Q: e.Part(2)[0]} }
