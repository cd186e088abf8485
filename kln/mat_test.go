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
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/ajroetker/go-klein/kln"
)

func dense(m kln.Mat4x4) *mat.Dense {
	data := make([]float64, 16)
	for i := range 4 {
		for j := range 4 {
			data[i*4+j] = float64(m.Cols[j][i])
		}
	}
	return mat.NewDense(4, 4, data)
}

func TestMatricesMatchApply(t *testing.T) {
	r := newRand(21)
	for range 25 {
		m := randMotor(r)
		rot := randRotor(r)
		a := randPoint(r)

		m44, m34 := m.Mat4x4(), m.Mat3x4()
		assertApprox(t, m.ApplyPoint(a), m44.ApplyPoint(a), "motor Mat4x4")
		assertApprox(t, m.ApplyPoint(a), m34.ApplyPoint(a), "motor Mat3x4")

		r44, r34 := rot.Mat4x4(), rot.Mat3x4()
		assertApprox(t, rot.ApplyPoint(a), r44.ApplyPoint(a), "rotor Mat4x4")
		assertApprox(t, rot.ApplyPoint(a), r34.ApplyPoint(a), "rotor Mat3x4")
	}
}

func TestMat4x4Unnormalized(t *testing.T) {
	m := kln.NewRotor(0.5, 1, 2, 3).MulTranslator(kln.NewTranslator(2, 0, 1, 1)).Scale(2)
	m44 := m.Mat4x4()
	a := kln.NewPoint(1, -2, 0.5)
	assertApprox(t, m.ApplyPoint(a).Normalized(), m44.ApplyPoint(a).Normalized(), "scaled motor")
}

func TestMat4x4Composes(t *testing.T) {
	r := newRand(22)
	for range 10 {
		m, n := randMotor(r), randMotor(r)
		var got mat.Dense
		got.Mul(dense(m.Mat4x4()), dense(n.Mat4x4()))
		want := dense(m.Mul(n).Mat4x4())
		assert.True(t, mat.EqualApprox(want, &got, 1e-4), "M(mn) != M(m)M(n)\nwant %v\n got %v",
			mat.Formatted(want), mat.Formatted(&got))
	}
}

// A rotor (w, x, y, z) rotates like the unit quaternion (w, -x, -y, -z).
func TestRotorMatchesQuaternion(t *testing.T) {
	r := newRand(23)
	for range 25 {
		rot := randRotor(r)
		q := quat.Number{
			Real: float64(rot.Scalar()),
			Imag: -float64(rot.E23()),
			Jmag: -float64(rot.E31()),
			Kmag: -float64(rot.E12()),
		}
		a := randPoint(r)
		v := quat.Number{Imag: float64(a.X()), Jmag: float64(a.Y()), Kmag: float64(a.Z())}
		w := quat.Mul(quat.Mul(q, v), quat.Conj(q))
		got := rot.ApplyPoint(a)
		assert.InDelta(t, w.Imag, got.X(), 1e-4)
		assert.InDelta(t, w.Jmag, got.Y(), 1e-4)
		assert.InDelta(t, w.Kmag, got.Z(), 1e-4)
	}
}

// dualQuat maps a motor to the dual quaternion composing the same way.
func dualQuat(m kln.Motor) dualquat.Number {
	return dualquat.Number{
		Real: quat.Number{
			Real: float64(m.Scalar()),
			Imag: -float64(m.E23()),
			Jmag: -float64(m.E31()),
			Kmag: -float64(m.E12()),
		},
		Dual: quat.Number{
			Real: float64(m.E0123()),
			Imag: float64(m.E01()),
			Jmag: float64(m.E02()),
			Kmag: float64(m.E03()),
		},
	}
}

func TestMotorMatchesDualQuaternion(t *testing.T) {
	r := newRand(24)
	for range 25 {
		m, n := randMotor(r), randMotor(r)
		want := dualquat.Mul(dualQuat(m), dualQuat(n))
		got := dualQuat(m.Mul(n))
		assertApprox(t, want, got, "dual quaternion product")
	}
}
