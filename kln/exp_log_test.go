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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-klein/kln"
)

// sameMotion reports whether m and n move a handful of probe points to the
// same place, which ignores the overall sign of the motor.
func sameMotion(t *testing.T, want, got kln.Motor, msg string) {
	t.Helper()
	for _, a := range []kln.Point{
		kln.Origin(), kln.NewPoint(1, 0, 0), kln.NewPoint(0, 2, 0), kln.NewPoint(-1, 1, 3),
	} {
		assertApprox(t, want.ApplyPoint(a).Normalized(), got.ApplyPoint(a).Normalized(), msg)
	}
}

func TestMotorExpLog(t *testing.T) {
	r := newRand(11)
	for range 25 {
		m := randMotor(r)
		sameMotion(t, m, m.Log().Exp(), "exp(log(m))")

		third := m.Log().Scale(1.0 / 3).Exp()
		sameMotion(t, m, third.Mul(third).Mul(third), "cube of exp(log(m)/3)")

		s := m.Sqrt()
		sameMotion(t, m, s.Mul(s), "sqrt squared")
	}
}

func TestMotorLogHalfTurn(t *testing.T) {
	for name, m := range map[string]kln.Motor{
		"about x":              kln.NewRotor(math.Pi, 1, 0, 0).Motor(),
		"screw along the axis": kln.NewRotor(math.Pi, 1, 0, 0).MulTranslator(kln.NewTranslator(2, 1, 0, 0)),
		"off axis translation": kln.NewRotor(math.Pi, 0, 0, 1).MulTranslator(kln.NewTranslator(1, 1, 0, 0)),
		"negative screw":       kln.NewRotor(math.Pi, 0, 1, 0).MulTranslator(kln.NewTranslator(-3, 0, 1, 0)),
	} {
		t.Run(name, func(t *testing.T) {
			sameMotion(t, m, m.Log().Exp(), "exp(log(m))")
		})
	}
}

func TestMotorLogTranslation(t *testing.T) {
	m := kln.NewTranslator(2, 1, 2, 2).Motor()
	l := m.Log()
	assert.Zero(t, l.SquaredNorm())
	assertApprox(t, m, l.Exp(), "exp(log(t))")
	assertApprox(t, kln.Line{}, kln.IdentityMotor().Log(), "log(1)")
}

func TestLineExp(t *testing.T) {
	// A line through the origin exponentiates to a rotor about it.
	zAxis := kln.Origin().Join(kln.NewPoint(0, 0, 1))
	assertApprox(t, kln.NewRotor(0.8, 0, 0, 1).Motor(), zAxis.Scale(0.4).Exp(), "rotation")
	assertApprox(t, kln.IdentityMotor(), kln.Line{}.Exp(), "zero line")
}

func TestRotorExpLog(t *testing.T) {
	r := newRand(12)
	for range 25 {
		rot := randRotor(r)
		assertApprox(t, rot, rot.Log().Exp(), "exp(log(r))")
		s := rot.Sqrt()
		assertApprox(t, rot, s.Mul(s), "sqrt squared")
	}
	assertApprox(t, kln.Branch{}, kln.IdentityRotor().Log(), "log(1)")
	assertApprox(t, kln.IdentityRotor(), kln.Branch{}.Exp(), "exp(0)")
	assertApprox(t, kln.NewBranch(0, 0, 0.5), kln.NewRotor(1, 0, 0, 1).Log(), "one radian about z")
}

func TestBranchExpLog(t *testing.T) {
	r := newRand(13)
	for range 25 {
		b := kln.NewBranch(randFloat(r), randFloat(r), randFloat(r)).Normalized().Scale(float32(r.Float64() * 3))
		assertApprox(t, b, b.Exp().Log(), "log(exp(b))")
	}
	b := kln.NewBranch(0, 0.6, -0.8)
	q := b.Sqrt()
	assertApprox(t, b.Entity().AsRotor(), q.Mul(q), "quarter turn squared")
}

func TestIdealLineExpLog(t *testing.T) {
	l := kln.NewIdealLine(1, -2, 0.5)
	tr := l.Exp()
	assert.Equal(t, l, tr.Log())
	assertApprox(t, l.Line().Exp(), tr.Motor(), "ideal line as line")

	half := tr.Sqrt()
	assertApprox(t, tr, half.Mul(half), "sqrt squared")
}
