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

	"github.com/ajroetker/go-klein/kln/kernel"
	"github.com/ajroetker/go-klein/kln/simd"
)

// logEpsilon bounds the scalar part below which a motor is treated as a
// half turn when taking its logarithm.
const logEpsilon = 1e-6

// Exp returns the motor e^l. A bivector B squares to a dual number, and
// writing B = (u + v e0123) n with n² = -1 gives
//
//	e^B = cos u - v sin u e0123 + (sin u + v cos u e0123) n
//
// where u is the rotation angle and v the translation distance, each
// halved. A line with no Euclidean part exponentiates to a translator.
func (l Line) Exp() Motor {
	a2 := simd.HiDp(l.P1, l.P1).First()
	if a2 == 0 {
		return Motor{P1: simd.Set(1, 0, 0, 0), P2: l.P2.Keep(0b1110)}
	}
	u := math32.Sqrt(a2)
	v := -simd.HiDp(l.P1, l.P2).First() / u
	inv := 1 / u
	nr := l.P1.Scale(inv)
	ni := l.P2.Scale(inv).Add(l.P1.Scale(v * inv * inv))
	sinU, cosU := math32.Sin(u), math32.Cos(u)
	p1, p2 := kernel.GpDL(sinU, v*cosU, nr, ni)
	p1[0] += cosU
	p2[0] -= v * sinU
	return Motor{P1: p1, P2: p2}
}

// Log returns the line l with e^l = m, for a normalized motor. The result
// is the screw axis scaled by half the rotation angle and half the
// translation distance. For a half turn (scalar part near zero) the angle
// is recovered from the pseudoscalar instead.
func (m Motor) Log() Line {
	a2 := simd.HiDp(m.P1, m.P1).First()
	if a2 == 0 {
		return Line{P2: m.P2.Keep(0b1110)}
	}
	s := math32.Sqrt(a2)
	p, q := m.P1[0], m.P2[0]
	t := -simd.HiDp(m.P1, m.P2).First() / s
	var u, v float32
	if math32.Abs(p) < logEpsilon {
		v = -q / s
		switch {
		case math32.Abs(v) < logEpsilon:
			u = math32.Atan2(s, p)
		case v < 0:
			u = math32.Atan2(q, -t)
		default:
			u = math32.Atan2(-q, t)
		}
	} else {
		u = math32.Atan2(s, p)
		v = t / p
	}
	inv := 1 / s
	a := m.P1.Keep(0b1110)
	nr := a.Scale(inv)
	ni := m.P2.Keep(0b1110).Add(a.Scale(t * inv)).Scale(inv)
	p1, p2 := kernel.GpDL(u, v, nr, ni)
	return Line{P1: p1, P2: p2}
}

// Exp returns the rotor e^b.
func (b Branch) Exp() Rotor {
	ang := math32.Sqrt(simd.HiDp(b.P1, b.P1).First())
	if ang == 0 {
		return IdentityRotor()
	}
	return Rotor{P1: b.P1.Scale(math32.Sin(ang) / ang).WithLane(0, math32.Cos(ang))}
}

// Log returns the branch b with e^b = r, for a normalized rotor.
func (r Rotor) Log() Branch {
	s := math32.Sqrt(simd.HiDp(r.P1, r.P1).First())
	if s == 0 {
		return Branch{}
	}
	u := math32.Atan2(s, r.P1[0])
	return Branch{P1: r.P1.Keep(0b1110).Scale(u / s)}
}

// Exp returns the translator e^l. An ideal line squares to zero, so the
// series stops after the linear term.
func (l IdealLine) Exp() Translator {
	return Translator{P2: l.P2}
}

// Log returns the ideal line l with e^l = t.
func (t Translator) Log() IdealLine {
	return IdealLine{P2: t.P2}
}

// Sqrt returns the rotor that rotates half as far as r, for a normalized r.
func (r Rotor) Sqrt() Rotor {
	r.P1[0]++
	r.Normalize()
	return r
}

// Sqrt returns the motor that moves half as far as m, for a normalized m.
func (m Motor) Sqrt() Motor {
	m.P1[0]++
	m.Normalize()
	return m
}

// Sqrt returns the translator that moves half as far as t.
func (t Translator) Sqrt() Translator {
	return Translator{P2: t.P2.Scale(0.5)}
}

// Sqrt returns the square root of b taken as a rotor. A unit branch is the
// half turn about its axis, so the result is the quarter turn
// normalize(1 + b).
func (b Branch) Sqrt() Rotor {
	r := Rotor{P1: b.P1.WithLane(0, 1)}
	r.Normalize()
	return r
}
