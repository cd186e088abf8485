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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-klein/kln"
	"github.com/ajroetker/go-klein/kln/internal/ref"
	"github.com/ajroetker/go-klein/kln/simd"
	"github.com/ajroetker/go-klein/kln/sym"
)

const eps = 1e-4

// approx compares float32 fields with a relative tolerance of 1e-4 and an
// absolute one of 1e-5, for use with cmp.Diff on the named types.
var approx = cmpopts.EquateApprox(1e-4, 1e-5)

func assertApprox(t *testing.T, want, got any, msg string) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", msg, diff)
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func randFloat(r *rand.Rand) float32 {
	return float32(r.Float64()*4 - 2)
}

func randVec(r *rand.Rand) simd.Vec4 {
	return simd.Set(randFloat(r), randFloat(r), randFloat(r), randFloat(r))
}

// randIntVec draws small integers so products stay exact in float32.
func randIntVec(r *rand.Rand) simd.Vec4 {
	var v simd.Vec4
	for i := range v {
		v[i] = float32(r.IntN(7) - 3)
	}
	return v
}

func randPoint(r *rand.Rand) kln.Point {
	return kln.NewPoint(randFloat(r), randFloat(r), randFloat(r))
}

func randPlane(r *rand.Rand) kln.Plane {
	return kln.NewPlane(randFloat(r), randFloat(r), randFloat(r), randFloat(r)).Normalized()
}

func randRotor(r *rand.Rand) kln.Rotor {
	return kln.NewRotor(float32(r.Float64()*2*math.Pi-math.Pi), randFloat(r), randFloat(r), randFloat(r)+3)
}

func randTranslator(r *rand.Rand) kln.Translator {
	return kln.NewTranslator(randFloat(r), randFloat(r), randFloat(r), randFloat(r)+3)
}

func randMotor(r *rand.Rand) kln.Motor {
	return randRotor(r).MulTranslator(randTranslator(r))
}

func randLine(r *rand.Rand) kln.Line {
	return randPoint(r).Join(randPoint(r))
}

func toRef(e kln.Entity) sym.MV {
	var parts [4]simd.Vec4
	for k := range 4 {
		parts[k] = e.Part(k)
	}
	return ref.ToMV(e.Mask(), &parts)
}

func fromRef(t *testing.T, m sym.MV) kln.Entity {
	t.Helper()
	mask, dense, err := ref.FromMV(m)
	require.NoError(t, err)
	var parts []simd.Vec4
	for k := range 4 {
		if mask&(1<<k) != 0 {
			parts = append(parts, dense[k])
		}
	}
	return kln.NewEntity(mask, parts...)
}

// sandwich returns g x ~g computed on entities.
func sandwich(g, x kln.Entity) kln.Entity {
	return g.Mul(x).Mul(g.Reverse())
}
