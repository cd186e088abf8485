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

package simd

import (
	"math"
	"testing"
)

func TestFlipKeep(t *testing.T) {
	v := Set(1, 2, 3, 4)
	tests := []struct {
		name string
		got  Vec4
		want Vec4
	}{
		{"flip lane 0", v.Flip(0b0001), Set(-1, 2, 3, 4)},
		{"flip lanes 1,3", v.Flip(0b1010), Set(1, -2, 3, -4)},
		{"flip none", v.Flip(0), v},
		{"neg", v.Neg(), Set(-1, -2, -3, -4)},
		{"keep 0,3", v.Keep(0b1001), Set(1, 0, 0, 4)},
		{"keep all", v.Keep(0b1111), v},
		{"keep none", v.Keep(0), Vec4{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFlipZeroSignBit(t *testing.T) {
	z := Vec4{}.Flip(0b0001)
	if !math.Signbit(float64(z[0])) {
		t.Errorf("Flip(0) lane 0: sign bit not set")
	}
	if math.Signbit(float64(z[1])) {
		t.Errorf("Flip(0) lane 1: sign bit set")
	}
}

func TestSwizzleBroadcast(t *testing.T) {
	v := Set(10, 11, 12, 13)
	if got, want := v.Swizzle(3, 2, 1, 0), Set(13, 12, 11, 10); got != want {
		t.Errorf("Swizzle(3,2,1,0) = %v, want %v", got, want)
	}
	if got, want := v.Swizzle(0, 0, 2, 2), Set(10, 10, 12, 12); got != want {
		t.Errorf("Swizzle(0,0,2,2) = %v, want %v", got, want)
	}
	for i := range 4 {
		if got, want := v.Broadcast(i), Splat(v[i]); got != want {
			t.Errorf("Broadcast(%d) = %v, want %v", i, got, want)
		}
	}
	if got, want := v.WithLane(2, -1), Set(10, 11, -1, 13); got != want {
		t.Errorf("WithLane = %v, want %v", got, want)
	}
}

func TestDotProducts(t *testing.T) {
	a := Set(1, 2, 3, 4)
	b := Set(5, 6, 7, 8)
	if got, want := HiDp(a, b), Set(2*6+3*7+4*8, 0, 0, 0); got != want {
		t.Errorf("HiDp = %v, want %v", got, want)
	}
	if got, want := HiDpBc(a, b), Splat(2*6+3*7+4*8); got != want {
		t.Errorf("HiDpBc = %v, want %v", got, want)
	}
	if got, want := Dp(a, b), Set(70, 0, 0, 0); got != want {
		t.Errorf("Dp = %v, want %v", got, want)
	}
	if got, want := DpBc(a, b), Splat(70); got != want {
		t.Errorf("DpBc = %v, want %v", got, want)
	}
}

func TestLoadStore(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5}
	v := Load(src[1:])
	if want := Set(2, 3, 4, 5); v != want {
		t.Fatalf("Load = %v, want %v", v, want)
	}
	dst := make([]float32, 4)
	v.Add(Splat(1)).Store(dst)
	for i, want := range []float32{3, 4, 5, 6} {
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestApproxEqual(t *testing.T) {
	a := Set(1, 2, 3, 4)
	if !ApproxEqual(a, a.Add(Splat(1e-4)), 1e-3) {
		t.Error("expected approximately equal")
	}
	if ApproxEqual(a, a.WithLane(3, 4.1), 1e-3) {
		t.Error("expected lane 3 to differ")
	}
	nan := float32(math.NaN())
	if ApproxEqual(a.WithLane(0, nan), a, 1) {
		t.Error("NaN lanes must never compare equal")
	}
}

func TestApproxEqualExclusive(t *testing.T) {
	a := Set(1, 2, 3, 4)
	if ApproxEqual(a, a, 0) {
		t.Error("eps 0 must reject even identical vectors")
	}
	if ApproxEqual(a, a.WithLane(2, 3.5), 0.5) {
		t.Error("a difference equal to eps must not compare equal")
	}
	if !ApproxEqual(a, a.WithLane(2, 3.25), 0.5) {
		t.Error("a difference below eps must compare equal")
	}
}

func BenchmarkBroadcastMulAdd(b *testing.B) {
	x := Set(1, 2, 3, 4)
	y := Set(5, 6, 7, 8)
	var acc Vec4
	for i := 0; i < b.N; i++ {
		acc = acc.Add(x.Broadcast(1).Mul(y.Swizzle(1, 0, 3, 2)).Flip(0b1001))
	}
	_ = acc
}
