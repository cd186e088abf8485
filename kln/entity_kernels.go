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
	"github.com/ajroetker/go-klein/kln/kernel"
	"github.com/ajroetker/go-klein/kln/simd"
)

// The pair functions route one partition pair to its kernel and accumulate
// the kernel outputs into a dense accumulator indexed by partition. Pairs
// whose product vanishes have no case.

func gpPair(i, j int, a, b simd.Vec4, acc *[4]simd.Vec4) {
	switch i<<2 | j {
	case 0<<2 | 0:
		p1, p2 := kernel.Gp00(a, b)
		acc[1] = acc[1].Add(p1)
		acc[2] = acc[2].Add(p2)
	case 0<<2 | 1:
		p0, p3 := kernel.Gp01(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 0<<2 | 2:
		p0, p3 := kernel.Gp02(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 0<<2 | 3:
		p1, p2 := kernel.Gp03(a, b)
		acc[1] = acc[1].Add(p1)
		acc[2] = acc[2].Add(p2)
	case 1<<2 | 0:
		p0, p3 := kernel.Gp10(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 1<<2 | 1:
		acc[1] = acc[1].Add(kernel.Gp11(a, b))
	case 1<<2 | 2:
		acc[2] = acc[2].Add(kernel.Gp12(a, b))
	case 1<<2 | 3:
		p0, p3 := kernel.Gp13(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 2<<2 | 0:
		p0, p3 := kernel.Gp20(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 2<<2 | 1:
		acc[2] = acc[2].Add(kernel.Gp21(a, b))
	case 2<<2 | 3:
		p0, p3 := kernel.Gp23(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 3<<2 | 0:
		p1, p2 := kernel.Gp30(a, b)
		acc[1] = acc[1].Add(p1)
		acc[2] = acc[2].Add(p2)
	case 3<<2 | 1:
		p0, p3 := kernel.Gp31(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 3<<2 | 2:
		p0, p3 := kernel.Gp32(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 3<<2 | 3:
		p1, p2 := kernel.Gp33(a, b)
		acc[1] = acc[1].Add(p1)
		acc[2] = acc[2].Add(p2)
	}
}

func extPair(i, j int, a, b simd.Vec4, acc *[4]simd.Vec4) {
	switch i<<2 | j {
	case 0<<2 | 0:
		p1, p2 := kernel.Ext00(a, b)
		acc[1] = acc[1].Add(p1)
		acc[2] = acc[2].Add(p2)
	case 0<<2 | 1:
		p0, p3 := kernel.Ext01(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 0<<2 | 2:
		acc[3] = acc[3].Add(kernel.Ext02(a, b))
	case 0<<2 | 3:
		acc[2] = acc[2].Add(kernel.Ext03(a, b))
	case 1<<2 | 0:
		p0, p3 := kernel.Ext10(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 1<<2 | 1:
		acc[1] = acc[1].Add(kernel.Ext11(a, b))
	case 1<<2 | 2:
		acc[2] = acc[2].Add(kernel.Ext12(a, b))
	case 1<<2 | 3:
		acc[3] = acc[3].Add(kernel.Ext13(a, b))
	case 2<<2 | 0:
		acc[3] = acc[3].Add(kernel.Ext20(a, b))
	case 2<<2 | 1:
		acc[2] = acc[2].Add(kernel.Ext21(a, b))
	case 3<<2 | 0:
		acc[2] = acc[2].Add(kernel.Ext30(a, b))
	case 3<<2 | 1:
		acc[3] = acc[3].Add(kernel.Ext31(a, b))
	}
}

func dotPair(i, j int, a, b simd.Vec4, acc *[4]simd.Vec4) {
	switch i<<2 | j {
	case 0<<2 | 0:
		acc[1] = acc[1].Add(kernel.Dot00(a, b))
	case 0<<2 | 1:
		acc[0] = acc[0].Add(kernel.Dot01(a, b))
	case 0<<2 | 2:
		p0, p3 := kernel.Dot02(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 0<<2 | 3:
		p1, p2 := kernel.Dot03(a, b)
		acc[1] = acc[1].Add(p1)
		acc[2] = acc[2].Add(p2)
	case 1<<2 | 0:
		acc[0] = acc[0].Add(kernel.Dot10(a, b))
	case 1<<2 | 1:
		acc[1] = acc[1].Add(kernel.Dot11(a, b))
	case 1<<2 | 2:
		acc[2] = acc[2].Add(kernel.Dot12(a, b))
	case 1<<2 | 3:
		p0, p3 := kernel.Dot13(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 2<<2 | 0:
		p0, p3 := kernel.Dot20(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 2<<2 | 1:
		acc[2] = acc[2].Add(kernel.Dot21(a, b))
	case 2<<2 | 3:
		acc[0] = acc[0].Add(kernel.Dot23(a, b))
	case 3<<2 | 0:
		p1, p2 := kernel.Dot30(a, b)
		acc[1] = acc[1].Add(p1)
		acc[2] = acc[2].Add(p2)
	case 3<<2 | 1:
		p0, p3 := kernel.Dot31(a, b)
		acc[0] = acc[0].Add(p0)
		acc[3] = acc[3].Add(p3)
	case 3<<2 | 2:
		acc[0] = acc[0].Add(kernel.Dot32(a, b))
	case 3<<2 | 3:
		acc[1] = acc[1].Add(kernel.Dot33(a, b))
	}
}
