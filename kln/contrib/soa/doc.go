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

// Package soa transforms large batches of points and planes stored as
// structure-of-arrays: one slice per coordinate instead of one 4-wide
// partition per element.
//
// The kernels are written against github.com/ajroetker/go-highway/hwy, so
// each call processes as many elements per instruction as the CPU vector
// width allows. A motor is first lowered to the 4x4 matrix of its sandwich
// product, then applied across the coordinate slices.
//
// # Example
//
//	pts := soa.PointsOf(cloud)
//	soa.TransformPoints(m, pts, pts)
//	pts.Normalize()
//
// Batches above a few thousand elements can be split across goroutines
// with a Pool:
//
//	pool := soa.NewPool(0)
//	defer pool.Close()
//	pool.TransformPoints(m, pts, pts)
//
// Setting KLN_NO_SIMD=1 routes every call through the per-element methods
// of package kln instead.
package soa
