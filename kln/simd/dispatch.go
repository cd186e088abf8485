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
	"os"
	"runtime"
	"strconv"
)

// Level identifies the widest 128-bit instruction set the partition
// operations could be lowered to on this CPU.
type Level int

const (
	// LevelScalar means no usable SIMD unit, or KLN_NO_SIMD is set.
	LevelScalar Level = iota

	// LevelSSE41 is x86-64 with SSE4.1 (the blend and dpps instructions).
	LevelSSE41

	// LevelAVX is x86-64 with AVX and FMA.
	LevelAVX

	// LevelNEON is arm64 with Advanced SIMD.
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE41:
		return "sse4.1"
	case LevelAVX:
		return "avx"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is set by init() in dispatch_*.go files.
var currentLevel Level

// features lists the detected CPU features relevant to partition math.
// Set by init() in dispatch_*.go files.
var features []string

// RuntimeInfo describes the detected capabilities.
type RuntimeInfo struct {
	Arch        string
	Level       Level
	Features    []string
	Accelerated bool
}

// CurrentLevel returns the detected level.
func CurrentLevel() Level {
	return currentLevel
}

// Accelerated reports whether batch code should take vectorized paths.
func Accelerated() bool {
	return currentLevel != LevelScalar
}

// Info returns a snapshot of the runtime capabilities.
func Info() RuntimeInfo {
	return RuntimeInfo{
		Arch:        runtime.GOARCH,
		Level:       currentLevel,
		Features:    append([]string(nil), features...),
		Accelerated: Accelerated(),
	}
}

// NoSimdEnv checks if the KLN_NO_SIMD environment variable is set.
// When set, batch transforms use the per-element scalar path regardless of
// CPU capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("KLN_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
