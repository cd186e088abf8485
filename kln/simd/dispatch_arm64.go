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

//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = LevelScalar
		return
	}
	// Advanced SIMD is mandatory on arm64, but x/sys/cpu still reports it.
	if cpu.ARM64.HasASIMD {
		features = append(features, "asimd")
		currentLevel = LevelNEON
	}
	if cpu.ARM64.HasFP {
		features = append(features, "fp")
	}
}
