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

// Package sym is a small symbolic engine for Clifford algebras. It
// multiplies basis blades for any signature (p,q,r), carries polynomial
// coefficients so products can be expanded with variables, and parses
// expressions such as
//
//	e123 & (e123 + e032)
//	(a e1 + b e2) * (c e1 + d e2)
//
// It serves as the reference the kernels in package kernel are tested
// against, and as the engine behind the klnsym REPL.
package sym
