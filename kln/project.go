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

// Orthogonal projections. Each is built from inner products and meets:
// projecting a onto a flat b that contains lower-grade elements is
// (a | b) ^ b, and onto one of lower grade is (a | b) | b. The results carry
// the weight of the construction and are not normalized.

// ProjectPointOntoPlane returns the foot of the perpendicular from a to p.
func ProjectPointOntoPlane(a Point, p Plane) Point {
	return a.DotPlane(p).MeetPlane(p)
}

// ProjectPointOntoLine returns the point of l closest to a.
func ProjectPointOntoLine(a Point, l Line) Point {
	return a.DotLine(l).MeetLine(l)
}

// ProjectLineOntoPlane returns the orthogonal projection of l into p.
func ProjectLineOntoPlane(l Line, p Plane) Line {
	return l.DotPlane(p).Meet(p)
}

// ProjectLineOntoPoint returns the line through a parallel to l.
func ProjectLineOntoPoint(l Line, a Point) Line {
	return l.DotPoint(a).DotPoint(a)
}

// ProjectPlaneOntoPoint returns the plane through a parallel to p.
func ProjectPlaneOntoPoint(p Plane, a Point) Plane {
	return p.DotPoint(a).DotPoint(a)
}

// ProjectPlaneOntoLine returns the plane through l whose orientation is
// closest to p's.
func ProjectPlaneOntoLine(p Plane, l Line) Plane {
	return p.DotLine(l).DotLine(l)
}
