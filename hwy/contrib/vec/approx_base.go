// Copyright 2025 simd-go Authors
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

package vec

import "github.com/cramer/simd-go/hwy"

// BaseApproxEqual reports whether every pair a[i], b[i] is equal within the
// tolerances:
//
//	a[i] == b[i] || |a[i] - b[i]| <= max(absTol, relTol * max(|a[i]|, |b[i]|))
//
// The scan stops at the first vector group holding a failing lane. NaN never
// compares equal, so a NaN on either side fails. Equal infinities pass through
// the a[i] == b[i] clause.
//
// If the slices have different lengths, the computation uses the minimum length.
// Returns true if either slice is empty.
func BaseApproxEqual[T hwy.Floats](a, b []T, relTol, absTol T) bool {
	n := min(len(a), len(b))

	vRel := hwy.Set(relTol)
	vAbs := hwy.Set(absTol)
	lanes := vRel.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := hwy.Load(a[i:])
		vb := hwy.Load(b[i:])
		if !hwy.AllTrue(withinTolerance(va, vb, vRel, vAbs)) {
			return false
		}
	}

	for ; i < n; i++ {
		if !scalarWithinTolerance(a[i], b[i], relTol, absTol) {
			return false
		}
	}
	return true
}

// BaseFirstMismatch returns the index of the first pair that fails the
// BaseApproxEqual predicate, or -1 when all pairs pass.
func BaseFirstMismatch[T hwy.Floats](a, b []T, relTol, absTol T) int {
	n := min(len(a), len(b))

	vRel := hwy.Set(relTol)
	vAbs := hwy.Set(absTol)
	lanes := vRel.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		ok := withinTolerance(hwy.Load(a[i:]), hwy.Load(b[i:]), vRel, vAbs)
		if idx := hwy.FindFirstFalse(ok); idx >= 0 {
			return i + idx
		}
	}

	for ; i < n; i++ {
		if !scalarWithinTolerance(a[i], b[i], relTol, absTol) {
			return i
		}
	}
	return -1
}

func withinTolerance[T hwy.Floats](va, vb, vRel, vAbs hwy.Vec[T]) hwy.Mask[T] {
	diff := hwy.Abs(hwy.Sub(va, vb))
	magnitude := hwy.Max(hwy.Abs(va), hwy.Abs(vb))
	// Max keeps vAbs when relTol*magnitude is NaN (zero times infinity).
	tol := hwy.Max(vAbs, hwy.Mul(vRel, magnitude))
	return hwy.Or(hwy.LessEqual(diff, tol), hwy.Equal(va, vb))
}
