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

// ScalarSquaredNorm is the left-to-right definition of Σ v[i]².
func ScalarSquaredNorm[T hwy.Floats](v []T) T {
	var sum T
	for _, x := range v {
		sum += x * x
	}
	return sum
}

// ScalarNorm2 is the left-to-right definition of Sqrt(Σ v[i]²).
func ScalarNorm2[T hwy.Floats](v []T) T {
	return sqrt(ScalarSquaredNorm(v))
}

// ScalarL1Distance is the left-to-right definition of Σ|a[i] - b[i]| over the
// common length of a and b.
func ScalarL1Distance[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))
	var sum T
	for i := range n {
		sum += abs(a[i] - b[i])
	}
	return sum
}

// ScalarApproxEqual is the element-by-element definition of BaseApproxEqual.
func ScalarApproxEqual[T hwy.Floats](a, b []T, relTol, absTol T) bool {
	n := min(len(a), len(b))
	for i := range n {
		if !scalarWithinTolerance(a[i], b[i], relTol, absTol) {
			return false
		}
	}
	return true
}

func scalarWithinTolerance[T hwy.Floats](x, y, relTol, absTol T) bool {
	if x == y {
		return true
	}
	magnitude := abs(x)
	if ay := abs(y); ay > magnitude {
		magnitude = ay
	}
	tol := absTol
	if t := relTol * magnitude; t > tol {
		tol = t
	}
	return abs(x-y) <= tol
}
