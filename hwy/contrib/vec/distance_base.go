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

// BaseL1Distance computes the Manhattan distance Σ|a[i] - b[i]| between two
// slices, compared index by index.
//
// If the slices have different lengths, the computation uses the minimum length.
// Returns 0 if either slice is empty.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 0, 3}
//	result := BaseL1Distance(a, b)  // 3 + 2 + 0 = 5
func BaseL1Distance[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	// Use 4 accumulators for better instruction-level parallelism
	sum0 := hwy.Zero[T]()
	sum1 := hwy.Zero[T]()
	sum2 := hwy.Zero[T]()
	sum3 := hwy.Zero[T]()
	lanes := sum0.NumLanes()

	var i int
	stride := lanes * 4
	for i = 0; i+stride <= n; i += stride {
		va0, va1, va2, va3 := hwy.Load4(a[i:])
		vb0, vb1, vb2, vb3 := hwy.Load4(b[i:])

		sum0 = hwy.Add(sum0, hwy.Abs(hwy.Sub(va0, vb0)))
		sum1 = hwy.Add(sum1, hwy.Abs(hwy.Sub(va1, vb1)))
		sum2 = hwy.Add(sum2, hwy.Abs(hwy.Sub(va2, vb2)))
		sum3 = hwy.Add(sum3, hwy.Abs(hwy.Sub(va3, vb3)))
	}

	for ; i+lanes <= n; i += lanes {
		diff := hwy.Sub(hwy.Load(a[i:]), hwy.Load(b[i:]))
		sum0 = hwy.Add(sum0, hwy.Abs(diff))
	}

	sum0 = hwy.Add(sum0, sum1)
	sum2 = hwy.Add(sum2, sum3)
	sum0 = hwy.Add(sum0, sum2)
	result := hwy.ReduceSum(sum0)

	for ; i < n; i++ {
		result += abs(a[i] - b[i])
	}

	return result
}
