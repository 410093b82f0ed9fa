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

// BaseSquaredNorm computes the sum of squares Σ(v[i] * v[i]) using hwy
// primitives.
//
// Returns 0 if the slice is empty.
//
// Four vector accumulators hold partial sums; after the strided pass they are
// combined and reduced horizontally, then the len(v)%lanes tail is added
// into the same scalar.
func BaseSquaredNorm[T hwy.Floats](v []T) T {
	n := len(v)
	if n == 0 {
		return 0
	}

	sum0 := hwy.Zero[T]()
	sum1 := hwy.Zero[T]()
	sum2 := hwy.Zero[T]()
	sum3 := hwy.Zero[T]()
	lanes := sum0.NumLanes()

	var i int
	stride := lanes * 4
	for i = 0; i+stride <= n; i += stride {
		v0, v1, v2, v3 := hwy.Load4(v[i:])
		sum0 = hwy.MulAdd(v0, v0, sum0)
		sum1 = hwy.MulAdd(v1, v1, sum1)
		sum2 = hwy.MulAdd(v2, v2, sum2)
		sum3 = hwy.MulAdd(v3, v3, sum3)
	}

	// Remaining full vectors
	for ; i+lanes <= n; i += lanes {
		va := hwy.Load(v[i:])
		sum0 = hwy.MulAdd(va, va, sum0)
	}

	sum0 = hwy.Add(sum0, sum1)
	sum2 = hwy.Add(sum2, sum3)
	sum0 = hwy.Add(sum0, sum2)
	result := hwy.ReduceSum(sum0)

	for ; i < n; i++ {
		result += v[i] * v[i]
	}

	return result
}

// BaseNorm2 computes the Euclidean norm Sqrt(Σ(v[i] * v[i])).
//
// The square root is taken once, after the full summation. NaN and Inf
// elements propagate by ordinary floating-point rules.
//
// Example:
//
//	v := []float32{3, 4}
//	result := BaseNorm2(v)  // 5
func BaseNorm2[T hwy.Floats](v []T) T {
	return sqrt(BaseSquaredNorm(v))
}

// BaseScaledNorm2 computes the Euclidean norm without overflow or underflow in
// the intermediate sum of squares.
//
// A first vector pass finds scale = max|v[i]|; the second pass accumulates
// (v[i]/scale)², and the result is scale * Sqrt(sum). Values whose squares
// would overflow T (for example 1e200 in float64) still produce a finite
// result.
func BaseScaledNorm2[T hwy.Floats](v []T) T {
	n := len(v)
	if n == 0 {
		return 0
	}

	maxAbs := hwy.Zero[T]()
	lanes := maxAbs.NumLanes()
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		maxAbs = hwy.Max(maxAbs, hwy.Abs(hwy.Load(v[i:])))
	}
	// Masked-off lanes load as zero and cannot raise the max.
	if i < n {
		tail := hwy.MaskLoad(hwy.TailMask[T](n-i), v[i:])
		maxAbs = hwy.Max(maxAbs, hwy.Abs(tail))
	}
	scale := hwy.ReduceMax(maxAbs)

	if scale == 0 {
		// All zeros, or NaNs hidden from the max: let the plain sum decide.
		return BaseNorm2(v)
	}
	if isInf(scale) {
		return BaseNorm2(v)
	}

	// Divide rather than multiply by 1/scale: the reciprocal of a subnormal
	// scale overflows.
	divisor := hwy.Set(scale)
	sum := hwy.Zero[T]()
	for i = 0; i+lanes <= n; i += lanes {
		scaled := hwy.Div(hwy.Load(v[i:]), divisor)
		sum = hwy.MulAdd(scaled, scaled, sum)
	}
	result := hwy.ReduceSum(sum)
	for ; i < n; i++ {
		x := v[i] / scale
		result += x * x
	}

	return scale * sqrt(result)
}
