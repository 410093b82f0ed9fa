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

// The exported kernels take a buffer plus the number of elements to read.
// n must not exceed the buffer length; a larger n panics with a slice bounds
// error. Callers that need an error instead should use package simd.
//
// At the scalar dispatch level (HWY_NO_SIMD or an architecture without a
// vector unit) the left-to-right reference implementations run instead of
// the strided ones.

func useScalar() bool {
	return hwy.CurrentLevel() == hwy.DispatchScalar
}

// Norm2 returns Sqrt(Σ buf[i]²) for i in [0, n). It returns 0 for n == 0.
func Norm2[T hwy.Floats](buf []T, n int) T {
	buf = buf[:n]
	if useScalar() {
		return ScalarNorm2(buf)
	}
	return BaseNorm2(buf)
}

// SquaredNorm returns Σ buf[i]² for i in [0, n).
func SquaredNorm[T hwy.Floats](buf []T, n int) T {
	buf = buf[:n]
	if useScalar() {
		return ScalarSquaredNorm(buf)
	}
	return BaseSquaredNorm(buf)
}

// ScaledNorm2 returns the Euclidean norm of buf[:n] computed with a scaling
// pass, so inputs whose squares overflow still give a finite result.
func ScaledNorm2[T hwy.Floats](buf []T, n int) T {
	return BaseScaledNorm2(buf[:n])
}

// L1Distance returns Σ|a[i] - b[i]| for i in [0, n). Both buffers must hold
// at least n elements.
func L1Distance[T hwy.Floats](a, b []T, n int) T {
	a, b = a[:n], b[:n]
	if useScalar() {
		return ScalarL1Distance(a, b)
	}
	return BaseL1Distance(a, b)
}

// ApproxEqual reports whether a[i] and b[i] are equal within
// max(absTol, relTol*max(|a[i]|, |b[i]|)) for every i in [0, n). It returns
// true for n == 0 and false as soon as any element fails, including any NaN.
func ApproxEqual[T hwy.Floats](a, b []T, n int, relTol, absTol T) bool {
	a, b = a[:n], b[:n]
	if useScalar() {
		return ScalarApproxEqual(a, b, relTol, absTol)
	}
	return BaseApproxEqual(a, b, relTol, absTol)
}

// FirstMismatch returns the first index in [0, n) whose pair fails the
// ApproxEqual predicate, or -1.
func FirstMismatch[T hwy.Floats](a, b []T, n int, relTol, absTol T) int {
	return BaseFirstMismatch(a[:n], b[:n], relTol, absTol)
}
