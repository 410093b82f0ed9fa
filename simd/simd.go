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

// Package simd exposes the vector kernels behind argument checks.
//
// The kernels in hwy/contrib/vec trust their callers: a count larger than
// the buffer panics and a negative tolerance silently changes the meaning of
// a comparison. The functions here validate count, buffer lengths and
// tolerances first and return an error instead, then run the same kernels.
package simd

import (
	"errors"
	"fmt"
	"math"

	"github.com/cramer/simd-go/hwy"
	"github.com/cramer/simd-go/hwy/contrib/vec"
)

var (
	// ErrInvalidCount is returned for a negative element count.
	ErrInvalidCount = errors.New("simd: negative count")

	// ErrShortBuffer is returned when a buffer holds fewer elements than
	// the requested count.
	ErrShortBuffer = errors.New("simd: buffer shorter than count")

	// ErrInvalidTolerance is returned for a negative, infinite or NaN
	// tolerance.
	ErrInvalidTolerance = errors.New("simd: tolerance must be finite and non-negative")
)

func checkCount(count int, lens ...int) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	for _, n := range lens {
		if n < count {
			return fmt.Errorf("%w: have %d elements, count is %d", ErrShortBuffer, n, count)
		}
	}
	return nil
}

func checkTolerance[T hwy.Floats](name string, tol T) error {
	if tol < 0 || math.IsNaN(float64(tol)) || math.IsInf(float64(tol), 0) {
		return fmt.Errorf("%w: %s = %v", ErrInvalidTolerance, name, tol)
	}
	return nil
}

// L2Norm returns the Euclidean norm of buf[:count].
func L2Norm[T hwy.Floats](buf []T, count int) (T, error) {
	if err := checkCount(count, len(buf)); err != nil {
		return 0, err
	}
	return vec.Norm2(buf, count), nil
}

// ScaledL2Norm returns the Euclidean norm of buf[:count], scaling by the
// largest magnitude so that very large or very small values neither
// overflow nor underflow.
func ScaledL2Norm[T hwy.Floats](buf []T, count int) (T, error) {
	if err := checkCount(count, len(buf)); err != nil {
		return 0, err
	}
	return vec.ScaledNorm2(buf, count), nil
}

// L1Distance returns the sum of |a[i]-b[i]| over the first count elements.
func L1Distance[T hwy.Floats](a, b []T, count int) (T, error) {
	if err := checkCount(count, len(a), len(b)); err != nil {
		return 0, err
	}
	return vec.L1Distance(a, b, count), nil
}

// ApproxEqual reports whether every element pair in the first count
// elements satisfies
//
//	a[i] == b[i] || |a[i]-b[i]| <= max(absTol, relTol*max(|a[i]|, |b[i]|))
//
// NaN never compares equal. An empty range is equal.
func ApproxEqual[T hwy.Floats](a, b []T, count int, relTol, absTol T) (bool, error) {
	if err := checkCount(count, len(a), len(b)); err != nil {
		return false, err
	}
	if err := checkTolerance("relTol", relTol); err != nil {
		return false, err
	}
	if err := checkTolerance("absTol", absTol); err != nil {
		return false, err
	}
	return vec.ApproxEqual(a, b, count, relTol, absTol), nil
}

// L2NormFloat64 is L2Norm for float64 buffers.
func L2NormFloat64(buf []float64, count int) (float64, error) {
	return L2Norm(buf, count)
}

// L2NormFloat32 is L2Norm for float32 buffers.
func L2NormFloat32(buf []float32, count int) (float32, error) {
	return L2Norm(buf, count)
}

// L1DistanceFloat64 is L1Distance for float64 buffers.
func L1DistanceFloat64(a, b []float64, count int) (float64, error) {
	return L1Distance(a, b, count)
}

// L1DistanceFloat32 is L1Distance for float32 buffers.
func L1DistanceFloat32(a, b []float32, count int) (float32, error) {
	return L1Distance(a, b, count)
}

// ApproxEqualFloat64 is ApproxEqual for float64 buffers.
func ApproxEqualFloat64(a, b []float64, count int, relTol, absTol float64) (bool, error) {
	return ApproxEqual(a, b, count, relTol, absTol)
}

// ApproxEqualFloat32 is ApproxEqual for float32 buffers.
func ApproxEqualFloat32(a, b []float32, count int, relTol, absTol float32) (bool, error) {
	return ApproxEqual(a, b, count, relTol, absTol)
}
