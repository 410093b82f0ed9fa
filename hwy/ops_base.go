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

package hwy

// This file provides the pure Go implementations of the hwy operations. Each
// operation loops over the active lanes of fixed-capacity registers, which the
// compiler keeps in place without heap allocation.

// Load creates a vector from the first MaxLanes[T]() elements of src.
// If src is shorter, the remaining lanes are absent.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	v.n = min(len(src), MaxLanes[T]())
	copy(v.data[:v.n], src)
	return v
}

// Load4 loads 4 consecutive vectors from a slice for 4x loop unrolling.
func Load4[T Lanes](src []T) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	lanes := MaxLanes[T]()
	v0 := Load(src)
	v1 := Load(src[lanes:])
	v2 := Load(src[lanes*2:])
	v3 := Load(src[lanes*3:])
	return v0, v1, v2, v3
}

// Store writes a vector's lanes to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	v.Store(dst)
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	a.n = min(a.n, b.n)
	for i := range a.n {
		a.data[i] += b.data[i]
	}
	return a
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	a.n = min(a.n, b.n)
	for i := range a.n {
		a.data[i] -= b.data[i]
	}
	return a
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	a.n = min(a.n, b.n)
	for i := range a.n {
		a.data[i] *= b.data[i]
	}
	return a
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	a.n = min(a.n, b.n)
	for i := range a.n {
		a.data[i] /= b.data[i]
	}
	return a
}

// MulAdd computes a*b + c per lane. The portable path rounds the product
// before the addition; it is not a fused multiply-add.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	c.n = min(a.n, b.n, c.n)
	for i := range c.n {
		c.data[i] += a.data[i] * b.data[i]
	}
	return c
}

// Abs computes absolute value. NaN lanes stay NaN.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	for i := range v.n {
		if v.data[i] < 0 {
			v.data[i] = -v.data[i]
		}
	}
	return v
}

// Max returns the element-wise maximum. A lane takes b only when b compares
// greater than a, so unordered (NaN) lanes of b leave a in place.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	a.n = min(a.n, b.n)
	for i := range a.n {
		if b.data[i] > a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	return a
}

// ReduceSum sums all lanes in lane order.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] > m {
			m = v.data[i]
		}
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.set(i, a.data[i] == b.data[i])
	}
	return m
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.set(i, a.data[i] <= b.data[i])
	}
	return m
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range v.n {
		m.set(i, v.data[i] != v.data[i])
	}
	return m
}

// Or combines two masks lane-wise.
func Or[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits | b.bits, n: min(a.n, b.n)}
}

// AllTrue returns true if all lanes are true.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.AllTrue()
}

// AnyTrue returns true if any lane is true.
func AnyTrue[T Lanes](mask Mask[T]) bool {
	return mask.AnyTrue()
}

// CountTrue counts true lanes in mask.
func CountTrue[T Lanes](mask Mask[T]) int {
	return mask.CountTrue()
}

// FindFirstFalse returns index of first false lane, or -1 if all are true.
func FindFirstFalse[T Lanes](mask Mask[T]) int {
	for i := range mask.n {
		if mask.bits&(1<<i) == 0 {
			return i
		}
	}
	return -1
}

// MaskLoad loads the lanes of src selected by mask; other lanes are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	v := Vec[T]{n: mask.n}
	for i := range min(mask.n, len(src)) {
		if mask.bits&(1<<i) != 0 {
			v.data[i] = src[i]
		}
	}
	return v
}
