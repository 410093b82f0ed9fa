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

// Package vec provides SIMD reductions over float32 and float64 slices:
// Euclidean norm, L1 distance and tolerance-based approximate equality.
//
// Every kernel exists in three layers:
//
//   - BaseXxx walks the slice in strides of hwy.MaxLanes[T](), keeps partial
//     results in vector accumulators, reduces them horizontally and finishes
//     the remaining len%lanes elements with a scalar tail.
//   - ScalarXxx is the left-to-right reference definition.
//   - Xxx takes a buffer plus an explicit element count and picks one of the
//     two based on the dispatch level.
//
// Vector accumulation adds elements in a different order than a plain loop,
// so Norm2 and L1Distance may differ from their scalar definitions in the
// last few ulps. ApproxEqual is exact: both paths test the same predicate.
//
// Example:
//
//	v := []float32{3, 4}
//	vec.Norm2(v, len(v)) // 5
package vec
