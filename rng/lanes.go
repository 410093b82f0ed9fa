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

package rng

import "math/bits"

// u64x8 holds one 64-bit word per generator lane. Its methods are written as
// fixed-length loops over arrays so the compiler can keep them in registers
// and unroll them.
type u64x8 [Lanes]uint64

func (v u64x8) add(o u64x8) u64x8 {
	for l := range v {
		v[l] += o[l]
	}
	return v
}

func (v u64x8) addScalar(x uint64) u64x8 {
	for l := range v {
		v[l] += x
	}
	return v
}

func (v u64x8) xor(o u64x8) u64x8 {
	for l := range v {
		v[l] ^= o[l]
	}
	return v
}

func (v u64x8) shl(n uint) u64x8 {
	for l := range v {
		v[l] <<= n
	}
	return v
}

func (v u64x8) shr(n uint) u64x8 {
	for l := range v {
		v[l] >>= n
	}
	return v
}

func (v u64x8) rotl(n int) u64x8 {
	for l := range v {
		v[l] = bits.RotateLeft64(v[l], n)
	}
	return v
}

func (v u64x8) mulScalar(x uint64) u64x8 {
	for l := range v {
		v[l] *= x
	}
	return v
}
