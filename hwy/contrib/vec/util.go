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

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"

	"github.com/cramer/simd-go/hwy"
)

// sqrt takes the square root in the precision of T; float32 never round-trips
// through float64.
func sqrt[T hwy.Floats](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

func abs[T hwy.Floats](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func isInf[T hwy.Floats](x T) bool {
	if unsafe.Sizeof(x) == 4 {
		return math32.IsInf(float32(x), 0)
	}
	return math.IsInf(float64(x), 0)
}
