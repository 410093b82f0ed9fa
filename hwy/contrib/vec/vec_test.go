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
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/cramer/simd-go/hwy"
)

// Tolerance constants for floating point comparison
const (
	epsilon32 = float32(1e-6)
	epsilon64 = float64(1e-12)
)

// relClose32 checks that got is within a relative epsilon of want.
func relClose32(got, want, epsilon float32) bool {
	if got == want {
		return true
	}
	diff := float64(got - want)
	return math.Abs(diff) <= float64(epsilon)*math.Max(math.Abs(float64(want)), 1)
}

func relClose64(got, want, epsilon float64) bool {
	if got == want {
		return true
	}
	return math.Abs(got-want) <= epsilon*math.Max(math.Abs(want), 1)
}

// Helper functions to generate test vectors
func makeVector32(size int, gen func(int) float32) []float32 {
	v := make([]float32, size)
	for i := range v {
		v[i] = gen(i)
	}
	return v
}

func makeVector64(size int, gen func(int) float64) []float64 {
	v := make([]float64, size)
	for i := range v {
		v[i] = gen(i)
	}
	return v
}

func randomVector64(r *rand.Rand, size int) []float64 {
	return makeVector64(size, func(int) float64 { return r.Float64()*200 - 100 })
}

func randomVector32(r *rand.Rand, size int) []float32 {
	return makeVector32(size, func(int) float32 { return r.Float32()*200 - 100 })
}

// boundarySizes covers empty input, sizes around every lane width the
// dispatcher can pick and sizes around the 4x unrolled stride.
func boundarySizes() []int {
	sizes := []int{0, 1, 2, 3}
	for _, lanes := range []int{2, 4, 8, 16} {
		for _, n := range []int{lanes, lanes * 4} {
			sizes = append(sizes, n-1, n, n+1)
		}
	}
	return append(sizes, 100, 1000, 1023)
}

// ============================================================================
// Norm Tests
// ============================================================================

func TestBaseSquaredNorm(t *testing.T) {
	tests := []struct {
		name string
		v    []float32
		want float32
	}{
		{"empty", []float32{}, 0},
		{"single", []float32{3}, 9},
		{"unit vector x", []float32{1, 0, 0}, 1},
		{"3-4-5 triangle", []float32{3, 4}, 25},
		{"zero vector", []float32{0, 0, 0, 0}, 0},
		{"mixed signs", []float32{3, -4}, 25},
		{"negative zero", []float32{float32(math.Copysign(0, -1)), 0}, 0},

		// SIMD boundary cases - testing tail handling
		{"len 7", makeVector32(7, func(i int) float32 { return 1 }), 7},
		{"len 8", makeVector32(8, func(i int) float32 { return 1 }), 8},
		{"len 9", makeVector32(9, func(i int) float32 { return 1 }), 9},
		{"len 15", makeVector32(15, func(i int) float32 { return 1 }), 15},
		{"len 16", makeVector32(16, func(i int) float32 { return 1 }), 16},
		{"len 17", makeVector32(17, func(i int) float32 { return 1 }), 17},
		{"len 65", makeVector32(65, func(i int) float32 { return 1 }), 65},

		{"large values", []float32{1000, 2000, 3000}, 1000*1000 + 2000*2000 + 3000*3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseSquaredNorm(tt.v)
			if !relClose32(got, tt.want, epsilon32) {
				t.Errorf("BaseSquaredNorm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNorm2_Zeros(t *testing.T) {
	for _, n := range boundarySizes() {
		if got := Norm2(make([]float32, n), n); got != 0 {
			t.Errorf("Norm2(zeros[%d]) float32 = %v, want 0", n, got)
		}
		if got := Norm2(make([]float64, n), n); got != 0 {
			t.Errorf("Norm2(zeros[%d]) float64 = %v, want 0", n, got)
		}
	}
}

func TestNorm2_Constant(t *testing.T) {
	for _, n := range boundarySizes() {
		for _, v := range []float64{3, -0.5, 1e-3} {
			buf64 := makeVector64(n, func(int) float64 { return v })
			want64 := math.Abs(v) * math.Sqrt(float64(n))
			if got := Norm2(buf64, n); !relClose64(got, want64, 1e-12) {
				t.Errorf("Norm2(%d x %v) float64 = %v, want %v", n, v, got, want64)
			}

			buf32 := makeVector32(n, func(int) float32 { return float32(v) })
			want32 := float32(math.Abs(v) * math.Sqrt(float64(n)))
			if got := Norm2(buf32, n); !relClose32(got, want32, 1e-5) {
				t.Errorf("Norm2(%d x %v) float32 = %v, want %v", n, v, got, want32)
			}
		}
	}
}

func TestNorm2_Prefix(t *testing.T) {
	buf := []float64{3, 4, 100, 100}
	if got := Norm2(buf, 2); got != 5 {
		t.Errorf("Norm2(buf, 2) = %v, want 5", got)
	}
	if got := Norm2(buf, 0); got != 0 {
		t.Errorf("Norm2(buf, 0) = %v, want 0", got)
	}
}

func TestNorm2_PanicsWhenCountExceedsBuffer(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Norm2 with n > len(buf) should panic")
		}
	}()
	Norm2([]float32{1, 2}, 3)
}

func TestNorm2_SpecialValues(t *testing.T) {
	for _, n := range []int{1, 5, 17, 64} {
		buf := makeVector64(n, func(i int) float64 { return float64(i) })
		buf[n-1] = math.NaN()
		if got := Norm2(buf, n); !math.IsNaN(got) {
			t.Errorf("Norm2 with NaN (n=%d) = %v, want NaN", n, got)
		}

		buf[n-1] = math.Inf(-1)
		if got := Norm2(buf, n); !math.IsInf(got, 1) {
			t.Errorf("Norm2 with -Inf (n=%d) = %v, want +Inf", n, got)
		}
	}
}

func TestNorm2_MatchesScalar(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range boundarySizes() {
		v64 := randomVector64(r, n)
		if got, want := BaseNorm2(v64), ScalarNorm2(v64); !relClose64(got, want, epsilon64) {
			t.Errorf("n=%d: BaseNorm2 = %v, ScalarNorm2 = %v", n, got, want)
		}
		v32 := randomVector32(r, n)
		if got, want := BaseNorm2(v32), ScalarNorm2(v32); !relClose32(got, want, 1e-5) {
			t.Errorf("n=%d: BaseNorm2 float32 = %v, ScalarNorm2 = %v", n, got, want)
		}
	}
}

func TestScaledNorm2(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
		want float64
	}{
		{"empty", nil, 0},
		{"zeros", []float64{0, 0, 0}, 0},
		{"3-4-5", []float64{3, 4}, 5},
		{"overflowing squares", []float64{3e200, 4e200}, 5e200},
		{"underflowing squares", []float64{3e-200, -4e-200}, 5e-200},
		{"subnormal", []float64{5e-324, 0}, 5e-324},
		{"long tail", makeVector64(37, func(int) float64 { return 2e300 }), 2e300 * math.Sqrt(37)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaledNorm2(tt.v, len(tt.v)); !relClose64(got, tt.want, 1e-12) {
				t.Errorf("ScaledNorm2() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := BaseNorm2([]float64{3e200, 4e200}); !math.IsInf(got, 1) {
		t.Errorf("BaseNorm2 on overflowing input = %v, expected +Inf", got)
	}
	if got := ScaledNorm2([]float64{1, math.Inf(1)}, 2); !math.IsInf(got, 1) {
		t.Errorf("ScaledNorm2 with +Inf = %v, want +Inf", got)
	}
	if got := ScaledNorm2([]float64{1, math.NaN(), 2}, 3); !math.IsNaN(got) {
		t.Errorf("ScaledNorm2 with NaN = %v, want NaN", got)
	}
	if got := ScaledNorm2([]float32{3e30, 4e30}, 2); !relClose32(got, 5e30, 1e-6) {
		t.Errorf("ScaledNorm2 float32 = %v, want 5e30", got)
	}
}

func TestScaledNorm2_MaxInTail(t *testing.T) {
	for _, n := range boundarySizes() {
		if n == 0 {
			continue
		}
		// Only the last element is large, so the scale must come from the
		// partial final vector whenever n is not a multiple of the lane count.
		v := makeVector64(n, func(int) float64 { return 1 })
		v[n-1] = -4e200
		want := 4e200
		if got := ScaledNorm2(v, n); !relClose64(got, want, 1e-12) {
			t.Errorf("n=%d: ScaledNorm2 = %v, want %v", n, got, want)
		}

		v32 := makeVector32(n, func(int) float32 { return 0 })
		v32[n-1] = 3e30
		if got := ScaledNorm2(v32, n); !relClose32(got, 3e30, 1e-6) {
			t.Errorf("n=%d: ScaledNorm2 float32 = %v, want 3e30", n, got)
		}
	}
}

// ============================================================================
// L1 Distance Tests
// ============================================================================

func TestBaseL1Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float32
	}{
		{"empty", []float32{}, []float32{}, 0},
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"simple", []float32{1, 2, 3}, []float32{4, 0, 3}, 5},
		{"negative", []float32{-1, -2}, []float32{1, 2}, 6},
		{"signed zeros", []float32{float32(math.Copysign(0, -1))}, []float32{0}, 0},
		{"len 17", makeVector32(17, func(i int) float32 { return 1 }), make([]float32, 17), 17},
		{"len 64", makeVector32(64, func(i int) float32 { return float32(i) }), make([]float32, 64), 63 * 64 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseL1Distance(tt.a, tt.b); !relClose32(got, tt.want, epsilon32) {
				t.Errorf("BaseL1Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestL1Distance_Identity(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range boundarySizes() {
		a := randomVector64(r, n)
		if got := L1Distance(a, a, n); got != 0 {
			t.Errorf("L1Distance(a, a, %d) = %v, want 0", n, got)
		}
		a32 := randomVector32(r, n)
		if got := L1Distance(a32, a32, n); got != 0 {
			t.Errorf("L1Distance(a32, a32, %d) = %v, want 0", n, got)
		}
	}
}

func TestL1Distance_Symmetry(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for _, n := range boundarySizes() {
		a, b := randomVector64(r, n), randomVector64(r, n)
		if ab, ba := L1Distance(a, b, n), L1Distance(b, a, n); ab != ba {
			t.Errorf("n=%d: L1Distance(a,b) = %v, L1Distance(b,a) = %v", n, ab, ba)
		}
		a32, b32 := randomVector32(r, n), randomVector32(r, n)
		if ab, ba := L1Distance(a32, b32, n), L1Distance(b32, a32, n); ab != ba {
			t.Errorf("n=%d: float32 L1Distance(a,b) = %v, L1Distance(b,a) = %v", n, ab, ba)
		}
	}
}

func TestL1Distance_MatchesScalar(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for _, n := range boundarySizes() {
		a, b := randomVector64(r, n), randomVector64(r, n)
		if got, want := BaseL1Distance(a, b), ScalarL1Distance(a, b); !relClose64(got, want, epsilon64) {
			t.Errorf("n=%d: BaseL1Distance = %v, ScalarL1Distance = %v", n, got, want)
		}
	}
}

func TestL1Distance_NaN(t *testing.T) {
	a := makeVector64(33, func(i int) float64 { return float64(i) })
	b := makeVector64(33, func(i int) float64 { return 0 })
	b[20] = math.NaN()
	if got := L1Distance(a, b, len(a)); !math.IsNaN(got) {
		t.Errorf("L1Distance with NaN = %v, want NaN", got)
	}
}

// ============================================================================
// ApproxEqual Tests
// ============================================================================

func TestApproxEqual_Formula(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name           string
		a, b           float64
		relTol, absTol float64
		want           bool
	}{
		{"exact", 1, 1, 0, 0, true},
		{"abs boundary", 1, 1.5, 0, 0.5, true},
		{"abs just outside", 1, 1.5, 0, 0.49, false},
		{"rel boundary", 100, 110, 0.1, 0, true},
		{"rel just outside", 100, 110, 0.09, 0, false},
		{"rel uses larger magnitude", 10, 11, 0.095, 0, true},
		{"abs dominates rel", 0, 1e-9, 0.5, 1e-8, true},
		{"rel dominates abs", 1e6, 1e6 + 1, 1e-5, 1e-9, true},
		{"signed zeros", math.Copysign(0, -1), 0, 0, 0, true},
		{"opposite signs", -1, 1, 0.5, 0, false},
		{"relTol one, opposite signs", -1, 1, 1, 0, false},
		{"NaN left", math.NaN(), 1, 1, 1, false},
		{"NaN both", math.NaN(), math.NaN(), 1, 1, false},
		{"equal infinities", inf, inf, 0, 0, true},
		{"opposite infinities", inf, -inf, 0, 1, false},
		{"infinity vs finite", inf, 1, 0, 1e300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScalarApproxEqual([]float64{tt.a}, []float64{tt.b}, tt.relTol, tt.absTol); got != tt.want {
				t.Errorf("ScalarApproxEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}

			// Place the pair at every lane position of a vector group.
			n := 4 * hwy.MaxLanes[float64]()
			for pos := range n {
				a := makeVector64(n, func(int) float64 { return 7 })
				b := makeVector64(n, func(int) float64 { return 7 })
				a[pos], b[pos] = tt.a, tt.b
				if got := BaseApproxEqual(a, b, tt.relTol, tt.absTol); got != tt.want {
					t.Fatalf("BaseApproxEqual with pair at %d = %v, want %v", pos, got, tt.want)
				}
			}
		})
	}
}

func TestApproxEqual_Reflexive(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for _, n := range boundarySizes() {
		a := randomVector64(r, n)
		if n > 2 {
			a[1] = math.Inf(1)
			a[2] = math.Copysign(0, -1)
		}
		if !ApproxEqual(a, a, n, 0, 0) {
			t.Errorf("ApproxEqual(a, a, %d, 0, 0) = false", n)
		}
		a32 := randomVector32(r, n)
		if !ApproxEqual(a32, a32, n, 0, 0) {
			t.Errorf("ApproxEqual(a32, a32, %d, 0, 0) = false", n)
		}
	}
}

func TestApproxEqual_Empty(t *testing.T) {
	if !ApproxEqual([]float32{}, []float32{}, 0, 0, 0) {
		t.Error("ApproxEqual on empty buffers should be true")
	}
	if !ApproxEqual([]float64{1}, []float64{2}, 0, 0, 0) {
		t.Error("ApproxEqual with n = 0 should ignore buffer contents")
	}
}

func TestApproxEqual_RelTolOne(t *testing.T) {
	// With relTol = 1 and matching signs |a-b| <= max(|a|,|b|) always holds.
	r := rand.New(rand.NewPCG(11, 12))
	for _, n := range boundarySizes() {
		a := makeVector64(n, func(int) float64 { return r.Float64()*1e3 + 1e-3 })
		b := makeVector64(n, func(int) float64 { return r.Float64()*1e3 + 1e-3 })
		if r.IntN(2) == 0 {
			for i := range a {
				a[i], b[i] = -a[i], -b[i]
			}
		}
		if !ApproxEqual(a, b, n, 1, 0) {
			t.Errorf("ApproxEqual(relTol=1) n=%d = false, want true", n)
		}
	}
}

func TestApproxEqual_NaNAlwaysFails(t *testing.T) {
	for _, n := range []int{1, 3, 8, 16, 33} {
		for pos := range n {
			a := makeVector32(n, func(i int) float32 { return float32(i) })
			a[pos] = float32(math.NaN())
			if ApproxEqual(a, a, n, 1, 1) {
				t.Fatalf("ApproxEqual with NaN at %d of %d = true", pos, n)
			}
		}
	}
}

func TestApproxEqual_MatchesScalar(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	for _, n := range boundarySizes() {
		for trial := range 20 {
			a := randomVector64(r, n)
			b := make([]float64, n)
			copy(b, a)
			if n > 0 && trial%2 == 0 {
				i := r.IntN(n)
				b[i] += 1e-3 * float64(trial)
			}
			relTol, absTol := 1e-6, 1e-9*float64(trial)
			got := ApproxEqual(a, b, n, relTol, absTol)
			want := ScalarApproxEqual(a, b, relTol, absTol)
			if got != want {
				t.Fatalf("n=%d trial=%d: ApproxEqual = %v, ScalarApproxEqual = %v", n, trial, got, want)
			}
		}
	}
}

func TestFirstMismatch(t *testing.T) {
	n := 50
	a := makeVector64(n, func(i int) float64 { return float64(i) })
	b := makeVector64(n, func(i int) float64 { return float64(i) })

	if got := FirstMismatch(a, b, n, 0, 0); got != -1 {
		t.Errorf("FirstMismatch on equal buffers = %d, want -1", got)
	}
	for _, pos := range []int{0, 1, 7, 16, 33, 49} {
		b2 := append([]float64(nil), b...)
		b2[pos] += 1
		b2[n-1] += 1
		if got := FirstMismatch(a, b2, n, 0, 0.5); got != pos {
			t.Errorf("FirstMismatch = %d, want %d", got, pos)
		}
		if ApproxEqual(a, b2, n, 0, 0.5) {
			t.Errorf("ApproxEqual with mismatch at %d = true", pos)
		}
	}
}

// ============================================================================
// Benchmarks
// ============================================================================

func BenchmarkNorm2(b *testing.B) {
	for _, size := range []int{16, 1024, 65536} {
		v := makeVector64(size, func(i int) float64 { return float64(i%17) * 0.25 })
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for b.Loop() {
				_ = Norm2(v, size)
			}
		})
	}
}

func BenchmarkNorm2_Scalar(b *testing.B) {
	v := makeVector64(65536, func(i int) float64 { return float64(i%17) * 0.25 })
	for b.Loop() {
		_ = ScalarNorm2(v)
	}
}

func BenchmarkL1Distance(b *testing.B) {
	size := 65536
	x := makeVector32(size, func(i int) float32 { return float32(i % 13) })
	y := makeVector32(size, func(i int) float32 { return float32(i % 7) })
	b.SetBytes(int64(size * 8))
	for b.Loop() {
		_ = L1Distance(x, y, size)
	}
}

func BenchmarkApproxEqual(b *testing.B) {
	size := 65536
	x := makeVector64(size, func(i int) float64 { return float64(i) })
	y := makeVector64(size, func(i int) float64 { return float64(i) + 1e-9 })
	b.SetBytes(int64(size * 16))
	for b.Loop() {
		_ = ApproxEqual(x, y, size, 1e-6, 0)
	}
}
