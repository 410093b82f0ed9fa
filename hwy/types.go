// Package hwy provides portable SIMD vectors with runtime lane-width dispatch.
//
// A Vec holds MaxLanes[T]() elements, where the lane count follows the
// register width of the detected instruction set (16 bytes for SSE2/NEON,
// 32 for AVX2, 64 for AVX-512). Kernels written against Vec walk their input
// in strides of that width, so the same source reduces 4, 8 or 16 values per
// step depending on the machine.
//
// Basic usage:
//
//	import "github.com/cramer/simd-go/hwy"
//
//	sum := hwy.Zero[float32]()
//	lanes := hwy.MaxLanes[float32]()
//	for i := 0; i+lanes <= len(data); i += lanes {
//	    sum = hwy.Add(sum, hwy.Load(data[i:]))
//	}
//	total := hwy.ReduceSum(sum)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Integers is a constraint for the integer types that fit the lane layout.
type Integers interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// Every lane type is at least 4 bytes wide, which bounds a 64-byte register
// to 16 lanes.
type Lanes interface {
	Floats | Integers
}

// maxVecLanes is the lane capacity of a Vec: 64 bytes of 4-byte elements.
const maxVecLanes = 16

// Vec is a portable vector register. It is a value type: operations return a
// new Vec and never allocate.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data [maxVecLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's lanes to dst, truncating to len(dst).
func (v Vec[T]) Store(dst []T) {
	copy(dst, v.data[:v.n])
}

// Mask is the result of a lane-wise comparison. Bit i is set when lane i
// satisfied the comparison.
type Mask[T Lanes] struct {
	bits uint32
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

func (m Mask[T]) full() uint32 {
	return uint32(1)<<m.n - 1
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == m.full()
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for b := m.bits; b != 0; b &= b - 1 {
		count++
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<i) != 0
}

func (m *Mask[T]) set(i int, on bool) {
	if on {
		m.bits |= 1 << i
	}
}
