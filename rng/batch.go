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

const (
	// Lanes is the number of independent generator lanes stepped together.
	Lanes = 8

	// Rounds is the number of lock-step rounds per batch.
	Rounds = 256

	// BatchSize is the number of outputs produced by one Generate call.
	BatchSize = Lanes * Rounds

	// SFC64SeedLength is the number of seed words SFC64 consumes.
	SFC64SeedLength = Lanes

	// XorShift1024SeedLength is the number of seed words XorShift1024
	// consumes: a ring of sixteen words for every lane.
	XorShift1024SeedLength = Lanes * xorWords
)

// Batcher is a generator that fills buffers one batch at a time.
type Batcher interface {
	// Generate writes BatchSize outputs to dst[:BatchSize].
	Generate(dst []uint64) error
}

// laneStepper advances every lane by one step and reports each lane's output.
type laneStepper interface {
	step(out *u64x8)
}

// fillBatch runs Rounds lock-step rounds of s and interleaves the lane
// outputs into dst: dst[r*Lanes+l] is the output of lane l at round r.
// dst must hold at least BatchSize words.
func fillBatch(s laneStepper, dst []uint64) {
	_ = dst[BatchSize-1]
	for r := range Rounds {
		s.step((*u64x8)(dst[r*Lanes : (r+1)*Lanes]))
	}
}

func checkBatch(dst []uint64) error {
	if len(dst) < BatchSize {
		return &ShortBufferError{Len: len(dst), Need: BatchSize}
	}
	return nil
}

// checkSeed validates the first need words of seed: the slice must be long
// enough and none of the words may be zero.
func checkSeed(seed []uint64, need int) error {
	if len(seed) < need {
		return &SeedLengthError{Len: len(seed), Need: need}
	}
	for i, w := range seed[:need] {
		if w == 0 {
			return &DegenerateSeedError{Index: i}
		}
	}
	return nil
}
