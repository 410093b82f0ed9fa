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

// sfcWarmup is the number of rounds discarded after seeding so the a=b=c
// starting point is mixed before the first output.
const sfcWarmup = 12

// SFC64 is an eight-lane sfc64 generator. Each lane carries its own a, b
// and c words; the step counter is shared because every lane advances in
// lock-step.
//
// The zero value is unseeded: Generate returns ErrNotSeeded until Seed
// succeeds.
type SFC64 struct {
	a, b, c u64x8
	counter uint64
	seeded  bool
}

// NewSFC64 returns a generator seeded with seed. See Seed.
func NewSFC64(seed []uint64) (*SFC64, error) {
	g := &SFC64{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed resets the generator. Lane l starts from a = b = c = seed[l] with a
// counter of one, after which twelve rounds are discarded. Words beyond
// SFC64SeedLength are ignored.
//
// A seed that is too short or contains a zero word is rejected and leaves
// the generator unchanged.
func (g *SFC64) Seed(seed []uint64) error {
	if err := checkSeed(seed, SFC64SeedLength); err != nil {
		return err
	}

	var s u64x8
	copy(s[:], seed)
	g.a, g.b, g.c = s, s, s
	g.counter = 1
	g.seeded = true

	var discard u64x8
	for range sfcWarmup {
		g.step(&discard)
	}
	return nil
}

// Generate writes the next BatchSize outputs to dst[:BatchSize].
func (g *SFC64) Generate(dst []uint64) error {
	if !g.seeded {
		return ErrNotSeeded
	}
	if err := checkBatch(dst); err != nil {
		return err
	}
	fillBatch(g, dst)
	return nil
}

func (g *SFC64) step(out *u64x8) {
	r := g.a.add(g.b).addScalar(g.counter)
	g.counter++
	g.a = g.b.xor(g.b.shr(11))
	g.b = g.c.add(g.c.shl(3))
	g.c = g.c.rotl(24).add(r)
	*out = r
}

// Lane returns a copy of lane l's current state as a single-stream
// generator. Advancing the copy does not affect g. Lane panics if l is not
// in [0, Lanes).
func (g *SFC64) Lane(l int) *SFC64Lane {
	return &SFC64Lane{a: g.a[l], b: g.b[l], c: g.c[l], counter: g.counter}
}

// SFC64Lane is one lane of an SFC64 generator, stepped one value at a time.
type SFC64Lane struct {
	a, b, c, counter uint64
}

// Uint64 returns the lane's next output.
func (s *SFC64Lane) Uint64() uint64 {
	r := s.a + s.b + s.counter
	s.counter++
	s.a = s.b ^ s.b>>11
	s.b = s.c + s.c<<3
	s.c = bits.RotateLeft64(s.c, 24) + r
	return r
}
