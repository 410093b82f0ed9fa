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
	xorWords = 16
	xorMask  = xorWords - 1

	// phi is 2^64 divided by the golden ratio, the xorshift1024*φ multiplier.
	phi = 0x9e3779b97f4a7c13
)

// XorShift1024 is an eight-lane xorshift1024*φ generator. Every lane owns a
// ring of sixteen state words; all lanes share the ring cursor because they
// advance in lock-step.
//
// The zero value is unseeded: Generate returns ErrNotSeeded until Seed
// succeeds.
type XorShift1024 struct {
	s      [xorWords]u64x8
	pos    int
	seeded bool
}

// NewXorShift1024 returns a generator seeded with seed. See Seed.
func NewXorShift1024(seed []uint64) (*XorShift1024, error) {
	g := &XorShift1024{}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed resets the generator. Lane l takes seed[l*16 : (l+1)*16] as its
// ring and the cursor returns to the first word. No outputs are discarded.
// Words beyond XorShift1024SeedLength are ignored.
//
// A seed that is too short or contains a zero word is rejected and leaves
// the generator unchanged.
func (g *XorShift1024) Seed(seed []uint64) error {
	if err := checkSeed(seed, XorShift1024SeedLength); err != nil {
		return err
	}
	for l := range Lanes {
		for w := range xorWords {
			g.s[w][l] = seed[l*xorWords+w]
		}
	}
	g.pos = 0
	g.seeded = true
	return nil
}

// Generate writes the next BatchSize outputs to dst[:BatchSize].
func (g *XorShift1024) Generate(dst []uint64) error {
	if !g.seeded {
		return ErrNotSeeded
	}
	if err := checkBatch(dst); err != nil {
		return err
	}
	fillBatch(g, dst)
	return nil
}

func (g *XorShift1024) step(out *u64x8) {
	s0 := g.s[g.pos]
	g.pos = (g.pos + 1) & xorMask
	s1 := g.s[g.pos]
	s1 = s1.xor(s1.shl(31))
	t := s1.xor(s0).xor(s1.shr(11)).xor(s0.shr(30))
	g.s[g.pos] = t
	*out = t.mulScalar(phi)
}

// Lane returns a copy of lane l's current state as a single-stream
// generator. Advancing the copy does not affect g. Lane panics if l is not
// in [0, Lanes).
func (g *XorShift1024) Lane(l int) *XorShift1024Lane {
	v := &XorShift1024Lane{pos: g.pos}
	for w := range xorWords {
		v.s[w] = g.s[w][l]
	}
	return v
}

// XorShift1024Lane is one lane of an XorShift1024 generator, stepped one
// value at a time.
type XorShift1024Lane struct {
	s   [xorWords]uint64
	pos int
}

// Uint64 returns the lane's next output.
func (x *XorShift1024Lane) Uint64() uint64 {
	s0 := x.s[x.pos]
	x.pos = (x.pos + 1) & xorMask
	s1 := x.s[x.pos]
	s1 ^= s1 << 31
	t := s1 ^ s0 ^ s1>>11 ^ s0>>30
	x.s[x.pos] = t
	return t * phi
}
