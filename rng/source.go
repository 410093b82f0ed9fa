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

import (
	"fmt"
	"math/rand/v2"
)

// Source serves the outputs of a Batcher one word at a time, refilling an
// internal batch buffer as it drains. It implements rand.Source, so
//
//	r := rand.New(src)
//
// gives the full math/rand/v2 API on top of either generator.
//
// A Source must be created with NewSource; the zero value panics on first
// use. A Source is not safe for concurrent use.
type Source struct {
	g   Batcher
	buf [BatchSize]uint64
	i   int
}

var _ rand.Source = (*Source)(nil)

var errNoBatcher = fmt.Errorf("rng: Source not created by NewSource: %w", ErrNotSeeded)

// NewSource wraps g and generates its first batch. The error from that
// first batch (for example ErrNotSeeded) is returned.
func NewSource(g Batcher) (*Source, error) {
	s := &Source{g: g}
	if err := s.refill(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Source) refill() error {
	if err := s.g.Generate(s.buf[:]); err != nil {
		return fmt.Errorf("rng: refill source: %w", err)
	}
	s.i = 0
	return nil
}

// Uint64 returns the next output in batch order.
func (s *Source) Uint64() uint64 {
	if s.g == nil {
		panic(errNoBatcher)
	}
	if s.i == BatchSize {
		// Generate only fails before the first batch.
		if err := s.refill(); err != nil {
			panic(err)
		}
	}
	v := s.buf[s.i]
	s.i++
	return v
}

// Float64 returns a value in [0, 1) built from the top 53 bits of the next
// output.
func (s *Source) Float64() float64 {
	return Float64(s.Uint64())
}

// Float64 maps a generator output to [0, 1) using its top 53 bits.
func Float64(x uint64) float64 {
	return float64(x>>11) * 0x1.0p-53
}
