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
	"errors"
	"fmt"
)

var (
	// ErrDegenerateSeed is returned when a seed word the generator consumes
	// is zero.
	ErrDegenerateSeed = errors.New("rng: degenerate seed")

	// ErrSeedLength is returned when a seed has fewer words than required.
	ErrSeedLength = errors.New("rng: seed too short")

	// ErrShortBuffer is returned when an output buffer cannot hold a batch.
	ErrShortBuffer = errors.New("rng: output buffer shorter than BatchSize")

	// ErrNotSeeded is returned by Generate on a generator that has never been
	// seeded successfully.
	ErrNotSeeded = errors.New("rng: generator not seeded")
)

// DegenerateSeedError reports the index of the first zero seed word.
type DegenerateSeedError struct {
	Index int
}

func (e *DegenerateSeedError) Error() string {
	return fmt.Sprintf("rng: degenerate seed: word %d is zero", e.Index)
}

func (e *DegenerateSeedError) Unwrap() error { return ErrDegenerateSeed }

// SeedLengthError reports a seed with fewer words than the generator needs.
type SeedLengthError struct {
	Len, Need int
}

func (e *SeedLengthError) Error() string {
	return fmt.Sprintf("rng: seed has %d words, need at least %d", e.Len, e.Need)
}

func (e *SeedLengthError) Unwrap() error { return ErrSeedLength }

// ShortBufferError reports an output buffer that cannot hold a batch.
type ShortBufferError struct {
	Len, Need int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("rng: output buffer has %d words, need at least %d", e.Len, e.Need)
}

func (e *ShortBufferError) Unwrap() error { return ErrShortBuffer }
