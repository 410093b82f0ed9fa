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

// Package rng implements batch pseudo-random number generators that advance
// eight independent lanes in lock-step and fill a caller-owned buffer with
// BatchSize outputs per call.
//
// Two generators are provided:
//
//   - SFC64, Chris Doty-Humphrey's small fast chaotic generator, seeded with
//     one word per lane.
//   - XorShift1024, Sebastiano Vigna's xorshift1024*φ, seeded with sixteen
//     words per lane.
//
// Generators are plain values owned by the caller. They carry no locks: a
// single generator must not be used from several goroutines at once, while
// distinct generators are fully independent.
//
// Basic usage:
//
//	g, err := rng.NewSFC64([]uint64{1, 2, 3, 4, 5, 6, 7, 8})
//	if err != nil {
//	    return err
//	}
//	buf := make([]uint64, rng.BatchSize)
//	if err := g.Generate(buf); err != nil {
//	    return err
//	}
//
// Output index k of a batch comes from lane k%Lanes at step k/Lanes.
package rng
