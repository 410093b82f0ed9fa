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

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/cramer/simd-go/hwy"
	"github.com/cramer/simd-go/rng"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the SIMD dispatch target and generator layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dispatch:      %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
			fmt.Fprintf(out, "lanes:         float32=%d float64=%d\n", hwy.MaxLanes[float32](), hwy.MaxLanes[float64]())
			if hwy.NoSimdEnv() {
				fmt.Fprintln(out, "HWY_NO_SIMD:   set")
			}

			info := vek32.Info()
			features := strings.Join(info.CPUFeatures, " ")
			if features == "" {
				features = "none"
			}
			fmt.Fprintf(out, "cpu features:  %s\n", features)
			fmt.Fprintf(out, "vek accel:     %t\n", info.Acceleration)

			fmt.Fprintf(out, "generators:    %d lanes x %d rounds = %d words per batch\n", rng.Lanes, rng.Rounds, rng.BatchSize)
			fmt.Fprintf(out, "seed words:    sfc64=%d xor1024=%d\n", rng.SFC64SeedLength, rng.XorShift1024SeedLength)
			return nil
		},
	}
}
