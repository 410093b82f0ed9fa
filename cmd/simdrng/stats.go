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
	"context"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/cramer/simd-go/internal/config"
	"github.com/cramer/simd-go/internal/workerpool"
	"github.com/cramer/simd-go/rng"
	"github.com/cramer/simd-go/simd"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize independent streams projected onto [0, 1)",
		Long: `Run several generator streams in parallel, each seeded from the
configured seed shifted by its stream number, and summarize the uniform
[0, 1) projection of every stream. A healthy generator shows a mean near
0.5 and a standard deviation and RMS deviation near 0.2887.`,
		RunE: runStats,
	}
	addGeneratorFlags(cmd)
	cmd.Flags().IntP("streams", "s", 4, "Number of independent streams")
	cmd.Flags().IntP("workers", "w", 0, "Worker goroutines (0 = GOMAXPROCS)")
	return cmd
}

// streamSummary describes one stream's [0, 1) projection.
type streamSummary struct {
	mean, stddev, min, max float64
	// rms is the root mean square distance from 0.5.
	rms float64
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)
	workers, _ := cmd.Flags().GetInt("workers")

	pool := workerpool.New(workers)
	defer pool.Close()
	logger.Printf("stats: %s on %d workers", cfg, pool.NumWorkers())

	samples, err := sampleStreams(cmd.Context(), pool, cfg)
	if err != nil {
		return err
	}

	summaries := make([]streamSummary, len(samples))
	errs := make([]error, len(samples))
	pool.ParallelFor(len(samples), func(start, end int) {
		for i := start; i < end; i++ {
			summaries[i], errs[i] = summarize(samples[i])
		}
	})
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("stream %d: %w", i, err)
		}
	}

	return printSummaries(cmd, summaries)
}

// sampleStreams draws cfg.Batches batches from each of cfg.Streams
// generators and returns their [0, 1) projections.
func sampleStreams(ctx context.Context, pool *workerpool.Pool, cfg *config.Config) ([][]float64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	samples := make([][]float64, cfg.Streams)
	err := pool.Run(ctx, cfg.Streams, func(ctx context.Context, i int) error {
		g, err := cfg.NewGenerator(i)
		if err != nil {
			return err
		}
		buf := make([]uint64, rng.BatchSize)
		out := make([]float64, 0, cfg.Batches*rng.BatchSize)
		for range cfg.Batches {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.Generate(buf); err != nil {
				return err
			}
			for _, v := range buf {
				out = append(out, rng.Float64(v))
			}
		}
		samples[i] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func summarize(data []float64) (streamSummary, error) {
	var (
		s   streamSummary
		err error
	)
	if s.mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.stddev, err = stats.StandardDeviation(data); err != nil {
		return s, err
	}
	if s.min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.max, err = stats.Max(data); err != nil {
		return s, err
	}

	centered := make([]float64, len(data))
	for i, x := range data {
		centered[i] = x - 0.5
	}
	norm, err := simd.L2NormFloat64(centered, len(centered))
	if err != nil {
		return s, err
	}
	s.rms = norm / math.Sqrt(float64(len(data)))
	return s, nil
}

func printSummaries(cmd *cobra.Command, summaries []streamSummary) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "stream\tmean\tstddev\tmin\tmax\trms\t")
	means := make([]float64, len(summaries))
	for i, s := range summaries {
		means[i] = s.mean
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t\n", i, s.mean, s.stddev, s.min, s.max, s.rms)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	overall, err := stats.Mean(means)
	if err != nil {
		return err
	}
	spread, err := stats.StandardDeviation(means)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "mean of means: %.6f (spread %.6f)\n", overall, spread)
	return nil
}
