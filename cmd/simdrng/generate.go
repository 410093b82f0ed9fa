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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cramer/simd-go/internal/config"
	"github.com/cramer/simd-go/rng"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write generator output",
		Long: `Seed a generator and write the requested number of batches.

The binary format writes little-endian 64-bit words and is suitable for
piping into external test batteries. hex and decimal write one word per line.`,
		RunE: runGenerate,
	}
	addGeneratorFlags(cmd)
	cmd.Flags().StringP("format", "f", config.FormatHex, "Output format: binary, hex or decimal")
	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)
	logger.Printf("generate: %s", cfg)

	g, err := cfg.NewGenerator(0)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		if err := writeBatches(cmd.OutOrStdout(), g, cfg.Batches, cfg.Format); err != nil {
			return err
		}
	} else if err := writeFile(cfg.Output, g, cfg.Batches, cfg.Format); err != nil {
		return err
	}
	logger.Printf("wrote %d words", cfg.Batches*rng.BatchSize)
	return nil
}

// writeFile creates path and writes batches to it. A failed Close is reported
// since the last buffered write may only surface there.
func writeFile(path string, g rng.Batcher, batches int, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeBatches(f, g, batches, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// writeBatches generates batches batches from g and encodes them to w.
func writeBatches(w io.Writer, g rng.Batcher, batches int, format string) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	buf := make([]uint64, rng.BatchSize)
	line := make([]byte, 0, 24)

	for b := range batches {
		if err := g.Generate(buf); err != nil {
			return fmt.Errorf("batch %d: %w", b, err)
		}
		for _, v := range buf {
			switch format {
			case config.FormatBinary:
				line = binary.LittleEndian.AppendUint64(line[:0], v)
			case config.FormatDecimal:
				line = append(strconv.AppendUint(line[:0], v, 10), '\n')
			default:
				line = append(fmt.Appendf(line[:0], "%016x", v), '\n')
			}
			if _, err := bw.Write(line); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
