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

// Package config loads settings for the simdrng command.
//
// Settings are resolved in three layers, later layers winning:
//
//  1. Built-in defaults (LoadDefaults)
//  2. A YAML file (LoadFromFile)
//  3. Environment variables (ApplyEnvVars)
//
// Command-line flags are applied on top by the command itself.
//
// Example YAML:
//
//	generator: xor1024
//	seed_base: 42
//	batches: 16
//	format: binary
//	output: random.bin
//
// Environment variables:
//
//	SIMDRNG_GENERATOR  sfc64 or xor1024
//	SIMDRNG_BATCHES    number of batches to generate
//	SIMDRNG_FORMAT     binary, hex or decimal
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cramer/simd-go/rng"
)

// Generator names.
const (
	GeneratorSFC64        = "sfc64"
	GeneratorXorShift1024 = "xor1024"
)

// Output formats.
const (
	FormatBinary  = "binary"
	FormatHex     = "hex"
	FormatDecimal = "decimal"
)

// Config holds the settings shared by the simdrng subcommands.
type Config struct {
	// Generator selects the algorithm: GeneratorSFC64 or GeneratorXorShift1024.
	Generator string `yaml:"generator"`

	// Seed lists explicit seed words. When empty, consecutive words starting
	// at SeedBase are used.
	Seed []uint64 `yaml:"seed"`

	// SeedBase is the first seed word when Seed is empty.
	SeedBase uint64 `yaml:"seed_base"`

	// Batches is the number of rng.BatchSize batches to produce.
	Batches int `yaml:"batches"`

	// Format is the encoding for generated words.
	Format string `yaml:"format"`

	// Streams is the number of independent streams the stats command runs.
	Streams int `yaml:"streams"`

	// Output is the destination file; empty means stdout.
	Output string `yaml:"output"`

	// Verbose enables progress logging on stderr.
	Verbose bool `yaml:"verbose"`
}

// LoadDefaults returns a Config with built-in defaults.
func LoadDefaults() *Config {
	return &Config{
		Generator: GeneratorSFC64,
		SeedBase:  1,
		Batches:   1,
		Format:    FormatHex,
		Streams:   4,
	}
}

// LoadFromFile reads a YAML file over the defaults. Unknown keys are an
// error so that typos do not go unnoticed.
func LoadFromFile(path string) (*Config, error) {
	cfg := LoadDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnvVars overrides fields from SIMDRNG_* environment variables.
// Unparseable numbers are ignored and leave the current value in place.
func ApplyEnvVars(cfg *Config) {
	cfg.Generator = getEnv("SIMDRNG_GENERATOR", cfg.Generator)
	cfg.Batches = getEnvInt("SIMDRNG_BATCHES", cfg.Batches)
	cfg.Format = getEnv("SIMDRNG_FORMAT", cfg.Format)
}

// Validate checks that the configuration can drive a generator.
func (c *Config) Validate() error {
	need, err := SeedLength(c.Generator)
	if err != nil {
		return err
	}
	switch c.Format {
	case FormatBinary, FormatHex, FormatDecimal:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", c.Format, FormatBinary, FormatHex, FormatDecimal)
	}
	if c.Batches <= 0 {
		return fmt.Errorf("invalid batches: %d", c.Batches)
	}
	if c.Streams <= 0 {
		return fmt.Errorf("invalid streams: %d", c.Streams)
	}
	if len(c.Seed) > 0 && len(c.Seed) < need {
		return fmt.Errorf("%s needs %d seed words, config has %d", c.Generator, need, len(c.Seed))
	}
	if len(c.Seed) == 0 && c.SeedBase == 0 {
		return fmt.Errorf("seed_base must be non-zero")
	}
	return nil
}

// SeedWords returns the seed for stream number stream. Stream 0 uses the
// configured seed unchanged; later streams shift every word so that each
// stream starts from a distinct state.
func (c *Config) SeedWords(stream int) ([]uint64, error) {
	need, err := SeedLength(c.Generator)
	if err != nil {
		return nil, err
	}

	words := make([]uint64, need)
	if len(c.Seed) > 0 {
		copy(words, c.Seed)
		for i := range words {
			words[i] += uint64(stream)
		}
		return words, nil
	}

	base := c.SeedBase + uint64(stream)*uint64(need)
	for i := range words {
		words[i] = base + uint64(i)
	}
	return words, nil
}

// String returns a one-line summary suitable for logging.
func (c *Config) String() string {
	seed := fmt.Sprintf("base %d", c.SeedBase)
	if len(c.Seed) > 0 {
		seed = fmt.Sprintf("%d words", len(c.Seed))
	}
	return fmt.Sprintf("Config{Generator: %s, Seed: %s, Batches: %d, Format: %s, Streams: %d}",
		c.Generator, seed, c.Batches, c.Format, c.Streams)
}

// SeedLength returns the number of seed words the named generator consumes.
func SeedLength(generator string) (int, error) {
	switch strings.ToLower(generator) {
	case GeneratorSFC64:
		return rng.SFC64SeedLength, nil
	case GeneratorXorShift1024:
		return rng.XorShift1024SeedLength, nil
	default:
		return 0, fmt.Errorf("unknown generator %q (want %s or %s)", generator, GeneratorSFC64, GeneratorXorShift1024)
	}
}

// NewGenerator constructs and seeds the configured generator for stream.
func (c *Config) NewGenerator(stream int) (rng.Batcher, error) {
	seed, err := c.SeedWords(stream)
	if err != nil {
		return nil, err
	}
	if strings.ToLower(c.Generator) == GeneratorXorShift1024 {
		g, err := rng.NewXorShift1024(seed)
		if err != nil {
			return nil, fmt.Errorf("stream %d: %w", stream, err)
		}
		return g, nil
	}
	g, err := rng.NewSFC64(seed)
	if err != nil {
		return nil, fmt.Errorf("stream %d: %w", stream, err)
	}
	return g, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
