// SPDX-License-Identifier: MIT

// Package config resolves hopnet CLI settings from the environment and an
// optional .env file. Process environment wins over the file; flags applied
// by the caller win over both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/hopnet/pattern"
	"github.com/katalvlaran/hopnet/recall"
	"github.com/katalvlaran/hopnet/runstore"
)

// Environment variable names.
const (
	EnvMaxEpochs   = "HOPNET_MAX_EPOCHS"
	EnvSeed        = "HOPNET_SEED"
	EnvBias        = "HOPNET_BIAS"
	EnvWorkers     = "HOPNET_WORKERS"
	EnvGlyphOn     = "HOPNET_GLYPH_ON"
	EnvGlyphOff    = "HOPNET_GLYPH_OFF"
	EnvStoreDriver = "HOPNET_STORE_DRIVER"
	EnvStoreDSN    = "HOPNET_STORE_DSN"
	EnvNTPServer   = "HOPNET_NTP_SERVER"
)

// DefaultEnvFile is read by the CLI when no -env flag is given.
const DefaultEnvFile = ".env"

// ErrInvalidValue reports an unparsable or out-of-range setting.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds every tunable of the CLI.
type Config struct {
	MaxEpochs   int
	Seed        int64
	Bias        recall.BiasMode
	Workers     int // <= 0 ⇒ GOMAXPROCS
	Glyphs      pattern.Glyphs
	StoreDriver string // "" disables run recording
	StoreDSN    string
	NTPServer   string // "" ⇒ system clock for run timestamps
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		MaxEpochs: recall.DefaultMaxEpochs,
		Bias:      recall.BiasNone,
		Glyphs:    pattern.DefaultGlyphs(),
	}
}

// Load reads envFile (a missing file is not an error; "" skips it) and then
// the process environment.
func Load(envFile string) (Config, error) {
	file := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			file = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	})
}

// FromLookup builds a Config from lookup, starting at Default.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	var (
		c   = Default()
		err error
	)

	if v, ok := lookup(EnvMaxEpochs); ok {
		if c.MaxEpochs, err = strconv.Atoi(strings.TrimSpace(v)); err != nil || c.MaxEpochs <= 0 {
			return Config{}, invalid(EnvMaxEpochs, v)
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		if c.Seed, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return Config{}, invalid(EnvSeed, v)
		}
	}
	if v, ok := lookup(EnvBias); ok {
		if c.Bias, err = recall.ParseBias(v); err != nil {
			return Config{}, invalid(EnvBias, v)
		}
	}
	if v, ok := lookup(EnvWorkers); ok {
		if c.Workers, err = strconv.Atoi(strings.TrimSpace(v)); err != nil || c.Workers < 0 {
			return Config{}, invalid(EnvWorkers, v)
		}
	}
	if v, ok := lookup(EnvGlyphOn); ok {
		if c.Glyphs.On, err = ParseGlyph(v); err != nil {
			return Config{}, invalid(EnvGlyphOn, v)
		}
	}
	if v, ok := lookup(EnvGlyphOff); ok {
		if c.Glyphs.Off, err = ParseGlyph(v); err != nil {
			return Config{}, invalid(EnvGlyphOff, v)
		}
	}
	if err = c.Glyphs.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: glyphs %q/%q: %w", c.Glyphs.On, c.Glyphs.Off, ErrInvalidValue)
	}
	if v, ok := lookup(EnvStoreDriver); ok {
		c.StoreDriver = strings.ToLower(strings.TrimSpace(v))
		switch c.StoreDriver {
		case "", runstore.DriverSQLite, runstore.DriverMySQL:
		default:
			return Config{}, invalid(EnvStoreDriver, v)
		}
	}
	if v, ok := lookup(EnvStoreDSN); ok {
		c.StoreDSN = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvNTPServer); ok {
		c.NTPServer = strings.TrimSpace(v)
	}

	return c, nil
}

// ParseGlyph accepts exactly one rune; glyphs are not trimmed so a space can be used.
func ParseGlyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("glyph %q: %w", s, ErrInvalidValue)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

// RecallOptions maps the relaxation settings onto recall.Options.
func (c Config) RecallOptions() recall.Options {
	return recall.Options{MaxEpochs: c.MaxEpochs, Bias: c.Bias, Seed: c.Seed}
}

// Clock returns the timestamp source for recorded runs.
func (c Config) Clock() runstore.Clock {
	if c.NTPServer == "" {
		return runstore.SystemClock{}
	}

	return runstore.NTPClock{Server: c.NTPServer, Fallback: runstore.SystemClock{}}
}

func invalid(key, v string) error {
	return fmt.Errorf("config: %s=%q: %w", key, v, ErrInvalidValue)
}
