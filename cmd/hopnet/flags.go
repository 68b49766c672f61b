// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hopnet/codec"
	"github.com/katalvlaran/hopnet/config"
	"github.com/katalvlaran/hopnet/pattern"
	"github.com/katalvlaran/hopnet/recall"
)

// common holds the flags every command accepts. Values are applied on top of
// the loaded config only when the flag was given explicitly.
type common struct {
	env       string
	maxEpochs int
	seed      int64
	bias      string
	workers   int
	on, off   string
	driver    string
	dsn       string
	ntp       string
	session   string
	format    string
	shape     string
}

func (c *common) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.env, "env", config.DefaultEnvFile, "`file` with HOPNET_* settings (missing is fine)")
	fs.IntVar(&c.maxEpochs, "max-epochs", recall.DefaultMaxEpochs, "epoch guard per probe")
	fs.Int64Var(&c.seed, "seed", 0, "random seed (0 = fixed default)")
	fs.StringVar(&c.bias, "bias", "none", "bias mode: none or external")
	fs.IntVar(&c.workers, "workers", 0, "parallel probes (0 = GOMAXPROCS)")
	fs.StringVar(&c.on, "on", string(pattern.DefaultOn), "glyph for +1")
	fs.StringVar(&c.off, "off", string(pattern.DefaultOff), "glyph for -1")
	fs.StringVar(&c.driver, "store-driver", "", "record runs with sqlite or mysql (empty = off)")
	fs.StringVar(&c.dsn, "store-dsn", "", "data source name for -store-driver")
	fs.StringVar(&c.ntp, "ntp", "", "NTP `server` for run timestamps (empty = local clock)")
	fs.StringVar(&c.session, "session", "", "session label for recorded runs (default: derived from start time)")
	fs.StringVar(&c.format, "format", "glyph", "set file format: glyph or numeric")
	fs.StringVar(&c.shape, "shape", "", "grid shape `RxC` (default: inferred)")
}

// settings is the resolved configuration of one command run.
type settings struct {
	config.Config
	session string
	read    codec.ReadOptions
}

// resolve loads the config file and environment, then overlays explicit flags.
func (c *common) resolve(fs *flag.FlagSet) (settings, error) {
	cfg, err := config.Load(c.env)
	if err != nil {
		return settings{}, err
	}

	var ferr error
	fs.Visit(func(f *flag.Flag) {
		if ferr != nil {
			return
		}
		switch f.Name {
		case "max-epochs":
			if c.maxEpochs <= 0 {
				ferr = errors.Wrapf(errUsage, "-max-epochs must be positive, got %d", c.maxEpochs)
			}
			cfg.MaxEpochs = c.maxEpochs
		case "seed":
			cfg.Seed = c.seed
		case "bias":
			if cfg.Bias, ferr = recall.ParseBias(c.bias); ferr != nil {
				ferr = errors.Wrap(errUsage, ferr.Error())
			}
		case "workers":
			cfg.Workers = c.workers
		case "on":
			if cfg.Glyphs.On, ferr = config.ParseGlyph(c.on); ferr != nil {
				ferr = errors.Wrap(errUsage, "-on: "+ferr.Error())
			}
		case "off":
			if cfg.Glyphs.Off, ferr = config.ParseGlyph(c.off); ferr != nil {
				ferr = errors.Wrap(errUsage, "-off: "+ferr.Error())
			}
		case "store-driver":
			cfg.StoreDriver = strings.ToLower(c.driver)
		case "store-dsn":
			cfg.StoreDSN = c.dsn
		case "ntp":
			cfg.NTPServer = c.ntp
		}
	})
	if ferr != nil {
		return settings{}, ferr
	}
	if err = cfg.Glyphs.Validate(); err != nil {
		return settings{}, errors.Wrap(errUsage, err.Error())
	}

	s := settings{Config: cfg, session: c.session}
	s.read.Glyphs = cfg.Glyphs
	if s.read.Format, err = codec.ParseFormat(c.format); err != nil {
		return settings{}, errors.Wrap(errUsage, err.Error())
	}
	if c.shape != "" {
		if s.read.Shape, err = pattern.ParseShape(c.shape); err != nil {
			return settings{}, errors.Wrap(errUsage, err.Error())
		}
	}

	return s, nil
}

// parseFractions parses a comma-separated list such as "0.1,0.25".
func parseFractions(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(errUsage, "fraction %q", part)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.Wrap(errUsage, "no fractions")
	}

	return out, nil
}
