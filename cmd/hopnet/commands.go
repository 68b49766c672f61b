// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hopnet/codec"
	"github.com/katalvlaran/hopnet/hebbian"
	"github.com/katalvlaran/hopnet/matrix"
	"github.com/katalvlaran/hopnet/noise"
	"github.com/katalvlaran/hopnet/pattern"
	"github.com/katalvlaran/hopnet/recall"
	"github.com/katalvlaran/hopnet/runstore"
)

// capacityRatio is the classical storage limit P ≈ 0.138·N of a Hopfield net.
const capacityRatio = 0.138

// weight is the element type written to and read from weight files.
type weight = int64

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("hopnet "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errors.Wrap(errUsage, err.Error())
	}
	if fs.NArg() > 0 {
		return errors.Wrapf(errUsage, "unexpected arguments %q", fs.Args())
	}

	return nil
}

// train reads a training set, writes the Hebbian weights and, with -test,
// immediately recalls a probe set against them.
func (a *app) train(ctx context.Context, args []string) error {
	var (
		c                        common
		in, out, probes, reportF string
	)
	fs := a.flagSet("train")
	c.bind(fs)
	fs.StringVar(&in, "in", "", "training set `file` (required)")
	fs.StringVar(&out, "out", "weights.txt", "weights `file` to write")
	fs.StringVar(&probes, "test", "", "probe set `file` to recall after training")
	fs.StringVar(&reportF, "report", "", "report `file` (default stdout)")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	if in == "" {
		return errors.Wrap(errUsage, "train: -in is required")
	}
	s, err := c.resolve(fs)
	if err != nil {
		return err
	}

	set, err := readSet(in, s.read)
	if err != nil {
		return err
	}
	a.checkCapacity(len(set.Patterns), set.Dimension)

	w, err := hebbian.Train[weight](set.Patterns)
	if err != nil {
		return errors.Wrapf(err, "train %s", in)
	}
	if err = writeFile(out, func(wr io.Writer) error { return codec.WriteWeights(wr, w) }); err != nil {
		return err
	}
	a.log.Printf("trained %d patterns of dimension %d; weights written to %s",
		len(set.Patterns), set.Dimension, out)

	if probes == "" {
		return nil
	}

	return a.recallFile(ctx, s, w, set.Patterns, set.Shape, probes, reportF)
}

// test recalls a probe set against saved weights.
func (a *app) test(ctx context.Context, args []string) error {
	var (
		c                           common
		weightsF, in, trainF, rptF string
	)
	fs := a.flagSet("test")
	c.bind(fs)
	fs.StringVar(&weightsF, "weights", "weights.txt", "weights `file` to read")
	fs.StringVar(&in, "in", "", "probe set `file` (required)")
	fs.StringVar(&trainF, "train", "", "training set `file` to match results against")
	fs.StringVar(&rptF, "report", "", "report `file` (default stdout)")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	if in == "" {
		return errors.Wrap(errUsage, "test: -in is required")
	}
	s, err := c.resolve(fs)
	if err != nil {
		return err
	}

	f, err := os.Open(weightsF)
	if err != nil {
		return errors.Wrap(err, "open weights")
	}
	defer f.Close()
	w, err := codec.ReadWeights[weight](f)
	if err != nil {
		return errors.Wrapf(err, "read %s", weightsF)
	}

	var stored []pattern.Pattern
	if trainF != "" {
		set, err := readSet(trainF, s.read)
		if err != nil {
			return err
		}
		if set.Dimension != w.Rows() {
			return errors.Wrapf(codec.ErrDimensionMismatch, "%s has dimension %d, weights have %d",
				trainF, set.Dimension, w.Rows())
		}
		stored = set.Patterns
	}

	return a.recallFile(ctx, s, w, stored, s.read.Shape, in, rptF)
}

// recallFile relaxes every probe in path, writes the report and records the
// runs when a store is configured.
func (a *app) recallFile(
	ctx context.Context,
	s settings,
	w *matrix.Dense[weight],
	stored []pattern.Pattern,
	shape pattern.Shape,
	path, reportPath string,
) error {
	read := s.read
	if shape != (pattern.Shape{}) {
		read.Shape = shape
	}
	set, err := readSet(path, read)
	if err != nil {
		return err
	}
	if set.Dimension != w.Rows() {
		return errors.Wrapf(codec.ErrDimensionMismatch, "%s has dimension %d, weights have %d",
			path, set.Dimension, w.Rows())
	}

	clock := s.Clock()
	started := clock.Now()
	results, err := recall.RecallBatch(ctx, w, set.Patterns, s.RecallOptions(), s.Workers)
	if err != nil {
		return errors.Wrap(err, "recall")
	}
	finished := clock.Now()

	var guarded int
	for _, r := range results {
		if errors.Is(r.Err, recall.ErrNonConvergence) {
			guarded++
		}
	}
	if guarded > 0 {
		a.log.Printf("%d of %d probes hit the %d-epoch guard", guarded, len(results), s.MaxEpochs)
	}

	opts := codec.ReportOptions{Shape: set.Shape, Glyphs: s.Glyphs, Stored: stored}
	if reportPath == "" {
		if err = codec.WriteReport(a.stdout, results, opts); err != nil {
			return err
		}
	} else if err = writeFile(reportPath, func(wr io.Writer) error {
		return codec.WriteReport(wr, results, opts)
	}); err != nil {
		return err
	}

	if s.StoreDriver == "" {
		return nil
	}
	session := s.session
	if session == "" {
		session = started.UTC().Format("20060102T150405.000000000Z") + "-" + strconv.FormatInt(s.Seed, 10)
	}

	return a.record(ctx, s, runstore.Batch{
		Session:    session,
		Seed:       s.Seed,
		Bias:       s.Bias,
		Stored:     stored,
		Probes:     set.Patterns,
		Results:    results,
		StartedAt:  started,
		FinishedAt: finished,
	})
}

func (a *app) record(ctx context.Context, s settings, b runstore.Batch) error {
	store, err := runstore.Open(ctx, s.StoreDriver, s.StoreDSN)
	if err != nil {
		return err
	}
	defer store.Close()

	rows := runstore.Rows(b)
	if err = store.InsertAll(ctx, rows); err != nil {
		return err
	}
	a.log.Printf("recorded %d runs in session %s (%s)", len(rows), b.Session, store.Driver())

	return nil
}

// generate writes a training set of unique random patterns and one probe set
// per corruption fraction, named <prefix>_<percent>.txt.
func (a *app) generate(args []string) error {
	var (
		c            common
		n, count     int
		out, prefix  string
		fractionsArg string
	)
	fs := a.flagSet("generate")
	c.bind(fs)
	fs.IntVar(&n, "n", 100, "pattern dimension")
	fs.IntVar(&count, "count", 5, "number of training patterns")
	fs.StringVar(&out, "out", "train.txt", "training set `file` to write")
	fs.StringVar(&prefix, "probes", "probes", "probe set file `prefix`")
	fs.StringVar(&fractionsArg, "fractions", "0.1,0.25,0.5,0.75", "comma-separated corruption fractions")
	if err := parseFlags(fs, args); err != nil {
		return ignoreHelp(err)
	}
	if n <= 0 || count <= 0 {
		return errors.Wrapf(errUsage, "generate: -n and -count must be positive, got %d and %d", n, count)
	}
	fractions, err := parseFractions(fractionsArg)
	if err != nil {
		return err
	}
	s, err := c.resolve(fs)
	if err != nil {
		return err
	}

	shape := s.read.Shape
	if shape == (pattern.Shape{}) {
		shape, _ = pattern.SquareShape(n)
	}
	if shape.Size() != n {
		return errors.Wrapf(codec.ErrDimensionMismatch, "shape %s for dimension %d", shape, n)
	}

	seed := s.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	train, err := noise.Unique(n, count, rng)
	if err != nil {
		return errors.Wrap(err, "generate")
	}
	a.checkCapacity(count, n)

	sets, err := noise.Probes(train, fractions, rng)
	if err != nil {
		return errors.Wrap(err, "generate")
	}

	write := func(path string, ps []pattern.Pattern) error {
		set := &codec.Set{Dimension: n, Shape: shape, Patterns: ps}
		return writeFile(path, func(wr io.Writer) error { return codec.WriteSet(wr, set, s.Glyphs) })
	}
	if err = write(out, train); err != nil {
		return err
	}
	for i, frac := range fractions {
		path := fmt.Sprintf("%s_%s.txt", prefix, percent(frac))
		if err = write(path, sets[i]); err != nil {
			return err
		}
		a.log.Printf("wrote %s (%s%% corrupted)", path, percent(frac))
	}
	a.log.Printf("wrote %d patterns of dimension %d to %s", count, n, out)

	return nil
}

// checkCapacity warns when the set exceeds the reliable storage capacity.
func (a *app) checkCapacity(patterns, n int) {
	if float64(patterns) > capacityRatio*float64(n) {
		a.log.Printf("warning: %d patterns exceed the ~%.0f a %d-unit network stores reliably",
			patterns, capacityRatio*float64(n), n)
	}
}

func readSet(path string, opts codec.ReadOptions) (*codec.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open set")
	}
	defer f.Close()

	set, err := codec.ReadSet(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return set, nil
}

// writeFile creates path and runs fn against a buffered writer.
func writeFile(path string, fn func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create")
	}
	bw := bufio.NewWriter(f)
	if err = fn(bw); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}

	return errors.Wrapf(f.Close(), "close %s", path)
}

// percent renders 0.25 as "25" and 0.125 as "12.5".
func percent(f float64) string {
	return strconv.FormatFloat(math.Round(f*1e6)/1e4, 'f', -1, 64)
}

// ignoreHelp turns -h into a clean exit.
func ignoreHelp(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	return err
}
