// SPDX-License-Identifier: MIT

// Command hopnet trains a Hopfield network on a set of patterns, recalls
// noisy probes against it and generates synthetic training/probe sets.
//
// Usage:
//
//	hopnet train    -in train.txt [-out weights.txt] [-test probes.txt] [flags]
//	hopnet test     -weights weights.txt -in probes.txt [-train train.txt] [flags]
//	hopnet generate [-n 100] [-count 5] [-out train.txt] [-probes probes] [flags]
//
// Settings come from HOPNET_* environment variables and an optional .env
// file; flags override both. Run "hopnet <command> -h" for every flag.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/pkg/errors"
)

// errUsage marks command-line mistakes; main exits with status 2 for them.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	default:
		log.New(os.Stderr, "hopnet: ", 0).Print(err)
		os.Exit(1)
	}
}

// app carries the output streams shared by every command.
type app struct {
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger
}

// run dispatches args[0] to a command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr, log: log.New(stderr, "hopnet: ", 0)}
	if len(args) == 0 {
		a.usage()
		return errors.Wrap(errUsage, "missing command")
	}

	switch args[0] {
	case "train":
		return a.train(ctx, args[1:])
	case "test":
		return a.test(ctx, args[1:])
	case "generate":
		return a.generate(args[1:])
	case "help", "-h", "-help", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return errors.Wrapf(errUsage, "unknown command %q", args[0])
	}
}

func (a *app) usage() {
	fmt.Fprint(a.stderr, `Usage: hopnet <command> [flags]

Commands:
  train     build weights from a training set, optionally recall a probe set
  test      recall a probe set against saved weights
  generate  write a random training set and corrupted probe sets

Run "hopnet <command> -h" for the flags of a command.
`)
}
