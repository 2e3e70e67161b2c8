// Copyright 2025 go-highway Authors
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

// Command xform3bench repeatedly runs one xform kernel over a fixed buffer
// so its throughput can be measured, optionally under an external profiler.
//
// Usage:
//
//	xform3bench [--sleep u32] [--variant x1|x4|x8|auto] [--affine] [--small]
//	            [--reps n] [--dump] [--stats] [--qos class] [--log-level level]
//
// Malformed or unknown arguments print a usage message to stderr and exit
// with status -1.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-highway/xform3/hwy"
	"github.com/go-highway/xform3/hwy/contrib/xform"
	"github.com/go-highway/xform3/internal/bench"
	"github.com/go-highway/xform3/internal/worker"
)

// exitFailure is the status for usage and worker errors.
const exitFailure = -1

type options struct {
	sleep    uint32
	variant  xform.Variant
	affine   bool
	small    bool
	reps     int
	dump     bool
	stats    bool
	qos      worker.Hint
	logLevel string
}

// usageError marks errors caused by the command line itself.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "error: %v\n", err)
	var uerr usageError
	if errors.As(err, &uerr) {
		printUsage(stderr, cmd.Flags())
	}
	return exitFailure
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:           "xform3bench [opt..]",
		Short:         "Benchmark batched 3x3 vector transform kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(o, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	variants := lo.Map(xform.Variants(), func(v xform.Variant, _ int) string { return v.String() })
	hints := lo.Map(worker.Hints(), func(h worker.Hint, _ int) string { return h.ShortName() })

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.Uint32Var(&o.sleep, "sleep", 0, "sleep u32 seconds before launching the workload")
	fs.Var(&o.variant, "variant", "kernel width: "+strings.Join(variants, "|"))
	fs.BoolVar(&o.affine, "affine", false, "use the translating (4x3) kernels")
	fs.BoolVar(&o.small, "small", false, "use the 24-vector debug buffer instead of the large one")
	fs.IntVar(&o.reps, "reps", 0, "kernel invocations (default 50000000 with --small, 1000 otherwise)")
	fs.BoolVar(&o.dump, "dump", false, "print every output vector to stdout after the run")
	fs.BoolVar(&o.stats, "stats", false, "print a throughput summary to stderr after the run")
	fs.Var(&o.qos, "qos", "worker thread scheduling class: "+strings.Join(hints, "|"))
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level: debug|info|warn|error")

	return cmd
}

func runBench(o options, stdout, stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return usageError{fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)}
	}
	if o.reps < 0 {
		return usageError{fmt.Errorf("invalid --reps %d: must not be negative", o.reps)}
	}

	bench.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	bench.Logger().Debug("host", "simd", hwy.CurrentName(), "worker_thread", worker.Supported(),
		"variant", o.variant, "resolved", o.variant.Resolve())

	cfg := bench.Config{
		Variant: o.variant,
		Affine:  o.affine,
		Reps:    o.reps,
		Sleep:   time.Duration(o.sleep) * time.Second,
		Dump:    o.dump,
		Stats:   o.stats,
		Hint:    o.qos,
	}
	_, err := bench.Run(cfg, bench.NewBuffers(o.small), stdout, stderr)
	return err
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "usage: xform3bench [opt..]\n%s", fs.FlagUsages())
}
