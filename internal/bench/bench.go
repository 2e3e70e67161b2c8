// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package bench drives the xform kernels: it owns the input and output
// buffers, repeatedly invokes one kernel on a worker thread and reports
// what happened.
//
// Usage:
//
//	bufs := bench.NewBuffers(false)
//	res, err := bench.Run(bench.Config{Variant: xform.VariantX8}, bufs, os.Stdout, os.Stderr)
package bench

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/go-highway/xform3/hwy"
	"github.com/go-highway/xform3/hwy/contrib/xform"
	"github.com/go-highway/xform3/internal/worker"
)

const (
	// LargeVectors is the vector count of the large buffer.
	LargeVectors = 1024 * 1024

	// SmallVectors is the vector count of the small debug buffer.
	SmallVectors = 24

	// DefaultRepsSmall is the repetition count used for the small buffer.
	DefaultRepsSmall = 50_000_000

	// DefaultRepsLarge is the repetition count used for the large buffer.
	DefaultRepsLarge = 1_000
)

// Buffers holds everything a run reads or writes. Build it once with
// NewBuffers; Run reuses it for every repetition.
type Buffers struct {
	// In holds the interleaved input vectors.
	In []float32

	// Out receives the transformed vectors; len(Out) == len(In).
	Out []float32

	// Linear is the matrix used by the linear kernels.
	Linear xform.Mat3

	// Affine is the matrix used by the affine kernels.
	Affine xform.Mat4x3

	// Small records whether the debug pattern was used.
	Small bool
}

// NewBuffers allocates the input and output buffers. The small buffer
// holds SmallVectors vectors with components 0, 1, 2, ...; the large one
// holds LargeVectors vectors with component k set to k mod 4096.
//
// The linear matrix is 2*I and the affine matrix is 2*I followed by a
// translation of (1, 2, 3).
func NewBuffers(small bool) *Buffers {
	n := LargeVectors
	if small {
		n = SmallVectors
	}

	in := make([]float32, 3*n)
	for k := range in {
		in[k] = float32(k % 4096)
	}

	m := xform.Scale3(2)
	return &Buffers{
		In:     in,
		Out:    make([]float32, len(in)),
		Linear: m,
		Affine: xform.Affine(m, [3]float32{1, 2, 3}),
		Small:  small,
	}
}

// Vectors returns the number of vectors in the input buffer.
func (b *Buffers) Vectors() int {
	return len(b.In) / 3
}

// Config selects what a run does. The zero value runs the auto-selected
// linear kernel with the default repetition count, no delay and no output.
type Config struct {
	// Variant is the kernel width. It is resolved once per run.
	Variant xform.Variant

	// Affine selects the translating kernels.
	Affine bool

	// Reps is the number of kernel invocations; zero means
	// DefaultRepsSmall or DefaultRepsLarge depending on the buffers.
	Reps int

	// Sleep delays the start of the loop, e.g. to attach a profiler.
	Sleep time.Duration

	// Dump prints every output vector to stdout after the loop.
	Dump bool

	// Stats prints a throughput summary to stderr after the loop.
	Stats bool

	// Hint is the scheduling hint for the worker thread.
	Hint worker.Hint
}

// Result describes a completed run.
type Result struct {
	// Kernel is the symbol name of the kernel that ran.
	Kernel string

	// Vectors is the number of vectors transformed per repetition.
	Vectors int

	// Reps is the number of repetitions.
	Reps int

	// Elapsed is the time spent in the repetition loop, excluding Sleep.
	Elapsed time.Duration
}

// Run executes one benchmark run on a worker thread and blocks until it
// completes. The kernel is chosen once from cfg.Variant; the loop then
// invokes it cfg.Reps times over the same buffers.
//
// Run panics, like the kernels, if the buffer's vector count is not a
// multiple of the kernel's lane width. It returns an error if the worker
// hint cannot be applied or writing the dump fails.
func Run(cfg Config, bufs *Buffers, stdout, stderr io.Writer) (Result, error) {
	kern := xform.Lookup(cfg.Variant)
	reps := cfg.Reps
	if reps <= 0 {
		reps = defaultReps(bufs.Small)
	}

	res := Result{
		Kernel:  kern.Name(cfg.Affine),
		Vectors: bufs.Vectors(),
		Reps:    reps,
	}
	// Fail on the caller's goroutine rather than inside the worker.
	if res.Vectors%kern.Lanes != 0 {
		panic(fmt.Sprintf("bench: %s needs a multiple of %d vectors, buffer has %d",
			res.Kernel, kern.Lanes, res.Vectors))
	}

	log := Logger()
	log.Debug("dispatch", "simd", hwy.CurrentName(), "width", hwy.CurrentWidth())
	log.Debug("buffers", "vectors", res.Vectors, "small", bufs.Small)
	log.Info("starting", "kernel", res.Kernel, "reps", reps, "sleep", cfg.Sleep,
		"qos", cfg.Hint, "worker_thread", worker.Supported())

	apply := func() { kern.Transform(&bufs.Linear, bufs.In, bufs.Out) }
	if cfg.Affine {
		apply = func() { kern.TransformAffine(&bufs.Affine, bufs.In, bufs.Out) }
	}

	var dumpErr error
	err := worker.Run(cfg.Hint, func() {
		if cfg.Sleep > 0 {
			time.Sleep(cfg.Sleep)
		}

		start := time.Now()
		for range reps {
			apply()
			// Keep every repetition's stores observable.
			runtime.KeepAlive(bufs.Out)
		}
		res.Elapsed = time.Since(start)

		if cfg.Dump {
			dumpErr = Dump(stdout, bufs.Out)
		}
	})
	if err != nil {
		return Result{}, err
	}
	if dumpErr != nil {
		return res, fmt.Errorf("bench: writing output: %w", dumpErr)
	}

	log.Info("finished", "kernel", res.Kernel, "elapsed", res.Elapsed)
	if cfg.Stats {
		if err := res.WriteSummary(stderr); err != nil {
			return res, fmt.Errorf("bench: writing summary: %w", err)
		}
	}
	return res, nil
}

func defaultReps(small bool) int {
	if small {
		return DefaultRepsSmall
	}
	return DefaultRepsLarge
}

// Dump writes every vector of out as three tab-separated values, one
// vector per line.
func Dump(w io.Writer, out []float32) error {
	bw := bufio.NewWriter(w)
	for i := 0; i+2 < len(out); i += 3 {
		if _, err := fmt.Fprintf(bw, "%f\t%f\t%f\n", out[i], out[i+1], out[i+2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
