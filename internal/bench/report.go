// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// VectorsPerSecond returns the throughput of the run, or zero if no time
// was measured.
func (r Result) VectorsPerSecond() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.Vectors) * float64(r.Reps) / secs
}

// WriteSummary writes a one-line human-readable summary of r to w, with
// thousands separators in the counts.
func (r Result) WriteSummary(w io.Writer) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "%s: %d vectors x %d reps in %v (%.0f vectors/s)\n",
		r.Kernel, r.Vectors, r.Reps, r.Elapsed, r.VectorsPerSecond())
	return err
}
