// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package worker runs a computation on a dedicated OS thread with an
// optional scheduling hint, and waits for it to finish.
//
// There is exactly one computation thread per Run. The caller blocks until
// the worker returns, so buffers written by the worker may be read by the
// caller after Run without further synchronization.
//
// Usage:
//
//	err := worker.Run(worker.HintUserInteractive, func() {
//	    for range reps {
//	        kernel(&m, in, out)
//	    }
//	})
//
// On platforms without per-thread priority hints, Run executes fn on the
// calling goroutine.
package worker

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnknownHint is returned by ParseHint for names it does not know.
var ErrUnknownHint = errors.New("unknown worker hint")

// Hint is a scheduling quality-of-service class for the worker thread.
type Hint uint8

const (
	// HintUnspecified leaves the worker at the scheduler's default.
	HintUnspecified Hint = iota
	// HintUserInteractive asks for the highest priority.
	HintUserInteractive
	// HintUserInitiated asks for a raised priority.
	HintUserInitiated
	// HintDefault is the normal priority, applied explicitly.
	HintDefault
	// HintUtility asks for a lowered priority.
	HintUtility
	// HintBackground asks for the lowest priority.
	HintBackground
)

// Hints returns every hint in priority order, highest first, followed by
// HintUnspecified.
func Hints() []Hint {
	return []Hint{
		HintUserInteractive,
		HintUserInitiated,
		HintDefault,
		HintUtility,
		HintBackground,
		HintUnspecified,
	}
}

// String returns the QoS class name of the hint.
func (h Hint) String() string {
	switch h {
	case HintUserInteractive:
		return "QOS_CLASS_USER_INTERACTIVE"
	case HintUserInitiated:
		return "QOS_CLASS_USER_INITIATED"
	case HintDefault:
		return "QOS_CLASS_DEFAULT"
	case HintUtility:
		return "QOS_CLASS_UTILITY"
	case HintBackground:
		return "QOS_CLASS_BACKGROUND"
	case HintUnspecified:
		return "QOS_CLASS_UNSPECIFIED"
	default:
		return "alien qos"
	}
}

// ShortName returns the command-line spelling of the hint, e.g.
// "user-interactive".
func (h Hint) ShortName() string {
	s := strings.TrimPrefix(h.String(), "QOS_CLASS_")
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}

// nice is the per-thread nice value the hint maps to. ok is false when the
// hint does not change the priority.
func (h Hint) nice() (n int, ok bool) {
	switch h {
	case HintUserInteractive:
		return -10, true
	case HintUserInitiated:
		return -5, true
	case HintDefault:
		return 0, true
	case HintUtility:
		return 5, true
	case HintBackground:
		return 10, true
	default:
		return 0, false
	}
}

// ParseHint parses either the QoS class name or the short name of a hint.
func ParseHint(s string) (Hint, error) {
	name := strings.TrimSpace(s)
	for _, h := range Hints() {
		if strings.EqualFold(name, h.String()) || strings.EqualFold(name, h.ShortName()) {
			return h, nil
		}
	}
	return HintUnspecified, fmt.Errorf("%w: %q", ErrUnknownHint, s)
}

// Set implements pflag.Value.
func (h *Hint) Set(s string) error {
	parsed, err := ParseHint(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Type implements pflag.Value.
func (h *Hint) Type() string {
	return "qos"
}

// Supported reports whether this platform runs fn on a separate,
// hinted thread.
func Supported() bool {
	return hintsSupported
}

// Run executes fn once and returns after it completes.
//
// Where Supported reports true, fn runs on a new goroutine locked to its
// own OS thread, after hint has been applied to that thread. The thread
// is never unlocked, so it exits together with the goroutine and the
// changed priority does not leak into other goroutines. If the hint cannot
// be applied, fn does not run and the error is returned.
//
// Elsewhere fn runs synchronously on the caller and hint is ignored.
func Run(hint Hint, fn func()) error {
	if !hintsSupported {
		fn()
		return nil
	}

	done := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		if err := applyHint(hint); err != nil {
			done <- fmt.Errorf("worker: applying %s: %w", hint, err)
			return
		}
		fn()
		done <- nil
	}()
	return <-done
}
