// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build linux

package worker

import "golang.org/x/sys/unix"

const hintsSupported = true

// applyHint sets the nice value of the calling thread. On Linux
// setpriority with PRIO_PROCESS and a thread id affects only that thread.
// The caller must have locked its goroutine to the OS thread.
func applyHint(h Hint) error {
	n, ok := h.nice()
	if !ok {
		return nil
	}
	return unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), n)
}
