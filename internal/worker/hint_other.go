// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build !linux

package worker

const hintsSupported = false

func applyHint(Hint) error {
	return nil
}
