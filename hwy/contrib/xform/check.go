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

package xform

import "fmt"

// vectorCount validates the buffers handed to a kernel and returns the
// number of vectors to process. lanes is the number of vectors the kernel
// consumes per iteration.
func vectorCount(kernel string, in, out []float32, lanes int) int {
	if len(in)%3 != 0 {
		panic(fmt.Sprintf("xform: %s: input length %d is not a multiple of 3", kernel, len(in)))
	}
	if len(out) < len(in) {
		panic(fmt.Sprintf("xform: %s: output length %d is smaller than input length %d", kernel, len(out), len(in)))
	}
	n := len(in) / 3
	if n%lanes != 0 {
		panic(fmt.Sprintf("xform: %s: vector count %d is not a multiple of %d", kernel, n, lanes))
	}
	return n
}
