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

// Package xform provides batched 3x3 and 4x3 transforms of interleaved
// xyz vectors.
//
// # Kernels
//
// Each transform comes in three widths with identical observable output:
//   - TransformX1, TransformAffineX1: one vector per iteration
//   - TransformX4, TransformAffineX4: four vectors per iteration
//   - TransformX8, TransformAffineX8: two independent four-vector blocks
//     per iteration
//
// The 4- and 8-wide kernels deinterleave their input with
// hwy.LoadInterleaved3 (transpose-on-load), combine the x, y and z lanes
// with broadcast matrix coefficients, and re-interleave the result with
// hwy.StoreInterleaved3. Callers only ever see interleaved buffers.
//
// # Memory Layout
//
// Buffers hold vectors as [x0, y0, z0, x1, y1, z1, ...]. The vector count
// is len(in)/3. The output slice must be at least as long as the input and
// may be the same slice as the input; other overlaps are not supported.
//
// # Rounding
//
// Every kernel evaluates a component as
//
//	(float32(m0*x) + float32(m1*y)) + float32(m2*z)
//
// with no fused multiply-add, and the affine kernels add the translation
// last. All widths are bit-identical, and
//
//	TransformAffineXN(a, in, out) == TransformXN(a.Linear(), in, out) + a.Translation()
//
// holds exactly for every component.
//
// # Example Usage
//
//	m := xform.Scale3(2)
//	in := []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
//	out := make([]float32, len(in))
//
//	xform.TransformX4(&m, in, out)
//	// out = [0 2 4 6 8 10 12 14 16 18 20 22]
//
// # Preconditions
//
// The 4- and 8-wide kernels panic unless the vector count is a multiple of
// 4 or 8 respectively. All kernels panic when len(in) is not a multiple of
// 3 or out is shorter than in. Nothing is written when a precondition
// fails.
package xform
