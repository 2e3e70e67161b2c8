package hwy

// This file provides the interleaved memory operations: loads that
// deinterleave xyz triples into per-component lanes, and the matching
// stores. The kernels call them once per four vectors.

// Interleaved3Len is the number of float32 values read by LoadInterleaved3
// and written by StoreInterleaved3.
const Interleaved3Len = 3 * NumLanes

// LoadInterleaved3 loads four interleaved triples and deinterleaves them
// into three vectors. This converts Array-of-Structures (AoS) format to
// Structure-of-Arrays (SoA).
//
// Input memory layout (interleaved triples):
//
//	[x0, y0, z0, x1, y1, z1, x2, y2, z2, x3, y3, z3]
//
// Output vectors:
//
//	x = [x0, x1, x2, x3]
//	y = [y0, y1, y2, y3]
//	z = [z0, z1, z2, z3]
//
// Panics if len(src) < 12.
func LoadInterleaved3(src []float32) (x, y, z Float32x4) {
	s := src[:Interleaved3Len:Interleaved3Len]
	x = Float32x4{s[0], s[3], s[6], s[9]}
	y = Float32x4{s[1], s[4], s[7], s[10]}
	z = Float32x4{s[2], s[5], s[8], s[11]}
	return x, y, z
}

// StoreInterleaved3 stores three vectors interleaved to dst.
// This converts Structure-of-Arrays (SoA) format back to
// Array-of-Structures (AoS) and is the inverse of LoadInterleaved3.
//
// Panics if len(dst) < 12.
func StoreInterleaved3(x, y, z Float32x4, dst []float32) {
	d := dst[:Interleaved3Len:Interleaved3Len]
	d[0], d[1], d[2] = x[0], y[0], z[0]
	d[3], d[4], d[5] = x[1], y[1], z[1]
	d[6], d[7], d[8] = x[2], y[2], z[2]
	d[9], d[10], d[11] = x[3], y[3], z[3]
}
