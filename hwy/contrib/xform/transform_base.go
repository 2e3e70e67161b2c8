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

import "github.com/go-highway/xform3/hwy"

// TransformX1 computes out = m*v for every vector v in in, one vector per
// iteration. It is the scalar baseline for TransformX4 and TransformX8.
//
// Panics if len(in) is not a multiple of 3 or len(out) < len(in).
func TransformX1(m *Mat3, in, out []float32) {
	n := vectorCount("transform_x1", in, out, 1)

	// Hoist coefficients so the loop body only touches in and out.
	m00, m01, m02 := m[0][0], m[0][1], m[0][2]
	m10, m11, m12 := m[1][0], m[1][1], m[1][2]
	m20, m21, m22 := m[2][0], m[2][1], m[2][2]

	for i := 0; i < 3*n; i += 3 {
		v := in[i : i+3 : i+3]
		v0, v1, v2 := v[0], v[1], v[2]

		o := out[i : i+3 : i+3]
		o[0] = float32(m00*v0) + float32(m01*v1) + float32(m02*v2)
		o[1] = float32(m10*v0) + float32(m11*v1) + float32(m12*v2)
		o[2] = float32(m20*v0) + float32(m21*v1) + float32(m22*v2)
	}
}

// TransformAffineX1 computes out = a.Linear()*v + a.Translation() for every
// vector v in in, one vector per iteration.
//
// Panics if len(in) is not a multiple of 3 or len(out) < len(in).
func TransformAffineX1(a *Mat4x3, in, out []float32) {
	n := vectorCount("transfort_x1", in, out, 1)

	m00, m01, m02 := a[0][0], a[0][1], a[0][2]
	m10, m11, m12 := a[1][0], a[1][1], a[1][2]
	m20, m21, m22 := a[2][0], a[2][1], a[2][2]
	tr0, tr1, tr2 := a[3][0], a[3][1], a[3][2]

	for i := 0; i < 3*n; i += 3 {
		v := in[i : i+3 : i+3]
		v0, v1, v2 := v[0], v[1], v[2]

		o := out[i : i+3 : i+3]
		o[0] = float32(m00*v0) + float32(m01*v1) + float32(m02*v2) + tr0
		o[1] = float32(m10*v0) + float32(m11*v1) + float32(m12*v2) + tr1
		o[2] = float32(m20*v0) + float32(m21*v1) + float32(m22*v2) + tr2
	}
}

// TransformX4 computes out = m*v for every vector v in in, four vectors per
// iteration. Each block of four xyz triples is deinterleaved into x, y and
// z lanes, transformed lane-parallel and re-interleaved on store.
//
// Panics if the vector count is not a multiple of 4, len(in) is not a
// multiple of 3 or len(out) < len(in).
func TransformX4(m *Mat3, in, out []float32) {
	n := vectorCount("transform_x4", in, out, 4)

	m00, m01, m02 := hwy.Broadcast(m[0][0]), hwy.Broadcast(m[0][1]), hwy.Broadcast(m[0][2])
	m10, m11, m12 := hwy.Broadcast(m[1][0]), hwy.Broadcast(m[1][1]), hwy.Broadcast(m[1][2])
	m20, m21, m22 := hwy.Broadcast(m[2][0]), hwy.Broadcast(m[2][1]), hwy.Broadcast(m[2][2])

	for i := 0; i < 3*n; i += hwy.Interleaved3Len {
		x, y, z := hwy.LoadInterleaved3(in[i:])

		r0 := hwy.MulAdd(z, m02, hwy.MulAdd(y, m01, hwy.Mul(x, m00)))
		r1 := hwy.MulAdd(z, m12, hwy.MulAdd(y, m11, hwy.Mul(x, m10)))
		r2 := hwy.MulAdd(z, m22, hwy.MulAdd(y, m21, hwy.Mul(x, m20)))

		hwy.StoreInterleaved3(r0, r1, r2, out[i:])
	}
}

// TransformAffineX4 is TransformX4 followed by adding a.Translation() to
// every output vector.
//
// Panics if the vector count is not a multiple of 4, len(in) is not a
// multiple of 3 or len(out) < len(in).
func TransformAffineX4(a *Mat4x3, in, out []float32) {
	n := vectorCount("transfort_x4", in, out, 4)

	m00, m01, m02 := hwy.Broadcast(a[0][0]), hwy.Broadcast(a[0][1]), hwy.Broadcast(a[0][2])
	m10, m11, m12 := hwy.Broadcast(a[1][0]), hwy.Broadcast(a[1][1]), hwy.Broadcast(a[1][2])
	m20, m21, m22 := hwy.Broadcast(a[2][0]), hwy.Broadcast(a[2][1]), hwy.Broadcast(a[2][2])
	tr0, tr1, tr2 := hwy.Broadcast(a[3][0]), hwy.Broadcast(a[3][1]), hwy.Broadcast(a[3][2])

	for i := 0; i < 3*n; i += hwy.Interleaved3Len {
		x, y, z := hwy.LoadInterleaved3(in[i:])

		r0 := hwy.Add(hwy.MulAdd(z, m02, hwy.MulAdd(y, m01, hwy.Mul(x, m00))), tr0)
		r1 := hwy.Add(hwy.MulAdd(z, m12, hwy.MulAdd(y, m11, hwy.Mul(x, m10))), tr1)
		r2 := hwy.Add(hwy.MulAdd(z, m22, hwy.MulAdd(y, m21, hwy.Mul(x, m20))), tr2)

		hwy.StoreInterleaved3(r0, r1, r2, out[i:])
	}
}

// TransformX8 computes out = m*v for every vector v in in, eight vectors
// per iteration as two independent four-vector blocks. The blocks share
// the hoisted coefficients but no intermediate values, so their loads,
// arithmetic and stores can overlap.
//
// Panics if the vector count is not a multiple of 8, len(in) is not a
// multiple of 3 or len(out) < len(in).
func TransformX8(m *Mat3, in, out []float32) {
	n := vectorCount("transform_x8", in, out, 8)

	m00, m01, m02 := hwy.Broadcast(m[0][0]), hwy.Broadcast(m[0][1]), hwy.Broadcast(m[0][2])
	m10, m11, m12 := hwy.Broadcast(m[1][0]), hwy.Broadcast(m[1][1]), hwy.Broadcast(m[1][2])
	m20, m21, m22 := hwy.Broadcast(m[2][0]), hwy.Broadcast(m[2][1]), hwy.Broadcast(m[2][2])

	for i := 0; i < 3*n; i += 2 * hwy.Interleaved3Len {
		x0, y0, z0 := hwy.LoadInterleaved3(in[i:])
		x1, y1, z1 := hwy.LoadInterleaved3(in[i+hwy.Interleaved3Len:])

		r0 := hwy.MulAdd(z0, m02, hwy.MulAdd(y0, m01, hwy.Mul(x0, m00)))
		r1 := hwy.MulAdd(z0, m12, hwy.MulAdd(y0, m11, hwy.Mul(x0, m10)))
		r2 := hwy.MulAdd(z0, m22, hwy.MulAdd(y0, m21, hwy.Mul(x0, m20)))

		r3 := hwy.MulAdd(z1, m02, hwy.MulAdd(y1, m01, hwy.Mul(x1, m00)))
		r4 := hwy.MulAdd(z1, m12, hwy.MulAdd(y1, m11, hwy.Mul(x1, m10)))
		r5 := hwy.MulAdd(z1, m22, hwy.MulAdd(y1, m21, hwy.Mul(x1, m20)))

		hwy.StoreInterleaved3(r0, r1, r2, out[i:])
		hwy.StoreInterleaved3(r3, r4, r5, out[i+hwy.Interleaved3Len:])
	}
}

// TransformAffineX8 is TransformX8 followed by adding a.Translation() to
// every output vector.
//
// Panics if the vector count is not a multiple of 8, len(in) is not a
// multiple of 3 or len(out) < len(in).
func TransformAffineX8(a *Mat4x3, in, out []float32) {
	n := vectorCount("transfort_x8", in, out, 8)

	m00, m01, m02 := hwy.Broadcast(a[0][0]), hwy.Broadcast(a[0][1]), hwy.Broadcast(a[0][2])
	m10, m11, m12 := hwy.Broadcast(a[1][0]), hwy.Broadcast(a[1][1]), hwy.Broadcast(a[1][2])
	m20, m21, m22 := hwy.Broadcast(a[2][0]), hwy.Broadcast(a[2][1]), hwy.Broadcast(a[2][2])
	tr0, tr1, tr2 := hwy.Broadcast(a[3][0]), hwy.Broadcast(a[3][1]), hwy.Broadcast(a[3][2])

	for i := 0; i < 3*n; i += 2 * hwy.Interleaved3Len {
		x0, y0, z0 := hwy.LoadInterleaved3(in[i:])
		x1, y1, z1 := hwy.LoadInterleaved3(in[i+hwy.Interleaved3Len:])

		r0 := hwy.Add(hwy.MulAdd(z0, m02, hwy.MulAdd(y0, m01, hwy.Mul(x0, m00))), tr0)
		r1 := hwy.Add(hwy.MulAdd(z0, m12, hwy.MulAdd(y0, m11, hwy.Mul(x0, m10))), tr1)
		r2 := hwy.Add(hwy.MulAdd(z0, m22, hwy.MulAdd(y0, m21, hwy.Mul(x0, m20))), tr2)

		r3 := hwy.Add(hwy.MulAdd(z1, m02, hwy.MulAdd(y1, m01, hwy.Mul(x1, m00))), tr0)
		r4 := hwy.Add(hwy.MulAdd(z1, m12, hwy.MulAdd(y1, m11, hwy.Mul(x1, m10))), tr1)
		r5 := hwy.Add(hwy.MulAdd(z1, m22, hwy.MulAdd(y1, m21, hwy.Mul(x1, m20))), tr2)

		hwy.StoreInterleaved3(r0, r1, r2, out[i:])
		hwy.StoreInterleaved3(r3, r4, r5, out[i+hwy.Interleaved3Len:])
	}
}
