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

package hwy

// This file provides the lane-parallel arithmetic used by the transform
// kernels. Every product is rounded to float32 through an explicit
// conversion before it is added, which keeps the compiler from contracting
// a*b+c into a fused multiply-add. Lane results are therefore bit-identical
// to the scalar expression float32(a*b) + c on every GOARCH.

// Broadcast creates a vector with all lanes set to x.
func Broadcast(x float32) Float32x4 {
	return Float32x4{x, x, x, x}
}

// Zero returns a vector with all lanes set to zero.
func Zero() Float32x4 {
	return Float32x4{}
}

// Load reads four consecutive values from src.
// Panics if len(src) < 4.
func Load(src []float32) Float32x4 {
	s := src[:NumLanes:NumLanes]
	return Float32x4{s[0], s[1], s[2], s[3]}
}

// Store writes the four lanes of v to dst.
// Panics if len(dst) < 4.
func Store(v Float32x4, dst []float32) {
	d := dst[:NumLanes:NumLanes]
	d[0] = v[0]
	d[1] = v[1]
	d[2] = v[2]
	d[3] = v[3]
}

// Add performs element-wise addition.
func Add(a, b Float32x4) Float32x4 {
	return Float32x4{
		a[0] + b[0],
		a[1] + b[1],
		a[2] + b[2],
		a[3] + b[3],
	}
}

// Mul performs element-wise multiplication.
func Mul(a, b Float32x4) Float32x4 {
	return Float32x4{
		float32(a[0] * b[0]),
		float32(a[1] * b[1]),
		float32(a[2] * b[2]),
		float32(a[3] * b[3]),
	}
}

// MulAdd computes a*b + c per lane.
//
// Unlike a hardware FMA the product is rounded before the addition, so
// MulAdd(a, b, c) lane i equals float32(a[i]*b[i]) + c[i] exactly.
func MulAdd(a, b, c Float32x4) Float32x4 {
	return Float32x4{
		float32(a[0]*b[0]) + c[0],
		float32(a[1]*b[1]) + c[1],
		float32(a[2]*b[2]) + c[2],
		float32(a[3]*b[3]) + c[3],
	}
}
