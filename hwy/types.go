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

// Package hwy provides the fixed-width lane types the xform kernels are
// written against.
//
// A Float32x4 models one 128-bit register holding four float32 lanes. The
// operations are plain Go value methods over a [4]float32, which the
// compiler keeps in registers or on the stack; nothing in this package
// allocates.
//
// Basic usage:
//
//	import "github.com/go-highway/xform3/hwy"
//
//	// Deinterleave four xyz triples into x, y and z lanes
//	x, y, z := hwy.LoadInterleaved3(points)
//
//	// Scale the x lanes and write them back
//	x = hwy.Mul(x, hwy.Broadcast(float32(2)))
//	hwy.StoreInterleaved3(x, y, z, points)
package hwy

// NumLanes is the number of float32 lanes in a Float32x4.
const NumLanes = 4

// Float32x4 is a vector of four float32 lanes.
//
// Lane i of a Float32x4 produced by LoadInterleaved3 holds the component of
// the i-th triple, so lane order always matches memory order.
type Float32x4 [NumLanes]float32

// Lane returns the value of lane i.
func (v Float32x4) Lane(i int) float32 {
	return v[i]
}
