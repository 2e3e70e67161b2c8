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

// Mat3 is a row-major 3x3 linear map: out[i] = sum over j of m[i][j]*v[j].
type Mat3 [3][3]float32

// Mat4x3 is a 3x3 linear map followed by a translation. Rows 0-2 hold the
// linear part and row 3 the translation.
type Mat4x3 [4][3]float32

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Scale3(1)
}

// Scale3 returns k times the identity matrix.
func Scale3(k float32) Mat3 {
	return Mat3{
		{k, 0, 0},
		{0, k, 0},
		{0, 0, k},
	}
}

// Affine builds a Mat4x3 from a linear part and a translation.
func Affine(m Mat3, t [3]float32) Mat4x3 {
	return Mat4x3{m[0], m[1], m[2], t}
}

// Linear returns the upper 3x3 linear part of m.
func (m *Mat4x3) Linear() Mat3 {
	return Mat3{m[0], m[1], m[2]}
}

// Translation returns the translation row of m.
func (m *Mat4x3) Translation() [3]float32 {
	return m[3]
}
