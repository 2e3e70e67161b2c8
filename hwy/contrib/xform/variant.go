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

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-highway/xform3/hwy"
)

// ErrUnknownVariant is returned by ParseVariant for names it does not know.
var ErrUnknownVariant = errors.New("unknown kernel variant")

// Variant selects one of the kernel widths. It is chosen once, before any
// kernel runs; the kernels themselves never dispatch.
type Variant uint8

const (
	// VariantAuto picks a concrete variant from the detected SIMD level.
	VariantAuto Variant = iota
	// VariantX1 processes one vector per iteration.
	VariantX1
	// VariantX4 processes four vectors per iteration.
	VariantX4
	// VariantX8 processes eight vectors per iteration.
	VariantX8
)

// Variants returns all selectable variants in the order they are listed
// in help output.
func Variants() []Variant {
	return []Variant{VariantX1, VariantX4, VariantX8, VariantAuto}
}

// String returns the command-line name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantAuto:
		return "auto"
	case VariantX1:
		return "x1"
	case VariantX4:
		return "x4"
	case VariantX8:
		return "x8"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// Lanes returns the number of vectors the variant consumes per iteration,
// which is also the multiple the vector count must satisfy. VariantAuto
// reports the lanes of the variant it resolves to.
func (v Variant) Lanes() int {
	switch v.Resolve() {
	case VariantX4:
		return 4
	case VariantX8:
		return 8
	default:
		return 1
	}
}

// Resolve maps VariantAuto to a concrete variant using hwy.CurrentLevel:
// scalar CPUs get VariantX1, 128-bit SIMD gets VariantX4 and anything wider
// gets VariantX8. Concrete variants resolve to themselves.
func (v Variant) Resolve() Variant {
	if v != VariantAuto {
		return v
	}
	return autoVariant(hwy.CurrentLevel(), hwy.CurrentWidth())
}

func autoVariant(level hwy.DispatchLevel, width int) Variant {
	switch {
	case level == hwy.DispatchScalar:
		return VariantX1
	case width <= 16:
		return VariantX4
	default:
		return VariantX8
	}
}

// ParseVariant parses a variant name as printed by Variant.String. Kernel
// names such as "transform_x8" are accepted too.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "transform_")
	name = strings.TrimPrefix(name, "transfort_")
	for _, v := range Variants() {
		if v.String() == name {
			return v, nil
		}
	}
	return VariantAuto, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Set implements pflag.Value.
func (v *Variant) Set(s string) error {
	parsed, err := ParseVariant(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *Variant) Type() string {
	return "variant"
}

// Kernel is one entry of the kernel table: a variant together with its
// linear and affine implementations.
type Kernel struct {
	Variant Variant

	// Lanes is the vector-count multiple the kernels require.
	Lanes int

	// Transform applies a Mat3 to every vector in in.
	Transform func(m *Mat3, in, out []float32)

	// TransformAffine applies a Mat4x3 to every vector in in.
	TransformAffine func(a *Mat4x3, in, out []float32)
}

// Name returns the kernel's symbol name, e.g. "transform_x4", or
// "transfort_x4" for the affine kernel.
func (k Kernel) Name(affine bool) string {
	if affine {
		return "transfort_" + k.Variant.String()
	}
	return "transform_" + k.Variant.String()
}

var kernels = [...]Kernel{
	{Variant: VariantX1, Lanes: 1, Transform: TransformX1, TransformAffine: TransformAffineX1},
	{Variant: VariantX4, Lanes: 4, Transform: TransformX4, TransformAffine: TransformAffineX4},
	{Variant: VariantX8, Lanes: 8, Transform: TransformX8, TransformAffine: TransformAffineX8},
}

// Lookup returns the kernel for v, resolving VariantAuto first.
func Lookup(v Variant) Kernel {
	r := v.Resolve()
	for _, k := range kernels {
		if k.Variant == r {
			return k
		}
	}
	panic(fmt.Sprintf("xform: no kernel for variant %s", v))
}
