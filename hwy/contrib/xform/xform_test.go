package xform

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type linearKernel struct {
	name string
	fn   func(m *Mat3, in, out []float32)
}

type affineKernel struct {
	name string
	fn   func(a *Mat4x3, in, out []float32)
}

var linearKernels = []linearKernel{
	{"X1", TransformX1},
	{"X4", TransformX4},
	{"X8", TransformX8},
}

var affineKernels = []affineKernel{
	{"X1", TransformAffineX1},
	{"X4", TransformAffineX4},
	{"X8", TransformAffineX8},
}

func randomVectors(rng *rand.Rand, n int) []float32 {
	v := make([]float32, 3*n)
	for i := range v {
		v[i] = rng.Float32()*200 - 100
	}
	return v
}

func randomMat3(rng *rand.Rand) Mat3 {
	var m Mat3
	for i := range m {
		for j := range m[i] {
			m[i][j] = rng.Float32()*4 - 2
		}
	}
	return m
}

func randomMat4x3(rng *rand.Rand) Mat4x3 {
	return Affine(randomMat3(rng), [3]float32{
		rng.Float32()*20 - 10,
		rng.Float32()*20 - 10,
		rng.Float32()*20 - 10,
	})
}

func TestTransformScaleByTwo(t *testing.T) {
	m := Scale3(2)
	in := []float32{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
		9, 10, 11,
	}
	want := []float32{
		0, 2, 4,
		6, 8, 10,
		12, 14, 16,
		18, 20, 22,
	}

	for _, k := range linearKernels {
		if k.name == "X8" {
			continue // needs a multiple of 8 vectors
		}
		t.Run(k.name, func(t *testing.T) {
			out := make([]float32, len(in))
			k.fn(&m, in, out)
			if diff := cmp.Diff(want, out); diff != "" {
				t.Errorf("Transform%s mismatch (-want +got):\n%s", k.name, diff)
			}
		})
	}

	t.Run("X8", func(t *testing.T) {
		in8 := append(append([]float32{}, in...), in...)
		want8 := append(append([]float32{}, want...), want...)
		out := make([]float32, len(in8))
		TransformX8(&m, in8, out)
		if diff := cmp.Diff(want8, out); diff != "" {
			t.Errorf("TransformX8 mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTransformKnownMatrix(t *testing.T) {
	m := Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	// Same vector eight times so every width sees it.
	in := make([]float32, 0, 24)
	for range 8 {
		in = append(in, 1, 0, -1)
	}

	for _, k := range linearKernels {
		t.Run(k.name, func(t *testing.T) {
			out := make([]float32, len(in))
			k.fn(&m, in, out)
			for i := 0; i < len(out); i += 3 {
				got := [3]float32{out[i], out[i+1], out[i+2]}
				if got != [3]float32{-2, -2, -2} {
					t.Errorf("vector %d = %v, want [-2 -2 -2]", i/3, got)
				}
			}
		})
	}
}

func TestTransformIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	m := Identity3()
	in := randomVectors(rng, 64)

	for _, k := range linearKernels {
		t.Run(k.name, func(t *testing.T) {
			out := make([]float32, len(in))
			k.fn(&m, in, out)
			if diff := cmp.Diff(in, out); diff != "" {
				t.Errorf("identity changed vectors (-in +out):\n%s", diff)
			}
		})
	}
}

func TestTransformScaling(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	in := randomVectors(rng, 32)

	for _, k := range []float32{0, 0.5, 2, -3} {
		m := Scale3(k)
		want := make([]float32, len(in))
		for i, v := range in {
			want[i] = k * v
		}
		for _, kern := range linearKernels {
			t.Run(fmt.Sprintf("%s/k=%v", kern.name, k), func(t *testing.T) {
				out := make([]float32, len(in))
				kern.fn(&m, in, out)
				if diff := cmp.Diff(want, out); diff != "" {
					t.Errorf("scaling by %v mismatch (-want +got):\n%s", k, diff)
				}
			})
		}
	}
}

func TestTransformWidthsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	for _, n := range []int{0, 8, 16, 64, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := randomMat3(rng)
			in := randomVectors(rng, n)

			want := make([]float32, len(in))
			TransformX1(&m, in, want)

			for _, k := range linearKernels[1:] {
				out := make([]float32, len(in))
				k.fn(&m, in, out)
				if diff := cmp.Diff(want, out); diff != "" {
					t.Errorf("Transform%s differs from TransformX1 (-x1 +%s):\n%s", k.name, k.name, diff)
				}
			}

			a := randomMat4x3(rng)
			wantAffine := make([]float32, len(in))
			TransformAffineX1(&a, in, wantAffine)

			for _, k := range affineKernels[1:] {
				out := make([]float32, len(in))
				k.fn(&a, in, out)
				if diff := cmp.Diff(wantAffine, out); diff != "" {
					t.Errorf("TransformAffine%s differs from TransformAffineX1:\n%s", k.name, diff)
				}
			}
		})
	}
}

func TestTransformAffineDecomposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	a := randomMat4x3(rng)
	lin := a.Linear()
	tr := a.Translation()
	in := randomVectors(rng, 128)

	for i, k := range affineKernels {
		t.Run(k.name, func(t *testing.T) {
			want := make([]float32, len(in))
			linearKernels[i].fn(&lin, in, want)
			for j := range want {
				want[j] += tr[j%3]
			}

			out := make([]float32, len(in))
			k.fn(&a, in, out)
			if diff := cmp.Diff(want, out); diff != "" {
				t.Errorf("TransformAffine%s != Transform%s + t (-want +got):\n%s", k.name, k.name, diff)
			}
		})
	}
}

func TestTransformAffineTranslationOnly(t *testing.T) {
	a := Affine(Identity3(), [3]float32{1, 2, 3})
	in := make([]float32, 24)
	for i := range in {
		in[i] = float32(i)
	}

	for _, k := range affineKernels {
		t.Run(k.name, func(t *testing.T) {
			out := make([]float32, len(in))
			k.fn(&a, in, out)
			for i := range out {
				if want := in[i] + float32(i%3+1); out[i] != want {
					t.Errorf("out[%d] = %v, want %v", i, out[i], want)
				}
			}
		})
	}
}

func TestTransformDeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	m := randomMat3(rng)
	a := randomMat4x3(rng)
	in := randomVectors(rng, 256)

	for i := range linearKernels {
		lk, ak := linearKernels[i], affineKernels[i]
		t.Run(lk.name, func(t *testing.T) {
			first := make([]float32, len(in))
			second := make([]float32, len(in))
			lk.fn(&m, in, first)
			lk.fn(&m, in, second)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("Transform%s not deterministic:\n%s", lk.name, diff)
			}

			ak.fn(&a, in, first)
			// Poison the buffer so stale values would show up.
			for j := range second {
				second[j] = -1
			}
			ak.fn(&a, in, second)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("TransformAffine%s not deterministic:\n%s", ak.name, diff)
			}
		})
	}
}

func TestTransformInPlace(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	m := randomMat3(rng)
	a := randomMat4x3(rng)
	in := randomVectors(rng, 48)

	for i := range linearKernels {
		lk, ak := linearKernels[i], affineKernels[i]
		t.Run(lk.name, func(t *testing.T) {
			want := make([]float32, len(in))
			lk.fn(&m, in, want)
			buf := append([]float32(nil), in...)
			lk.fn(&m, buf, buf)
			if diff := cmp.Diff(want, buf); diff != "" {
				t.Errorf("in-place Transform%s mismatch:\n%s", lk.name, diff)
			}

			ak.fn(&a, in, want)
			buf = append(buf[:0], in...)
			ak.fn(&a, buf, buf)
			if diff := cmp.Diff(want, buf); diff != "" {
				t.Errorf("in-place TransformAffine%s mismatch:\n%s", ak.name, diff)
			}
		})
	}
}

func TestTransformLongerOutput(t *testing.T) {
	m := Scale3(2)
	in := make([]float32, 24)
	for i := range in {
		in[i] = 1
	}

	for _, k := range linearKernels {
		t.Run(k.name, func(t *testing.T) {
			out := make([]float32, len(in)+3)
			out[len(in)] = 7
			k.fn(&m, in, out)
			if out[len(in)] != 7 {
				t.Errorf("Transform%s wrote past the input length", k.name)
			}
		})
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

// TestTransformCountPrecondition pins the contract: the 4- and 8-wide
// kernels reject counts that are not a multiple of their width and leave
// the output untouched, while the scalar kernels accept any count.
func TestTransformCountPrecondition(t *testing.T) {
	m := Scale3(2)
	a := Affine(m, [3]float32{1, 1, 1})

	tests := []struct {
		name    string
		vectors int
		fn      func(in, out []float32)
		panics  bool
	}{
		{"X1/3 vectors", 3, func(in, out []float32) { TransformX1(&m, in, out) }, false},
		{"AffineX1/5 vectors", 5, func(in, out []float32) { TransformAffineX1(&a, in, out) }, false},
		{"X4/6 vectors", 6, func(in, out []float32) { TransformX4(&m, in, out) }, true},
		{"AffineX4/2 vectors", 2, func(in, out []float32) { TransformAffineX4(&a, in, out) }, true},
		{"X8/12 vectors", 12, func(in, out []float32) { TransformX8(&m, in, out) }, true},
		{"AffineX8/4 vectors", 4, func(in, out []float32) { TransformAffineX8(&a, in, out) }, true},
		{"X8/16 vectors", 16, func(in, out []float32) { TransformX8(&m, in, out) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]float32, 3*tt.vectors)
			for i := range in {
				in[i] = 1
			}
			out := make([]float32, len(in))

			if !tt.panics {
				tt.fn(in, out)
				if out[0] == 0 {
					t.Errorf("%s did not write output", tt.name)
				}
				return
			}

			expectPanic(t, tt.name, func() { tt.fn(in, out) })
			for i, v := range out {
				if v != 0 {
					t.Fatalf("%s wrote out[%d] = %v before panicking", tt.name, i, v)
				}
			}
		})
	}
}

func TestTransformBufferPrecondition(t *testing.T) {
	m := Identity3()

	for _, k := range linearKernels {
		t.Run(k.name, func(t *testing.T) {
			expectPanic(t, "ragged input", func() {
				k.fn(&m, make([]float32, 25), make([]float32, 25))
			})
			expectPanic(t, "short output", func() {
				k.fn(&m, make([]float32, 24), make([]float32, 21))
			})
		})
	}
}
