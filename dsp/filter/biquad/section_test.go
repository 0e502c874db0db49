package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// lowpassLike is a smoothing section used throughout the tests.
var lowpassLike = Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

func TestPassthrough(t *testing.T) {
	if got := Passthrough(); got != (Coefficients{B0: 1}) {
		t.Fatalf("Passthrough() = %#v", got)
	}
}

func TestRounded(t *testing.T) {
	c := Coefficients{B0: 0.292893218, B1: 0.585786437, B2: -0.00004, A1: 1.23456, A2: 0.171572875}
	got := c.Rounded(4)
	want := Coefficients{B0: 0.2929, B1: 0.5858, B2: 0, A1: 1.2346, A2: 0.1716}
	for i, pair := range [][2]float64{
		{got.B0, want.B0}, {got.B1, want.B1}, {got.B2, want.B2}, {got.A1, want.A1}, {got.A2, want.A2},
	} {
		if !almostEqual(pair[0], pair[1], 1e-12) {
			t.Errorf("coef %d: got %v, want %v", i, pair[0], pair[1])
		}
	}
	if c.B0 != 0.292893218 {
		t.Fatal("Rounded modified the receiver")
	}
}

func TestApplySection_Passthrough(t *testing.T) {
	input := []float64{3, -1, 0.5, 42, 1e-9, -7.25}
	for _, b := range []Boundary{BoundaryReplicate, BoundaryZero} {
		got := ApplySection(input, Passthrough(), WithBoundary(b))
		for i := range input {
			if got[i] != input[i] {
				t.Fatalf("%v: sample %d = %v, want %v", b, i, got[i], input[i])
			}
		}
	}
}

func TestApplySection_ConstantPassthrough(t *testing.T) {
	input := []float64{5, 5, 5, 5}
	got := ApplySection(input, Passthrough())
	for i, v := range got {
		if v != 5 {
			t.Fatalf("sample %d = %v, want 5", i, v)
		}
	}
}

func TestApplySection_DoesNotModifyInput(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7}
	orig := append([]float64(nil), input...)
	_ = ApplySection(input, lowpassLike)
	for i := range input {
		if input[i] != orig[i] {
			t.Fatalf("input modified at index %d", i)
		}
	}
}

func TestApplySection_ImpulseZeroBoundary(t *testing.T) {
	// n=0: y=0.25
	// n=1: y=0.5*1 + 0.2*0.25 = 0.55
	// n=2: y=0.25*1 + 0.2*0.55 - 0.04*0.25 = 0.35
	// n=3: y=0.2*0.35 - 0.04*0.55 = 0.048
	got := ApplySection([]float64{1, 0, 0, 0}, lowpassLike, WithBoundary(BoundaryZero))
	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i := range want {
		if !almostEqual(got[i], want[i], eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, got[i], want[i])
		}
	}
}

func TestApplySection_ReplicateBoundary(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.5, A2: 0.25}
	x := []float64{10, 2, 4}

	got := ApplySection(x, c)

	y0 := c.B0*x[0] + (c.B1+c.B2)*x[0]
	y1 := c.B0*x[1] + c.B1*x[0] + c.B2*x[0] - c.A1*y0
	y2 := c.B0*x[2] + c.B1*x[1] + c.B2*x[0] - c.A1*y1 - c.A2*y0
	want := []float64{y0, y1, y2}
	for i := range want {
		if !almostEqual(got[i], want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestApplySection_ZeroBoundaryDiffersFromReplicate(t *testing.T) {
	x := []float64{10, 10, 10}
	rep := ApplySection(x, lowpassLike)
	zero := ApplySection(x, lowpassLike, WithBoundary(BoundaryZero))

	if !almostEqual(rep[0], 10, eps) {
		t.Fatalf("replicate y[0] = %v, want 10 (unity DC gain numerator)", rep[0])
	}
	if !almostEqual(zero[0], 2.5, eps) {
		t.Fatalf("zero y[0] = %v, want 2.5", zero[0])
	}
}

func TestApplySection_Empty(t *testing.T) {
	got := ApplySection(nil, lowpassLike)
	if got == nil || len(got) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", got)
	}
}

func TestApplySection_PureDelay(t *testing.T) {
	got := ApplySection([]float64{1, 2, 3, 4, 5}, Coefficients{B1: 1}, WithBoundary(BoundaryZero))
	want := []float64{0, 1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestApplySection_NaNPropagates(t *testing.T) {
	nan := math.NaN()
	got := ApplySection([]float64{1, 2}, Coefficients{B0: nan})
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Fatalf("sample %d = %v, want NaN", i, v)
		}
	}
}

func TestBoundaryString(t *testing.T) {
	for b, want := range map[Boundary]string{
		BoundaryReplicate: "replicate",
		BoundaryZero:      "zero",
		Boundary(9):       "unknown",
	} {
		if got := b.String(); got != want {
			t.Errorf("%d: got %q, want %q", int(b), got, want)
		}
	}
}
