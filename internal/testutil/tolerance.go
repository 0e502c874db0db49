package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ApproxSlices returns the cmp options used to compare float slices with an
// absolute tolerance. NaNs compare equal to NaNs.
func ApproxSlices(eps float64) cmp.Options {
	return cmp.Options{
		cmpopts.EquateApprox(0, eps),
		cmpopts.EquateNaNs(),
		cmpopts.EquateEmpty(),
	}
}

// SliceDiff reports the differences between got and want beyond eps, or ""
// if they match.
func SliceDiff(got, want []float64, eps float64) string {
	return cmp.Diff(want, got, ApproxSlices(eps))
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if diff := SliceDiff(got, want, eps); diff != "" {
		t.Fatalf("slices differ (-want +got):\n%s", diff)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
