package interp

import (
	"math"
	"testing"
)

func TestAtReproducesNodes(t *testing.T) {
	xs := []float64{30., 100., 1000., 5000., 30000.}
	ys := []float64{3.2, 2.21, 12.26, 14.05, 14.09}
	ip, err := New(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	for i := range xs {
		if got := ip.At(xs[i]); math.Abs(got-ys[i]) > 1e-12 {
			t.Errorf("At(%g) = %g, want %g", xs[i], got, ys[i])
		}
	}
}

func TestAtPreservesMonotonicity(t *testing.T) {
	// steep data that an unconstrained cubic would overshoot
	xs := []float64{0., 1., 2., 3., 4.}
	ys := []float64{0., 0.01, 0.99, 1., 1.}
	ip, err := New(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	prev := ip.At(0.)
	for x := 0.01; x <= 4.; x += 0.01 {
		cur := ip.At(x)
		if cur < prev-1e-12 {
			t.Fatalf("interpolant decreases at x=%g: %g after %g", x, cur, prev)
		}
		if cur < ys[0]-1e-12 || cur > ys[len(ys)-1]+1e-12 {
			t.Fatalf("overshoot at x=%g: %g outside [%g, %g]", x, cur, ys[0], ys[len(ys)-1])
		}
		prev = cur
	}
}

func TestAtClampsOutsideDomain(t *testing.T) {
	xs := []float64{1., 2., 3.}
	ys := []float64{10., 20., 25.}
	ip, err := New(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	if got := ip.At(0.); math.Abs(got-10.) > 1e-12 {
		t.Errorf("At(0) = %g, want clamp to 10", got)
	}
	if got := ip.At(99.); math.Abs(got-25.) > 1e-12 {
		t.Errorf("At(99) = %g, want clamp to 25", got)
	}
}

func TestNewRejectsBadColumns(t *testing.T) {
	if _, err := New([]float64{1.}, []float64{2.}); err == nil {
		t.Error("single node accepted")
	}
	if _, err := New([]float64{1., 2.}, []float64{1.}); err == nil {
		t.Error("mismatched columns accepted")
	}
	if _, err := New([]float64{2., 1.}, []float64{1., 2.}); err == nil {
		t.Error("descending nodes accepted")
	}
	// duplicated absorption-edge row
	if _, err := New([]float64{30., 1839., 1839., 30000.}, []float64{3.2, 10.7, 4., 14.1}); err == nil {
		t.Error("duplicate node accepted")
	}
}
