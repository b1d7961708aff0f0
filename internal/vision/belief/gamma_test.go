package belief

import (
	"math"
	"testing"
)

func TestGammaKL_ZeroAtIdenticalParams(t *testing.T) {
	t.Parallel()

	cases := [][2]float64{{1, 1}, {0.5, 2}, {10, 0.25}, {123.4, 56.7}}
	for _, c := range cases {
		if d := gammaKL(c[0], c[1], c[0], c[1]); math.Abs(d) > 1e-12 {
			t.Errorf("KL(Gamma(%v,%v)||same) = %g, want 0", c[0], c[1], d)
		}
	}
}

func TestGammaKL_PositiveForDistinctParams(t *testing.T) {
	t.Parallel()

	cases := [][4]float64{
		{2, 1, 1, 1},
		{1, 2, 1, 1},
		{0.5, 0.5, 3, 3},
		{20, 5, 19, 5},
	}
	for _, c := range cases {
		d := gammaKL(c[0], c[1], c[2], c[3])
		if !(d > 0) {
			t.Errorf("KL(Gamma(%v,%v)||Gamma(%v,%v)) = %g, want > 0", c[0], c[1], c[2], c[3], d)
		}
	}
}

func TestGammaKL_GrowsWithDivergence(t *testing.T) {
	t.Parallel()

	// Moving the posterior shape further from the prior must not shrink
	// the divergence.
	prev := 0.0
	for _, a1 := range []float64{1.5, 2, 4, 8} {
		d := gammaKL(a1, 1, 1, 1)
		if d < prev {
			t.Fatalf("KL not monotone in shape distance: KL at a1=%v is %g < %g", a1, d, prev)
		}
		prev = d
	}
}

func TestGammaKL_FiniteAtFloor(t *testing.T) {
	t.Parallel()

	d := gammaKL(HyperFloor, HyperFloor, HyperFloor, HyperFloor)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		t.Errorf("KL at floor parameters not finite: %g", d)
	}
}
