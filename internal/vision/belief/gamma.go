package belief

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// gammaKL returns KL(Gamma(a1,b1) || Gamma(a0,b0)) in nats, for the
// shape/rate parameterization. This is the surprise of moving from the
// prior (a0,b0) to the posterior (a1,b1):
//
//	KL = (a1-a0)*psi(a1) - lnGamma(a1) + lnGamma(a0)
//	     + a0*ln(b1/b0) + a1*(b0-b1)/b1
//
// It is zero iff the two distributions coincide and positive otherwise.
// All parameters must be positive; the caller enforces the hyperparameter
// floor before calling.
func gammaKL(a1, b1, a0, b0 float64) float64 {
	lg1, _ := math.Lgamma(a1)
	lg0, _ := math.Lgamma(a0)
	return (a1-a0)*mathext.Digamma(a1) - lg1 + lg0 +
		a0*math.Log(b1/b0) + a1*(b0-b1)/b1
}
