// Package belief owns the per-pixel Bayesian belief model for one feature
// channel.
//
// Responsibilities: Gamma hyperparameter grids (one alpha/beta pair per
// pixel), the forgetting-weighted conjugate update, and the closed-form
// KL divergence between posterior and prior beliefs. Surfaces carry no
// channel identity; the surprise engine maps channels to surfaces.
//
// All divergences produced here are in nats. Unit conversion to wows is the
// aggregator's concern, not this package's.
package belief
