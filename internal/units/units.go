// Package units provides shared constants and conversion for surprise units
package units

import "math"

// Unit constants
const (
	Nats = "nats"
	Bits = "bits"
	Wows = "wows"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{Nats, Bits, Wows}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "nats, bits, wows"
}

// NatsToWows converts an information quantity from nats to wows. One wow is
// one belief doubling, i.e. one bit, so the conversion divides by ln(2).
func NatsToWows(nats float64) float64 {
	return nats / math.Ln2
}

// Convert converts a surprise quantity from nats to the target units.
// The divergence core computes in nats (natural-log KL divergence).
func Convert(nats float64, targetUnits string) float64 {
	switch targetUnits {
	case Bits, Wows:
		return nats / math.Ln2
	case Nats:
		return nats // no conversion needed
	default:
		return nats // default to nats if unknown unit
	}
}
