package units

import (
	"math"
	"testing"
)

func TestIsValid(t *testing.T) {
	for _, unit := range ValidUnits {
		if !IsValid(unit) {
			t.Errorf("IsValid(%q) = false, want true", unit)
		}
	}
	for _, unit := range []string{"", "nat", "WOWS", "bels"} {
		if IsValid(unit) {
			t.Errorf("IsValid(%q) = true, want false", unit)
		}
	}
}

func TestNatsToWows(t *testing.T) {
	// One nat is 1/ln2 wows; one wow (belief doubling) is ln2 nats.
	if got := NatsToWows(math.Ln2); math.Abs(got-1) > 1e-15 {
		t.Errorf("NatsToWows(ln2) = %v, want 1", got)
	}
	if got := NatsToWows(0); got != 0 {
		t.Errorf("NatsToWows(0) = %v, want 0", got)
	}
}

func TestConvert(t *testing.T) {
	cases := []struct {
		nats   float64
		target string
		want   float64
	}{
		{math.Ln2, Wows, 1},
		{math.Ln2, Bits, 1},
		{1.5, Nats, 1.5},
		{2.0, "unknown", 2.0}, // unknown unit falls back to nats
	}
	for _, tc := range cases {
		if got := Convert(tc.nats, tc.target); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Convert(%v, %q) = %v, want %v", tc.nats, tc.target, got, tc.want)
		}
	}
}

func TestGetValidUnitsString(t *testing.T) {
	if got := GetValidUnitsString(); got != "nats, bits, wows" {
		t.Errorf("GetValidUnitsString() = %q", got)
	}
}
