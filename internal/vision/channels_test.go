package vision

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseChannels_AllChannels(t *testing.T) {
	t.Parallel()

	set, err := ParseChannels(DefaultChannelSpec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ChannelSet{Saliency, Color, Intensity, Orientation, Flicker, Motion, Gist}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("channel set mismatch (-want +got):\n%s", diff)
	}
}

func TestParseChannels_PreservesFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	set, err := ParseChannels("MIS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ChannelSet{Motion, Intensity, Saliency}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("channel set mismatch (-want +got):\n%s", diff)
	}
}

func TestParseChannels_DeduplicatesRepeatedLetters(t *testing.T) {
	t.Parallel()

	set, err := ParseChannels("SSIIS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := set.String(), "SI"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseChannels_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"S", "IM", "GFOMICS", "CCCC"} {
		set, err := ParseChannels(spec)
		if err != nil {
			t.Fatalf("ParseChannels(%q): %v", spec, err)
		}
		again, err := ParseChannels(set.String())
		if err != nil {
			t.Fatalf("re-parse %q: %v", set.String(), err)
		}
		if diff := cmp.Diff(set, again); diff != "" {
			t.Errorf("round trip of %q not stable (-first +second):\n%s", spec, diff)
		}
	}
}

func TestParseChannels_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		spec string
	}{
		{"empty", ""},
		{"lowercase", "scio"},
		{"unknown letter", "SIX"},
		{"whitespace", "S I"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseChannels(tc.spec)
			if err == nil {
				t.Fatalf("ParseChannels(%q) succeeded, want ConfigError", tc.spec)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("error type = %T, want *ConfigError", err)
			}
		})
	}
}

func TestChannelSet_Contains(t *testing.T) {
	t.Parallel()

	set, _ := ParseChannels("IM")
	if !set.Contains(Intensity) || !set.Contains(Motion) {
		t.Error("set should contain intensity and motion")
	}
	if set.Contains(Gist) {
		t.Error("set should not contain gist")
	}
}

func TestChannel_CodesAndNames(t *testing.T) {
	t.Parallel()

	for ch := Channel(0); ch < NumChannels; ch++ {
		if ch.Code() == '?' {
			t.Errorf("channel %d has no code", ch)
		}
		if ch.String() == "unknown" {
			t.Errorf("channel %d has no name", ch)
		}
	}
	if Channel(-1).Code() != '?' || Channel(NumChannels).String() != "unknown" {
		t.Error("out-of-range channels should report unknown")
	}
}
