package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadTuningConfig_FullConfig(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, `{
		"update_factor": 0.9,
		"channels": "IM",
		"trace_output_dir": "plots",
		"sim_frames": 120
	}`)

	cfg, err := LoadTuningConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.GetUpdateFactor(); got != 0.9 {
		t.Errorf("GetUpdateFactor() = %v, want 0.9", got)
	}
	if got := cfg.GetChannels(); got != "IM" {
		t.Errorf("GetChannels() = %q, want IM", got)
	}
	if got := cfg.GetTraceOutputDir(); got != "plots" {
		t.Errorf("GetTraceOutputDir() = %q, want plots", got)
	}
	if got := cfg.GetSimFrames(); got != 120 {
		t.Errorf("GetSimFrames() = %d, want 120", got)
	}
}

func TestLoadTuningConfig_PartialConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, `{"channels": "S"}`)
	cfg, err := LoadTuningConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &TuningConfig{Channels: cfg.Channels}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("unexpected fields populated (-want +got):\n%s", diff)
	}
	if got := cfg.GetUpdateFactor(); got != 0.95 {
		t.Errorf("GetUpdateFactor() default = %v, want 0.95", got)
	}
	if got := cfg.GetSimWidth(); got != 64 {
		t.Errorf("GetSimWidth() default = %d, want 64", got)
	}
}

func TestLoadTuningConfig_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
	}{
		{"factor too high", `{"update_factor": 1.0}`},
		{"factor zero", `{"update_factor": 0}`},
		{"factor negative", `{"update_factor": -0.5}`},
		{"bad channels", `{"channels": "QRS"}`},
		{"bad sim frames", `{"sim_frames": 0}`},
		{"bad sim width", `{"sim_width": -1}`},
		{"malformed json", `{"update_factor": `},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeTempConfig(t, tc.contents)
			if _, err := LoadTuningConfig(path); err == nil {
				t.Errorf("LoadTuningConfig accepted %s", tc.contents)
			}
		})
	}
}

func TestLoadTuningConfig_RequiresJSONExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTuningConfig(path); err == nil {
		t.Error("non-JSON extension accepted")
	}
}

func TestLoadTuningConfig_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadTuningConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestGetChannels_EmptyStringFallsBack(t *testing.T) {
	t.Parallel()

	empty := ""
	cfg := &TuningConfig{Channels: &empty}
	if got := cfg.GetChannels(); got != "SCIOFMG" {
		t.Errorf("GetChannels() = %q, want default SCIOFMG", got)
	}
}
