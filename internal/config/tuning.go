// Package config loads and validates the JSON tuning configuration for the
// surprise pipeline. Fields are pointer-typed so partial configs are safe:
// anything omitted falls back to the Get* defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/surprise.report/internal/vision"
)

// TuningConfig represents the tuning parameters for a surprise run. The
// same JSON shape is used for startup configuration and for runtime
// updates pushed at the engine's setters.
type TuningConfig struct {
	// Surprise engine params
	UpdateFactor *float64 `json:"update_factor,omitempty"`
	Channels     *string  `json:"channels,omitempty"`

	// Diagnostic trace params
	TraceOutputDir *string `json:"trace_output_dir,omitempty"`

	// Simulator params (surprise-sim only)
	SimFrames     *int `json:"sim_frames,omitempty"`
	SimWidth      *int `json:"sim_width,omitempty"`
	SimHeight     *int `json:"sim_height,omitempty"`
	SimPatchFrame *int `json:"sim_patch_frame,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with all fields set to nil.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The file must
// have a .json extension and stay under the max file size. Fields omitted
// from the JSON retain their defaults, so partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *TuningConfig) Validate() error {
	if c.UpdateFactor != nil {
		if !(*c.UpdateFactor > 0 && *c.UpdateFactor < 1) {
			return fmt.Errorf("update_factor must be in the open interval (0,1), got %f", *c.UpdateFactor)
		}
	}

	if c.Channels != nil {
		if _, err := vision.ParseChannels(*c.Channels); err != nil {
			return fmt.Errorf("invalid channels %q: %w", *c.Channels, err)
		}
	}

	if c.SimFrames != nil && *c.SimFrames <= 0 {
		return fmt.Errorf("sim_frames must be positive, got %d", *c.SimFrames)
	}
	if c.SimWidth != nil && *c.SimWidth <= 0 {
		return fmt.Errorf("sim_width must be positive, got %d", *c.SimWidth)
	}
	if c.SimHeight != nil && *c.SimHeight <= 0 {
		return fmt.Errorf("sim_height must be positive, got %d", *c.SimHeight)
	}

	return nil
}

// GetUpdateFactor returns the update_factor value or the default.
func (c *TuningConfig) GetUpdateFactor() float64 {
	if c.UpdateFactor == nil {
		return 0.95 // default
	}
	return *c.UpdateFactor
}

// GetChannels returns the channels value or the default (all channels).
func (c *TuningConfig) GetChannels() string {
	if c.Channels == nil || *c.Channels == "" {
		return vision.DefaultChannelSpec
	}
	return *c.Channels
}

// GetTraceOutputDir returns the trace_output_dir value or "" (tracing
// disabled).
func (c *TuningConfig) GetTraceOutputDir() string {
	if c.TraceOutputDir == nil {
		return ""
	}
	return *c.TraceOutputDir
}

// GetSimFrames returns the sim_frames value or the default.
func (c *TuningConfig) GetSimFrames() int {
	if c.SimFrames == nil {
		return 60
	}
	return *c.SimFrames
}

// GetSimWidth returns the sim_width value or the default.
func (c *TuningConfig) GetSimWidth() int {
	if c.SimWidth == nil {
		return 64
	}
	return *c.SimWidth
}

// GetSimHeight returns the sim_height value or the default.
func (c *TuningConfig) GetSimHeight() int {
	if c.SimHeight == nil {
		return 48
	}
	return *c.SimHeight
}

// GetSimPatchFrame returns the sim_patch_frame value or the default.
func (c *TuningConfig) GetSimPatchFrame() int {
	if c.SimPatchFrame == nil {
		return 30
	}
	return *c.SimPatchFrame
}
