// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for a single conversion run. It is built once
// at entry from flags, config file, and defaults, then treated as read-only.
type ConvertConfig struct {
	// Directory is the source and destination directory for the run.
	Directory string `json:"directory" yaml:"directory"`

	// Quality is the lossy WebP quality, 0-100 inclusive. Ignored when
	// Lossless is set.
	Quality int `json:"quality" yaml:"quality"`

	// Lossless selects lossless WebP compression.
	Lossless bool `json:"lossless" yaml:"lossless"`

	// Pattern is the source filename pattern, matched case-insensitively
	// against directory entries (default "*.png").
	Pattern string `json:"pattern" yaml:"pattern"`

	// ReportPath, when non-empty, is where the YAML run report is written.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}
