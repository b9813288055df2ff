// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a YAML artifact describing a conversion run.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/webpbatch/internal/convert"
	"github.com/pdiddy/webpbatch/pkg/types"
)

// FileOutcome is one per-target entry in the report.
type FileOutcome struct {
	Source string              `yaml:"source"`
	Dest   string              `yaml:"dest"`
	Status types.ConvertStatus `yaml:"status"`
	Error  string              `yaml:"error,omitempty"`
}

// Report is the YAML document written after a run: the effective
// configuration, the four counters, and the per-file outcomes.
type Report struct {
	Directory  string        `yaml:"directory"`
	Pattern    string        `yaml:"pattern"`
	Quality    int           `yaml:"quality"`
	Lossless   bool          `yaml:"lossless"`
	FinishedAt time.Time     `yaml:"finished_at"`
	Found      int           `yaml:"found"`
	Converted  int           `yaml:"converted"`
	Skipped    int           `yaml:"skipped"`
	Errors     int           `yaml:"errors"`
	Files      []FileOutcome `yaml:"files"`
}

// Build assembles a Report from the run configuration and outcomes.
func Build(cfg types.ConvertConfig, summary convert.RunSummary, results []convert.Result) Report {
	r := Report{
		Directory:  cfg.Directory,
		Pattern:    cfg.Pattern,
		Quality:    cfg.Quality,
		Lossless:   cfg.Lossless,
		FinishedAt: time.Now().UTC(),
		Found:      summary.Found,
		Converted:  summary.Converted,
		Skipped:    summary.Skipped,
		Errors:     summary.Errors,
	}
	for _, res := range results {
		r.Files = append(r.Files, FileOutcome{
			Source: res.Target.SourcePath,
			Dest:   res.Target.DestPath,
			Status: res.Status,
			Error:  res.Reason,
		})
	}
	return r
}

// Write marshals the report and writes it to path.
func Write(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
