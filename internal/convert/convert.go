// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the batch PNG-to-WebP conversion loop.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/webpbatch/internal/codec"
	"github.com/pdiddy/webpbatch/pkg/types"
)

// RunSummary holds the outcome counters of a batch run. At completion
// Found equals Total().
type RunSummary struct {
	Found     int
	Converted int
	Skipped   int
	Errors    int
}

// Total returns the number of targets processed.
func (r RunSummary) Total() int {
	return r.Converted + r.Skipped + r.Errors
}

// HasFailures reports whether any target failed conversion.
func (r RunSummary) HasFailures() bool {
	return r.Errors > 0
}

// Result records the outcome of a single target for the run report.
type Result struct {
	Target types.Target
	Status types.ConvertStatus
	// Reason is the failure description for failed targets, empty otherwise.
	Reason string
}

// File converts a single target, writing a one-line notice to w. If the
// destination already exists the target is skipped; a destination that
// exists as a directory also counts as skipped. The returned error carries
// the failure reason for failed targets and is nil otherwise.
func File(enc codec.Encoder, target types.Target, cfg types.ConvertConfig, w io.Writer) (types.ConvertStatus, error) {
	name := filepath.Base(target.SourcePath)

	if _, err := os.Stat(target.DestPath); err == nil {
		fmt.Fprintf(w, "Skipping %s - %s already exists\n", name, filepath.Base(target.DestPath))
		return types.StatusSkipped, nil
	}

	img, err := codec.Decode(target.SourcePath)
	if err != nil {
		fmt.Fprintf(w, "Error converting %s: %v\n", name, err)
		return types.StatusFailed, err
	}

	data, err := enc.Encode(img, codec.EncodeOptions{
		Quality:   cfg.Quality,
		Lossless:  cfg.Lossless,
		KeepAlpha: codec.HasAlpha(img),
	})
	if err != nil {
		fmt.Fprintf(w, "Error converting %s: %v\n", name, err)
		return types.StatusFailed, err
	}

	if err := os.WriteFile(target.DestPath, data, 0o644); err != nil {
		fmt.Fprintf(w, "Error converting %s: %v\n", name, err)
		return types.StatusFailed, err
	}

	fmt.Fprintf(w, "Converted: %s -> %s\n", name, filepath.Base(target.DestPath))
	return types.StatusConverted, nil
}

// Batch processes targets sequentially, printing per-file notices and a
// final summary block to w. One failure never aborts the batch; the source
// files are never modified.
func Batch(enc codec.Encoder, targets []types.Target, cfg types.ConvertConfig, w io.Writer) (RunSummary, []Result) {
	summary := RunSummary{Found: len(targets)}
	results := make([]Result, 0, len(targets))

	for _, t := range targets {
		status, err := File(enc, t, cfg, w)
		switch status {
		case types.StatusConverted:
			summary.Converted++
		case types.StatusSkipped:
			summary.Skipped++
		case types.StatusFailed:
			summary.Errors++
		}
		res := Result{Target: t, Status: status}
		if err != nil {
			res.Reason = err.Error()
		}
		results = append(results, res)
	}

	printSummary(w, summary)
	return summary, results
}

// printSummary writes the aggregate report block.
func printSummary(w io.Writer, s RunSummary) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "CONVERSION SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total PNG files found: %d\n", s.Found)
	fmt.Fprintf(w, "Successfully converted: %d\n", s.Converted)
	fmt.Fprintf(w, "Skipped (WebP exists): %d\n", s.Skipped)
	fmt.Fprintf(w, "Errors: %d\n", s.Errors)
	fmt.Fprintln(w, rule)
}
