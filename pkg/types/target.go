// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertStatus is the outcome of processing a single conversion target.
type ConvertStatus string

const (
	StatusConverted ConvertStatus = "converted"
	StatusSkipped   ConvertStatus = "skipped"
	StatusFailed    ConvertStatus = "failed"
)

// Target pairs a source image with its destination path: the same filename
// stem with the WebP suffix, in the same directory.
type Target struct {
	// SourcePath is the filesystem path of the source PNG.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// DestPath is the filesystem path the WebP output is written to.
	DestPath string `json:"dest_path" yaml:"dest_path"`
}
