// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan enumerates conversion candidates in a directory.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pdiddy/webpbatch/pkg/types"
)

// TargetExt is the filename suffix written for converted images.
const TargetExt = ".webp"

// Targets lists the regular files in dir whose name matches pattern and pairs
// each with its destination path. Matching is case-insensitive and
// non-recursive. The returned slice is ordered by filename; an empty slice is
// not an error. A missing or unreadable directory is.
func Targets(dir, pattern string) ([]types.Target, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by name, so run order is
	// deterministic regardless of the underlying filesystem.
	var targets []types.Target
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ok, err := doublestar.Match(strings.ToLower(pattern), strings.ToLower(name))
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if !ok {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		targets = append(targets, types.Target{
			SourcePath: filepath.Join(dir, name),
			DestPath:   filepath.Join(dir, stem+TargetExt),
		})
	}
	return targets, nil
}
