// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/webpbatch/internal/convert"
	"github.com/pdiddy/webpbatch/pkg/types"
)

func TestBuild(t *testing.T) {
	cfg := types.ConvertConfig{
		Directory: "artwork",
		Pattern:   "*.png",
		Quality:   85,
	}
	summary := convert.RunSummary{Found: 3, Converted: 1, Skipped: 1, Errors: 1}
	results := []convert.Result{
		{Target: types.Target{SourcePath: "artwork/a.png", DestPath: "artwork/a.webp"}, Status: types.StatusConverted},
		{Target: types.Target{SourcePath: "artwork/b.png", DestPath: "artwork/b.webp"}, Status: types.StatusSkipped},
		{Target: types.Target{SourcePath: "artwork/c.png", DestPath: "artwork/c.webp"}, Status: types.StatusFailed, Reason: "decoding failed"},
	}

	r := Build(cfg, summary, results)

	assert.Equal(t, "artwork", r.Directory)
	assert.Equal(t, 3, r.Found)
	assert.Equal(t, 1, r.Converted)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, 1, r.Errors)
	assert.False(t, r.FinishedAt.IsZero())
	require.Len(t, r.Files, 3)
	assert.Equal(t, types.StatusFailed, r.Files[2].Status)
	assert.Equal(t, "decoding failed", r.Files[2].Error)
}

func TestWrite(t *testing.T) {
	r := Report{
		Directory: "artwork",
		Pattern:   "*.png",
		Quality:   90,
		Found:     1,
		Converted: 1,
		Files: []FileOutcome{
			{Source: "artwork/a.png", Dest: "artwork/a.webp", Status: types.StatusConverted},
		},
	}

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, Write(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, 90, got.Quality)
	assert.Equal(t, 1, got.Converted)
	require.Len(t, got.Files, 1)
	assert.Equal(t, types.StatusConverted, got.Files[0].Status)
	// Successful entries omit the error key.
	assert.NotContains(t, string(data), "error:")
}

func TestWrite_BadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "run.yaml"), Report{})
	assert.Error(t, err)
}
