// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/webpbatch/internal/codec"
	"github.com/pdiddy/webpbatch/internal/convert"
	"github.com/pdiddy/webpbatch/internal/report"
	"github.com/pdiddy/webpbatch/internal/scan"
	"github.com/pdiddy/webpbatch/pkg/types"
)

const (
	defaultDirectory = "./official-artwork"
	defaultQuality   = 85
	defaultPattern   = "*.png"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert PNG files in a directory to WebP",
	Long: `Convert enumerates the PNG files in the target directory and encodes each
as WebP next to its source. Existing WebP siblings are skipped. A failing
file is reported and counted but never aborts the batch; the exit code is
non-zero only when the directory itself cannot be read.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("directory", "d", defaultDirectory, "directory containing PNG files")
	convertCmd.Flags().IntP("quality", "q", defaultQuality, "WebP quality, 0-100")
	convertCmd.Flags().BoolP("lossless", "l", false, "use lossless compression (ignores quality)")
	convertCmd.Flags().String("pattern", defaultPattern, "source filename pattern, matched case-insensitively")
	convertCmd.Flags().String("report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(convertCmd)
}

// convertConfig resolves the run configuration with flag > config file >
// built-in default precedence and validates it.
func convertConfig(cmd *cobra.Command) (types.ConvertConfig, error) {
	cfg := types.ConvertConfig{
		Directory: defaultDirectory,
		Quality:   defaultQuality,
		Pattern:   defaultPattern,
	}

	if v := viper.GetString("directory"); v != "" {
		cfg.Directory = v
	}
	if viper.IsSet("quality") {
		cfg.Quality = viper.GetInt("quality")
	}
	if viper.IsSet("lossless") {
		cfg.Lossless = viper.GetBool("lossless")
	}
	if v := viper.GetString("pattern"); v != "" {
		cfg.Pattern = v
	}

	if cmd.Flags().Changed("directory") {
		cfg.Directory, _ = cmd.Flags().GetString("directory")
	}
	if cmd.Flags().Changed("quality") {
		cfg.Quality, _ = cmd.Flags().GetInt("quality")
	}
	if cmd.Flags().Changed("lossless") {
		cfg.Lossless, _ = cmd.Flags().GetBool("lossless")
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern, _ = cmd.Flags().GetString("pattern")
	}
	cfg.ReportPath, _ = cmd.Flags().GetString("report")

	if cfg.Quality < 0 || cfg.Quality > 100 {
		return cfg, fmt.Errorf("quality must be between 0 and 100, got %d", cfg.Quality)
	}
	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := convertConfig(cmd)
	if err != nil {
		return err
	}

	printBanner(os.Stdout, cfg)

	targets, err := scan.Targets(cfg.Directory, cfg.Pattern)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Printf("No PNG files found in %q.\n", cfg.Directory)
		return nil
	}
	fmt.Printf("Found %d PNG files in %q\n", len(targets), cfg.Directory)

	summary, results := convert.Batch(codec.WebPEncoder{}, targets, cfg, os.Stdout)

	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, report.Build(cfg, summary, results)); err != nil {
			return err
		}
	}

	// Per-file failures are already counted in the summary; the run itself
	// completed, so the exit code stays zero.
	return nil
}

// printBanner echoes the effective configuration before the run starts.
func printBanner(w io.Writer, cfg types.ConvertConfig) {
	rule := strings.Repeat("=", 30)
	fmt.Fprintln(w, "PNG to WebP Converter")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Directory: %s\n", cfg.Directory)
	if cfg.Lossless {
		fmt.Fprintln(w, "Quality: Lossless")
	} else {
		fmt.Fprintf(w, "Quality: %d\n", cfg.Quality)
	}
	fmt.Fprintln(w, rule)
}
