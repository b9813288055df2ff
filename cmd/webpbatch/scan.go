// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/webpbatch/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List conversion candidates without converting",
	Long: `Scan performs a dry run: it lists the PNG files the convert command would
process, marking each as pending or done depending on whether its WebP
sibling already exists. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringP("directory", "d", defaultDirectory, "directory containing PNG files")
	scanCmd.Flags().String("pattern", defaultPattern, "source filename pattern, matched case-insensitively")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("directory")
	pattern, _ := cmd.Flags().GetString("pattern")

	targets, err := scan.Targets(dir, pattern)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Printf("No PNG files found in %q.\n", dir)
		return nil
	}

	pending := 0
	for _, t := range targets {
		mark := "pending"
		if _, err := os.Stat(t.DestPath); err == nil {
			mark = "done"
		} else {
			pending++
		}
		fmt.Printf("%-8s %s\n", mark, filepath.Base(t.SourcePath))
	}
	fmt.Printf("\n%d file(s), %d pending conversion\n", len(targets), pending)
	return nil
}
