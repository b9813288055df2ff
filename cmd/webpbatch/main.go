// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the webpbatch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the webpbatch CLI.
var rootCmd = &cobra.Command{
	Use:   "webpbatch",
	Short: "Batch-convert PNG images to WebP",
	Long: `webpbatch converts the PNG files in a directory to WebP format, writing
each output next to its source with the same filename stem. Files whose WebP
sibling already exists are skipped, so re-running over the same directory is
cheap and idempotent. Source PNGs are never modified or deleted.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./webpbatch.yaml or ~/.config/webpbatch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("webpbatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "webpbatch"))
		}
	}

	viper.SetEnvPrefix("WEBPBATCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
