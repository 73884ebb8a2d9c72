// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fcsketch CLI, a thin shell around
// the sketch scan: every subcommand reads a document, scans it, and reports
// or stores the result.
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

// rootCmd is the base command for the fcsketch CLI.
var rootCmd = &cobra.Command{
	Use:   "fcsketch",
	Short: "Extract 2D sketch geometry and constraints from FreeCAD documents",
	Long: `fcsketch reads .FCStd files (or raw Document.xml streams) and extracts
every Sketcher::SketchObject as a typed record: geometry elements with
derived endpoints, constraints with their references, and external
geometry. The scan is read-only; nothing is written back to the source.

Subcommands: scan reports sketches, export serializes them to YAML or
JSON, index stores summaries in a SQLite catalog, and list queries it.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./fcsketch.yaml or ~/.config/fcsketch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fcsketch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "fcsketch"))
		}
	}

	viper.SetEnvPrefix("FCSKETCH")
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
