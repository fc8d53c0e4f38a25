// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the helpsplit CLI.
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

// rootCmd is the base command for the helpsplit CLI.
var rootCmd = &cobra.Command{
	Use:   "helpsplit",
	Short: "Split package-manager help output into per-section files",
	Long: `helpsplit parses the help output of a command-line package manager and
splits it into per-section files, using the text's indentation conventions:
main sections start at column 0 in uppercase, action items are indented by
exactly two spaces inside the ACTIONS section.

Pipe help output into the extract subcommand to write one file per action
plus the OPTIONS section, or use structure to inspect what the parser sees
without writing anything.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./helpsplit.yaml or ~/.config/helpsplit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("helpsplit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "helpsplit"))
		}
	}

	viper.SetEnvPrefix("HELPSPLIT")
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
