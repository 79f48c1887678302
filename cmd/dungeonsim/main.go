// Package main is the headless dungeon simulator.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/automoto/dungeonrush/config"
	"github.com/spf13/cobra"
)

var (
	overridesPath string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "dungeonsim",
	Short: "Headless dungeon generation and simulation",
	Long:  `dungeonsim generates dungeon layouts and runs the simulation without a window.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if overridesPath == "" {
			return nil
		}
		return config.LoadOverridesFile(overridesPath)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&overridesPath, "config", "", "YAML tuning overrides")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(runCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
