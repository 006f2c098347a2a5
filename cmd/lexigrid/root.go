package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lexigrid",
	Short: "Lexigrid finds dictionary words hidden on square letter grids",
	Long: `Lexigrid searches a square letter board for every dictionary word that
can be traced as a path of adjacent cells (diagonals included), using
each cell at most once per word.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a lexigrid.yaml or .json configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
