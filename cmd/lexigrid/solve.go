package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/lexigrid"
	"github.com/aretw0/lexigrid/internal/cli"
	"github.com/aretw0/lexigrid/internal/config"
	"github.com/aretw0/lexigrid/internal/logging"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve DICTIONARY BOARD",
	Short: "Find every dictionary word present on a board",
	Long: `Reads a newline-delimited word list and a board file, searches the board
and prints the number of matches (or the words themselves with --words).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		level, _ := cmd.Flags().GetString("log-level")
		logger := logging.New(logging.ParseLevel(level))

		// Flags win over the config file.
		strategy := cfg.Strategy
		if cmd.Flags().Changed("strategy") {
			strategy, _ = cmd.Flags().GetString("strategy")
		}
		workers := cfg.Workers
		if cmd.Flags().Changed("workers") {
			workers, _ = cmd.Flags().GetInt("workers")
		}
		minLength := cfg.MinWordLength
		if cmd.Flags().Changed("min-length") {
			minLength, _ = cmd.Flags().GetInt("min-length")
		}
		printWords, _ := cmd.Flags().GetBool("words")

		if strategy != "" && strategy != string(lexigrid.StrategyFilter) && strategy != string(lexigrid.StrategyTrie) {
			fmt.Printf("Error: unknown strategy %q\n", strategy)
			os.Exit(1)
		}

		err = cli.RunSolve(cli.SolveOptions{
			DictionaryPath: args[0],
			BoardPath:      args[1],
			Strategy:       lexigrid.Strategy(strategy),
			Workers:        workers,
			MinWordLength:  minLength,
			PrintWords:     printWords,
			Logger:         logger,
			Out:            os.Stdout,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().String("strategy", string(lexigrid.StrategyFilter), "Solve strategy: filter or trie")
	solveCmd.Flags().Int("workers", 0, "Worker count for the filter strategy (0 = single-threaded, negative = one per CPU)")
	solveCmd.Flags().Int("min-length", 0, "Minimum word length (default 4)")
	solveCmd.Flags().BoolP("words", "w", false, "Print the found words, not just the count")
}
