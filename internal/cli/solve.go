package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/lexigrid"
)

// SolveOptions carries everything one solve session needs.
type SolveOptions struct {
	DictionaryPath string
	BoardPath      string
	Strategy       lexigrid.Strategy
	Workers        int
	MinWordLength  int
	// PrintWords lists the found words before the match count.
	PrintWords bool
	Logger     *slog.Logger
	Out        io.Writer
}

// RunSolve loads the inputs, runs one solve and prints the outcome.
func RunSolve(opts SolveOptions) error {
	words, err := LoadWords(opts.DictionaryPath)
	if err != nil {
		return err
	}
	boardText, err := LoadBoard(opts.BoardPath)
	if err != nil {
		return err
	}

	solver := lexigrid.New(
		lexigrid.WithStrategy(opts.Strategy),
		lexigrid.WithWorkers(opts.Workers),
		lexigrid.WithMinWordLength(opts.MinWordLength),
		lexigrid.WithLogger(opts.Logger),
	)

	result, err := solver.Solve(boardText, words)
	if err != nil {
		return err
	}

	if opts.PrintWords {
		for _, w := range result.Words {
			fmt.Fprintln(opts.Out, w)
		}
	}
	fmt.Fprintf(opts.Out, "Found %d matches!\n", result.Count())
	return nil
}
