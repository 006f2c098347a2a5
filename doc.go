/*
Package lexigrid finds every dictionary word that can be traced as a
path of adjacent letters on a square letter grid, where each cell is
used at most once per word and adjacency includes diagonals.

# Concept

A solve takes two inputs: the board as newline-delimited rows of ASCII
lowercase letters (square, at least 3x3), and a dictionary as a slice of
candidate words. Words shorter than the minimum length or containing
letters absent from the board are discarded up front; the rest are
searched for as simple paths over the 8-directional adjacency relation.

Two strategies produce the same result set:

  - StrategyFilter checks each word independently: a cheap dynamic
    reachability filter rejects most absent words, and an exact
    backtracking search confirms the survivors. This strategy can fan
    the dictionary out over worker goroutines.
  - StrategyTrie loads the dictionary into a prefix tree and walks the
    board once, pruning every branch the tree has no edge for.

The reachability filter intentionally ignores the no-reuse rule (it is
a necessary condition only), which is why the exact search always runs
behind it.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/lexigrid"
	)

	func main() {
		solver := lexigrid.New(lexigrid.WithStrategy(lexigrid.StrategyTrie))

		result, err := solver.Solve("abcd\nefgh\nijkl\nmnop", []string{
			"abcd", "afkp", "lies",
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Found %d matches!\n", result.Count())
		for _, w := range result.Words {
			fmt.Println(w)
		}
	}

Malformed boards are reported as a *board.SizeError; everything else
(reading files, argument handling, exit codes) is the caller's concern.
*/
package lexigrid
