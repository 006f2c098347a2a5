package lexigrid_test

import (
	"fmt"
	"log"

	"github.com/aretw0/lexigrid"
)

func Example() {
	solver := lexigrid.New(lexigrid.WithStrategy(lexigrid.StrategyTrie))

	result, err := solver.Solve("abcd\nefgh\nijkl\nmnop", []string{
		"abcd", "afkp", "lies", "mapb",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d matches!\n", result.Count())
	for _, w := range result.Words {
		fmt.Println(w)
	}
	// Output:
	// Found 2 matches!
	// abcd
	// afkp
}
