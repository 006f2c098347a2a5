package search

import "github.com/aretw0/lexigrid/pkg/board"

// MightContain is the approximate existence filter: it reports whether
// some chain of adjacent cells spells word, where the chain is allowed
// to revisit cells. A false result proves the word is not on the board;
// a true result only means the exact search is worth running. The
// reuse-blindness is intentional; checking it exactly here would cost
// what the exact search costs.
//
// Runs in O(len(word) × N²) using the reach table as scratch.
func (e *Engine) MightContain(word string) bool {
	if len(word) == 0 {
		return false
	}
	n := e.board.Size()
	e.reach.reset(len(word), n)

	for k := 0; k < len(word); k++ {
		marked := false
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if e.board.MustAt(r, c) != word[k] {
					continue
				}
				if k == 0 {
					e.reach.mark(0, r, c)
					marked = true
					continue
				}
				for q := range e.board.Neighbors(board.Position{Row: r, Col: c}) {
					if e.reach.at(k-1, q.Row, q.Col) {
						e.reach.mark(k, r, c)
						marked = true
						break
					}
				}
				// Any cell reachable at the final position settles it.
				if marked && k == len(word)-1 {
					return true
				}
			}
		}
		if !marked {
			return false
		}
	}
	return true
}
