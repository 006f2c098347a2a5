package search

import (
	"github.com/aretw0/lexigrid/pkg/board"
	"github.com/aretw0/lexigrid/pkg/trie"
)

// FindWords returns the distinct dictionary words present on the board
// in a single sweep: the candidates are loaded into a prefix tree, then
// one backtracking walk per board cell follows only edges the tree
// knows about. Each terminal node reports its word at most once via the
// seen bitmap, no matter how many board paths reach it.
//
// Result order is first-discovery order and carries no meaning.
func (e *Engine) FindWords(dictionary []string) []string {
	candidates := e.Candidates(dictionary)

	tr := trie.New()
	for _, w := range candidates {
		tr.Insert(w)
	}

	// Seen state lives here, not in the tree: the tree stays reusable
	// and the walk owns all its mutable bookkeeping.
	seen := make([]bool, tr.Len())
	var found []string

	n := e.board.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			p := board.Position{Row: r, Col: c}
			child := tr.Child(tr.Root(), e.board.MustAt(r, c))
			if child == 0 {
				continue
			}
			e.walkGuided(tr, child, p, seen, &found)
		}
	}

	e.logger.Debug("trie-guided sweep complete",
		"candidates", len(candidates),
		"nodes", tr.Len(),
		"found", len(found),
	)
	return found
}

// walkGuided extends the current path at p, whose letter corresponds to
// the tree node id. Visited handling mirrors walkExact.
func (e *Engine) walkGuided(tr *trie.Tree, id int32, p board.Position, seen []bool, found *[]string) {
	if tr.Terminal(id) && !seen[id] {
		seen[id] = true
		*found = append(*found, tr.Word(id))
	}

	idx := e.board.Index(p)
	e.visited[idx] = true
	for q := range e.board.Neighbors(p) {
		if e.visited[e.board.Index(q)] {
			continue
		}
		child := tr.Child(id, e.board.MustAt(q.Row, q.Col))
		if child == 0 {
			continue
		}
		e.walkGuided(tr, child, q, seen, found)
	}
	e.visited[idx] = false
}
