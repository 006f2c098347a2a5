package search

import "github.com/aretw0/lexigrid/pkg/board"

// ContainsWord reports whether a simple path (adjacent cells, none
// used twice) spells word. The search starts from every cell matching
// word[0] and backtracks over the shared visited mask, so only words
// that already passed MightContain should normally reach it.
func (e *Engine) ContainsWord(word string) bool {
	if len(word) == 0 {
		return false
	}
	n := e.board.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if e.board.MustAt(r, c) != word[0] {
				continue
			}
			if e.walkExact(word, 0, board.Position{Row: r, Col: c}) {
				return true
			}
		}
	}
	return false
}

// walkExact extends the current path at p, which already matches
// word[k]. The visited mask is set on enter and cleared on every exit
// path, so sibling branches never observe each other's cells and the
// mask is all-false again once the walk unwinds.
func (e *Engine) walkExact(word string, k int, p board.Position) bool {
	if k == len(word)-1 {
		return true
	}

	idx := e.board.Index(p)
	e.visited[idx] = true
	for q := range e.board.Neighbors(p) {
		if e.visited[e.board.Index(q)] {
			continue
		}
		if e.board.MustAt(q.Row, q.Col) != word[k+1] {
			continue
		}
		if e.walkExact(word, k+1, q) {
			e.visited[idx] = false
			return true
		}
	}
	e.visited[idx] = false
	return false
}
