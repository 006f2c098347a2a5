// Package search implements the word-search core: an approximate
// reachability filter, an exact backtracking search, and a trie-guided
// single-pass sweep over the board. The three agree on which words a
// board contains; they differ only in cost profile.
package search

import (
	"io"
	"log/slog"

	"github.com/aretw0/lexigrid/pkg/board"
)

// DefaultMinWordLength is the shortest word worth searching for.
const DefaultMinWordLength = 4

// Option configures an Engine.
type Option func(*Engine)

// WithMinWordLength sets the minimum candidate word length.
// Values below 1 are ignored.
func WithMinWordLength(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.minWordLength = n
		}
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine binds a read-only board to the scratch state the searches
// need: the reach table for the approximate filter and a visited mask
// for the backtracking walks. Scratch is reused across words, so an
// Engine is not safe for concurrent use; parallel dispatch forks one
// engine per worker instead.
type Engine struct {
	board         *board.Board
	minWordLength int
	logger        *slog.Logger

	reach   reachTable
	visited []bool
}

// New creates an engine for b.
func New(b *board.Board, opts ...Option) *Engine {
	e := &Engine{
		board:         b,
		minWordLength: DefaultMinWordLength,
		visited:       make([]bool, b.Size()*b.Size()),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Candidates narrows a raw dictionary to distinct words that are long
// enough and use only letters present on the board. Order of first
// occurrence is preserved.
func (e *Engine) Candidates(dictionary []string) []string {
	kept := make([]string, 0, len(dictionary))
	distinct := make(map[string]struct{}, len(dictionary))
	for _, w := range dictionary {
		if len(w) < e.minWordLength {
			continue
		}
		if !e.board.HasLetters(w) {
			continue
		}
		if _, dup := distinct[w]; dup {
			continue
		}
		distinct[w] = struct{}{}
		kept = append(kept, w)
	}
	e.logger.Debug("dictionary filtered",
		"total", len(dictionary),
		"candidates", len(kept),
		"min_length", e.minWordLength,
	)
	return kept
}

// FilterVerify returns the candidate words actually present on the
// board, running each through the approximate filter and then the
// exact backtracking search.
func (e *Engine) FilterVerify(dictionary []string) []string {
	return e.verify(e.Candidates(dictionary))
}

func (e *Engine) verify(candidates []string) []string {
	var found []string
	for _, w := range candidates {
		if !e.MightContain(w) {
			continue
		}
		if e.ContainsWord(w) {
			found = append(found, w)
		}
	}
	return found
}
