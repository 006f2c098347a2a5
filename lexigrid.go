package lexigrid

import (
	"io"
	"log/slog"
	"sort"

	"github.com/aretw0/lexigrid/internal/search"
	"github.com/aretw0/lexigrid/pkg/board"
)

// Version is the library version reported by the CLI.
const Version = "0.2.0"

// Strategy selects how a solve traverses the board.
type Strategy string

const (
	// StrategyFilter evaluates each dictionary word independently: a
	// cheap reachability filter first, the exact backtracking search
	// after. This is the strategy that parallelizes.
	StrategyFilter Strategy = "filter"

	// StrategyTrie loads the dictionary into a prefix tree and finds
	// every word in one board sweep. Always single-threaded: the
	// sweep's seen-state is shared across the whole traversal.
	StrategyTrie Strategy = "trie"
)

// Result holds the outcome of one solve.
type Result struct {
	// Words are the distinct dictionary words found on the board,
	// sorted. Both strategies produce the same set.
	Words []string
}

// Count returns the number of words found.
func (r *Result) Count() int {
	return len(r.Words)
}

// Solver is the high-level entry point for the lexigrid library. It
// carries configuration only; all per-solve state is private to the
// solve call, so one Solver may be used for any number of boards.
type Solver struct {
	strategy      Strategy
	workers       int
	minWordLength int
	logger        *slog.Logger
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithStrategy selects the solve strategy (default StrategyFilter).
// An empty strategy keeps the default.
func WithStrategy(s Strategy) Option {
	return func(sv *Solver) {
		if s != "" {
			sv.strategy = s
		}
	}
}

// WithWorkers sets the worker count for StrategyFilter solves; 0 or 1
// keeps the solve single-threaded, negative values mean one worker per
// CPU. StrategyTrie ignores this option.
func WithWorkers(n int) Option {
	return func(sv *Solver) {
		sv.workers = n
	}
}

// WithMinWordLength overrides the minimum word length (default 4).
// Values below 1 are ignored.
func WithMinWordLength(n int) Option {
	return func(sv *Solver) {
		if n >= 1 {
			sv.minWordLength = n
		}
	}
}

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(sv *Solver) {
		sv.logger = logger
	}
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	sv := &Solver{
		strategy:      StrategyFilter,
		minWordLength: search.DefaultMinWordLength,
	}
	for _, opt := range opts {
		opt(sv)
	}
	if sv.logger == nil {
		sv.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return sv
}

// Solve parses boardText and returns the dictionary words found on it.
// Malformed boards yield a *board.SizeError; there are no other
// recoverable failures. The same inputs always produce the same result.
func (sv *Solver) Solve(boardText string, dictionary []string) (*Result, error) {
	b, err := board.Parse(boardText)
	if err != nil {
		return nil, err
	}

	eng := search.New(b,
		search.WithMinWordLength(sv.minWordLength),
		search.WithLogger(sv.logger),
	)

	var words []string
	switch sv.strategy {
	case StrategyTrie:
		words = eng.FindWords(dictionary)
	default:
		if sv.workers == 0 || sv.workers == 1 {
			words = eng.FilterVerify(dictionary)
		} else {
			words = eng.FilterVerifyParallel(dictionary, sv.workers)
		}
	}
	sort.Strings(words)

	sv.logger.Info("solve complete",
		"board_size", b.Size(),
		"strategy", string(sv.strategy),
		"dictionary", len(dictionary),
		"found", len(words),
	)
	return &Result{Words: words}, nil
}

// Count is a convenience wrapper returning only the number of words
// found.
func (sv *Solver) Count(boardText string, dictionary []string) (int, error) {
	res, err := sv.Solve(boardText, dictionary)
	if err != nil {
		return 0, err
	}
	return res.Count(), nil
}
