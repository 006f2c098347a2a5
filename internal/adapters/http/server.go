// Package http exposes the solver as a small JSON API: POST /solve
// against a preloaded dictionary (or one supplied in the request), plus
// health and Prometheus metrics endpoints.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/lexigrid"
	"github.com/aretw0/lexigrid/pkg/board"
)

// Options configures the solve server.
type Options struct {
	// Dictionary is the default word list for requests that carry none.
	Dictionary []string
	// Strategy is the default solve strategy.
	Strategy lexigrid.Strategy
	// Workers applies to filter-strategy solves.
	Workers int
	// MinWordLength defaults to the library default when zero.
	MinWordLength int
	Logger        *slog.Logger
}

// Server handles solve requests.
type Server struct {
	opts    Options
	logger  *slog.Logger
	metrics *metrics
}

// SolveRequest is the POST /solve body.
type SolveRequest struct {
	Board string `json:"board"`
	// Words overrides the server's preloaded dictionary when present.
	Words []string `json:"words,omitempty"`
	// Strategy overrides the server default ("filter" or "trie").
	Strategy string `json:"strategy,omitempty"`
}

// SolveResponse is the POST /solve reply.
type SolveResponse struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

// NewHandler creates the HTTP handler for the solve API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		opts:    opts,
		logger:  logger,
		metrics: newMetrics(),
	}

	r := chi.NewRouter()
	r.Post("/solve", s.handleSolve)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	strategy := s.opts.Strategy
	switch body.Strategy {
	case "":
	case string(lexigrid.StrategyFilter):
		strategy = lexigrid.StrategyFilter
	case string(lexigrid.StrategyTrie):
		strategy = lexigrid.StrategyTrie
	default:
		http.Error(w, "Unknown strategy: "+body.Strategy, http.StatusBadRequest)
		return
	}
	if strategy == "" {
		strategy = lexigrid.StrategyFilter
	}

	words := body.Words
	if words == nil {
		words = s.opts.Dictionary
	}

	solver := lexigrid.New(
		lexigrid.WithStrategy(strategy),
		lexigrid.WithWorkers(s.opts.Workers),
		lexigrid.WithMinWordLength(s.opts.MinWordLength),
		lexigrid.WithLogger(s.logger),
	)

	start := time.Now()
	result, err := solver.Solve(body.Board, words)
	if err != nil {
		s.metrics.solveErrors.Inc()
		var sizeErr *board.SizeError
		if errors.As(err, &sizeErr) {
			http.Error(w, sizeErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Solve error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.solves.WithLabelValues(string(strategy)).Inc()
	s.metrics.wordsFound.Add(float64(result.Count()))
	s.metrics.solveDuration.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(SolveResponse{
		Count: result.Count(),
		Words: result.Words,
	}); err != nil {
		s.logger.Error("solve encode failed", "error", err)
	}
}
