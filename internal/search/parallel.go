package search

import (
	"runtime"
	"sync"
)

// FilterVerifyParallel is FilterVerify with the candidate list
// partitioned across workers. Each worker forks the engine (shared
// read-only board, private scratch) so no lock is needed; per-chunk
// results are concatenated once all workers finish. Chunk boundaries
// make the combined order differ from the sequential one; callers that
// care sort the result.
//
// workers <= 0 means one worker per available CPU.
func (e *Engine) FilterVerifyParallel(dictionary []string, workers int) []string {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	candidates := e.Candidates(dictionary)
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers <= 1 {
		return e.verify(candidates)
	}

	chunk := (len(candidates) + workers - 1) / workers
	results := make([][]string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := min(lo+chunk, len(candidates))
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(slot int, part []string) {
			defer wg.Done()
			results[slot] = e.fork().verify(part)
		}(i, candidates[lo:hi])
	}
	wg.Wait()

	var found []string
	for _, part := range results {
		found = append(found, part...)
	}
	e.logger.Debug("parallel verify complete",
		"workers", workers,
		"candidates", len(candidates),
		"found", len(found),
	)
	return found
}

// fork creates a worker engine that shares the read-only board but owns
// fresh scratch state.
func (e *Engine) fork() *Engine {
	return New(e.board,
		WithMinWordLength(e.minWordLength),
		WithLogger(e.logger),
	)
}
