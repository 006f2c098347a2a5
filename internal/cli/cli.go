// Package cli wires file input and the solver together for the
// lexigrid commands. Reading the dictionary and board from disk lives
// here, outside the search core.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadWords reads a newline-delimited word list. Lines are lowercased
// and trimmed; blank lines and '#' comments are skipped. No other
// validation happens here: any line is a candidate, and the solver
// filters what the board cannot contain.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// LoadBoard reads the raw board text; parsing and validation belong to
// the solver.
func LoadBoard(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read board: %w", err)
	}
	return string(data), nil
}
