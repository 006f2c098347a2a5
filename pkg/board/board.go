// Package board models the immutable square letter grid being searched
// and its 8-directional adjacency relation.
package board

import (
	"fmt"
	"iter"
	"strings"
)

// directions holds the 8 neighbor offsets as (row, col) deltas,
// clockwise starting at east. Neighbor iteration order follows this
// list.
var directions = [8][2]int{
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
	{-1, 0},  // N
	{-1, 1},  // NE
}

// Position is a (row, column) cell coordinate.
type Position struct {
	Row int
	Col int
}

// SizeError reports a board that is malformed: too small, not square,
// or containing bytes outside a-z. It is the only recoverable error
// Parse produces.
type SizeError struct {
	Reason string
}

func (e *SizeError) Error() string {
	return "invalid board: " + e.Reason
}

// Board is a square grid of ASCII lowercase letters, read-only after
// Parse. It additionally tracks which letters appear anywhere on the
// grid so callers can reject impossible words in O(len(word)).
type Board struct {
	size    int
	cells   []byte
	letters uint32 // bit i set when byte 'a'+i appears on the grid
}

// Parse builds a Board from newline-delimited text. The board must
// have at least 3 rows, every row must have exactly as many letters as
// there are rows, and every byte must be an ASCII lowercase letter.
func Parse(text string) (*Board, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	n := len(lines)
	if n < 3 {
		return nil, &SizeError{Reason: "board must be at least 3 x 3"}
	}

	b := &Board{
		size:  n,
		cells: make([]byte, 0, n*n),
	}
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) != n {
			return nil, &SizeError{Reason: "row sizes are not equal"}
		}
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c < 'a' || c > 'z' {
				return nil, &SizeError{Reason: fmt.Sprintf("letter %q is not ASCII lowercase", c)}
			}
			b.letters |= 1 << (c - 'a')
		}
		b.cells = append(b.cells, line...)
	}

	return b, nil
}

// Size returns the side length N of the board.
func (b *Board) Size() int {
	return b.size
}

// At returns the letter at (row, col), or false when the coordinates
// fall outside the grid. Signed coordinates are accepted so callers can
// probe before clamping.
func (b *Board) At(row, col int) (byte, bool) {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return 0, false
	}
	return b.cells[row*b.size+col], true
}

// MustAt returns the letter at (row, col) and panics when the
// coordinates are out of bounds. Out-of-bounds access here is a
// programming error, not a recoverable condition.
func (b *Board) MustAt(row, col int) byte {
	c, ok := b.At(row, col)
	if !ok {
		panic(fmt.Sprintf("board: index (%d, %d) out of bounds for size %d", row, col, b.size))
	}
	return c
}

// Index flattens an in-bounds position into a row-major offset,
// suitable for indexing N*N scratch masks.
func (b *Board) Index(p Position) int {
	if p.Row < 0 || p.Row >= b.size || p.Col < 0 || p.Col >= b.size {
		panic(fmt.Sprintf("board: position (%d, %d) out of bounds for size %d", p.Row, p.Col, b.size))
	}
	return p.Row*b.size + p.Col
}

// Neighbors yields the in-bounds neighbors of p in the fixed direction
// order (clockwise from east). The sequence is lazy and cheap to
// recreate; it is not restartable.
func (b *Board) Neighbors(p Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, d := range directions {
			q := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
			if q.Row < 0 || q.Row >= b.size || q.Col < 0 || q.Col >= b.size {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// HasLetters reports whether every letter of word appears somewhere on
// the board. A false result proves the word cannot be spelled; a true
// result proves nothing about adjacency.
func (b *Board) HasLetters(word string) bool {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
		if b.letters&(1<<(c-'a')) == 0 {
			return false
		}
	}
	return true
}

// String reproduces the board as newline-delimited rows.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.size * (b.size + 1))
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(b.cells[r*b.size : (r+1)*b.size])
	}
	return sb.String()
}
