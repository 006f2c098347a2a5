package search

import "fmt"

// reachTable is the dense (word position × row × column) scratch used
// by the approximate filter. reachTable[k][r][c] records that some
// adjacency chain (cells may repeat) spells word[0..k] and ends at
// (r, c). The backing store is retained between words; reset only
// clears the slots the next word needs.
type reachTable struct {
	wordLen int
	size    int
	bits    []bool
}

// reset prepares the table for a word of the given length on an
// N×N board. Capacity is kept; contents are cleared up to the needed
// size.
func (t *reachTable) reset(wordLen, size int) {
	t.wordLen = wordLen
	t.size = size
	need := wordLen * size * size
	if cap(t.bits) < need {
		t.bits = make([]bool, need)
		return
	}
	t.bits = t.bits[:need]
	clear(t.bits)
}

// index validates each dimension separately; a coordinate that is
// valid in one dimension must not alias a slot in another.
func (t *reachTable) index(k, row, col int) int {
	if k < 0 || k >= t.wordLen || row < 0 || row >= t.size || col < 0 || col >= t.size {
		panic(fmt.Sprintf("search: reach index (%d, %d, %d) out of bounds for %d x %d x %d",
			k, row, col, t.wordLen, t.size, t.size))
	}
	return (k*t.size+row)*t.size + col
}

func (t *reachTable) mark(k, row, col int) {
	t.bits[t.index(k, row, col)] = true
}

func (t *reachTable) at(k, row, col int) bool {
	return t.bits[t.index(k, row, col)]
}
