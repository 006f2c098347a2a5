// Package trie implements a 26-ary prefix tree keyed by lowercase
// letters, used to prune dictionary-guided board search.
//
// Nodes live in a single growable arena and reference their children by
// integer index, so the whole tree is freed at once when the Tree is
// dropped. Traversal bookkeeping (which terminal words have already
// been reported) is deliberately kept out of the nodes; callers own a
// separate bitmap sized by Len.
package trie

import "fmt"

const branching = 26

type node struct {
	// children holds arena indexes, one slot per letter a-z. Index 0
	// is the root, which is never anyone's child, so 0 doubles as the
	// nil link.
	children [branching]int32
	word     string
	terminal bool
}

// Tree is an arena-backed prefix tree. The zero value is not usable;
// call New.
type Tree struct {
	nodes []node
}

// New returns an empty tree containing only the root node.
func New() *Tree {
	return &Tree{nodes: make([]node, 1)}
}

// Root returns the arena index of the root node.
func (t *Tree) Root() int32 {
	return 0
}

// Len returns the number of nodes in the arena, including the root.
// Callers use it to size per-traversal "seen" bitmaps.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Insert adds word to the tree, creating nodes lazily, and marks the
// final node terminal. Inserting the same word twice is a no-op.
// Bytes outside a-z panic; the dictionary is letter-filtered upstream.
func (t *Tree) Insert(word string) {
	cur := int32(0)
	for i := 0; i < len(word); i++ {
		slot := letterIndex(word[i])
		child := t.nodes[cur].children[slot]
		if child == 0 {
			t.nodes = append(t.nodes, node{})
			child = int32(len(t.nodes) - 1)
			t.nodes[cur].children[slot] = child
		}
		cur = child
	}
	t.nodes[cur].terminal = true
	t.nodes[cur].word = word
}

// Contains reports whether word was inserted as a complete word.
func (t *Tree) Contains(word string) bool {
	cur := int32(0)
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
		cur = t.nodes[cur].children[c-'a']
		if cur == 0 {
			return false
		}
	}
	return t.nodes[cur].terminal
}

// Child returns the arena index of id's child along letter c, or 0
// when no such edge exists (or c is outside a-z).
func (t *Tree) Child(id int32, c byte) int32 {
	if c < 'a' || c > 'z' {
		return 0
	}
	return t.nodes[id].children[c-'a']
}

// Terminal reports whether the node at id ends a dictionary word.
func (t *Tree) Terminal(id int32) bool {
	return t.nodes[id].terminal
}

// Word returns the word terminated at id, or "" for non-terminal nodes.
func (t *Tree) Word(id int32) string {
	return t.nodes[id].word
}

func letterIndex(c byte) int {
	if c < 'a' || c > 'z' {
		panic(fmt.Sprintf("trie: byte %q outside a-z", c))
	}
	return int(c - 'a')
}
