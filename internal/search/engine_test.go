package search_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lexigrid/internal/search"
	"github.com/aretw0/lexigrid/pkg/board"
)

const sampleBoard = "abcd\nefgh\nijkl\nmnop"

func newEngine(t *testing.T, text string, opts ...search.Option) *search.Engine {
	t.Helper()
	b, err := board.Parse(text)
	require.NoError(t, err)
	return search.New(b, opts...)
}

func TestContainsWord(t *testing.T) {
	e := newEngine(t, sampleBoard)

	for _, w := range []string{
		"abcd", "dcba", // straight line across row 0, both ways
		"afkp", "pkfa", // main diagonal
		"mjgd", "dgjm", // anti-diagonal
		"aeim", "miea", // first column
		"aefb", "bfea", // tight loop
	} {
		assert.True(t, e.ContainsWord(w), "expected %q on the board", w)
	}

	for _, w := range []string{"lies", "mapb"} {
		assert.False(t, e.ContainsWord(w), "did not expect %q on the board", w)
	}
}

func TestMightContain(t *testing.T) {
	e := newEngine(t, sampleBoard)

	assert.True(t, e.MightContain("abcd"))
	assert.True(t, e.MightContain("afkp"))
	assert.False(t, e.MightContain("lies"), "l and i are not adjacent")
	assert.False(t, e.MightContain("mapb"))
	assert.False(t, e.MightContain(""))
}

// The filter deliberately ignores cell reuse: a word whose only
// adjacency chain revisits a cell passes the filter but must be
// rejected by the exact search.
func TestFilterAcceptsReuseExactRejects(t *testing.T) {
	e := newEngine(t, "abz\nzzz\nzzz")

	assert.True(t, e.MightContain("abab"), "filter permits revisiting the same cells")
	assert.False(t, e.ContainsWord("abab"), "exact search enforces simple paths")
}

// Superset law: whatever the exact search finds, the filter must admit.
func TestFilterIsSupersetOfExact(t *testing.T) {
	e := newEngine(t, sampleBoard)

	words := []string{
		"abcd", "dcba", "afkp", "pkfa", "mjgd", "aeim", "aefb",
		"lies", "mapb", "abfe", "ponm", "plhd", "aabb", "fghk",
	}
	for _, w := range words {
		if e.ContainsWord(w) {
			assert.True(t, e.MightContain(w), "filter rejected %q, which is on the board", w)
		}
	}
}

// enumerateWords brute-forces every simple path of the given length and
// records the spelled words. It is the independent ground truth the
// engine is checked against.
func enumerateWords(b *board.Board, length int) map[string]struct{} {
	words := make(map[string]struct{})
	visited := make([]bool, b.Size()*b.Size())
	var walk func(p board.Position, prefix []byte)
	walk = func(p board.Position, prefix []byte) {
		prefix = append(prefix, b.MustAt(p.Row, p.Col))
		if len(prefix) == length {
			words[string(prefix)] = struct{}{}
			return
		}
		visited[b.Index(p)] = true
		for q := range b.Neighbors(p) {
			if !visited[b.Index(q)] {
				walk(q, prefix)
			}
		}
		visited[b.Index(p)] = false
	}
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			walk(board.Position{Row: r, Col: c}, nil)
		}
	}
	return words
}

func TestContainsWordExhaustive3x3(t *testing.T) {
	const text = "cat\nodo\ngsx"
	b, err := board.Parse(text)
	require.NoError(t, err)
	e := search.New(b)

	truth := enumerateWords(b, 4)
	require.NotEmpty(t, truth)

	for w := range truth {
		assert.True(t, e.ContainsWord(w), "enumerated word %q not found", w)
		assert.True(t, e.MightContain(w), "filter rejected enumerated word %q", w)
	}

	// Words over the board's letters that no simple path spells.
	for _, w := range []string{"coco", "xxxx", "tact", "gogo", "sods"} {
		if _, ok := truth[w]; !ok {
			assert.False(t, e.ContainsWord(w), "unexpectedly found %q", w)
		}
	}
}

func TestCandidates(t *testing.T) {
	e := newEngine(t, sampleBoard)

	dictionary := []string{
		"abcd",  // kept
		"cat",   // too short
		"quack", // q and u absent from the board
		"abcd",  // duplicate
		"ponm",  // kept
	}
	assert.Equal(t, []string{"abcd", "ponm"}, e.Candidates(dictionary))
}

func TestCandidatesMinLength(t *testing.T) {
	e := newEngine(t, sampleBoard, search.WithMinWordLength(3))
	assert.Equal(t, []string{"cab", "abcd"}, e.Candidates([]string{"cab", "ab", "abcd"}))
}

func sorted(words []string) []string {
	out := append([]string(nil), words...)
	sort.Strings(out)
	return out
}

func TestStrategiesAgree(t *testing.T) {
	dictionary := []string{
		"abcd", "dcba", "afkp", "pkfa", "mjgd", "dgjm", "aeim", "miea",
		"aefb", "bfea", "lies", "mapb", "cat", "quack", "abcd", "plonk",
		"knife", "feba", "jklh", "ponm", "mnop", "aabb",
	}

	e1 := newEngine(t, sampleBoard)
	e2 := newEngine(t, sampleBoard)

	filtered := sorted(e1.FilterVerify(dictionary))
	guided := sorted(e2.FindWords(dictionary))

	assert.Equal(t, filtered, guided, "filter-then-verify and trie-guided must find the same words")
	assert.NotEmpty(t, filtered)
}

func TestParallelMatchesSequential(t *testing.T) {
	dictionary := []string{
		"abcd", "dcba", "afkp", "pkfa", "mjgd", "dgjm", "aeim", "miea",
		"aefb", "bfea", "lies", "mapb", "ponm", "mnop", "jklh", "feba",
	}

	e := newEngine(t, sampleBoard)
	sequential := sorted(e.FilterVerify(dictionary))

	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		parallel := sorted(newEngine(t, sampleBoard).FilterVerifyParallel(dictionary, workers))
		assert.Equal(t, sequential, parallel, "workers=%d", workers)
	}
}

// Scratch state must be fully reset between words: interleaving long,
// short, found and not-found words on one engine cannot leak state.
func TestEngineReuseAcrossWords(t *testing.T) {
	e := newEngine(t, sampleBoard)

	for i := 0; i < 3; i++ {
		assert.True(t, e.ContainsWord("abcdhgfe"))
		assert.False(t, e.ContainsWord("mapb"))
		assert.True(t, e.MightContain("afkp"))
		assert.False(t, e.MightContain("lies"))
		assert.True(t, e.ContainsWord("afkp"))
	}
}

func TestIdempotentSolve(t *testing.T) {
	dictionary := []string{"abcd", "afkp", "lies", "mapb", "aefb"}
	e := newEngine(t, sampleBoard)

	first := sorted(e.FilterVerify(dictionary))
	second := sorted(e.FilterVerify(dictionary))
	assert.Equal(t, first, second)

	guidedFirst := sorted(e.FindWords(dictionary))
	guidedSecond := sorted(e.FindWords(dictionary))
	assert.Equal(t, guidedFirst, guidedSecond)
	assert.Equal(t, first, guidedFirst)
}

func BenchmarkFilterVerify(b *testing.B) {
	bd, err := board.Parse(sampleBoard)
	if err != nil {
		b.Fatal(err)
	}
	e := search.New(bd)
	dictionary := benchDictionary()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.FilterVerify(dictionary)
	}
}

func BenchmarkTrieGuided(b *testing.B) {
	bd, err := board.Parse(sampleBoard)
	if err != nil {
		b.Fatal(err)
	}
	e := search.New(bd)
	dictionary := benchDictionary()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.FindWords(dictionary)
	}
}

func benchDictionary() []string {
	base := []string{
		"abcd", "dcba", "afkp", "pkfa", "mjgd", "dgjm", "aeim", "miea",
		"aefb", "bfea", "lies", "mapb", "ponm", "mnop", "jklh", "feba",
		"abfe", "plhd", "fghk", "knop", "glop", "nido", "hgfe", "eimn",
	}
	dict := make([]string, 0, len(base)*8)
	for i := 0; i < 8; i++ {
		dict = append(dict, base...)
	}
	return dict
}
