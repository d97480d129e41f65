package candidates

import (
	"github.com/aayushbajaj/wordle-assist/internal/corpus"
	"github.com/bits-and-blooms/bitset"
)

const alphabetSize = 26

// Index answers "which candidates have letter c at position p" and "which
// candidates contain c anywhere" for one snapshot of a Set. Every letter
// a-z has an entry in every map, possibly empty.
type Index struct {
	source   Set
	position [corpus.WordLength][alphabetSize]Set
	contains [alphabetSize]Set
	counts   [corpus.WordLength][alphabetSize]int
}

// BuildIndex indexes the members of set. The index is never updated; build a
// new one when the set changes.
func BuildIndex(set Set) *Index {
	c := set.corpus
	n := uint(0)
	if c != nil {
		n = uint(c.Len())
	}

	var position [corpus.WordLength][alphabetSize]*bitset.BitSet
	var contains [alphabetSize]*bitset.BitSet
	for l := 0; l < alphabetSize; l++ {
		for p := 0; p < corpus.WordLength; p++ {
			position[p][l] = bitset.New(n)
		}
		contains[l] = bitset.New(n)
	}

	for _, id := range set.IDs() {
		letters := c.Letters(id)
		for p, ch := range letters {
			position[p][ch-'a'].Set(id)
			contains[ch-'a'].Set(id)
		}
	}

	idx := &Index{source: set}
	for l := 0; l < alphabetSize; l++ {
		for p := 0; p < corpus.WordLength; p++ {
			idx.position[p][l] = Set{corpus: c, bits: position[p][l]}
			idx.counts[p][l] = int(position[p][l].Count())
		}
		idx.contains[l] = Set{corpus: c, bits: contains[l]}
	}
	return idx
}

// Source returns the set the index was built from
func (idx *Index) Source() Set {
	return idx.source
}

// At returns the candidates with letter at position pos.
func (idx *Index) At(pos int, letter byte) Set {
	if pos < 0 || pos >= corpus.WordLength || !isLetter(letter) {
		return idx.empty()
	}
	return idx.position[pos][letter-'a']
}

// Count is At(pos, letter).Count() without the popcount.
func (idx *Index) Count(pos int, letter byte) int {
	if pos < 0 || pos >= corpus.WordLength || !isLetter(letter) {
		return 0
	}
	return idx.counts[pos][letter-'a']
}

// Containing returns the candidates that contain letter anywhere.
func (idx *Index) Containing(letter byte) Set {
	if !isLetter(letter) {
		return idx.empty()
	}
	return idx.contains[letter-'a']
}

func (idx *Index) empty() Set {
	if idx.source.corpus == nil {
		return Set{}
	}
	return Empty(idx.source.corpus)
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}
