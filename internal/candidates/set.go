package candidates

import (
	"github.com/aayushbajaj/wordle-assist/internal/corpus"
	"github.com/bits-and-blooms/bitset"
)

// Set is a persistent view over a corpus: the words still possibly correct.
// Every operation returns a new Set and leaves the receiver untouched, so
// earlier snapshots stay valid for undo and what-if branches.
type Set struct {
	corpus *corpus.Corpus
	bits   *bitset.BitSet
}

// All returns a set holding every word in the corpus
func All(c *corpus.Corpus) Set {
	return Set{corpus: c, bits: bitset.New(uint(c.Len())).Complement()}
}

// Empty returns a set over c holding no words
func Empty(c *corpus.Corpus) Set {
	return Set{corpus: c, bits: bitset.New(uint(c.Len()))}
}

// FromWords returns the set of words that are present in the corpus.
// Unknown words are ignored.
func FromWords(c *corpus.Corpus, words []string) Set {
	bits := bitset.New(uint(c.Len()))
	for _, w := range words {
		if id, ok := c.ID(w); ok {
			bits.Set(id)
		}
	}
	return Set{corpus: c, bits: bits}
}

func (s Set) Corpus() *corpus.Corpus {
	return s.corpus
}

// Intersect keeps only the words also present in allowed.
func (s Set) Intersect(allowed Set) Set {
	return Set{corpus: s.corpus, bits: s.bitset().Intersection(allowed.bitset())}
}

// Subtract drops the words present in disallowed.
func (s Set) Subtract(disallowed Set) Set {
	return Set{corpus: s.corpus, bits: s.bitset().Difference(disallowed.bitset())}
}

// EnsureLetter keeps only the words containing letter anywhere.
func (s Set) EnsureLetter(letter byte) Set {
	return s.filter(func(id uint) bool {
		return s.corpus.HasLetter(id, letter)
	})
}

// RemoveLetter drops every word containing letter anywhere.
func (s Set) RemoveLetter(letter byte) Set {
	return s.filter(func(id uint) bool {
		return !s.corpus.HasLetter(id, letter)
	})
}

// Whittle narrows the set by one letter of a multiset being walked; it is
// EnsureLetter under the name used by the contains-all fold.
func (s Set) Whittle(letter byte) Set {
	return s.EnsureLetter(letter)
}

func (s Set) Count() int {
	return int(s.bitset().Count())
}

func (s Set) IsEmpty() bool {
	return s.bitset().None()
}

// Contains reports whether word is a member of the set.
func (s Set) Contains(word string) bool {
	if s.corpus == nil {
		return false
	}
	id, ok := s.corpus.ID(word)
	return ok && s.bitset().Test(id)
}

// IDs returns the corpus IDs of the members in corpus order.
func (s Set) IDs() []uint {
	bits := s.bitset()
	ids := make([]uint, 0, bits.Count())
	for id, ok := bits.NextSet(0); ok; id, ok = bits.NextSet(id + 1) {
		ids = append(ids, id)
	}
	return ids
}

// Words returns the members in corpus order.
func (s Set) Words() []string {
	ids := s.IDs()
	words := make([]string, len(ids))
	for i, id := range ids {
		words[i] = s.corpus.Word(id)
	}
	return words
}

// First returns the earliest member in corpus order.
func (s Set) First() (string, bool) {
	id, ok := s.bitset().NextSet(0)
	if !ok {
		return "", false
	}
	return s.corpus.Word(id), true
}

func (s Set) filter(keep func(id uint) bool) Set {
	src := s.bitset()
	out := bitset.New(src.Len())
	for id, ok := src.NextSet(0); ok; id, ok = src.NextSet(id + 1) {
		if keep(id) {
			out.Set(id)
		}
	}
	return Set{corpus: s.corpus, bits: out}
}

// bitset treats the zero Set as empty.
func (s Set) bitset() *bitset.BitSet {
	if s.bits == nil {
		return bitset.New(0)
	}
	return s.bits
}
