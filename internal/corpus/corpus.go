package corpus

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// WordLength is the number of letters in every corpus word
const WordLength = 5

//go:embed answers.txt
var embeddedAnswers string

var ErrEmptyCorpus = errors.New("corpus contains no five-letter words")

// Source supplies the raw word list a Corpus is built from.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// Corpus is the immutable, ordered word list loaded once per process.
// Everything downstream refers to words by their ID (position in the list).
type Corpus struct {
	words   []string
	ids     map[string]uint
	letters [][WordLength]byte
	masks   []uint32
}

var (
	defaultOnce   sync.Once
	defaultCorpus *Corpus
)

// Default returns the corpus parsed from the embedded answer list
func Default() *Corpus {
	defaultOnce.Do(func() {
		defaultCorpus = FromWords(ParseWordList(embeddedAnswers))
	})
	return defaultCorpus
}

// Load builds a corpus from an external source such as the sqlite lexicon store.
func Load(ctx context.Context, src Source) (*Corpus, error) {
	words, err := src.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus source: %w", err)
	}

	c := FromWords(words)
	if c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	return c, nil
}

// ParseWordList splits newline separated text into normalized words,
// dropping anything that is not five ASCII letters.
func ParseWordList(data string) []string {
	var words []string
	for _, line := range strings.Split(data, "\n") {
		word := strings.ToLower(strings.TrimSpace(line))
		if IsWord(word) {
			words = append(words, word)
		}
	}
	return words
}

// IsWord reports whether s is exactly five lowercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// FromWords normalizes, filters and de-duplicates words, keeping first-seen order.
func FromWords(words []string) *Corpus {
	normalized := lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.ToLower(strings.TrimSpace(w))
		return w, IsWord(w)
	})
	normalized = lo.Uniq(normalized)

	c := &Corpus{
		words:   normalized,
		ids:     make(map[string]uint, len(normalized)),
		letters: make([][WordLength]byte, len(normalized)),
		masks:   make([]uint32, len(normalized)),
	}
	for i, w := range normalized {
		c.ids[w] = uint(i)
		for j := 0; j < WordLength; j++ {
			c.letters[i][j] = w[j]
			c.masks[i] |= 1 << (w[j] - 'a')
		}
	}
	return c
}

func (c *Corpus) Len() int {
	return len(c.words)
}

// AllWords returns a copy of the ordered word list
func (c *Corpus) AllWords() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

func (c *Corpus) Word(id uint) string {
	return c.words[id]
}

func (c *Corpus) ID(word string) (uint, bool) {
	id, ok := c.ids[word]
	return id, ok
}

func (c *Corpus) Contains(word string) bool {
	_, ok := c.ids[strings.ToLower(word)]
	return ok
}

// Letters returns the letters of the word with the given ID.
func (c *Corpus) Letters(id uint) [WordLength]byte {
	return c.letters[id]
}

// Mask returns a 26-bit set of the letters the word contains (bit 0 = 'a').
func (c *Corpus) Mask(id uint) uint32 {
	return c.masks[id]
}

// HasLetter reports whether the word with the given ID contains letter anywhere.
func (c *Corpus) HasLetter(id uint, letter byte) bool {
	if letter < 'a' || letter > 'z' {
		return false
	}
	return c.masks[id]&(1<<(letter-'a')) != 0
}

// WordForDay returns the puzzle answer for a day index. Indices past the end
// of the list wrap around so every day has a puzzle.
func (c *Corpus) WordForDay(index int) (string, bool) {
	if index < 0 || len(c.words) == 0 {
		return "", false
	}
	return c.words[index%len(c.words)], true
}

// Closest returns up to n corpus words that look like word, best first.
// A single mistyped letter is tolerated by fuzzy matching every
// four-letter subsequence of the input. n <= 0 returns every match.
func (c *Corpus) Closest(word string, n int) []string {
	word = strings.ToLower(strings.TrimSpace(word))

	best := make(map[string]int)
	for i := 0; i < len(word); i++ {
		pattern := word[:i] + word[i+1:]
		if pattern == "" {
			continue
		}
		for _, m := range fuzzy.Find(pattern, c.words) {
			if score, ok := best[m.Str]; !ok || m.Score > score {
				best[m.Str] = m.Score
			}
		}
	}

	matches := lo.Keys(best)
	sort.Slice(matches, func(i, j int) bool {
		if best[matches[i]] != best[matches[j]] {
			return best[matches[i]] > best[matches[j]]
		}
		return matches[i] < matches[j]
	})

	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches
}
