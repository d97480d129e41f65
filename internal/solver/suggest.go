package solver

import (
	"runtime"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/aayushbajaj/wordle-assist/internal/candidates"
	"github.com/aayushbajaj/wordle-assist/internal/corpus"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Suggestion is a ranked next guess
type Suggestion struct {
	Word      string
	Remaining int // worst-case candidates left after guessing Word
	Score     int // positional letter matches across the candidates
}

// Ranker scores prospective guesses by how badly they can go.
//
// Guesses are grouped by their sorted letters. For each group every remaining
// candidate gets a signature with one bit per pattern letter, set when the
// candidate contains it; the largest signature bucket is the worst case for
// every word in the group. Each word also gets a positional score: how many
// candidates share each of its (position, letter) pairs. O(n^2) in the pool.
type Ranker struct {
	Workers int
	logger  zerolog.Logger
}

// NewRanker returns a ranker that evaluates pattern groups on up to workers
// goroutines. workers <= 0 means GOMAXPROCS.
func NewRanker(workers int, logger zerolog.Logger) *Ranker {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Ranker{Workers: workers, logger: logger}
}

// Suggest ranks guesses with a single-threaded ranker.
func Suggest(index *candidates.Index, remaining candidates.Set, easy bool) []Suggestion {
	r := Ranker{Workers: 1, logger: zerolog.Nop()}
	return r.Suggest(index, remaining, easy)
}

// Suggest ranks the possible next guesses. In hard mode only the remaining
// candidates are considered; easy mode draws from the whole corpus, since a
// word already ruled out can still split the candidates well.
func (r *Ranker) Suggest(index *candidates.Index, remaining candidates.Set, easy bool) []Suggestion {
	words := remaining.Words()
	switch len(words) {
	case 0:
		return nil
	case 1:
		return []Suggestion{{Word: words[0], Remaining: 1, Score: corpus.WordLength}}
	}

	start := time.Now()

	pool := words
	if easy {
		pool = remaining.Corpus().AllWords()
	}

	grouped := lo.GroupBy(pool, Pattern)
	patterns := lo.Keys(grouped)
	slices.Sort(patterns)

	ids := remaining.IDs()
	results := make([][]Suggestion, len(patterns))

	r.each(len(patterns), func(i int) {
		pattern := patterns[i]
		worst := worstCase(remaining.Corpus(), ids, pattern)
		out := make([]Suggestion, len(grouped[pattern]))
		for j, w := range grouped[pattern] {
			out[j] = Suggestion{Word: w, Remaining: worst, Score: PositionScore(index, w)}
		}
		results[i] = out
	})

	ranked := lo.Flatten(results)
	sort.Slice(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	r.logger.Debug().
		Int("candidates", len(words)).
		Int("pool", len(pool)).
		Int("groups", len(patterns)).
		Dur("elapsed", time.Since(start)).
		Msg("ranked suggestions")

	return ranked
}

// Explain scores one prospective guess the same way Suggest does.
func Explain(index *candidates.Index, remaining candidates.Set, word string) Suggestion {
	return Suggestion{
		Word:      word,
		Remaining: worstCase(remaining.Corpus(), remaining.IDs(), Pattern(word)),
		Score:     PositionScore(index, word),
	}
}

// PositionScore sums, over the letters of word, how many candidates have that
// letter in that position.
func PositionScore(index *candidates.Index, word string) int {
	score := 0
	for i := 0; i < len(word); i++ {
		score += index.Count(i, word[i])
	}
	return score
}

// Pattern is the word's letters sorted, duplicates kept. Words sharing a
// pattern split the candidates identically by containment.
func Pattern(word string) string {
	b := []byte(word)
	slices.Sort(b)
	return string(b)
}

func worstCase(c *corpus.Corpus, ids []uint, pattern string) int {
	var hist [1 << corpus.WordLength]int
	for _, id := range ids {
		mask := c.Mask(id)
		bucket := 0
		for i := 0; i < len(pattern) && i < corpus.WordLength; i++ {
			bucket <<= 1
			if ch := pattern[i]; ch >= 'a' && ch <= 'z' && mask&(1<<(ch-'a')) != 0 {
				bucket |= 1
			}
		}
		hist[bucket]++
	}
	return lo.Max(hist[:])
}

func less(a, b Suggestion) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Word < b.Word
}

// each calls fn for every index in [0, n). Each call only writes its own slot,
// so no synchronization beyond the wait is needed.
func (r *Ranker) each(n int, fn func(i int)) {
	workers := min(r.Workers, n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
