package game

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aayushbajaj/wordle-assist/internal/corpus"
)

var (
	ErrInvalidWordLength = errors.New("guess must be exactly 5 letters")
	ErrInvalidLetters    = errors.New("guess must only contain letters a-z")
	ErrNoPuzzle          = errors.New("no puzzle for that day")
)

// blank marks a secret letter already consumed by an Exact match.
const blank = 0

// Game is a single puzzle: the secret word, the guesses so far and the
// letters they revealed.
type Game struct {
	word     string
	day      int
	hasDay   bool
	hard     bool
	revealed [26]bool
	guesses  []CheckData
}

// ForWord starts an easy-mode game for a fixed secret
func ForWord(word string) *Game {
	return &Game{word: strings.ToLower(word)}
}

// ForDay starts the puzzle for a day index drawn from c.
func ForDay(c *corpus.Corpus, day int) (*Game, error) {
	word, ok := c.WordForDay(day)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoPuzzle, day)
	}
	g := ForWord(word)
	g.day, g.hasDay = day, true
	return g, nil
}

// WithHardMode requires every later guess to reuse all revealed letters.
func (g *Game) WithHardMode() *Game {
	g.hard = true
	return g
}

func (g *Game) Word() string {
	return g.word
}

// Day returns the puzzle's day index, if the game was started from one.
func (g *Game) Day() (int, bool) {
	return g.day, g.hasDay
}

func (g *Game) IsEasy() bool {
	return !g.hard
}

// History returns a copy of every evaluated guess in order.
func (g *Game) History() []CheckData {
	return slices.Clone(g.guesses)
}

// Revealed returns the letters credited as Exact or Contains so far, sorted.
func (g *Game) Revealed() []byte {
	var out []byte
	for i, ok := range g.revealed {
		if ok {
			out = append(out, byte('a'+i))
		}
	}
	return out
}

// Finished reports whether a Win or Lose has been recorded.
func (g *Game) Finished() bool {
	if len(g.guesses) == 0 {
		return false
	}
	return g.guesses[len(g.guesses)-1].Result.Terminal()
}

// Check evaluates guess against the secret and records it. Once the game is
// finished the last result is returned unchanged. In hard mode a guess that
// omits a revealed letter is reported as Invalid and does not use a turn.
func (g *Game) Check(guess string) CheckData {
	if g.Finished() {
		return g.guesses[len(g.guesses)-1]
	}

	guess = strings.ToLower(guess)

	if g.hard {
		for _, c := range g.Revealed() {
			if strings.IndexByte(guess, c) < 0 {
				return invalid(guess)
			}
		}
	}

	letters := Evaluate(g.word, guess)
	for _, v := range letters {
		if v.IsFound() && v.Letter >= 'a' && v.Letter <= 'z' {
			g.revealed[v.Letter-'a'] = true
		}
	}

	count := len(g.guesses) + 1
	correct := len(letters) == len(g.word) && !slices.ContainsFunc(letters, func(v Verdict) bool {
		return v.Kind != Exact
	})

	result := Incorrect
	switch {
	case correct:
		result = Win
	case count >= MaxGuesses:
		result = Lose
	}

	data := CheckData{
		Guess:   guess,
		Letters: letters,
		Result:  result,
		Guesses: count,
	}
	g.guesses = append(g.guesses, data)
	return data
}

func invalid(guess string) CheckData {
	letters := make([]Verdict, len(guess))
	for i := 0; i < len(guess); i++ {
		letters[i] = Verdict{Kind: NotFound, Letter: guess[i]}
	}
	return CheckData{Guess: guess, Letters: letters, Result: Invalid}
}

// Evaluate scores guess against secret. Each secret letter credits at most
// one guessed position: exact matches are taken first, then remaining guessed
// letters are looked up among the unconsumed secret letters.
func Evaluate(secret, guess string) []Verdict {
	working := []byte(secret)
	letters := make([]Verdict, len(guess))

	for i := 0; i < len(guess); i++ {
		c := guess[i]
		if i < len(working) && working[i] == c {
			working[i] = blank
			letters[i] = Verdict{Kind: Exact, Letter: c}
		} else {
			letters[i] = Verdict{Kind: NotFound, Letter: c}
		}
	}

	slices.Sort(working)

	for i := range letters {
		if letters[i].Kind != NotFound {
			continue
		}
		if at, found := slices.BinarySearch(working, letters[i].Letter); found {
			working = slices.Delete(working, at, at+1)
			letters[i].Kind = Contains
		}
	}
	return letters
}

// Normalize trims and lowercases raw input and rejects anything that is not
// five letters a-z. It runs before a guess reaches Check.
func Normalize(raw string) (string, error) {
	guess := strings.ToLower(strings.TrimSpace(raw))
	if len(guess) != corpus.WordLength {
		return "", ErrInvalidWordLength
	}
	if !corpus.IsWord(guess) {
		return "", ErrInvalidLetters
	}
	return guess, nil
}
