package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/aayushbajaj/wordle-assist/internal/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(letters []Verdict) []VerdictKind {
	out := make([]VerdictKind, len(letters))
	for i, v := range letters {
		out[i] = v.Kind
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		guess    string
		expected []VerdictKind
	}{
		{
			name:     "all exact",
			secret:   "robot",
			guess:    "robot",
			expected: []VerdictKind{Exact, Exact, Exact, Exact, Exact},
		},
		{
			name:     "trace against crane",
			secret:   "crane",
			guess:    "trace",
			expected: []VerdictKind{NotFound, Exact, Exact, Contains, Exact},
		},
		{
			name:     "nothing shared",
			secret:   "robot",
			guess:    "angle",
			expected: []VerdictKind{NotFound, NotFound, NotFound, NotFound, NotFound},
		},
		{
			name:     "duplicate guess letter, single in secret, exact wins",
			secret:   "crane",
			guess:    "eerie",
			expected: []VerdictKind{NotFound, NotFound, Contains, NotFound, Exact},
		},
		{
			name:     "duplicate guess letter, single in secret, only first credited",
			secret:   "angle",
			guess:    "apple",
			expected: []VerdictKind{Exact, NotFound, NotFound, Exact, Exact},
		},
		{
			name:     "duplicate in secret, both credited",
			secret:   "robot",
			guess:    "oozed",
			expected: []VerdictKind{Contains, Exact, NotFound, NotFound, NotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.secret, tt.guess)
			assert.Equal(t, tt.expected, kinds(got))
			for i, v := range got {
				assert.Equal(t, tt.guess[i], v.Letter)
			}
		})
	}
}

// Exact credits never exceed shared positions and no letter is credited more
// often than it occurs in both words.
func TestEvaluateCreditBounds(t *testing.T) {
	words := corpus.Default().AllWords()
	if len(words) > 120 {
		words = words[:120]
	}

	for _, secret := range words {
		for _, guess := range words {
			letters := Evaluate(secret, guess)

			shared := 0
			for i := range guess {
				if guess[i] == secret[i] {
					shared++
				}
			}

			exact := 0
			credits := make(map[byte]int)
			for _, v := range letters {
				if v.Kind == Exact {
					exact++
				}
				if v.IsFound() {
					credits[v.Letter]++
				}
			}
			if exact > shared {
				t.Fatalf("%s vs %s: %d exact > %d shared", guess, secret, exact, shared)
			}
			for c, n := range credits {
				inGuess := strings.Count(guess, string(c))
				inSecret := strings.Count(secret, string(c))
				if n > inGuess || n > inSecret {
					t.Fatalf("%s vs %s: letter %c credited %d times (guess %d, secret %d)",
						guess, secret, c, n, inGuess, inSecret)
				}
			}
		}
	}
}

func TestCheckWin(t *testing.T) {
	g := ForWord("robot")

	data := g.Check("robot")

	assert.Equal(t, Win, data.Result)
	assert.Equal(t, 1, data.Guesses)
	assert.Equal(t, []VerdictKind{Exact, Exact, Exact, Exact, Exact}, kinds(data.Letters))
	assert.True(t, g.Finished())
}

func TestCheckIncorrect(t *testing.T) {
	g := ForWord("crane")

	data := g.Check("TRACE")

	assert.Equal(t, Incorrect, data.Result)
	assert.Equal(t, "trace", data.Guess)
	assert.Equal(t, 1, data.Guesses)
	assert.False(t, g.Finished())
	assert.Equal(t, []byte("acer"), g.Revealed())
}

func TestCheckLoseOnSixthMiss(t *testing.T) {
	g := ForWord("robot")

	for i := 1; i < MaxGuesses; i++ {
		data := g.Check("angle")
		require.Equal(t, Incorrect, data.Result, "guess %d", i)
		require.Equal(t, i, data.Guesses)
	}

	data := g.Check("crane")
	assert.Equal(t, Lose, data.Result)
	assert.Equal(t, MaxGuesses, data.Guesses)
	assert.True(t, g.Finished())
}

func TestCheckWinOnSixthGuess(t *testing.T) {
	g := ForWord("robot")
	for i := 1; i < MaxGuesses; i++ {
		g.Check("angle")
	}

	data := g.Check("robot")
	assert.Equal(t, Win, data.Result)
	assert.Equal(t, MaxGuesses, data.Guesses)
}

func TestCheckReplaysAfterTerminal(t *testing.T) {
	g := ForWord("robot")
	won := g.Check("robot")

	again := g.Check("crane")

	assert.Equal(t, won, again)
	assert.Len(t, g.History(), 1)
}

func TestHardModeInvalidGuess(t *testing.T) {
	g := ForWord("crane").WithHardMode()
	first := g.Check("about")
	require.Equal(t, Incorrect, first.Result)
	require.Equal(t, []byte("a"), g.Revealed())

	data := g.Check("stern")

	assert.Equal(t, Invalid, data.Result)
	assert.Equal(t, "stern", data.Guess)
	assert.Equal(t, 0, data.Guesses)
	assert.Equal(t, []VerdictKind{NotFound, NotFound, NotFound, NotFound, NotFound}, kinds(data.Letters))
	assert.Len(t, g.History(), 1, "invalid guess must not use a turn")

	next := g.Check("trace")
	assert.Equal(t, 2, next.Guesses)
}

func TestEasyModeAllowsOmittingRevealed(t *testing.T) {
	g := ForWord("crane")
	g.Check("about")

	data := g.Check("stern")
	assert.Equal(t, Incorrect, data.Result)
	assert.True(t, g.IsEasy())
}

func TestHistoryIsCopy(t *testing.T) {
	g := ForWord("crane")
	g.Check("trace")

	h := g.History()
	h[0].Guess = "zzzzz"

	assert.Equal(t, "trace", g.History()[0].Guess)
}

func TestForDay(t *testing.T) {
	c := corpus.FromWords([]string{"apple", "crane"})

	g, err := ForDay(c, 1)
	require.NoError(t, err)
	assert.Equal(t, "crane", g.Word())
	day, ok := g.Day()
	assert.True(t, ok)
	assert.Equal(t, 1, day)

	_, err = ForDay(c, -1)
	assert.True(t, errors.Is(err, ErrNoPuzzle))

	_, ok = ForWord("crane").Day()
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   error
	}{
		{"Crane", "crane", nil},
		{"  trace ", "trace", nil},
		{"abc", "", ErrInvalidWordLength},
		{"abcdef", "", ErrInvalidWordLength},
		{"", "", ErrInvalidWordLength},
		{"ab1de", "", ErrInvalidLetters},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.input)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, "Normalize(%q)", tt.input)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestVerdictStrings(t *testing.T) {
	assert.Equal(t, "exact(a)", Verdict{Kind: Exact, Letter: 'a'}.String())
	assert.Equal(t, "contains(b)", Verdict{Kind: Contains, Letter: 'b'}.String())
	assert.Equal(t, "not_found(c)", Verdict{Kind: NotFound, Letter: 'c'}.String())
	assert.Equal(t, "invalid", Invalid.String())
	assert.False(t, Invalid.Terminal())
	assert.True(t, Lose.Terminal())
}
