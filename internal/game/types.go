package game

import "fmt"

// MaxGuesses is the number of guesses allowed before the game is lost
const MaxGuesses = 6

// VerdictKind is the per-letter feedback for a guess
type VerdictKind int

const (
	NotFound VerdictKind = iota // letter not in the remaining secret letters
	Contains                    // letter in the secret, elsewhere
	Exact                       // letter in the right position
)

func (k VerdictKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Contains:
		return "contains"
	default:
		return "not_found"
	}
}

// Verdict pairs a guessed letter with its feedback
type Verdict struct {
	Kind   VerdictKind
	Letter byte
}

// IsFound reports whether the letter was credited as Exact or Contains.
func (v Verdict) IsFound() bool {
	return v.Kind == Exact || v.Kind == Contains
}

func (v Verdict) String() string {
	return fmt.Sprintf("%s(%c)", v.Kind, v.Letter)
}

// Outcome is the aggregate result of a guess
type Outcome int

const (
	Incorrect Outcome = iota
	Win
	Lose
	Invalid // hard mode: guess left out a revealed letter
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Invalid:
		return "invalid"
	default:
		return "incorrect"
	}
}

// Terminal reports whether no further guesses are evaluated.
func (o Outcome) Terminal() bool {
	return o == Win || o == Lose
}

// CheckData is the result of one Check call
type CheckData struct {
	Guess   string
	Letters []Verdict
	Result  Outcome
	Guesses int // guess number this result was recorded as; 0 for Invalid
}
