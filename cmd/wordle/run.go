package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aayushbajaj/wordle-assist/internal/candidates"
	"github.com/aayushbajaj/wordle-assist/internal/corpus"
	"github.com/aayushbajaj/wordle-assist/internal/game"
	"github.com/aayushbajaj/wordle-assist/internal/render"
	"github.com/aayushbajaj/wordle-assist/internal/solver"
	"github.com/aayushbajaj/wordle-assist/internal/tui"
	"github.com/aayushbajaj/wordle-assist/pkg/stats"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

// runGuesses scores guesses in order until the game ends, then prints the
// share summary or, while the game is still open, optional suggestions.
func (a *app) runGuesses(out io.Writer, g *game.Game, guesses []string) error {
	if a.cheat >= 3 {
		fmt.Fprintf(out, "Today's secret word is: %q\n\n", g.Word())
	}

	if invalid := wrongLength(guesses); len(invalid) > 0 {
		fmt.Fprintf(out, "Invalid guesses: %s\n", strings.Join(invalid, ", "))
		return nil
	}

	remaining := candidates.All(a.corpus)
	result := game.Incorrect
	var last game.CheckData

	for _, raw := range guesses {
		guess := strings.ToLower(strings.TrimSpace(raw))
		a.warnUnknown(out, guess)

		last = g.Check(guess)
		fmt.Fprintln(out, render.Tiles(last.Letters))

		result = last.Result
		if result == game.Invalid {
			break
		}

		before := remaining.Count()
		remaining = solver.Eliminate(remaining, last.Letters)
		a.logger.Debug().
			Str("guess", guess).
			Int("before", before).
			Int("after", remaining.Count()).
			Msg("eliminated candidates")

		if result.Terminal() {
			break
		}
	}

	fmt.Fprintln(out)

	switch result {
	case game.Win, game.Lose:
		fmt.Fprint(out, render.Share(g, a.suggest))
	case game.Incorrect:
		if a.suggest {
			a.printSuggestions(out, g, remaining)
		}
	case game.Invalid:
		fmt.Fprintf(out, "Guess '%s' does not contain all revealed letters.\n", last.Guess)
	}

	return nil
}

func wrongLength(guesses []string) []string {
	invalid := lo.Filter(guesses, func(g string, _ int) bool {
		return len(strings.TrimSpace(g)) != corpus.WordLength
	})
	return lo.Map(invalid, func(g string, _ int) string {
		return fmt.Sprintf("%q", g)
	})
}

// warnUnknown flags guesses outside the word list. They are still scored.
func (a *app) warnUnknown(out io.Writer, guess string) {
	if a.corpus.Contains(guess) {
		return
	}
	msg := fmt.Sprintf("Warning: '%s' is not in the word list", guess)
	if near := a.corpus.Closest(guess, 3); len(near) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(near, ", "))
	}
	fmt.Fprintln(out, msg)
}

func (a *app) printSuggestions(out io.Writer, g *game.Game, remaining candidates.Set) {
	index := candidates.BuildIndex(remaining)
	list := a.ranker.Suggest(index, remaining, g.IsEasy())

	fmt.Fprintf(out, "Words remaining: %d\n", remaining.Count())

	summary := stats.Summarize(remaining.Words())
	if summary.PeakCount > 0 {
		fmt.Fprintf(out, "Most common letter: %c (%s words)\n",
			summary.PeakLetter, stats.FormatCount(summary.PeakCount))
	}

	fmt.Fprintln(out, render.SuggestionTable(list, a.suggestCount))
}

// runExplain replays guesses then reports how word would fare as the next one.
func (a *app) runExplain(out io.Writer, g *game.Game, raw string, guesses []string) error {
	word, err := game.Normalize(raw)
	if err != nil {
		return fmt.Errorf("invalid word %q: %w", raw, err)
	}

	remaining := candidates.All(a.corpus)
	for _, prev := range guesses {
		guess, err := game.Normalize(prev)
		if err != nil {
			return fmt.Errorf("invalid guess %q: %w", prev, err)
		}
		data := g.Check(guess)
		if data.Result == game.Invalid {
			fmt.Fprintf(out, "Guess '%s' does not contain all revealed letters.\n", guess)
			return nil
		}
		remaining = solver.Eliminate(remaining, data.Letters)
		if data.Result.Terminal() {
			break
		}
	}

	s := solver.Explain(candidates.BuildIndex(remaining), remaining, word)

	fmt.Fprintf(out, "Words remaining: %d\n", remaining.Count())
	fmt.Fprintln(out, render.SuggestionTable([]solver.Suggestion{s}, 1))
	if remaining.Contains(word) {
		fmt.Fprintf(out, "'%s' could still be the answer.\n", word)
	} else {
		fmt.Fprintf(out, "'%s' cannot be the answer.\n", word)
	}
	return nil
}

func (a *app) runPlay(out io.Writer, g *game.Game, guesses []string) error {
	for _, raw := range guesses {
		guess, err := game.Normalize(raw)
		if err != nil {
			return fmt.Errorf("invalid guess %q: %w", raw, err)
		}
		if g.Check(guess).Result.Terminal() {
			break
		}
	}

	model := tui.NewPlay(g, a.corpus, a.ranker, tui.Options{
		ShowSuggestions: a.suggest,
		SuggestCount:    a.suggestCount,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	printFinal(out, final)
	return nil
}

// printFinal leaves the share summary on screen after the alt screen closes.
func printFinal(out io.Writer, final tea.Model) {
	if m, ok := final.(tui.PlayModel); ok && m.State() == tui.StateFinished {
		fmt.Fprint(out, render.Share(m.Game(), m.Assisted()))
	}
}
