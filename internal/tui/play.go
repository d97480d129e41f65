package tui

import (
	"fmt"
	"strings"

	"github.com/aayushbajaj/wordle-assist/internal/candidates"
	"github.com/aayushbajaj/wordle-assist/internal/corpus"
	"github.com/aayushbajaj/wordle-assist/internal/game"
	"github.com/aayushbajaj/wordle-assist/internal/render"
	"github.com/aayushbajaj/wordle-assist/internal/solver"
	"github.com/aayushbajaj/wordle-assist/pkg/stats"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type PlayState int

const (
	StatePlaying PlayState = iota
	StateFinished
)

// Options controls the assistant panel of the play screen.
type Options struct {
	ShowSuggestions bool
	SuggestCount    int
}

type PlayModel struct {
	game        *game.Game
	corpus      *corpus.Corpus
	ranker      *solver.Ranker
	remaining   candidates.Set
	suggestions []solver.Suggestion
	options     Options
	assisted    bool
	typed       string
	message     string
	isError     bool
	state       PlayState
	width       int
	height      int
}

// NewPlay builds the play screen for g. Guesses already made on g are
// replayed so the candidate set starts narrowed.
func NewPlay(g *game.Game, c *corpus.Corpus, ranker *solver.Ranker, opts Options) PlayModel {
	if opts.SuggestCount <= 0 {
		opts.SuggestCount = 20
	}

	m := PlayModel{
		game:      g,
		corpus:    c,
		ranker:    ranker,
		remaining: solver.Replay(candidates.All(c), g.History()),
		options:   opts,
		state:     StatePlaying,
	}
	if g.Finished() {
		m.state = StateFinished
	}
	if opts.ShowSuggestions {
		m.assisted = true
		m.refreshSuggestions()
	}
	return m
}

func (m PlayModel) Game() *game.Game {
	return m.game
}

func (m PlayModel) Typed() string {
	return m.typed
}

func (m PlayModel) Message() string {
	return m.message
}

func (m PlayModel) State() PlayState {
	return m.state
}

// Remaining is the number of candidates still consistent with the guesses.
func (m PlayModel) Remaining() int {
	return m.remaining.Count()
}

// Assisted reports whether suggestions were shown at any point.
func (m PlayModel) Assisted() bool {
	return m.assisted
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyBackspace:
			if len(m.typed) > 0 && m.state == StatePlaying {
				m.typed = m.typed[:len(m.typed)-1]
			}
			return m, nil

		case tea.KeyTab:
			m.options.ShowSuggestions = !m.options.ShowSuggestions
			if m.options.ShowSuggestions {
				m.assisted = true
				m.refreshSuggestions()
			}
			return m, nil

		case tea.KeyEnter:
			if m.state == StateFinished {
				return m, tea.Quit
			}
			m.submit()
			return m, nil

		case tea.KeyRunes:
			if m.state != StatePlaying {
				return m, nil
			}
			for _, r := range msg.Runes {
				if len(m.typed) >= corpus.WordLength {
					break
				}
				switch {
				case r >= 'a' && r <= 'z':
					m.typed += string(r)
				case r >= 'A' && r <= 'Z':
					m.typed += string(r - 'A' + 'a')
				}
			}
			m.message = ""
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m *PlayModel) submit() {
	guess, err := game.Normalize(m.typed)
	if err != nil {
		m.setError(err.Error())
		return
	}

	if !m.corpus.Contains(guess) {
		msg := fmt.Sprintf("'%s' is not in the word list", guess)
		if near := m.corpus.Closest(guess, 3); len(near) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(near, ", "))
		}
		m.setError(msg)
		return
	}

	data := m.game.Check(guess)
	if data.Result == game.Invalid {
		m.setError(fmt.Sprintf("Guess '%s' does not contain all revealed letters.", guess))
		return
	}

	m.typed = ""
	m.message = ""
	m.isError = false
	m.remaining = solver.Eliminate(m.remaining, data.Letters)

	if data.Result.Terminal() {
		m.state = StateFinished
	}
	if m.options.ShowSuggestions {
		m.refreshSuggestions()
	}
}

func (m *PlayModel) setError(msg string) {
	m.message = msg
	m.isError = true
}

func (m *PlayModel) refreshSuggestions() {
	index := candidates.BuildIndex(m.remaining)
	m.suggestions = m.ranker.Suggest(index, m.remaining, m.game.IsEasy())
}

func (m PlayModel) View() string {
	var b strings.Builder

	title := "Wordle"
	if day, ok := m.game.Day(); ok {
		title = fmt.Sprintf("Wordle %d", day)
	}
	if !m.game.IsEasy() {
		title += " (hard)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderBoard())
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n")
		if m.isError {
			b.WriteString(errorStyle.Render(m.message))
		} else {
			b.WriteString(promptStyle.Render(m.message))
		}
		b.WriteString("\n")
	}

	if m.options.ShowSuggestions && m.state == StatePlaying {
		b.WriteString(m.renderAssistant())
	}

	if m.state == StateFinished {
		b.WriteString(m.renderResults())
	}

	// Help
	b.WriteString("\n")
	if m.state == StateFinished {
		b.WriteString(helpStyle.Render("enter/esc: quit"))
	} else {
		b.WriteString(helpStyle.Render("enter: guess • tab: suggestions • esc: quit"))
	}

	return b.String()
}

func (m PlayModel) renderBoard() string {
	history := m.game.History()
	rows := make([]string, 0, game.MaxGuesses)

	for _, data := range history {
		rows = append(rows, render.Tiles(data.Letters))
	}
	if m.state == StatePlaying && len(rows) < game.MaxGuesses {
		rows = append(rows, m.renderInput())
	}
	for len(rows) < game.MaxGuesses {
		rows = append(rows, strings.Repeat(emptyTileStyle.Render("·"), corpus.WordLength))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m PlayModel) renderInput() string {
	var b strings.Builder
	for i := 0; i < corpus.WordLength; i++ {
		switch {
		case i < len(m.typed):
			b.WriteString(pendingStyle.Render(strings.ToUpper(m.typed[i : i+1])))
		case i == len(m.typed):
			b.WriteString(cursorStyle.Render("_"))
		default:
			b.WriteString(emptyTileStyle.Render("·"))
		}
	}
	return b.String()
}

func (m PlayModel) renderAssistant() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		statLabelStyle.Render("Words remaining:"),
		statValueStyle.Render(stats.FormatCount(int64(m.remaining.Count()))),
	))

	b.WriteString(statLabelStyle.Render("Letter frequency:"))
	b.WriteString("\n")
	b.WriteString(renderLetterGraph(stats.Summarize(m.remaining.Words())))
	b.WriteString("\n")

	b.WriteString(render.SuggestionTable(m.suggestions, m.options.SuggestCount))
	b.WriteString("\n")
	return b.String()
}

// renderLetterGraph draws one bar per letter, scaled to the most common one.
func renderLetterGraph(s stats.Summary) string {
	if s.PeakCount == 0 {
		return "No candidates"
	}

	bars := []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}
	var graph strings.Builder

	for _, count := range s.Letters {
		idx := int(float64(count) / float64(s.PeakCount) * float64(len(bars)-1))
		if count > 0 && idx == 0 {
			idx = 1
		}
		if count == 0 {
			graph.WriteString(" ")
			continue
		}
		graph.WriteString(graphStyle.Render(bars[idx]))
	}

	graph.WriteString("\n")
	graph.WriteString(statLabelStyle.Render("abcdefghijklmnopqrstuvwxyz"))

	return graph.String()
}

func (m PlayModel) renderResults() string {
	history := m.game.History()
	last := history[len(history)-1]

	title := "Solved!"
	if last.Result == game.Lose {
		title = fmt.Sprintf("The word was %s", strings.ToUpper(m.game.Word()))
	}

	results := fmt.Sprintf(
		"%s\n\n%s",
		resultTitleStyle.Render(title),
		strings.TrimRight(render.Share(m.game, m.assisted), "\n"),
	)

	return statsBoxStyle.Render(results)
}
