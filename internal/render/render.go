package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aayushbajaj/wordle-assist/internal/game"
	"github.com/aayushbajaj/wordle-assist/internal/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Tiles renders one guess as colored letter tiles.
func Tiles(letters []game.Verdict) string {
	tiles := make([]string, len(letters))
	for i, v := range letters {
		tiles[i] = tile(v)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func tile(v game.Verdict) string {
	letter := strings.ToUpper(string(v.Letter))
	switch v.Kind {
	case game.Exact:
		return exactStyle.Render(letter)
	case game.Contains:
		return containsStyle.Render(letter)
	default:
		return notFoundStyle.Render(letter)
	}
}

// Emoji renders one guess without revealing its letters.
func Emoji(letters []game.Verdict) string {
	var b strings.Builder
	for _, v := range letters {
		switch v.Kind {
		case game.Exact:
			b.WriteString("🟩")
		case game.Contains:
			b.WriteString("🟨")
		default:
			b.WriteString("⬛")
		}
	}
	return b.String()
}

// Share renders the spoiler-free summary of a finished game. Hard mode adds
// "*" after the score and assisted play adds "TA".
func Share(g *game.Game, assisted bool) string {
	day := ""
	if d, ok := g.Day(); ok {
		day = strconv.Itoa(d)
	}
	hard := ""
	if !g.IsEasy() {
		hard = "*"
	}
	ta := ""
	if assisted {
		ta = " TA"
	}

	history := g.History()

	var b strings.Builder
	fmt.Fprintf(&b, "Wordle %s %d/%d%s%s\n\n", day, len(history), game.MaxGuesses, hard, ta)
	for _, data := range history {
		b.WriteString(Emoji(data.Letters))
		b.WriteString("\n")
	}
	return b.String()
}

// SuggestionTable renders the first count suggestions. A trailing "..." row
// marks a truncated list.
func SuggestionTable(list []solver.Suggestion, count int) string {
	if count < 0 {
		count = 0
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Word", "Remaining", "Pos Score").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, s := range list {
		if i >= count {
			t.Row("...", "", "")
			break
		}
		t.Row(s.Word, strconv.Itoa(s.Remaining), strconv.Itoa(s.Score))
	}

	return t.String()
}
