package tui

import (
	"github.com/aayushbajaj/wordle-assist/internal/render"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle       lipgloss.Style
	promptStyle      lipgloss.Style
	errorStyle       lipgloss.Style
	cursorStyle      lipgloss.Style
	pendingStyle     lipgloss.Style
	emptyTileStyle   lipgloss.Style
	statLabelStyle   lipgloss.Style
	statValueStyle   lipgloss.Style
	statsBoxStyle    lipgloss.Style
	resultTitleStyle lipgloss.Style
	graphStyle       lipgloss.Style
	helpStyle        lipgloss.Style
)

// SetTheme switches the shared palette and regenerates the play styles
func SetTheme(name string) error {
	if err := render.SetTheme(name); err != nil {
		return err
	}
	regenerateStyles()
	return nil
}

// regenerateStyles updates all lipgloss styles with current theme colors
func regenerateStyles() {
	theme := render.CurrentTheme

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent)).
		MarginBottom(1)

	promptStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Label))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error))

	cursorStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color(theme.Accent)).
		Foreground(lipgloss.Color("#000000"))

	pendingStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(theme.TileText))

	emptyTileStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(theme.Label))

	statLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Label))

	statValueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Exact))

	statsBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(1, 3).
		MarginTop(1)

	resultTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent)).
		MarginBottom(1)

	graphStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Label)).
		MarginTop(1)
}

// Initialize styles with default theme
func init() {
	regenerateStyles()
}
