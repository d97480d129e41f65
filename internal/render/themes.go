package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for tiles, tables and the play screen
type Theme struct {
	Name     string
	Exact    string // Right letter, right spot
	Contains string // Right letter, wrong spot
	NotFound string // Letter not in the word
	TileText string // Letter on a tile
	Accent   string // Titles, typing cursor
	Label    string // Labels, prompts, help text
	Error    string // Rejected input
	Border   string // Table and box borders
}

// Available themes
var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Exact:    "#538d4e", // Classic green
		Contains: "#b59f3b", // Classic yellow
		NotFound: "#3a3a3c", // Dark gray
		TileText: "#ffffff",
		Accent:   "#C73B3C", // Burgundy red accent
		Label:    "#6c6c6c", // Gray
		Error:    "#ff5f5f", // Bright red
		Border:   "#5f87d7", // Blue
	},
	"gruvbox": {
		Name:     "Gruvbox",
		Exact:    "#98971a", // Gruvbox green
		Contains: "#d79921", // Gruvbox yellow
		NotFound: "#3c3836", // Gruvbox bg1
		TileText: "#fbf1c7",
		Accent:   "#d65d0e", // Gruvbox orange
		Label:    "#928374", // Gruvbox gray
		Error:    "#cc241d", // Gruvbox red
		Border:   "#458588", // Gruvbox aqua
	},
	"tokyonight": {
		Name:     "Tokyo Night",
		Exact:    "#9ece6a", // Tokyo Night green
		Contains: "#e0af68", // Tokyo Night yellow
		NotFound: "#292e42", // Tokyo Night bg highlight
		TileText: "#1a1b26",
		Accent:   "#7aa2f7", // Tokyo Night blue
		Label:    "#565f89", // Tokyo Night comment
		Error:    "#f7768e", // Tokyo Night red
		Border:   "#7dcfff", // Tokyo Night cyan
	},
	"catppuccin": {
		Name:     "Catppuccin",
		Exact:    "#a6e3a1", // Catppuccin Green
		Contains: "#f9e2af", // Catppuccin Yellow
		NotFound: "#313244", // Catppuccin Surface0
		TileText: "#1e1e2e",
		Accent:   "#cba6f7", // Catppuccin Mauve
		Label:    "#6c7086", // Catppuccin Overlay0
		Error:    "#f38ba8", // Catppuccin Red
		Border:   "#89b4fa", // Catppuccin Blue
	},
}

// ThemeNames returns the list of available theme names
var ThemeNames = []string{"default", "gruvbox", "tokyonight", "catppuccin"}

// CurrentTheme holds the active theme
var CurrentTheme = Themes["default"]

var (
	exactStyle    lipgloss.Style
	containsStyle lipgloss.Style
	notFoundStyle lipgloss.Style
	headerStyle   lipgloss.Style
	cellStyle     lipgloss.Style
	borderStyle   lipgloss.Style
)

// SetTheme updates the current theme and regenerates all styles
func SetTheme(name string) error {
	theme, ok := Themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames, ", "))
	}
	CurrentTheme = theme
	regenerateStyles()
	return nil
}

func tileStyle(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(CurrentTheme.TileText)).
		Background(lipgloss.Color(bg))
}

// regenerateStyles updates all lipgloss styles with current theme colors
func regenerateStyles() {
	exactStyle = tileStyle(CurrentTheme.Exact)
	containsStyle = tileStyle(CurrentTheme.Contains)
	notFoundStyle = tileStyle(CurrentTheme.NotFound)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(CurrentTheme.Accent))

	cellStyle = lipgloss.NewStyle().
		Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Border))
}

// Initialize styles with default theme
func init() {
	regenerateStyles()
}
