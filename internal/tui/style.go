package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// SuccessStyle marks completed actions
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	// URLStyle highlights links printed for the user
	URLStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Underline(true)
	// MutedStyle is used for hints
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	// TitleStyle is used for section titles
	TitleStyle = lipgloss.NewStyle().Bold(true)
)

// ConfigureColors turns styling off when NO_COLOR or CLICOLOR=0 is set.
func ConfigureColors() {
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// FormatURL styles a URL for terminal output
func FormatURL(url string) string {
	return URLStyle.Render(url)
}
