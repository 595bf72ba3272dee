package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all styling for the interactive game
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Equity    lipgloss.Style
	Prompt    lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Faint     lipgloss.Style
}

// DefaultStyles returns the default style set
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true),
		Equity: lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true),
		Lose: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true),
		Faint: lipgloss.NewStyle().
			Faint(true),
	}
}
