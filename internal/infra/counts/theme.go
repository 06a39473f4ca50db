package counts

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Checked  lipgloss.Style
	Help     lipgloss.Style
	ErrorMsg lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Checked:  lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		Help:     lipgloss.NewStyle().Faint(true),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
