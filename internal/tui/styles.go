package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true).MarginTop(1)
	labelStyle    = lipgloss.NewStyle().Width(13)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	priorityStyle = map[string]lipgloss.Style{
		"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)
