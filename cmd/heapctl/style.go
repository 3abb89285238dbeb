package main

import "github.com/charmbracelet/lipgloss"

// Block labels in text dumps. lipgloss drops the colors on its own when
// stdout is not a terminal.
var (
	usedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	freeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func stateStyle(inUse bool, label string) string {
	if inUse {
		return usedStyle.Render(label)
	}
	return freeStyle.Render(label)
}
