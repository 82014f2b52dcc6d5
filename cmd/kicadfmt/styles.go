// Terminal styling for the kicadfmt CLI.
package main

import "github.com/charmbracelet/lipgloss"

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	delStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// disableStyles replaces every style with a pass-through so output stays
// plain text.
func disableStyles() {
	plain := lipgloss.NewStyle()
	okStyle = plain
	errorStyle = plain
	addStyle = plain
	delStyle = plain
	headerStyle = plain
	dimStyle = plain
}
