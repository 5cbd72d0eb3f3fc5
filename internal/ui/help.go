package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent renders the help information
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("konamikey Help"))
	help.WriteString("\n")

	// Combos section
	help.WriteString(sectionStyle.Render("Combos"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("<sequence>"), descStyle.Render("Type a combo's keys in order to toggle its panel")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("N"), descStyle.Render("Define a combo: name followed by keys, space separated")))
	help.WriteString("\n")

	// Session section
	help.WriteString(sectionStyle.Render("Session"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("L"), descStyle.Render("View the session match log")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s           %s", keyStyle.Render("q"), descStyle.Render("Quit (q is reserved; combos cannot use it)")))

	return help.String()
}
