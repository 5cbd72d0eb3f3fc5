package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Combo       lipgloss.Style
	ComboKeys   lipgloss.Style
	Progress    lipgloss.Style
	ProgressOff lipgloss.Style
	Unlocked    lipgloss.Style
	PanelBox    lipgloss.Style
	Prompt      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Error       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Combo:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		ComboKeys:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Progress:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		ProgressOff: lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // dark gray
		Unlocked:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		PanelBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginTop(1).
			BorderForeground(lipgloss.Color("99")),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
