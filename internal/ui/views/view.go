package views

import (
	"fmt"
	"strings"
)

// ComboView is the render-ready state of one combo
type ComboView struct {
	Name     string
	Keys     []string
	Progress int // consecutive keys matched so far
	Length   int
	Unlocked bool
	Panel    string
}

// ViewModel carries everything the renderer needs for one frame
type ViewModel struct {
	Width        int
	Height       int
	Combos       []ComboView
	TotalMatches int
	Recording    bool
	Prompt       string
	InputView    string
	StatusMsg    string
	Footer       string
	ReadyMarker  string
}

// Renderer renders the main screen
type Renderer struct {
	styles       *Styles
	showProgress bool
}

// NewRenderer creates a new renderer
func NewRenderer(showProgress bool) *Renderer {
	return &Renderer{
		styles:       NewStyles(),
		showProgress: showProgress,
	}
}

// Styles exposes the style set for other render helpers
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the full main view
func (r *Renderer) Render(vm ViewModel) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("konamikey"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Type a secret key sequence to toggle its panel."))
	b.WriteString("\n\n")

	for _, combo := range vm.Combos {
		b.WriteString(r.renderCombo(combo))
		b.WriteString("\n")
	}

	// Panels for unlocked combos
	for _, combo := range vm.Combos {
		if combo.Unlocked {
			b.WriteString(r.renderPanel(combo))
			b.WriteString("\n")
		}
	}

	if vm.Recording {
		b.WriteString("\n")
		b.WriteString(r.styles.Prompt.Render(vm.Prompt))
		b.WriteString(vm.InputView)
		b.WriteString("\n")
	}

	// Status line
	status := fmt.Sprintf("%d matches this session", vm.TotalMatches)
	if vm.StatusMsg != "" {
		status = vm.StatusMsg
	}
	if vm.ReadyMarker != "" {
		status += " " + vm.ReadyMarker
	}
	b.WriteString(r.styles.Status.Render(status))
	b.WriteString("\n")

	if vm.Footer != "" {
		b.WriteString(r.styles.Help.Render(vm.Footer))
	}

	return r.styles.Main.Render(b.String())
}

// renderCombo renders one combo line with its progress meter
func (r *Renderer) renderCombo(combo ComboView) string {
	var b strings.Builder

	b.WriteString(r.styles.Combo.Render(combo.Name))
	b.WriteString("  ")
	b.WriteString(r.styles.ComboKeys.Render(strings.Join(combo.Keys, " ")))

	if r.showProgress {
		b.WriteString("  ")
		b.WriteString(r.renderMeter(combo.Progress, combo.Length))
	}

	if combo.Unlocked {
		b.WriteString("  ")
		b.WriteString(r.styles.Unlocked.Render("UNLOCKED"))
	}

	return b.String()
}

// renderMeter renders filled/empty cells for match progress
func (r *Renderer) renderMeter(progress, length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		if i < progress {
			b.WriteString(r.styles.Progress.Render("■"))
		} else {
			b.WriteString(r.styles.ProgressOff.Render("□"))
		}
	}
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf(" %d/%d", progress, length)))
	return b.String()
}

// renderPanel renders the bordered panel an unlocked combo reveals
func (r *Renderer) renderPanel(combo ComboView) string {
	content := combo.Panel
	if content == "" {
		content = fmt.Sprintf("%s unlocked!", combo.Name)
	}
	return r.styles.PanelBox.Render(content)
}
