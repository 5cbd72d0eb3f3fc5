package modes

import (
	"konamikey/internal/ui/input/types"

	tea "github.com/charmbracelet/bubbletea"
)

// NormalMode handles the few control keys the app reserves for
// itself (q, ?, L, N, Esc). Everything else is left unconsumed so it
// stays usable as a combo symbol.
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Esc closes the help overlay if it's open
		if ctx.HelpVisible() {
			return []types.Action{types.ToggleHelpAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "L":
		return []types.Action{types.ShowMatchLogAction{}}, true

	case "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRecord}}, true
	}

	return nil, false
}
