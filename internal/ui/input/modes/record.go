package modes

import (
	"konamikey/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RecordMode captures a combo definition as text: a combo name
// followed by its keys, space separated ("boss b o s s"). Submitting
// an existing name re-sequences that combo's live binding.
type RecordMode struct {
	textInputMode TextInputMode
}

func NewRecordMode(ti *textinput.Model) *RecordMode {
	return &RecordMode{
		textInputMode: NewTextInputMode(types.ModeRecord, "record", "New combo (name key key ...): ", ti),
	}
}

func (m *RecordMode) Name() string {
	return m.textInputMode.Name()
}

func (m *RecordMode) Prompt() string {
	return m.textInputMode.Prompt()
}

func (m *RecordMode) Enter(ctx types.Context) []types.Action {
	return m.textInputMode.Enter(ctx)
}

func (m *RecordMode) Exit(ctx types.Context) []types.Action {
	return m.textInputMode.Exit(ctx)
}

func (m *RecordMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Let the base TextInputMode handle all keys including Enter
	// It will send a SubmitTextAction when Enter is pressed
	return m.textInputMode.HandleKey(msg, ctx)
}
