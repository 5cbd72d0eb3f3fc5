package ui

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"konamikey/internal/binding"
	"konamikey/internal/config"
	"konamikey/internal/domain"
	"konamikey/internal/eventbus"
	"konamikey/internal/history"
	"konamikey/internal/ui/input"
	inputtypes "konamikey/internal/ui/input/types"
	"konamikey/internal/ui/views"
)

// reservedKeys are control keys that never reach the key-press
// stream's consumers as combo symbols
var reservedKeys = map[string]bool{
	"q":      true,
	"?":      true,
	"L":      true,
	"N":      true,
	"esc":    true,
	"ctrl+c": true,
}

// keyMap defines the control key bindings shown in the footer
type keyMap struct {
	Record key.Binding
	Log    key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Record, k.Log, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Record, k.Log}, {k.Help, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Record: key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new combo")),
		Log:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "match log")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	// UI-specific state
	width     int
	height    int
	help      help.Model
	keys      keyMap
	showHelp  bool
	statusMsg string

	// Combo state
	combos     map[string]*domain.Combo
	comboOrder []string
	bindings   map[string]*binding.Binding
	unlocked   map[string]bool
	recorder   history.Recorder

	// Handlers
	stream       *KeyStream
	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	logOps       *MatchLogOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. Every configured combo gets its own
// binding, activated against the bus-backed key stream.
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	combos, err := cfg.ResolveCombos()
	if err != nil {
		return nil, err
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		help:         help.New(),
		keys:         defaultKeyMap(),
		combos:       make(map[string]*domain.Combo),
		bindings:     make(map[string]*binding.Binding),
		unlocked:     make(map[string]bool),
		recorder:     history.NewRecorder(bus),
		stream:       NewKeyStream(bus),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowProgress),
		helpRenderer: NewHelpRenderer(),
		logOps:       NewMatchLogOps(nil),
	}

	// The model owns all state a match toggles; bindings only report
	// the match through the bus
	bus.Subscribe(eventbus.EventSequenceMatched, func(e eventbus.DomainEvent) {
		if evt, ok := e.(eventbus.SequenceMatchedEvent); ok {
			m.onMatch(evt.Combo)
		}
	})

	for i := range combos {
		if err := m.addCombo(combos[i]); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.logOps.SetProgram(p)
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case matchLogMsg:
		if msg.err != nil {
			log.Printf("Match log pager failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("pager error: %v", msg.err))
		}
		return m, nil

	case statusClearMsg:
		m.statusMsg = ""
		return m, nil
	}

	// Forward everything else to the text input when recording
	if cmd := m.inputHandler.Update(msg); cmd != nil {
		return m, cmd
	}
	return m, nil
}

// handleKey processes one key press
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// In normal mode every key press is part of the global key-press
	// stream, control keys included, exactly in arrival order
	if m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
		m.bus.Publish(eventbus.KeyPressedEvent{Key: msg.String()})
	}

	actions, cmd, _ := m.inputHandler.HandleKey(msg, m)

	var cmds []tea.Cmd
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	for _, action := range actions {
		switch a := action.(type) {
		case inputtypes.QuitAction:
			m.teardown()
			return m, tea.Quit

		case inputtypes.ToggleHelpAction:
			m.showHelp = !m.showHelp

		case inputtypes.ShowMatchLogAction:
			cmds = append(cmds, m.showMatchLog())

		case inputtypes.SubmitTextAction:
			if statusCmd := m.defineCombo(a.Text); statusCmd != nil {
				cmds = append(cmds, statusCmd)
			}

		case inputtypes.CancelTextAction, inputtypes.UpdateTextAction:
			// Nothing to do beyond the handler's own bookkeeping
		}
	}

	return m, tea.Batch(cmds...)
}

// handleEvent processes domain events forwarded from outside the loop
func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch evt := e.(type) {
	case eventbus.ConfigSavedEvent:
		m.statusMsg = "config saved"
	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", evt.Message, evt.Err)
		m.statusMsg = evt.Message
	}
}

// onMatch toggles the matched combo's panel. The recorder picks up the
// same event independently for the match log.
func (m *Model) onMatch(name string) {
	if _, ok := m.combos[name]; !ok {
		return
	}
	m.unlocked[name] = !m.unlocked[name]
	log.Printf("Combo %q matched (panel now %v)", name, m.unlocked[name])
}

// addCombo registers a combo and activates its binding
func (m *Model) addCombo(combo domain.Combo) error {
	name := combo.Name
	b, err := binding.New(combo.Keys, func() {
		m.bus.Publish(eventbus.SequenceMatchedEvent{Combo: name})
	})
	if err != nil {
		return fmt.Errorf("combo %q: %w", name, err)
	}
	if err := b.Activate(m.stream); err != nil {
		return fmt.Errorf("combo %q: %w", name, err)
	}

	c := combo
	m.combos[name] = &c
	m.bindings[name] = b
	m.comboOrder = append(m.comboOrder, name)
	return nil
}

// defineCombo parses "name key key ..." and creates or re-sequences a combo
func (m *Model) defineCombo(text string) tea.Cmd {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return m.setStatus("combo needs a name and at least one key")
	}
	name, keys := fields[0], fields[1:]

	for _, k := range keys {
		if reservedKeys[k] {
			return m.setStatus(fmt.Sprintf("key %q is reserved", k))
		}
	}

	if b, exists := m.bindings[name]; exists {
		// Re-sequence the live binding; progress starts over
		if err := b.SetSequence(keys); err != nil {
			return m.setStatus(fmt.Sprintf("invalid keys: %v", err))
		}
		m.combos[name].Keys = b.Sequence()
	} else {
		combo := domain.Combo{
			Name:  name,
			Keys:  keys,
			Panel: fmt.Sprintf("%s unlocked!", name),
		}
		if err := m.addCombo(combo); err != nil {
			return m.setStatus(fmt.Sprintf("invalid combo: %v", err))
		}
	}

	m.bus.Publish(eventbus.ConfigChangedEvent{Combos: m.comboList()})
	return m.setStatus(fmt.Sprintf("combo %q set: %s", name, strings.Join(keys, " ")))
}

// comboList returns the combos in display order
func (m *Model) comboList() []domain.Combo {
	combos := make([]domain.Combo, 0, len(m.comboOrder))
	for _, name := range m.comboOrder {
		combos = append(combos, *m.combos[name])
	}
	return combos
}

// teardown releases every binding's subscription
func (m *Model) teardown() {
	for _, b := range m.bindings {
		b.Deactivate()
	}
}

// showMatchLog returns a command that opens the match log pager
func (m *Model) showMatchLog() tea.Cmd {
	records := m.recorder.Records()
	return func() tea.Msg {
		return matchLogMsg{err: m.logOps.ShowMatchLogInPager(records)}
	}
}

// setStatus sets a transient status message that clears itself
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.showHelp {
		return m.renderer.Styles().Main.Render(m.helpRenderer.RenderHelpContent())
	}

	vm := views.ViewModel{
		Width:        m.width,
		Height:       m.height,
		Combos:       m.comboViews(),
		TotalMatches: m.recorder.Count(),
		StatusMsg:    m.statusMsg,
		Footer:       m.help.View(m.keys),
	}

	if m.inputHandler.CurrentMode() == inputtypes.ModeRecord {
		vm.Recording = true
		vm.Prompt = "New combo (name key key ...): "
		if ti := m.inputHandler.TextInput(); ti != nil {
			vm.InputView = ti.View()
		}
	}

	// Marker used by the end-to-end harness to detect a full render
	if os.Getenv("KONAMIKEY_E2E_TEST") != "" {
		vm.ReadyMarker = "__READY__"
	}

	return m.renderer.Render(vm)
}

// comboViews builds the render-ready combo state
func (m *Model) comboViews() []views.ComboView {
	out := make([]views.ComboView, 0, len(m.comboOrder))
	for _, name := range m.comboOrder {
		combo := m.combos[name]
		progress, length := m.bindings[name].Progress()
		out = append(out, views.ComboView{
			Name:     name,
			Keys:     combo.Keys,
			Progress: progress,
			Length:   length,
			Unlocked: m.unlocked[name],
			Panel:    combo.Panel,
		})
	}
	return out
}

// ComboNames implements the input context
func (m *Model) ComboNames() []string {
	names := make([]string, len(m.comboOrder))
	copy(names, m.comboOrder)
	return names
}

// HelpVisible implements the input context
func (m *Model) HelpVisible() bool {
	return m.showHelp
}
