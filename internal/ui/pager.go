package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"konamikey/internal/domain"
)

// MatchLogOps shows the session match log in the embedded ov pager
type MatchLogOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewMatchLogOps creates a new match log operations instance
func NewMatchLogOps(program *tea.Program) *MatchLogOps {
	return &MatchLogOps{
		program: program,
	}
}

// SetProgram sets the program reference for terminal management
func (o *MatchLogOps) SetProgram(p *tea.Program) {
	o.program = p
}

// FormatMatchLog renders the match history as pager content
func FormatMatchLog(history []domain.MatchRecord) string {
	if len(history) == 0 {
		return "No matches yet this session.\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Session match log (%d)\n\n", len(history)))
	for i, rec := range history {
		b.WriteString(fmt.Sprintf("%3d  %s  %s\n", i+1, rec.At.Format("15:04:05"), rec.Combo))
	}
	return b.String()
}

// ShowMatchLogInPager shows the match log using the ov pager
func (o *MatchLogOps) ShowMatchLogInPager(history []domain.MatchRecord) error {
	if o.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := o.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	// Create a reader from the log content string
	reader := strings.NewReader(FormatMatchLog(history))

	// Create oviewer root from the reader
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
