package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"konamikey/internal/config"
	"konamikey/internal/eventbus"
	"konamikey/internal/ui"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("konamikey.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration from the default location
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	// Create UI model
	uiModel, err := ui.NewModel(bus, cfg)
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Persist combo changes as they happen
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.Combos = cfg.Combos[:0]
			for _, combo := range event.Combos {
				cfg.Combos = append(cfg.Combos, config.ComboEntry{
					Name:  combo.Name,
					Keys:  combo.Keys,
					Panel: combo.Panel,
				})
			}
			if err := configSvc.Save(cfg); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
		}
	})

	// Quit the UI when the shutdown context fires
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
