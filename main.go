package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"konamikey/internal/config"
	"konamikey/internal/eventbus"
	"konamikey/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.Parse()

	// If no config specified, use the default location
	if configPath == "" {
		configPath = defaultConfigPath()
	}

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

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath)

	// Subscribe to config changes to save automatically
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			// Update config with the new combos
			cfg.Combos = cfg.Combos[:0]
			for _, combo := range event.Combos {
				cfg.Combos = append(cfg.Combos, config.ComboEntry{
					Name:  combo.Name,
					Keys:  combo.Keys,
					Panel: combo.Panel,
				})
			}
			// Save config
			if err := configSvc.SaveToPath(cfg, configPath); err != nil {
				log.Printf("Failed to save config: %v", err)
				bus.Publish(eventbus.ErrorEvent{Message: "failed to save config", Err: err})
			} else {
				log.Printf("Config saved to %s", configPath)
				bus.Publish(eventbus.ConfigSavedEvent{})
			}
		}
	})

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel, err := ui.NewModel(bus, cfg)
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI model created successfully")

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward out-of-loop events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventConfigSaved, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Quit the UI when the shutdown context fires
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Signal readiness
	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: configExists(configPath)})

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Save on exit so combos defined this session survive
	if cfg.UISettings.AutosaveOnExit {
		if err := configSvc.SaveToPath(cfg, configPath); err != nil {
			log.Printf("Failed to save config on exit: %v", err)
		}
	}

	// Cleanup
	close(eventChan)
	cancel()
}

// defaultConfigPath returns the per-user config file location
func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "konamikey", "config.toml")
}

// configExists reports whether the config file is already on disk
func configExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// loadOrCreateConfig loads config from the path or creates a new one with defaults
func loadOrCreateConfig(configSvc config.ConfigService, configPath string) *config.Config {
	// Check if config exists
	if configExists(configPath) {
		// Config exists, try to load it
		if cfg, err := configSvc.LoadFromPath(configPath); err == nil {
			log.Printf("Loaded config from %s", configPath)
			return cfg
		} else {
			log.Printf("Failed to load config from %s: %v", configPath, err)
		}
	}

	// No config or failed to load - create the default one
	log.Printf("Creating new config at %s", configPath)
	cfg := config.DefaultConfig()

	// Save the config
	if err := configSvc.SaveToPath(cfg, configPath); err != nil {
		log.Printf("Failed to save config: %v", err)
	}

	return cfg
}
