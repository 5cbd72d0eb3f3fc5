package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"konamikey/internal/domain"
	"konamikey/internal/eventbus"
	"konamikey/internal/konami"
)

// Config represents the application configuration
type Config struct {
	Version    int          `toml:"version"`
	Combos     []ComboEntry `toml:"combo"`
	UISettings UISettings   `toml:"ui"`
}

// ComboEntry is one configured key combo. Keys is either a single key
// string or a list of key strings; it is normalized when the entry is
// resolved into a domain.Combo.
type ComboEntry struct {
	Name  string `toml:"name"`
	Keys  any    `toml:"keys"`
	Panel string `toml:"panel"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowProgress   bool `toml:"show_progress"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// ResolveCombos resolves the configured entries into domain combos,
// validating and normalizing each key sequence
func (c *Config) ResolveCombos() ([]domain.Combo, error) {
	combos := make([]domain.Combo, 0, len(c.Combos))
	seen := make(map[string]bool)
	for _, entry := range c.Combos {
		if entry.Name == "" {
			return nil, fmt.Errorf("combo with empty name")
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("duplicate combo %q", entry.Name)
		}
		seen[entry.Name] = true

		keys, err := konami.Keys(entry.Keys)
		if err != nil {
			return nil, fmt.Errorf("combo %q: %w", entry.Name, err)
		}
		combos = append(combos, domain.Combo{
			Name:  entry.Name,
			Keys:  keys,
			Panel: entry.Panel,
		})
	}
	return combos, nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	// Create konamikey config directory
	konamikeyDir := filepath.Join(configDir, "konamikey")
	os.MkdirAll(konamikeyDir, 0755)

	return &configService{
		filePath: filepath.Join(konamikeyDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse config
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Reject combos that could never match
	if _, err := cfg.ResolveCombos(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal config to TOML
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// publishLoaded publishes a ConfigLoaded event if a bus is available
func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus == nil {
		return
	}
	combos, err := cfg.ResolveCombos()
	if err != nil {
		return
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{Combos: combos})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Combos: []ComboEntry{
			{
				Name:  "konami",
				Keys:  konami.Code,
				Panel: "Cheat mode unlocked: 30 lives!",
			},
		},
		UISettings: UISettings{
			ShowProgress:   true,
			AutosaveOnExit: true,
		},
	}
}
