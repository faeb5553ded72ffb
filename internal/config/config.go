package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"focuskit/internal/eventbus"
)

const defaultUnitsPerCell = 8

// Button commands understood by the demo app
const (
	CommandReload = "reload"
	CommandUnlock = "unlock"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Buttons    []ButtonConfig `toml:"buttons"`
	Menu       MenuConfig     `toml:"menu"`
	UISettings UISettings     `toml:"ui"`
}

// ButtonConfig describes one toolbar icon button
type ButtonConfig struct {
	Icon     string `toml:"icon"`
	Label    string `toml:"label"`
	Tooltip  string `toml:"tooltip,omitempty"`
	Disabled bool   `toml:"disabled,omitempty"`
	TabIndex *int   `toml:"tabindex,omitempty"`
	Command  string `toml:"command,omitempty"` // "reload", "unlock" or empty
}

// MenuConfig describes the menu and its items
type MenuConfig struct {
	Desktop                  bool         `toml:"desktop"`
	InitiallyKeyboardFocused bool         `toml:"initially_keyboard_focused"`
	MaxHeight                int          `toml:"max_height"`
	Items                    []ItemConfig `toml:"items"`
}

// ItemConfig describes one menu entry
type ItemConfig struct {
	Label     string `toml:"label,omitempty"`
	Disabled  bool   `toml:"disabled,omitempty"`
	Separator bool   `toml:"separator,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	UnitsPerCell float64 `toml:"units_per_cell"`
	HideHelp     bool    `toml:"hide_help"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "focuskit", "config.toml")
}

// NewConfigService creates a config service backed by path.
// An empty path selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// applyDefaults fills in zero values that have a non-zero default
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.UISettings.UnitsPerCell == 0 {
		c.UISettings.UnitsPerCell = defaultUnitsPerCell
	}
}

// Validate checks values the widgets cannot absorb on their own
func (c *Config) Validate() error {
	if c.Menu.MaxHeight < 0 {
		return fmt.Errorf("menu.max_height must not be negative, got %d", c.Menu.MaxHeight)
	}
	if c.UISettings.UnitsPerCell < 0 {
		return fmt.Errorf("ui.units_per_cell must not be negative, got %g", c.UISettings.UnitsPerCell)
	}
	for i, b := range c.Buttons {
		if b.TabIndex != nil && *b.TabIndex < 0 {
			return fmt.Errorf("buttons[%d].tabindex must not be negative, got %d", i, *b.TabIndex)
		}
		switch b.Command {
		case "", CommandReload, CommandUnlock:
		default:
			return fmt.Errorf("buttons[%d].command %q is not supported", i, b.Command)
		}
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Buttons: []ButtonConfig{
			{Icon: "↻", Label: "Reload", Tooltip: "Reload menu items from the config file", Command: CommandReload},
			{Icon: "★", Label: "Unlock", Tooltip: "Toggle disabled menu items", Command: CommandUnlock},
			{Icon: "✕", Label: "Delete", Disabled: true},
		},
		Menu: MenuConfig{
			MaxHeight: 6,
			Items: []ItemConfig{
				{Label: "New file"},
				{Label: "Open…"},
				{Label: "Open recent", Disabled: true},
				{Separator: true},
				{Label: "Save"},
				{Label: "Save as…"},
				{Separator: true},
				{Label: "Print", Disabled: true},
				{Label: "Close"},
			},
		},
		UISettings: UISettings{
			UnitsPerCell: defaultUnitsPerCell,
		},
	}
}
