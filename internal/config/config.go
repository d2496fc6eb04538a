package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"

	"multipick/internal/eventbus"
	"multipick/internal/multiselect"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.toml"

var (
	// ErrEmptyValue reports an option without a value.
	ErrEmptyValue = errors.New("option has an empty value")
	// ErrDuplicateValue reports two options sharing a value.
	ErrDuplicateValue = errors.New("duplicate option value")
	// ErrInvalidLogLevel reports a ui.log_level zap does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config represents the application configuration
type Config struct {
	Version     int                  `toml:"version"`
	Label       string               `toml:"label"`
	Placeholder string               `toml:"placeholder"`
	Class       string               `toml:"class,omitempty"`
	Options     []multiselect.Option `toml:"options"`
	UISettings  UISettings           `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse    bool   `toml:"mouse"`
	Width    int    `toml:"width,omitempty"` // 0 follows the terminal
	LogLevel string `toml:"log_level,omitempty"` // empty keeps info; --debug wins
}

// ConfigService handles configuration management
type ConfigService interface {
	Path() string
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

// DefaultPath returns <user config dir>/multipick/config.toml
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
	return filepath.Join(configDir, "multipick", FileName)
}

// NewConfigService creates a config service for path, or DefaultPath when empty
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

// Path returns the file this service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to the defaults when
// the file does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:        cs.filePath,
			OptionCount: len(cfg.Options),
		})
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

// LoadFromPath loads and validates configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := Validate(config); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	// Ensure config directory exists
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

// Parse decodes TOML config data. Unknown keys are rejected so that typos do
// not silently fall back to defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("failed to parse config: %s", strict.String())
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the option catalog and the log level. The selection
// control assumes values are unique and non-empty but never checks it, so the
// host does.
func Validate(cfg *Config) error {
	var errs []error
	if lvl := cfg.UISettings.LogLevel; lvl != "" {
		if _, err := zapcore.ParseLevel(lvl); err != nil {
			errs = append(errs, fmt.Errorf("ui.log_level %q: %w", lvl, ErrInvalidLogLevel))
		}
	}
	seen := make(map[string]int, len(cfg.Options))
	for i, o := range cfg.Options {
		if o.Value == "" {
			errs = append(errs, fmt.Errorf("option %d (%q): %w", i, o.Label, ErrEmptyValue))
			continue
		}
		if first, ok := seen[o.Value]; ok {
			errs = append(errs, fmt.Errorf("options %d and %d share %q: %w", first, i, o.Value, ErrDuplicateValue))
			continue
		}
		seen[o.Value] = i
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Label:       "Languages",
		Placeholder: "Search languages",
		Options:     DefaultOptions(),
		UISettings: UISettings{
			Mouse: true,
		},
	}
}

// DefaultOptions is the catalog used when no config file exists
func DefaultOptions() []multiselect.Option {
	return []multiselect.Option{
		{Label: "JavaScript", Value: "javascript"},
		{Label: "TypeScript", Value: "typescript"},
		{Label: "Python", Value: "python"},
		{Label: "Java", Value: "java"},
		{Label: "C", Value: "c"},
		{Label: "C++", Value: "cpp"},
		{Label: "C#", Value: "csharp"},
		{Label: "Go", Value: "go"},
		{Label: "Rust", Value: "rust"},
		{Label: "PHP", Value: "php"},
		{Label: "Ruby", Value: "ruby"},
		{Label: "Kotlin", Value: "kotlin"},
		{Label: "Swift", Value: "swift"},
		{Label: "Dart", Value: "dart"},
		{Label: "Scala", Value: "scala"},
		{Label: "R", Value: "r"},
		{Label: "SQL", Value: "sql"},
		{Label: "Bash", Value: "bash"},
	}
}
