package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"healthgrid/internal/domain"
	"healthgrid/internal/eventbus"
)

// FileName is the per-directory configuration file
const FileName = ".healthgrid.toml"

const defaultAnnounceDelay = time.Second

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version"`
	DataDir    string          `toml:"data_dir"`
	UISettings UISettings      `toml:"ui"`
	Datasets   []DatasetConfig `toml:"datasets"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	PageSize      int      `toml:"page_size"`
	Selectable    bool     `toml:"selectable"`
	Searchable    bool     `toml:"searchable"`
	Mouse         bool     `toml:"mouse"`
	AnnounceDelay Duration `toml:"announce_delay"`
	EmptyMessage  string   `toml:"empty_message"`
}

// DatasetConfig declares one dataset tab
type DatasetConfig struct {
	Name     string `toml:"name"`
	Kind     string `toml:"kind"`
	Path     string `toml:"path"`
	PageSize int    `toml:"page_size,omitempty"`
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

// NewConfigService creates a config service for dir/.healthgrid.toml
func NewConfigService(dir string) ConfigService {
	return &configService{
		filePath: filepath.Join(dir, FileName),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(dir string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(dir).(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration file, returning defaults when it is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
		cfg.DataDir = filepath.Dir(cs.filePath)
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			DataDir:  cfg.DataDir,
			Datasets: len(cfg.Datasets),
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

// LoadFromPath loads configuration from a specific path, on top of the defaults
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	if !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(filepath.Dir(path), cfg.DataDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
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

// Validate checks dataset kinds and page sizes
func (c *Config) Validate() error {
	if c.UISettings.PageSize < 0 {
		return fmt.Errorf("ui.page_size must not be negative")
	}
	for i, ds := range c.Datasets {
		if strings.TrimSpace(ds.Path) == "" {
			return fmt.Errorf("datasets[%d]: path is empty", i)
		}
		if ds.Kind != "" && !domain.DatasetKind(ds.Kind).Valid() {
			return fmt.Errorf("datasets[%d]: unknown kind %q", i, ds.Kind)
		}
		if ds.PageSize < 0 {
			return fmt.Errorf("datasets[%d]: page_size must not be negative", i)
		}
	}
	return nil
}

// ResolveDatasets turns dataset entries into domain datasets with absolute
// paths and effective page sizes
func (c *Config) ResolveDatasets() []domain.Dataset {
	out := make([]domain.Dataset, 0, len(c.Datasets))
	for _, ds := range c.Datasets {
		path := expandPath(ds.Path)
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.DataDir, path)
		}

		name := ds.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		pageSize := ds.PageSize
		if pageSize == 0 {
			pageSize = c.UISettings.PageSize
		}

		out = append(out, domain.Dataset{
			Name:     name,
			Kind:     domain.DatasetKind(ds.Kind),
			Path:     path,
			PageSize: pageSize,
		})
	}
	return out
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			PageSize:      10,
			Selectable:    true,
			Searchable:    true,
			Mouse:         true,
			AnnounceDelay: Duration{Duration: defaultAnnounceDelay},
			EmptyMessage:  "No records",
		},
	}
}

func expandPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return trimmed
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return trimmed
}
