package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"orbitplan/pkg/mission"
	"orbitplan/pkg/spiral"
)

// Config holds the application configuration.
type Config struct {
	Server   ServerConfig         `yaml:"server"`
	Log      LogConfig            `yaml:"log"`
	Planner  spiral.Config        `yaml:"planner"`
	Defaults mission.FlightParams `yaml:"defaults"`
	Export   ExportConfig         `yaml:"export"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address      string   `yaml:"address"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Server LogSettings `yaml:"server"`
}

// LogSettings holds settings for a specific logger.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// ExportConfig holds exporter settings: where files land and where the
// mission-local frame is anchored on the globe.
type ExportConfig struct {
	OutputDir string       `yaml:"output_dir"`
	Origin    OriginConfig `yaml:"origin"`
}

// OriginConfig is the mission center coordinate.
type OriginConfig struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:      "localhost:2040",
			ReadTimeout:  Duration(15 * time.Second),
			WriteTimeout: Duration(15 * time.Second),
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/server.log",
				Level: "INFO",
			},
		},
		Planner: spiral.DefaultConfig(),
		Defaults: mission.FlightParams{
			Slices:                 2,
			BatteryDurationMinutes: 10,
			MinHeight:              120,
		},
		Export: ExportConfig{
			OutputDir: "./out",
			Origin: OriginConfig{
				Lat: 47.6205,
				Lon: -122.3493,
			},
		},
	}
}

// Load loads the configuration from the given path. Missing file means the
// defaults are written there; an existing file is merged over the defaults
// and never rewritten, to preserve user formatting and comments.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		return cfg, nil
	}

	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# OrbitPlan Configuration
# ----------------------
# planner: spiral geometry tuning. Radii and rates are in feet.
# defaults: FlightParams used when a request omits them.
# export.origin: WGS84 coordinate of the mission subject.

`)
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return Save(path, DefaultConfig())
}
