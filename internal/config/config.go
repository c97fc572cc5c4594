package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/andyrewlee/dragscroll/internal/autoscroll"
	"github.com/andyrewlee/dragscroll/internal/logging"
)

// Config holds the application configuration
type Config struct {
	Paths      *Paths
	LogLevel   logging.Level
	AutoScroll autoscroll.Config
	KeyMap     KeyMapConfig
	UI         UISettings
}

// autoScrollFile mirrors the "autoscroll" section. Pointers let absent keys
// keep their defaults.
type autoScrollFile struct {
	StartFromPercentage  *float64 `json:"start_from_percentage"`
	MaxSpeedAtPercentage *float64 `json:"max_speed_at_percentage"`
	MaxSpeed             *float64 `json:"max_speed"`
	AccelerateAtMs       *int     `json:"accelerate_at_ms"`
	StopDampeningAtMs    *int     `json:"stop_dampening_at_ms"`
	TickIntervalMs       *int     `json:"tick_interval_ms"`
	WindowScroll         *bool    `json:"window_scroll"`
}

type configFile struct {
	LogLevel   *string         `json:"log_level"`
	AutoScroll *autoScrollFile `json:"autoscroll"`
	KeyMap     *KeyMapConfig   `json:"keymap"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return defaultsAt(paths), nil
}

func defaultsAt(paths *Paths) *Config {
	return &Config{
		Paths:      paths,
		LogLevel:   logging.LevelInfo,
		AutoScroll: autoscroll.DefaultConfig(),
		UI:         defaultUISettings(),
	}
}

// Load loads config overrides from ~/.dragscroll/config.json if present.
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths)
}

// LoadFrom reads overrides from paths.ConfigPath. A missing file yields the
// defaults; a malformed or out-of-range file is an error.
func LoadFrom(paths *Paths) (*Config, error) {
	cfg := defaultsAt(paths)

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var raw configFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", paths.ConfigPath, err)
	}

	if raw.LogLevel != nil {
		level, err := logging.ParseLevel(*raw.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", paths.ConfigPath, err)
		}
		cfg.LogLevel = level
	}
	if raw.AutoScroll != nil {
		raw.AutoScroll.apply(&cfg.AutoScroll)
	}
	if err := cfg.AutoScroll.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", paths.ConfigPath, err)
	}
	if raw.KeyMap != nil {
		cfg.KeyMap = *raw.KeyMap
	}
	cfg.UI = loadUISettings(paths.ConfigPath)

	return cfg, nil
}

func (f *autoScrollFile) apply(c *autoscroll.Config) {
	if f.StartFromPercentage != nil {
		c.StartFromPercentage = *f.StartFromPercentage
	}
	if f.MaxSpeedAtPercentage != nil {
		c.MaxSpeedAtPercentage = *f.MaxSpeedAtPercentage
	}
	if f.MaxSpeed != nil {
		c.MaxSpeed = *f.MaxSpeed
	}
	if f.AccelerateAtMs != nil {
		c.AccelerateAt = time.Duration(*f.AccelerateAtMs) * time.Millisecond
	}
	if f.StopDampeningAtMs != nil {
		c.StopDampeningAt = time.Duration(*f.StopDampeningAtMs) * time.Millisecond
	}
	if f.TickIntervalMs != nil {
		c.TickInterval = time.Duration(*f.TickIntervalMs) * time.Millisecond
	}
	if f.WindowScroll != nil {
		c.WindowScrollAllowed = *f.WindowScroll
	}
}
