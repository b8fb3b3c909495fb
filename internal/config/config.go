package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"growth-rate-calculator/internal/logger"
)

const (
	AppDirName  = "growth-rate"
	FileName    = "config.toml"
	PathEnvName = "GROWTH_RATE_CONFIG"
)

// Duration decodes TOML strings such as "30s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type Config struct {
	LogLevel string         `toml:"log_level"`
	LogFile  string         `toml:"log_file"`
	Window   WindowConfig   `toml:"window"`
	Cache    CacheConfig    `toml:"cache"`
	Monitor  MonitorConfig  `toml:"monitor"`
	Shutdown ShutdownConfig `toml:"shutdown"`
}

type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Fixed  bool    `toml:"fixed"`
}

type CacheConfig struct {
	Size int `toml:"size"`
}

type MonitorConfig struct {
	Interval Duration `toml:"interval"`
}

// ShutdownConfig bounds each step of the shutdown sequence
type ShutdownConfig struct {
	StepTimeout Duration `toml:"step_timeout"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:  300,
			Height: 300,
			Fixed:  true,
		},
		Cache: CacheConfig{
			Size: 128,
		},
		Monitor: MonitorConfig{
			Interval: Duration{30 * time.Second},
		},
		Shutdown: ShutdownConfig{
			StepTimeout: Duration{5 * time.Second},
		},
	}
}

// Path returns the config file location: $GROWTH_RATE_CONFIG when set,
// otherwise growth-rate/config.toml under the user config directory.
func Path() (string, error) {
	if path := os.Getenv(PathEnvName); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, FileName), nil
}

// Load reads the config file at path over the defaults. A missing file is
// not an error. Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		default:
			if undecoded := meta.Undecoded(); len(undecoded) > 0 {
				return Config{}, fmt.Errorf("decode %s: unknown key %q", path, undecoded[0].String())
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	} else if os.Getenv("DEBUG") == "1" {
		c.LogLevel = "debug"
	}
}

// Validate checks value ranges
func (c Config) Validate() error {
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if c.Cache.Size <= 0 {
		return fmt.Errorf("invalid cache size %d", c.Cache.Size)
	}
	if c.Monitor.Interval.Duration <= 0 {
		return fmt.Errorf("invalid monitor interval %s", c.Monitor.Interval)
	}
	if c.Shutdown.StepTimeout.Duration <= 0 {
		return fmt.Errorf("invalid shutdown step_timeout %s", c.Shutdown.StepTimeout)
	}
	return nil
}

// Level returns the parsed log level
func (c Config) Level() logger.LogLevel {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}
