package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/core"
)

const (
	EnvConfig   = "BUMPSLIDER_CONFIG"
	EnvTheme    = "BUMPSLIDER_THEME"
	EnvLogLevel = "BUMPSLIDER_LOG_LEVEL"

	DefaultPath = "bumpslider.toml"
)

// Config is the sandbox configuration file.
type Config struct {
	Title         string  `toml:"title"`
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	VSync         bool    `toml:"vsync"`
	DragThreshold float32 `toml:"drag_threshold"`
	// Theme is a built-in theme name or the path of a TOML theme file.
	Theme      string `toml:"theme"`
	Font       string `toml:"font"`
	ShaderDir  string `toml:"shader_dir"`
	LiveUpdate bool   `toml:"live_update"`
	// StateApp names the per-user data directory slider state is kept in.
	// Empty disables persistence.
	StateApp string `toml:"state_app"`
	LogLevel string `toml:"log_level"`
	LogJSON  bool   `toml:"log_json"`
}

func Default() Config {
	return Config{
		Title:         "bumpslider sandbox",
		Width:         900,
		Height:        560,
		VSync:         true,
		DragThreshold: core.DefaultDragThreshold,
		Theme:         "default",
		StateApp:      "bumpslider",
		LogLevel:      "info",
	}
}

// Parse decodes a config document over the defaults. Unknown keys are an
// error so typos do not go unnoticed.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("config: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads .env style files into the environment; missing files are
// skipped. Variables already set win over the files.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load env %s: %w", f, err)
		}
	}
	return nil
}

// Resolve picks the config path (explicit path, then BUMPSLIDER_CONFIG, then
// DefaultPath), loads it and applies the environment overrides.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultPath
	}
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// CoreConfig is the window part of c.
func (c Config) CoreConfig() core.Config {
	return core.Config{
		Title:         c.Title,
		Width:         c.Width,
		Height:        c.Height,
		VSync:         c.VSync,
		DragThreshold: c.DragThreshold,
	}
}

// ConfigureLogging applies the log level and format to the standard logrus
// logger.
func (c Config) ConfigureLogging() error {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	logrus.SetLevel(lvl)
	if c.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// IsThemeFile reports whether the theme setting names a file rather than a
// built-in theme.
func (c Config) IsThemeFile() bool {
	if _, ok := colors.Builtin(c.Theme); ok {
		return false
	}
	return c.Theme != ""
}

// LoadTheme returns the configured theme. Paths are taken relative to
// baseDir unless absolute.
func (c Config) LoadTheme(baseDir string) (*colors.Theme, error) {
	if c.Theme == "" {
		return colors.DefaultTheme(), nil
	}
	if t, ok := colors.Builtin(c.Theme); ok {
		return t, nil
	}
	return colors.LoadTheme(c.ThemePath(baseDir))
}

func (c Config) ThemePath(baseDir string) string {
	if filepath.IsAbs(c.Theme) || baseDir == "" {
		return c.Theme
	}
	return filepath.Join(baseDir, c.Theme)
}

// Encode writes c as TOML.
func (c Config) Encode() ([]byte, error) { return toml.Marshal(c) }
