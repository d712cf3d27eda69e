package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Wrap modes accepted by editor.wrap.
const (
	WrapWord  = "word"
	WrapBreak = "break"
	WrapOff   = "off"
)

// Config holds application configuration.
type Config struct {
	Window WindowConfig
	Editor EditorConfig
	Theme  ThemeConfig
	Log    LogConfig
}

// WindowConfig holds main window settings.
type WindowConfig struct {
	Width       float32
	Height      float32
	Undecorated bool
}

type EditorConfig struct {
	Wrap string
}

type ThemeConfig struct {
	Dark bool
}

type LogConfig struct {
	Level string
	JSON  bool
}

// Load reads configuration from file and env. Env var overrides use prefix ZEPHYR_.
// A missing config file is not an error; a malformed one is.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 1600)
	v.SetDefault("window.height", 900)
	v.SetDefault("window.undecorated", false)
	v.SetDefault("editor.wrap", WrapWord)
	v.SetDefault("theme.dark", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetConfigType("toml")

	v.SetEnvPrefix("ZEPHYR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cfgPath := Path(); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Editor.Wrap = strings.ToLower(c.Editor.Wrap)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Path is the TOML file Load reads: ZEPHYR_CONFIG when set, otherwise
// zephyr-lite/config.toml under the user config directory. Only that file is
// read, whatever other config.* files sit next to it.
func Path() string {
	if p := os.Getenv("ZEPHYR_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "zephyr-lite", "config.toml")
}

// Validate rejects settings the editor cannot honour.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %.0fx%.0f: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	}
	switch c.Editor.Wrap {
	case WrapWord, WrapBreak, WrapOff:
	default:
		return fmt.Errorf("editor.wrap %q: %w", c.Editor.Wrap, ErrInvalid)
	}
	return nil
}

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")
