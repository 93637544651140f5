package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/dshills/vimfocus/internal/focus"
	"github.com/dshills/vimfocus/internal/input/key"
	"github.com/dshills/vimfocus/internal/input/keymap"
	"github.com/dshills/vimfocus/internal/input/mode"
)

// LevelOff disables logging.
const LevelOff = "off"

// Config is the complete vimfocus configuration.
type Config struct {
	Log        LogConfig        `toml:"log" yaml:"log"`
	Navigation NavigationConfig `toml:"navigation" yaml:"navigation"`
	Keymap     keymap.Overrides `toml:"keymap,omitempty" yaml:"keymap,omitempty"`
	Plugin     PluginConfig     `toml:"plugin" yaml:"plugin"`
}

// LogConfig configures the logger.
type LogConfig struct {
	// Level is a zap level name or "off".
	Level string `toml:"level" yaml:"level"`
}

// NavigationConfig configures the resolver and dispatcher.
type NavigationConfig struct {
	// MaxChainSteps bounds vertical chain searches.
	MaxChainSteps int `toml:"max_chain_steps" yaml:"max_chain_steps"`
	// CancelKey clears a pending count and leaves insert mode.
	CancelKey string `toml:"cancel_key" yaml:"cancel_key"`
}

// PluginConfig locates the Lua init script.
type PluginConfig struct {
	Script string `toml:"script,omitempty" yaml:"script,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Navigation: NavigationConfig{
			MaxChainSteps: focus.DefaultMaxChainSteps,
			CancelKey:     "Escape",
		},
	}
}

// Validate checks every setting and returns all failures joined.
// Each failure wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error

	if c.Log.Level != LevelOff {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, invalid("log.level", "unknown level %q", c.Log.Level))
		}
	}

	if c.Navigation.MaxChainSteps <= 0 {
		errs = append(errs, invalid("navigation.max_chain_steps", "must be positive, got %d", c.Navigation.MaxChainSteps))
	}
	if _, err := key.NormalizeCombo(c.Navigation.CancelKey); err != nil {
		errs = append(errs, invalid("navigation.cancel_key", "%v", err))
	}

	for name, entries := range c.Keymap {
		if _, err := mode.Parse(name); err != nil {
			errs = append(errs, invalid("keymap."+name, "%v", err))
			continue
		}
		for combo, action := range entries {
			if _, err := key.NormalizeCombo(combo); err != nil {
				errs = append(errs, invalid(fmt.Sprintf("keymap.%s %q", name, combo), "%v", err))
			}
			if strings.TrimSpace(action) == "" {
				errs = append(errs, invalid(fmt.Sprintf("keymap.%s %q", name, combo), "empty action"))
			}
		}
	}

	return errors.Join(errs...)
}

// ScriptPath returns the plugin script path with a leading "~/" expanded.
// It returns "" when no script is configured.
func (c *Config) ScriptPath() string {
	p := c.Plugin.Script
	if p == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return p
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	if c.Keymap != nil {
		out.Keymap = make(keymap.Overrides, len(c.Keymap))
		for m, entries := range c.Keymap {
			cp := make(map[string]string, len(entries))
			for combo, action := range entries {
				cp[combo] = action
			}
			out.Keymap[m] = cp
		}
	}
	return &out
}

// Encode writes c to w in the given format.
func (c *Config) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(c)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
