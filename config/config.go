package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/linguista/linguista/format"
)

// Config is the resolved settings tree.
type Config struct {
	Log    Log    `toml:"log"`
	Format Format `toml:"format"`
	Editor Editor `toml:"editor"`
}

type Log struct {
	Level string `toml:"level"`
	// File receives log output while the composer runs. Relative paths,
	// including the default linguista.log, sit next to the draft.
	File string `toml:"file"`
}

type Format struct {
	Unit  string `toml:"unit"`
	Rules []Rule `toml:"rules"`
}

// Rule declares a custom formatting rule. Kind is "wrap" or "line".
type Rule struct {
	Name     string `toml:"name"`
	Kind     string `toml:"kind"`
	Prefix   string `toml:"prefix"`
	Suffix   string `toml:"suffix"`
	Marker   string `toml:"marker"`
	Numbered bool   `toml:"numbered"`
}

type Editor struct {
	LineNumbers  bool `toml:"line_numbers"`
	HistoryLimit int  `toml:"history_limit"`
	TabWidth     int  `toml:"tab_width"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Format: Format{Unit: format.UnitRune.String()},
		Editor: Editor{LineNumbers: true, HistoryLimit: 500, TabWidth: 4},
	}
}

// DefaultPath is the config file used when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "linguista", "config.toml")
}

// Load resolves defaults, the file at path and the environment. An empty
// path means DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := cfg.decode(path, data); err != nil {
				return Config{}, err
			}
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults without consulting the
// environment.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.decode(source, data); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		var se *toml.StrictMissingError
		if errors.As(err, &se) && len(se.Errors) > 0 {
			pe.Line, pe.Column = se.Errors[0].Position()
			pe.Message = "unknown key " + strings.Join(se.Errors[0].Key(), ".")
		}
		return pe
	}
	return nil
}

// Validate checks every scalar setting and every custom rule.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := format.ParseUnit(c.Format.Unit); err != nil {
		return fmt.Errorf("%w: format.unit: %v", ErrInvalidValue, err)
	}
	if c.Editor.TabWidth < 1 {
		return fmt.Errorf("%w: editor.tab_width must be positive, got %d", ErrInvalidValue, c.Editor.TabWidth)
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
	}
	return lvl, nil
}

// LogFile returns the file the TUI logs to.
func (c Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return "linguista.log"
}

// Registry builds the built-in rules plus the custom ones, in file order.
func (c Config) Registry() (*format.Registry, error) {
	reg := format.DefaultRegistry()
	for i, rc := range c.Format.Rules {
		r, err := rc.build()
		if err != nil {
			return nil, fmt.Errorf("format.rules[%d]: %w", i, err)
		}
		if err := reg.Register(r); err != nil {
			return nil, fmt.Errorf("format.rules[%d]: %w", i, err)
		}
	}
	return reg, nil
}

// Engine builds a formatting engine from the format section.
func (c Config) Engine() (*format.Engine, error) {
	unit, err := format.ParseUnit(c.Format.Unit)
	if err != nil {
		return nil, fmt.Errorf("%w: format.unit: %v", ErrInvalidValue, err)
	}
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}
	return format.NewEngine(format.WithUnit(unit), format.WithRegistry(reg)), nil
}

func (rc Rule) build() (format.Rule, error) {
	switch strings.ToLower(rc.Kind) {
	case "wrap":
		if rc.Marker != "" || rc.Numbered {
			return nil, fmt.Errorf("%w: wrap rule %q takes prefix/suffix only", ErrInvalidRule, rc.Name)
		}
		return format.Wrap(rc.Name, rc.Prefix, rc.Suffix), nil
	case "line":
		if rc.Prefix != "" || rc.Suffix != "" {
			return nil, fmt.Errorf("%w: line rule %q takes marker or numbered only", ErrInvalidRule, rc.Name)
		}
		if rc.Numbered {
			return format.Numbered(rc.Name), nil
		}
		return format.Line(rc.Name, rc.Marker), nil
	default:
		return nil, fmt.Errorf("%w: rule %q has kind %q, want wrap or line", ErrInvalidRule, rc.Name, rc.Kind)
	}
}
