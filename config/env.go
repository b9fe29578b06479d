package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "LINGUISTA_"

// envSetters maps each supported variable to the field it overrides.
var envSetters = map[string]func(*Config, string) error{
	EnvPrefix + "LOG_LEVEL": func(c *Config, v string) error {
		c.Log.Level = v
		return nil
	},
	EnvPrefix + "LOG_FILE": func(c *Config, v string) error {
		c.Log.File = v
		return nil
	},
	EnvPrefix + "UNIT": func(c *Config, v string) error {
		c.Format.Unit = v
		return nil
	},
	EnvPrefix + "LINE_NUMBERS": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Editor.LineNumbers = b
		return nil
	},
	EnvPrefix + "HISTORY_LIMIT": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Editor.HistoryLimit = n
		return nil
	},
	EnvPrefix + "TAB_WIDTH": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Editor.TabWidth = n
		return nil
	},
}

// EnvVars lists the supported environment variables.
func EnvVars() []string {
	return []string{
		EnvPrefix + "LOG_LEVEL",
		EnvPrefix + "LOG_FILE",
		EnvPrefix + "UNIT",
		EnvPrefix + "LINE_NUMBERS",
		EnvPrefix + "HISTORY_LIMIT",
		EnvPrefix + "TAB_WIDTH",
	}
}

// ApplyEnv overrides settings from lookup, normally os.LookupEnv. Empty
// values count as set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for _, name := range EnvVars() {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := envSetters[name](c, v); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, name, v, err)
		}
	}
	return nil
}
