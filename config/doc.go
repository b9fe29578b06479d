// Package config loads linguista settings.
//
// Settings are resolved in three layers, later layers winning:
//
//   - built-in defaults (Default)
//   - a TOML file, by default $XDG_CONFIG_HOME/linguista/config.toml
//   - LINGUISTA_* environment variables
//
// Command-line flags are applied on top by the CLI.
//
// Example file:
//
//	[log]
//	level = "debug"
//
//	[format]
//	unit = "utf16"
//
//	[[format.rules]]
//	name = "highlight"
//	kind = "wrap"
//	prefix = "=="
//
//	[[format.rules]]
//	name = "task"
//	kind = "line"
//	marker = "- [ ] "
//
//	[editor]
//	line_numbers = true
//	history_limit = 200
//	tab_width = 4
package config
