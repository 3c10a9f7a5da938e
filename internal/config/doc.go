// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.planner/planner.toml or OS-specific config directory)
// 3. Project config file (planner.toml, .planner.toml, planner.yaml or planner.yml
//    in the current directory)
// 4. Environment variables (PLANNER_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence. The
// merged result is validated against an embedded JSON Schema.
//
// User-level config locations:
// - ~/.planner/planner.toml (preferred)
// - Windows: %APPDATA%\planner\planner.toml
// - macOS: ~/Library/Application Support/planner/planner.toml
// - Linux/BSD: $XDG_CONFIG_HOME/planner/planner.toml or ~/.config/planner/planner.toml
package config
