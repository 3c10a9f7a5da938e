package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Planner configuration file
# Values can be overridden by PLANNER_* environment variables or CLI flags

# Extra categories created at startup (personal, family and work always exist)
categories = []

# Text shown where a category has no task in a row
placeholder = "N/A"

# Table style: classic (fixed-width columns) or grid (bordered)
table_style = "classic"

# Maximum column width; longer cells are truncated
column_width = 46

# Colors (ANSI 256 codes or #hex); set color = false for plain output
color = true
base_color = "12"
highlight_color = "9"

# Advised maximum description length (longer descriptions are accepted)
description_limit = 30

# Front end: menu (numbered prompts) or tui (full screen)
ui = "menu"

# Logging (tui mode writes JSON lines under log_dir; empty disables)
log_dir = "~/.planner/logs"
log_level = "warn"
log_format = "text"
log_timestamps = false
log_caller = false
`
}
