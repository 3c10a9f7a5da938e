package config

// Table styles.
const (
	StyleClassic = "classic"
	StyleGrid    = "grid"
)

// Front ends.
const (
	UIMenu = "menu"
	UITUI  = "tui"
)

// Default values.
const (
	DefaultPlaceholder      = "N/A"
	DefaultTableStyle       = StyleClassic
	DefaultColumnWidth      = 46
	DefaultHighlightColor   = "9"
	DefaultBaseColor        = "12"
	DefaultDescriptionLimit = 30
	DefaultLogDir           = "~/.planner/logs"
	DefaultLogLevel         = "warn"
	DefaultLogFormat        = "text"
	DefaultUI               = UIMenu
)

// Config holds the full configuration of the planner.
type Config struct {
	// Categories seeded after the built-in personal, family and work.
	Categories []string `toml:"categories" yaml:"categories" json:"categories"`

	// Table
	Placeholder      string `toml:"placeholder" yaml:"placeholder" json:"placeholder"`
	TableStyle       string `toml:"table_style" yaml:"table_style" json:"table_style"`
	ColumnWidth      int    `toml:"column_width" yaml:"column_width" json:"column_width"`
	Color            bool   `toml:"color" yaml:"color" json:"color"`
	HighlightColor   string `toml:"highlight_color" yaml:"highlight_color" json:"highlight_color"`
	BaseColor        string `toml:"base_color" yaml:"base_color" json:"base_color"`
	DescriptionLimit int    `toml:"description_limit" yaml:"description_limit" json:"description_limit"`

	// Front end: menu or tui
	UI string `toml:"ui" yaml:"ui" json:"ui"`

	// Logging
	LogDir        string `toml:"log_dir" yaml:"log_dir" json:"log_dir"`
	LogLevel      string `toml:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat     string `toml:"log_format" yaml:"log_format" json:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps" yaml:"log_timestamps" json:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller" yaml:"log_caller" json:"log_caller"`

	// Path of the project config file that was applied, if any (computed).
	ProjectFile string `toml:"-" yaml:"-" json:"-"`
	// Path of the user config file that was applied, if any (computed).
	UserFile string `toml:"-" yaml:"-" json:"-"`
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Placeholder = DefaultPlaceholder
	cfg.TableStyle = DefaultTableStyle
	cfg.ColumnWidth = DefaultColumnWidth
	cfg.Color = true
	cfg.HighlightColor = DefaultHighlightColor
	cfg.BaseColor = DefaultBaseColor
	cfg.DescriptionLimit = DefaultDescriptionLimit
	cfg.UI = DefaultUI
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// Default returns a config holding only the built-in defaults.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}
