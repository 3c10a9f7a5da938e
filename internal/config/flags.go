package config

import (
	"flag"
)

// parseFlags defines the config flags on fs and parses args. Flags override
// every other source.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("planner", flag.ContinueOnError)
	}

	var categories string
	fs.StringVar(&categories, "categories", "", "Comma-separated extra categories to create at startup")

	// Table
	fs.StringVar(&cfg.Placeholder, "placeholder", cfg.Placeholder, "Text shown in empty cells")
	fs.StringVar(&cfg.TableStyle, "style", cfg.TableStyle, "Table style (classic|grid)")
	fs.IntVar(&cfg.ColumnWidth, "width", cfg.ColumnWidth, "Maximum column width")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "Draw the table in color")
	fs.IntVar(&cfg.DescriptionLimit, "description-limit", cfg.DescriptionLimit, "Advised maximum description length")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Front end (menu|tui)")

	// Logging
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Directory for run logs (tui mode)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log lines")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log lines")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "categories" {
			cfg.Categories = splitAndTrim(categories, ",")
		}
	})
	return nil
}
