package config

import (
	"os"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from PLANNER_* environment variables.
// Malformed numbers are ignored. NO_COLOR disables color.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("PLANNER_CATEGORIES"); v != "" {
		cfg.Categories = splitAndTrim(v, ",")
	}
	if v := os.Getenv("PLANNER_PLACEHOLDER"); v != "" {
		cfg.Placeholder = v
	}
	if v := os.Getenv("PLANNER_TABLE_STYLE"); v != "" {
		cfg.TableStyle = v
	}
	if v := os.Getenv("PLANNER_COLUMN_WIDTH"); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.ColumnWidth = i
		}
	}
	if v := os.Getenv("PLANNER_COLOR"); v != "" {
		cfg.Color = boolFromString(v)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Color = false
	}
	if v := os.Getenv("PLANNER_HIGHLIGHT_COLOR"); v != "" {
		cfg.HighlightColor = v
	}
	if v := os.Getenv("PLANNER_BASE_COLOR"); v != "" {
		cfg.BaseColor = v
	}
	if v := os.Getenv("PLANNER_DESCRIPTION_LIMIT"); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.DescriptionLimit = i
		}
	}
	if v := os.Getenv("PLANNER_UI"); v != "" {
		cfg.UI = v
	}

	// Logging configuration
	if v := os.Getenv("PLANNER_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("PLANNER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PLANNER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("PLANNER_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv("PLANNER_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
	}
}

func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// splitAndTrim splits a string by sep and trims whitespace from each part.
// Empty parts are omitted from the result.
func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
