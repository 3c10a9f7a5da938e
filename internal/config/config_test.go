package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolate points HOME and XDG_CONFIG_HOME at empty directories and clears
// every PLANNER_* variable so host configuration cannot leak into a test.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "PLANNER_") || name == "NO_COLOR" {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	chdirTemp(t, t.TempDir())
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Placeholder != DefaultPlaceholder {
		t.Errorf("Placeholder: got %q, want %q", cfg.Placeholder, DefaultPlaceholder)
	}
	if cfg.TableStyle != StyleClassic {
		t.Errorf("TableStyle: got %q, want classic", cfg.TableStyle)
	}
	if cfg.ColumnWidth != 46 {
		t.Errorf("ColumnWidth: got %d, want 46", cfg.ColumnWidth)
	}
	if !cfg.Color {
		t.Error("Color: got false, want true")
	}
	if cfg.UI != UIMenu {
		t.Errorf("UI: got %q, want menu", cfg.UI)
	}
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("defaults should validate, got %v", errs)
	}
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PLANNER_CATEGORIES", "errands, Hobby ,")
	t.Setenv("PLANNER_COLUMN_WIDTH", "30")
	t.Setenv("PLANNER_TABLE_STYLE", "grid")
	t.Setenv("PLANNER_LOG_LEVEL", "debug")
	t.Setenv("PLANNER_DESCRIPTION_LIMIT", "not-a-number")
	t.Setenv("NO_COLOR", "1")

	cfg := Default()
	loadFromEnv(cfg)

	if !reflect.DeepEqual(cfg.Categories, []string{"errands", "Hobby"}) {
		t.Errorf("Categories: got %v", cfg.Categories)
	}
	if cfg.ColumnWidth != 30 {
		t.Errorf("ColumnWidth: got %d, want 30", cfg.ColumnWidth)
	}
	if cfg.TableStyle != StyleGrid {
		t.Errorf("TableStyle: got %q, want grid", cfg.TableStyle)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	if cfg.DescriptionLimit != DefaultDescriptionLimit {
		t.Errorf("DescriptionLimit: got %d, want default", cfg.DescriptionLimit)
	}
	if cfg.Color {
		t.Error("NO_COLOR should disable color")
	}
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")
	content := []byte(`categories = ["errands"]
column_width = 20
color = false
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadConfigFile(cfg, path); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if !reflect.DeepEqual(cfg.Categories, []string{"errands"}) {
		t.Errorf("Categories: got %v", cfg.Categories)
	}
	if cfg.ColumnWidth != 20 {
		t.Errorf("ColumnWidth: got %d, want 20", cfg.ColumnWidth)
	}
	if cfg.Color {
		t.Error("Color: got true, want false")
	}
	if cfg.Placeholder != DefaultPlaceholder {
		t.Errorf("absent key should keep default, got %q", cfg.Placeholder)
	}
}

func TestLoadConfigFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")
	if err := os.WriteFile(path, []byte("max_iterations = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	err := loadConfigFile(Default(), path)
	if err == nil || !strings.Contains(err.Error(), "max_iterations") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	content := []byte("placeholder: \"-\"\ntable_style: grid\ncategories:\n  - school\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadConfigFile(cfg, path); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Placeholder != "-" || cfg.TableStyle != StyleGrid {
		t.Errorf("got placeholder %q style %q", cfg.Placeholder, cfg.TableStyle)
	}
	if !reflect.DeepEqual(cfg.Categories, []string{"school"}) {
		t.Errorf("Categories: got %v", cfg.Categories)
	}
	if cfg.ColumnWidth != DefaultColumnWidth {
		t.Errorf("absent key should keep default, got %d", cfg.ColumnWidth)
	}
}

func TestParseFlags(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	args := []string{
		"--style", "grid",
		"--width", "24",
		"--categories", "school,errands",
		"--color=false",
		"--ui", "tui",
		"extra",
	}

	if err := parseFlags(cfg, fs, args); err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.TableStyle != StyleGrid || cfg.ColumnWidth != 24 || cfg.Color || cfg.UI != UITUI {
		t.Errorf("got %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Categories, []string{"school", "errands"}) {
		t.Errorf("Categories: got %v", cfg.Categories)
	}
	if !reflect.DeepEqual(fs.Args(), []string{"extra"}) {
		t.Errorf("remaining args: got %v", fs.Args())
	}
}

func TestLoadPriority(t *testing.T) {
	isolate(t)

	userDir := filepath.Join(os.Getenv("HOME"), ".planner")
	if err := os.MkdirAll(userDir, 0755); err != nil {
		t.Fatal(err)
	}
	userFile := filepath.Join(userDir, "planner.toml")
	if err := os.WriteFile(userFile, []byte("placeholder = \"user\"\ncolumn_width = 10\nlog_level = \"info\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("planner.toml", []byte("column_width = 12\ncategories = [\" School \", \"school\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLANNER_LOG_LEVEL", "ERROR")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"--width", "14"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Placeholder != "user" {
		t.Errorf("Placeholder: got %q, want user (user file)", cfg.Placeholder)
	}
	if cfg.ColumnWidth != 14 {
		t.Errorf("ColumnWidth: got %d, want 14 (flag)", cfg.ColumnWidth)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel: got %q, want error (env, normalized)", cfg.LogLevel)
	}
	if !reflect.DeepEqual(cfg.Categories, []string{"school"}) {
		t.Errorf("Categories: got %v, want [school]", cfg.Categories)
	}
	if cfg.UserFile != userFile || cfg.ProjectFile != "planner.toml" {
		t.Errorf("files: user %q project %q", cfg.UserFile, cfg.ProjectFile)
	}
	if !filepath.IsAbs(cfg.LogDir) {
		t.Errorf("LogDir should be expanded, got %q", cfg.LogDir)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	isolate(t)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	_, err := Load(fs, []string{"--width", "3", "--style", "fancy"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	msg := err.Error()
	for _, want := range []string{"column_width", "table_style"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should mention %s: %v", want, msg)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantPath string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty placeholder", func(c *Config) { c.Placeholder = "" }, "placeholder"},
		{"bad ui", func(c *Config) { c.UI = "web" }, "ui"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"upper-case category", func(c *Config) { c.Categories = []string{"ok", "Work"} }, "categories[1]"},
		{"zero description limit", func(c *Config) { c.DescriptionLimit = 0 }, "description_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := Validate(cfg)
			if tt.wantPath == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatal("expected errors")
			}
			found := false
			for _, err := range errs {
				var ve *ValidationError
				if errors.As(err, &ve) && ve.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no error at %q in %v", tt.wantPath, errs)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	t.Setenv("PLANNER_TEST_DIR", "/tmp/planner")

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~/logs", filepath.Join(home, "logs")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"$PLANNER_TEST_DIR/logs", "/tmp/planner/logs"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.want {
				t.Errorf("expandPath(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBoolFromString(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"off", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := boolFromString(tt.input); got != tt.want {
				t.Errorf("boolFromString(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExampleConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")
	if err := os.WriteFile(path, []byte(ExampleConfig()), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &Config{}
	if err := loadConfigFile(cfg, path); err != nil {
		t.Fatalf("example config does not decode: %v", err)
	}
	if len(cfg.Categories) != 0 {
		t.Errorf("Categories: got %v, want none", cfg.Categories)
	}
	cfg.Categories = nil
	if want := Default(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("example config differs from defaults:\ngot  %+v\nwant %+v", cfg, want)
	}
}

// chdirTemp changes the working directory to dir for the duration of the
// test and restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdirTemp(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
