// Package cmd implements the CLI command structure for planner.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/planner-go/internal/config"
	"github.com/nibzard/planner-go/internal/logging"
	"github.com/nibzard/planner-go/internal/menu"
	"github.com/nibzard/planner-go/internal/planner"
	"github.com/nibzard/planner-go/internal/render"
	"github.com/nibzard/planner-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// streams are the standard streams a command talks to.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// Run executes the planner CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func run(ctx context.Context, args []string, std streams) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	fs.SetOutput(std.err)
	fs.Usage = func() {
		printUsage(fs, std.err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, std.out)
		return nil
	}
	if *showVersion {
		return versionCommand(std.out)
	}

	// Determine the subcommand
	// If no args or first arg is a flag, use the configured front end
	subcommand := cfg.UI
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		if !strings.HasPrefix(remainingArgs[0], "-") {
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	// Execute the subcommand
	switch subcommand {
	case config.UIMenu:
		return menuCommand(ctx, cfg, remainingArgs, std)
	case config.UITUI:
		return tuiCommand(ctx, cfg, remainingArgs, std)
	case "config":
		return configCommand(cfg, remainingArgs, std.out)
	case "tail":
		return tailCommand(ctx, cfg, remainingArgs, std.out)
	case "version":
		return versionCommand(std.out)
	case "help":
		printUsage(fs, std.out)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// menuCommand runs the numbered text menu. Logs go to stderr.
func menuCommand(ctx context.Context, cfg *config.Config, args []string, std streams) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	logger := logging.NewFromConfig(std.err, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	mgr := newManager(cfg, logger)

	loop := menu.NewLoop(mgr, newRenderer(cfg, std.out), std.in, std.out)
	loop.Logger = logger
	loop.DescriptionLimit = cfg.DescriptionLimit
	logger.Debug("menu started", "categories", mgr.Categories())
	return loop.Run(ctx)
}

// tuiCommand runs the full-screen interface. Logs go to a per-run JSONL file
// under log_dir so they do not corrupt the screen.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string, std streams) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	if !ui.IsTTY(std.out) {
		return fmt.Errorf("tui requires a TTY")
	}

	logger := logging.Discard()
	if cfg.LogDir != "" {
		runLog, err := logging.NewRunLog(cfg.LogDir)
		if err != nil {
			return fmt.Errorf("creating run log: %w", err)
		}
		defer runLog.Close()
		logger = logging.NewFromConfig(runLog.Writer(), cfg.LogLevel, "json", true, cfg.LogCaller)
		logger.Info("tui started", "run_id", runLog.RunID)
	}

	mgr := newManager(cfg, logger)
	return ui.RunTUI(ctx, mgr, newRenderer(cfg, std.out),
		ui.WithLogger(logger),
		ui.WithDescriptionLimit(cfg.DescriptionLimit),
	)
}

// configCommand prints the example config, the schema, or a summary of the
// loaded configuration.
func configCommand(cfg *config.Config, args []string, w io.Writer) error {
	action := "check"
	if len(args) > 0 {
		action = args[0]
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}

	switch action {
	case "example":
		fmt.Fprint(w, config.ExampleConfig())
		return nil
	case "schema":
		fmt.Fprintln(w, config.Schema)
		return nil
	case "check":
		printConfig(cfg, w)
		return nil
	default:
		return fmt.Errorf("unknown config action: %s (want check, example or schema)", action)
	}
}

func printConfig(cfg *config.Config, w io.Writer) {
	fmt.Fprintln(w, "Configuration OK")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  User file:    %s\n", orNone(cfg.UserFile))
	fmt.Fprintf(w, "  Project file: %s\n", orNone(cfg.ProjectFile))
	fmt.Fprintf(w, "  Categories:   %s\n", strings.Join(append(planner.DefaultCategories(), cfg.Categories...), ", "))
	fmt.Fprintf(w, "  Placeholder:  %s\n", cfg.Placeholder)
	fmt.Fprintf(w, "  Table:        %s, width %d, color %t\n", cfg.TableStyle, cfg.ColumnWidth, cfg.Color)
	fmt.Fprintf(w, "  Front end:    %s\n", cfg.UI)
	fmt.Fprintf(w, "  Logs:         %s (%s, %s)\n", orNone(cfg.LogDir), cfg.LogLevel, cfg.LogFormat)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// tailCommand prints the latest TUI run log.
func tailCommand(ctx context.Context, cfg *config.Config, args []string, w io.Writer) error {
	// Parse tail-specific flags
	fs := flag.NewFlagSet("planner tail", flag.ContinueOnError)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.LogDir == "" {
		return fmt.Errorf("log_dir is not set")
	}

	logPath, err := logging.FindLatestLog(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(w, "No log files found.")
		return nil
	}

	fmt.Fprintf(w, "Tailing: %s\n", logPath)
	if *follow {
		fmt.Fprintln(w, "(Ctrl+C to stop)")
	}
	fmt.Fprintln(w)

	return logging.TailLog(ctx, w, logPath, *follow)
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "planner version %s\n", Version)
	return nil
}

func newManager(cfg *config.Config, logger *log.Logger) *planner.Manager {
	return planner.New(
		planner.WithCategories(cfg.Categories...),
		planner.WithPlaceholder(cfg.Placeholder),
		planner.WithLogger(logger),
	)
}

// newRenderer draws in color only when configured and w is a terminal.
func newRenderer(cfg *config.Config, w io.Writer) *render.Renderer {
	return render.New(render.Options{
		Layout:         cfg.TableStyle,
		ColumnWidth:    cfg.ColumnWidth,
		Color:          cfg.Color && menu.IsTerminal(w),
		BaseColor:      cfg.BaseColor,
		HighlightColor: cfg.HighlightColor,
	})
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Planner - A personal task planner for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  planner [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  menu          Numbered text menu (default)")
	fmt.Fprintln(w, "  tui           Full-screen terminal UI")
	fmt.Fprintln(w, "  config [check|example|schema]")
	fmt.Fprintln(w, "                Show the loaded config, an example file, or the JSON schema")
	fmt.Fprintln(w, "  tail          Print the latest tui run log")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tail Options (use with 'tail' command):")
	fmt.Fprintln(w, "  -f, --follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
}
