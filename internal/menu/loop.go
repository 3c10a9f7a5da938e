package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/nibzard/planner-go/internal/planner"
	"github.com/nibzard/planner-go/internal/render"
)

// Loop is the line-based menu front end. It redraws the table, shows the
// options, reads a choice and the option's fields, and repeats until Quit or
// end of input.
type Loop struct {
	Manager  *planner.Manager
	Renderer *render.Renderer
	In       io.Reader
	Out      io.Writer
	Logger   *log.Logger

	// DescriptionLimit is the advised description length. Zero means
	// planner.DescriptionSoftLimit.
	DescriptionLimit int

	// Clear clears the screen before each redraw.
	Clear bool
}

// NewLoop returns a Loop over in and out. Screen clearing is enabled when out
// is a terminal.
func NewLoop(mgr *planner.Manager, r *render.Renderer, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		Manager:  mgr,
		Renderer: r,
		In:       in,
		Out:      out,
		Clear:    IsTerminal(out),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// abandonedError marks an option given unusable input.
type abandonedError struct {
	err error
}

func (e *abandonedError) Error() string {
	return "option abandoned: " + e.err.Error()
}

// Run runs the loop. It returns nil on Quit or end of input, and ctx.Err()
// if ctx is cancelled while waiting for input.
func (l *Loop) Run(ctx context.Context) error {
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	limit := l.DescriptionLimit
	if limit <= 0 {
		limit = planner.DescriptionSoftLimit
	}
	renderer := l.Renderer
	if renderer == nil {
		renderer = render.New(render.DefaultOptions())
	}

	lines := scanLines(l.In)
	read := func(prompt string) (string, error) {
		fmt.Fprintf(l.Out, "%s:\n>> ", prompt)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return "", io.EOF
			}
			return line, nil
		}
	}

	status := ""
	for {
		l.redraw(renderer, status)

		choice, err := read("Enter an option")
		if err != nil {
			return endOfInput(err)
		}
		opt, err := ParseOption(choice)
		if err != nil {
			status = "Error, invalid menu choice. Please try again."
			continue
		}
		if opt == OptionQuit {
			logger.Debug("menu quit")
			return nil
		}
		logger.Debug("menu option selected", "option", opt.String())

		answers, err := l.collect(opt, limit, read)
		var abandoned *abandonedError
		switch {
		case errors.As(err, &abandoned):
			status = fmt.Sprintf("Error: %v.", abandoned.err)
			logger.Info("menu option abandoned", "option", opt.String(), "err", abandoned.err)
			continue
		case err != nil:
			return endOfInput(err)
		}

		msg, err := ExecuteWithLimit(l.Manager, opt, answers, limit)
		if err != nil {
			status = fmt.Sprintf("Error: %v.", err)
			continue
		}
		status = msg
	}
}

// collect reads every field of opt. Retryable fields are asked again until
// they parse; any other parse failure abandons the option.
func (l *Loop) collect(opt Option, limit int, read func(string) (string, error)) (Answers, error) {
	var a Answers
	for _, f := range opt.Fields() {
		prompt := f.Label()
		if f == FieldDescription {
			prompt = fmt.Sprintf("%s (max. %d symbols)", prompt, limit)
		}
		for {
			raw, err := read(prompt)
			if err != nil {
				return a, err
			}
			err = a.Set(f, raw)
			if err == nil {
				break
			}
			if !f.Retry() {
				return a, &abandonedError{err: err}
			}
			fmt.Fprintf(l.Out, "%v. Please try again.\n", err)
		}
	}
	return a, nil
}

func (l *Loop) redraw(r *render.Renderer, status string) {
	if l.Clear {
		termenv.NewOutput(l.Out).ClearScreen()
	}
	io.WriteString(l.Out, r.Render(l.Manager.Render()))
	if status != "" {
		fmt.Fprintf(l.Out, "\n%s\n", status)
	}
	fmt.Fprintf(l.Out, "\n%s", Text())
}

// scanLines feeds lines from r into a channel closed at end of input, so a
// blocked read does not hold up cancellation.
func scanLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()
	return lines
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
