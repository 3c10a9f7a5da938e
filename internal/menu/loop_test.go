package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/planner-go/internal/planner"
	"github.com/nibzard/planner-go/internal/render"
)

func runLoop(t *testing.T, mgr *planner.Manager, input string) string {
	t.Helper()
	var out bytes.Buffer
	l := NewLoop(mgr, render.New(render.Options{ColumnWidth: 40}), strings.NewReader(input), &out)
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestLoopAddsCategoryAndTask(t *testing.T) {
	mgr := newManager(t)
	input := strings.Join([]string{
		"1", "Errands",
		"3", " ERRANDS ", "Buy milk", "urgent", "1", "yesterday", "19-10-2026",
		"9",
	}, "\n") + "\n"

	out := runLoop(t, mgr, input)

	if !mgr.HasCategory("errands") {
		t.Fatal("category should be added in lower case")
	}
	snap, _ := mgr.Category("errands")
	if len(snap.Tasks) != 1 || snap.Tasks[0].Description != "Buy milk" {
		t.Fatalf("errands tasks: got %v", snap.Tasks)
	}
	for _, want := range []string{
		`Added category "errands".`,
		`invalid priority "urgent"`,
		`invalid due date "yesterday"`,
		"Please try again.",
		"Added task: Buy milk --- Low --- 19-10-2026",
		"Task Planner options:",
		"CATEGORIES",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "\x1b[2J") {
		t.Error("screen should not be cleared when output is not a terminal")
	}
}

func TestLoopAbandonsOnBadIndex(t *testing.T) {
	mgr := newManager(t)
	if _, err := mgr.AddTask("work", "Buy milk", planner.PriorityLow, testNow, false); err != nil {
		t.Fatal(err)
	}

	out := runLoop(t, mgr, "4\nwork\nfirst\n")

	if mgr.TaskCount() != 1 {
		t.Errorf("task should survive, count = %d", mgr.TaskCount())
	}
	if want := `Error: invalid task number "first": not a number.`; !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

func TestLoopReportsPlannerErrors(t *testing.T) {
	mgr := newManager(t)

	out := runLoop(t, mgr, "4\nwork\n3\n7\nnope\n1\n")

	for _, want := range []string{
		`Error: invalid task index 3 in category "work": task not deleted.`,
		`Error: invalid category "nope": task highlight not changed.`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoopRejectsUnknownOption(t *testing.T) {
	out := runLoop(t, newManager(t), "0\nten\n")
	if n := strings.Count(out, "Error, invalid menu choice. Please try again."); n != 2 {
		t.Errorf("expected 2 invalid choice messages, got %d", n)
	}
}

func TestLoopQuitStopsReading(t *testing.T) {
	mgr := newManager(t)
	runLoop(t, mgr, "9\n1\nerrands\n")
	if mgr.HasCategory("errands") {
		t.Error("input after quit should not be processed")
	}
}

func TestLoopClearsScreen(t *testing.T) {
	var out bytes.Buffer
	l := NewLoop(newManager(t), render.New(render.DefaultOptions()), strings.NewReader("9\n"), &out)
	l.Clear = true
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\x1b[2J") {
		t.Errorf("expected clear screen sequence, got %q", out.String())
	}
}

func TestLoopCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop(newManager(t), nil, pr, io.Discard)

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestLoopLogsOptions(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	l := NewLoop(newManager(t), nil, strings.NewReader("2\nwork\n9\n"), io.Discard)
	l.Logger = logger
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "menu option selected") {
		t.Errorf("expected option log, got %q", logs.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
