package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrDueDateInPast is returned when a task is created with a due date
	// before the current day.
	ErrDueDateInPast = errors.New("due date cannot be in the past")

	// ErrInvalidIndex is returned when a task index is out of range.
	ErrInvalidIndex = errors.New("invalid task index")

	// ErrUnknownCategory is returned when a category name does not exist.
	ErrUnknownCategory = errors.New("invalid category")

	// ErrInvalidPriority is returned when a priority outside Low..High is given.
	ErrInvalidPriority = errors.New("invalid priority")
)

// ValidationError reports a task field that failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ReferenceError reports an index or category that did not resolve. The
// operation that returned it made no change.
type ReferenceError struct {
	Op       Op
	Category string
	// Index is the task index as supplied by the caller. It is meaningless
	// when Err is ErrUnknownCategory.
	Index int
	Err   error
}

func (e *ReferenceError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownCategory):
		return fmt.Sprintf("%s %q: %s", e.Err, e.Category, e.Op.outcome())
	case e.Category != "":
		return fmt.Sprintf("%s %d in category %q: %s", e.Err, e.Index, e.Category, e.Op.outcome())
	default:
		return fmt.Sprintf("%s %d: %s", e.Err, e.Index, e.Op.outcome())
	}
}

// Unwrap returns the underlying sentinel error.
func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// Op names the operation a ReferenceError came from.
type Op string

const (
	OpAddTask        Op = "add"
	OpRemoveTask     Op = "remove"
	OpChangePriority Op = "priority"
	OpHighlight      Op = "highlight"
	OpReorder        Op = "reorder"
	OpMove           Op = "move"
)

func (o Op) outcome() string {
	switch o {
	case OpAddTask:
		return "task not added"
	case OpRemoveTask:
		return "task not deleted"
	case OpChangePriority:
		return "task priority not changed"
	case OpHighlight:
		return "task highlight not changed"
	case OpReorder:
		return "task not reordered"
	case OpMove:
		return "task not moved"
	default:
		return "nothing changed"
	}
}

func indexError(op Op, category string, index int) error {
	return &ReferenceError{Op: op, Category: category, Index: index, Err: ErrInvalidIndex}
}

func categoryError(op Op, category string) error {
	return &ReferenceError{Op: op, Category: category, Index: -1, Err: ErrUnknownCategory}
}
