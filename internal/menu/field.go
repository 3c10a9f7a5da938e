package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nibzard/planner-go/internal/planner"
)

// Field is one input an option asks for.
type Field int

const (
	FieldCategory Field = iota
	FieldTarget
	FieldDescription
	FieldIndex
	FieldNewIndex
	FieldPriority
	FieldDueDate
)

// DateLayouts are the accepted due date formats, preferred first.
var DateLayouts = []string{planner.DateLayout, "2006-01-02"}

// Label returns the prompt text for f.
func (f Field) Label() string {
	switch f {
	case FieldCategory:
		return "Category"
	case FieldTarget:
		return "Destination category"
	case FieldDescription:
		return "Task description"
	case FieldIndex:
		return "Task number"
	case FieldNewIndex:
		return "New position (task number)"
	case FieldPriority:
		return "Priority (1. Low, 2. Medium, 3. High)"
	case FieldDueDate:
		return "Due date (dd-MM-yyyy)"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

func (f Field) name() string {
	switch f {
	case FieldCategory:
		return "category"
	case FieldTarget:
		return "destination category"
	case FieldDescription:
		return "description"
	case FieldIndex:
		return "task number"
	case FieldNewIndex:
		return "new position"
	case FieldPriority:
		return "priority"
	case FieldDueDate:
		return "due date"
	default:
		return "input"
	}
}

// Retry reports whether invalid input for f should be asked for again. Other
// fields abandon the option on invalid input.
func (f Field) Retry() bool {
	switch f {
	case FieldPriority, FieldDueDate:
		return true
	default:
		return false
	}
}

// FieldError reports input that could not be parsed for a field.
type FieldError struct {
	Field Field
	Input string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field.name(), e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

var (
	errNotANumber  = errors.New("not a number")
	errBadDate     = errors.New("expected dd-MM-yyyy")
	errBadPriority = errors.New("expected 1, 2, 3 or low, medium, high")
)

// Answers holds the parsed inputs of one option.
type Answers struct {
	Category    string
	Target      string
	Description string
	Index       int
	NewIndex    int
	Priority    planner.Priority
	DueDate     time.Time
}

// Set parses raw as the value of f and stores it. Category names are trimmed
// and lower-cased.
func (a *Answers) Set(f Field, raw string) error {
	switch f {
	case FieldCategory:
		a.Category = NormalizeCategory(raw)
	case FieldTarget:
		a.Target = NormalizeCategory(raw)
	case FieldDescription:
		a.Description = strings.TrimSpace(raw)
	case FieldIndex, FieldNewIndex:
		n, err := ParseIndex(raw)
		if err != nil {
			return &FieldError{Field: f, Input: raw, Err: err}
		}
		if f == FieldIndex {
			a.Index = n
		} else {
			a.NewIndex = n
		}
	case FieldPriority:
		p, err := ParsePriority(raw)
		if err != nil {
			return &FieldError{Field: f, Input: raw, Err: err}
		}
		a.Priority = p
	case FieldDueDate:
		d, err := ParseDate(raw)
		if err != nil {
			return &FieldError{Field: f, Input: raw, Err: err}
		}
		a.DueDate = d
	default:
		return fmt.Errorf("unknown field %d", int(f))
	}
	return nil
}

// NormalizeCategory trims and lower-cases a category name.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseIndex parses a 1-based task number. Range checks are left to the
// planner.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errNotANumber
	}
	return n, nil
}

// ParsePriority accepts a menu number 1 to 3 or a priority name.
func ParsePriority(s string) (planner.Priority, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return planner.PriorityLow, nil
	case "2":
		return planner.PriorityMedium, nil
	case "3":
		return planner.PriorityHigh, nil
	}
	p, err := planner.ParsePriority(s)
	if err != nil {
		return 0, errBadPriority
	}
	return p, nil
}

// ParseDate parses a due date in local time using DateLayouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, nil
		}
	}
	return time.Time{}, errBadDate
}
