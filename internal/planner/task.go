package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the display layout of due dates (dd-MM-yyyy).
const DateLayout = "02-01-2006"

// DescriptionSoftLimit is the advised maximum description length. It is not
// enforced; longer descriptions are truncated when drawn.
const DescriptionSoftLimit = 30

// Task is a single to-do item.
type Task struct {
	ID          string
	Description string
	Priority    Priority
	DueDate     time.Time
	Highlighted bool
}

// NewTask validates the fields and returns a task with a fresh ID. The due date
// is reduced to its calendar day; it fails with ErrDueDateInPast if that day is
// before the calendar day of now.
func NewTask(description string, priority Priority, due time.Time, highlighted bool, now time.Time) (Task, error) {
	if !priority.Valid() {
		return Task{}, &ValidationError{
			Field: "priority",
			Err:   fmt.Errorf("%w: %d", ErrInvalidPriority, int(priority)),
		}
	}
	day := Day(due)
	if dayBefore(day, now) {
		return Task{}, &ValidationError{
			Field: "due_date",
			Err:   fmt.Errorf("%w: %s", ErrDueDateInPast, day.Format(DateLayout)),
		}
	}
	return Task{
		ID:          uuid.NewString(),
		Description: description,
		Priority:    priority,
		DueDate:     day,
		Highlighted: highlighted,
	}, nil
}

// String formats the task as "{description} --- {priority} --- {dd-MM-yyyy}".
func (t Task) String() string {
	return fmt.Sprintf("%s --- %s --- %s", t.Description, t.Priority, t.DueDate.Format(DateLayout))
}

// Day returns midnight of t's calendar day in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dayBefore compares calendar days, each in its own location.
func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
