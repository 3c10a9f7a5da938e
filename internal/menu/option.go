// Package menu implements the numbered text menu that drives a planner.
//
// Each Option declares the Fields it needs. A front end collects raw input
// for those fields into Answers, then calls Execute. Loop is the line-based
// front end; internal/ui is the full-screen one.
package menu

import (
	"fmt"
	"strings"
)

// Option is a menu entry.
type Option int

const (
	OptionAddCategory Option = iota + 1
	OptionDeleteCategory
	OptionAddTask
	OptionRemoveTask
	OptionChangePriority
	OptionMoveTask
	OptionHighlightTask
	OptionReorder
	OptionQuit
)

// Options returns every option in menu order.
func Options() []Option {
	return []Option{
		OptionAddCategory,
		OptionDeleteCategory,
		OptionAddTask,
		OptionRemoveTask,
		OptionChangePriority,
		OptionMoveTask,
		OptionHighlightTask,
		OptionReorder,
		OptionQuit,
	}
}

// ParseOption parses a menu choice "1" through "9".
func ParseOption(s string) (Option, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return OptionAddCategory, nil
	case "2":
		return OptionDeleteCategory, nil
	case "3":
		return OptionAddTask, nil
	case "4":
		return OptionRemoveTask, nil
	case "5":
		return OptionChangePriority, nil
	case "6":
		return OptionMoveTask, nil
	case "7":
		return OptionHighlightTask, nil
	case "8":
		return OptionReorder, nil
	case "9":
		return OptionQuit, nil
	default:
		return 0, fmt.Errorf("invalid menu choice %q", s)
	}
}

// Key returns the digit that selects o.
func (o Option) Key() string {
	return fmt.Sprintf("%d", int(o))
}

// String returns the menu label of o.
func (o Option) String() string {
	switch o {
	case OptionAddCategory:
		return "Add a category"
	case OptionDeleteCategory:
		return "Delete an existing category"
	case OptionAddTask:
		return "Add a task to a category"
	case OptionRemoveTask:
		return "Delete an existing task"
	case OptionChangePriority:
		return "Change task priority"
	case OptionMoveTask:
		return "Move a task from one category to another"
	case OptionHighlightTask:
		return "Highlight a task"
	case OptionReorder:
		return "Change the importance of tasks within one category"
	case OptionQuit:
		return "Quit"
	default:
		return fmt.Sprintf("Option(%d)", int(o))
	}
}

// Fields returns the inputs o needs, in prompt order.
func (o Option) Fields() []Field {
	switch o {
	case OptionAddCategory, OptionDeleteCategory:
		return []Field{FieldCategory}
	case OptionAddTask:
		return []Field{FieldCategory, FieldDescription, FieldPriority, FieldDueDate}
	case OptionRemoveTask, OptionHighlightTask:
		return []Field{FieldCategory, FieldIndex}
	case OptionChangePriority:
		return []Field{FieldCategory, FieldIndex, FieldPriority}
	case OptionMoveTask:
		return []Field{FieldCategory, FieldIndex, FieldTarget}
	case OptionReorder:
		return []Field{FieldCategory, FieldIndex, FieldNewIndex}
	default:
		return nil
	}
}

// Text returns the full option list as shown under the table.
func Text() string {
	var b strings.Builder
	b.WriteString("Task Planner options:\n")
	for _, o := range Options() {
		fmt.Fprintf(&b, "%s. %s\n", o.Key(), o)
	}
	return b.String()
}
