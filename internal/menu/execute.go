package menu

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/nibzard/planner-go/internal/planner"
)

// ErrEmptyCategory is returned when a category name is blank.
var ErrEmptyCategory = errors.New("category name is empty")

// Execute performs o on mgr with the inputs in a and returns a status line.
// Descriptions longer than planner.DescriptionSoftLimit are accepted with a
// warning.
func Execute(mgr *planner.Manager, o Option, a Answers) (string, error) {
	return ExecuteWithLimit(mgr, o, a, planner.DescriptionSoftLimit)
}

// ExecuteWithLimit is Execute with a custom description length warning
// threshold. A limit of zero or less disables the warning.
func ExecuteWithLimit(mgr *planner.Manager, o Option, a Answers, limit int) (string, error) {
	switch o {
	case OptionAddCategory:
		if a.Category == "" {
			return "", ErrEmptyCategory
		}
		if !mgr.AddCategory(a.Category) {
			return fmt.Sprintf("Category %q already exists.", a.Category), nil
		}
		return fmt.Sprintf("Added category %q.", a.Category), nil

	case OptionDeleteCategory:
		if !mgr.DeleteCategory(a.Category) {
			return fmt.Sprintf("No category %q, nothing deleted.", a.Category), nil
		}
		return fmt.Sprintf("Deleted category %q.", a.Category), nil

	case OptionAddTask:
		task, err := mgr.AddTask(a.Category, a.Description, a.Priority, a.DueDate, false)
		if err != nil {
			return "", err
		}
		msg := fmt.Sprintf("Added task: %s", task)
		if limit > 0 && utf8.RuneCountInString(a.Description) > limit {
			msg += fmt.Sprintf(" (description is longer than %d symbols)", limit)
		}
		return msg, nil

	case OptionRemoveTask:
		task, err := mgr.RemoveTask(a.Category, a.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted task: %s", task), nil

	case OptionChangePriority:
		if err := mgr.ChangeTaskPriority(a.Category, a.Index, a.Priority); err != nil {
			return "", err
		}
		return fmt.Sprintf("Task %d in %q is now %s priority.", a.Index, a.Category, a.Priority), nil

	case OptionMoveTask:
		task, err := mgr.MoveTaskTo(a.Category, a.Index, a.Target)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Moved task to %q: %s", a.Target, task), nil

	case OptionHighlightTask:
		on, err := mgr.HighlightTask(a.Category, a.Index)
		if err != nil {
			return "", err
		}
		if on {
			return fmt.Sprintf("Task %d in %q highlighted.", a.Index, a.Category), nil
		}
		return fmt.Sprintf("Task %d in %q no longer highlighted.", a.Index, a.Category), nil

	case OptionReorder:
		if err := mgr.MoveTaskWithinCategory(a.Category, a.Index, a.NewIndex); err != nil {
			return "", err
		}
		return fmt.Sprintf("Task %d in %q moved to position %d.", a.Index, a.Category, a.NewIndex), nil

	case OptionQuit:
		return "Goodbye.", nil

	default:
		return "", fmt.Errorf("unknown menu option %d", int(o))
	}
}
