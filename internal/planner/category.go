package planner

import (
	"time"
)

// Category is a named, ordered list of tasks. Indices are 0-based.
//
// The task list is only reachable through the methods below so that every
// insertion goes through NewTask and every index is checked.
type Category struct {
	name  string
	tasks []Task
	now   func() time.Time
}

// NewCategory returns an empty category using the wall clock for due date
// validation.
func NewCategory(name string) *Category {
	return newCategory(name, time.Now)
}

func newCategory(name string, now func() time.Time) *Category {
	if now == nil {
		now = time.Now
	}
	return &Category{name: name, now: now}
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Len returns the number of tasks.
func (c *Category) Len() int {
	return len(c.tasks)
}

// Task returns the task at index.
func (c *Category) Task(index int) (Task, bool) {
	if !c.inRange(index) {
		return Task{}, false
	}
	return c.tasks[index], true
}

// Tasks returns a copy of the tasks in display order.
func (c *Category) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// AddTask validates a new task and appends it. Duplicates are allowed.
func (c *Category) AddTask(description string, priority Priority, due time.Time, highlighted bool) (Task, error) {
	task, err := NewTask(description, priority, due, highlighted, c.now())
	if err != nil {
		return Task{}, err
	}
	c.tasks = append(c.tasks, task)
	return task, nil
}

// RemoveTask removes and returns the task at index.
func (c *Category) RemoveTask(index int) (Task, error) {
	if !c.inRange(index) {
		return Task{}, indexError(OpRemoveTask, c.name, index)
	}
	removed := c.tasks[index]
	c.tasks = append(c.tasks[:index], c.tasks[index+1:]...)
	return removed, nil
}

// ChangeTaskPriority sets the priority of the task at index.
func (c *Category) ChangeTaskPriority(index int, priority Priority) error {
	if !c.inRange(index) {
		return indexError(OpChangePriority, c.name, index)
	}
	if !priority.Valid() {
		return &ValidationError{Field: "priority", Err: ErrInvalidPriority}
	}
	c.tasks[index].Priority = priority
	return nil
}

// ToggleHighlight flips the highlight flag of the task at index and returns
// the new value.
func (c *Category) ToggleHighlight(index int) (bool, error) {
	if !c.inRange(index) {
		return false, indexError(OpHighlight, c.name, index)
	}
	c.tasks[index].Highlighted = !c.tasks[index].Highlighted
	return c.tasks[index].Highlighted, nil
}

// ChangeImportance moves the task at current to position next, shifting the
// tasks in between. Both indices must address an existing task.
func (c *Category) ChangeImportance(current, next int) error {
	if !c.inRange(current) {
		return indexError(OpReorder, c.name, current)
	}
	if !c.inRange(next) {
		return indexError(OpReorder, c.name, next)
	}
	if current == next {
		return nil
	}
	task := c.tasks[current]
	if current < next {
		copy(c.tasks[current:next], c.tasks[current+1:next+1])
	} else {
		copy(c.tasks[next+1:current+1], c.tasks[next:current])
	}
	c.tasks[next] = task
	return nil
}

func (c *Category) inRange(index int) bool {
	return index >= 0 && index < len(c.tasks)
}
