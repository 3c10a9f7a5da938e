package planner

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultPlaceholder fills table cells of categories with fewer tasks than
// the longest category.
const DefaultPlaceholder = "N/A"

// DefaultCategories returns the categories every manager starts with.
func DefaultCategories() []string {
	return []string{"personal", "family", "work"}
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used to validate due dates.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithCategories seeds additional categories after the defaults.
func WithCategories(names ...string) Option {
	return func(m *Manager) {
		m.extra = append(m.extra, names...)
	}
}

// WithPlaceholder sets the text of empty table cells.
func WithPlaceholder(placeholder string) Option {
	return func(m *Manager) {
		if placeholder != "" {
			m.placeholder = placeholder
		}
	}
}

// WithLogger sets the logger that receives mutation events.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Manager owns the categories of one planner. Task indices are 1-based.
//
// All methods are safe for concurrent use; each call holds the manager lock
// for its whole duration, so compound operations such as MoveTaskTo are
// atomic.
type Manager struct {
	mu          sync.Mutex
	order       []string
	categories  map[string]*Category
	now         func() time.Time
	placeholder string
	logger      *log.Logger
	extra       []string
}

// New returns a manager seeded with DefaultCategories.
func New(opts ...Option) *Manager {
	m := &Manager{
		categories:  make(map[string]*Category),
		now:         time.Now,
		placeholder: DefaultPlaceholder,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, name := range DefaultCategories() {
		m.addCategory(name)
	}
	for _, name := range m.extra {
		m.addCategory(name)
	}
	m.extra = nil
	return m
}

// AddCategory creates an empty category. It reports false if the name is
// empty or already taken, in which case nothing changes.
func (m *Manager) AddCategory(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := m.addCategory(name)
	if created {
		m.logger.Debug("category added", "category", name)
	}
	return created
}

func (m *Manager) addCategory(name string) bool {
	if name == "" {
		return false
	}
	if _, ok := m.categories[name]; ok {
		return false
	}
	m.categories[name] = newCategory(name, m.now)
	m.order = append(m.order, name)
	return true
}

// DeleteCategory removes a category and discards its tasks. It reports false
// if no such category exists.
func (m *Manager) DeleteCategory(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[name]
	if !ok {
		return false
	}
	delete(m.categories, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.logger.Debug("category deleted", "category", name, "discarded", c.Len())
	return true
}

// HasCategory reports whether a category exists.
func (m *Manager) HasCategory(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.categories[name]
	return ok
}

// Categories returns the category names in display order.
func (m *Manager) Categories() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// CategorySnapshot is a read-only copy of a category.
type CategorySnapshot struct {
	Name  string
	Tasks []Task
}

// Category returns a copy of the named category.
func (m *Manager) Category(name string) (CategorySnapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[name]
	if !ok {
		return CategorySnapshot{}, false
	}
	return CategorySnapshot{Name: c.Name(), Tasks: c.Tasks()}, true
}

// TaskCount returns the number of tasks across all categories.
func (m *Manager) TaskCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.categories {
		n += c.Len()
	}
	return n
}

// AddTask appends a new task to a category.
func (m *Manager) AddTask(category, description string, priority Priority, due time.Time, highlighted bool) (Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[category]
	if !ok {
		return Task{}, m.fail(categoryError(OpAddTask, category))
	}
	task, err := c.AddTask(description, priority, due, highlighted)
	if err != nil {
		return Task{}, m.fail(fmt.Errorf("add task to %q: %w", category, err))
	}
	m.logger.Debug("task added", "category", category, "index", c.Len(), "task_id", task.ID)
	return task, nil
}

// RemoveTask removes and returns the task at the 1-based index.
func (m *Manager) RemoveTask(category string, index int) (Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[category]
	if !ok {
		return Task{}, m.fail(categoryError(OpRemoveTask, category))
	}
	task, err := c.RemoveTask(index - 1)
	if err != nil {
		return Task{}, m.fail(userIndex(err, index))
	}
	m.logger.Debug("task removed", "category", category, "index", index, "task_id", task.ID)
	return task, nil
}

// ChangeTaskPriority sets the priority of the task at the 1-based index.
func (m *Manager) ChangeTaskPriority(category string, index int, priority Priority) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[category]
	if !ok {
		return m.fail(categoryError(OpChangePriority, category))
	}
	if err := c.ChangeTaskPriority(index-1, priority); err != nil {
		return m.fail(userIndex(err, index))
	}
	m.logger.Debug("task priority changed", "category", category, "index", index, "priority", priority)
	return nil
}

// HighlightTask toggles the highlight of the task at the 1-based index and
// returns the new value.
func (m *Manager) HighlightTask(category string, index int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[category]
	if !ok {
		return false, m.fail(categoryError(OpHighlight, category))
	}
	on, err := c.ToggleHighlight(index - 1)
	if err != nil {
		return false, m.fail(userIndex(err, index))
	}
	m.logger.Debug("task highlight toggled", "category", category, "index", index, "highlighted", on)
	return on, nil
}

// MoveTaskTo moves the task at the 1-based index of from to the end of to.
//
// The task is recreated in the destination (same fields, new ID) before the
// source entry is removed. If any step fails neither category changes.
func (m *Manager) MoveTaskTo(from string, index int, to string) (Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	src, ok := m.categories[from]
	if !ok {
		return Task{}, m.fail(categoryError(OpMove, from))
	}
	dst, ok := m.categories[to]
	if !ok {
		return Task{}, m.fail(categoryError(OpMove, to))
	}
	orig, ok := src.Task(index - 1)
	if !ok {
		return Task{}, m.fail(indexError(OpMove, from, index))
	}

	moved, err := dst.AddTask(orig.Description, orig.Priority, orig.DueDate, orig.Highlighted)
	if err != nil {
		return Task{}, m.fail(fmt.Errorf("move task %d from %q to %q: %w", index, from, to, err))
	}
	if _, err := src.RemoveTask(index - 1); err != nil {
		dst.tasks = dst.tasks[:len(dst.tasks)-1]
		return Task{}, m.fail(userIndex(err, index))
	}

	m.logger.Debug("task moved", "from", from, "index", index, "to", to, "task_id", moved.ID)
	return moved, nil
}

// MoveTaskWithinCategory moves the task at the 1-based current index to the
// 1-based next index of the same category.
func (m *Manager) MoveTaskWithinCategory(category string, current, next int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[category]
	if !ok {
		return m.fail(categoryError(OpReorder, category))
	}
	if err := c.ChangeImportance(current-1, next-1); err != nil {
		return m.fail(userIndex(err, current, next))
	}
	m.logger.Debug("task reordered", "category", category, "from", current, "to", next)
	return nil
}

// Render projects the categories into a table.
func (m *Manager) Render() Table {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := Table{
		Columns:     make([]string, len(m.order)),
		Placeholder: m.placeholder,
	}
	copy(t.Columns, m.order)

	rows := 0
	for _, name := range m.order {
		if n := m.categories[name].Len(); n > rows {
			rows = n
		}
	}

	t.Rows = make([][]Cell, rows)
	for i := 0; i < rows; i++ {
		row := make([]Cell, len(m.order))
		for j, name := range m.order {
			task, ok := m.categories[name].Task(i)
			if !ok {
				row[j] = Cell{Text: m.placeholder, Empty: true}
				continue
			}
			row[j] = Cell{Text: task.String(), Highlighted: task.Highlighted}
		}
		t.Rows[i] = row
	}
	return t
}

func (m *Manager) fail(err error) error {
	m.logger.Warn("planner operation failed", "err", err)
	return err
}

// userIndex rewrites the 0-based index of a ReferenceError coming from a
// Category back to the 1-based index the caller supplied. For reorders the
// offending index is whichever of the candidates matches.
func userIndex(err error, indices ...int) error {
	var ref *ReferenceError
	if !errors.As(err, &ref) || !errors.Is(ref.Err, ErrInvalidIndex) {
		return err
	}
	for _, i := range indices {
		if ref.Index == i-1 {
			ref.Index = i
			return err
		}
	}
	return err
}
