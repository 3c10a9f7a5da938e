// Package planner holds the in-memory task model of the planner.
//
// A Manager owns a set of named categories. Each Category owns an ordered list
// of tasks; the position of a task is its display row. The Manager addresses
// tasks with 1-based indices (the numbers shown to the user) and converts them
// to 0-based indices before delegating to the Category.
//
// # Errors
//
// Two kinds of failure are reported:
//
//   - *ValidationError: a task could not be constructed (its due date lies in
//     the past). The triggering operation is aborted.
//   - *ReferenceError: an index or category name does not resolve. Nothing is
//     mutated and the caller may simply report the message and carry on.
//
// Use errors.Is with ErrDueDateInPast, ErrInvalidIndex or ErrUnknownCategory to
// tell them apart.
//
// # Rendering
//
// Manager.Render projects the categories into a Table: a header of category
// names (in insertion order) and one row per task position, padded with a
// placeholder cell where a category has fewer tasks. Drawing the table is left
// to the render package.
//
// State lives only for the lifetime of the process.
package planner
