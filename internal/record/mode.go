// Package record defines the entries managed by the three lists and the
// selectors that choose between them.
package record

import (
	"fmt"
	"strings"
)

// Mode selects the active list.
type Mode int

const (
	// ModeStudents is the student roster.
	ModeStudents Mode = iota
	// ModeCart is the shopping cart.
	ModeCart
	// ModeTasks is the task manager.
	ModeTasks
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeStudents, ModeCart, ModeTasks}

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case ModeStudents:
		return "Student List"
	case ModeCart:
		return "Shopping Cart"
	case ModeTasks:
		return "Task Manager"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Key returns the short name used on the command line and in config files.
func (m Mode) Key() string {
	switch m {
	case ModeStudents:
		return "students"
	case ModeCart:
		return "cart"
	case ModeTasks:
		return "tasks"
	default:
		return ""
	}
}

// ParseMode accepts the short name, its singular form or its first letter
// (case-insensitive, trimmed).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "students", "student", "s":
		return ModeStudents, nil
	case "cart", "shopping", "c":
		return ModeCart, nil
	case "tasks", "task", "t":
		return ModeTasks, nil
	}
	return 0, fmt.Errorf("unknown mode: %s", s)
}

// Priority ranks a task.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// String returns the priority's display name.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority parses a priority name (case-insensitive). Empty input
// yields PriorityLow.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "low", "l":
		return PriorityLow, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	}
	return 0, fmt.Errorf("unknown priority: %s", s)
}
