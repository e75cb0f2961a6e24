// Package controller routes list actions to whichever list manager the
// active mode selects.
//
// A Controller is driven from a single goroutine. It holds no locks: the
// shell loop and the terminal UI both run one action to completion before
// reading the next.
package controller

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"listdeck/internal/lists"
	"listdeck/internal/record"
)

// DefaultCurrency is the symbol used in cart summaries when none is set.
const DefaultCurrency = "$"

// Options configures a Controller.
type Options struct {
	// Clock stamps new students and cart items. Nil means time.Now.
	Clock lists.Clock

	// Currency prefixes monetary values in Summary.
	Currency string

	// Mode is the initially active mode.
	Mode record.Mode
}

// Fields carries the mode-specific inputs of Add. Cart mode reads PriceRaw
// and QuantityRaw; task mode reads Description and Priority; student mode
// reads nothing.
type Fields struct {
	PriceRaw    string
	QuantityRaw string
	Description string
	Priority    record.Priority
}

// AddResult describes the entry an Add produced or updated.
type AddResult struct {
	Mode     record.Mode
	Position int
	Merged   bool
	Entry    record.Record
}

// Controller owns the three lists and the active mode.
type Controller struct {
	log      *zap.Logger
	currency string
	mode     record.Mode

	students *lists.StudentList
	cart     *lists.CartList
	tasks    *lists.TaskList
}

// New creates a Controller with empty lists.
func New(log *zap.Logger, opts Options) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Controller{
		log:      log,
		currency: currency,
		mode:     opts.Mode,
		students: lists.NewStudentList(opts.Clock),
		cart:     lists.NewCartList(opts.Clock),
		tasks:    lists.NewTaskList(),
	}
}

// Mode returns the active mode.
func (c *Controller) Mode() record.Mode { return c.mode }

// SetMode switches the active mode. List contents are not touched.
func (c *Controller) SetMode(m record.Mode) {
	if m != c.mode {
		c.log.Debug("mode switched", zap.Stringer("from", c.mode), zap.Stringer("to", m))
	}
	c.mode = m
}

// Add trims primary and adds it to the active list.
func (c *Controller) Add(primary string, f Fields) (AddResult, error) {
	primary = strings.TrimSpace(primary)
	if primary == "" {
		c.log.Debug("add rejected", zap.Stringer("mode", c.mode), zap.String("reason", "empty input"))
		return AddResult{}, lists.Validationf("please enter a value")
	}

	res := AddResult{Mode: c.mode}
	switch c.mode {
	case record.ModeStudents:
		s, err := c.students.Add(primary)
		if err != nil {
			c.log.Debug("add rejected", zap.Stringer("mode", c.mode), zap.Error(err))
			return AddResult{}, err
		}
		res.Position = c.students.Len() - 1
		res.Entry = s
	case record.ModeCart:
		added, err := c.cart.Add(primary, f.PriceRaw, f.QuantityRaw)
		if err != nil {
			c.log.Debug("add rejected", zap.Stringer("mode", c.mode), zap.Error(err))
			return AddResult{}, err
		}
		res.Position = added.Position
		res.Merged = added.Merged
		res.Entry = added.Item
	case record.ModeTasks:
		t, pos := c.tasks.Add(primary, strings.TrimSpace(f.Description), f.Priority)
		res.Position = pos
		res.Entry = t
	default:
		return AddResult{}, fmt.Errorf("unknown mode: %v", c.mode)
	}

	c.log.Debug("entry added",
		zap.Stringer("mode", c.mode),
		zap.Int("position", res.Position),
		zap.String("name", primary),
		zap.Bool("merged", res.Merged))
	return res, nil
}

// Remove deletes the entry at pos from the active list and returns it.
func (c *Controller) Remove(pos int) (record.Record, error) {
	var removed record.Record
	switch c.mode {
	case record.ModeStudents:
		s, err := c.students.RemoveAt(pos)
		if err != nil {
			return nil, err
		}
		removed = s
	case record.ModeCart:
		item, err := c.cart.RemoveAt(pos)
		if err != nil {
			return nil, err
		}
		removed = item
	case record.ModeTasks:
		t, err := c.tasks.RemoveAt(pos)
		if err != nil {
			return nil, err
		}
		removed = t
	default:
		return nil, fmt.Errorf("unknown mode: %v", c.mode)
	}
	c.log.Debug("entry removed", zap.Stringer("mode", c.mode), zap.Int("position", pos), zap.String("name", removed.Heading()))
	return removed, nil
}

// Clear empties the active list and reports how many entries it held.
func (c *Controller) Clear() int {
	n := c.Len()
	switch c.mode {
	case record.ModeStudents:
		c.students.Clear()
	case record.ModeCart:
		c.cart.Clear()
	case record.ModeTasks:
		c.tasks.Clear()
	}
	c.log.Debug("list cleared", zap.Stringer("mode", c.mode), zap.Int("removed", n))
	return n
}

// Len returns the length of the active list.
func (c *Controller) Len() int {
	switch c.mode {
	case record.ModeStudents:
		return c.students.Len()
	case record.ModeCart:
		return c.cart.Len()
	case record.ModeTasks:
		return c.tasks.Len()
	}
	return 0
}

// Entries returns a copy of the active list in insertion order.
func (c *Controller) Entries() []record.Record {
	var out []record.Record
	switch c.mode {
	case record.ModeStudents:
		for _, s := range c.students.Items() {
			out = append(out, s)
		}
	case record.ModeCart:
		for _, item := range c.cart.Items() {
			out = append(out, item)
		}
	case record.ModeTasks:
		for _, t := range c.tasks.Items() {
			out = append(out, t)
		}
	}
	return out
}

// Tasks returns a copy of the task list regardless of the active mode.
func (c *Controller) Tasks() []record.Task { return c.tasks.Items() }

// Currency returns the symbol used for monetary values.
func (c *Controller) Currency() string { return c.currency }

// Summary returns the aggregate line for the active mode.
func (c *Controller) Summary() string {
	switch c.mode {
	case record.ModeStudents:
		return fmt.Sprintf("Total Students: %d", c.students.Info().Count)
	case record.ModeCart:
		info := c.cart.Info()
		return fmt.Sprintf("Items: %d | Total: %s%.2f", info.TotalItems, c.currency, info.TotalValue)
	case record.ModeTasks:
		info := c.tasks.Info()
		return fmt.Sprintf("Tasks: %d pending, %d completed | High: %d", info.Pending, info.Completed, info.HighPending)
	}
	return ""
}

// Seed loads the starter entries a new session opens with.
func (c *Controller) Seed() error {
	for _, name := range []string{"KIM", "LEE", "PARK"} {
		if _, err := c.students.Add(name); err != nil {
			return fmt.Errorf("seed students: %w", err)
		}
	}
	for _, item := range []struct{ name, price, qty string }{
		{"Apple", "2.0", "3"},
		{"Banana", "1.0", "2"},
	} {
		if _, err := c.cart.Add(item.name, item.price, item.qty); err != nil {
			return fmt.Errorf("seed cart: %w", err)
		}
	}
	c.tasks.Add("Complete Assignment", "Mobile Programming", record.PriorityHigh)
	c.tasks.Add("Shopping", "Visit Mart", record.PriorityMedium)
	_, pos := c.tasks.Add("Tour", "Museum", record.PriorityLow)
	if _, err := c.tasks.Toggle(pos); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	c.log.Debug("session seeded",
		zap.Int("students", c.students.Len()),
		zap.Int("cart", c.cart.Len()),
		zap.Int("tasks", c.tasks.Len()))
	return nil
}
