package controller

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"listdeck/internal/record"
)

// SelectionKind tells the presentation layer how to show a Selection.
type SelectionKind int

const (
	// SelectNotify is a short display-only message.
	SelectNotify SelectionKind = iota
	// SelectDetail carries a cart item projection.
	SelectDetail
	// SelectToggled reports a task whose completion flag was flipped.
	SelectToggled
)

// CartDetail is the read-only projection of one cart item.
type CartDetail struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Total     float64
	AddedDate time.Time
}

// Selection is the outcome of Activate.
type Selection struct {
	Kind    SelectionKind
	Message string
	Detail  CartDetail  // SelectDetail only
	Task    record.Task // SelectToggled only, state after the toggle
}

// Activate performs the mode-specific select action on the entry at pos.
// Only task mode mutates state: it toggles the task's completion flag.
func (c *Controller) Activate(pos int) (Selection, error) {
	switch c.mode {
	case record.ModeStudents:
		s, err := c.students.At(pos)
		if err != nil {
			return Selection{}, err
		}
		return Selection{Kind: SelectNotify, Message: "Selected: " + s.Name}, nil

	case record.ModeCart:
		item, err := c.cart.At(pos)
		if err != nil {
			return Selection{}, err
		}
		return Selection{
			Kind:    SelectDetail,
			Message: "Item Details",
			Detail: CartDetail{
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.Price,
				Total:     item.Total(),
				AddedDate: item.AddedDate,
			},
		}, nil

	case record.ModeTasks:
		t, err := c.tasks.Toggle(pos)
		if err != nil {
			return Selection{}, err
		}
		state := "pending"
		if t.Completed {
			state = "completed"
		}
		c.log.Debug("task toggled", zap.Int("position", pos), zap.Bool("completed", t.Completed))
		return Selection{
			Kind:    SelectToggled,
			Message: "Task marked as " + state,
			Task:    t,
		}, nil
	}
	return Selection{}, fmt.Errorf("unknown mode: %v", c.mode)
}
