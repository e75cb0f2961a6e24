package record

import "time"

// Record is one entry of any list.
type Record interface {
	// Heading returns the primary text the record was added with.
	Heading() string
}

// Student is an entry of the student roster.
type Student struct {
	ID        string
	Name      string
	AddedDate time.Time
}

func (s Student) Heading() string { return s.Name }

// CartItem is an entry of the shopping cart.
type CartItem struct {
	ID        string
	Name      string
	Quantity  int
	Price     float64 // unit price
	AddedDate time.Time
}

func (c CartItem) Heading() string { return c.Name }

// Total returns quantity times unit price.
func (c CartItem) Total() float64 {
	return float64(c.Quantity) * c.Price
}

// Task is an entry of the task manager.
type Task struct {
	Title       string
	Description string
	Completed   bool
	Priority    Priority
}

func (t Task) Heading() string { return t.Title }
