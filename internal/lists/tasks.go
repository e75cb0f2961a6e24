package lists

import "listdeck/internal/record"

// TaskInfo is the aggregate of the task manager.
type TaskInfo struct {
	Pending     int
	Completed   int
	HighPending int // high priority and not completed
}

// TaskList is the task manager. Titles need not be unique.
type TaskList struct {
	tasks []record.Task
}

func NewTaskList() *TaskList {
	return &TaskList{}
}

// Add appends a pending task and returns its position.
func (l *TaskList) Add(title, description string, priority record.Priority) (record.Task, int) {
	t := record.Task{Title: title, Description: description, Priority: priority}
	l.tasks = append(l.tasks, t)
	return t, len(l.tasks) - 1
}

// Toggle flips the completion flag of the task at pos and returns the task
// after the change.
func (l *TaskList) Toggle(pos int) (record.Task, error) {
	if err := checkPosition(pos, len(l.tasks)); err != nil {
		return record.Task{}, err
	}
	l.tasks[pos].Completed = !l.tasks[pos].Completed
	return l.tasks[pos], nil
}

// RemoveAt deletes and returns the task at pos.
func (l *TaskList) RemoveAt(pos int) (record.Task, error) {
	if err := checkPosition(pos, len(l.tasks)); err != nil {
		return record.Task{}, err
	}
	var removed record.Task
	l.tasks, removed = removeAt(l.tasks, pos)
	return removed, nil
}

// At returns the task at pos.
func (l *TaskList) At(pos int) (record.Task, error) {
	if err := checkPosition(pos, len(l.tasks)); err != nil {
		return record.Task{}, err
	}
	return l.tasks[pos], nil
}

// Clear removes every task.
func (l *TaskList) Clear() {
	l.tasks = nil
}

func (l *TaskList) Len() int { return len(l.tasks) }

// Items returns a copy of the tasks in insertion order.
func (l *TaskList) Items() []record.Task {
	out := make([]record.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *TaskList) Info() TaskInfo {
	var info TaskInfo
	for _, t := range l.tasks {
		if t.Completed {
			info.Completed++
			continue
		}
		if t.Priority == record.PriorityHigh {
			info.HighPending++
		}
	}
	info.Pending = len(l.tasks) - info.Completed
	return info
}
