package service

// Task is a task as the remote store sees it.
type Task struct {
	Title     string
	Notes     string
	Completed bool
}

// TaskList is a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}
