package lists

import (
	"github.com/google/uuid"

	"listdeck/internal/record"
)

// StudentInfo is the aggregate of the student roster.
type StudentInfo struct {
	Count int
}

// StudentList is the student roster. Names are unique (exact match).
type StudentList struct {
	clock    Clock
	students []record.Student
}

// NewStudentList creates an empty roster stamping records with clock.
func NewStudentList(clock Clock) *StudentList {
	return &StudentList{clock: clock}
}

// Add appends a student. Fails with ErrDuplicate if name is taken.
func (l *StudentList) Add(name string) (record.Student, error) {
	if l.indexOf(name) >= 0 {
		return record.Student{}, duplicatef("student '%s' already exists", name)
	}
	s := record.Student{
		ID:        uuid.NewString(),
		Name:      name,
		AddedDate: l.clock.now(),
	}
	l.students = append(l.students, s)
	return s, nil
}

// RemoveAt deletes and returns the student at pos.
func (l *StudentList) RemoveAt(pos int) (record.Student, error) {
	if err := checkPosition(pos, len(l.students)); err != nil {
		return record.Student{}, err
	}
	var removed record.Student
	l.students, removed = removeAt(l.students, pos)
	return removed, nil
}

// At returns the student at pos.
func (l *StudentList) At(pos int) (record.Student, error) {
	if err := checkPosition(pos, len(l.students)); err != nil {
		return record.Student{}, err
	}
	return l.students[pos], nil
}

// Clear removes every student.
func (l *StudentList) Clear() {
	l.students = nil
}

func (l *StudentList) Len() int { return len(l.students) }

// Items returns a copy of the roster in insertion order.
func (l *StudentList) Items() []record.Student {
	out := make([]record.Student, len(l.students))
	copy(out, l.students)
	return out
}

func (l *StudentList) Info() StudentInfo {
	return StudentInfo{Count: len(l.students)}
}

func (l *StudentList) indexOf(name string) int {
	for i, s := range l.students {
		if s.Name == name {
			return i
		}
	}
	return -1
}
