// Package lists implements the three list managers: the student roster, the
// shopping cart and the task manager. Every manager keeps insertion order,
// hands out copies of its records and leaves its state untouched when an
// operation fails.
package lists

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrValidation marks input that failed a presence or type check.
	ErrValidation = errors.New("invalid input")

	// ErrDuplicate marks a name collision in the student roster.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrIndex marks a position outside 0 <= position < length.
	ErrIndex = errors.New("position out of range")
)

// inputError carries a user-facing message and unwraps to one of the
// sentinels above.
type inputError struct {
	kind error
	msg  string
}

func (e *inputError) Error() string { return e.msg }
func (e *inputError) Unwrap() error { return e.kind }

// Validationf returns an error matching ErrValidation.
func Validationf(format string, args ...any) error {
	return &inputError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func duplicatef(format string, args ...any) error {
	return &inputError{kind: ErrDuplicate, msg: fmt.Sprintf(format, args...)}
}

// IndexError describes an out-of-range position.
type IndexError struct {
	Position int
	Length   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("position out of range: %d (length %d)", e.Position, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndex }

func checkPosition(pos, length int) error {
	if pos < 0 || pos >= length {
		return &IndexError{Position: pos, Length: length}
	}
	return nil
}

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// removeAt deletes s[pos] and shifts the tail down by one.
func removeAt[T any](s []T, pos int) ([]T, T) {
	removed := s[pos]
	copy(s[pos:], s[pos+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1], removed
}
