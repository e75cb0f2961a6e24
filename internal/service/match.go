package service

import (
	"errors"
	"fmt"
	"strings"
)

// Match failures. Errors returned by ResolveList wrap one of these.
var (
	ErrListNotFound  = errors.New("list not found")
	ErrAmbiguousList = errors.New("ambiguous list name")
)

// MatchList picks the list whose title equals name, ignoring case and
// surrounding whitespace.
func MatchList(lists []TaskList, name string) (TaskList, error) {
	name = strings.TrimSpace(name)
	nameLower := strings.ToLower(name)

	var matches []TaskList
	for _, l := range lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == nameLower {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return TaskList{}, fmt.Errorf("%w: %s", ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return TaskList{}, fmt.Errorf("%w: %s", ErrAmbiguousList, name)
	}
}
