package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"listdeck/internal/exitcode"
	"listdeck/internal/lists"
)

// ErrPositionRequired indicates no position argument was given.
var ErrPositionRequired = errors.New("position required")

// ParsePosition reads the 1-based entry number shown by list and returns
// the 0-based position the controller expects. Range is not checked here.
func ParsePosition(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrPositionRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid position: %s", args[0])
	}
	return num - 1, nil
}

// reportError prints err and returns the exit code for it. Index errors are
// reported with the user's 1-based number.
func reportError(errOut io.Writer, pos int, err error) int {
	if errors.Is(err, lists.ErrIndex) {
		fmt.Fprintf(errOut, "error: position out of range: %d\n", pos+1)
	} else {
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return exitcode.UserError
}

// parsePositionArg parses the position argument and reports parse failures.
func parsePositionArg(args []string, errOut io.Writer) (int, bool) {
	pos, err := ParsePosition(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 0, false
	}
	return pos, true
}
