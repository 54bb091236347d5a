package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrTaskRefRequired indicates no task number was provided.
var ErrTaskRefRequired = errors.New("task number required")

// ParseTaskNum parses the 1-based row number of a task from args.
// Exactly one all-digit argument is accepted.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return 0, usageErrorf("unexpected argument: %s", args[1])
	}

	ref := args[0]
	if !isAllDigits(ref) {
		return 0, usageErrorf("invalid task number: %s", ref)
	}
	num, err := strconv.Atoi(ref)
	if err != nil {
		return 0, usageErrorf("invalid task number: %s", ref)
	}
	if num < 1 {
		return 0, fmt.Errorf("%w: %d", ErrTaskOutOfRange, num)
	}
	return num, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
