package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"todofs/internal/view"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num  int    // 1-based task number, 0 if the ref is a name
	Name string // exact task name, empty if the ref is a number
}

// IsNumber reports whether the reference is positional.
func (r TaskRef) IsNumber() bool {
	return r.Name == ""
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
//  1. A single all-digit argument is a 1-based number as printed by list.
//  2. Anything else is a task name; multiple args are joined by single spaces.
//  3. No args, or only whitespace, is ErrTaskRefRequired.
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}

	if len(args) == 1 && isAllDigits(args[0]) {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", args[0])
		}
		return TaskRef{Num: num}, nil
	}

	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return TaskRef{}, ErrTaskRefRequired
	}
	return TaskRef{Name: name}, nil
}

// Resolve returns the 0-based index of the referenced task in v.
func (r TaskRef) Resolve(v *view.View) (int, error) {
	if r.IsNumber() {
		if r.Num < 1 || r.Num > v.Len() {
			return -1, fmt.Errorf("%w: %d", view.ErrOutOfRange, r.Num)
		}
		return r.Num - 1, nil
	}

	i := v.Index(r.Name)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrTaskNotFound, r.Name)
	}
	return i, nil
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
