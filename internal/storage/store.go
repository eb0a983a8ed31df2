// Package storage persists tasks as one small file per task.
//
// A list is a directory under the store root and every task in it is a file
// named after the task. The file holds the task's value verbatim, which for
// the to-do backend is the literal "true" or "false":
//
//	<root>/TODO-LIST/Buy milk   -> "false"
//	<root>/TODO-LIST/Call mom   -> "true"
//
// There is no index or manifest; an entry exists exactly when its file does.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultList is the list used when none is named.
const DefaultList = "TODO-LIST"

// ErrInvalidName is returned for list or task names that cannot be used as
// a path segment.
var ErrInvalidName = errors.New("invalid name")

// Store is a key-value store keyed by (list, name).
type Store interface {
	// Write creates the list and entry if needed, then replaces its content.
	Write(list, name, value string) error

	// Read returns the stored value, or def when the entry is missing or
	// cannot be read. It never fails.
	Read(list, name, def string) string

	// Delete removes the entry. Deleting a missing entry is not an error.
	Delete(list, name string) error

	// List returns the names of all entries in a list, in no particular
	// order. A list that was never written is empty.
	List(list string) ([]string, error)

	// DeleteAll removes a list and every entry in it.
	DeleteAll(list string) error

	// Lists returns the names of the top-level lists under the root.
	Lists() ([]string, error)
}

// ValidateName checks that name can be stored as a single file name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is blank", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

// ValidateList checks a list name. Lists are slash-separated relative paths
// and every segment must be a valid name.
func ValidateList(list string) error {
	if strings.TrimSpace(list) == "" {
		return fmt.Errorf("%w: list name is blank", ErrInvalidName)
	}
	for _, segment := range strings.Split(list, "/") {
		if err := ValidateName(segment); err != nil {
			return fmt.Errorf("list %q: %w", list, err)
		}
	}
	return nil
}
