// Package output provides formatters for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"todofs/internal/service"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"
)

// Format selects how a list is printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format: %s", s)
	}
}

// ListDocument is the machine-readable form of a list.
type ListDocument struct {
	List  string         `json:"list" yaml:"list"`
	Tasks []service.Task `json:"tasks" yaml:"tasks"`
}

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {NAME}\n" (4-wide right-aligned number, two spaces, checkbox, name)
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, checkbox(task.Done), normalizeTitle(task.Name))
}

// FormatListHeader formats a list section header.
func FormatListHeader(w io.Writer, title string, isDefault bool) {
	displayTitle := normalizeTitle(title)
	if isDefault {
		displayTitle += " [default]"
	}
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, displayTitle)
	fmt.Fprintln(w, ListSeparator)
}

// FormatListName formats a list name for the lists command.
func FormatListName(w io.Writer, list service.TaskList) {
	title := normalizeTitle(list.Name)
	if list.IsDefault {
		title += " [default]"
	}
	fmt.Fprintln(w, title)
}

// WriteJSON writes doc as indented JSON with a trailing newline.
func WriteJSON(w io.Writer, doc ListDocument) error {
	if doc.Tasks == nil {
		doc.Tasks = []service.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteYAML writes doc as YAML.
func WriteYAML(w io.Writer, doc ListDocument) error {
	if doc.Tasks == nil {
		doc.Tasks = []service.Task{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// normalizeTitle replaces newlines with spaces so every entry stays on one line.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
