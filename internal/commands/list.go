package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todofs/internal/config"
	"todofs/internal/exitcode"
	"todofs/internal/output"
	"todofs/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todofs` (no args) and `todofs list <list-name>`.
type ListCmd struct {
	listName string
	format   string
}

// SetFormat sets the output format (for testing).
func (c *ListCmd) SetFormat(format string) {
	c.format = format
}

// SetListName sets the list name (for testing).
func (c *ListCmd) SetListName(name string) {
	c.listName = name
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "todofs list [--format text|json|yaml] [<list-name> | --list <list-name>]"
}
func (c *ListCmd) NeedsStore() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "text", "")
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	format, err := output.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// A positional list name prints a section header, like `list --list` does not.
	listName := c.listName
	withHeader := false
	if len(args) > 0 {
		if c.listName != "" {
			fmt.Fprintln(errOut, "error: cannot use both --list and a list name")
			return exitcode.UserError
		}
		listName = strings.TrimSpace(strings.Join(args, " "))
		if listName == "" {
			fmt.Fprintln(errOut, "error: list name required")
			return exitcode.UserError
		}
		withHeader = true
	}

	v, err := loadView(ctx, svc, listName)
	if err != nil {
		return reportError(errOut, err)
	}
	tasks := v.Tasks()

	switch format {
	case output.FormatJSON:
		if err := output.WriteJSON(out, output.ListDocument{List: v.List(), Tasks: tasks}); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.StoreError
		}
		return exitcode.Success
	case output.FormatYAML:
		if err := output.WriteYAML(out, output.ListDocument{List: v.List(), Tasks: tasks}); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.StoreError
		}
		return exitcode.Success
	}

	if withHeader {
		defaultList, err := svc.DefaultList(ctx)
		if err != nil {
			return reportError(errOut, err)
		}
		// Print list section (even if empty)
		output.FormatListHeader(out, v.List(), v.List() == defaultList.Name)
	} else if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for i, task := range tasks {
		output.FormatTask(out, i+1, task)
	}
	return exitcode.Success
}
