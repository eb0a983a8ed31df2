package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todofs/internal/config"
	"todofs/internal/exitcode"
	"todofs/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *ToggleCmd) SetListName(name string) {
	c.listName = name
}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return nil }
func (c *ToggleCmd) Synopsis() string  { return "Mark a task done, or undone if it already is" }
func (c *ToggleCmd) Usage() string     { return "todofs toggle [--list <list-name>] <ref>" }
func (c *ToggleCmd) NeedsStore() bool  { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	v, err := loadView(ctx, svc, c.listName)
	if err != nil {
		return reportError(errOut, err)
	}

	i, err := ref.Resolve(v)
	if err != nil {
		return reportError(errOut, err)
	}

	task, err := v.Toggle(ctx, i)
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		if task.Done {
			fmt.Fprintln(out, "done")
		} else {
			fmt.Fprintln(out, "undone")
		}
	}
	return exitcode.Success
}
