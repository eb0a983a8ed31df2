package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todofs/internal/config"
	"todofs/internal/exitcode"
	"todofs/internal/service"
	"todofs/internal/storage"
)

func init() {
	Register(&RmListCmd{})
}

// RmListCmd implements the rmlist command.
type RmListCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *RmListCmd) SetForce(force bool) {
	c.force = force
}

func (c *RmListCmd) Name() string      { return "rmlist" }
func (c *RmListCmd) Aliases() []string { return nil }
func (c *RmListCmd) Synopsis() string  { return "Delete a list and its tasks" }
func (c *RmListCmd) Usage() string     { return "todofs rmlist [--force] <list-name>" }
func (c *RmListCmd) NeedsStore() bool  { return true }

func (c *RmListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *RmListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}
	if err := storage.ValidateList(name); err != nil {
		return reportError(errOut, err)
	}

	defaultList, err := svc.DefaultList(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	// The default list can only be emptied, and only on purpose.
	if name == defaultList.Name && !c.force {
		fmt.Fprintln(errOut, "error: cannot delete default list (use --force to empty it)")
		return exitcode.UserError
	}

	if !c.force {
		tasks, err := svc.ListTasks(ctx, name)
		if err != nil {
			return reportError(errOut, err)
		}
		if len(tasks) > 0 {
			fmt.Fprintln(errOut, "error: list not empty (use --force)")
			return exitcode.UserError
		}
	}

	if err := svc.ClearList(ctx, name); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
