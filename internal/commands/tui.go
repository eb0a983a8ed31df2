package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todofs/internal/config"
	"todofs/internal/exitcode"
	"todofs/internal/service"
	"todofs/internal/ui"
)

func init() {
	Register(&TuiCmd{})
}

// TuiCmd implements the interactive mode.
type TuiCmd struct {
	listName string
}

func (c *TuiCmd) Name() string      { return "tui" }
func (c *TuiCmd) Aliases() []string { return []string{"ui"} }
func (c *TuiCmd) Synopsis() string  { return "Browse and edit a list interactively" }
func (c *TuiCmd) Usage() string     { return "todofs tui [--list <list-name>]" }
func (c *TuiCmd) NeedsStore() bool  { return true }

func (c *TuiCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *TuiCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	v, err := loadView(ctx, svc, c.listName)
	if err != nil {
		return reportError(errOut, err)
	}

	if err := ui.Run(ctx, v, out); err != nil {
		if errors.Is(err, ui.ErrNotTTY) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return reportError(errOut, err)
	}
	return exitcode.Success
}
