package commands

import (
	"context"
	"flag"
	"io"

	"todofs/internal/config"
	"todofs/internal/exitcode"
	"todofs/internal/output"
	"todofs/internal/service"
)

func init() {
	Register(&ListsCmd{})
}

// ListsCmd implements the lists command.
type ListsCmd struct{}

func (c *ListsCmd) Name() string      { return "lists" }
func (c *ListsCmd) Aliases() []string { return nil }
func (c *ListsCmd) Synopsis() string  { return "Print all lists" }
func (c *ListsCmd) Usage() string     { return "todofs lists [common flags]" }
func (c *ListsCmd) NeedsStore() bool  { return true }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	lists, err := svc.ListLists(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	for _, list := range lists {
		output.FormatListName(out, list)
	}

	return exitcode.Success
}
