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
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todofs help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %-56s %s\n", "todofs", "List tasks in the default list")
	for _, cmd := range DefaultRegistry.All() {
		usage := cmd.Usage()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			usage += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "  %-56s %s\n", usage, cmd.Synopsis())
	}
	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
A <ref> is a task number as printed by list, or the task's exact name.

Common flags:
  --config <dir>   Override config directory
  --root <dir>     Override storage root
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
