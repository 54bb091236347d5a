package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todoctl help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todoctl                                           Show all lists
  todoctl lists [common flags]
  todoctl list [common flags] <list>                Show a list's tasks, highest priority first
  todoctl createlist [common flags] <title...>
  todoctl addlist [common flags] <title...>
  todoctl rmlist [common flags] <list>
  todoctl add [common flags] --list <list> [--due YYYY-MM-DD] [--priority p] <description...>
  todoctl edit [common flags] --list <list> [--description d] [--due YYYY-MM-DD] [--priority p] <n>
  todoctl done [common flags] --list <list> <n>
  todoctl rm [common flags] --list <list> <n>
  todoctl ui [common flags]                         Interactive two-screen UI
  todoctl help
  todoctl version

<list> is a list id or title. <n> is the row number shown by "todoctl list".
Priorities: high, medium, low.

Common flags:
  --config <dir>     Override config directory
  --base-url <url>   Override the backend address
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr
`
