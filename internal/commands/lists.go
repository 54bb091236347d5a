package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/logging"
	"todoctl/internal/output"
	"todoctl/internal/service"
	"todoctl/internal/views"
)

func init() {
	Register(&ListsCmd{})
}

// ListsCmd implements the lists command. It is also what `todoctl` with no
// arguments runs.
type ListsCmd struct{}

func (c *ListsCmd) Name() string       { return "lists" }
func (c *ListsCmd) Aliases() []string  { return nil }
func (c *ListsCmd) Synopsis() string   { return "Print all lists" }
func (c *ListsCmd) Usage() string      { return "todoctl lists [common flags]" }
func (c *ListsCmd) NeedsBackend() bool { return true }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	view := views.NewListCollection(svc, logging.FromContext(ctx))
	if err := view.Load(ctx); err != nil {
		return fail(errOut, err)
	}

	lists := view.Lists()
	if len(lists) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no lists found")
		}
		return exitcode.Success
	}
	for _, list := range lists {
		output.FormatList(out, list)
	}
	return exitcode.Success
}
