package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/logging"
	"todoctl/internal/service"
	"todoctl/internal/views"
)

func init() {
	Register(&RmListCmd{})
}

// RmListCmd implements the rmlist command. Lists are deleted with their
// tasks and without confirmation.
type RmListCmd struct{}

func (c *RmListCmd) Name() string       { return "rmlist" }
func (c *RmListCmd) Aliases() []string  { return []string{"deletelist"} }
func (c *RmListCmd) Synopsis() string   { return "Delete a list" }
func (c *RmListCmd) Usage() string      { return "todoctl rmlist [common flags] <list>" }
func (c *RmListCmd) NeedsBackend() bool { return true }

func (c *RmListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref := strings.TrimSpace(strings.Join(args, " "))
	if ref == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	view := views.NewListCollection(svc, logging.FromContext(ctx))
	list, err := resolveList(ctx, view, ref)
	if err != nil {
		return fail(errOut, err)
	}

	if err := view.DeleteList(ctx, list.ID); err != nil {
		return fail(errOut, err)
	}
	return ok(cfg, out)
}
