package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/form"
	"todoctl/internal/logging"
	"todoctl/internal/service"
	"todoctl/internal/views"
)

func init() {
	Register(&CreateListCmd{})
}

// CreateListCmd implements the createlist command.
type CreateListCmd struct{}

func (c *CreateListCmd) Name() string       { return "createlist" }
func (c *CreateListCmd) Aliases() []string  { return []string{"addlist"} }
func (c *CreateListCmd) Synopsis() string   { return "Create a new list" }
func (c *CreateListCmd) Usage() string      { return "todoctl createlist [common flags] <title...>" }
func (c *CreateListCmd) NeedsBackend() bool { return true }

func (c *CreateListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CreateListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	// Uniqueness is checked against the current lists.
	view := views.NewListCollection(svc, logging.FromContext(ctx))
	if err := view.Load(ctx); err != nil {
		return fail(errOut, err)
	}

	if err := view.CreateList(ctx, title); err != nil {
		if errors.Is(err, form.ErrNotUnique) {
			fmt.Fprintf(errOut, "error: list already exists: %s\n", title)
			return exitcode.UserError
		}
		return fail(errOut, err)
	}
	return ok(cfg, out)
}
