package commands

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/logging"
	"todoctl/internal/service"
	"todoctl/internal/tui"
)

func init() {
	Register(&UiCmd{})
}

// UiCmd implements the ui command.
type UiCmd struct {
	in io.Reader
}

// SetInput replaces stdin (for testing).
func (c *UiCmd) SetInput(in io.Reader) {
	c.in = in
}

func (c *UiCmd) Name() string       { return "ui" }
func (c *UiCmd) Aliases() []string  { return []string{"tui"} }
func (c *UiCmd) Synopsis() string   { return "Browse and edit lists interactively" }
func (c *UiCmd) Usage() string      { return "todoctl ui [common flags]" }
func (c *UiCmd) NeedsBackend() bool { return true }

func (c *UiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UiCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	in := c.in
	if in == nil {
		in = os.Stdin
	}

	// The UI owns the terminal; logs go to a file with --debug and nowhere otherwise.
	var logOut io.Writer = io.Discard
	if cfg.Debug {
		f, err := cfg.OpenLog()
		if err != nil {
			return fail(errOut, err)
		}
		defer f.Close()
		logOut = f
	}
	restore := logging.Redirect(ctx, logOut)
	defer restore()

	log := logging.FromContext(ctx)
	log.WithField("base_url", cfg.BaseURL).Debug("starting ui")
	err := tui.Run(ctx, svc, log, in, out)
	if errors.Is(err, tui.ErrNotTTY) {
		return fail(errOut, usageErrorf("%v", err))
	}
	if err != nil {
		return fail(errOut, err)
	}
	return exitcode.Success
}
