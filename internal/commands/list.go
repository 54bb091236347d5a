package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/output"
	"todoctl/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command: the tasks of one list, highest
// priority first. Row numbers are the ones edit, done and rm accept.
type ListCmd struct{}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"show"} }
func (c *ListCmd) Synopsis() string   { return "List the tasks of a list" }
func (c *ListCmd) Usage() string      { return "todoctl list [common flags] <list>" }
func (c *ListCmd) NeedsBackend() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref := strings.TrimSpace(strings.Join(args, " "))
	if ref == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	view, err := openTasks(ctx, svc, ref)
	if err != nil {
		return fail(errOut, err)
	}

	// Print list section (even if empty)
	output.FormatListHeader(out, view.Title())
	tasks := view.Tasks()
	for i, task := range tasks {
		output.FormatTask(out, i+1, task)
	}
	if len(tasks) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}
