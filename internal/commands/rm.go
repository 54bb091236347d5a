package commands

import (
	"context"
	"flag"
	"io"

	"todoctl/internal/config"
	"todoctl/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Completed tasks can be removed too.
type RmCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *RmCmd) SetListName(name string) {
	c.listName = name
}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "todoctl rm [common flags] --list <list> <n>" }
func (c *RmCmd) NeedsBackend() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		return fail(errOut, err)
	}

	view, err := openTasks(ctx, svc, c.listName)
	if err != nil {
		return fail(errOut, err)
	}
	task, err := taskByNumber(view, num)
	if err != nil {
		return fail(errOut, err)
	}

	if err := view.DeleteTask(ctx, task.TaskID); err != nil {
		return fail(errOut, err)
	}
	return ok(cfg, out)
}
