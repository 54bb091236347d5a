package commands

import (
	"context"
	"flag"
	"io"

	"todoctl/internal/config"
	"todoctl/internal/service"
	"todoctl/internal/views"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *DoneCmd) SetListName(name string) {
	c.listName = name
}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string   { return "Mark a task completed" }
func (c *DoneCmd) Usage() string      { return "todoctl done [common flags] --list <list> <n>" }
func (c *DoneCmd) NeedsBackend() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
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
	if task.IsComplete {
		return fail(errOut, views.ErrTaskComplete)
	}

	// Completion is an edit of the full record.
	task.IsComplete = true
	if err := view.EditTask(ctx, task); err != nil {
		return fail(errOut, err)
	}
	return ok(cfg, out)
}
