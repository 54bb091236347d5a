package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoctl/internal/config"
	"todoctl/internal/exitcode"
	"todoctl/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Only the fields given as flags
// change; the task is sent back as a full record.
type EditCmd struct {
	listName    string
	description string
	due         string
	priority    string
}

// SetListName sets the list name (for testing).
func (c *EditCmd) SetListName(name string) {
	c.listName = name
}

// SetFields sets the replacement values (for testing). Empty means unchanged.
func (c *EditCmd) SetFields(description, due, priority string) {
	c.description = description
	c.due = due
	c.priority = priority
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "todoctl edit [common flags] --list <list> [--description d] [--due YYYY-MM-DD] [--priority p] <n>"
}
func (c *EditCmd) NeedsBackend() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		return fail(errOut, err)
	}
	if c.description == "" && c.due == "" && c.priority == "" {
		fmt.Fprintln(errOut, "error: nothing to change (use --description, --due or --priority)")
		return exitcode.UserError
	}

	var priority service.Priority
	if c.priority != "" {
		if priority, err = service.ParsePriority(c.priority); err != nil {
			return fail(errOut, err)
		}
	}

	view, err := openTasks(ctx, svc, c.listName)
	if err != nil {
		return fail(errOut, err)
	}
	task, err := taskByNumber(view, num)
	if err != nil {
		return fail(errOut, err)
	}

	f, err := view.OpenEditForm(task.TaskID)
	if err != nil {
		return fail(errOut, err)
	}
	f.Edit(func(t *service.Task) {
		if c.description != "" {
			t.Description = strings.TrimSpace(c.description)
		}
		if c.due != "" {
			t.DueDate = c.due
		}
		if priority != "" {
			t.Priority = priority
		}
	})
	if err := f.Submit(ctx); err != nil {
		f.Cancel()
		return fail(errOut, err)
	}
	return ok(cfg, out)
}
