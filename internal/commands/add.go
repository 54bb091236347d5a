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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	listName string
	due      string
	priority string
}

// SetListName sets the list name (for testing).
func (c *AddCmd) SetListName(name string) {
	c.listName = name
}

// SetDue sets the due date (for testing).
func (c *AddCmd) SetDue(due string) {
	c.due = due
}

// SetPriority sets the priority (for testing).
func (c *AddCmd) SetPriority(p string) {
	c.priority = p
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "todoctl add [common flags] --list <list> [--due YYYY-MM-DD] [--priority high|medium|low] <description...>"
}
func (c *AddCmd) NeedsBackend() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.StringVar(&c.due, "due", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	var priority service.Priority
	if c.priority != "" {
		p, err := service.ParsePriority(c.priority)
		if err != nil {
			return fail(errOut, err)
		}
		priority = p
	}

	view, err := openTasks(ctx, svc, c.listName)
	if err != nil {
		return fail(errOut, err)
	}

	// The form starts from the blank template: due today, low priority.
	f := view.OpenAddForm()
	f.Edit(func(t *service.Task) {
		t.Description = description
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
