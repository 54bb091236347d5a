package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todoctl/internal/service"
)

func newInput(placeholder, value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	ti.CursorEnd()
	return ti
}

// listEditor holds the single title field of the create-list form.
type listEditor struct {
	title textinput.Model
}

func newListEditor() *listEditor {
	e := &listEditor{title: newInput("List title", "", 100)}
	e.title.Focus()
	return e
}

func (e *listEditor) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.title, cmd = e.title.Update(msg)
	return cmd
}

func (e *listEditor) apply(l *service.TodoList) {
	l.Title = strings.TrimSpace(e.title.Value())
}

func (e *listEditor) view() string {
	return labelStyle.Render("Title") + e.title.View()
}

// Task form fields in tab order.
const (
	fieldDescription = iota
	fieldDue
	fieldPriority
	fieldCount
)

// taskEditor holds the fields of the add/edit task form. Priority is not typed
// but cycled, so it can never hold an unknown value.
type taskEditor struct {
	description textinput.Model
	due         textinput.Model
	priority    service.Priority
	isComplete  bool
	focus       int
}

func newTaskEditor(t service.Task) *taskEditor {
	e := &taskEditor{
		description: newInput("Description", t.Description, 200),
		due:         newInput(service.DateLayout, t.DueDate, len(service.DateLayout)),
		priority:    t.Priority,
		isComplete:  t.IsComplete,
	}
	if !e.priority.Valid() {
		e.priority = service.PriorityLow
	}
	e.setFocus(fieldDescription)
	return e
}

func (e *taskEditor) setFocus(field int) {
	e.focus = (field + fieldCount) % fieldCount
	e.description.Blur()
	e.due.Blur()
	switch e.focus {
	case fieldDescription:
		e.description.Focus()
	case fieldDue:
		e.due.Focus()
	}
}

func (e *taskEditor) next() { e.setFocus(e.focus + 1) }
func (e *taskEditor) prev() { e.setFocus(e.focus - 1) }

func (e *taskEditor) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch e.focus {
	case fieldDescription:
		e.description, cmd = e.description.Update(msg)
	case fieldDue:
		e.due, cmd = e.due.Update(msg)
	case fieldPriority:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case " ", "right", "l":
				e.priority = e.priority.Next()
			case "left", "h":
				// Two steps forward is one step back in a cycle of three.
				e.priority = e.priority.Next().Next()
			}
		}
	}
	return cmd
}

func (e *taskEditor) apply(t *service.Task) {
	t.Description = strings.TrimSpace(e.description.Value())
	t.DueDate = strings.TrimSpace(e.due.Value())
	t.Priority = e.priority
	t.IsComplete = e.isComplete
}

func (e *taskEditor) view() string {
	var b strings.Builder
	b.WriteString(e.label("Description", fieldDescription) + e.description.View() + "\n")
	b.WriteString(e.label("Due", fieldDue) + e.due.View() + "\n")
	b.WriteString(e.label("Priority", fieldPriority) + e.priorityView())
	return b.String()
}

// priorityView shows every priority with the selected one bracketed.
func (e *taskEditor) priorityView() string {
	opts := make([]string, 0, 3)
	for _, p := range service.Priorities() {
		if p == e.priority {
			opts = append(opts, "["+string(p)+"]")
			continue
		}
		opts = append(opts, " "+string(p)+" ")
	}
	row := strings.Join(opts, " ")
	if e.focus == fieldPriority {
		return focusStyle.Render(row)
	}
	return row
}

func (e *taskEditor) label(name string, field int) string {
	if e.focus == field {
		return labelStyle.Render(focusStyle.Render("> " + name))
	}
	return labelStyle.Render("  " + name)
}
