package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the wire and input format of due dates.
const DateLayout = "2006-01-02"

// ID is an opaque record identifier.
// The backend may send it as a JSON string or number; the empty ID means
// "not yet saved" and is encoded as null.
type ID string

// IsZero reports whether the id is unset.
func (id ID) IsZero() bool { return id == "" }

func (id ID) String() string { return string(id) }

// MarshalJSON encodes numeric ids as JSON numbers so the backend receives the
// same shape it sends.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts null, strings and numbers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %s", data)
	}
	*id = ID(n.String())
	return nil
}

// Task represents a single task item.
type Task struct {
	TaskID      ID       `json:"taskId"`
	ListID      ID       `json:"listId"`
	Description string   `json:"description" validate:"required"`
	DueDate     string   `json:"dueDate" validate:"required,duedate"`
	Priority    Priority `json:"priority" validate:"required,oneof=high medium low"`
	IsComplete  bool     `json:"isComplete"`
}

// NewTask returns the blank template used when adding a task to a list.
func NewTask(listID ID, today time.Time) Task {
	return Task{
		ListID:   listID,
		DueDate:  today.Format(DateLayout),
		Priority: PriorityLow,
	}
}

// EntryName returns the description, the name uniqueness is checked on.
func (t Task) EntryName() string { return t.Description }

// EntryKey returns the task id.
func (t Task) EntryKey() ID { return t.TaskID }

// TodoList represents a to-do list.
type TodoList struct {
	ID           ID     `json:"id"`
	Title        string `json:"title" validate:"required"`
	Tasks        []Task `json:"tasks" validate:"dive"`
	NumCompleted int    `json:"numCompleted"`
}

// EntryName returns the title, the name uniqueness is checked on.
func (l TodoList) EntryName() string { return l.Title }

// EntryKey returns the list id.
func (l TodoList) EntryKey() ID { return l.ID }

// Remaining returns the number of open tasks as reported by the backend.
// It is not clamped: inconsistent backend data can make it negative.
func (l TodoList) Remaining() int {
	return len(l.Tasks) - l.NumCompleted
}

// Completed reports whether every task is done.
// A list without tasks is never completed.
func (l TodoList) Completed() bool {
	return len(l.Tasks) > 0 && len(l.Tasks) == l.NumCompleted
}

// ParseDueDate parses a due date in the layouts the backend is known to use.
func ParseDueDate(s string) (time.Time, error) {
	for _, layout := range []string{DateLayout, time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid due date: %q", s)
}
