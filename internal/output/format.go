// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todoctl/internal/service"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"

	// DisplayDateLayout renders due dates as M/D/YYYY.
	DisplayDateLayout = "1/2/2006"

	// CompletedMarker tags completed rows.
	CompletedMarker = "[done]"
)

// FormatList formats a row of the lists command.
// Format: "{ID:>4}  {TITLE}  {REMAINING} remaining[  [done]]\n"
func FormatList(w io.Writer, list service.TodoList) {
	fmt.Fprintf(w, "%4s  %s  %d remaining", list.ID, normalizeListTitle(list.Title), list.Remaining())
	if list.Completed() {
		fmt.Fprint(w, "  "+CompletedMarker)
	}
	fmt.Fprintln(w)
}

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {PRIORITY:<6}  {DUE:>10}  {DESCRIPTION}\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	check := "[ ]"
	if task.IsComplete {
		check = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %-6s  %10s  %s\n", num, check, task.Priority, FormatDue(task.DueDate), normalizeTitle(task.Description))
}

// FormatListHeader formats a list section header.
func FormatListHeader(w io.Writer, title string) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, normalizeListTitle(title))
	fmt.Fprintln(w, ListSeparator)
}

// FormatDue renders a due date as M/D/YYYY. Dates that do not parse are
// shown as received.
func FormatDue(due string) string {
	t, err := service.ParseDueDate(due)
	if err != nil {
		return due
	}
	return t.Format(DisplayDateLayout)
}

// normalizeTitle normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// normalizeListTitle normalizes a list title for display.
// Empty or whitespace-only titles become "(untitled)".
func normalizeListTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
