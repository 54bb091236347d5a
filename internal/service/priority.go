package service

import (
	"fmt"
	"slices"
	"strings"
)

// Priority is the closed set of task priorities.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityOrder = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Priorities returns all priorities in display order.
func Priorities() []Priority {
	return slices.Clone(priorityOrder)
}

// Rank returns the index of p in display order, or -1 for an unknown value.
func (p Priority) Rank() int {
	return slices.Index(priorityOrder, p)
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

// Next cycles high -> medium -> low -> high. Unknown values become high.
func (p Priority) Next() Priority {
	return priorityOrder[(p.Rank()+1)%len(priorityOrder)]
}

// ParsePriority parses a priority name (case-insensitive, trimmed).
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: priority must be one of high, medium, low: %q", ErrInvalid, s)
	}
	return p, nil
}

// SortByPriority returns a copy of tasks ordered high, medium, low.
// The sort is stable: tasks of equal priority keep their source order.
// Unknown priorities rank -1 and therefore come first.
func SortByPriority(tasks []Task) []Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b Task) int {
		return a.Priority.Rank() - b.Priority.Rank()
	})
	return sorted
}
