// Package task defines the vocabulary shared by the graph, the scheduler and
// the input loaders: task identifiers, dependency edges and cost functions.
package task

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Task identifies a single unit of work. Identifiers are drawn from a small
// alphabet (uppercase letters in practice) and are ordered by code point.
type Task rune

// String returns the identifier as a one-character string.
func (t Task) String() string {
	return string(rune(t))
}

// Rank returns the 1-based position of the task within the uppercase
// alphabet (A=1, B=2, ...). Identifiers outside A-Z are ranked by their
// distance from 'A' as well, so callers should validate input first.
func (t Task) Rank() int {
	return int(t-'A') + 1
}

// Valid reports whether t is an uppercase ASCII letter.
func (t Task) Valid() bool {
	return t >= 'A' && t <= 'Z'
}

// Parse converts a one-character string into a Task.
func Parse(s string) (Task, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("task identifier %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	t := Task(r)
	if !t.Valid() {
		return 0, fmt.Errorf("task identifier %q must be an uppercase letter", s)
	}
	return t, nil
}

// Edge states that Before must complete before After may start.
type Edge struct {
	Before Task
	After  Task
}

func (e Edge) String() string {
	return fmt.Sprintf("%s->%s", e.Before, e.After)
}

// Join renders an order as a concatenated string of identifiers.
func Join(order []Task) string {
	var sb strings.Builder
	sb.Grow(len(order))
	for _, t := range order {
		sb.WriteRune(rune(t))
	}
	return sb.String()
}
