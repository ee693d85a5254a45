// Package stepparse reads dependency statements of the form
//
//	Step C must be finished before step A can begin.
//
// and turns each into a task.Edge. It is the only place that knows about the
// text format; everything downstream works on edges.
package stepparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/specialistvlad/stepgrid/internal/task"
)

// ErrInvalidInput marks a statement that does not match the expected format.
var ErrInvalidInput = errors.New("unrecognized statement")

// statementRegex is compiled once and shared read-only by every parse.
var statementRegex = regexp.MustCompile(`^Step ([A-Z]) must be finished before step ([A-Z]) can begin\.$`)

// InvalidInputError reports the offending line. It wraps ErrInvalidInput.
type InvalidInputError struct {
	Line int
	Text string
}

func (e *InvalidInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, ErrInvalidInput, e.Text)
	}
	return fmt.Sprintf("%s: %q", ErrInvalidInput, e.Text)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// ParseLine parses a single statement. Surrounding whitespace is ignored.
func ParseLine(line string) (task.Edge, error) {
	text := strings.TrimSpace(line)
	m := statementRegex.FindStringSubmatch(text)
	if m == nil {
		return task.Edge{}, &InvalidInputError{Text: text}
	}
	// m[0] is the whole match.
	return task.Edge{Before: task.Task(m[1][0]), After: task.Task(m[2][0])}, nil
}

// Parse reads statements from r, one per line. Blank lines are skipped. The
// first malformed line aborts parsing with an *InvalidInputError.
func Parse(r io.Reader) ([]task.Edge, error) {
	var edges []task.Edge
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		edge, err := ParseLine(line)
		if err != nil {
			var inv *InvalidInputError
			if errors.As(err, &inv) {
				inv.Line = lineNo
			}
			return nil, err
		}
		edges = append(edges, edge)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read statements: %w", err)
	}
	return edges, nil
}
