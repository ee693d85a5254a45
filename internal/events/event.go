package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Kind names an event. Kinds double as socket.io event names.
type Kind string

const (
	KindTaskStarted   Kind = "task_started"
	KindTaskCompleted Kind = "task_completed"
	KindRunFinished   Kind = "run_finished"
)

// Event is a single progress notification.
type Event struct {
	// RunID is shared by every event of one simulation run.
	RunID  string `json:"run_id"`
	Kind   Kind   `json:"kind"`
	Tick   int    `json:"tick"`
	Worker int    `json:"worker"`
	Task   string `json:"task,omitempty"`
	// Order and Ticks are only set on KindRunFinished.
	Order string `json:"order,omitempty"`
	Ticks int    `json:"ticks,omitempty"`
}

// Publisher delivers events somewhere.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// JSONLines writes each event as one line of JSON.
type JSONLines struct {
	mu  sync.Mutex
	enc *json.Encoder
	c   io.Closer
}

// NewJSONLines returns a publisher writing to w. If w is also an io.Closer it
// is closed by Close.
func NewJSONLines(w io.Writer) *JSONLines {
	j := &JSONLines{enc: json.NewEncoder(w)}
	if c, ok := w.(io.Closer); ok {
		j.c = c
	}
	return j
}

// Publish implements Publisher.
func (j *JSONLines) Publish(_ context.Context, ev Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.enc.Encode(ev); err != nil {
		return fmt.Errorf("failed to write %s event: %w", ev.Kind, err)
	}
	return nil
}

// Close implements Publisher.
func (j *JSONLines) Close() error {
	if j.c == nil {
		return nil
	}
	return j.c.Close()
}
