package events

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/specialistvlad/stepgrid/internal/ctxlog"
	"github.com/specialistvlad/stepgrid/internal/scheduler"
	"github.com/specialistvlad/stepgrid/internal/task"
)

// Bridge implements scheduler.Observer by publishing every callback. Observer
// callbacks cannot fail, so publish errors are logged and collected; Err
// returns them once the run is over.
type Bridge struct {
	ctx   context.Context
	pub   Publisher
	runID string
	errs  []error
}

var _ scheduler.Observer = (*Bridge)(nil)

// NewRunID returns a fresh identifier for a simulation run.
func NewRunID() string {
	return uuid.NewString()
}

// NewBridge returns a Bridge publishing to pub. Every event carries runID.
func NewBridge(ctx context.Context, pub Publisher, runID string) *Bridge {
	return &Bridge{ctx: ctx, pub: pub, runID: runID}
}

// TaskStarted implements scheduler.Observer.
func (b *Bridge) TaskStarted(tick, worker int, t task.Task) {
	b.publish(Event{Kind: KindTaskStarted, Tick: tick, Worker: worker, Task: t.String()})
}

// TaskCompleted implements scheduler.Observer.
func (b *Bridge) TaskCompleted(tick, worker int, t task.Task) {
	b.publish(Event{Kind: KindTaskCompleted, Tick: tick, Worker: worker, Task: t.String()})
}

// Finish publishes the final result of a run.
func (b *Bridge) Finish(res *scheduler.Result) {
	b.publish(Event{Kind: KindRunFinished, Tick: res.Ticks, Order: task.Join(res.Order), Ticks: res.Ticks})
}

// Err returns every publish failure seen so far, joined.
func (b *Bridge) Err() error {
	return errors.Join(b.errs...)
}

func (b *Bridge) publish(ev Event) {
	ev.RunID = b.runID
	if err := b.pub.Publish(b.ctx, ev); err != nil {
		ctxlog.FromContext(b.ctx).Warn("Failed to publish event.", "kind", ev.Kind, "task", ev.Task, "error", err)
		b.errs = append(b.errs, err)
	}
}
