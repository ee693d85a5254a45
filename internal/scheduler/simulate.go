package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/stepgrid/internal/ctxlog"
	"github.com/specialistvlad/stepgrid/internal/dag"
	"github.com/specialistvlad/stepgrid/internal/readyqueue"
	"github.com/specialistvlad/stepgrid/internal/task"
)

var (
	// ErrInvalidWorkers is returned when the pool would have no workers.
	ErrInvalidWorkers = errors.New("worker count must be at least 1")
	// ErrNilCost is returned when no cost function is supplied.
	ErrNilCost = errors.New("cost function is required")
	// ErrInvalidCost is returned when the cost function charges less than one
	// tick for a task.
	ErrInvalidCost = errors.New("task cost must be at least 1 tick")
)

// Result is the outcome of a simulation run.
type Result struct {
	// Order lists tasks in the order they completed.
	Order []task.Task
	// Ticks is the total number of ticks elapsed.
	Ticks int
}

// Simulate runs g on a pool of workers, charging cost(t) ticks for each task.
// See the package documentation for the tick protocol.
func Simulate(ctx context.Context, g *dag.Graph, workers int, cost task.CostFunc, opts ...Option) (*Result, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}
	if cost == nil {
		return nil, ErrNilCost
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := ctxlog.FromContext(ctx).With("workers", workers)
	logger.Debug("Simulation starting.", "tasks", g.Len(), "roots", task.Join(g.Roots()))

	p := newPool(workers)
	queue := readyqueue.New(g.Roots()...)
	completed := task.NewSet()
	order := make([]task.Task, 0, g.Len())
	tick := 0

	for !queue.Empty() || !p.allIdle() {
		// Assignment phase.
		for _, id := range p.idle() {
			t, ok := queue.Pop()
			if !ok {
				break
			}
			ticks := cost(t)
			if ticks < 1 {
				return nil, fmt.Errorf("%w: task %s costs %d", ErrInvalidCost, t, ticks)
			}
			p.assign(id, t, ticks)
			o.started(tick, id, t)
			logger.Debug("Task assigned.", "tick", tick, "workerID", id, "task", t.String(), "ticks", ticks)
		}

		// Work phase.
		done := p.work()
		for _, c := range done {
			completed.Add(c.task)
			order = append(order, c.task)
			o.completed(tick, c.worker, c.task)
			logger.Debug("Task completed.", "tick", tick, "workerID", c.worker, "task", c.task.String())
		}

		// Propagation phase.
		for _, c := range done {
			for _, next := range g.Successors(c.task) {
				if completed.Contains(next) || p.inProgress(next) || queue.Contains(next) {
					continue
				}
				if g.IsReady(next, completed) {
					queue.Push(next)
				}
			}
		}

		tick++
	}

	if len(order) < g.Len() {
		logger.Warn("Simulation finished without completing every task; the graph has a cycle.",
			"completed", len(order), "total", g.Len())
	}
	logger.Debug("Simulation finished.", "ticks", tick, "order", task.Join(order))

	return &Result{Order: order, Ticks: tick}, nil
}
