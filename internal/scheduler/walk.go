package scheduler

import (
	"context"

	"github.com/specialistvlad/stepgrid/internal/ctxlog"
	"github.com/specialistvlad/stepgrid/internal/dag"
	"github.com/specialistvlad/stepgrid/internal/readyqueue"
	"github.com/specialistvlad/stepgrid/internal/task"
)

// TopologicalOrder walks g with a single consumer, always taking the smallest
// ready task next. Every task reachable from the roots appears exactly once.
func TopologicalOrder(ctx context.Context, g *dag.Graph) []task.Task {
	logger := ctxlog.FromContext(ctx)

	queue := readyqueue.New(g.Roots()...)
	visited := task.NewSet()
	order := make([]task.Task, 0, g.Len())

	for {
		current, ok := queue.Pop()
		if !ok {
			break
		}
		visited.Add(current)
		order = append(order, current)

		for _, next := range g.Successors(current) {
			if visited.Contains(next) || !g.IsReady(next, visited) {
				continue
			}
			queue.Push(next)
		}
		logger.Debug("Walk visited task.", "task", current.String(), "queued", task.Join(queue.Tasks()))
	}

	if len(order) < g.Len() {
		logger.Warn("Walk finished without visiting every task; the graph has a cycle.",
			"visited", len(order), "total", g.Len())
	}
	return order
}
