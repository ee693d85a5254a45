package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/stepgrid/internal/ctxlog"
	"github.com/specialistvlad/stepgrid/internal/dag"
	"github.com/specialistvlad/stepgrid/internal/events"
	"github.com/specialistvlad/stepgrid/internal/scheduler"
	"github.com/specialistvlad/stepgrid/internal/task"
)

// Run executes the main application logic. Statements are read from in when
// no plan path is configured.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	resolved, err := a.loadPlan(ctx, in)
	if err != nil {
		return err
	}

	g := dag.Build(resolved.Edges, resolved.Tasks...)
	if err := g.DetectCycles(); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}
	a.logger.Debug("Dependency graph built.", "task_count", g.Len(), "roots", task.Join(g.Roots()))
	if g.Len() == 0 {
		a.logger.Warn("No tasks found in plan, nothing to schedule.")
	}

	order := scheduler.TopologicalOrder(ctx, g)

	bridges, closeAll, err := a.openPublishers(ctx)
	if err != nil {
		return err
	}
	defer closeAll()

	opts := make([]scheduler.Option, 0, len(bridges))
	for _, b := range bridges {
		opts = append(opts, scheduler.WithObserver(b))
	}

	a.logger.Info("Starting simulation.", "workers", resolved.Workers, "base_cost", resolved.BaseCost, "tasks", g.Len())
	res, err := scheduler.Simulate(ctx, g, resolved.Workers, resolved.Cost, opts...)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	a.logger.Info("Simulation finished.", "ticks", res.Ticks)

	for _, b := range bridges {
		b.Finish(res)
		if err := b.Err(); err != nil {
			a.logger.Warn("Some events could not be published.", "error", err)
		}
	}

	if _, err := fmt.Fprintln(a.outW, task.Join(order)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if _, err := fmt.Fprintf(a.outW, "%s %d\n", task.Join(res.Order), res.Ticks); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// openPublishers connects every configured event publisher and wraps each in
// a Bridge. The returned func closes them all.
func (a *App) openPublishers(ctx context.Context) ([]*events.Bridge, func(), error) {
	var pubs []events.Publisher
	closeAll := func() {
		for _, p := range pubs {
			if err := p.Close(); err != nil {
				a.logger.Warn("Failed to close event publisher.", "error", err)
			}
		}
	}

	if a.config.EventsFile != "" {
		if a.config.EventsFile == "-" {
			pubs = append(pubs, events.NewJSONLines(nopCloser{a.logW}))
		} else {
			f, err := os.OpenFile(a.config.EventsFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to open events file: %w", err)
			}
			pubs = append(pubs, events.NewJSONLines(f))
		}
	}

	if a.config.EventsURL != "" {
		sio, err := events.Dial(ctx, a.config.EventsURL, a.config.EventsNamespace)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to connect events publisher: %w", err)
		}
		pubs = append(pubs, sio)
	}

	bridges := make([]*events.Bridge, 0, len(pubs))
	if len(pubs) > 0 {
		runID := events.NewRunID()
		a.logger.Info("Publishing simulation events.", "run_id", runID, "publishers", len(pubs))
		for _, p := range pubs {
			bridges = append(bridges, events.NewBridge(ctx, p, runID))
		}
	}
	return bridges, closeAll, nil
}

// nopCloser keeps the shared log writer open when events are written to it.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
