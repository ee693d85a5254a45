package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/stepgrid/internal/ctxlog"
	"github.com/specialistvlad/stepgrid/internal/plan"
	"github.com/specialistvlad/stepgrid/internal/stepparse"
	"github.com/specialistvlad/stepgrid/internal/task"
)

// loadPlan reads the configured input and resolves it into edges, tasks and
// a cost function. HCL plans (a .hcl file or a directory) may override the
// worker count and base cost; text statements always use the flags.
func (a *App) loadPlan(ctx context.Context, in io.Reader) (*plan.Resolved, error) {
	logger := ctxlog.FromContext(ctx)
	defaults := plan.Settings{Workers: a.config.Workers, BaseCost: a.config.BaseCost}

	path := a.config.PlanPath
	if path == "" {
		logger.Debug("No plan path given, reading statements from input.")
		return resolveStatements(in, defaults)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan: %w", err)
	}

	if info.IsDir() || strings.HasSuffix(path, ".hcl") {
		logger.Debug("Loading HCL plan.", "path", path)
		p, err := plan.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		return p.Resolve(defaults)
	}

	logger.Debug("Loading statement file.", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan: %w", err)
	}
	defer f.Close()
	return resolveStatements(f, defaults)
}

func resolveStatements(r io.Reader, settings plan.Settings) (*plan.Resolved, error) {
	edges, err := stepparse.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse statements: %w", err)
	}
	return &plan.Resolved{
		Settings: settings,
		Edges:    edges,
		Cost:     task.AlphabetCost(settings.BaseCost),
	}, nil
}
