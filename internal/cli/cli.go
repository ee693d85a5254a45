package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/stepgrid/internal/app"
	"github.com/specialistvlad/stepgrid/internal/task"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("stepgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
StepGrid - Orders dependent steps and simulates running them on a worker pool.

Usage:
  stepgrid [options] [PLAN_PATH]

Arguments:
  PLAN_PATH
    Path to a .hcl file, a directory containing .hcl files, or a text file
    of "Step X must be finished before step Y can begin." statements.
    When omitted, statements are read from standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	planFlag := flagSet.String("plan", "", "Path to the plan file or directory.")
	pFlag := flagSet.String("p", "", "Path to the plan file or directory (shorthand).")
	workersFlag := flagSet.Int("workers", 5, "Number of simulated workers.")
	baseCostFlag := flagSet.Int("base-cost", task.DefaultBaseCost, "Fixed number of ticks added to every step's alphabet rank.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	eventsURLFlag := flagSet.String("events-url", "", "socket.io server URL to stream simulation events to. Empty is disabled.")
	eventsNamespaceFlag := flagSet.String("events-namespace", "/", "socket.io namespace used with -events-url.")
	eventsFileFlag := flagSet.String("events-file", "", "File to append simulation events to as JSON lines. '-' writes them to stderr.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *planFlag != "" {
		path = *planFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one plan path, got %d", flagSet.NArg())}
	}
	slog.Debug("Plan path determined.", "path", path)

	config, err := app.NewConfig(app.Config{
		PlanPath:        path,
		Workers:         *workersFlag,
		BaseCost:        *baseCostFlag,
		LogFormat:       strings.ToLower(*logFormatFlag),
		LogLevel:        strings.ToLower(*logLevelFlag),
		EventsURL:       *eventsURLFlag,
		EventsNamespace: *eventsNamespaceFlag,
		EventsFile:      *eventsFileFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
