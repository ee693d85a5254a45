package scheduler

import "github.com/specialistvlad/stepgrid/internal/task"

// Observer receives simulation events synchronously, in protocol order. Ticks
// are 0-based; a completion reported at tick k means the run lasts at least
// k+1 ticks.
type Observer interface {
	TaskStarted(tick, worker int, t task.Task)
	TaskCompleted(tick, worker int, t task.Task)
}

// Option configures a simulation run.
type Option func(*options)

type options struct {
	observers []Observer
}

// WithObserver registers o to receive events. It may be given more than once.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observers = append(opts.observers, o)
		}
	}
}

func (o *options) started(tick, worker int, t task.Task) {
	for _, obs := range o.observers {
		obs.TaskStarted(tick, worker, t)
	}
}

func (o *options) completed(tick, worker int, t task.Task) {
	for _, obs := range o.observers {
		obs.TaskCompleted(tick, worker, t)
	}
}
