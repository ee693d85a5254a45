package scheduler

import "github.com/specialistvlad/stepgrid/internal/task"

// Status is the state of one simulated worker. It is either Idle or Working;
// the set of implementations is closed.
type Status interface {
	status()
}

// Idle is the status of a worker with nothing assigned.
type Idle struct{}

// Working is the status of a worker occupied by Task for Remaining more ticks.
type Working struct {
	Task      task.Task
	Remaining int
}

func (Idle) status()    {}
func (Working) status() {}

// completion records a task finishing on a given worker.
type completion struct {
	worker int
	task   task.Task
}

// pool is a fixed set of workers indexed 0..n-1.
type pool struct {
	workers []Status
}

func newPool(n int) *pool {
	workers := make([]Status, n)
	for i := range workers {
		workers[i] = Idle{}
	}
	return &pool{workers: workers}
}

// idle returns the indexes of idle workers in ascending order.
func (p *pool) idle() []int {
	var ids []int
	for i, st := range p.workers {
		if _, ok := st.(Idle); ok {
			ids = append(ids, i)
		}
	}
	return ids
}

func (p *pool) allIdle() bool {
	for _, st := range p.workers {
		if _, ok := st.(Working); ok {
			return false
		}
	}
	return true
}

// assign puts t on worker id for ticks ticks. The worker must be idle.
func (p *pool) assign(id int, t task.Task, ticks int) {
	if _, ok := p.workers[id].(Idle); !ok {
		panic("scheduler: assigning work to a busy worker")
	}
	p.workers[id] = Working{Task: t, Remaining: ticks}
}

// inProgress reports whether any worker is occupied by t.
func (p *pool) inProgress(t task.Task) bool {
	for _, st := range p.workers {
		if w, ok := st.(Working); ok && w.Task == t {
			return true
		}
	}
	return false
}

// work advances every busy worker by one tick and returns the tasks that
// finished, in ascending worker index.
func (p *pool) work() []completion {
	var done []completion
	for i, st := range p.workers {
		w, ok := st.(Working)
		if !ok {
			continue
		}
		w.Remaining--
		if w.Remaining == 0 {
			p.workers[i] = Idle{}
			done = append(done, completion{worker: i, task: w.Task})
			continue
		}
		p.workers[i] = w
	}
	return done
}
