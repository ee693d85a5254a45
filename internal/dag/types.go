package dag

import "github.com/specialistvlad/stepgrid/internal/task"

// Graph is a collection of tasks and their dependencies, representing a DAG.
// A Graph is immutable once Build returns, so it is safe to share between
// goroutines without locking.
type Graph struct {
	// nodes stores every task that appears in the input, keyed by identifier.
	nodes map[task.Task]*node
	// roots holds the tasks with no prerequisites, sorted ascending.
	roots []task.Task
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API.
type node struct {
	id task.Task
	// successors lists the tasks unlocked by this one, in edge order. It may
	// contain duplicates when the same edge was supplied more than once.
	successors []task.Task
	// prerequisites holds the tasks that must complete before this one.
	prerequisites task.Set
}
