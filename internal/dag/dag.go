package dag

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/stepgrid/internal/task"
)

// ErrCycle is returned by DetectCycles when the graph is not acyclic.
var ErrCycle = errors.New("dependency cycle detected")

// Build constructs a Graph from edges. Duplicate edges are idempotent.
// Isolated lists extra tasks that take part in no edge; they are registered
// as roots unless some edge names them as a dependent.
func Build(edges []task.Edge, isolated ...task.Task) *Graph {
	g := &Graph{nodes: make(map[task.Task]*node)}
	dependent := task.NewSet()

	for _, e := range edges {
		before := g.ensure(e.Before)
		after := g.ensure(e.After)
		before.successors = append(before.successors, e.After)
		after.prerequisites.Add(e.Before)
		dependent.Add(e.After)
	}
	for _, t := range isolated {
		g.ensure(t)
	}

	for id := range g.nodes {
		if !dependent.Contains(id) {
			g.roots = append(g.roots, id)
		}
	}
	task.Sort(g.roots)

	return g
}

func (g *Graph) ensure(id task.Task) *node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &node{id: id, prerequisites: task.NewSet()}
	g.nodes[id] = n
	return n
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Has reports whether the graph knows about t.
func (g *Graph) Has(t task.Task) bool {
	_, ok := g.nodes[t]
	return ok
}

// Tasks returns every task in the graph, sorted ascending.
func (g *Graph) Tasks() []task.Task {
	out := make([]task.Task, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	task.Sort(out)
	return out
}

// Roots returns the tasks that are eligible at time zero, sorted ascending.
func (g *Graph) Roots() []task.Task {
	out := make([]task.Task, len(g.roots))
	copy(out, g.roots)
	return out
}

// Successors returns the distinct tasks unlocked by t, sorted ascending.
// Unknown tasks have no successors.
func (g *Graph) Successors(t task.Task) []task.Task {
	n, ok := g.nodes[t]
	if !ok {
		return nil
	}
	return task.NewSet(n.successors...).Sorted()
}

// Prerequisites returns the tasks t waits on, sorted ascending.
func (g *Graph) Prerequisites(t task.Task) []task.Task {
	n, ok := g.nodes[t]
	if !ok {
		return nil
	}
	return n.prerequisites.Sorted()
}

// IsReady reports whether every prerequisite of t is in satisfied. A task
// with no recorded prerequisites is always ready.
func (g *Graph) IsReady(t task.Task, satisfied task.Set) bool {
	n, ok := g.nodes[t]
	if !ok {
		return true
	}
	for p := range n.prerequisites {
		if !satisfied.Contains(p) {
			return false
		}
	}
	return true
}

// DetectCycles checks the graph for any cycles. It returns an error wrapping
// ErrCycle and naming the first task found on a cycle. Tasks are visited in
// ascending order so the reported task is stable between runs.
func (g *Graph) DetectCycles() error {
	// permanent: fully explored and known to be off any cycle.
	// temporary: on the current DFS path.
	permanent := task.NewSet()
	temporary := task.NewSet()

	var visit func(id task.Task) error
	visit = func(id task.Task) error {
		if permanent.Contains(id) {
			return nil
		}
		if temporary.Contains(id) {
			return fmt.Errorf("%w involving task '%s'", ErrCycle, id)
		}

		temporary.Add(id)
		for _, next := range g.Successors(id) {
			if err := visit(next); err != nil {
				return err
			}
		}
		delete(temporary, id)
		permanent.Add(id)

		return nil
	}

	for _, id := range g.Tasks() {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}
