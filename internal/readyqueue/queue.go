// Package readyqueue holds the set of tasks whose prerequisites are satisfied
// but which have not started yet. The queue keeps its members ordered on
// insertion, so Pop always yields the lexicographically smallest task even
// when a smaller task arrives after larger ones were queued.
package readyqueue

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/specialistvlad/stepgrid/internal/task"
)

// byIdentifier orders tasks by code point.
var byIdentifier utils.Comparator = func(a, b interface{}) int {
	return int(a.(task.Task)) - int(b.(task.Task))
}

// Queue is an ordered set of ready tasks. Inserting a task that is already
// queued is a no-op. The zero value is not usable; call New.
type Queue struct {
	set *treeset.Set
}

// New returns a queue seeded with tasks.
func New(tasks ...task.Task) *Queue {
	q := &Queue{set: treeset.NewWith(byIdentifier)}
	for _, t := range tasks {
		q.Push(t)
	}
	return q
}

// Push inserts t. It reports whether t was newly added.
func (q *Queue) Push(t task.Task) bool {
	if q.set.Contains(t) {
		return false
	}
	q.set.Add(t)
	return true
}

// Pop removes and returns the smallest queued task. The second return value
// is false when the queue is empty.
func (q *Queue) Pop() (task.Task, bool) {
	it := q.set.Iterator()
	if !it.First() {
		return 0, false
	}
	t := it.Value().(task.Task)
	q.set.Remove(t)
	return t, true
}

// Peek returns the smallest queued task without removing it.
func (q *Queue) Peek() (task.Task, bool) {
	it := q.set.Iterator()
	if !it.First() {
		return 0, false
	}
	return it.Value().(task.Task), true
}

// Contains reports whether t is queued.
func (q *Queue) Contains(t task.Task) bool {
	return q.set.Contains(t)
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	return q.set.Size()
}

// Empty reports whether nothing is queued.
func (q *Queue) Empty() bool {
	return q.set.Empty()
}

// Tasks returns the queued tasks in ascending order without removing them.
func (q *Queue) Tasks() []task.Task {
	values := q.set.Values()
	out := make([]task.Task, len(values))
	for i, v := range values {
		out[i] = v.(task.Task)
	}
	return out
}
