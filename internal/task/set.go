package task

import "sort"

// Set is an unordered collection of tasks.
type Set map[Task]struct{}

// NewSet returns a set holding the given tasks.
func NewSet(tasks ...Task) Set {
	s := make(Set, len(tasks))
	for _, t := range tasks {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts t into the set.
func (s Set) Add(t Task) {
	s[t] = struct{}{}
}

// Contains reports whether t is in the set. A nil set contains nothing.
func (s Set) Contains(t Task) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []Task {
	out := make([]Task, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	Sort(out)
	return out
}

// Sort orders tasks ascending by identifier, in place.
func Sort(tasks []Task) {
	sort.Slice(tasks, func(i, j int) bool { return tasks[i] < tasks[j] })
}
