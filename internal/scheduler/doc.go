// Package scheduler turns a dependency graph into execution orders.
//
// # Two Traversals
//
// TopologicalOrder models a single consumer: it repeatedly takes the
// lexicographically smallest ready task, so the result is the one valid
// topological order that always prefers smaller identifiers.
//
// Simulate models a fixed pool of workers stepping through discrete ticks.
// It reports the order in which tasks complete and the number of ticks the
// whole graph takes. Workers are a scheduling abstraction: the simulation runs
// on the caller's goroutine and never blocks.
//
// # Tick Protocol
//
// Every tick runs three phases in strict order:
//
//  1. Assignment: idle workers, lowest index first, take the smallest ready task.
//  2. Work: every busy worker spends one tick; workers that finish go idle and
//     their tasks complete in ascending worker index.
//  3. Propagation: successors of the tasks completed this tick that are now
//     ready join the queue.
//
// A task unlocked during a tick's propagation phase is therefore assignable no
// earlier than the next tick's assignment phase. The run ends once nothing is
// queued and every worker is idle.
//
// # Determinism
//
// Given the same graph, worker count and cost function both traversals always
// produce the same output. Ties are broken by task identifier (ready queue)
// and worker index (simultaneous completions), never by map iteration order.
package scheduler
