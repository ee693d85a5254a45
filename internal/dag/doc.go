// Package dag holds the dependency graph the scheduler walks. A Graph is built
// once from a list of "must finish before" edges and is read-only afterwards:
// it records, for every task, the tasks it unlocks (successors) and the tasks
// it waits on (prerequisites), plus the set of roots that are eligible at
// time zero.
//
// Build does not validate acyclicity. Callers that accept untrusted input
// should call DetectCycles before scheduling; on a cyclic graph the tasks on
// the cycle never become ready and are silently left out of every order.
package dag
