package task

// CostFunc returns the number of ticks a worker spends on a task.
type CostFunc func(Task) int

// DefaultBaseCost is the fixed per-task overhead of the reference domain.
const DefaultBaseCost = 60

// AlphabetCost charges base plus the task's alphabet rank, so with a base of
// 60 task A takes 61 ticks and task Z takes 86.
func AlphabetCost(base int) CostFunc {
	return func(t Task) int {
		return base + t.Rank()
	}
}

// ConstantCost charges the same number of ticks for every task.
func ConstantCost(ticks int) CostFunc {
	return func(Task) int {
		return ticks
	}
}

// WithOverrides consults overrides first and falls back to fallback for any
// task without an entry.
func WithOverrides(fallback CostFunc, overrides map[Task]int) CostFunc {
	if len(overrides) == 0 {
		return fallback
	}
	return func(t Task) int {
		if c, ok := overrides[t]; ok {
			return c
		}
		return fallback(t)
	}
}
