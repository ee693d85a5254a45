package scheduler

import (
	"testing"

	"github.com/specialistvlad/stepgrid/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_StateMachine(t *testing.T) {
	p := newPool(3)
	assert.True(t, p.allIdle())
	assert.Equal(t, []int{0, 1, 2}, p.idle())

	p.assign(1, 'B', 2)
	p.assign(0, 'A', 1)
	assert.False(t, p.allIdle())
	assert.Equal(t, []int{2}, p.idle())
	assert.True(t, p.inProgress('A'))
	assert.False(t, p.inProgress('C'))

	// Working(A, 1) -> Idle; Working(B, 2) -> Working(B, 1).
	done := p.work()
	require.Len(t, done, 1)
	assert.Equal(t, completion{worker: 0, task: 'A'}, done[0])
	assert.Equal(t, Idle{}, p.workers[0])
	assert.Equal(t, Working{Task: 'B', Remaining: 1}, p.workers[1])

	done = p.work()
	require.Len(t, done, 1)
	assert.Equal(t, task.Task('B'), done[0].task)
	assert.True(t, p.allIdle())
}

func TestPool_SimultaneousCompletionsByWorkerIndex(t *testing.T) {
	p := newPool(3)
	p.assign(0, 'Z', 1)
	p.assign(2, 'A', 1)
	p.assign(1, 'M', 1)

	done := p.work()
	require.Len(t, done, 3)
	assert.Equal(t, []completion{{0, 'Z'}, {1, 'M'}, {2, 'A'}}, done)
}

func TestPool_AssignToBusyWorkerPanics(t *testing.T) {
	p := newPool(1)
	p.assign(0, 'A', 5)
	assert.Panics(t, func() { p.assign(0, 'B', 1) })
}
