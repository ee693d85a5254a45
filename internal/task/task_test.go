package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("C")
	require.NoError(t, err)
	assert.Equal(t, Task('C'), got)

	for _, bad := range []string{"", "AB", "c", "1", "é"} {
		_, err := Parse(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestRankAndString(t *testing.T) {
	assert.Equal(t, 1, Task('A').Rank())
	assert.Equal(t, 26, Task('Z').Rank())
	assert.Equal(t, "Q", Task('Q').String())
	assert.Equal(t, "C->A", Edge{Before: 'C', After: 'A'}.String())
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "CABDFE", Join([]Task{'C', 'A', 'B', 'D', 'F', 'E'}))
}

func TestCostFuncs(t *testing.T) {
	t.Run("alphabet cost", func(t *testing.T) {
		cost := AlphabetCost(DefaultBaseCost)
		assert.Equal(t, 61, cost('A'))
		assert.Equal(t, 86, cost('Z'))
		assert.Equal(t, 3, AlphabetCost(0)('C'))
	})

	t.Run("constant cost", func(t *testing.T) {
		cost := ConstantCost(1)
		assert.Equal(t, 1, cost('A'))
		assert.Equal(t, 1, cost('Z'))
	})

	t.Run("overrides fall back", func(t *testing.T) {
		cost := WithOverrides(AlphabetCost(0), map[Task]int{'B': 10})
		assert.Equal(t, 1, cost('A'))
		assert.Equal(t, 10, cost('B'))
	})
}
