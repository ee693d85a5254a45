package plan

import (
	"testing"

	"github.com/specialistvlad/stepgrid/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CostExpressions(t *testing.T) {
	p, err := load(t, map[string]string{"main.hcl": `
scheduler {
  base_cost = 10 * 2
}

step "A" {
  cost = base_cost + 100
}

step "B" {
  cost = 7
}

step "C" {
  depends_on = ["A", "B"]
}
`})
	require.NoError(t, err)

	r, err := p.Resolve(Settings{Workers: 4, BaseCost: 60})
	require.NoError(t, err)
	assert.Equal(t, Settings{Workers: 4, BaseCost: 20}, r.Settings)
	assert.Equal(t, 120, r.Cost('A'))
	assert.Equal(t, 7, r.Cost('B'))
	assert.Equal(t, 23, r.Cost('C'), "steps without cost use base plus rank")
}

func TestResolve_CostSeesDefaultBase(t *testing.T) {
	p, err := load(t, map[string]string{"main.hcl": `step "A" { cost = base_cost }`})
	require.NoError(t, err)

	r, err := p.Resolve(Settings{Workers: 1, BaseCost: 42})
	require.NoError(t, err)
	assert.Equal(t, 42, r.Cost('A'))
}

func TestResolve_IsolatedStepsAreTasks(t *testing.T) {
	p, err := load(t, map[string]string{"main.hcl": `
step "Z" {}
step "M" {}
`})
	require.NoError(t, err)

	r, err := p.Resolve(Settings{Workers: 1, BaseCost: 0})
	require.NoError(t, err)
	assert.Empty(t, r.Edges)
	assert.Equal(t, []task.Task{'M', 'Z'}, r.Tasks)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "zero workers",
			src:     `scheduler { workers = 0 }`,
			wantErr: "must be at least 1, got 0",
		},
		{
			name:    "negative base cost",
			src:     `scheduler { base_cost = -1 }`,
			wantErr: "must be at least 0, got -1",
		},
		{
			name:    "fractional workers",
			src:     `scheduler { workers = 1.5 }`,
			wantErr: "must be a whole number",
		},
		{
			name:    "string workers",
			src:     `scheduler { workers = "many" }`,
			wantErr: "must be a number",
		},
		{
			name:    "scheduler cannot see base_cost",
			src:     `scheduler { workers = base_cost }`,
			wantErr: "invalid scheduler block",
		},
		{
			name:    "null cost",
			src:     `step "A" { cost = null }`,
			wantErr: "must not be null",
		},
		{
			name:    "zero cost",
			src:     `step "A" { cost = base_cost - base_cost }`,
			wantErr: "invalid step cost",
		},
		{
			name:    "unknown variable in cost",
			src:     `step "A" { cost = speed * 2 }`,
			wantErr: "Unknown variable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := load(t, map[string]string{"main.hcl": tt.src})
			require.NoError(t, err)

			_, err = p.Resolve(Settings{Workers: 1, BaseCost: 60})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
