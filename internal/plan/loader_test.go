package plan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/stepgrid/internal/ctxlog"
	"github.com/specialistvlad/stepgrid/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePlan lays files out under a fresh temporary directory and returns it.
func writePlan(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func load(t *testing.T, files map[string]string) (*Plan, error) {
	t.Helper()
	return Load(ctxlog.Discard(context.Background()), writePlan(t, files))
}

const referencePlan = `
scheduler {
  workers   = 2
  base_cost = 60
}

step "C" {}

step "A" {
  depends_on = ["C"]
}

step "F" {
  depends_on = ["C"]
}

step "B" {
  depends_on = ["A"]
}

step "D" {
  depends_on = ["A"]
}

step "E" {
  depends_on = ["B", "D", "F"]
}
`

func TestLoad_ReferencePlan(t *testing.T) {
	p, err := load(t, map[string]string{"main.hcl": referencePlan})
	require.NoError(t, err)
	require.NotNil(t, p.Scheduler)
	require.Len(t, p.Steps, 6)
	assert.Equal(t, task.Task('E'), p.Steps[5].Task)
	assert.Equal(t, []task.Task{'B', 'D', 'F'}, p.Steps[5].DependsOn)
	assert.Nil(t, p.Steps[0].Cost)

	r, err := p.Resolve(Settings{Workers: 5, BaseCost: 0})
	require.NoError(t, err)
	assert.Equal(t, Settings{Workers: 2, BaseCost: 60}, r.Settings)
	assert.Equal(t, []task.Task{'A', 'B', 'C', 'D', 'E', 'F'}, r.Tasks)

	want := []task.Edge{
		{Before: 'C', After: 'A'},
		{Before: 'C', After: 'F'},
		{Before: 'A', After: 'B'},
		{Before: 'A', After: 'D'},
		{Before: 'B', After: 'E'},
		{Before: 'D', After: 'E'},
		{Before: 'F', After: 'E'},
	}
	if diff := cmp.Diff(want, r.Edges); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 61, r.Cost('A'))
}

func TestLoad_MultipleFilesAndDirectories(t *testing.T) {
	p, err := load(t, map[string]string{
		"a.hcl":        `step "A" {}`,
		"nested/b.hcl": `step "B" { depends_on = ["A"] }`,
		"readme.md":    `not a plan`,
	})
	require.NoError(t, err)
	assert.Nil(t, p.Scheduler)
	require.Len(t, p.Steps, 2)

	r, err := p.Resolve(Settings{Workers: 3, BaseCost: 10})
	require.NoError(t, err)
	assert.Equal(t, Settings{Workers: 3, BaseCost: 10}, r.Settings, "defaults apply without a scheduler block")
	assert.Equal(t, []task.Edge{{Before: 'A', After: 'B'}}, r.Edges)
	assert.Equal(t, 12, r.Cost('B'))
}

func TestLoad_SingleFilePath(t *testing.T) {
	root := writePlan(t, map[string]string{"only.hcl": `step "Q" {}`})
	p, err := Load(ctxlog.Discard(context.Background()), filepath.Join(root, "only.hcl"))
	require.NoError(t, err)
	require.Len(t, p.Steps, 1)
	assert.Equal(t, task.Task('Q'), p.Steps[0].Task)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	p, err := load(t, map[string]string{"notes.txt": "nothing here"})
	require.NoError(t, err)
	assert.Empty(t, p.Steps)

	r, err := p.Resolve(Settings{Workers: 1, BaseCost: 60})
	require.NoError(t, err)
	assert.Empty(t, r.Edges)
	assert.Empty(t, r.Tasks)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "syntax error",
			files:   map[string]string{"main.hcl": `step "A" {`},
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown block",
			files:   map[string]string{"main.hcl": `task "A" {}`},
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "unknown step attribute",
			files:   map[string]string{"main.hcl": `step "A" { retries = 3 }`},
			wantErr: "Unsupported argument",
		},
		{
			name:    "lowercase step name",
			files:   map[string]string{"main.hcl": `step "a" {}`},
			wantErr: "Invalid step name",
		},
		{
			name:    "multi-letter step name",
			files:   map[string]string{"main.hcl": `step "AB" {}`},
			wantErr: "must be a single character",
		},
		{
			name: "duplicate step across files",
			files: map[string]string{
				"a.hcl": `step "A" {}`,
				"b.hcl": `step "A" {}`,
			},
			wantErr: "Duplicate step",
		},
		{
			name: "duplicate scheduler block",
			files: map[string]string{
				"a.hcl": `scheduler { workers = 1 }`,
				"b.hcl": `scheduler { workers = 2 }`,
			},
			wantErr: "Duplicate \"scheduler\" block",
		},
		{
			name:    "depends_on is not a list",
			files:   map[string]string{"main.hcl": `step "A" { depends_on = { x = 1 } }`},
			wantErr: "must be a list of step names",
		},
		{
			name:    "depends_on entry is not a task",
			files:   map[string]string{"main.hcl": `step "A" { depends_on = ["b"] }`},
			wantErr: "must be an uppercase letter",
		},
		{
			name:    "undeclared dependency",
			files:   map[string]string{"main.hcl": `step "A" { depends_on = ["Z"] }`},
			wantErr: "Reference to undeclared step",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.files)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(ctxlog.Discard(context.Background()), filepath.Join(t.TempDir(), "nope"))
	assert.ErrorContains(t, err, "failed to find plan files")
}
