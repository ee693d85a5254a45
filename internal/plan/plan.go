// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/specialistvlad/stepgrid/internal/task"
)

// Plan is the format-agnostic result of loading one or more plan files.
type Plan struct {
	// Scheduler is nil when no file declared a scheduler block.
	Scheduler *Scheduler
	// Steps are kept in file order, then declaration order within a file.
	Steps []*Step
}

// Scheduler holds the raw expressions of the `scheduler` block. A nil
// expression means the attribute was omitted.
type Scheduler struct {
	Workers  hcl.Expression
	BaseCost hcl.Expression
	File     string
}

// Step is one `step` block.
type Step struct {
	Task      task.Task
	DependsOn []task.Task
	// Cost is nil when the step uses the default cost.
	Cost hcl.Expression
	File string
}

// Settings are the scalar knobs of a simulation run.
type Settings struct {
	Workers  int
	BaseCost int
}

// Resolved is a plan with every expression evaluated, ready to hand to the
// graph builder and the scheduler.
type Resolved struct {
	Settings
	Edges []task.Edge
	// Tasks lists every declared step, sorted, including isolated ones.
	Tasks []task.Task
	// Cost charges base cost plus rank, unless a step overrides it.
	Cost task.CostFunc
}
