// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/stepgrid/internal/task"
)

// Resolve evaluates the plan's expressions. Values from the scheduler block
// take precedence over defaults; step cost expressions see the effective base
// cost as the variable `base_cost`.
func (p *Plan) Resolve(defaults Settings) (*Resolved, error) {
	settings := defaults
	var diags hcl.Diagnostics

	if p.Scheduler != nil {
		staticCtx := &hcl.EvalContext{}
		if p.Scheduler.Workers != nil {
			n, d := evalWholeNumber(p.Scheduler.Workers, staticCtx, "workers", 1)
			diags = append(diags, d...)
			settings.Workers = n
		}
		if p.Scheduler.BaseCost != nil {
			n, d := evalWholeNumber(p.Scheduler.BaseCost, staticCtx, "base_cost", 0)
			diags = append(diags, d...)
			settings.BaseCost = n
		}
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid scheduler block in %s: %w", p.Scheduler.File, diags)
		}
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"base_cost": cty.NumberIntVal(int64(settings.BaseCost)),
		},
	}

	overrides := make(map[task.Task]int)
	declared := task.NewSet()
	var edges []task.Edge
	for _, s := range p.Steps {
		declared.Add(s.Task)
		for _, dep := range s.DependsOn {
			edges = append(edges, task.Edge{Before: dep, After: s.Task})
		}
		if s.Cost == nil {
			continue
		}
		n, d := evalWholeNumber(s.Cost, evalCtx, "cost", 1)
		diags = append(diags, d...)
		overrides[s.Task] = n
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid step cost: %w", diags)
	}

	return &Resolved{
		Settings: settings,
		Edges:    edges,
		Tasks:    declared.Sorted(),
		Cost:     task.WithOverrides(task.AlphabetCost(settings.BaseCost), overrides),
	}, nil
}

// evalWholeNumber evaluates expr and converts the result to an int no
// smaller than atLeast.
func evalWholeNumber(expr hcl.Expression, evalCtx *hcl.EvalContext, name string, atLeast int) (int, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}

	invalid := func(detail string) hcl.Diagnostics {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Invalid %q value", name),
			Detail:   detail,
			Subject:  expr.Range().Ptr(),
		})
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, invalid(fmt.Sprintf("The %q attribute must be a number: %s.", name, err))
	}
	if num.IsNull() || !num.IsKnown() {
		return 0, invalid(fmt.Sprintf("The %q attribute must not be null.", name))
	}

	var n int
	if err := gocty.FromCtyValue(num, &n); err != nil {
		return 0, invalid(fmt.Sprintf("The %q attribute must be a whole number: %s.", name, err))
	}
	if n < atLeast {
		return 0, invalid(fmt.Sprintf("The %q attribute must be at least %d, got %d.", name, atLeast, n))
	}
	return n, diags
}

// parseDependsOn statically evaluates a depends_on list into task identifiers.
func parseDependsOn(attr *hcl.Attribute) ([]task.Task, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	invalid := func(detail string) hcl.Diagnostics {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid \"depends_on\" value",
			Detail:   detail,
			Subject:  attr.Expr.Range().Ptr(),
		})
	}

	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, invalid(fmt.Sprintf("The \"depends_on\" attribute must be a list of step names: %s.", err))
	}
	if list.IsNull() {
		return nil, diags
	}

	var names []string
	if err := gocty.FromCtyValue(list, &names); err != nil {
		return nil, invalid(err.Error())
	}

	deps := make([]task.Task, 0, len(names))
	for _, name := range names {
		dep, err := task.Parse(name)
		if err != nil {
			return nil, invalid(err.Error())
		}
		deps = append(deps, dep)
	}
	return deps, diags
}
