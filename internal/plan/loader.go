// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file turns HCL source into a Plan. It deliberately stops short of
// evaluating attribute values: it only checks that blocks and attributes are
// where they belong, that step labels are task identifiers, and that every
// dependency names a declared step.

package plan

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/stepgrid/internal/ctxlog"
	"github.com/specialistvlad/stepgrid/internal/fsutil"
	"github.com/specialistvlad/stepgrid/internal/task"
)

// hclPlanFile represents the top-level structure of a plan file for decoding.
type hclPlanFile struct {
	Schedulers []*hclScheduler `hcl:"scheduler,block"`
	Steps      []*hclStep      `hcl:"step,block"`
}

type hclScheduler struct {
	Body hcl.Body `hcl:",remain"`
}

type hclStep struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

var schedulerBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "workers"},
		{Name: "base_cost"},
	},
}

var stepBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "depends_on"},
		{Name: "cost"},
	},
}

// Load finds and parses all HCL files under path into a Plan.
func Load(ctx context.Context, path string) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading plan from path", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find plan files in %s: %w", path, err)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl plan files found in path, returning empty plan", "path", path)
		return &Plan{}, nil
	}

	parser := hclparse.NewParser()
	p := &Plan{}
	for _, file := range files {
		if err := p.addFile(file, parser); err != nil {
			return nil, err
		}
	}

	if diags := p.checkDependencies(); diags.HasErrors() {
		return nil, fmt.Errorf("invalid plan: %w", diags)
	}

	logger.Debug("Plan loaded.", "files", len(files), "steps", len(p.Steps))
	return p, nil
}

// addFile parses a single HCL file and merges its blocks into p.
func (p *Plan) addFile(filePath string, parser *hclparse.Parser) error {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsed hclPlanFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	for _, block := range parsed.Schedulers {
		sched, diags := p.newScheduler(block, filePath)
		if diags.HasErrors() {
			return fmt.Errorf("error parsing scheduler in file %s: %w", filePath, diags)
		}
		p.Scheduler = sched
	}

	for _, block := range parsed.Steps {
		step, diags := p.newStep(block, filePath)
		if diags.HasErrors() {
			return fmt.Errorf("error parsing step in file %s: %w", filePath, diags)
		}
		p.Steps = append(p.Steps, step)
	}

	return nil
}

func (p *Plan) newScheduler(block *hclScheduler, filePath string) (*Scheduler, hcl.Diagnostics) {
	if p.Scheduler != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Duplicate \"scheduler\" block",
			Detail:   fmt.Sprintf("Only one \"scheduler\" block is allowed; another was declared in %s.", p.Scheduler.File),
			Subject:  block.Body.MissingItemRange().Ptr(),
		}}
	}

	content, diags := block.Body.Content(schedulerBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	sched := &Scheduler{File: filePath}
	if attr, ok := content.Attributes["workers"]; ok {
		sched.Workers = attr.Expr
	}
	if attr, ok := content.Attributes["base_cost"]; ok {
		sched.BaseCost = attr.Expr
	}
	return sched, diags
}

func (p *Plan) newStep(block *hclStep, filePath string) (*Step, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	id, err := task.Parse(block.Name)
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid step name",
			Detail:   err.Error(),
			Subject:  block.Body.MissingItemRange().Ptr(),
		})
	}

	for _, existing := range p.Steps {
		if existing.Task == id {
			return nil, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate step",
				Detail:   fmt.Sprintf("Step %q was already declared in %s.", block.Name, existing.File),
				Subject:  block.Body.MissingItemRange().Ptr(),
			})
		}
	}

	content, contentDiags := block.Body.Content(stepBodySchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return nil, diags
	}

	step := &Step{Task: id, File: filePath}

	if attr, ok := content.Attributes["depends_on"]; ok {
		deps, depDiags := parseDependsOn(attr)
		diags = append(diags, depDiags...)
		step.DependsOn = deps
	}
	if attr, ok := content.Attributes["cost"]; ok {
		step.Cost = attr.Expr
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return step, diags
}

// checkDependencies verifies that every depends_on entry names a declared step.
func (p *Plan) checkDependencies() hcl.Diagnostics {
	declared := task.NewSet()
	for _, s := range p.Steps {
		declared.Add(s.Task)
	}

	var diags hcl.Diagnostics
	for _, s := range p.Steps {
		for _, dep := range s.DependsOn {
			if declared.Contains(dep) {
				continue
			}
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Reference to undeclared step",
				Detail:   fmt.Sprintf("Step %q in %s depends on %q, which is not declared.", s.Task, s.File, dep),
			})
		}
	}
	return diags
}
