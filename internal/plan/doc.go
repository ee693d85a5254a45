// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package plan loads declarative scheduling plans written in HCL.
//
// A plan is one file or a directory tree of *.hcl files. Every file may hold
// any number of `step` blocks and the whole plan may hold at most one
// `scheduler` block:
//
//	scheduler {
//	  workers   = 5
//	  base_cost = 60
//	}
//
//	step "A" {
//	  depends_on = ["C"]
//	  cost       = base_cost + 5
//	}
//
// Loading only parses and validates structure. Expressions are kept raw and
// evaluated by Resolve, once the effective base cost is known, so that a
// step's `cost` can refer to `base_cost` no matter where the scheduler block
// or the CLI flag set it.
package plan
