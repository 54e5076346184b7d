//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package agent implements the LLM agent roles of the fitness assistant.
//
// Three specialized agents (planner, research, writer) cooperate through the
// shared memory store; a fourth single agent handles everything in one call
// and serves as the evaluation baseline. Every agent substitutes a canned
// fallback response when the model fails, so a flaky provider degrades a
// single answer instead of aborting an evaluation run.
package agent

import (
	"context"

	"trpc.group/trpc-go/fitagent/tool"
)

// Agent role names as they appear in the shared output log.
const (
	NamePlanner  = "planner"
	NameResearch = "research"
	NameWriter   = "writer"
	NameSingle   = "single_agent"
)

// Agent executes one role of the workflow for a task.
type Agent interface {
	// Name returns the agent's role name.
	Name() string
	// Execute runs the agent's role for task and returns its output.
	// Model failures are degraded to a fallback response, not returned;
	// an error indicates the agent could not record its work at all.
	Execute(ctx context.Context, task string) (string, error)
}

// Toolset names the deterministic tools available to agents explicitly,
// so call sites never reach into a tool list by index.
type Toolset struct {
	Calculator      tool.Tool
	WebSearch       tool.Tool
	FitnessResearch tool.Tool
}

// All returns the tools in a stable order for prompt rendering.
func (t Toolset) All() []tool.Tool {
	return []tool.Tool{t.Calculator, t.WebSearch, t.FitnessResearch}
}
