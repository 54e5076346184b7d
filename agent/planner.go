//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

package agent

import (
	"context"
	"fmt"

	"trpc.group/trpc-go/fitagent/log"
	"trpc.group/trpc-go/fitagent/memory"
	"trpc.group/trpc-go/fitagent/model"
)

var _ Agent = (*Planner)(nil)

// Planner analyzes the task and coordinates the workflow.
type Planner struct {
	model  model.Model
	memory memory.Service
}

// NewPlanner creates a Planner.
func NewPlanner(m model.Model, mem memory.Service) *Planner {
	return &Planner{model: m, memory: mem}
}

// Name implements Agent.
func (p *Planner) Name() string {
	return NamePlanner
}

// Execute records the task in shared state, asks the model for a plan, and
// logs the plan to the planner's output trace.
func (p *Planner) Execute(ctx context.Context, task string) (string, error) {
	p.memory.SetTask(task)

	prompt := fmt.Sprintf(plannerPromptTemplate, task, contextSummary(p.memory, NamePlanner))
	response, err := p.model.Complete(ctx, prompt)
	if err != nil {
		log.Warnf("planner: model failed, substituting fallback response: %v", err)
		response = plannerFallback
	}

	p.memory.AddAgentOutput(NamePlanner, response, "planning")
	return response, nil
}
