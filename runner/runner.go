//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package runner executes queries against the agent systems and captures
// per-run results for evaluation.
//
// Two runners share the RunResult shape: PipelineRunner drives the
// planner, research and writer agents in sequence, BaselineRunner drives
// the single agent. Both reset the shared memory before each query so no
// state leaks between runs, and both convert failures into an unsuccessful
// result instead of returning an error, so one bad query never aborts a
// whole evaluation sweep.
package runner

import (
	"context"
	"time"

	"trpc.group/trpc-go/fitagent/agent"
	"trpc.group/trpc-go/fitagent/log"
	"trpc.group/trpc-go/fitagent/memory"
	"trpc.group/trpc-go/fitagent/model"
)

// RunResult is one query's outcome, the unit the evaluation layer consumes.
type RunResult struct {
	Query        string                    `json:"query"`
	Success      bool                      `json:"success"`
	Response     string                    `json:"response"`
	ResponseTime float64                   `json:"response_time"`
	Trace        map[string][]memory.Entry `json:"trace,omitempty"`
	Error        string                    `json:"error,omitempty"`
}

// Runner processes one query end to end.
type Runner interface {
	Run(ctx context.Context, query string) RunResult
}

var _ Runner = (*PipelineRunner)(nil)

// PipelineRunner coordinates the planner, research and writer agents over
// the shared memory store. Stages run strictly in sequence; each stage
// reads its predecessors' outputs from the store.
type PipelineRunner struct {
	planner  agent.Agent
	research agent.Agent
	writer   agent.Agent
	memory   memory.Service
}

// NewPipeline builds a PipelineRunner with the three specialized agents
// wired to the given model, memory store and tools.
func NewPipeline(m model.Model, mem memory.Service, tools agent.Toolset) *PipelineRunner {
	return &PipelineRunner{
		planner:  agent.NewPlanner(m, mem),
		research: agent.NewResearch(m, mem, tools),
		writer:   agent.NewWriter(m, mem),
		memory:   mem,
	}
}

// Run resets the shared state and processes query through the three-stage
// workflow. The returned result carries the writer's final response and a
// snapshot of every agent's output trace.
func (r *PipelineRunner) Run(ctx context.Context, query string) RunResult {
	r.memory.Reset()
	r.memory.AddHistory(query, "user")

	start := time.Now()
	var response string
	for _, a := range []agent.Agent{r.planner, r.research, r.writer} {
		out, err := a.Execute(ctx, query)
		if err != nil {
			log.Errorf("pipeline: stage %s failed: %v", a.Name(), err)
			return failure(query, err, time.Since(start))
		}
		response = out
	}
	elapsed := time.Since(start)

	r.memory.AddHistory(response, "assistant")
	return RunResult{
		Query:        query,
		Success:      true,
		Response:     response,
		ResponseTime: elapsed.Seconds(),
		Trace:        r.memory.AllOutputs(),
	}
}

var _ Runner = (*BaselineRunner)(nil)

// BaselineRunner processes queries with the single agent, providing the
// comparison baseline for the multi-agent pipeline.
type BaselineRunner struct {
	single agent.Agent
	memory memory.Service
}

// NewBaseline builds a BaselineRunner with the single agent wired to the
// given model, memory store and tools.
func NewBaseline(m model.Model, mem memory.Service, tools agent.Toolset) *BaselineRunner {
	return &BaselineRunner{
		single: agent.NewSingle(m, mem, tools),
		memory: mem,
	}
}

// Run processes query in one shot with the single agent. The single agent
// resets the shared state itself, so history is recorded after it finishes.
func (b *BaselineRunner) Run(ctx context.Context, query string) RunResult {
	start := time.Now()
	response, err := b.single.Execute(ctx, query)
	elapsed := time.Since(start)
	if err != nil {
		log.Errorf("baseline: %v", err)
		return failure(query, err, elapsed)
	}

	b.memory.AddHistory(query, "user")
	b.memory.AddHistory(response, "assistant")
	return RunResult{
		Query:        query,
		Success:      true,
		Response:     response,
		ResponseTime: elapsed.Seconds(),
		Trace:        b.memory.AllOutputs(),
	}
}

func failure(query string, err error, elapsed time.Duration) RunResult {
	return RunResult{
		Query:        query,
		Success:      false,
		ResponseTime: elapsed.Seconds(),
		Error:        err.Error(),
	}
}
