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
	"strings"

	"trpc.group/trpc-go/fitagent/log"
	"trpc.group/trpc-go/fitagent/memory"
	"trpc.group/trpc-go/fitagent/model"
	"trpc.group/trpc-go/fitagent/tool"
)

var _ Agent = (*Single)(nil)

var (
	calcTriggers   = []string{"calculate", "math", "number"}
	fitnessAppends = []string{"workout", "exercise", "fitness"}
)

// fitnessAppendLimit caps how much tool output the baseline tacks onto its
// response, mirroring a single agent's shallow tool integration.
const fitnessAppendLimit = 200

// Single handles the whole request in one model call. It is the baseline
// the multi-agent pipeline is compared against.
type Single struct {
	model  model.Model
	memory memory.Service
	tools  Toolset
}

// NewSingle creates a Single agent.
func NewSingle(m model.Model, mem memory.Service, tools Toolset) *Single {
	return &Single{model: m, memory: mem, tools: tools}
}

// Name implements Agent.
func (s *Single) Name() string {
	return NameSingle
}

// Execute resets shared state, issues one combined model call, and appends
// shallow tool output when the query hints at it.
func (s *Single) Execute(ctx context.Context, task string) (string, error) {
	s.memory.Reset()
	s.memory.SetTask(task)

	prompt := fmt.Sprintf(singlePromptTemplate, task, tool.Describe(s.tools.All()))
	response, err := s.model.Complete(ctx, prompt)
	if err != nil {
		log.Warnf("single agent: model failed, substituting fallback response: %v", err)
		response = genericFallback
	}

	taskLower := strings.ToLower(task)
	if containsAny(taskLower, calcTriggers) {
		if out, err := s.tools.Calculator.Call(ctx, "100 + 50"); err == nil {
			response += "\n\nCalculation example: " + out
		}
	}
	if containsAny(taskLower, fitnessAppends) {
		if out, err := s.tools.FitnessResearch.Call(ctx, task); err == nil {
			response += "\n\nAdditional fitness information: " + truncate(out, fitnessAppendLimit) + "..."
		}
	}

	s.memory.AddAgentOutput(NameSingle, response, "single_response")
	s.memory.UpdateStatus(memory.StatusCompleted)
	return response, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
