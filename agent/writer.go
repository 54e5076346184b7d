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
)

var _ Agent = (*Writer)(nil)

// Writer turns the accumulated plan and research into the final response.
type Writer struct {
	model  model.Model
	memory memory.Service
}

// NewWriter creates a Writer.
func NewWriter(m model.Model, mem memory.Service) *Writer {
	return &Writer{model: m, memory: mem}
}

// Name implements Agent.
func (w *Writer) Name() string {
	return NameWriter
}

// Execute collects the prior agents' outputs from shared state, asks the
// model for the final response, and marks the task completed.
func (w *Writer) Execute(ctx context.Context, task string) (string, error) {
	w.memory.UpdateStatus(memory.StatusWriting)

	prompt := fmt.Sprintf(writerPromptTemplate, task, contextSummary(w.memory, NameWriter), w.gatherFindings())
	response, err := w.model.Complete(ctx, prompt)
	if err != nil {
		log.Warnf("writer: model failed, substituting fallback response: %v", err)
		response = writerFallback
	}

	w.memory.AddAgentOutput(NameWriter, response, "writing")
	w.memory.UpdateStatus(memory.StatusCompleted)
	return response, nil
}

// gatherFindings concatenates the planner and research traces, planner first,
// so the writer prompt sees the workflow in execution order.
func (w *Writer) gatherFindings() string {
	outputs := w.memory.AllOutputs()

	var research []string
	for _, entry := range outputs[NameResearch] {
		research = append(research, entry.Output)
	}
	findings := strings.Join(research, "\n")

	if planner := outputs[NamePlanner]; len(planner) > 0 {
		var plans []string
		for _, entry := range planner {
			plans = append(plans, entry.Output)
		}
		findings = "Planning: " + strings.Join(plans, "\n") + "\n\n" + findings
	}
	return findings
}
