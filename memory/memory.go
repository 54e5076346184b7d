//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package memory defines the shared state the agents coordinate through.
//
// During one query's processing each agent appends its output to the store;
// downstream agents and the evaluation metrics read the accumulated trace.
// The store must be fully reset between independent queries: stale state
// leaking across runs would corrupt the comparative evaluation.
package memory

// Task status values, in workflow order.
const (
	StatusIdle        = "idle"
	StatusPlanning    = "planning"
	StatusResearching = "researching"
	StatusWriting     = "writing"
	StatusCompleted   = "completed"
)

// Entry is one logged agent output within a query's trace.
type Entry struct {
	Output    string `json:"output"`
	Step      string `json:"step"`
	Timestamp string `json:"timestamp"`
}

// HistoryItem is one conversational exchange recorded in the shared state.
type HistoryItem struct {
	Message   string `json:"message"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
}

// Service is the per-query shared state consumed by agents and evaluation.
type Service interface {
	// SetTask records the task currently being processed and moves the
	// status to planning.
	SetTask(task string)
	// Task returns the current task, or "" when idle.
	Task() string
	// UpdateStatus sets the workflow status.
	UpdateStatus(status string)
	// Status returns the workflow status.
	Status() string
	// AddAgentOutput appends an output entry to the named agent's log.
	AddAgentOutput(agentName, output, step string)
	// AgentOutputs returns the named agent's log entries in order.
	AgentOutputs(agentName string) []Entry
	// AllOutputs returns every agent's log keyed by agent name.
	AllOutputs() map[string][]Entry
	// AddHistory appends a message to the conversation history.
	AddHistory(message, sender string)
	// History returns the conversation history in order.
	History() []HistoryItem
	// Reset clears all state so the next query starts clean.
	Reset()
	// Persistent reports whether the store keeps durable shared state
	// across agent stages. Consumed by the memory-usage metric.
	Persistent() bool
}
