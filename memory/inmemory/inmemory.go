//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides the in-memory shared state implementation.
package inmemory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"trpc.group/trpc-go/fitagent/memory"
)

var _ memory.Service = (*Store)(nil)

// Store is an in-memory implementation of memory.Service.
//
// Execution is sequential, but the store still guards its state with a
// mutex so that concurrent readers (e.g. a future UI poller) stay safe.
type Store struct {
	mu        sync.RWMutex
	sessionID string
	task      string
	status    string
	outputs   map[string][]memory.Entry
	history   []memory.HistoryItem

	// now is swappable for deterministic timestamps in tests.
	now func() time.Time
}

// Option configures the Store.
type Option func(*Store)

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty Store with a fresh session ID.
func New(opt ...Option) *Store {
	s := &Store{
		sessionID: uuid.NewString(),
		status:    memory.StatusIdle,
		outputs:   make(map[string][]memory.Entry),
		now:       time.Now,
	}
	for _, o := range opt {
		o(s)
	}
	return s
}

// SessionID returns the identifier assigned at construction.
func (s *Store) SessionID() string {
	return s.sessionID
}

// SetTask records the task being processed and moves status to planning.
func (s *Store) SetTask(task string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.task = task
	s.status = memory.StatusPlanning
}

// Task returns the current task.
func (s *Store) Task() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.task
}

// UpdateStatus sets the workflow status.
func (s *Store) UpdateStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Status returns the workflow status.
func (s *Store) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// AddAgentOutput appends an output entry to the named agent's log.
func (s *Store) AddAgentOutput(agentName, output, step string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs[agentName] = append(s.outputs[agentName], memory.Entry{
		Output:    output,
		Step:      step,
		Timestamp: s.now().Format(time.RFC3339),
	})
}

// AgentOutputs returns a copy of the named agent's log entries.
func (s *Store) AgentOutputs(agentName string) []memory.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.outputs[agentName]
	out := make([]memory.Entry, len(entries))
	copy(out, entries)
	return out
}

// AllOutputs returns a copy of every agent's log keyed by agent name.
func (s *Store) AllOutputs() map[string][]memory.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]memory.Entry, len(s.outputs))
	for name, entries := range s.outputs {
		copied := make([]memory.Entry, len(entries))
		copy(copied, entries)
		out[name] = copied
	}
	return out
}

// AddHistory appends a message to the conversation history.
func (s *Store) AddHistory(message, sender string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, memory.HistoryItem{
		Message:   message,
		Sender:    sender,
		Timestamp: s.now().Format(time.RFC3339),
	})
}

// History returns a copy of the conversation history.
func (s *Store) History() []memory.HistoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]memory.HistoryItem, len(s.history))
	copy(out, s.history)
	return out
}

// Reset clears all state so the next query starts clean. The session ID is
// preserved; it identifies the store, not the query.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.task = ""
	s.status = memory.StatusIdle
	s.outputs = make(map[string][]memory.Entry)
	s.history = nil
}

// Persistent reports true: the store holds durable shared state for the
// lifetime of a query across all agent stages.
func (s *Store) Persistent() bool {
	return true
}
