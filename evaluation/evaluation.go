//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package evaluation scores agent responses and aggregates results.
//
// The Evaluator applies the heuristic metrics to one run at a time and
// keeps an in-order history, from which Summary derives aggregate
// statistics for reporting.
package evaluation

import (
	"time"

	"trpc.group/trpc-go/fitagent/evaluation/metric"
	"trpc.group/trpc-go/fitagent/memory"
)

// responseExcerptLimit bounds the response text stored in a Result.
const responseExcerptLimit = 200

// Result is the immutable record of one evaluated query.
type Result struct {
	Query              string             `json:"query"`
	Response           string             `json:"response"`
	ResponseLength     int                `json:"response_length"`
	ResponseTime       float64            `json:"response_time"`
	AgentResponseTimes map[string]float64 `json:"agent_response_times"`
	Timestamp          string             `json:"timestamp"`

	Readability        float64 `json:"readability"`
	Completeness       float64 `json:"completeness"`
	Relevance          float64 `json:"relevance"`
	Actionability      float64 `json:"actionability"`
	Coordination       float64 `json:"coordination"`
	WorkflowEfficiency float64 `json:"workflow_efficiency"`
	ToolUsage          float64 `json:"tool_usage"`
	ResponseTimeScore  float64 `json:"response_time_score"`
	MemoryUsage        float64 `json:"memory_usage"`

	OverallQuality   float64 `json:"overall_quality"`
	SystemEfficiency float64 `json:"system_efficiency"`
	FinalScore       float64 `json:"final_score"`
}

// Evaluator scores responses and accumulates their results.
type Evaluator struct {
	history []Result
	now     func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate scores one run and appends the result to the history.
// outputs is the agent trace of the run, agentTimes the per-stage elapsed
// seconds, totalTime the end-to-end seconds, store the memory service the
// run used (nil when unavailable).
func (e *Evaluator) Evaluate(query, response string, outputs map[string][]memory.Entry,
	agentTimes map[string]float64, totalTime float64, store memory.Service) Result {
	r := Result{
		Query:              query,
		Response:           excerpt(response),
		ResponseLength:     metric.WordCount(response),
		ResponseTime:       totalTime,
		AgentResponseTimes: copyTimes(agentTimes),
		Timestamp:          e.now().Format(time.RFC3339),

		Readability:        metric.Readability(response),
		Completeness:       metric.Completeness(query, response),
		Relevance:          metric.Relevance(query, response),
		Actionability:      metric.Actionability(response),
		Coordination:       metric.Coordination(outputs),
		WorkflowEfficiency: metric.WorkflowEfficiency(agentTimes),
		ToolUsage:          metric.ToolUsage(outputs),
		ResponseTimeScore:  metric.ResponseTimeScore(totalTime),
		MemoryUsage:        metric.MemoryUsage(outputs, store),
	}

	r.OverallQuality = mean(r.Readability, r.Completeness, r.Relevance, r.Actionability)
	r.SystemEfficiency = mean(r.Coordination, r.WorkflowEfficiency, r.ToolUsage,
		r.ResponseTimeScore, r.MemoryUsage)
	r.FinalScore = 0.6*r.OverallQuality + 0.4*r.SystemEfficiency

	e.history = append(e.history, r)
	return r
}

// History returns the evaluated results in order.
func (e *Evaluator) History() []Result {
	out := make([]Result, len(e.history))
	copy(out, e.history)
	return out
}

// Summary aggregates the history into the statistics block of a report.
// An empty history yields an empty map.
func (e *Evaluator) Summary() map[string]float64 {
	s := map[string]float64{}
	if len(e.history) == 0 {
		return s
	}
	s["total_evaluations"] = float64(len(e.history))

	n := float64(len(e.history))
	for _, r := range e.history {
		s["avg_final_score"] += r.FinalScore / n
		s["avg_quality_score"] += r.OverallQuality / n
		s["avg_efficiency_score"] += r.SystemEfficiency / n
		s["avg_response_time"] += r.ResponseTime / n
		s["avg_response_length"] += float64(r.ResponseLength) / n
		s["avg_readability"] += r.Readability / n
		s["avg_completeness"] += r.Completeness / n
		s["avg_relevance"] += r.Relevance / n
		s["avg_actionability"] += r.Actionability / n
		s["avg_coordination"] += r.Coordination / n
		s["avg_workflow_efficiency"] += r.WorkflowEfficiency / n
		s["avg_tool_usage"] += r.ToolUsage / n
	}
	return s
}

// copyTimes snapshots the timing map so the stored record stays immutable.
func copyTimes(times map[string]float64) map[string]float64 {
	if len(times) == 0 {
		return nil
	}
	out := make(map[string]float64, len(times))
	for name, t := range times {
		out[name] = t
	}
	return out
}

func excerpt(response string) string {
	if len(response) > responseExcerptLimit {
		return response[:responseExcerptLimit] + "..."
	}
	return response
}

func mean(values ...float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
