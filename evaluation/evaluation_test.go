//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/fitagent/memory"
	"trpc.group/trpc-go/fitagent/memory/inmemory"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
}

func sampleTrace() map[string][]memory.Entry {
	return map[string][]memory.Entry{
		"planner":  {{Output: "plan the workout answer with research", Step: "planning", Timestamp: "t"}},
		"research": {{Output: "CALCULATOR TOOL USED: fine. " + strings.Repeat("workout detail ", 10), Step: "research", Timestamp: "t"}},
		"writer":   {{Output: "final workout answer with research detail", Step: "writing", Timestamp: "t"}},
	}
}

func TestEvaluateCompositeFormula(t *testing.T) {
	e := New(WithClock(fixedClock()))
	agentTimes := map[string]float64{"planner": 1.0, "research": 2.0, "writer": 1.5}
	r := e.Evaluate("beginner workout plan",
		"**Plan**\n1. Start with squats.\n2. Then do push-ups for 3 sets of 10 reps.\nFocus on form and recovery.",
		sampleTrace(), agentTimes, 4.5, inmemory.New())

	quality := (r.Readability + r.Completeness + r.Relevance + r.Actionability) / 4
	efficiency := (r.Coordination + r.WorkflowEfficiency + r.ToolUsage + r.ResponseTimeScore + r.MemoryUsage) / 5
	assert.InDelta(t, quality, r.OverallQuality, 1e-9)
	assert.InDelta(t, efficiency, r.SystemEfficiency, 1e-9)
	assert.InDelta(t, 0.6*quality+0.4*efficiency, r.FinalScore, 1e-9)
	assert.Equal(t, "2025-06-01T12:00:00Z", r.Timestamp)

	assert.Equal(t, map[string]float64{"planner": 1.0, "research": 2.0, "writer": 1.5},
		r.AgentResponseTimes)
	agentTimes["planner"] = 99.0
	assert.Equal(t, 1.0, e.History()[0].AgentResponseTimes["planner"],
		"record keeps its own snapshot of the timing map")
}

func TestEvaluateTruncatesStoredResponse(t *testing.T) {
	e := New(WithClock(fixedClock()))
	long := strings.Repeat("w", 300)
	r := e.Evaluate("q", long, nil, nil, 1.0, nil)

	assert.Len(t, r.Response, 203)
	assert.True(t, strings.HasSuffix(r.Response, "..."))
	assert.Equal(t, 1, r.ResponseLength, "length counts words of the full response")

	short := e.Evaluate("q", "brief answer", nil, nil, 1.0, nil)
	assert.Equal(t, "brief answer", short.Response)
	assert.Equal(t, 2, short.ResponseLength)
}

func TestEvaluateScoresBounded(t *testing.T) {
	e := New()
	r := e.Evaluate("", "", nil, nil, 0, nil)
	for name, v := range map[string]float64{
		"readability":         r.Readability,
		"completeness":        r.Completeness,
		"relevance":           r.Relevance,
		"actionability":       r.Actionability,
		"coordination":        r.Coordination,
		"workflow_efficiency": r.WorkflowEfficiency,
		"tool_usage":          r.ToolUsage,
		"response_time_score": r.ResponseTimeScore,
		"memory_usage":        r.MemoryUsage,
		"final_score":         r.FinalScore,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
}

func TestSummary(t *testing.T) {
	e := New(WithClock(fixedClock()))
	assert.Empty(t, e.Summary(), "no history means no statistics")

	e.Evaluate("workout plan", "Start with squats and focus on form.", sampleTrace(),
		map[string]float64{"planner": 1.0}, 2.0, inmemory.New())
	e.Evaluate("nutrition advice", "Include protein with every meal and maintain calories.", sampleTrace(),
		map[string]float64{"planner": 1.0}, 6.0, inmemory.New())

	s := e.Summary()
	assert.Equal(t, 2.0, s["total_evaluations"])
	assert.InDelta(t, 4.0, s["avg_response_time"], 1e-9)

	hist := e.History()
	require.Len(t, hist, 2)
	assert.InDelta(t, (hist[0].FinalScore+hist[1].FinalScore)/2, s["avg_final_score"], 1e-9)
	assert.InDelta(t, (float64(hist[0].ResponseLength)+float64(hist[1].ResponseLength))/2,
		s["avg_response_length"], 1e-9)
}

func TestHistoryIsCopied(t *testing.T) {
	e := New()
	e.Evaluate("q", "a response", nil, nil, 1.0, nil)
	hist := e.History()
	hist[0].Query = "mutated"
	assert.Equal(t, "q", e.History()[0].Query)
}
