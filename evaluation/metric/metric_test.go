//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/fitagent/memory"
)

func entry(output string) memory.Entry {
	return memory.Entry{Output: output, Step: "test", Timestamp: "2025-01-01T00:00:00Z"}
}

func TestReadability(t *testing.T) {
	ideal := strings.Repeat("word ", 17) + "end."
	assert.Greater(t, Readability(ideal), 0.9, "near-ideal sentence length")

	long := strings.Repeat("word ", 99) + "end."
	assert.Less(t, Readability(long), 0.3, "a 100 word sentence reads badly")

	assert.Equal(t, 0.0, Readability(""))
	assert.Equal(t, 0.0, Readability("   "))
	assert.Equal(t, 0.0, Readability("..!?"))
}

func TestReadabilityDeterministic(t *testing.T) {
	text := "Start with squats. Then do push-ups for three sets of ten repetitions each day."
	first := Readability(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Readability(text))
	}
}

func TestCompleteness(t *testing.T) {
	query := "beginner workout plan"
	structured := "**Beginner Workout Plan**\n1. Squats\n2. Push-ups\n3. Planks\nFocus on form and recovery with good nutrition and protein."
	plain := "maybe"

	assert.Greater(t, Completeness(query, structured), Completeness(query, plain))
	assert.Equal(t, 0.0, Completeness(query, ""))

	score := Completeness(query, structured)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestRelevanceContextPenalty(t *testing.T) {
	query := "suggest a workout for me"
	onTopic := "A good workout includes exercise like squats and strength training."
	offTopic := "The weather for me is sunny today and the stock market is up."

	assert.Greater(t, Relevance(query, onTopic), Relevance(query, offTopic))
	// An empty response still earns the halved context term and nothing else.
	assert.InDelta(t, 0.1, Relevance(query, ""), 1e-9)
}

func TestActionability(t *testing.T) {
	actionable := "Start with 3 sets of 10 reps. Then aim for 20-30 minutes of cardio. " +
		"Next, focus on form and avoid injury. Finally, maintain a steady routine."
	vague := "Things could be considered at some point perhaps."

	assert.Greater(t, Actionability(actionable), 0.7)
	assert.Less(t, Actionability(vague), 0.3)
	assert.Equal(t, 0.0, Actionability(""))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount("  one two   three "))
}

func TestCoordination(t *testing.T) {
	assert.Equal(t, 0.0, Coordination(nil))
	assert.Equal(t, 0.0, Coordination(map[string][]memory.Entry{}))

	full := map[string][]memory.Entry{
		"planner":  {entry("research the workout topic then write a plan")},
		"research": {entry("research findings about the workout topic with sets and reps details gathered here")},
		"writer":   {entry("final answer built from research findings about the workout topic with sets and reps")},
	}
	score := Coordination(full)
	assert.Greater(t, score, 0.9, "all agents present with visible information flow")
	assert.LessOrEqual(t, score, 1.0)

	plannerOnly := map[string][]memory.Entry{"planner": {entry("a plan")}}
	assert.InDelta(t, 0.2, Coordination(plannerOnly), 1e-9)
}

func TestCoordinationSpansWholeAgentLog(t *testing.T) {
	// Vocabulary shared with the writer sits only in the second research
	// entry; the flow bonus must still be granted.
	outputs := map[string][]memory.Entry{
		"research": {
			entry("strategy notes first"),
			entry("squats lunges pushups planks rows"),
		},
		"writer": {entry("do squats lunges pushups planks daily")},
	}
	assert.InDelta(t, 0.6*(2.0/3.0)+0.4*0.5, Coordination(outputs), 1e-9)

	// Same for the planner->research bonus across a split planner log.
	split := map[string][]memory.Entry{
		"planner":  {entry("overview"), entry("hypertrophy focus")},
		"research": {entry("findings on hypertrophy training")},
	}
	assert.InDelta(t, 0.6*(2.0/3.0)+0.4*0.5, Coordination(split), 1e-9)
}

func TestWorkflowEfficiency(t *testing.T) {
	assert.Equal(t, 0.0, WorkflowEfficiency(nil))

	within := map[string]float64{"planner": 2.0, "research": 4.0, "writer": 3.0}
	assert.InDelta(t, 1.0, WorkflowEfficiency(within), 1e-9)

	// planner at double budget scores 0, others full: mean 2/3.
	over := map[string]float64{"planner": 6.0, "research": 4.0, "writer": 3.0}
	assert.InDelta(t, 2.0/3.0, WorkflowEfficiency(over), 1e-9)

	unknown := map[string]float64{"other": 5.0}
	assert.InDelta(t, 1.0, WorkflowEfficiency(unknown), 1e-9, "unknown agents use the default budget")
}

func TestToolUsage(t *testing.T) {
	assert.Equal(t, 0.0, ToolUsage(nil))
	assert.Equal(t, 0.0, ToolUsage(map[string][]memory.Entry{"writer": {entry("no research")}}))

	// One entry carrying every marker still counts as a single marker.
	combined := MarkerCalculator + "\nresult\n" + MarkerWebSearch + "\nresult\n" + MarkerFitnessResearch + "\n" +
		strings.Repeat("detail ", 20)
	one := map[string][]memory.Entry{"research": {entry(combined)}}
	assert.InDelta(t, 0.7*(1.0/3.0)+0.3, ToolUsage(one), 1e-9)

	three := map[string][]memory.Entry{"research": {
		entry(MarkerCalculator + " " + strings.Repeat("x ", 60)),
		entry(MarkerWebSearch + " short"),
		entry(MarkerFitnessResearch + " short"),
	}}
	assert.InDelta(t, 1.0, ToolUsage(three), 1e-9)
}

func TestResponseTimeScore(t *testing.T) {
	assert.Equal(t, 1.0, ResponseTimeScore(0))
	assert.Equal(t, 1.0, ResponseTimeScore(8))
	assert.InDelta(t, 0.85, ResponseTimeScore(10), 1e-9)
	assert.InDelta(t, 0.7, ResponseTimeScore(12), 1e-9)
	assert.InDelta(t, 0.2, ResponseTimeScore(18), 1e-9)
	assert.Equal(t, 0.0, ResponseTimeScore(24))
	assert.Equal(t, 0.0, ResponseTimeScore(100))
}

type fakeStore struct {
	memory.Service
	persistent bool
}

func (f *fakeStore) Persistent() bool { return f.persistent }

func TestMemoryUsage(t *testing.T) {
	assert.Equal(t, 0.5, MemoryUsage(nil, nil), "nil store scores neutral")

	outputs := map[string][]memory.Entry{
		"planner": {entry("plan")},
		"writer":  {entry("answer")},
	}
	assert.InDelta(t, 1.0, MemoryUsage(outputs, &fakeStore{persistent: true}), 1e-9)
	assert.InDelta(t, 0.8, MemoryUsage(outputs, &fakeStore{persistent: false}), 1e-9)

	sparse := map[string][]memory.Entry{"planner": {{Step: "planning"}}}
	assert.InDelta(t, 0.4, MemoryUsage(sparse, &fakeStore{persistent: true}), 1e-9)
}

func TestScoresBounded(t *testing.T) {
	inputs := []string{"", "a", strings.Repeat("workout exercise fitness ", 100), "1. 2. a) b) ** \n\n\n\n"}
	for _, in := range inputs {
		for name, score := range map[string]float64{
			"readability":   Readability(in),
			"completeness":  Completeness("query words", in),
			"relevance":     Relevance("query words", in),
			"actionability": Actionability(in),
		} {
			require.GreaterOrEqual(t, score, 0.0, name)
			require.LessOrEqual(t, score, 1.0, name)
		}
	}
}
