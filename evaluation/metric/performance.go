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
	"math"
	"strings"

	"trpc.group/trpc-go/fitagent/memory"
)

// Tool banner lines the research agent embeds in its report. ToolUsage
// recognizes exactly these markers.
const (
	MarkerCalculator      = "CALCULATOR TOOL USED"
	MarkerWebSearch       = "WEB SEARCH TOOL USED"
	MarkerFitnessResearch = "FITNESS RESEARCH TOOL USED"
)

// expectedStageSeconds is the time budget per pipeline stage.
var expectedStageSeconds = map[string]float64{
	agentPlanner:  3.0,
	agentResearch: 5.0,
	agentWriter:   4.0,
}

const defaultStageSeconds = 5.0

// WorkflowEfficiency scores each agent's elapsed time against its stage
// budget and averages the per-agent scores. Within budget scores 1.0;
// overruns decay linearly. An empty timing map scores zero.
func WorkflowEfficiency(agentTimes map[string]float64) float64 {
	if len(agentTimes) == 0 {
		return 0.0
	}

	total := 0.0
	for name, actual := range agentTimes {
		expected, ok := expectedStageSeconds[name]
		if !ok {
			expected = defaultStageSeconds
		}
		if actual <= expected {
			total += 1.0
		} else {
			total += math.Max(0, 1-(actual-expected)/expected)
		}
	}
	return clamp(total / float64(len(agentTimes)))
}

// ToolUsage scores how many tool banners appear in the research trace and
// whether the tool output carried substance. Each research entry counts at
// most one marker. A trace without research entries scores zero.
func ToolUsage(outputs map[string][]memory.Entry) float64 {
	entries := outputs[agentResearch]
	if len(entries) == 0 {
		return 0.0
	}

	markers := []string{MarkerCalculator, MarkerWebSearch, MarkerFitnessResearch}
	count := 0
	for _, e := range entries {
		for _, m := range markers {
			if strings.Contains(e.Output, m) {
				count++
				break
			}
		}
	}

	effectiveness := 0.0
	for _, e := range entries {
		if strings.Contains(e.Output, "TOOL USED") && len(e.Output) > 100 {
			effectiveness = 1.0
			break
		}
	}

	return clamp(0.7*math.Min(1, float64(count)/3) + 0.3*effectiveness)
}

// ResponseTimeScore maps total seconds to a score: full marks up to 8s,
// a gentle penalty to 12s, then a steeper decay.
func ResponseTimeScore(seconds float64) float64 {
	switch {
	case seconds <= 8:
		return 1.0
	case seconds <= 12:
		return clamp(1.0 - (seconds-8)/4*0.3)
	default:
		return clamp(math.Max(0, 0.7-(seconds-12)/12))
	}
}

// MemoryUsage scores how the shared store was used: trace organization
// across agents and whether the store persists state between stages. A nil
// store scores a neutral 0.5.
func MemoryUsage(outputs map[string][]memory.Entry, store memory.Service) float64 {
	if store == nil {
		return 0.5
	}

	organization := 0.0
	if len(outputs) >= 2 {
		organization += 0.5
	}
	for _, entries := range outputs {
		if len(entries) == 0 {
			continue
		}
		complete := true
		for _, e := range entries {
			if e.Output == "" {
				complete = false
				break
			}
		}
		if complete {
			organization += 0.5
			break
		}
	}

	persistence := 0.5
	if store.Persistent() {
		persistence = 1.0
	}

	return clamp(organization*0.6 + persistence*0.4)
}
