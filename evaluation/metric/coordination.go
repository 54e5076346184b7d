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

	"trpc.group/trpc-go/fitagent/memory"
)

// Agent names as recorded in the run trace.
const (
	agentPlanner  = "planner"
	agentResearch = "research"
	agentWriter   = "writer"
)

// Coordination scores how well the pipeline agents worked together: which
// of the three roles contributed output, and whether information visibly
// flowed from one stage to the next. An empty trace scores zero.
func Coordination(outputs map[string][]memory.Entry) float64 {
	if len(outputs) == 0 {
		return 0.0
	}

	present := 0
	for _, name := range []string{agentPlanner, agentResearch, agentWriter} {
		if len(outputs[name]) > 0 {
			present++
		}
	}
	participation := float64(present) / 3

	flow := 0.0
	if plannerOut := joinedOutput(outputs, agentPlanner); plannerOut != "" {
		if researchOut := joinedOutput(outputs, agentResearch); researchOut != "" {
			researchLower := strings.ToLower(researchOut)
			for _, w := range firstWords(plannerOut, 10) {
				if strings.Contains(researchLower, w) {
					flow += 0.5
					break
				}
			}
		}
	}
	if researchOut := joinedOutput(outputs, agentResearch); researchOut != "" {
		if writerOut := joinedOutput(outputs, agentWriter); writerOut != "" {
			writerWords := wordSet(strings.Fields(strings.ToLower(writerOut)))
			shared := 0
			for _, w := range firstWords(researchOut, 20) {
				if writerWords[w] {
					shared++
				}
			}
			if shared > 3 {
				flow += 0.5
			}
		}
	}

	return clamp(0.6*participation + 0.4*flow)
}

// joinedOutput concatenates every entry of the named agent's log, so
// information flow is judged over the full trace, not just its head.
func joinedOutput(outputs map[string][]memory.Entry, agentName string) string {
	entries := outputs[agentName]
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Output)
	}
	return strings.Join(parts, " ")
}

func firstWords(text string, n int) []string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) > n {
		words = words[:n]
	}
	// Deduplicate while preserving order.
	seen := make(map[string]bool, len(words))
	var out []string
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}
