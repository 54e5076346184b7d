//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package compare analyzes parallel result sets from the multi-agent
// pipeline and the single-agent baseline.
package compare

import (
	"errors"
	"strings"

	"trpc.group/trpc-go/fitagent/runner"
)

var (
	// ErrLengthMismatch is returned when the two result sets do not cover
	// the same queries.
	ErrLengthMismatch = errors.New("result sets must have the same length for comparison")
	// ErrNoResults is returned when there is nothing to compare.
	ErrNoResults = errors.New("no results to compare")
)

// Verdict values for the qualitative analysis.
const (
	VerdictBetter  = "Better"
	VerdictWorse   = "Worse"
	VerdictSimilar = "Similar"
)

// Recommendation texts, selected by fixed decision rules in Compare.
const (
	RecommendQuality     = "pipeline recommended: quality gain with acceptable reliability."
	RecommendReliability = "pipeline recommended: reliability gain."
	RecommendBaseline    = "baseline preferred for simple/fast queries."
	RecommendDefault     = "pipeline recommended: overall better coordination."
)

// Metrics aggregates one system's results.
type Metrics struct {
	AvgResponseTime   float64 `json:"avg_response_time"`
	AvgResponseLength float64 `json:"avg_response_length"`
	SuccessRate       float64 `json:"success_rate"`
	TotalQueries      int     `json:"total_queries"`
}

// Improvements holds the signed percentage deltas of the pipeline over the
// baseline. Positive time change means the pipeline was faster.
type Improvements struct {
	ResponseTimeChangePercent        float64 `json:"response_time_change_percent"`
	ResponseLengthImprovementPercent float64 `json:"response_length_improvement_percent"`
	SuccessRateImprovementPercent    float64 `json:"success_rate_improvement_percent"`
}

// Analysis carries the qualitative verdicts derived from Improvements.
type Analysis struct {
	TimePerformance string `json:"time_performance"`
	ContentQuality  string `json:"content_quality"`
	Reliability     string `json:"reliability"`
}

// Report is the full comparison of the two systems.
type Report struct {
	MultiAgentMetrics Metrics      `json:"multi_agent_metrics"`
	BaselineMetrics   Metrics      `json:"baseline_metrics"`
	Improvements      Improvements `json:"improvements"`
	Analysis          Analysis     `json:"analysis"`
	Recommendation    string       `json:"recommendation"`
}

// Compare builds a Report from parallel result sets over the same queries.
func Compare(pipeline, baseline []runner.RunResult) (Report, error) {
	if len(pipeline) != len(baseline) {
		return Report{}, ErrLengthMismatch
	}
	if len(pipeline) == 0 {
		return Report{}, ErrNoResults
	}

	r := Report{
		MultiAgentMetrics: aggregate(pipeline),
		BaselineMetrics:   aggregate(baseline),
	}

	r.Improvements = Improvements{
		ResponseTimeChangePercent: percentDelta(
			r.BaselineMetrics.AvgResponseTime-r.MultiAgentMetrics.AvgResponseTime,
			r.BaselineMetrics.AvgResponseTime),
		ResponseLengthImprovementPercent: percentDelta(
			r.MultiAgentMetrics.AvgResponseLength-r.BaselineMetrics.AvgResponseLength,
			r.BaselineMetrics.AvgResponseLength),
		SuccessRateImprovementPercent: percentDelta(
			r.MultiAgentMetrics.SuccessRate-r.BaselineMetrics.SuccessRate,
			r.BaselineMetrics.SuccessRate),
	}

	r.Analysis = Analysis{
		TimePerformance: verdict(r.Improvements.ResponseTimeChangePercent, 0, -5),
		ContentQuality:  verdict(r.Improvements.ResponseLengthImprovementPercent, 10, -10),
		Reliability:     verdict(r.Improvements.SuccessRateImprovementPercent, 5, -5),
	}

	r.Recommendation = recommend(r.Improvements)
	return r, nil
}

func aggregate(results []runner.RunResult) Metrics {
	m := Metrics{TotalQueries: len(results)}
	for _, res := range results {
		m.AvgResponseTime += res.ResponseTime
		m.AvgResponseLength += float64(len(strings.Fields(res.Response)))
		if res.Success {
			m.SuccessRate++
		}
	}
	n := float64(len(results))
	m.AvgResponseTime /= n
	m.AvgResponseLength /= n
	m.SuccessRate /= n
	return m
}

func percentDelta(delta, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return delta / base * 100
}

func verdict(improvement, betterAbove, worseBelow float64) string {
	switch {
	case improvement > betterAbove:
		return VerdictBetter
	case improvement < worseBelow:
		return VerdictWorse
	default:
		return VerdictSimilar
	}
}

// recommend applies the decision rules in order; the first match wins.
func recommend(imp Improvements) string {
	switch {
	case imp.ResponseLengthImprovementPercent > 15 && imp.SuccessRateImprovementPercent > 0:
		return RecommendQuality
	case imp.SuccessRateImprovementPercent > 10:
		return RecommendReliability
	case imp.ResponseTimeChangePercent < -20 && imp.ResponseLengthImprovementPercent < -15:
		return RecommendBaseline
	default:
		return RecommendDefault
	}
}
