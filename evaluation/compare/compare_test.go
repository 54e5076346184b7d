//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/fitagent/runner"
)

// makeResults builds n results with successes succeeding, each taking
// seconds and answering with words words.
func makeResults(n, successes int, seconds float64, words int) []runner.RunResult {
	out := make([]runner.RunResult, n)
	response := strings.TrimSpace(strings.Repeat("word ", words))
	for i := range out {
		out[i] = runner.RunResult{
			Query:        "q",
			Success:      i < successes,
			Response:     response,
			ResponseTime: seconds,
		}
	}
	return out
}

func TestCompareLengthMismatch(t *testing.T) {
	_, err := Compare(makeResults(2, 2, 1, 10), makeResults(3, 3, 1, 10))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCompareEmpty(t *testing.T) {
	_, err := Compare(nil, nil)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestCompareIdenticalSetsYieldZeroDeltas(t *testing.T) {
	set := makeResults(4, 4, 2.5, 50)
	r, err := Compare(set, set)
	require.NoError(t, err)

	assert.Equal(t, 0.0, r.Improvements.ResponseTimeChangePercent)
	assert.Equal(t, 0.0, r.Improvements.ResponseLengthImprovementPercent)
	assert.Equal(t, 0.0, r.Improvements.SuccessRateImprovementPercent)
	assert.Equal(t, RecommendDefault, r.Recommendation)
	assert.Equal(t, VerdictSimilar, r.Analysis.TimePerformance)
	assert.Equal(t, VerdictSimilar, r.Analysis.ContentQuality)
	assert.Equal(t, VerdictSimilar, r.Analysis.Reliability)
}

func TestCompareEndToEndScenario(t *testing.T) {
	pipeline := makeResults(20, 20, 8.42, 247)
	baseline := makeResults(20, 19, 6.18, 156)

	r, err := Compare(pipeline, baseline)
	require.NoError(t, err)

	assert.InDelta(t, 8.42, r.MultiAgentMetrics.AvgResponseTime, 1e-9)
	assert.InDelta(t, 247, r.MultiAgentMetrics.AvgResponseLength, 1e-9)
	assert.InDelta(t, 1.0, r.MultiAgentMetrics.SuccessRate, 1e-9)
	assert.InDelta(t, 0.95, r.BaselineMetrics.SuccessRate, 1e-9)
	assert.Equal(t, 20, r.BaselineMetrics.TotalQueries)

	assert.InDelta(t, -36.2, r.Improvements.ResponseTimeChangePercent, 0.1)
	assert.InDelta(t, 58.3, r.Improvements.ResponseLengthImprovementPercent, 0.1)
	assert.InDelta(t, 5.3, r.Improvements.SuccessRateImprovementPercent, 0.1)

	assert.Equal(t, RecommendQuality, r.Recommendation)
	assert.Equal(t, VerdictWorse, r.Analysis.TimePerformance)
	assert.Equal(t, VerdictBetter, r.Analysis.ContentQuality)
	assert.Equal(t, VerdictBetter, r.Analysis.Reliability)
}

func TestRecommendationRuleOrder(t *testing.T) {
	cases := []struct {
		name string
		imp  Improvements
		want string
	}{
		{
			name: "quality rule wins over reliability rule",
			imp:  Improvements{ResponseLengthImprovementPercent: 20, SuccessRateImprovementPercent: 15},
			want: RecommendQuality,
		},
		{
			name: "reliability rule",
			imp:  Improvements{ResponseLengthImprovementPercent: 5, SuccessRateImprovementPercent: 12},
			want: RecommendReliability,
		},
		{
			name: "baseline rule",
			imp:  Improvements{ResponseTimeChangePercent: -30, ResponseLengthImprovementPercent: -20},
			want: RecommendBaseline,
		},
		{
			name: "default rule",
			imp:  Improvements{ResponseTimeChangePercent: -10, ResponseLengthImprovementPercent: 10},
			want: RecommendDefault,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, recommend(tc.imp))
		})
	}
}
