//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package suite orchestrates a full comparative evaluation run.
//
// The Orchestrator sweeps the standardized query set through the
// multi-agent pipeline and the single-agent baseline, evaluates every
// pipeline response, compares the two systems and assembles the final
// report. Per-query failures degrade to unsuccessful results; the sweep
// always completes.
package suite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"trpc.group/trpc-go/fitagent/evaluation"
	"trpc.group/trpc-go/fitagent/evaluation/compare"
	"trpc.group/trpc-go/fitagent/evaluation/queryset"
	"trpc.group/trpc-go/fitagent/log"
	"trpc.group/trpc-go/fitagent/memory"
	"trpc.group/trpc-go/fitagent/runner"
)

// Simulated per-stage shares of the total pipeline time. Stage times are
// not tracked individually, so the workflow metric works from these.
const (
	plannerTimeShare  = 0.2
	researchTimeShare = 0.5
	writerTimeShare   = 0.3
)

// Improvement area texts surfaced in the summary.
const (
	AreaResponseTime = "Response time optimization - consider caching or parallel processing"
	AreaReadability  = "Response readability - improve sentence structure and clarity"
	AreaWorkflow     = "Workflow efficiency - optimize agent coordination and handoffs"
	AreaPerformingOK = "System performing well - focus on maintaining quality and exploring new features"
)

// keyFindings are the qualitative observations carried into every report.
var keyFindings = []string{
	"Multi-agent system provides more structured and comprehensive responses",
	"Agent specialization leads to better tool coordination and usage",
	"Workflow orchestration ensures systematic coverage of all query aspects",
	"Single-agent baseline is faster but less thorough for complex queries",
}

// Summary is the aggregate statistics block of a Report.
type Summary struct {
	Statistics       map[string]float64 `json:"statistics"`
	Strengths        []string           `json:"strengths_identified"`
	ImprovementAreas []string           `json:"improvement_areas"`
}

// Report is the complete outcome of one evaluation run.
type Report struct {
	RunID             string              `json:"run_id"`
	Timestamp         string              `json:"timestamp"`
	QueryCount        int                 `json:"query_count"`
	PipelineResults   []runner.RunResult  `json:"pipeline_results"`
	BaselineResults   []runner.RunResult  `json:"baseline_results"`
	EvaluationHistory []evaluation.Result `json:"evaluation_history"`
	Comparison        compare.Report      `json:"comparison_report"`
	KeyFindings       []string            `json:"key_findings"`
	Summary           Summary             `json:"summary_statistics"`
}

// Orchestrator drives the comparative evaluation.
type Orchestrator struct {
	pipeline  runner.Runner
	baseline  runner.Runner
	store     memory.Service
	evaluator *evaluation.Evaluator
	now       func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// New creates an Orchestrator over the two runners and the memory store
// they share.
func New(pipeline, baseline runner.Runner, store memory.Service, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		pipeline: pipeline,
		baseline: baseline,
		store:    store,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.evaluator = evaluation.New(evaluation.WithClock(func() time.Time { return o.now() }))
	return o
}

// Run executes the evaluation over the first queryCount standardized
// queries; queryCount <= 0 runs the whole catalog. Queries run strictly
// in sequence, pipeline sweep first, then baseline.
func (o *Orchestrator) Run(ctx context.Context, queryCount int) (Report, error) {
	queries := queryset.Queries()
	if queryCount > 0 && queryCount < len(queries) {
		queries = queries[:queryCount]
	}

	log.Infof("evaluation run starting: %d queries", len(queries))

	pipelineResults := make([]runner.RunResult, 0, len(queries))
	for i, q := range queries {
		log.Infof("pipeline query %d/%d: %s", i+1, len(queries), q)
		res := o.pipeline.Run(ctx, q)
		if res.Success {
			o.evaluator.Evaluate(q, res.Response, res.Trace,
				simulatedAgentTimes(res.ResponseTime), res.ResponseTime, o.store)
		} else {
			log.Warnf("pipeline query failed: %s: %s", q, res.Error)
		}
		pipelineResults = append(pipelineResults, res)
	}

	baselineResults := make([]runner.RunResult, 0, len(queries))
	for i, q := range queries {
		log.Infof("baseline query %d/%d: %s", i+1, len(queries), q)
		res := o.baseline.Run(ctx, q)
		if !res.Success {
			log.Warnf("baseline query failed: %s: %s", q, res.Error)
		}
		baselineResults = append(baselineResults, res)
	}

	comparison, err := compare.Compare(pipelineResults, baselineResults)
	if err != nil {
		return Report{}, err
	}

	stats := o.evaluator.Summary()
	report := Report{
		RunID:             uuid.NewString(),
		Timestamp:         o.now().Format(time.RFC3339),
		QueryCount:        len(queries),
		PipelineResults:   pipelineResults,
		BaselineResults:   baselineResults,
		EvaluationHistory: o.evaluator.History(),
		Comparison:        comparison,
		KeyFindings:       keyFindings,
		Summary: Summary{
			Statistics:       stats,
			Strengths:        strengths(stats),
			ImprovementAreas: improvementAreas(stats),
		},
	}

	log.Infof("evaluation run completed: %s", report.RunID)
	return report, nil
}

func simulatedAgentTimes(total float64) map[string]float64 {
	return map[string]float64{
		"planner":  total * plannerTimeShare,
		"research": total * researchTimeShare,
		"writer":   total * writerTimeShare,
	}
}

func strengths(stats map[string]float64) []string {
	return []string{
		fmt.Sprintf("High coordination score: %.2f", stats["avg_coordination"]),
		fmt.Sprintf("Effective tool usage: %.2f", stats["avg_tool_usage"]),
		fmt.Sprintf("Good actionability: %.2f", stats["avg_actionability"]),
		fmt.Sprintf("Strong relevance: %.2f", stats["avg_relevance"]),
	}
}

func improvementAreas(stats map[string]float64) []string {
	var areas []string
	if stats["avg_response_time"] > 15 {
		areas = append(areas, AreaResponseTime)
	}
	if stats["avg_readability"] < 0.7 {
		areas = append(areas, AreaReadability)
	}
	if stats["avg_workflow_efficiency"] < 0.8 {
		areas = append(areas, AreaWorkflow)
	}
	if len(areas) == 0 {
		areas = append(areas, AreaPerformingOK)
	}
	return areas
}
