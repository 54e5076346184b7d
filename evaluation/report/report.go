//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package report renders and exports evaluation reports.
//
// One suite.Report feeds every format: indented JSON for machines, a
// Markdown summary for humans, HTML rendered from that Markdown, and a
// printable PDF. Exported files carry a shared timestamp so one run's
// artifacts sort together.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"trpc.group/trpc-go/fitagent/evaluation/suite"
)

// reportTitle heads every rendered format.
const reportTitle = "Fitness Assistant Evaluation Report"

// renderer handles the metrics table in the Markdown summary.
var renderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// Exporter writes evaluation reports into a directory.
type Exporter struct {
	dir string
	now func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides the timestamp source used in file names.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// NewExporter creates an Exporter writing into dir.
func NewExporter(dir string, opts ...Option) *Exporter {
	e := &Exporter{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WriteJSON exports the full report as indented JSON and returns the
// written file path.
func (e *Exporter) WriteJSON(r suite.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	path := filepath.Join(e.dir, fmt.Sprintf("evaluation_results_%s.json", e.stamp()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// WriteMarkdown exports the Markdown summary and returns the written
// file path.
func (e *Exporter) WriteMarkdown(r suite.Report) (string, error) {
	path := filepath.Join(e.dir, fmt.Sprintf("evaluation_report_%s.md", e.stamp()))
	if err := os.WriteFile(path, []byte(Markdown(r)), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// WriteHTML renders the Markdown summary to HTML and returns the written
// file path.
func (e *Exporter) WriteHTML(r suite.Report) (string, error) {
	var body bytes.Buffer
	if err := renderer.Convert([]byte(Markdown(r)), &body); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", reportTitle)
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	path := filepath.Join(e.dir, fmt.Sprintf("evaluation_report_%s.html", e.stamp()))
	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func (e *Exporter) stamp() string {
	return e.now().Format("20060102_150405")
}

// Markdown renders the human-readable summary of a report.
func Markdown(r suite.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", reportTitle)
	fmt.Fprintf(&b, "**Generated:** %s\n", r.Timestamp)
	fmt.Fprintf(&b, "**Run ID:** %s\n", r.RunID)
	fmt.Fprintf(&b, "**Test Queries:** %d\n\n", r.QueryCount)

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "This evaluation compares the multi-agent pipeline against a single-agent baseline across %d standardized fitness queries.\n\n", r.QueryCount)

	if len(r.KeyFindings) > 0 {
		b.WriteString("### Key Findings\n\n")
		for _, finding := range r.KeyFindings {
			fmt.Fprintf(&b, "- %s\n", finding)
		}
		b.WriteString("\n")
	}

	b.WriteString("## System Performance Metrics\n\n")
	stats := r.Summary.Statistics
	fmt.Fprintf(&b, "- **Average Response Quality:** %.3f/1.000\n", stats["avg_quality_score"])
	fmt.Fprintf(&b, "- **Average System Efficiency:** %.3f/1.000\n", stats["avg_efficiency_score"])
	fmt.Fprintf(&b, "- **Average Response Time:** %.2f seconds\n", stats["avg_response_time"])
	fmt.Fprintf(&b, "- **Total Evaluations:** %.0f\n\n", stats["total_evaluations"])

	b.WriteString("## Comparative Analysis\n\n")
	b.WriteString("| Metric | Pipeline | Baseline | Improvement |\n")
	b.WriteString("|--------|----------|----------|-------------|\n")
	fmt.Fprintf(&b, "| Response Time | %.2fs | %.2fs | %.1f%% |\n",
		r.Comparison.MultiAgentMetrics.AvgResponseTime,
		r.Comparison.BaselineMetrics.AvgResponseTime,
		r.Comparison.Improvements.ResponseTimeChangePercent)
	fmt.Fprintf(&b, "| Response Length | %.0f words | %.0f words | %.1f%% |\n",
		r.Comparison.MultiAgentMetrics.AvgResponseLength,
		r.Comparison.BaselineMetrics.AvgResponseLength,
		r.Comparison.Improvements.ResponseLengthImprovementPercent)
	fmt.Fprintf(&b, "| Success Rate | %.1f%% | %.1f%% | %.1f%% |\n\n",
		r.Comparison.MultiAgentMetrics.SuccessRate*100,
		r.Comparison.BaselineMetrics.SuccessRate*100,
		r.Comparison.Improvements.SuccessRateImprovementPercent)

	fmt.Fprintf(&b, "**Recommendation:** %s\n\n", r.Comparison.Recommendation)

	b.WriteString("### Qualitative Verdicts\n\n")
	fmt.Fprintf(&b, "- **Time Performance:** %s\n", r.Comparison.Analysis.TimePerformance)
	fmt.Fprintf(&b, "- **Content Quality:** %s\n", r.Comparison.Analysis.ContentQuality)
	fmt.Fprintf(&b, "- **Reliability:** %s\n\n", r.Comparison.Analysis.Reliability)

	if len(r.Summary.Strengths) > 0 {
		b.WriteString("## Identified Strengths\n\n")
		for _, strength := range r.Summary.Strengths {
			fmt.Fprintf(&b, "- %s\n", strength)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Areas for Improvement\n\n")
	for _, area := range r.Summary.ImprovementAreas {
		fmt.Fprintf(&b, "- %s\n", area)
	}
	b.WriteString("\n")

	return b.String()
}
