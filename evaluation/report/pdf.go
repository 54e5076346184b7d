//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

package report

import (
	"fmt"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"trpc.group/trpc-go/fitagent/evaluation/suite"
)

// WritePDF exports a printable summary and returns the written file path.
func (e *Exporter) WritePDF(r suite.Report) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(reportTitle, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 9, reportTitle, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("Generated: %s", r.Timestamp), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Run ID: %s", r.RunID), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Test Queries: %d", r.QueryCount), "", "L", false)
	pdf.Ln(4)

	if len(r.KeyFindings) > 0 {
		section(pdf, "Key Findings")
		for _, finding := range r.KeyFindings {
			line(pdf, "- %s", finding)
		}
		pdf.Ln(4)
	}

	stats := r.Summary.Statistics
	section(pdf, "System Performance Metrics")
	line(pdf, "Average Response Quality: %.3f/1.000", stats["avg_quality_score"])
	line(pdf, "Average System Efficiency: %.3f/1.000", stats["avg_efficiency_score"])
	line(pdf, "Average Response Time: %.2f seconds", stats["avg_response_time"])
	line(pdf, "Total Evaluations: %.0f", stats["total_evaluations"])
	pdf.Ln(4)

	section(pdf, "Comparative Analysis")
	metricsRow(pdf, "Metric", "Pipeline", "Baseline", "Improvement", true)
	metricsRow(pdf, "Response Time",
		fmt.Sprintf("%.2fs", r.Comparison.MultiAgentMetrics.AvgResponseTime),
		fmt.Sprintf("%.2fs", r.Comparison.BaselineMetrics.AvgResponseTime),
		fmt.Sprintf("%.1f%%", r.Comparison.Improvements.ResponseTimeChangePercent), false)
	metricsRow(pdf, "Response Length",
		fmt.Sprintf("%.0f words", r.Comparison.MultiAgentMetrics.AvgResponseLength),
		fmt.Sprintf("%.0f words", r.Comparison.BaselineMetrics.AvgResponseLength),
		fmt.Sprintf("%.1f%%", r.Comparison.Improvements.ResponseLengthImprovementPercent), false)
	metricsRow(pdf, "Success Rate",
		fmt.Sprintf("%.1f%%", r.Comparison.MultiAgentMetrics.SuccessRate*100),
		fmt.Sprintf("%.1f%%", r.Comparison.BaselineMetrics.SuccessRate*100),
		fmt.Sprintf("%.1f%%", r.Comparison.Improvements.SuccessRateImprovementPercent), false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.MultiCell(0, 5, "Recommendation:", "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, r.Comparison.Recommendation, "", "L", false)
	pdf.Ln(4)

	if len(r.Summary.Strengths) > 0 {
		section(pdf, "Identified Strengths")
		for _, strength := range r.Summary.Strengths {
			line(pdf, "- %s", strength)
		}
		pdf.Ln(4)
	}

	section(pdf, "Areas for Improvement")
	for _, area := range r.Summary.ImprovementAreas {
		line(pdf, "- %s", area)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("evaluation_report_%s.pdf", e.stamp()))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 7, title, "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
}

func line(pdf *fpdf.Fpdf, format string, args ...any) {
	pdf.MultiCell(0, 5, fmt.Sprintf(format, args...), "", "L", false)
}

func metricsRow(pdf *fpdf.Fpdf, metric, pipeline, baseline, improvement string, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(45, 6, metric, "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, pipeline, "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, baseline, "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, improvement, "1", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}
