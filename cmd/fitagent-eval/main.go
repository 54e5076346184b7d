//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// fitagent-eval runs the comparative evaluation of the fitness assistant:
// the multi-agent pipeline against the single-agent baseline over the
// standardized query set, exporting the results in every report format.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/fitagent/agent"
	"trpc.group/trpc-go/fitagent/config"
	"trpc.group/trpc-go/fitagent/evaluation/report"
	"trpc.group/trpc-go/fitagent/evaluation/suite"
	"trpc.group/trpc-go/fitagent/log"
	"trpc.group/trpc-go/fitagent/memory/inmemory"
	"trpc.group/trpc-go/fitagent/model/openai"
	"trpc.group/trpc-go/fitagent/runner"
	"trpc.group/trpc-go/fitagent/tool/calculator"
	"trpc.group/trpc-go/fitagent/tool/fitness"
	"trpc.group/trpc-go/fitagent/tool/websearch"
)

// quickQueryCount is the sweep size of a quick evaluation.
const quickQueryCount = 5

var opts struct {
	evalType   string
	outputDir  string
	configPath string
	verbose    bool
}

func main() {
	cmd := &cobra.Command{
		Use:          "fitagent-eval",
		Short:        "Compare the multi-agent fitness pipeline against the single-agent baseline",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}

	cmd.Flags().StringVar(&opts.evalType, "type", "full", "evaluation type: quick (first 5 queries) or full")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", ".", "directory for exported reports")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "configuration file path")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	var queryCount int
	switch opts.evalType {
	case "quick":
		queryCount = quickQueryCount
	case "full":
		queryCount = 0
	default:
		return fmt.Errorf("unknown evaluation type %q: want quick or full", opts.evalType)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.verbose {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(cfg.LogLevel())
	}

	m := openai.New(cfg.Model(),
		openai.WithAPIKey(cfg.APIKey()),
		openai.WithBaseURL(cfg.BaseURL()),
		openai.WithMaxTokens(cfg.MaxTokens()),
		openai.WithTemperature(cfg.Temperature()),
	)
	tools := agent.Toolset{
		Calculator:      calculator.New(),
		WebSearch:       websearch.New(),
		FitnessResearch: fitness.New(),
	}

	pipelineMemory := inmemory.New()
	baselineMemory := inmemory.New()
	orchestrator := suite.New(
		runner.NewPipeline(m, pipelineMemory, tools),
		runner.NewBaseline(m, baselineMemory, tools),
		pipelineMemory,
	)

	result, err := orchestrator.Run(cmd.Context(), queryCount)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	exporter := report.NewExporter(opts.outputDir)
	jsonPath, err := exporter.WriteJSON(result)
	if err != nil {
		return err
	}
	mdPath, err := exporter.WriteMarkdown(result)
	if err != nil {
		return err
	}
	htmlPath, err := exporter.WriteHTML(result)
	if err != nil {
		return err
	}
	pdfPath, err := exporter.WritePDF(result)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Evaluation completed: %d queries\n", result.QueryCount)
	fmt.Fprintf(out, "  Final score:      %.3f\n", result.Summary.Statistics["avg_final_score"])
	fmt.Fprintf(out, "  Quality score:    %.3f\n", result.Summary.Statistics["avg_quality_score"])
	fmt.Fprintf(out, "  Efficiency score: %.3f\n", result.Summary.Statistics["avg_efficiency_score"])
	fmt.Fprintf(out, "  Recommendation:   %s\n", result.Comparison.Recommendation)
	fmt.Fprintln(out, "Key findings:")
	for _, finding := range result.KeyFindings {
		fmt.Fprintf(out, "  - %s\n", finding)
	}
	fmt.Fprintf(out, "Reports written:\n  %s\n  %s\n  %s\n  %s\n", jsonPath, mdPath, htmlPath, pdfPath)
	return nil
}
