//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package metric implements the heuristic scores the evaluator aggregates.
//
// All scores are deterministic functions of their inputs and fall in
// [0, 1]. Text metrics judge a single response, coordination and
// performance metrics judge the agent trace and timing of a run.
package metric

import (
	"math"
	"regexp"
	"strings"
)

// fitnessKeywords signal domain coverage when present in a response.
var fitnessKeywords = []string{
	"exercise", "workout", "fitness", "strength", "cardio",
	"nutrition", "diet", "protein", "calories", "muscle",
	"training", "recovery", "sets", "reps", "intensity",
	"form", "technique", "safety",
}

// actionWords signal actionable guidance.
var actionWords = []string{
	"start", "begin", "perform", "do", "try", "practice", "follow",
	"avoid", "include", "focus", "aim", "target", "maintain", "increase",
}

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	wordToken     = regexp.MustCompile(`\b\w+\b`)

	instructionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+\s*(sets?|reps?|repetitions?|minutes?|times?)`),
		regexp.MustCompile(`(start|begin)\s+with`),
		regexp.MustCompile(`(aim|target)\s+for`),
		regexp.MustCompile(`\d+[-–]\d+\s*(minutes?|hours?|times?)`),
	}

	sequencingWords = []string{"step", "first", "second", "then", "next", "finally"}
)

// Readability scores sentence length against an ideal of 17.5 words per
// sentence. Responses with no sentences score zero.
func Readability(text string) float64 {
	var sentences []string
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return 0.0
	}

	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	mean := float64(total) / float64(len(sentences))

	const ideal = 17.5
	var score float64
	if mean >= 10 && mean <= 25 {
		score = 1 - math.Abs(mean-ideal)/ideal
	} else {
		score = math.Max(0, 1-math.Abs(mean-ideal)/30)
	}
	return clamp(score)
}

// Completeness scores how much of the query the response covers, combining
// query-word overlap, fitness keyword density and structural formatting.
func Completeness(query, response string) float64 {
	queryWords := strings.Fields(strings.ToLower(query))
	responseSet := wordSet(strings.Fields(strings.ToLower(response)))

	overlap := 0.0
	if len(queryWords) > 0 {
		hits := 0
		for _, w := range queryWords {
			if responseSet[w] {
				hits++
			}
		}
		overlap = float64(hits) / float64(len(queryWords))
	}

	keywords := math.Min(1, float64(countFitnessKeywords(response))/5)

	structure := 0.0
	if strings.Contains(response, "**") || strings.Contains(response, "*") {
		structure += 0.3
	}
	if containsAny(response, []string{"1.", "2.", "a)", "b)"}) {
		structure += 0.3
	}
	if len(strings.Split(response, "\n")) > 3 {
		structure += 0.4
	}

	return clamp(0.4*overlap + 0.3*keywords + 0.3*structure)
}

// Relevance scores topical alignment between query and response.
func Relevance(query, response string) float64 {
	queryTokens := wordSet(wordToken.FindAllString(strings.ToLower(query), -1))
	responseTokens := wordSet(wordToken.FindAllString(strings.ToLower(response), -1))

	overlap := 0.0
	if len(queryTokens) > 0 {
		hits := 0
		for t := range queryTokens {
			if responseTokens[t] {
				hits++
			}
		}
		overlap = float64(hits) / float64(len(queryTokens))
	}

	keywords := math.Min(1, float64(countFitnessKeywords(response))/3)

	// A fitness query answered without any training vocabulary is off
	// topic even when token overlap is high.
	contextScore := 1.0
	queryLower := strings.ToLower(query)
	if strings.Contains(queryLower, "fitness") || strings.Contains(queryLower, "workout") {
		responseLower := strings.ToLower(response)
		if !containsAny(responseLower, []string{"exercise", "workout", "fitness", "training"}) {
			contextScore = 0.5
		}
	}

	return clamp(0.4*overlap + 0.4*keywords + 0.2*contextScore)
}

// Actionability scores how much concrete, executable guidance the response
// carries: action verbs, numbered instructions and sequencing cues.
func Actionability(response string) float64 {
	responseLower := strings.ToLower(response)

	actions := 0
	for _, w := range actionWords {
		if strings.Contains(responseLower, w) {
			actions++
		}
	}

	instructions := 0
	for _, p := range instructionPatterns {
		if p.MatchString(responseLower) {
			instructions++
		}
	}

	sequencing := 0
	for _, w := range sequencingWords {
		if strings.Contains(responseLower, w) {
			sequencing++
		}
	}

	return clamp(0.4*math.Min(1, float64(actions)/5) +
		0.4*math.Min(1, float64(instructions)/3) +
		0.2*math.Min(1, float64(sequencing)/4))
}

// WordCount returns the whitespace-delimited word count of text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func countFitnessKeywords(response string) int {
	responseLower := strings.ToLower(response)
	n := 0
	for _, kw := range fitnessKeywords {
		if strings.Contains(responseLower, kw) {
			n++
		}
	}
	return n
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
