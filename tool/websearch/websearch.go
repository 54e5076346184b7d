//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package websearch provides a canned keyword-matched search tool.
//
// A real deployment would call a search API; the demonstration system keeps
// the tool deterministic so that evaluation scores are reproducible.
package websearch

import (
	"context"
	"strings"

	"trpc.group/trpc-go/fitagent/tool"
)

var _ tool.Tool = (*Search)(nil)

// snippet pairs a trigger keyword with its canned result text. Order matters:
// results are emitted in catalog order for deterministic output.
type snippet struct {
	keyword string
	info    string
}

var catalog = []snippet{
	{"workout", "Workout plans should include cardiovascular exercise, strength training, and flexibility work. Beginners should start with 3 days per week, 30-45 minutes per session."},
	{"beginner", "Beginner workouts should focus on bodyweight exercises like push-ups, squats, lunges, and planks. Start with 2-3 sets of 8-12 repetitions."},
	{"fitness", "A balanced fitness routine includes cardio (150 minutes moderate intensity per week), strength training (2-3 times per week), and flexibility exercises."},
	{"exercise", "Regular exercise provides numerous health benefits including improved cardiovascular health, stronger muscles and bones, better mental health, and weight management."},
	{"nutrition", "Proper nutrition for fitness includes adequate protein (0.8-1.2g per kg body weight), complex carbohydrates, healthy fats, and plenty of water."},
	{"diet", "A balanced diet should include lean proteins, whole grains, fruits, vegetables, and healthy fats. Avoid processed foods and excessive sugar."},
	{"cardio", "Cardio exercises include walking, running, cycling, swimming, and dancing. Aim for 150 minutes of moderate intensity or 75 minutes of vigorous intensity per week."},
	{"strength", "Strength training should target all major muscle groups at least 2 days per week. Use progressive overload to continuously challenge muscles."},
	{"yoga", "Yoga combines physical postures, breathing exercises, and meditation. It improves flexibility, strength, balance, and mental well-being."},
	{"running", "Running is an excellent cardiovascular exercise. Beginners should start with a walk-run program and gradually increase duration and intensity."},
}

const fallbackResult = "**General Fitness Information**: Regular exercise and proper nutrition are key to " +
	"maintaining good health. Consult with a healthcare provider before starting any new fitness program."

// Search matches query keywords against the canned catalog. It never fails.
type Search struct{}

// New creates a Search.
func New() *Search {
	return &Search{}
}

// Name implements tool.Tool.
func (s *Search) Name() string {
	return "web_search"
}

// Description implements tool.Tool.
func (s *Search) Description() string {
	return "Use this tool to search for information on the internet. Input should be a search " +
		"query string. This tool provides fitness and health-related information."
}

// Call returns one formatted block per catalog keyword found in the query,
// or a general fallback block when nothing matches.
func (s *Search) Call(_ context.Context, query string) (string, error) {
	queryLower := strings.ToLower(query)
	var results []string
	for _, entry := range catalog {
		if strings.Contains(queryLower, entry.keyword) {
			results = append(results, "**"+titleCase(entry.keyword)+" Information**: "+entry.info)
		}
	}
	if len(results) == 0 {
		results = append(results, fallbackResult)
	}
	return strings.Join(results, "\n\n"), nil
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
