//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package queryset defines the standardized test queries the evaluation
// suite runs, together with per-query response grading.
package queryset

import (
	"errors"
	"strings"
)

// ErrQueryNotFound is returned when grading references an unknown query ID.
var ErrQueryNotFound = errors.New("query ID not found")

// Item is one standardized test query with its expected response shape.
type Item struct {
	ID               string   `json:"id"`
	Query            string   `json:"query"`
	Category         string   `json:"category"`
	Complexity       string   `json:"complexity"`
	ExpectedElements []string `json:"expected_elements"`
	MinWords         int      `json:"min_words"`
	MaxWords         int      `json:"max_words"`
	RequiredKeywords []string `json:"keywords_must_include"`
}

// Grade is the outcome of checking a response against an Item.
type Grade struct {
	QueryID          string  `json:"query_id"`
	PassesLength     bool    `json:"passes_length_check"`
	IncludesKeywords bool    `json:"includes_required_keywords"`
	KeywordCoverage  float64 `json:"keyword_coverage"`
	LengthScore      float64 `json:"length_score"`
	ExpectedMatch    float64 `json:"overall_expected_match"`
}

var catalog = []Item{
	{
		ID:               "beginner_001",
		Query:            "Create a beginner workout plan for someone who wants to start exercising",
		Category:         "workout_planning",
		Complexity:       "medium",
		ExpectedElements: []string{"warm-up", "strength", "cardio", "cool-down", "progression"},
		MinWords:         100,
		MaxWords:         400,
		RequiredKeywords: []string{"beginner", "exercise", "workout", "plan"},
	},
	{
		ID:               "nutrition_001",
		Query:            "What should I eat before and after a workout for optimal performance?",
		Category:         "nutrition",
		Complexity:       "medium",
		ExpectedElements: []string{"pre-workout", "post-workout", "timing", "nutrients"},
		MinWords:         80,
		MaxWords:         300,
		RequiredKeywords: []string{"nutrition", "protein", "carbs", "timing"},
	},
	{
		ID:               "strength_001",
		Query:            "What are the best exercises for building upper body strength?",
		Category:         "exercise_selection",
		Complexity:       "low",
		ExpectedElements: []string{"exercises", "muscle_groups", "sets_reps", "form"},
		MinWords:         60,
		MaxWords:         250,
		RequiredKeywords: []string{"upper body", "strength", "exercises"},
	},
	{
		ID:               "cardio_001",
		Query:            "Design a 30-minute HIIT workout routine for fat loss",
		Category:         "workout_planning",
		Complexity:       "high",
		ExpectedElements: []string{"hiit", "intervals", "exercises", "timing", "fat_loss"},
		MinWords:         120,
		MaxWords:         400,
		RequiredKeywords: []string{"HIIT", "30 minute", "intervals", "fat loss"},
	},
	{
		ID:               "endurance_001",
		Query:            "How can I improve my running endurance safely?",
		Category:         "performance_improvement",
		Complexity:       "medium",
		ExpectedElements: []string{"progression", "safety", "training_plan", "techniques"},
		MinWords:         80,
		MaxWords:         300,
		RequiredKeywords: []string{"running", "endurance", "safely", "improve"},
	},
	{
		ID:               "home_001",
		Query:            "Create a home workout routine with no equipment needed",
		Category:         "workout_planning",
		Complexity:       "medium",
		ExpectedElements: []string{"bodyweight", "home", "routine", "no_equipment"},
		MinWords:         100,
		MaxWords:         350,
		RequiredKeywords: []string{"home workout", "no equipment", "bodyweight"},
	},
	{
		ID:               "recovery_001",
		Query:            "What are the best recovery strategies after intense workouts?",
		Category:         "recovery",
		Complexity:       "medium",
		ExpectedElements: []string{"rest", "nutrition", "sleep", "active_recovery"},
		MinWords:         80,
		MaxWords:         300,
		RequiredKeywords: []string{"recovery", "rest", "intense workout"},
	},
	{
		ID:               "weight_loss_001",
		Query:            "Design a comprehensive fitness plan for weight loss including diet and exercise",
		Category:         "comprehensive_planning",
		Complexity:       "high",
		ExpectedElements: []string{"diet", "exercise", "plan", "weight_loss", "comprehensive"},
		MinWords:         150,
		MaxWords:         500,
		RequiredKeywords: []string{"weight loss", "diet", "exercise", "fitness plan"},
	},
	{
		ID:               "injury_001",
		Query:            "What exercises are safe for someone with knee problems?",
		Category:         "special_populations",
		Complexity:       "high",
		ExpectedElements: []string{"safety", "modifications", "knee_friendly", "alternatives"},
		MinWords:         100,
		MaxWords:         350,
		RequiredKeywords: []string{"knee problems", "safe exercises", "modifications"},
	},
	{
		ID:               "motivation_001",
		Query:            "How can I stay motivated to exercise consistently?",
		Category:         "motivation_psychology",
		Complexity:       "low",
		ExpectedElements: []string{"motivation", "consistency", "strategies", "tips"},
		MinWords:         60,
		MaxWords:         250,
		RequiredKeywords: []string{"motivated", "consistently", "exercise"},
	},
}

// Items returns the full catalog in its fixed order.
func Items() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}

// Queries returns the query strings in catalog order.
func Queries() []string {
	out := make([]string, len(catalog))
	for i, item := range catalog {
		out[i] = item.Query
	}
	return out
}

// Lookup returns the catalog item for id.
func Lookup(id string) (Item, error) {
	for _, item := range catalog {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrQueryNotFound
}

// GradeResponse checks a response against the expectations of the catalog
// item identified by id. Keyword matching is a case-insensitive substring
// check. The keyword gate passes at 80% coverage; the overall match weighs
// keyword coverage over length fit.
func GradeResponse(id, response string) (Grade, error) {
	item, err := Lookup(id)
	if err != nil {
		return Grade{}, err
	}

	g := Grade{QueryID: id}

	words := len(strings.Fields(response))
	switch {
	case words >= item.MinWords && words <= item.MaxWords:
		g.PassesLength = true
		g.LengthScore = 1.0
	case words < item.MinWords:
		g.LengthScore = float64(words) / float64(item.MinWords)
	default:
		over := float64(words-item.MaxWords) / float64(item.MaxWords)
		g.LengthScore = 1.0 - over
		if g.LengthScore < 0.5 {
			g.LengthScore = 0.5
		}
	}

	responseLower := strings.ToLower(response)
	found := 0
	for _, kw := range item.RequiredKeywords {
		if strings.Contains(responseLower, strings.ToLower(kw)) {
			found++
		}
	}
	g.KeywordCoverage = float64(found) / float64(len(item.RequiredKeywords))
	g.IncludesKeywords = g.KeywordCoverage >= 0.8

	g.ExpectedMatch = 0.3*g.LengthScore + 0.7*g.KeywordCoverage
	return g, nil
}
