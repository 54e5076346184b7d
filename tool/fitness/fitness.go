//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package fitness provides the fitness topic research tool backed by a small
// static knowledge base.
package fitness

import (
	"context"
	"fmt"
	"strings"

	"trpc.group/trpc-go/fitagent/tool"
)

var _ tool.Tool = (*Research)(nil)

// section is one titled bullet list inside a topic.
type section struct {
	name  string
	items []string
}

// topic is one knowledge base entry. Sections render in declaration order.
type topic struct {
	key      string
	overview string
	sections []section
}

var knowledgeBase = []topic{
	{
		key:      "beginner workout",
		overview: "A beginner workout plan should be simple, progressive, and sustainable.",
		sections: []section{
			{"components", []string{
				"Warm-up: 5-10 minutes of light cardio",
				"Strength training: 2-3 times per week, focusing on major muscle groups",
				"Cardio: 150 minutes of moderate intensity per week",
				"Cool-down: 5-10 minutes of stretching",
			}},
			{"exercises", []string{
				"Bodyweight squats: 2-3 sets of 8-12 reps",
				"Push-ups (modified if needed): 2-3 sets of 5-10 reps",
				"Plank: 2-3 sets of 15-30 seconds",
				"Walking lunges: 2-3 sets of 8-12 reps per leg",
				"Glute bridges: 2-3 sets of 10-15 reps",
			}},
			{"progression", []string{"Increase reps, sets, or duration by 10% each week"}},
			{"rest", []string{"Take at least one full rest day between strength training sessions"}},
		},
	},
	{
		key:      "nutrition",
		overview: "Proper nutrition supports fitness goals and overall health.",
		sections: []section{
			{"macronutrients", []string{
				"Protein: 0.8-1.2g per kg body weight for muscle maintenance",
				"Carbohydrates: 45-65% of total calories for energy",
				"Fats: 20-35% of total calories for hormone production",
			}},
			{"timing", []string{
				"Pre-workout: Light carbs and protein 1-2 hours before",
				"Post-workout: Protein and carbs within 30 minutes",
				"Hydration: 8-10 glasses of water daily, more during exercise",
			}},
			{"foods", []string{
				"Lean proteins: chicken, fish, eggs, beans",
				"Complex carbs: oats, quinoa, sweet potatoes",
				"Healthy fats: avocados, nuts, olive oil",
				"Fruits and vegetables: variety of colors for nutrients",
			}},
		},
	},
}

// Research answers fitness topic lookups from the static knowledge base.
// It never fails; unknown topics get a generic referral answer.
type Research struct{}

// New creates a Research tool.
func New() *Research {
	return &Research{}
}

// Name implements tool.Tool.
func (r *Research) Name() string {
	return "fitness_research"
}

// Description implements tool.Tool.
func (r *Research) Description() string {
	return "Use this tool to research detailed fitness topics like workout plans, nutrition, " +
		"exercise techniques. Input should be a fitness-related topic or question."
}

// Call returns the knowledge base entry whose key (or any word of it)
// appears in the topic, or a generic referral when nothing matches.
func (r *Research) Call(_ context.Context, input string) (string, error) {
	topicLower := strings.ToLower(input)
	for _, entry := range knowledgeBase {
		if matches(topicLower, entry.key) {
			return render(entry), nil
		}
	}
	return fmt.Sprintf("Research on '%s': This is a fitness-related topic that would benefit from "+
		"professional guidance. Consider consulting with a certified personal trainer or "+
		"nutritionist for personalized advice.", input), nil
}

func matches(topicLower, key string) bool {
	if strings.Contains(topicLower, key) {
		return true
	}
	for _, word := range strings.Fields(key) {
		if strings.Contains(topicLower, word) {
			return true
		}
	}
	return false
}

func render(entry topic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s Research**\n\n", titleCase(entry.key))
	fmt.Fprintf(&b, "**Overview**: %s\n\n", entry.overview)
	for _, s := range entry.sections {
		fmt.Fprintf(&b, "**%s**:\n", titleCase(s.name))
		for _, item := range s.items {
			fmt.Fprintf(&b, "• %s\n", item)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
