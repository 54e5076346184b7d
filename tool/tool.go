//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package tool defines the deterministic utility tools available to agents.
package tool

import "context"

// Tool is a deterministic utility an agent can invoke with a text input.
type Tool interface {
	// Name returns the tool identifier used in prompts.
	Name() string
	// Description explains to the LLM when to use the tool.
	Description() string
	// Call executes the tool with the given input.
	Call(ctx context.Context, input string) (string, error)
}

// Describe formats a tool list for inclusion in a prompt, one per line.
func Describe(tools []Tool) string {
	var out string
	for i, t := range tools {
		if i > 0 {
			out += "\n"
		}
		out += "- " + t.Name() + ": " + t.Description()
	}
	return out
}
