//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package model defines the text-completion contract the agents consume.
//
// The assistant treats the LLM as a black-box function from prompt to text.
// Implementations live in subpackages (model/openai); tests substitute fakes.
package model

import (
	"context"
	"errors"
)

// ErrEmptyResponse indicates the provider returned a completion with no
// usable text content.
var ErrEmptyResponse = errors.New("model returned empty response")

// Model produces a text completion for a prompt.
//
// Implementations must be safe for sequential reuse across queries. Any
// provider failure (network, auth, malformed response) is returned as an
// error; callers decide whether to substitute a fallback response.
type Model interface {
	// Complete generates a completion for prompt.
	Complete(ctx context.Context, prompt string) (string, error)
	// Info returns a human-readable identifier for log messages.
	Info() string
}
