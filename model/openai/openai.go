//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package openai provides an OpenAI-compatible model implementation.
//
// It targets any chat-completions endpoint that speaks the OpenAI wire
// protocol, including Groq's compatibility API which the fitness assistant
// uses by default.
package openai

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"

	"trpc.group/trpc-go/fitagent/model"
)

var _ model.Model = (*Model)(nil)

// Model is an OpenAI-compatible chat-completions client.
type Model struct {
	name        string
	client      openai.Client
	maxTokens   int
	temperature float64
}

// New creates a Model for the named chat model.
func New(name string, opt ...Option) *Model {
	opts := newOptions(opt...)
	var clientOpts []openaiopt.RequestOption
	if opts.apiKey != "" {
		clientOpts = append(clientOpts, openaiopt.WithAPIKey(opts.apiKey))
	}
	if opts.baseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(opts.baseURL))
	}
	if opts.httpClient != nil {
		clientOpts = append(clientOpts, openaiopt.WithHTTPClient(opts.httpClient))
	}
	return &Model{
		name:        name,
		client:      openai.NewClient(clientOpts...),
		maxTokens:   opts.maxTokens,
		temperature: opts.temperature,
	}
}

// Complete sends prompt as a single user message and returns the text of the
// first choice. No retries are attempted; the caller owns the fallback policy.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: m.name,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if m.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(m.maxTokens))
	}
	if m.temperature > 0 {
		params.Temperature = openai.Float(m.temperature)
	}

	completion, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", model.ErrEmptyResponse
	}
	return completion.Choices[0].Message.Content, nil
}

// Info returns the model name.
func (m *Model) Info() string {
	return m.name
}
