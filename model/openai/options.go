//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

package openai

import "net/http"

// Option configures the Model.
type Option func(*options)

type options struct {
	apiKey      string
	baseURL     string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

func newOptions(opt ...Option) options {
	var opts options
	for _, o := range opt {
		o(&opts)
	}
	return opts
}

// WithAPIKey sets the API credential.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithBaseURL sets the endpoint base URL for OpenAI-compatible providers.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithMaxTokens caps the completion token budget. Zero means provider default.
func WithMaxTokens(n int) Option {
	return func(o *options) {
		o.maxTokens = n
	}
}

// WithTemperature sets the sampling temperature. Zero means provider default.
func WithTemperature(t float64) Option {
	return func(o *options) {
		o.temperature = t
	}
}

// WithHTTPClient overrides the underlying HTTP client. Intended for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}
