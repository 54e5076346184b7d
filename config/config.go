//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package config loads runtime configuration for the fitness agent system.
//
// Configuration is a two-level (section, key) lookup backed by either a local
// YAML file or the hosting environment. The environment source is selected
// automatically when the FITAGENT_API_KEY variable is present, which is how
// hosted deployments inject secrets without shipping a config file.
package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Sections and keys understood by the accessors below.
const (
	sectionAPI    = "api"
	sectionAgents = "agents"
	sectionSystem = "system"

	keyAPIKey      = "api_key"
	keyModel       = "model"
	keyBaseURL     = "base_url"
	keyMaxTokens   = "max_tokens"
	keyTemperature = "temperature"
	keyLogLevel    = "log_level"
)

// Defaults applied when a key is absent from the source.
const (
	defaultModel       = "llama3-8b-8192"
	defaultBaseURL     = "https://api.groq.com/openai/v1"
	defaultMaxTokens   = 32768
	defaultTemperature = 0.7
	defaultLogLevel    = "info"

	// placeholderAPIKey is the sample value shipped in config templates.
	// It must be rejected the same way as a missing key.
	placeholderAPIKey = "your_api_key_here"
)

// ErrAPIKeyMissing indicates the required LLM credential is absent or still
// set to the sample placeholder. It is fatal at startup.
var ErrAPIKeyMissing = errors.New("api key not configured")

// Source is a read-only (section, key) lookup.
type Source interface {
	// Get returns the value for key within section and whether it exists.
	Get(section, key string) (string, bool)
	// Name identifies the backing source for log messages.
	Name() string
}

// Config exposes typed accessors over a Source.
type Config struct {
	source Source
}

// Load selects a configuration source and validates the required keys.
// When FITAGENT_API_KEY is set in the environment the environment source is
// used; otherwise the YAML file at path is loaded. Load fails fast if the
// API key is missing or left at its placeholder value.
func Load(path string) (*Config, error) {
	src, err := detectSource(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{source: src}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config source %s: %w", src.Name(), err)
	}
	return cfg, nil
}

// New wraps an explicit Source without validation. Intended for tests.
func New(src Source) *Config {
	return &Config{source: src}
}

func (c *Config) validate() error {
	key, ok := c.source.Get(sectionAPI, keyAPIKey)
	if !ok || key == "" || key == placeholderAPIKey {
		return ErrAPIKeyMissing
	}
	return nil
}

// Get returns the raw value for (section, key) and whether it exists.
func (c *Config) Get(section, key string) (string, bool) {
	return c.source.Get(section, key)
}

// APIKey returns the LLM API credential.
func (c *Config) APIKey() string {
	v, _ := c.source.Get(sectionAPI, keyAPIKey)
	return v
}

// Model returns the LLM model identifier.
func (c *Config) Model() string {
	return c.stringOr(sectionAPI, keyModel, defaultModel)
}

// BaseURL returns the OpenAI-compatible endpoint base URL.
func (c *Config) BaseURL() string {
	return c.stringOr(sectionAPI, keyBaseURL, defaultBaseURL)
}

// MaxTokens returns the completion token budget for agent responses.
func (c *Config) MaxTokens() int {
	return c.intOr(sectionAgents, keyMaxTokens, defaultMaxTokens)
}

// Temperature returns the sampling temperature for agent responses.
func (c *Config) Temperature() float64 {
	return c.floatOr(sectionAgents, keyTemperature, defaultTemperature)
}

// LogLevel returns the configured logging level.
func (c *Config) LogLevel() string {
	return c.stringOr(sectionSystem, keyLogLevel, defaultLogLevel)
}

func (c *Config) stringOr(section, key, fallback string) string {
	if v, ok := c.source.Get(section, key); ok && v != "" {
		return v
	}
	return fallback
}

func (c *Config) intOr(section, key string, fallback int) int {
	v, ok := c.source.Get(section, key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (c *Config) floatOr(section, key string, fallback float64) float64 {
	v, ok := c.source.Get(section, key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
