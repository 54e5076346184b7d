//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/fitagent/model"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func completionBody(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "llama3-8b-8192",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotPath string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(completionBody("drink water")))
	})

	m := New("llama3-8b-8192",
		WithAPIKey("sk-test"),
		WithBaseURL(srv.URL),
		WithMaxTokens(128),
		WithTemperature(0.7),
	)

	got, err := m.Complete(context.Background(), "hydration advice")
	require.NoError(t, err)
	assert.Equal(t, "drink water", got)
	assert.Equal(t, "/chat/completions", gotPath)
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body := completionBody("")
		body["choices"] = []map[string]any{}
		require.NoError(t, json.NewEncoder(w).Encode(body))
	})

	m := New("llama3-8b-8192", WithAPIKey("sk-test"), WithBaseURL(srv.URL))

	_, err := m.Complete(context.Background(), "anything")
	require.ErrorIs(t, err, model.ErrEmptyResponse)
}

func TestCompleteProviderError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	})

	m := New("llama3-8b-8192", WithAPIKey("sk-bad"), WithBaseURL(srv.URL))

	_, err := m.Complete(context.Background(), "anything")
	require.Error(t, err)
}

func TestInfo(t *testing.T) {
	assert.Equal(t, "llama3-8b-8192", New("llama3-8b-8192").Info())
}
