//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

package calculator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallEvaluatesArithmetic(t *testing.T) {
	c := New()
	cases := []struct {
		input string
		want  string
	}{
		{"150 + 75", "The result of 150 + 75 is 225"},
		{"100 + 50", "The result of 100 + 50 is 150"},
		{"2 * (3 + 4)", "The result of 2 * (3 + 4) is 14"},
		{"10 / 4", "The result of 10 / 4 is 2.5"},
	}
	for _, tc := range cases {
		got, err := c.Call(context.Background(), tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestCallRejectsInvalidCharacters(t *testing.T) {
	c := New()
	for _, input := range []string{"rm -rf x", "1 + a", "len('x')", "2 ** 3; drop"} {
		_, err := c.Call(context.Background(), input)
		require.ErrorIs(t, err, ErrInvalidExpression, input)
	}
}

func TestCallDivisionByZero(t *testing.T) {
	c := New()
	_, err := c.Call(context.Background(), "1 / 0")
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestCallMalformedExpression(t *testing.T) {
	c := New()
	_, err := c.Call(context.Background(), "1 + ")
	require.Error(t, err)
}
