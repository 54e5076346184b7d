//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

// Package calculator provides the arithmetic expression tool.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/Knetic/govaluate"

	"trpc.group/trpc-go/fitagent/tool"
)

var _ tool.Tool = (*Calculator)(nil)

// ErrInvalidExpression indicates the input contains characters outside the
// arithmetic allowlist. The tool fails closed rather than guessing.
var ErrInvalidExpression = errors.New("invalid characters in expression")

// ErrDivisionByZero indicates the expression divides by zero.
var ErrDivisionByZero = errors.New("division by zero")

// allowedExpr accepts numbers and basic operators only.
var allowedExpr = regexp.MustCompile(`^[0-9+\-*/()\s.]+$`)

// Calculator evaluates basic arithmetic expressions.
type Calculator struct{}

// New creates a Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Name implements tool.Tool.
func (c *Calculator) Name() string {
	return "calculator"
}

// Description implements tool.Tool.
func (c *Calculator) Description() string {
	return "Use this tool to perform mathematical calculations. Input should be a valid " +
		"mathematical expression using numbers and basic operators (+, -, *, /, (), .)."
}

// Call evaluates input and returns a sentence describing the result.
func (c *Calculator) Call(_ context.Context, input string) (string, error) {
	if !allowedExpr.MatchString(input) {
		return "", fmt.Errorf("%w: only numbers and basic operators (+, -, *, /, (), .) are allowed", ErrInvalidExpression)
	}
	expr, err := govaluate.NewEvaluableExpression(input)
	if err != nil {
		return "", fmt.Errorf("could not evaluate expression %q: %w", input, err)
	}
	value, err := expr.Evaluate(nil)
	if err != nil {
		return "", fmt.Errorf("could not evaluate expression %q: %w", input, err)
	}
	result, ok := value.(float64)
	if !ok {
		return "", fmt.Errorf("could not evaluate expression %q: non-numeric result", input)
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return "", ErrDivisionByZero
	}
	return fmt.Sprintf("The result of %s is %s", input, strconv.FormatFloat(result, 'f', -1, 64)), nil
}
