// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateEquality(t *testing.T) {
	ctx := Context{
		"scope_level":  "full",
		"finish_level": "high",
	}

	tests := []struct {
		expr string
		want bool
	}{
		{"scope_level == full", true},
		{"scope_level = full", true},
		{"scope_level == refresh", false},
		{"scope_level != refresh", true},
		{"scope_level != full", false},
		// Unbound names fall back to string literals.
		{"nonexistent == nonexistent", true},
		{"nonexistent == full", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Evaluate(tt.expr, ctx), tt.expr)
	}
}

func TestEvaluateNumericComparison(t *testing.T) {
	ctx := Context{
		"remodel_complexity_score": 26,
		"capacity":                 26.0,
		"label":                    "high",
	}

	tests := []struct {
		expr string
		want bool
	}{
		{"remodel_complexity_score >= 20", true},
		{"remodel_complexity_score > 26", false},
		{"remodel_complexity_score <= 26", true},
		{"remodel_complexity_score < 10", false},
		{"capacity >= remodel_complexity_score", true},
		// Numeric strings coerce.
		{"30 > remodel_complexity_score", true},
		// Non-numbers never satisfy an ordering operator.
		{"label > 5", false},
		{"label < 5", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Evaluate(tt.expr, ctx), tt.expr)
	}
}

func TestEvaluateNumberStringEquality(t *testing.T) {
	// Equality compares string forms, so an int context value matches
	// its literal spelling.
	ctx := Context{"remodel_complexity_score": 26}
	assert.True(t, Evaluate("remodel_complexity_score == 26", ctx))
	assert.False(t, Evaluate("remodel_complexity_score == 26.5", ctx))
}

func TestEvaluateMembership(t *testing.T) {
	ctx := Context{
		"rooms": []string{"kitchen", "primary_bath", "laundry"},
		"empty": []string{},
		"one":   "kitchen",
	}

	tests := []struct {
		expr string
		want bool
	}{
		{"rooms include kitchen", true},
		{"rooms includes kitchen", true},
		{"rooms contains kitchen", true},
		{"rooms include powder", false},
		{"empty include kitchen", false},
		// Scalars coerce to one-element lists.
		{"one include kitchen", true},
		{"one include laundry", false},
		// "bathroom" is a category: any element mentioning bath.
		{"rooms include bathroom", true},
		{"empty include bathroom", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Evaluate(tt.expr, ctx), tt.expr)
	}
}

func TestEvaluateBathroomCategory(t *testing.T) {
	assert.True(t, Evaluate("rooms include bathroom", Context{"rooms": []string{"guest_bath"}}))
	assert.True(t, Evaluate("rooms include bathroom", Context{"rooms": []string{"primary_bath"}}))
	assert.False(t, Evaluate("rooms include bathroom", Context{"rooms": []string{"kitchen", "powder"}}))
}

func TestEvaluateConnectors(t *testing.T) {
	ctx := Context{
		"scope_level": "full",
		"budget_fit":  "tight",
		"rooms":       []string{"kitchen"},
	}

	tests := []struct {
		expr string
		want bool
	}{
		{"scope_level == full AND budget_fit == tight", true},
		{"scope_level == full AND budget_fit == mismatch", false},
		{"scope_level == refresh OR budget_fit == tight", true},
		{"scope_level == refresh OR budget_fit == mismatch", false},
		// AND binds tighter than OR.
		{"scope_level == refresh AND budget_fit == tight OR rooms include kitchen", true},
		{"scope_level == full AND budget_fit == tight OR rooms include powder", true},
		{"scope_level == full AND budget_fit == mismatch OR rooms include powder", false},
		// Longer OR chains short-circuit on the first hit.
		{"a == b OR c == d OR scope_level == full", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Evaluate(tt.expr, ctx), tt.expr)
	}
}

func TestEvaluateMalformed(t *testing.T) {
	ctx := Context{"scope_level": "full"}

	tests := []struct {
		expr string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"scope_level", false},
		{"scope_level ==", false},
		{"AND", false},
		{"OR OR OR", false},
		{"scope_level == full AND", false},
		{"AND scope_level == full", false},
		// A dangling connector does not poison a later clause.
		{"scope_level == full OR", true},
		{"garbage tokens here scope_level == full", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Evaluate(tt.expr, ctx), "%q", tt.expr)
	}
}

func TestEvaluateWhitespaceNormalization(t *testing.T) {
	ctx := Context{"scope_level": "full"}
	assert.True(t, Evaluate("  scope_level   ==\tfull  ", ctx))
}
