// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rules

import (
	"github.com/studio-revy/revy-brief/budget"
	"github.com/studio-revy/revy-brief/models"
	"github.com/studio-revy/revy-brief/trigger"
)

// BuildContext assembles the trigger environment for rule selection
// from the raw answers and the budget assessment.
//
// ownership_intent collapses to live/rental: live only for a live-in
// home, so a flip shares the rental intent. budget_fit reads "unknown"
// when the client declined to share an investment range, which keeps
// fit-based triggers quiet instead of misfiring.
func BuildContext(answers models.Answers, b budget.Assessment) trigger.Context {
	projectFor := answers.First("project_for")
	intent := "rental"
	if projectFor == "live_in" {
		intent = "live"
	}
	fit := "unknown"
	if b.HasCapacity {
		fit = string(b.Fit)
	}
	return trigger.Context{
		"ownership_mode":   projectFor,
		"ownership_intent": intent,

		"investment_range":         answers.First("investment_range"),
		"spend_philosophy":         answers.First("spend_philosophy"),
		"finish_level":             answers.First("finish_level"),
		"remodel_complexity_score": b.Complexity,
		"budget_fit":               fit,

		"occupancy":   answers.First("occupancy"),
		"scope_level": answers.First("scope_level"),
		"rooms":       answers.List("rooms"),

		"start_timing":          answers.First("start_timing"),
		"timeline_flexibility":  answers.First("timeline_flexibility"),
		"lead_time_sensitivity": answers.First("lead_time_sensitivity"),
		"permit_required":       answers.First("permit_required"),
	}
}

// Select picks the applicable rules for a context.
//
// Base rules default in: an empty trigger always shows. The FN-01
// finish-strategy variants are the opposite, opt-in only, since at most
// one variant should match a given ownership and finish combination.
// Matches keep base presentation order, finish strategies last, and
// each selected rule has its conditional subsections resolved.
func Select(ctx trigger.Context) []Rule {
	var out []Rule
	for _, r := range baseRules {
		if r.Trigger == "" || trigger.Evaluate(r.Trigger, ctx) {
			out = append(out, r.forContext(ctx))
		}
	}
	for _, r := range finishRules {
		if r.Trigger != "" && trigger.Evaluate(r.Trigger, ctx) {
			out = append(out, r.forContext(ctx))
		}
	}
	return out
}

// SelectForAnswers is the one-call path from raw answers to applicable
// rules.
func SelectForAnswers(answers models.Answers) []Rule {
	return Select(BuildContext(answers, budget.Assess(answers)))
}
