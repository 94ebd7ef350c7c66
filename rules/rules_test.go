// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-revy/revy-brief/budget"
	"github.com/studio-revy/revy-brief/models"
	"github.com/studio-revy/revy-brief/trigger"
)

func ruleIDs(rs []Rule) []string {
	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

func TestCatalogLoads(t *testing.T) {
	base := Base()
	require.Len(t, base, 6)
	assert.Equal(t, []string{"FS-01", "FS-02", "BU-01", "BU-02", "BU-03", "FN-02"}, ruleIDs(base))

	finish := FinishStrategies()
	require.Len(t, finish, 4)
	assert.Equal(t, []string{"FN-01A2", "FN-01A3", "FN-01B", "FN-01C"}, ruleIDs(finish))
}

func TestFinishStrategiesAllHaveTriggers(t *testing.T) {
	// FN-01 variants are opt-in; an empty trigger would make one
	// unconditionally selected, which the loader refuses.
	for _, r := range FinishStrategies() {
		assert.NotEmpty(t, r.Trigger, r.ID)
		assert.Equal(t, "FN-01", r.Family, r.ID)
	}
}

func TestSelectEmptyContext(t *testing.T) {
	// With nothing answered only the always-on philosophy rule shows,
	// and no finish strategy sneaks in.
	got := Select(trigger.Context{})
	assert.Equal(t, []string{"FN-02"}, ruleIDs(got))
}

func TestSelectOccupancyFeasibility(t *testing.T) {
	ctx := trigger.Context{
		"occupancy":   "full_time",
		"scope_level": "full",
	}
	got := ruleIDs(Select(ctx))
	assert.Contains(t, got, "FS-01")

	// Not living there during construction: FS-01 stays out.
	ctx["occupancy"] = "not_living_there"
	got = ruleIDs(Select(ctx))
	assert.NotContains(t, got, "FS-01")
}

func TestSelectBathroomCategoryTriggersFeasibility(t *testing.T) {
	ctx := trigger.Context{
		"occupancy": "living_unsure",
		"rooms":     []string{"guest_bath"},
	}
	assert.Contains(t, ruleIDs(Select(ctx)), "FS-01")
}

func TestSelectBudgetGuardrails(t *testing.T) {
	ctx := trigger.Context{
		"budget_fit":   "tight",
		"finish_level": "builder_plus",
		"scope_level":  "full",
		"rooms":        []string{"kitchen"},
	}
	got := ruleIDs(Select(ctx))
	assert.Contains(t, got, "BU-01")
	assert.Contains(t, got, "BU-02")
	assert.Contains(t, got, "BU-03")
}

func TestSelectUnknownBudgetFitStaysQuiet(t *testing.T) {
	got := ruleIDs(Select(trigger.Context{"budget_fit": "unknown"}))
	assert.NotContains(t, got, "BU-01")
}

func TestSelectRefreshScopeSkipsSurprises(t *testing.T) {
	ctx := trigger.Context{
		"scope_level": "refresh",
		"rooms":       []string{"kitchen", "primary_bath"},
	}
	assert.NotContains(t, ruleIDs(Select(ctx)), "BU-03")
}

func TestSelectFinishStrategyVariants(t *testing.T) {
	tests := []struct {
		name string
		ctx  trigger.Context
		want string
	}{
		{
			name: "live-in high finish",
			ctx:  trigger.Context{"ownership_mode": "live_in", "finish_level": "high"},
			want: "FN-01A2",
		},
		{
			name: "live-in very high finish",
			ctx:  trigger.Context{"ownership_mode": "live_in", "finish_level": "very_high"},
			want: "FN-01A3",
		},
		{
			name: "rental",
			ctx:  trigger.Context{"ownership_mode": "rental"},
			want: "FN-01B",
		},
		{
			name: "flip",
			ctx:  trigger.Context{"ownership_mode": "flip"},
			want: "FN-01C",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.ctx)
			ids := ruleIDs(got)
			assert.Contains(t, ids, tt.want)
			for _, r := range got {
				if r.Family == "FN-01" {
					assert.Equal(t, tt.want, r.ID)
				}
			}
			// Finish strategies come after base rules.
			assert.Equal(t, tt.want, ids[len(ids)-1])
		})
	}
}

func TestSelectLiveInMidFinishHasNoStrategy(t *testing.T) {
	got := Select(trigger.Context{"ownership_mode": "live_in", "finish_level": "mid"})
	for _, r := range got {
		assert.NotEqual(t, "FN-01", r.Family)
	}
}

func TestSubsectionVisibility(t *testing.T) {
	ctx := trigger.Context{
		"budget_fit": "mismatch",
		"rooms":      []string{"kitchen"},
	}
	var bu01 *Rule
	for _, r := range Select(ctx) {
		if r.ID == "BU-01" {
			bu01 = &r
			break
		}
	}
	require.NotNil(t, bu01)

	var titles []string
	for _, sec := range bu01.Sections {
		for _, sub := range sec.Subsections {
			titles = append(titles, sub.Title)
		}
	}
	assert.Contains(t, titles, "Mismatch (not feasible as entered)")
	assert.NotContains(t, titles, "Tight fit (trade-offs needed)")
	assert.Contains(t, titles, "Kitchen")
	assert.NotContains(t, titles, "Primary bathroom")
	assert.NotContains(t, titles, "Outdoor / patio")
}

func TestBuildContext(t *testing.T) {
	answers := models.Answers{
		"project_for":      {"flip"},
		"investment_range": {"100_200"},
		"finish_level":     {"mid"},
		"scope_level":      {"full"},
		"occupancy":        {"not_living_there"},
		"rooms":            {"kitchen", "primary_bath"},
	}
	ctx := BuildContext(answers, budget.Assess(answers))

	assert.Equal(t, "flip", ctx["ownership_mode"])
	// Only live_in reads as live intent; a flip shares the rental bucket.
	assert.Equal(t, "rental", ctx["ownership_intent"])
	assert.Equal(t, 26, ctx["remodel_complexity_score"])
	assert.Equal(t, "tight", ctx["budget_fit"])
	assert.Equal(t, []string{"kitchen", "primary_bath"}, ctx["rooms"])
}

func TestBuildContextUnknownFit(t *testing.T) {
	answers := models.Answers{"investment_range": {"not_sure"}}
	ctx := BuildContext(answers, budget.Assess(answers))
	assert.Equal(t, "unknown", ctx["budget_fit"])
}

func TestSelectForAnswersEndToEnd(t *testing.T) {
	answers := models.Answers{
		"project_for":      {"live_in"},
		"occupancy":        {"full_time"},
		"scope_level":      {"full"},
		"rooms":            {"kitchen", "primary_bath"},
		"investment_range": {"100_200"},
		"finish_level":     {"high"},
	}
	got := ruleIDs(SelectForAnswers(answers))

	// complexity 26 against capacity 26 reads tight, scope is beyond a
	// refresh, and the live-in high-finish strategy applies.
	assert.Equal(t, []string{"FS-01", "BU-01", "BU-03", "FN-02", "FN-01A2"}, got)
}
