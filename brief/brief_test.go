// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-revy/revy-brief/budget"
	"github.com/studio-revy/revy-brief/models"
	"github.com/studio-revy/revy-brief/style"
)

// fullAnswers is a realistic complete run through all three steps.
func fullAnswers() models.Answers {
	return models.Answers{
		"home_exterior_style": {"french_provincial"},
		"spaces_appeal":       {"space_04", "space_03", "space_13"},
		"space_home":          {"home_01"},
		"light_color":         {"light_02"},
		"material_palette":    {"material-01"},
		"space_feel":          {"feel-02"},
		"color_mood":          {"mood-02"},

		"project_for":          {"live_in"},
		"occupancy":            {"full_time"},
		"start_timing":         {"asap"},
		"completion_timing":    {"6_12_months"},
		"timeline_flexibility": {"somewhat"},
		"permit_required":      {"yes"},
		"rooms":                {"kitchen", "primary_bath"},
		"scope_level":          {"full"},

		"investment_range":  {"100_200"},
		"range_flexibility": {"some_buffer"},
		"spend_philosophy":  {"balanced"},
		"finish_level":      {"high"},
		"splurge_areas":     {"lighting", "stone"},
	}
}

func TestBuildFullBrief(t *testing.T) {
	b := Build(fullAnswers())

	// Snapshot labels resolve from the catalogs.
	assert.Equal(t, "My home (Will live here after the project is finished)", b.Snapshot.ProjectFor)
	assert.Equal(t, "Full renovation", b.Snapshot.ScopeLevel)
	assert.Equal(t, "Major construction and rework", b.Snapshot.ScopeLevelDetail)
	assert.Equal(t, []string{"Kitchen", "Primary bathroom"}, b.Snapshot.Rooms)
	assert.Equal(t, []string{"Lighting", "Stone / counters"}, b.Snapshot.SplurgeAreas)
	assert.Equal(t, "Neutral with High Contrast", b.Snapshot.ColorMood)

	// Exterior direction.
	assert.Equal(t, "French Provincial", b.ExteriorLabel)
	assert.Contains(t, b.DesignDirection, "balance, refinement, and timeless proportion")

	// Style scored from the taste answers.
	assert.Equal(t, style.Parisian, b.Style.Primary)
	assert.NotEmpty(t, b.Text.Title)
	assert.NotEmpty(t, b.Text.Description)
	require.Len(t, b.Profile.Axes, 3)
	assert.Equal(t, "Parisian", b.Profile.DNA.Label)

	// Budget: kitchen + primary bath at full scope and high finish is
	// round(16 * 1.6 * 1.25) = 32 against capacity 26.
	assert.Equal(t, 32, b.Budget.Complexity)
	assert.Equal(t, 26, b.Budget.Capacity)
	assert.Equal(t, budget.FitMismatch, b.Budget.Fit)

	// Rules: full-time occupancy with a full scope trips FS-01, the
	// asap start trips FS-02, mismatch trips BU-01, beyond-refresh
	// kitchen work trips BU-03, FN-02 always shows, and live-in high
	// finish picks the FN-01A2 strategy.
	var ids []string
	for _, r := range b.Rules {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"FS-01", "FS-02", "BU-01", "BU-03", "FN-02", "FN-01A2"}, ids)
}

func TestBuildEmptyAnswers(t *testing.T) {
	b := Build(models.Answers{})

	assert.Zero(t, b.Snapshot.ProjectFor)
	assert.Empty(t, b.ExteriorLabel)
	assert.Empty(t, b.DesignDirection)

	// Scoring defaults: first canonical archetype, neutral axes.
	assert.Equal(t, style.Parisian, b.Style.Primary)
	assert.Equal(t, 0.5, b.Style.BrightMoody)
	assert.NotEmpty(t, b.Text.Title)

	assert.Zero(t, b.Budget.Complexity)
	assert.Zero(t, b.Budget.Capacity)
	assert.Equal(t, budget.Fit(""), b.Budget.Fit)

	// Only the always-on philosophy rule applies.
	require.Len(t, b.Rules, 1)
	assert.Equal(t, "FN-02", b.Rules[0].ID)
}

func TestBuildUnknownExterior(t *testing.T) {
	b := Build(models.Answers{"home_exterior_style": {"igloo"}})
	assert.Empty(t, b.ExteriorLabel)
	assert.Empty(t, b.DesignDirection)
}

func TestDesignDirectionCoversAllExteriors(t *testing.T) {
	ids := []string{
		"french_provincial", "mediterranean_spanish", "cape_cod", "colonial",
		"craftsman", "modern_farmhouse", "ranch", "midcentury_modern",
		"contemporary_modern", "tudor_english_cottage", "victorian",
	}
	for _, id := range ids {
		assert.NotEmpty(t, DesignDirection(id), id)
	}
}
