// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package style

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-revy/revy-brief/models"
)

func TestScoreEmptyAnswers(t *testing.T) {
	r := Score(models.Answers{})

	assert.Equal(t, Parisian, r.Primary)
	assert.False(t, r.HasSecondary())
	assert.Equal(t, 0.5, r.ModernRustic)
	assert.Equal(t, 0.5, r.MinimalLayered)
	assert.Equal(t, 0.5, r.BrightMoody)
}

func TestScoreUnknownIDsIgnored(t *testing.T) {
	r := Score(models.Answers{
		"not_a_question": {"whatever"},
		"spaces_appeal":  {"space_999"},
	})

	assert.Equal(t, Parisian, r.Primary)
	assert.Equal(t, 0.5, r.BrightMoody)
}

func TestScorePrimaryByTotals(t *testing.T) {
	// Two parisian spaces against one provincial pick; runner-up is
	// outside the closeness window so no secondary is reported.
	r := Score(models.Answers{
		"spaces_appeal": {"space_13", "space_23"},
		"space_home":    {"home_02"},
	})

	assert.Equal(t, Parisian, r.Primary)
	assert.False(t, r.HasSecondary())
	assert.InDelta(t, 1.0/3.0, r.ModernRustic, 1e-9)
	assert.InDelta(t, 0.3, r.MinimalLayered, 1e-9)
	assert.InDelta(t, 0.7/3.0, r.BrightMoody, 1e-9)
}

func TestScoreSecondaryWithinCloseness(t *testing.T) {
	// space_04 is parisian 0.9 / provincial 0.1, space_03 is parisian
	// 0.3 / provincial 1. Totals 1.2 vs 1.1, within 80 percent.
	r := Score(models.Answers{
		"spaces_appeal": {"space_04", "space_03"},
	})

	require.Equal(t, Parisian, r.Primary)
	assert.Equal(t, Provincial, r.Secondary)
}

func TestScoreTieBreakCanonicalOrder(t *testing.T) {
	// Equal parisian and provincial totals resolve to parisian, the
	// earlier archetype in canonical order, with the other as a
	// secondary since the scores are identical.
	r := Score(models.Answers{
		"spaces_appeal": {"space_01"},
		"space_home":    {"home_01"},
	})

	assert.Equal(t, Parisian, r.Primary)
	assert.Equal(t, Provincial, r.Secondary)
}

func TestScoreTieAmongNonPrimary(t *testing.T) {
	// provincial 1, mediterranean 1, parisian 0.4: provincial wins the
	// primary tie by canonical order, mediterranean lands secondary.
	r := Score(models.Answers{
		"spaces_appeal": {"space_17", "space_06"},
	})

	assert.Equal(t, Provincial, r.Primary)
	assert.Equal(t, Mediterranean, r.Secondary)
}

func TestScoreAxisMeanSingleAxisQuestions(t *testing.T) {
	// Only the light question answered: bright-moody is the mean of
	// the two picks, the untouched axes rest at 0.5.
	r := Score(models.Answers{
		"light_color": {"light_01", "light_03"},
	})

	assert.InDelta(t, 0.5, r.BrightMoody, 1e-9)
	assert.Equal(t, 0.5, r.ModernRustic)
	assert.Equal(t, 0.5, r.MinimalLayered)
}

func TestScoreAxisMeanAcrossQuestions(t *testing.T) {
	// color_mood and light_color both feed bright-moody; the mean runs
	// over all contributing options regardless of source question.
	r := Score(models.Answers{
		"light_color": {"light_02"},
		"color_mood":  {"mood-04"},
	})

	assert.InDelta(t, (0.5+0.95)/2, r.BrightMoody, 1e-9)
}

func TestBandForValue(t *testing.T) {
	tests := []struct {
		v    float64
		want Band
	}{
		{0, BandLow},
		{0.33, BandLow},
		{0.34, BandMid},
		{0.5, BandMid},
		{0.66, BandMid},
		{0.67, BandHigh},
		{1, BandHigh},
		{-3, BandLow},
		{7, BandHigh},
		{math.NaN(), BandMid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandForValue(tt.v), "value %v", tt.v)
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-1))
	assert.Equal(t, 1.0, Clamp01(2))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 0.5, Clamp01(math.NaN()))
}
