// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package style

import "math"

// Archetype is one of the three fixed style families the quiz
// classifies a user into. The set is closed; declaration order below is
// the canonical order used for deterministic tie-breaking.
type Archetype string

const (
	Parisian      Archetype = "parisian"
	Provincial    Archetype = "provincial"
	Mediterranean Archetype = "mediterranean"
)

// Archetypes lists the archetypes in canonical order.
var Archetypes = []Archetype{Parisian, Provincial, Mediterranean}

// Label returns the display label for an archetype.
func (a Archetype) Label() string {
	switch a {
	case Parisian:
		return "Parisian"
	case Provincial:
		return "Provincial"
	case Mediterranean:
		return "Mediterranean"
	}
	return ""
}

// Valid reports whether a is a member of the closed archetype set.
func (a Archetype) Valid() bool {
	return a == Parisian || a == Provincial || a == Mediterranean
}

// Result is the outcome of scoring a quiz: a primary archetype, an
// optional close-second archetype, and three continuous style axes
// normalized to [0,1].
//
// Axis orientation: 0 is the modern / minimal / bright end, 1 is the
// rustic / layered / moody end.
type Result struct {
	Primary   Archetype `json:"primary_archetype"`
	Secondary Archetype `json:"secondary_archetype,omitempty"`

	ModernRustic   float64 `json:"modern_rustic"`
	MinimalLayered float64 `json:"minimal_layered"`
	BrightMoody    float64 `json:"bright_moody"`
}

// HasSecondary reports whether a close-second archetype was detected.
func (r Result) HasSecondary() bool {
	return r.Secondary != ""
}

// Band is a discrete low/mid/high bucket derived from an axis value.
type Band string

const (
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandHigh Band = "high"
)

// Profile-band thresholds. These are distinct from the 0.4/0.6
// partition the result-text generator uses; the two bucketings serve
// different consumers and must not be unified.
const (
	bandLowUpper = 0.34
	bandMidUpper = 0.67
)

// Clamp01 clamps v to [0,1]. NaN maps to the midpoint so a malformed
// axis value degrades to a neutral band instead of crashing a consumer.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0.5
	}
	return math.Max(0, math.Min(1, v))
}

// BandForValue buckets an axis value into low/mid/high using the
// profile thresholds (0.34/0.67). Input is clamped first.
func BandForValue(v float64) Band {
	v = Clamp01(v)
	if v < bandLowUpper {
		return BandLow
	}
	if v < bandMidUpper {
		return BandMid
	}
	return BandHigh
}
