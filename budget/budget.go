// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package budget

import (
	"math"

	"github.com/studio-revy/revy-brief/models"
)

// Fit classifies how a project's complexity sits against the client's
// stated investment capacity.
type Fit string

const (
	FitComfortable Fit = "comfortable"
	FitTight       Fit = "tight"
	FitMismatch    Fit = "mismatch"
)

// roomPoints assigns a relative complexity weight to each selectable
// room. whole_home is a package rate, not a sum of the parts.
var roomPoints = map[string]int{
	"kitchen":      10,
	"primary_bath": 6,
	"guest_bath":   6,
	"powder":       3,
	"laundry":      2,
	"living":       1,
	"family":       1,
	"dining":       1,
	"bedrooms":     2,
	"nursery":      1,
	"office":       1,
	"entry":        1,
	"outdoor":      1,
	"whole_home":   18,
}

// scopeMultipliers scales complexity by how deep the work goes.
// Unlisted scope answers fall through to 1.0.
var scopeMultipliers = map[string]float64{
	"light_refresh": 0.6,
	"refresh":       0.6,
	"full":          1.6,
}

// finishMultipliers scales complexity by finish ambition. Unlisted
// finish answers fall through to 1.0.
var finishMultipliers = map[string]float64{
	"value":        0.85,
	"builder_plus": 0.85,
	"elevated":     1.25,
	"high":         1.25,
	"luxury":       1.5,
	"very_high":    1.5,
}

// capacityPoints maps an investment-range answer to a capacity score on
// the same scale as complexity points. not_sure has no entry on
// purpose; an unknown capacity is absent, not zero.
var capacityPoints = map[string]int{
	"under_50": 12,
	"50_100":   18,
	"100_200":  26,
	"200_350":  36,
	"350_500":  48,
	"500_plus": 62,
}

// ComplexityScore computes the remodel complexity for the selected
// rooms, scope, and finish level.
//
// When whole_home is selected, its package rate is the base and every
// other selected room adds at most one point, so a whole-home project
// with a long room list does not double count. Duplicate room ids
// count once. The scaled score rounds half away from zero.
func ComplexityScore(rooms []string, scope, finish string) int {
	seen := make(map[string]bool, len(rooms))
	wholeHome := false
	base := 0
	for _, room := range rooms {
		if seen[room] {
			continue
		}
		seen[room] = true
		pts, ok := roomPoints[room]
		if !ok {
			continue
		}
		if room == "whole_home" {
			wholeHome = true
			continue
		}
		base += pts
	}
	if wholeHome {
		capped := 0
		for room := range seen {
			if room == "whole_home" {
				continue
			}
			if pts, ok := roomPoints[room]; ok {
				capped += min(1, pts)
			}
		}
		base = roomPoints["whole_home"] + capped
	}

	scoped := float64(base) * multiplier(scopeMultipliers, scope) * multiplier(finishMultipliers, finish)
	return int(math.Round(scoped))
}

func multiplier(table map[string]float64, key string) float64 {
	if m, ok := table[key]; ok {
		return m
	}
	return 1.0
}

// CapacityPoints maps an investment-range answer to capacity points.
// The second return is false when the answer is missing, not_sure, or
// unrecognized.
func CapacityPoints(investmentRange string) (int, bool) {
	pts, ok := capacityPoints[investmentRange]
	return pts, ok
}

// FitForScores classifies complexity against capacity. Complexity more
// than 15 percent over capacity is a mismatch; within 10 percent under
// capacity or above is tight; anything lower is comfortable.
func FitForScores(complexity, capacity int) Fit {
	c := float64(complexity)
	cap := float64(capacity)
	switch {
	case c > cap*1.15:
		return FitMismatch
	case c >= cap*0.9:
		return FitTight
	default:
		return FitComfortable
	}
}

// Assessment bundles the budget heuristics for one set of answers.
type Assessment struct {
	Complexity  int  `json:"remodel_complexity_score"`
	Capacity    int  `json:"capacity_points,omitempty"`
	HasCapacity bool `json:"-"`
	Fit         Fit  `json:"budget_fit,omitempty"`
}

// Assess runs the full budget read on a set of answers. Fit is left
// empty when the client declined to share an investment range.
func Assess(answers models.Answers) Assessment {
	complexity := ComplexityScore(
		answers.List("rooms"),
		answers.First("scope_level"),
		answers.First("finish_level"),
	)
	out := Assessment{Complexity: complexity}
	if cap, ok := CapacityPoints(answers.First("investment_range")); ok {
		out.Capacity = cap
		out.HasCapacity = true
		out.Fit = FitForScores(complexity, cap)
	}
	return out
}
