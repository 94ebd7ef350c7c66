// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package style

import "github.com/studio-revy/revy-brief/models"

// SecondaryCloseness is the fraction of the primary score the runner-up
// must reach to be reported as a secondary archetype.
const SecondaryCloseness = 0.8

// Score computes the style result for a set of answers.
//
// Every selected option that appears in the weight table contributes
// its archetype weights to per-archetype totals and its axis positions
// to per-axis running means. Unknown question ids and unknown option
// ids contribute nothing. An axis with no contributing options lands on
// the 0.5 midpoint.
//
// The primary archetype is the highest total, ties broken by canonical
// declaration order. The runner-up is reported as secondary only when
// its total is within SecondaryCloseness of the primary and positive.
// With no scoring answers at all, the result defaults to the first
// canonical archetype with neutral axes.
func Score(answers models.Answers) Result {
	totals := make(map[Archetype]float64, len(Archetypes))
	axisSum := make(map[axisKey]float64, 3)
	axisN := make(map[axisKey]int, 3)

	for qid, opts := range answers {
		qw, ok := weightTable[qid]
		if !ok {
			continue
		}
		for _, opt := range opts {
			wv, ok := qw[opt]
			if !ok {
				continue
			}
			for a, w := range wv.Archetypes {
				totals[a] += w
			}
			for k, v := range wv.axes {
				axisSum[k] += v
				axisN[k]++
			}
		}
	}

	axis := func(k axisKey) float64 {
		n := axisN[k]
		if n == 0 {
			return 0.5
		}
		return Clamp01(axisSum[k] / float64(n))
	}

	primary, secondary := rank(totals)
	return Result{
		Primary:        primary,
		Secondary:      secondary,
		ModernRustic:   axis(axisModernRustic),
		MinimalLayered: axis(axisMinimalLayered),
		BrightMoody:    axis(axisBrightMoody),
	}
}

// rank picks the primary and, when close enough, secondary archetype
// from the score totals. Iteration follows canonical order so equal
// totals always resolve the same way.
func rank(totals map[Archetype]float64) (Archetype, Archetype) {
	primary := Archetypes[0]
	best := 0.0
	for _, a := range Archetypes {
		if totals[a] > best {
			best = totals[a]
			primary = a
		}
	}
	if best <= 0 {
		return Archetypes[0], ""
	}

	var secondary Archetype
	second := 0.0
	for _, a := range Archetypes {
		if a == primary {
			continue
		}
		if totals[a] > second {
			second = totals[a]
			secondary = a
		}
	}
	if secondary != "" && second >= SecondaryCloseness*best {
		return primary, secondary
	}
	return primary, ""
}
