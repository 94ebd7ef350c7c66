// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package style

// axisKey identifies one of the three scored style axes inside the
// weight table.
type axisKey int

const (
	axisModernRustic axisKey = iota
	axisMinimalLayered
	axisBrightMoody
)

// WeightVector is the static per-option scoring contribution: archetype
// weights plus the axis positions this option speaks to. Options that
// say nothing about an axis simply omit it; the scorer averages only
// over contributing options.
type WeightVector struct {
	Archetypes map[Archetype]float64
	axes       map[axisKey]float64
}

func tag(arch map[Archetype]float64, mr, ml, bm float64) WeightVector {
	return WeightVector{
		Archetypes: arch,
		axes: map[axisKey]float64{
			axisModernRustic:   mr,
			axisMinimalLayered: ml,
			axisBrightMoody:    bm,
		},
	}
}

func axisOnly(arch map[Archetype]float64, k axisKey, v float64) WeightVector {
	return WeightVector{Archetypes: arch, axes: map[axisKey]float64{k: v}}
}

func par(w float64) map[Archetype]float64  { return map[Archetype]float64{Parisian: w} }
func prov(w float64) map[Archetype]float64 { return map[Archetype]float64{Provincial: w} }
func med(w float64) map[Archetype]float64  { return map[Archetype]float64{Mediterranean: w} }

// spaceTags carries the archetype and axis weights for the 27
// "spaces that appeal" gallery images.
var spaceTags = map[string]WeightVector{
	"space_01": tag(prov(1), 1, 0.4, 0.4),
	"space_02": tag(map[Archetype]float64{Parisian: 0.5, Provincial: 0.5}, 0.5, 0.5, 0.3),
	"space_03": tag(map[Archetype]float64{Parisian: 0.3, Provincial: 1}, 0.7, 0.6, 0.4),
	"space_04": tag(map[Archetype]float64{Parisian: 0.9, Provincial: 0.1}, 0.6, 0.8, 0.7),
	"space_05": tag(prov(1), 0.8, 0.7, 1),
	"space_06": tag(prov(1), 0.9, 0.7, 0.3),
	"space_07": tag(par(1), 0.4, 1, 0.7),
	"space_08": tag(map[Archetype]float64{Provincial: 0.5, Mediterranean: 1}, 0.8, 0.4, 0.3),
	"space_09": tag(med(1), 0.3, 0.2, 0),

	"space_10": tag(par(1), 0.1, 0.8, 1),
	"space_11": tag(med(1), 0.3, 0.6, 0.3),
	"space_12": tag(med(1), 0.3, 0.4, 0.5),
	"space_13": tag(par(1), 0.1, 0.2, 0.2),
	"space_14": tag(par(1), 0.1, 1, 0.7),
	"space_15": tag(med(1), 0.6, 0.5, 0.3),
	"space_16": tag(med(1), 0.7, 0.2, 0.2),
	"space_17": tag(map[Archetype]float64{Mediterranean: 1, Parisian: 0.4}, 0.3, 0.8, 0.3),
	"space_18": tag(par(1), 0.4, 0.5, 0.5),

	"space_19": tag(par(1), 0.5, 0.6, 0.4),
	"space_20": tag(par(1), 0.4, 1, 1),
	"space_21": tag(par(1), 0.3, 0.7, 0.5),
	"space_22": tag(map[Archetype]float64{Mediterranean: 0.9, Provincial: 0.4}, 0.7, 0.6, 0.3),
	"space_23": tag(par(1), 0.2, 0.2, 0.1),
	"space_24": tag(med(1), 0.3, 0.2, 0.2),
	"space_25": tag(par(1), 0.2, 0.3, 0.3),
	"space_26": tag(map[Archetype]float64{Mediterranean: 0.3, Parisian: 1}, 0.5, 0.9, 0.7),
	"space_27": tag(par(1), 0.3, 0.5, 0.5),
}

// weightTable binds every scored question's options to their weight
// vectors. Questions absent from this table (scope, budget, room
// configuration) contribute nothing to style scoring.
var weightTable = map[string]map[string]WeightVector{
	"spaces_appeal": spaceTags,

	// "Which space feels most like home?" — one image per archetype.
	"space_home": {
		"home_01": tag(par(1), 0.3, 0.6, 0.5),
		"home_02": tag(prov(1), 0.7, 0.5, 0.4),
		"home_03": tag(med(1), 0.5, 0.6, 0.2),
	},

	// Light & color balance drives the bright↔moody axis.
	"light_color": {
		"light_01": axisOnly(nil, axisBrightMoody, 0.1),
		"light_02": axisOnly(nil, axisBrightMoody, 0.5),
		"light_03": axisOnly(par(0.3), axisBrightMoody, 0.9),
	},

	// Material palette drives the modern↔rustic axis.
	"material_palette": {
		"material-01": axisOnly(par(0.5), axisModernRustic, 0.1),
		"material-02": axisOnly(map[Archetype]float64{Provincial: 0.3, Mediterranean: 0.3}, axisModernRustic, 0.5),
		"material-03": axisOnly(prov(0.5), axisModernRustic, 0.9),
	},

	// How a space should feel drives the minimal↔layered axis.
	"space_feel": {
		"feel-01": axisOnly(par(0.3), axisMinimalLayered, 0.1),
		"feel-02": axisOnly(nil, axisMinimalLayered, 0.5),
		"feel-03": axisOnly(med(0.3), axisMinimalLayered, 0.9),
	},

	// Color mood contributes a second reading of bright↔moody.
	"color_mood": {
		"mood-01": axisOnly(nil, axisBrightMoody, 0.15),
		"mood-02": axisOnly(nil, axisBrightMoody, 0.45),
		"mood-03": axisOnly(nil, axisBrightMoody, 0.7),
		"mood-04": axisOnly(nil, axisBrightMoody, 0.95),
	},
}

// SpaceArchetypes returns the archetype weights for a gallery space id,
// or nil when the id is unknown. Used by the question-visibility logic.
func SpaceArchetypes(spaceID string) map[Archetype]float64 {
	wv, ok := spaceTags[spaceID]
	if !ok {
		return nil
	}
	return wv.Archetypes
}
