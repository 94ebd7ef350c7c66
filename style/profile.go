// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package style

// ProfileAxis is one rendered profile axis: the resolved value, its
// band, and the band's presentation copy and signals.
type ProfileAxis struct {
	Axis         AxisID   `json:"axis"`
	Label        string   `json:"label"`
	Value        float64  `json:"value"`
	Band         Band     `json:"band"`
	BandLabel    string   `json:"band_label"`
	Summary      string   `json:"summary"`
	AddSignals   []string `json:"add_signals"`
	AvoidSignals []string `json:"avoid_signals"`
}

// Profile is the outward-facing style profile derived from a score
// result, in presentation order.
type Profile struct {
	DNA  DNA           `json:"dna"`
	Axes []ProfileAxis `json:"axes"`
}

// BuildProfile maps a score result onto the three profile axes.
//
// Rustic-to-refined is the inverse of the modern-to-rustic scoring
// axis. Minimal-to-maximal tracks the minimal-to-layered scoring axis
// directly. Organic-to-structured has no scored counterpart and falls
// back to the primary archetype's DNA default.
func BuildProfile(r Result) Profile {
	values := map[AxisID]float64{
		AxisRusticRefined:     Clamp01(1 - r.ModernRustic),
		AxisMinimalMaximal:    Clamp01(r.MinimalLayered),
		AxisOrganicStructured: DNADefault(r.Primary, AxisOrganicStructured),
	}

	axes := make([]ProfileAxis, 0, len(AxisIDs))
	for _, id := range AxisIDs {
		def, ok := axisSchema[id]
		if !ok {
			continue
		}
		v := values[id]
		band := BandForValue(v)
		bd := def.Bands[band]
		axes = append(axes, ProfileAxis{
			Axis:         id,
			Label:        def.Label,
			Value:        v,
			Band:         band,
			BandLabel:    bd.Label,
			Summary:      bd.Summary,
			AddSignals:   bd.AddSignals,
			AvoidSignals: bd.AvoidSignals,
		})
	}
	return Profile{DNA: DNAFor(r.Primary), Axes: axes}
}
