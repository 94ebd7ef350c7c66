// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package style

// Palette is an archetype's color intent. Guidance for selections, not
// strict enforcement.
type Palette struct {
	Core          []string `json:"core"`
	Accents       []string `json:"accents"`
	Neutrals      []string `json:"neutrals"`
	ContrastNotes []string `json:"contrast_notes,omitempty"`
}

// DNA is an archetype's resting identity: the copy and palette that
// hold regardless of quiz answers, plus default positions on the
// profile axes for anything the answers didn't move.
type DNA struct {
	Label            string             `json:"label"`
	SettingVibe      string             `json:"setting_vibe"`
	Essence          string             `json:"essence"`
	SignatureNotes   []string           `json:"signature_notes"`
	Palette          Palette            `json:"palette"`
	ColorTemperature string             `json:"color_temperature"`
	AxisDefaults     map[AxisID]float64 `json:"-"`
}

var styleDNA = map[Archetype]DNA{
	Parisian: {
		Label:       "Parisian",
		SettingVibe: "Urban elegance, architectural heritage",
		Essence:     "Structured, refined, editorial poise; sophisticated restraint.",
		SignatureNotes: []string{
			"Symmetry",
			"Gleam",
			"Haussmann proportions",
			"Heritage detailing",
			"Tailored composition",
		},
		Palette: Palette{
			Neutrals:      []string{"cream", "warm neutrals", "dove grey"},
			Core:          []string{"black/navy contrast", "refined stone whites"},
			Accents:       []string{"polished brass", "polished nickel", "controlled blackened metal"},
			ContrastNotes: []string{"Warm creams with cool black/navy accents; crisp tonal separation."},
		},
		ColorTemperature: "Warm creams + cool black/navy accents",
		AxisDefaults: map[AxisID]float64{
			AxisRusticRefined:     0.9,
			AxisMinimalMaximal:    0.6,
			AxisOrganicStructured: 0.3,
		},
	},
	Provincial: {
		Label:       "Provincial",
		SettingVibe: "Countryside warmth, grounded simplicity",
		Essence:     "Tactile, timeless, relaxed luxury; artisanal warmth; rustic charm.",
		SignatureNotes: []string{
			"Patina",
			"Hand-applied plaster",
			"Visible joinery",
			"Artisanal craft",
			"Grounded proportions",
		},
		Palette: Palette{
			Neutrals:      []string{"putty", "linen white", "soft greys", "warm creams"},
			Core:          []string{"earthy tones", "natural blues"},
			Accents:       []string{"muted blue", "aged brass", "blackened iron"},
			ContrastNotes: []string{"Warm neutrals paired with cool stone; low-to-medium contrast."},
		},
		ColorTemperature: "Warm neutrals + cool stone",
		AxisDefaults: map[AxisID]float64{
			AxisRusticRefined:     0.3,
			AxisMinimalMaximal:    0.4,
			AxisOrganicStructured: 0.6,
		},
	},
	Mediterranean: {
		Label:       "Mediterranean",
		SettingVibe: "Coastal breeziness, bohemian leisure",
		Essence:     "Vibrant, sun-washed, layered ease; effortless imperfection.",
		SignatureNotes: []string{
			"Color + texture",
			"Breeze / indoor-outdoor",
			"Organic rhythm",
			"Sunwashed imperfection",
			"Handmade surfaces",
		},
		Palette: Palette{
			Neutrals:      []string{"white", "sand", "warm cream"},
			Core:          []string{"terracotta", "olive", "sea green"},
			Accents:       []string{"turquoise", "French blue"},
			ContrastNotes: []string{"Warm terracotta paired with cool turquoise/olive; medium contrast allowed."},
		},
		ColorTemperature: "Warm terracotta + cool turquoise/olive pairing",
		AxisDefaults: map[AxisID]float64{
			AxisRusticRefined:     0.5,
			AxisMinimalMaximal:    0.8,
			AxisOrganicStructured: 0.7,
		},
	},
}

// DNAFor returns the archetype's DNA. The zero DNA for unknown
// archetypes keeps callers fail-soft.
func DNAFor(a Archetype) DNA {
	return styleDNA[a]
}

// DNADefault returns the archetype's resting value for a profile axis.
// Unknown combinations land on the midpoint.
func DNADefault(a Archetype, axis AxisID) float64 {
	if dna, ok := styleDNA[a]; ok {
		if v, ok := dna.AxisDefaults[axis]; ok {
			return v
		}
	}
	return 0.5
}
