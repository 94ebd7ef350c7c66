// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package style

// AxisID identifies a profile axis. Profile axes are the outward-facing
// spectra shown on a brief; they are related to but not identical to
// the internal scoring axes.
type AxisID string

const (
	AxisRusticRefined    AxisID = "rustic_refined"
	AxisMinimalMaximal   AxisID = "minimal_maximal"
	AxisOrganicStructured AxisID = "organic_structured"
)

// AxisIDs lists the profile axes in presentation order.
var AxisIDs = []AxisID{AxisRusticRefined, AxisMinimalMaximal, AxisOrganicStructured}

// BandDef describes one low/mid/high band of a profile axis: a short
// label plus the concrete signals a designer should lean into or steer
// away from when a client lands in that band.
type BandDef struct {
	Label        string
	Summary      string
	AddSignals   []string
	AvoidSignals []string
}

// AxisDef is the static schema for one profile axis.
type AxisDef struct {
	ID       AxisID
	Label    string
	LowLabel string
	HighLabel string
	Bands    map[Band]BandDef
}

// axisSchema is the fixed presentation schema for the three profile
// axes. Band thresholds live in BandForValue; this table only carries
// copy and signals.
var axisSchema = map[AxisID]AxisDef{
	AxisRusticRefined: {
		ID:       AxisRusticRefined,
		Label:    "Rustic to Refined",
		LowLabel: "Rustic",
		HighLabel: "Refined",
		Bands: map[Band]BandDef{
			BandLow: {
				Label:   "Rustic",
				Summary: "Comfortable with visible age, wear, and hand-made irregularity.",
				AddSignals: []string{
					"reclaimed and wire-brushed woods",
					"honed or tumbled stone",
					"unlacquered brass that patinas",
				},
				AvoidSignals: []string{
					"high-gloss lacquer",
					"mirror-polished metals",
				},
			},
			BandMid: {
				Label:   "Balanced",
				Summary: "Mixes raw and finished surfaces rather than committing to either.",
				AddSignals: []string{
					"smooth plaster beside rough-sawn beams",
					"one rustic anchor piece per room",
				},
				AvoidSignals: []string{
					"all-over distressing",
					"uniformly factory-perfect finishes",
				},
			},
			BandHigh: {
				Label:   "Refined",
				Summary: "Drawn to precise lines, tailored detail, and polished finishes.",
				AddSignals: []string{
					"polished stone and lacquer",
					"fine millwork with crisp profiles",
					"plated hardware",
				},
				AvoidSignals: []string{
					"heavy distressing",
					"rough-hewn or knotty lumber",
				},
			},
		},
	},
	AxisMinimalMaximal: {
		ID:       AxisMinimalMaximal,
		Label:    "Minimal to Maximal",
		LowLabel: "Minimal",
		HighLabel: "Maximal",
		Bands: map[Band]BandDef{
			BandLow: {
				Label:   "Minimal",
				Summary: "Rooms breathe; every object earns its place.",
				AddSignals: []string{
					"concealed storage",
					"restrained palettes",
					"negative space as a feature",
				},
				AvoidSignals: []string{
					"open shelving crowded with objects",
					"pattern-on-pattern layering",
				},
			},
			BandMid: {
				Label:   "Curated",
				Summary: "Edited but not bare; a few layers, deliberately placed.",
				AddSignals: []string{
					"grouped collections behind glass",
					"one patterned surface per room",
				},
				AvoidSignals: []string{
					"bare gallery-white rooms",
					"floor-to-ceiling collections",
				},
			},
			BandHigh: {
				Label:   "Maximal",
				Summary: "Abundance reads as warmth; pattern and collection are welcome.",
				AddSignals: []string{
					"layered textiles and pattern mixing",
					"open display of collections",
					"saturated color blocking",
				},
				AvoidSignals: []string{
					"sparse, single-accent rooms",
					"strict monochrome schemes",
				},
			},
		},
	},
	AxisOrganicStructured: {
		ID:       AxisOrganicStructured,
		Label:    "Organic to Structured",
		LowLabel: "Organic",
		HighLabel: "Structured",
		Bands: map[Band]BandDef{
			BandLow: {
				Label:   "Organic",
				Summary: "Soft geometry, natural movement, and irregular forms feel right.",
				AddSignals: []string{
					"curved plaster and arched openings",
					"live-edge and free-form pieces",
					"stone with heavy veining",
				},
				AvoidSignals: []string{
					"hard rectilinear grids",
					"seamed, repeating modules",
				},
			},
			BandMid: {
				Label:   "Blended",
				Summary: "Structure in the architecture, softness in the furnishings.",
				AddSignals: []string{
					"straight-lined casework with rounded furniture",
					"arches used sparingly as moments",
				},
				AvoidSignals: []string{
					"curves on every surface",
					"unrelieved boxy massing",
				},
			},
			BandHigh: {
				Label:   "Structured",
				Summary: "Order, symmetry, and repeated rhythm anchor the space.",
				AddSignals: []string{
					"paneled walls on a strict grid",
					"symmetrical elevations",
					"aligned sight lines",
				},
				AvoidSignals: []string{
					"free-form or asymmetric layouts",
					"organic blob furniture",
				},
			},
		},
	},
}

// AxisSchema returns the presentation schema for a profile axis.
func AxisSchema(id AxisID) (AxisDef, bool) {
	def, ok := axisSchema[id]
	return def, ok
}
