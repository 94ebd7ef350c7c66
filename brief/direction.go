// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package brief

// designDirectionByExterior maps the chosen exterior architecture to
// the design direction paragraph on the brief.
var designDirectionByExterior = map[string]string{
	"french_provincial":     "Design should emphasize balance, refinement, and timeless proportion. Materials should feel substantial and considered, with a focus on symmetry, soft contrast, and details that reference tradition without feeling ornate. Interiors should feel layered, calm, and quietly elegant rather than expressive or trend-forward.",
	"mediterranean_spanish": "Design should feel grounded, warm, and tactile. Emphasis on natural materials, soft edges, and a sense of indoor–outdoor continuity. Finishes should age well and feel honest, favoring texture and patina over polish or sharp contrast.",
	"cape_cod":              "Design should feel restrained, bright, and enduring. Favor classic proportions, light-filled spaces, and materials that feel familiar and unfussy. The overall direction should prioritize comfort and longevity over strong statements or visual complexity.",
	"colonial":              "Design should reinforce order, clarity, and symmetry. Interior decisions should feel intentional and measured, with an emphasis on proportion and consistency across rooms. Avoid overly rustic details.",
	"craftsman":             "Design should highlight warmth, craftsmanship, and material integrity. Natural finishes, subtle variation, and thoughtful detailing are key. The direction should feel grounded rather than formal or highly polished.",
	"modern_farmhouse":      "Design should balance structure with softness. Clean lines and simple forms should be warmed through texture, material variation, and lived-in details. Avoid extremes—neither overly rustic nor overly sleek.",
	"ranch":                 "Design should emphasize ease, flow, and connection between spaces. Materials should feel relaxed and durable, with fewer visual interruptions. Favor continuity and horizontality over formality or ornamentation.",
	"midcentury_modern":     "Design should highlight clarity, contrast, and intentional simplicity. Materials should be expressive but controlled, with strong geometry and thoughtful negative space. Avoid excess layering or decorative complexity.",
	"contemporary_modern":   "Design should feel deliberate, edited, and confident. Focus on proportion, material quality, and subtle contrast rather than decoration. Each element should feel purposeful, with restraint guiding decisions.",
	"tudor_english_cottage": "Design should feel intimate, layered, and rooted in tradition. Emphasize warmth, depth, and subtle irregularity. Avoid minimalism or high contrast that undermines the architecture's character.",
	"victorian":             "Design should respect ornament, scale, and historical rhythm. Interiors can be expressive, but decisions should feel cohesive and intentional. Balance detail with restraint.",
}

// DesignDirection returns the direction paragraph for an exterior id,
// or "" when the answer is missing or unexpected.
func DesignDirection(exteriorID string) string {
	return designDirectionByExterior[exteriorID]
}
