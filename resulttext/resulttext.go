// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package resulttext

import (
	"strings"

	"github.com/studio-revy/revy-brief/models"
	"github.com/studio-revy/revy-brief/style"
)

// Three-way axis keys used only for text generation. These buckets cut
// at 0.4/0.6 and are independent of the profile bands.
type lightKey string
type compositionKey string
type materialKey string

const (
	lightFilled lightKey = "light_filled"
	tonal       lightKey = "tonal"
	moody       lightKey = "moody"

	minimal compositionKey = "minimal"
	curated compositionKey = "curated"
	layered compositionKey = "layered"

	modern   materialKey = "modern"
	textured materialKey = "textured"
	rustic   materialKey = "rustic"
)

func lightKeyFor(v float64) lightKey {
	if v < 0.4 {
		return lightFilled
	}
	if v <= 0.6 {
		return tonal
	}
	return moody
}

func compositionKeyFor(v float64) compositionKey {
	if v < 0.4 {
		return minimal
	}
	if v <= 0.6 {
		return curated
	}
	return layered
}

func materialKeyFor(v float64) materialKey {
	if v < 0.4 {
		return modern
	}
	if v <= 0.6 {
		return textured
	}
	return rustic
}

// RoomDesign is the bathroom configuration summary pulled from the
// room questions.
type RoomDesign struct {
	PrimaryUserLabel string `json:"primary_user_label,omitempty"`
	VanityLabel      string `json:"vanity_label,omitempty"`
	BathingLabel     string `json:"bathing_label,omitempty"`
	Summary          string `json:"summary,omitempty"`
}

// Result is the generated narrative for a style result.
type Result struct {
	RoomDesign RoomDesign `json:"room_design"`

	Title       string `json:"title"`
	StyleName   string `json:"style_name"`
	Description string `json:"description"`

	PrimaryLabel   string `json:"primary_label"`
	SecondaryLabel string `json:"secondary_label,omitempty"`
}

var coreStyleSummary = map[style.Archetype]string{
	style.Parisian:      "At the core, your taste reflects urban elegance, drawing from Parisian heritage and Art Deco lineage, with structured detailing.",
	style.Mediterranean: "At the core, your taste reflects informal coastal ease, drawing from Mediterranean heritage, with bohemian details and handcrafted accents.",
	style.Provincial:    "At the core, your taste reflects functional countryside simplicity, drawing from provincial heritage, with enduring craftsmanship and grounded simplicity.",
}

// Blend copy is keyed one direction only; lookups try both orders.
var blendLines = map[string]string{
	"parisian-provincial":      "A blend of urban elegance and functional countryside simplicity—combining Parisian and provincial heritage, Art Deco lineage, enduring craftsmanship, and grounded simplicity.",
	"parisian-mediterranean":   "A blend of urban elegance and informal coastal ease—combining Parisian and Mediterranean heritage, Art Deco lineage, structured detailing, bohemian details, and handcrafted accents.",
	"provincial-mediterranean": "A blend of functional countryside simplicity and informal coastal ease—combining provincial and Mediterranean heritage, enduring craftsmanship, grounded simplicity, bohemian details, and handcrafted accents.",
}

func blendLine(primary, secondary style.Archetype) string {
	if line, ok := blendLines[string(primary)+"-"+string(secondary)]; ok {
		return line
	}
	return blendLines[string(secondary)+"-"+string(primary)]
}

var lightAdjectives = map[lightKey]string{
	lightFilled: "Light-Filled",
	tonal:       "Tonal",
	moody:       "Moody",
}

var compositionAdjectives = map[compositionKey]string{
	minimal: "Minimal",
	curated: "Curated",
	layered: "Layered",
}

var materialAdjectives = map[materialKey]string{
	modern:   "Modern",
	textured: "Textured",
	rustic:   "Rustic",
}

var lightLead = map[lightKey]string{
	lightFilled: "The space feels light-filled, open, and",
	tonal:       "The space feels balanced and tonal, with gentle contrast and depth, and",
	moody:       "The space feels moody and enveloping, and",
}

var roomTail = map[compositionKey]string{
	minimal: "is calm, restrained, and uncluttered.",
	curated: "is intentional and thoughtfully composed.",
	layered: "is collected and expressive.",
}

var materialSentence = map[materialKey]string{
	modern:   "Materials are clean and contemporary.",
	textured: "Materials are tactile and softly expressive.",
	rustic:   "Materials are timeworn and full of character.",
}

var archetypeExamples = map[style.Archetype]map[materialKey]string{
	style.Parisian: {
		modern:   "Think polished marble, sculptural lighting, and refined metal accents.",
		textured: "Think honed stone, subtle plaster walls, and woven or cane details softening clean lines.",
		rustic:   "Think patinaed wood, aged stone, and antique metal finishes layered into the space.",
	},
	style.Mediterranean: {
		modern:   "Think smooth plaster walls, simple stone surfaces, and clean-lined fixtures.",
		textured: "Think tumbled stone, woven elements, and handcrafted tile with visible variation.",
		rustic:   "Think weathered wood, aged stone, and ceramic or terracotta details with a sense of history.",
	},
	style.Provincial: {
		modern:   "Think simple cabinetry, restrained stone, and straightforward detailing.",
		textured: "Think natural stone, solid wood, and woven accents.",
		rustic:   "Think exposed beams, timeworn wood, and aged stone that show use and history.",
	},
}

var blendExamples = map[string]map[materialKey]string{
	"parisian-provincial": {
		modern:   "Think polished marble, simple cabinetry, and refined metal accents.",
		textured: "Think honed stone, solid wood, and woven or cane details softening clean lines.",
		rustic:   "Think patinaed wood, exposed beams, and antique metal finishes layered into the space.",
	},
	"parisian-mediterranean": {
		modern:   "Think polished marble, smooth plaster walls, and clean-lined fixtures.",
		textured: "Think honed stone, woven elements, and handcrafted tile with visible variation.",
		rustic:   "Think patinaed wood, aged stone, and ceramic or terracotta details with a sense of history.",
	},
	"provincial-mediterranean": {
		modern:   "Think simple cabinetry, smooth plaster walls, and clean-lined fixtures.",
		textured: "Think natural stone, woven elements, and handcrafted tile with visible variation.",
		rustic:   "Think exposed beams, weathered wood, and ceramic or terracotta details with a sense of history.",
	},
}

func exampleSentence(primary, secondary style.Archetype, mk materialKey) string {
	if secondary == "" {
		return archetypeExamples[primary][mk]
	}
	if blend, ok := blendExamples[string(primary)+"-"+string(secondary)]; ok {
		return blend[mk]
	}
	if blend, ok := blendExamples[string(secondary)+"-"+string(primary)]; ok {
		return blend[mk]
	}
	return archetypeExamples[primary][mk]
}

func primaryUserLabel(id string) string {
	switch id {
	case "guest":
		return "Guest bathroom"
	case "primary":
		return "Primary bathroom"
	case "children":
		return "Kids' bathroom"
	case "teens":
		return "Teen bathroom"
	case "powder":
		return "Powder room"
	}
	return ""
}

func vanityLabel(id string) string {
	switch id {
	case "single":
		return "Single vanity"
	case "double":
		return "Double vanity"
	}
	return ""
}

func bathingLabel(id string) string {
	switch id {
	case "shower":
		return "Shower"
	case "tub":
		return "Tub"
	case "both":
		return "Tub and shower"
	}
	return ""
}

func buildRoomDesign(answers models.Answers) RoomDesign {
	rd := RoomDesign{
		PrimaryUserLabel: primaryUserLabel(answers.First("bathroom_primary_user")),
		VanityLabel:      vanityLabel(answers.First("bathroom_vanity_type")),
		BathingLabel:     bathingLabel(answers.First("bathroom_bathing_type")),
	}
	var parts []string
	for _, p := range []string{rd.PrimaryUserLabel, rd.VanityLabel, rd.BathingLabel} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		rd.Summary = "This design is for " + strings.ToLower(strings.Join(parts, " · ")) + "."
	}
	return rd
}

// Generate produces the title, description, and room summary for a
// style result.
//
// The title stacks one adjective per axis in front of the archetype
// name, with blends rendered as "Primary × Secondary". The description
// opens with the archetype summary (or the blend line when a secondary
// is present), follows with the axis sentences, and closes with a
// material example matched to the archetype or blend.
func Generate(r style.Result, answers models.Answers) Result {
	lk := lightKeyFor(r.BrightMoody)
	ck := compositionKeyFor(r.MinimalLayered)
	mk := materialKeyFor(r.ModernRustic)

	primaryLabel := r.Primary.Label()
	secondaryLabel := ""
	if r.HasSecondary() {
		secondaryLabel = r.Secondary.Label()
	}

	archetypePart := primaryLabel
	if secondaryLabel != "" {
		archetypePart = primaryLabel + " × " + secondaryLabel
	}
	title := strings.Join([]string{
		lightAdjectives[lk],
		compositionAdjectives[ck],
		materialAdjectives[mk],
		archetypePart,
	}, " ")

	opener := coreStyleSummary[r.Primary]
	if r.HasSecondary() {
		if line := blendLine(r.Primary, r.Secondary); line != "" {
			opener = line
		}
	}
	axisText := lightLead[lk] + " " + roomTail[ck] + " " + materialSentence[mk]

	var descParts []string
	for _, p := range []string{opener, axisText, exampleSentence(r.Primary, r.Secondary, mk)} {
		if p != "" {
			descParts = append(descParts, p)
		}
	}

	return Result{
		RoomDesign:     buildRoomDesign(answers),
		Title:          title,
		StyleName:      title,
		Description:    strings.Join(descParts, " "),
		PrimaryLabel:   primaryLabel,
		SecondaryLabel: secondaryLabel,
	}
}
