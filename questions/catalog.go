// Copyright (c) 2025 Studio Revy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

import (
	"fmt"

	"github.com/studio-revy/revy-brief/style"
)

// StyleQuestions is the style discovery step: exterior architecture
// first, then the image-driven taste questions.
var StyleQuestions = []Question{
	{
		ID:            "home_exterior_style",
		Title:         "What is the exterior / architectural style of the home?",
		Subtitle:      "Choose the closest match.",
		Type:          SingleImage,
		Layout:        LayoutGrid,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "cape_cod", Label: "Cape Cod", ImageURL: "/quiz/exterior/CapeCod.jpg"},
			{ID: "colonial", Label: "Colonial", ImageURL: "/quiz/exterior/Colonial.jpg"},
			{ID: "contemporary_modern", Label: "Contemporary Modern", ImageURL: "/quiz/exterior/ContemporaryModern.jpg"},
			{ID: "craftsman", Label: "Craftsman", ImageURL: "/quiz/exterior/Craftsman.jpg"},
			{ID: "french_provincial", Label: "French Provincial", ImageURL: "/quiz/exterior/FrenchProvincial.jpg"},
			{ID: "mediterranean_spanish", Label: "Mediterranean / Spanish", ImageURL: "/quiz/exterior/MediterraneanSpanish.jpg"},
			{ID: "midcentury_modern", Label: "Mid-Century Modern", ImageURL: "/quiz/exterior/MidcenturyModern.jpg"},
			{ID: "modern_farmhouse", Label: "Modern Farmhouse", ImageURL: "/quiz/exterior/ModernFarmhouse.jpg"},
			{ID: "ranch", Label: "Ranch", ImageURL: "/quiz/exterior/Ranch.jpg"},
			{ID: "tudor_english_cottage", Label: "Tudor / English Cottage", ImageURL: "/quiz/exterior/Tudor.jpg"},
			{ID: "victorian", Label: "Victorian", ImageURL: "/quiz/exterior/Victorian.jpg"},
		},
	},
	{
		ID:            "spaces_appeal",
		Title:         "Which of these spaces appeal to you?",
		Subtitle:      "Select as many as you like. Scroll to see more.",
		Type:          MultiImage,
		Layout:        LayoutGrid,
		AllowMultiple: true,
		Options:       spaceOptions(27),
	},
	{
		ID:            "space_home",
		Title:         "Which space feels most like home?",
		Subtitle:      "Choose the one that feels the most like you.",
		Type:          SingleImage,
		AllowMultiple: false,
		Options: []Option{
			{
				ID: "home_01", Label: "Refined & Elegant", ImageURL: "/quiz/q2/home_01.jpg",
				ShowIf: Predicate{Kind: PredicateArchetypeSupported, Archetype: style.Parisian},
			},
			{
				ID: "home_02", Label: "Cozy & Lived-in", ImageURL: "/quiz/q2/home_02.jpg",
				ShowIf: Predicate{Kind: PredicateArchetypeSupported, Archetype: style.Provincial},
			},
			{
				ID: "home_03", Label: "Sun-kissed & Relaxed", ImageURL: "/quiz/q2/home_03.jpg",
				ShowIf: Predicate{Kind: PredicateArchetypeSupported, Archetype: style.Mediterranean},
			},
		},
	},
	{
		ID:            "light_color",
		Title:         "What kind of light and color balance do you prefer?",
		Subtitle:      "Think about what inspires you or makes you feel at home.",
		Type:          SingleImage,
		AllowMultiple: false,
		Options: []Option{
			{ID: "light_01", Label: "Bright & Airy", ImageURL: "/quiz/q3/light-01.jpg"},
			{ID: "light_02", Label: "Balanced with Contrast", ImageURL: "/quiz/q3/light-02.jpg"},
			{ID: "light_03", Label: "Moody & Dramatic", ImageURL: "/quiz/q3/light-03.jpg"},
		},
	},
	{
		ID:            "material_palette",
		Title:         "What materials and textures do you prefer?",
		Subtitle:      "Choose the mix that feels most right.",
		Type:          SingleImage,
		AllowMultiple: false,
		Options: []Option{
			{ID: "material-01", Label: "Polished & Modern", ImageURL: "/quiz/q5/material-01.jpg"},
			{ID: "material-02", Label: "Crisp & Natural", ImageURL: "/quiz/q5/material-02.jpg"},
			{ID: "material-03", Label: "Textured & Vintage", ImageURL: "/quiz/q5/material-03.jpg"},
		},
	},
	{
		ID:            "space_feel",
		Title:         "How should a space feel?",
		Subtitle:      "Follow your instinct.",
		Type:          SingleImage,
		AllowMultiple: false,
		Options: []Option{
			{ID: "feel-01", Label: "Minimal", ImageURL: "/quiz/q6/feel-01.jpg"},
			{ID: "feel-02", Label: "Curated", ImageURL: "/quiz/q6/feel-02.jpg"},
			{ID: "feel-03", Label: "Layered", ImageURL: "/quiz/q6/feel-03.jpg"},
		},
	},
	{
		ID:            "color_mood",
		Title:         "What's your ideal color mood?",
		Subtitle:      "Choose the palette you're most drawn to.",
		Type:          SingleImage,
		AllowMultiple: false,
		Options: []Option{
			{ID: "mood-01", Label: "Soft Neutrals & Warm Whites", ImageURL: "/quiz/q8/mood-01.jpg"},
			{ID: "mood-02", Label: "Neutral with High Contrast", ImageURL: "/quiz/q8/mood-02.jpg"},
			{ID: "mood-03", Label: "Deep Jewel Tones", ImageURL: "/quiz/q8/mood-03.jpg"},
			{ID: "mood-04", Label: "Dramatic & Moody", ImageURL: "/quiz/q8/mood-04.jpg"},
		},
	},
}

func spaceOptions(n int) []Option {
	opts := make([]Option, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("space_%02d", i)
		opts = append(opts, Option{
			ID:       id,
			Label:    fmt.Sprintf("Space %d", i),
			ImageURL: fmt.Sprintf("/quiz/q1/%s.jpg", id),
			ShowIf:   Predicate{Kind: PredicateSpaceVisible, SpaceID: id},
		})
	}
	return opts
}

// ScopeQuestions is the project scope step.
var ScopeQuestions = []Question{
	{
		ID:            "project_for",
		Title:         "Who is this home for?",
		Subtitle:      "This helps us tailor recommendations (what will drive value, durability, and ROI focus).",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "live_in", Label: "My home (Will live here after the project is finished)"},
			{ID: "rental", Label: "My rental property (I own it, but it will be tenant occupied)"},
			{ID: "flip", Label: "Immediate flip / resale"},
		},
	},
	{
		ID:            "occupancy",
		Title:         "Will you be living in the home during the project?",
		Subtitle:      "This changes what's realistic for sequencing, disruption, and speed.",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "full_time", Label: "Yes"},
			{ID: "not_living_there", Label: "No"},
			{ID: "living_unsure", Label: "Not sure yet"},
		},
	},
	{
		ID:            "start_timing",
		Title:         "When do you want to begin?",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "asap", Label: "ASAP"},
			{ID: "1_3_months", Label: "1–3 months"},
			{ID: "3_6_months", Label: "3–6 months"},
			{ID: "6_12_months", Label: "6–12 months"},
			{ID: "not_sure", Label: "Not sure yet"},
		},
	},
	{
		ID:            "completion_timing",
		Title:         "When do you want to complete the project?",
		Subtitle:      "This reflects the timeline from when the project starts.",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "1_3_months", Label: "1–3 months"},
			{ID: "3_6_months", Label: "3–6 months"},
			{ID: "6_12_months", Label: "6–12 months"},
			{ID: "12_plus_months", Label: "12+ months"},
			{ID: "not_sure", Label: "Not sure yet"},
		},
	},
	{
		ID:            "timeline_flexibility",
		Title:         "How flexible is your timeline?",
		Subtitle:      "This helps us decide which materials and fixtures we recommend, and if custom vs in-stock is realistic.",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "fixed", Label: "Fixed (date-driven)"},
			{ID: "somewhat", Label: "Somewhat flexible"},
			{ID: "very", Label: "Very flexible"},
		},
	},
	{
		ID:            "permit_required",
		Title:         "Do you plan to pull permits?",
		Subtitle:      "This helps us provide guidance on potential constraints.",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "no_permit", Label: "No"},
			{ID: "yes", Label: "Yes"},
			{ID: "yes_permit_received", Label: "Yes (already in progress/received)"},
			{ID: "permit_unsure", Label: "Not sure yet"},
		},
	},
	{
		ID:            "rooms",
		Title:         "Which spaces are you building or updating?",
		Subtitle:      "Choose all that apply.",
		Type:          MultiImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: true,
		Options: []Option{
			{ID: "whole_home", Label: "Whole home"},
			{ID: "entry", Label: "Entry / foyer"},
			{ID: "living", Label: "Living room"},
			{ID: "family", Label: "Family / TV room"},
			{ID: "dining", Label: "Dining room"},
			{ID: "kitchen", Label: "Kitchen"},
			{ID: "laundry", Label: "Laundry"},
			{ID: "office", Label: "Home Office"},
			{ID: "primary_bath", Label: "Primary bathroom"},
			{ID: "guest_bath", Label: "Guest bathroom"},
			{ID: "powder", Label: "Powder bathroom"},
			{ID: "bedrooms", Label: "Bedrooms"},
			{ID: "nursery", Label: "Kids bedroom (Nursery)"},
			{ID: "outdoor", Label: "Outdoor / patio"},
		},
	},
	{
		ID:            "scope_level",
		Title:         "What best describes the level of work?",
		Subtitle:      "This helps us interpret budget ranges and feasibility.",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "refresh", Label: "Refresh (no floorplan/layout changes)", Subtitle: "Paint, lighting, minor updates"},
			{ID: "partial", Label: "Partial renovation", Subtitle: "Some construction / targeted rooms"},
			{ID: "full", Label: "Full renovation", Subtitle: "Major construction and rework"},
			{ID: "new_build", Label: "New build", Subtitle: "Ground-up or major addition"},
			{ID: "not_sure", Label: "Not sure yet"},
		},
	},
}

// BudgetQuestions is the budget and philosophy step.
var BudgetQuestions = []Question{
	{
		ID:            "investment_range",
		Title:         "What investment range feels right for this project?",
		Subtitle:      "This reflects the total project investment—including construction labor, finish materials, design and trade services, permits, and typical planning costs.",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "under_50", Label: "Under $50k"},
			{ID: "50_100", Label: "$50k–$100k"},
			{ID: "100_200", Label: "$100k–$200k"},
			{ID: "200_350", Label: "$200k–$350k"},
			{ID: "350_500", Label: "$350k–$500k"},
			{ID: "500_plus", Label: "$500k+"},
			{ID: "not_sure", Label: "Not sure yet"},
		},
	},
	{
		ID:            "range_flexibility",
		Title:         "How fixed is this range?",
		Subtitle:      "So we can calibrate must-haves vs nice-to-haves.",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "tight", Label: "Tight", Subtitle: "Need to stay within it"},
			{ID: "some_buffer", Label: "Some buffer", Subtitle: "A little flexibility for the right result"},
			{ID: "flexible", Label: "Flexible", Subtitle: "Open to investing if it materially improves outcome"},
			{ID: "not_sure", Label: "Not sure yet"},
		},
	},
	{
		ID:            "spend_philosophy",
		Title:         "When you do spend, what matters most?",
		Subtitle:      "This shapes where we recommend splurging vs saving.",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "timeless_infrastructure", Label: "Timeless infrastructure", Subtitle: "Floors, tile, built-ins, systems"},
			{ID: "statement_moments", Label: "Statement moments", Subtitle: "Lighting, stone, standout details"},
			{ID: "balanced", Label: "Balanced", Subtitle: "A little on infrastructure, a little on statement moments"},
			{ID: "roi_first", Label: "ROI-first", Subtitle: "Durable, resale-friendly, low-regret"},
		},
	},
	{
		ID:            "finish_level",
		Title:         "What finish level are you aiming for?",
		Subtitle:      "This helps us recommend the right tier of materials and fixtures.",
		Type:          SingleImage,
		Layout:        LayoutStack,
		Required:      true,
		AllowMultiple: false,
		Options: []Option{
			{ID: "builder_plus", Label: "Builder-plus", Subtitle: "Clean, elevated basics"},
			{ID: "mid", Label: "Mid-range", Subtitle: "Nice upgrades, mindful choices"},
			{ID: "high", Label: "High-end", Subtitle: "Premium fixtures + statement finishes"},
			{ID: "very_high", Label: "Very high-end", Subtitle: "Custom + heirloom level"},
		},
	},
	{
		ID:            "splurge_areas",
		Title:         "Where are you most excited to splurge?",
		Subtitle:      "Pick up to three (optional).",
		Type:          MultiImage,
		Layout:        LayoutStack,
		AllowMultiple: true,
		Options: []Option{
			{ID: "tile", Label: "Tile"},
			{ID: "floors", Label: "Floors"},
			{ID: "stone", Label: "Stone / counters"},
			{ID: "lighting", Label: "Lighting"},
			{ID: "plumbing", Label: "Plumbing fixtures"},
			{ID: "hardware", Label: "Hardware"},
			{ID: "appliances", Label: "Appliances"},
			{ID: "custom_millwork", Label: "Custom millwork/cabinetry"},
		},
	},
}

// All returns every question across the three steps, style first.
func All() []Question {
	out := make([]Question, 0, len(StyleQuestions)+len(ScopeQuestions)+len(BudgetQuestions))
	out = append(out, StyleQuestions...)
	out = append(out, ScopeQuestions...)
	out = append(out, BudgetQuestions...)
	return out
}
